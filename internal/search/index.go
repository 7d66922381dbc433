package search

import (
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/busedmrly/vitrin/internal/domain"
)

// Index is the quick-jump lookup table over the whole catalog. It
// implements fuzzy.Source so matching runs without per-keystroke
// allocation; lowercase titles are pre-computed at build time.
type Index struct {
	records     []domain.MediaRecord
	lowerTitles []string
}

// NewIndex builds an index over the records' display titles.
func NewIndex(records []domain.MediaRecord) *Index {
	idx := &Index{
		records:     records,
		lowerTitles: make([]string, len(records)),
	}
	for i, rec := range records {
		idx.lowerTitles[i] = strings.ToLower(rec.DisplayTitle())
	}
	return idx
}

// String returns the lowercase title at index i (implements fuzzy.Source)
func (idx *Index) String(i int) string { return idx.lowerTitles[i] }

// Len returns the number of records (implements fuzzy.Source)
func (idx *Index) Len() int { return len(idx.records) }

// Result is a quick-jump match with metadata for highlighting.
type Result struct {
	Record         domain.MediaRecord
	MatchedIndexes []int // Character positions that matched
	Score          int   // Match score (higher is better)
}

// Query fuzzy-matches the catalog's display titles, best matches first.
// An empty query matches nothing.
func (idx *Index) Query(query string) []Result {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" || idx.Len() == 0 {
		return nil
	}

	matches := fuzzy.FindFrom(query, idx)

	results := make([]Result, len(matches))
	for i, match := range matches {
		results[i] = Result{
			Record:         idx.records[match.Index],
			MatchedIndexes: match.MatchedIndexes,
			Score:          match.Score,
		}
	}
	return results
}
