package search

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Suggest returns the display title closest to query, for dead-end
// search prompts. The bool is false when nothing ranks.
func (idx *Index) Suggest(query string) (string, bool) {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" || idx.Len() == 0 {
		return "", false
	}

	matches := fuzzy.RankFindFold(query, idx.lowerTitles)
	if len(matches) == 0 {
		return "", false
	}

	// Sort by distance (lower is better)
	sort.Slice(matches, func(i, j int) bool {
		return matches[i].Distance < matches[j].Distance
	})

	return idx.records[matches[0].OriginalIndex].DisplayTitle(), true
}
