package catalog

import (
	"sort"
	"strings"

	"github.com/busedmrly/vitrin/internal/domain"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// newTitleCollator returns a collator for title ordering. Collators
// keep internal buffers, so each call site gets its own.
func newTitleCollator() *collate.Collator {
	return collate.New(language.Turkish, collate.IgnoreCase)
}

// Filter returns the records matching every active criterion, in input
// order. The input slice is never modified. The sort key on the
// criteria is ignored here; use Sort or Apply for ordering.
func Filter(records []domain.MediaRecord, c domain.FilterCriteria) []domain.MediaRecord {
	out := make([]domain.MediaRecord, 0, len(records))
	query := strings.ToLower(strings.TrimSpace(c.Search))

	for _, rec := range records {
		if query != "" && !matchesSearch(rec, query) {
			continue
		}
		if c.Genre != "" && !hasGenre(rec, c.Genre) {
			continue
		}
		if c.Year != 0 && rec.Year != c.Year {
			continue
		}
		if c.Type != "" && rec.Type != c.Type {
			continue
		}
		out = append(out, rec)
	}

	return out
}

// matchesSearch checks the query against title, localized title,
// director/author and every cast member, case-insensitively.
func matchesSearch(rec domain.MediaRecord, query string) bool {
	fields := []string{rec.Title, rec.TitleLocalized, rec.Director, rec.Author}
	for _, f := range fields {
		if f != "" && strings.Contains(strings.ToLower(f), query) {
			return true
		}
	}
	for _, name := range rec.Cast {
		if strings.Contains(strings.ToLower(name), query) {
			return true
		}
	}
	return false
}

func hasGenre(rec domain.MediaRecord, genre string) bool {
	for _, g := range rec.Genres {
		if g == genre {
			return true
		}
	}
	return false
}

// Sort returns a new slice ordered by the given key. The sort is
// stable: records that compare equal keep their input order. Title
// comparisons use locale-aware collation against the display title.
func Sort(records []domain.MediaRecord, key domain.SortKey) []domain.MediaRecord {
	out := make([]domain.MediaRecord, len(records))
	copy(out, records)

	switch key {
	case domain.SortRatingAsc:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Rating < out[j].Rating
		})
	case domain.SortRatingDesc:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Rating > out[j].Rating
		})
	case domain.SortYearAsc:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Year < out[j].Year
		})
	case domain.SortYearDesc:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Year > out[j].Year
		})
	case domain.SortTitleAsc:
		coll := newTitleCollator()
		sort.SliceStable(out, func(i, j int) bool {
			return coll.CompareString(out[i].DisplayTitle(), out[j].DisplayTitle()) < 0
		})
	case domain.SortTitleDesc:
		coll := newTitleCollator()
		sort.SliceStable(out, func(i, j int) bool {
			return coll.CompareString(out[i].DisplayTitle(), out[j].DisplayTitle()) > 0
		})
	default:
		// Unknown key falls back to the default ordering
		return Sort(out, domain.DefaultSortKey)
	}

	return out
}

// Apply filters then sorts in one step
func Apply(records []domain.MediaRecord, c domain.FilterCriteria) []domain.MediaRecord {
	return Sort(Filter(records, c), c.Sort)
}

// UniqueGenres flattens the genre lists of all records into a
// deduplicated, collation-sorted slice.
func UniqueGenres(records []domain.MediaRecord) []string {
	seen := make(map[string]bool)
	var genres []string
	for _, rec := range records {
		for _, g := range rec.Genres {
			if g == "" || seen[g] {
				continue
			}
			seen[g] = true
			genres = append(genres, g)
		}
	}

	coll := newTitleCollator()
	sort.SliceStable(genres, func(i, j int) bool {
		return coll.CompareString(genres[i], genres[j]) < 0
	})
	return genres
}

// UniqueYears returns the distinct years across all records, newest
// first. Records without a year are skipped.
func UniqueYears(records []domain.MediaRecord) []int {
	seen := make(map[int]bool)
	var years []int
	for _, rec := range records {
		if rec.Year == 0 || seen[rec.Year] {
			continue
		}
		seen[rec.Year] = true
		years = append(years, rec.Year)
	}

	sort.Sort(sort.Reverse(sort.IntSlice(years)))
	return years
}
