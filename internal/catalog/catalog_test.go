package catalog

import (
	"testing"

	"github.com/busedmrly/vitrin/internal/domain"
)

func sampleRecords() []domain.MediaRecord {
	return []domain.MediaRecord{
		{
			ID:             1,
			Title:          "Inception",
			TitleLocalized: "Başlangıç",
			Type:           domain.TypeMovie,
			Genres:         []string{"Sci-Fi", "Thriller"},
			Year:           2010,
			Rating:         8.8,
			Director:       "Christopher Nolan",
			Cast:           []string{"Leonardo DiCaprio", "Tom Hardy"},
		},
		{
			ID:     2,
			Title:  "The Dark Knight",
			Type:   domain.TypeMovie,
			Genres: []string{"Action", "Crime"},
			Year:   2008,
			Rating: 9.0,
			Director: "Christopher Nolan",
			Cast:     []string{"Christian Bale", "Heath Ledger"},
		},
		{
			ID:     3,
			Title:  "Breaking Bad",
			Type:   domain.TypeSeries,
			Genres: []string{"Crime", "Drama"},
			Year:   2008,
			Rating: 9.5,
			Director: "Vince Gilligan",
			Cast:     []string{"Bryan Cranston", "Aaron Paul"},
		},
		{
			ID:     4,
			Title:  "Çukur",
			Type:   domain.TypeSeries,
			Genres: []string{"Crime", "Drama"},
			Year:   2017,
			Rating: 8.1,
			Director: "Sinan Öztürk",
			Cast:     []string{"Aras Bulut İynemli"},
		},
		{
			ID:     5,
			Title:  "Dune",
			Type:   domain.TypeBook,
			Genres: []string{"Sci-Fi"},
			Year:   1965,
			Rating: 8.6,
			Author: "Frank Herbert",
			Cast:   []string{"Paul Atreides", "Lady Jessica"},
		},
	}
}

func ids(records []domain.MediaRecord) []int {
	out := make([]int, len(records))
	for i, r := range records {
		out[i] = r.ID
	}
	return out
}

func equalIDs(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestFilter(t *testing.T) {
	records := sampleRecords()

	t.Run("no criteria returns everything in order", func(t *testing.T) {
		got := Filter(records, domain.FilterCriteria{})
		if !equalIDs(ids(got), []int{1, 2, 3, 4, 5}) {
			t.Errorf("unexpected ids: %v", ids(got))
		}
	})

	t.Run("type filter keeps only matching records", func(t *testing.T) {
		got := Filter(records, domain.FilterCriteria{Type: domain.TypeMovie})
		if !equalIDs(ids(got), []int{1, 2}) {
			t.Errorf("expected movies only, got ids %v", ids(got))
		}
		got = Filter(records, domain.FilterCriteria{Type: domain.TypeSeries})
		if !equalIDs(ids(got), []int{3, 4}) {
			t.Errorf("expected series only, got ids %v", ids(got))
		}
	})

	t.Run("search matches title case-insensitively", func(t *testing.T) {
		got := Filter(records, domain.FilterCriteria{Search: "inception"})
		if !equalIDs(ids(got), []int{1}) {
			t.Errorf("expected id 1, got %v", ids(got))
		}
	})

	t.Run("search matches localized title", func(t *testing.T) {
		got := Filter(records, domain.FilterCriteria{Search: "Başlangıç"})
		if !equalIDs(ids(got), []int{1}) {
			t.Errorf("expected id 1, got %v", ids(got))
		}
	})

	t.Run("search matches director and author", func(t *testing.T) {
		got := Filter(records, domain.FilterCriteria{Search: "nolan"})
		if !equalIDs(ids(got), []int{1, 2}) {
			t.Errorf("expected ids 1,2, got %v", ids(got))
		}
		got = Filter(records, domain.FilterCriteria{Search: "herbert"})
		if !equalIDs(ids(got), []int{5}) {
			t.Errorf("expected id 5, got %v", ids(got))
		}
	})

	t.Run("search matches cast members", func(t *testing.T) {
		got := Filter(records, domain.FilterCriteria{Search: "cranston"})
		if !equalIDs(ids(got), []int{3}) {
			t.Errorf("expected id 3, got %v", ids(got))
		}
	})

	t.Run("genre requires exact membership", func(t *testing.T) {
		got := Filter(records, domain.FilterCriteria{Genre: "Sci-Fi"})
		if !equalIDs(ids(got), []int{1, 5}) {
			t.Errorf("expected ids 1,5; got %v", ids(got))
		}
		got = Filter(records, domain.FilterCriteria{Genre: "sci-fi"})
		if len(got) != 0 {
			t.Errorf("genre match should be exact, got %v", ids(got))
		}
	})

	t.Run("year filter", func(t *testing.T) {
		got := Filter(records, domain.FilterCriteria{Year: 2008})
		if !equalIDs(ids(got), []int{2, 3}) {
			t.Errorf("expected ids 2,3; got %v", ids(got))
		}
	})

	t.Run("criteria combine with AND", func(t *testing.T) {
		got := Filter(records, domain.FilterCriteria{
			Year: 2008,
			Type: domain.TypeSeries,
		})
		if !equalIDs(ids(got), []int{3}) {
			t.Errorf("expected id 3, got %v", ids(got))
		}
	})

	t.Run("no match yields empty, not nil panic", func(t *testing.T) {
		got := Filter(records, domain.FilterCriteria{Search: "zzzz"})
		if len(got) != 0 {
			t.Errorf("expected no results, got %v", ids(got))
		}
	})

	t.Run("result is always a subset in input order", func(t *testing.T) {
		got := Filter(records, domain.FilterCriteria{Genre: "Crime"})
		pos := -1
		for _, r := range got {
			found := -1
			for i, orig := range records {
				if orig.ID == r.ID {
					found = i
					break
				}
			}
			if found < 0 {
				t.Fatalf("filter invented record id %d", r.ID)
			}
			if found <= pos {
				t.Fatalf("filter reordered records: id %d out of place", r.ID)
			}
			pos = found
		}
	})

	t.Run("input slice is not mutated", func(t *testing.T) {
		before := ids(records)
		Filter(records, domain.FilterCriteria{Search: "dune", Type: domain.TypeBook})
		if !equalIDs(ids(records), before) {
			t.Error("filter mutated its input")
		}
	})
}

func TestSort(t *testing.T) {
	records := sampleRecords()

	t.Run("rating descending", func(t *testing.T) {
		got := Sort(records, domain.SortRatingDesc)
		if !equalIDs(ids(got), []int{3, 2, 1, 5, 4}) {
			t.Errorf("unexpected order: %v", ids(got))
		}
	})

	t.Run("rating ascending", func(t *testing.T) {
		got := Sort(records, domain.SortRatingAsc)
		if !equalIDs(ids(got), []int{4, 5, 1, 2, 3}) {
			t.Errorf("unexpected order: %v", ids(got))
		}
	})

	t.Run("year descending", func(t *testing.T) {
		got := Sort(records, domain.SortYearDesc)
		if !equalIDs(ids(got), []int{4, 1, 2, 3, 5}) {
			t.Errorf("unexpected order: %v", ids(got))
		}
	})

	t.Run("title ascending uses locale collation", func(t *testing.T) {
		got := Sort(records, domain.SortTitleAsc)
		// Display titles: Başlangıç, Breaking Bad, Çukur, Dune, The Dark Knight.
		// Ç collates between C and D, so Çukur lands before Dune.
		if !equalIDs(ids(got), []int{1, 3, 4, 5, 2}) {
			t.Errorf("unexpected order: %v", ids(got))
		}
	})

	t.Run("title descending reverses the collation order", func(t *testing.T) {
		got := Sort(records, domain.SortTitleDesc)
		if !equalIDs(ids(got), []int{2, 5, 4, 3, 1}) {
			t.Errorf("unexpected order: %v", ids(got))
		}
	})

	t.Run("sort is a permutation", func(t *testing.T) {
		got := Sort(records, domain.SortYearAsc)
		if len(got) != len(records) {
			t.Fatalf("length changed: %d != %d", len(got), len(records))
		}
		seen := make(map[int]bool)
		for _, r := range got {
			seen[r.ID] = true
		}
		for _, r := range records {
			if !seen[r.ID] {
				t.Errorf("record id %d lost in sort", r.ID)
			}
		}
	})

	t.Run("sort is idempotent", func(t *testing.T) {
		once := Sort(records, domain.SortRatingDesc)
		twice := Sort(once, domain.SortRatingDesc)
		if !equalIDs(ids(once), ids(twice)) {
			t.Errorf("second sort changed order: %v vs %v", ids(once), ids(twice))
		}
	})

	t.Run("equal keys keep input order", func(t *testing.T) {
		tied := []domain.MediaRecord{
			{ID: 10, Title: "A", Rating: 8.0},
			{ID: 11, Title: "B", Rating: 8.0},
			{ID: 12, Title: "C", Rating: 8.0},
		}
		got := Sort(tied, domain.SortRatingDesc)
		if !equalIDs(ids(got), []int{10, 11, 12}) {
			t.Errorf("stable sort broke tie order: %v", ids(got))
		}
	})

	t.Run("input slice is not mutated", func(t *testing.T) {
		before := ids(records)
		Sort(records, domain.SortTitleDesc)
		if !equalIDs(ids(records), before) {
			t.Error("sort mutated its input")
		}
	})

	t.Run("unknown key falls back to default", func(t *testing.T) {
		got := Sort(records, domain.SortKey("bogus"))
		want := Sort(records, domain.DefaultSortKey)
		if !equalIDs(ids(got), ids(want)) {
			t.Errorf("fallback order %v != default order %v", ids(got), ids(want))
		}
	})
}

func TestApply(t *testing.T) {
	records := sampleRecords()

	got := Apply(records, domain.FilterCriteria{
		Type: domain.TypeSeries,
		Sort: domain.SortRatingDesc,
	})
	if !equalIDs(ids(got), []int{3, 4}) {
		t.Errorf("expected series by rating, got %v", ids(got))
	}
}

func TestUniqueGenres(t *testing.T) {
	records := []domain.MediaRecord{
		{ID: 1, Genres: []string{"Aksiyon", "Bilim Kurgu"}},
		{ID: 2, Genres: []string{"Bilim Kurgu"}},
	}

	got := UniqueGenres(records)
	want := []string{"Aksiyon", "Bilim Kurgu"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestUniqueGenresCollation(t *testing.T) {
	records := []domain.MediaRecord{
		{ID: 1, Genres: []string{"Dram", "Çizgi", "Ceza"}},
	}

	got := UniqueGenres(records)
	want := []string{"Ceza", "Çizgi", "Dram"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestUniqueYears(t *testing.T) {
	records := []domain.MediaRecord{
		{ID: 1, Year: 2008},
		{ID: 2, Year: 2017},
		{ID: 3, Year: 2008},
		{ID: 4, Year: 1965},
		{ID: 5}, // no year
	}

	got := UniqueYears(records)
	want := []int{2017, 2008, 1965}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}
