package search

import (
	"testing"

	"github.com/busedmrly/vitrin/internal/domain"
)

func indexFixture() *Index {
	return NewIndex([]domain.MediaRecord{
		{ID: 1, Title: "Inception", TitleLocalized: "Başlangıç", Type: domain.TypeMovie},
		{ID: 2, Title: "Breaking Bad", Type: domain.TypeSeries},
		{ID: 3, Title: "Dune", Type: domain.TypeBook},
		{ID: 4, Title: "The Dark Knight", Type: domain.TypeMovie},
	})
}

func TestQuery(t *testing.T) {
	idx := indexFixture()

	t.Run("empty query matches nothing", func(t *testing.T) {
		if got := idx.Query(""); got != nil {
			t.Errorf("expected nil, got %v", got)
		}
		if got := idx.Query("   "); got != nil {
			t.Errorf("whitespace query should match nothing, got %v", got)
		}
	})

	t.Run("exact title ranks first", func(t *testing.T) {
		got := idx.Query("dune")
		if len(got) == 0 {
			t.Fatal("expected at least one match")
		}
		if got[0].Record.ID != 3 {
			t.Errorf("expected Dune first, got %q", got[0].Record.Title)
		}
	})

	t.Run("subsequence abbreviations match", func(t *testing.T) {
		got := idx.Query("bb")
		found := false
		for _, r := range got {
			if r.Record.ID == 2 {
				found = true
			}
		}
		if !found {
			t.Error("expected bb to reach Breaking Bad")
		}
	})

	t.Run("matches carry highlight positions", func(t *testing.T) {
		got := idx.Query("dune")
		if len(got) == 0 || len(got[0].MatchedIndexes) == 0 {
			t.Error("expected matched character positions")
		}
	})

	t.Run("matches run over the localized title", func(t *testing.T) {
		got := idx.Query("başlangıç")
		if len(got) == 0 || got[0].Record.ID != 1 {
			t.Errorf("expected the localized title to match, got %v", got)
		}
	})

	t.Run("no match yields empty", func(t *testing.T) {
		if got := idx.Query("zzzz"); len(got) != 0 {
			t.Errorf("expected no matches, got %v", got)
		}
	})
}

func TestSuggest(t *testing.T) {
	idx := indexFixture()

	t.Run("closest title wins", func(t *testing.T) {
		title, ok := idx.Suggest("breaking")
		if !ok || title != "Breaking Bad" {
			t.Errorf("expected Breaking Bad, got %q (ok=%v)", title, ok)
		}
	})

	t.Run("suggestion uses the display title", func(t *testing.T) {
		title, ok := idx.Suggest("başlan")
		if !ok || title != "Başlangıç" {
			t.Errorf("expected Başlangıç, got %q (ok=%v)", title, ok)
		}
	})

	t.Run("hopeless query yields nothing", func(t *testing.T) {
		if _, ok := idx.Suggest("qqqq"); ok {
			t.Error("expected no suggestion")
		}
	})

	t.Run("empty query yields nothing", func(t *testing.T) {
		if _, ok := idx.Suggest(""); ok {
			t.Error("expected no suggestion for empty query")
		}
	})
}

func TestEmptyIndex(t *testing.T) {
	idx := NewIndex(nil)
	if got := idx.Query("dune"); got != nil {
		t.Errorf("empty index should match nothing, got %v", got)
	}
	if _, ok := idx.Suggest("dune"); ok {
		t.Error("empty index should suggest nothing")
	}
}
