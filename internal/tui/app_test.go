package tui

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/busedmrly/vitrin/internal/domain"
	"github.com/busedmrly/vitrin/internal/library"
)

type stubSource struct {
	records []domain.MediaRecord
}

func (s *stubSource) Fetch(ctx context.Context) ([]domain.MediaRecord, error) {
	return s.records, nil
}

type stubStore struct {
	favorites []int
	viewMode  string
}

func (s *stubStore) FavoriteIDs() []int { return s.favorites }

func (s *stubStore) SaveFavoriteIDs(ids []int) error {
	s.favorites = ids
	return nil
}

func (s *stubStore) ViewMode(fallback domain.ViewMode) domain.ViewMode {
	if s.viewMode == "" {
		return fallback
	}
	return domain.ViewMode(s.viewMode)
}

func (s *stubStore) SaveViewMode(mode domain.ViewMode) error {
	s.viewMode = string(mode)
	return nil
}

func (s *stubStore) Close() error { return nil }

func modelRecords() []domain.MediaRecord {
	return []domain.MediaRecord{
		{ID: 1, Title: "Inception", Type: domain.TypeMovie, Genres: []string{"Sci-Fi"}, Year: 2010, Rating: 9.9},
		{ID: 2, Title: "Breaking Bad", Type: domain.TypeSeries, Genres: []string{"Crime"}, Year: 2008, Rating: 9.5},
		{ID: 3, Title: "Dune", Type: domain.TypeBook, Genres: []string{"Sci-Fi"}, Year: 1965, Rating: 8.6},
	}
}

// newTestModel builds a model with the catalog already delivered, the
// way Init's load command would.
func newTestModel(t *testing.T) Model {
	t.Helper()
	svc := library.NewService(&stubSource{records: modelRecords()}, &stubStore{}, domain.ViewGrid, nil)
	m := NewModel(svc, 300*time.Millisecond, time.Second)

	updated, _ := m.Update(CatalogLoadedMsg{Records: modelRecords()})
	return updated.(Model)
}

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestFavoriteToggleKey(t *testing.T) {
	m := newTestModel(t)

	// Inception has the top rating, so it sits under the cursor
	updated, cmd := m.Update(keyMsg(" "))
	m = updated.(Model)

	if !m.Svc.IsFavorite(1) {
		t.Error("space should favorite the selected record")
	}
	if !strings.Contains(m.StatusMsg, "Added to favorites: Inception") {
		t.Errorf("status should report the toggle, got %q", m.StatusMsg)
	}
	if cmd == nil {
		t.Error("toggle should schedule a status expiry")
	}

	updated, _ = m.Update(keyMsg(" "))
	m = updated.(Model)

	if m.Svc.IsFavorite(1) {
		t.Error("second toggle should remove the favorite")
	}
	if !strings.Contains(m.StatusMsg, "Removed from favorites: Inception") {
		t.Errorf("status should report the removal, got %q", m.StatusMsg)
	}
}

func TestSearchDebounceSupersession(t *testing.T) {
	m := newTestModel(t)

	// Enter search mode and type two keystrokes, starting two bursts
	updated, _ := m.Update(keyMsg("/"))
	m = updated.(Model)
	if m.State != StateSearching {
		t.Fatalf("expected searching state, got %v", m.State)
	}

	updated, _ = m.Update(keyMsg("d"))
	m = updated.(Model)
	updated, _ = m.Update(keyMsg("u"))
	m = updated.(Model)

	// The first burst settled late; it must not touch the criteria
	updated, _ = m.Update(SearchDebouncedMsg{Seq: 1, Query: "d"})
	m = updated.(Model)
	if got := m.Svc.Criteria().Search; got != "" {
		t.Errorf("stale burst applied, search criterion is %q", got)
	}

	// The live burst applies and narrows the listing
	updated, _ = m.Update(SearchDebouncedMsg{Seq: 2, Query: "du"})
	m = updated.(Model)
	if got := m.Svc.Criteria().Search; got != "du" {
		t.Errorf("latest burst should apply, search criterion is %q", got)
	}

	listing := m.Svc.Visible()
	if len(listing.Records) != 1 || listing.Records[0].ID != 3 {
		t.Errorf("expected only Dune after search, got %v", listing.Records)
	}
}
