package store

import (
	"path/filepath"
	"testing"

	"github.com/busedmrly/vitrin/internal/domain"
	bolt "go.etcd.io/bbolt"
)

func TestMemoryOnlyMode(t *testing.T) {
	s, err := NewPreferenceStore("")
	if err != nil {
		t.Fatalf("NewPreferenceStore: %v", err)
	}
	defer s.Close()

	if got := s.FavoriteIDs(); len(got) != 0 {
		t.Errorf("fresh store should have no favorites, got %v", got)
	}
	if err := s.SaveFavoriteIDs([]int{3, 7}); err != nil {
		t.Fatalf("SaveFavoriteIDs: %v", err)
	}
	got := s.FavoriteIDs()
	if len(got) != 2 || got[0] != 3 || got[1] != 7 {
		t.Errorf("expected [3 7], got %v", got)
	}
}

func TestFavoritesRoundTrip(t *testing.T) {
	dir := t.TempDir()

	s, err := NewPreferenceStore(dir)
	if err != nil {
		t.Fatalf("NewPreferenceStore: %v", err)
	}
	if err := s.SaveFavoriteIDs([]int{12, 5, 99}); err != nil {
		t.Fatalf("SaveFavoriteIDs: %v", err)
	}
	s.Close()

	// Reopen from the same directory; the set must survive.
	s, err = NewPreferenceStore(dir)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s.Close()

	got := s.FavoriteIDs()
	if len(got) != 3 || got[0] != 12 || got[1] != 5 || got[2] != 99 {
		t.Errorf("expected [12 5 99] after reopen, got %v", got)
	}
}

func TestViewModeRoundTrip(t *testing.T) {
	dir := t.TempDir()

	s, err := NewPreferenceStore(dir)
	if err != nil {
		t.Fatalf("NewPreferenceStore: %v", err)
	}

	if got := s.ViewMode(domain.ViewGrid); got != domain.ViewGrid {
		t.Errorf("empty store should fall back, got %q", got)
	}

	if err := s.SaveViewMode(domain.ViewList); err != nil {
		t.Fatalf("SaveViewMode: %v", err)
	}
	s.Close()

	s, err = NewPreferenceStore(dir)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s.Close()

	if got := s.ViewMode(domain.ViewGrid); got != domain.ViewList {
		t.Errorf("expected persisted list mode, got %q", got)
	}
}

func TestViewModeRejectsUnknownValue(t *testing.T) {
	s, err := NewPreferenceStore("")
	if err != nil {
		t.Fatalf("NewPreferenceStore: %v", err)
	}
	defer s.Close()

	if err := s.SaveViewMode(domain.ViewMode("zigzag")); err != nil {
		t.Fatalf("SaveViewMode: %v", err)
	}
	if got := s.ViewMode(domain.ViewGrid); got != domain.ViewGrid {
		t.Errorf("unknown stored mode should fall back to grid, got %q", got)
	}
}

func TestCorruptEntryFallsBackToDefaults(t *testing.T) {
	dir := t.TempDir()

	s, err := NewPreferenceStore(dir)
	if err != nil {
		t.Fatalf("NewPreferenceStore: %v", err)
	}
	if err := s.SaveFavoriteIDs([]int{1}); err != nil {
		t.Fatalf("SaveFavoriteIDs: %v", err)
	}
	s.Close()

	// Scribble invalid JSON over both keys behind the store's back.
	db, err := bolt.Open(filepath.Join(dir, "vitrin.db"), 0600, nil)
	if err != nil {
		t.Fatalf("bolt.Open: %v", err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte("preferences"))
		if err := b.Put([]byte("favorites"), []byte("{not json")); err != nil {
			return err
		}
		return b.Put([]byte("view_mode"), []byte("{not json"))
	})
	db.Close()
	if err != nil {
		t.Fatalf("corrupting db: %v", err)
	}

	s, err = NewPreferenceStore(dir)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s.Close()

	if got := s.FavoriteIDs(); len(got) != 0 {
		t.Errorf("corrupt favorites should read as empty, got %v", got)
	}
	if got := s.ViewMode(domain.ViewGrid); got != domain.ViewGrid {
		t.Errorf("corrupt view mode should fall back, got %q", got)
	}
}
