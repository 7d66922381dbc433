package components

import (
	"testing"

	"github.com/busedmrly/vitrin/internal/domain"
)

func selectField(t *testing.T, m *SortModal, steps int) domain.SortKey {
	t.Helper()
	for i := 0; i < steps; i++ {
		if handled, _ := m.HandleKey("j"); !handled {
			t.Fatal("modal did not handle navigation key")
		}
	}
	handled, sel := m.HandleKey("enter")
	if !handled || sel == nil {
		t.Fatal("enter did not produce a selection")
	}
	return *sel
}

func TestSortModalSelection(t *testing.T) {
	t.Run("picking a new field uses its natural direction", func(t *testing.T) {
		m := NewSortModal()
		m.Show(domain.SortRatingDesc)

		// Cursor starts on Rating; one step down is Year
		if got := selectField(t, &m, 1); got != domain.SortYearDesc {
			t.Errorf("expected year-desc, got %s", got)
		}
	})

	t.Run("title defaults to ascending", func(t *testing.T) {
		m := NewSortModal()
		m.Show(domain.SortRatingDesc)

		if got := selectField(t, &m, 2); got != domain.SortTitleAsc {
			t.Errorf("expected title-asc, got %s", got)
		}
	})

	t.Run("re-picking the active field flips direction", func(t *testing.T) {
		m := NewSortModal()
		m.Show(domain.SortRatingDesc)

		if got := selectField(t, &m, 0); got != domain.SortRatingAsc {
			t.Errorf("expected rating-asc, got %s", got)
		}

		m.Show(domain.SortTitleAsc)
		if got := selectField(t, &m, 0); got != domain.SortTitleDesc {
			t.Errorf("expected title-desc, got %s", got)
		}
	})

	t.Run("cursor opens on the active field", func(t *testing.T) {
		m := NewSortModal()
		m.Show(domain.SortYearAsc)

		if got := selectField(t, &m, 0); got != domain.SortYearDesc {
			t.Errorf("expected year-desc after flip, got %s", got)
		}
	})

	t.Run("escape closes without a selection", func(t *testing.T) {
		m := NewSortModal()
		m.Show(domain.SortRatingDesc)

		handled, sel := m.HandleKey("esc")
		if !handled || sel != nil {
			t.Error("escape should close the modal with no selection")
		}
		if m.IsVisible() {
			t.Error("modal still visible after escape")
		}
	})
}
