package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/busedmrly/vitrin/internal/domain"
	"github.com/busedmrly/vitrin/internal/tui/styles"
)

// sortField is a sortable column in the chooser. Direction lives in the
// resulting domain.SortKey.
type sortField int

const (
	fieldRating sortField = iota
	fieldYear
	fieldTitle
)

// String returns the display name for the sort field
func (f sortField) String() string {
	switch f {
	case fieldRating:
		return "Rating"
	case fieldYear:
		return "Year"
	case fieldTitle:
		return "Title"
	default:
		return "Unknown"
	}
}

// defaultAscending returns the natural direction for a field
func defaultAscending(f sortField) bool {
	return f == fieldTitle // A-Z; rating and year start newest/highest first
}

// fieldOf splits a sort key into its field and direction
func fieldOf(key domain.SortKey) (sortField, bool) {
	switch key {
	case domain.SortRatingAsc:
		return fieldRating, true
	case domain.SortRatingDesc:
		return fieldRating, false
	case domain.SortYearAsc:
		return fieldYear, true
	case domain.SortYearDesc:
		return fieldYear, false
	case domain.SortTitleAsc:
		return fieldTitle, true
	case domain.SortTitleDesc:
		return fieldTitle, false
	default:
		return fieldRating, false
	}
}

// keyFor combines a field and direction back into a sort key
func keyFor(f sortField, asc bool) domain.SortKey {
	switch f {
	case fieldRating:
		if asc {
			return domain.SortRatingAsc
		}
		return domain.SortRatingDesc
	case fieldYear:
		if asc {
			return domain.SortYearAsc
		}
		return domain.SortYearDesc
	default:
		if asc {
			return domain.SortTitleAsc
		}
		return domain.SortTitleDesc
	}
}

// SortModal is a small popup for choosing sort order
type SortModal struct {
	visible bool
	options []sortField
	cursor  int
	active  domain.SortKey
}

// NewSortModal creates a new sort modal
func NewSortModal() SortModal {
	return SortModal{}
}

// Show displays the modal with the current sort state
func (m *SortModal) Show(active domain.SortKey) {
	m.visible = true
	m.options = []sortField{fieldRating, fieldYear, fieldTitle}
	m.active = active

	// Position cursor on the active field
	m.cursor = 0
	activeField, _ := fieldOf(active)
	for i, opt := range m.options {
		if opt == activeField {
			m.cursor = i
			break
		}
	}
}

// Hide dismisses the modal
func (m *SortModal) Hide() {
	m.visible = false
}

// IsVisible returns whether the modal is shown
func (m SortModal) IsVisible() bool {
	return m.visible
}

// HandleKey processes a key press, returns (handled, selection).
// If selection is non-nil, the user confirmed a choice. Picking the
// active field flips its direction.
func (m *SortModal) HandleKey(key string) (handled bool, selection *domain.SortKey) {
	if !m.visible {
		return false, nil
	}

	switch key {
	case "j", "down":
		if m.cursor < len(m.options)-1 {
			m.cursor++
		}
		return true, nil
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
		return true, nil
	case "enter":
		chosen := m.options[m.cursor]
		asc := defaultAscending(chosen)
		activeField, activeAsc := fieldOf(m.active)
		if chosen == activeField {
			asc = !activeAsc
		}
		m.visible = false
		sel := keyFor(chosen, asc)
		return true, &sel
	case "esc", "s":
		m.visible = false
		return true, nil
	}

	return true, nil // consume all keys when visible
}

// View renders the sort modal
func (m SortModal) View() string {
	if !m.visible || len(m.options) == 0 {
		return ""
	}

	activeField, activeAsc := fieldOf(m.active)

	var lines []string
	for i, opt := range m.options {
		selected := i == m.cursor
		isActive := opt == activeField

		var prefix string
		if isActive {
			prefix = "✓ "
		} else {
			prefix = "  "
		}

		label := opt.String()

		var suffix string
		if isActive {
			if activeAsc {
				suffix = " ↑"
			} else {
				suffix = " ↓"
			}
		}

		text := styles.Pad(prefix+label+suffix, 20)

		switch {
		case selected:
			lines = append(lines, styles.SelectedItemStyle.Render(text))
		case isActive:
			lines = append(lines, styles.FocusedItemStyle.Render(text))
		default:
			lines = append(lines, styles.NormalItemStyle.Render(text))
		}
	}

	content := strings.Join(lines, "\n")

	modal := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.Teal).
		Background(styles.SlateDark).
		Padding(0, 1).
		Render(styles.ModalTitleStyle.Render("Sort by") + "\n" + content)

	return modal
}
