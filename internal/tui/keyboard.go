package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/busedmrly/vitrin/internal/domain"
	"github.com/busedmrly/vitrin/internal/tui/components"
)

// handleKeyMsg handles keyboard input
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Help screen swallows everything until dismissed
	if m.State == StateHelp {
		m.State = StateBrowsing
		return m, nil
	}

	// Route to the active modal if any
	if handled, newModel, cmd := m.routeToModal(msg); handled {
		return newModel, cmd
	}

	// Search input owns the keyboard while focused
	if m.State == StateSearching {
		return m.handleSearchKey(msg)
	}

	// Global keys
	switch {
	case key.Matches(msg, Keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, Keys.Help):
		m.State = StateHelp
		return m, nil

	case key.Matches(msg, Keys.Search):
		m.State = StateSearching
		cmd := m.FilterBar.Focus()
		return m, cmd

	case key.Matches(msg, Keys.QuickJump):
		cmd := m.QuickJump.Show()
		return m, cmd

	case key.Matches(msg, Keys.Sort):
		m.SortModal.Show(m.Svc.Criteria().Sort)
		return m, nil

	case key.Matches(msg, Keys.ViewMode):
		mode := m.Svc.ToggleViewMode()
		m.Browser.SetMode(mode)
		return m, nil

	case key.Matches(msg, Keys.Favorite):
		if rec, ok := m.Browser.SelectedRecord(); ok {
			// The toggle mutates m; returning it in the same
			// statement would leave the evaluation order to the
			// compiler.
			cmd := m.toggleFavorite(rec.ID)
			return m, cmd
		}
		return m, nil

	case key.Matches(msg, Keys.Enter, Keys.Info):
		if rec, ok := m.Browser.SelectedRecord(); ok {
			m.Detail.Show(rec, m.Svc.IsFavorite(rec.ID))
		}
		return m, nil

	case key.Matches(msg, Keys.ClearFilters):
		return m.clearFilters()

	case key.Matches(msg, Keys.Escape):
		if m.Svc.Criteria().HasActiveFilter() {
			return m.clearFilters()
		}
		return m, nil

	case key.Matches(msg, Keys.Genre):
		genre := cycleString(m.Svc.Criteria().Genre, m.Svc.Genres())
		m.Svc.SetCriteria(domain.CriteriaPatch{Genre: &genre})
		m.refreshListing(false)
		return m, nil

	case key.Matches(msg, Keys.Year):
		year := cycleInt(m.Svc.Criteria().Year, m.Svc.Years())
		m.Svc.SetCriteria(domain.CriteriaPatch{Year: &year})
		m.refreshListing(false)
		return m, nil

	case key.Matches(msg, Keys.Type):
		// Type cycling only makes sense where the page does not pin it
		if forced, ok := m.Svc.Page().ForcedType(); !ok || forced == "" {
			mediaType := cycleType(m.Svc.Criteria().Type)
			m.Svc.SetCriteria(domain.CriteriaPatch{Type: &mediaType})
			m.refreshListing(false)
		}
		return m, nil

	case key.Matches(msg, Keys.Refresh):
		m.Loading = true
		m.SpinnerFrame = 0
		return m, tea.Batch(
			LoadCatalogCmd(m.Svc, m.fetchTimeout),
			TickCmd(spinnerInterval),
		)

	case key.Matches(msg, Keys.NextPage):
		m.navigate(m.Navbar.Next())
		return m, nil

	case key.Matches(msg, Keys.PrevPage):
		m.navigate(m.Navbar.Prev())
		return m, nil
	}

	// Number keys map to pages
	if len(msg.String()) == 1 && msg.String() >= "1" && msg.String() <= "9" {
		if page, ok := pageForDigit(msg.String()); ok {
			m.navigate(page)
		}
		return m, nil
	}

	// Everything else is browser navigation
	var cmd tea.Cmd
	m.Browser, cmd = m.Browser.Update(msg)
	return m, cmd
}

// routeToModal forwards input to the visible modal, if any
func (m Model) routeToModal(msg tea.KeyMsg) (bool, tea.Model, tea.Cmd) {
	if m.Detail.IsVisible() {
		handled, toggle := m.Detail.HandleKey(msg.String())
		if toggle != nil {
			cmd := m.toggleFavorite(*toggle)
			return true, m, cmd
		}
		return handled, m, nil
	}

	if m.SortModal.IsVisible() {
		handled, selection := m.SortModal.HandleKey(msg.String())
		if selection != nil {
			m.Svc.SetCriteria(domain.CriteriaPatch{Sort: selection})
			m.refreshListing(false)
		}
		return handled, m, nil
	}

	if m.QuickJump.IsVisible() {
		var cmd tea.Cmd
		var selected *domain.MediaRecord
		m.QuickJump, cmd, selected = m.QuickJump.Update(msg)
		if selected != nil {
			// Open details regardless of active filters
			m.Detail.Show(*selected, m.Svc.IsFavorite(selected.ID))
		}
		return true, m, cmd
	}

	return false, m, nil
}

// handleSearchKey feeds keystrokes to the search input and schedules
// the debounced recomputation.
func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "enter":
		m.State = StateBrowsing
		m.FilterBar.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	var changed bool
	m.FilterBar, cmd, changed = m.FilterBar.Update(msg)
	if !changed {
		return m, cmd
	}

	seq := m.debounce.Next()
	return m, tea.Batch(cmd, DebounceSearchCmd(seq, m.FilterBar.Query(), m.debounceDelay))
}

// clearFilters drops every active criterion and the search text
func (m Model) clearFilters() (tea.Model, tea.Cmd) {
	m.FilterBar.SetQuery("")
	m.Svc.ClearFilters()
	m.refreshListing(false)
	m.StatusMsg = "Filters cleared"
	m.StatusIsErr = false
	return m, ClearStatusCmd(2 * time.Second)
}

// pageForDigit maps "1".."5" to a page
func pageForDigit(digit string) (domain.Page, bool) {
	return components.PageAt(int(digit[0] - '0'))
}

// cycleString advances through options, then back to "any"
func cycleString(current string, options []string) string {
	if len(options) == 0 {
		return ""
	}
	if current == "" {
		return options[0]
	}
	for i, opt := range options {
		if opt == current {
			if i == len(options)-1 {
				return ""
			}
			return options[i+1]
		}
	}
	return options[0]
}

// cycleInt advances through options, then back to 0 ("any")
func cycleInt(current int, options []int) int {
	if len(options) == 0 {
		return 0
	}
	if current == 0 {
		return options[0]
	}
	for i, opt := range options {
		if opt == current {
			if i == len(options)-1 {
				return 0
			}
			return options[i+1]
		}
	}
	return options[0]
}

// cycleType advances movie -> series -> book -> any
func cycleType(current domain.MediaType) domain.MediaType {
	switch current {
	case "":
		return domain.TypeMovie
	case domain.TypeMovie:
		return domain.TypeSeries
	case domain.TypeSeries:
		return domain.TypeBook
	default:
		return ""
	}
}
