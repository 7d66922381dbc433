package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/busedmrly/vitrin/internal/tui/styles"
)

// View renders the application
func (m Model) View() string {
	if !m.Ready {
		return "Loading..."
	}

	if m.State == StateHelp {
		return m.renderHelp()
	}

	view := lipgloss.JoinVertical(
		lipgloss.Left,
		m.Navbar.View(),
		m.FilterBar.View(),
		m.Browser.View(),
		m.renderFooter(),
	)

	// Overlay the exclusive modal if one is open
	if m.QuickJump.IsVisible() {
		view = lipgloss.Place(m.Width, m.Height,
			lipgloss.Center, lipgloss.Center,
			m.QuickJump.View())
	}

	if m.SortModal.IsVisible() {
		view = lipgloss.Place(m.Width, m.Height,
			lipgloss.Center, lipgloss.Center,
			m.SortModal.View())
	}

	if m.Detail.IsVisible() {
		view = lipgloss.Place(m.Width, m.Height,
			lipgloss.Center, lipgloss.Center,
			m.Detail.View())
	}

	return view
}

// renderFooter renders a single-line minimal footer
func (m Model) renderFooter() string {
	var left string
	if m.Loading {
		left = RenderSpinner(m.SpinnerFrame) + " " + styles.DimStyle.Render("Loading catalog...")
	} else if m.StatusMsg != "" {
		if m.StatusIsErr {
			left = styles.ErrorStyle.Render(m.StatusMsg)
		} else {
			left = styles.DimStyle.Render(m.StatusMsg)
		}
	}

	right := styles.AccentStyle.Render("?") + styles.DimStyle.Render(" help")

	gap := m.Width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

// renderHelp renders the help screen
func (m Model) renderHelp() string {
	help := `
NAVIGATION                      FILTERS
  j/k        Up/down               /      Search
  h/l        Left/right (grid)     e      Cycle genre
  g/Home     First item            y      Cycle year
  G/End      Last item             t      Cycle type
  Ctrl+u/d   Scroll half page      s      Sort
  1-5        Jump to page          c      Clear filters
  Tab/S-Tab  Next/previous page

ACTIONS                         OTHER
  Enter/i    Details               r      Reload catalog
  Space      Toggle favorite       q      Quit
  f          Quick jump            ?      This help
  v          Grid/list view        Esc    Close / Cancel

Press any key to return...
`

	return lipgloss.Place(m.Width, m.Height,
		lipgloss.Center, lipgloss.Center,
		styles.ModalStyle.Render(help))
}

// RenderSpinner renders a loading spinner
func RenderSpinner(frame int) string {
	return styles.SpinnerStyle.Render(styles.SpinnerFrames[frame%len(styles.SpinnerFrames)])
}
