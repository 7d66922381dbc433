package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/busedmrly/vitrin/internal/domain"
	"github.com/busedmrly/vitrin/internal/tui/styles"
)

// Navbar is the top page ribbon. Pages are reachable by number key or
// tab cycling; the active page is highlighted.
type Navbar struct {
	active domain.Page
	width  int
}

// NewNavbar creates a new navbar component
func NewNavbar() Navbar {
	return Navbar{active: domain.PageHome}
}

// SetActive marks the highlighted page
func (n *Navbar) SetActive(page domain.Page) {
	n.active = page
}

// Active returns the highlighted page
func (n Navbar) Active() domain.Page {
	return n.active
}

// SetWidth updates the component width
func (n *Navbar) SetWidth(width int) {
	n.width = width
}

// Next returns the page after the active one, wrapping around
func (n Navbar) Next() domain.Page {
	pages := domain.Pages()
	for i, p := range pages {
		if p == n.active {
			return pages[(i+1)%len(pages)]
		}
	}
	return pages[0]
}

// Prev returns the page before the active one, wrapping around
func (n Navbar) Prev() domain.Page {
	pages := domain.Pages()
	for i, p := range pages {
		if p == n.active {
			return pages[(i-1+len(pages))%len(pages)]
		}
	}
	return pages[0]
}

// PageAt maps a number key (1-based) to its page
func PageAt(num int) (domain.Page, bool) {
	pages := domain.Pages()
	if num < 1 || num > len(pages) {
		return "", false
	}
	return pages[num-1], true
}

// View renders the navbar as a single line
func (n Navbar) View() string {
	var tabs []string
	for i, p := range domain.Pages() {
		label := fmt.Sprintf("%d %s", i+1, p.Title())
		if p == n.active {
			tabs = append(tabs, styles.HighlightStyle.Render(label))
		} else {
			tabs = append(tabs, styles.DimStyle.Render(" "+label+" "))
		}
	}

	brand := styles.AccentStyle.Bold(true).Render("vitrin")
	row := brand + "  " + strings.Join(tabs, " ")

	gap := n.width - lipgloss.Width(row)
	if gap > 0 {
		row += strings.Repeat(" ", gap)
	}
	return row
}
