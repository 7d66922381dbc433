package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/busedmrly/vitrin/internal/domain"
	"github.com/busedmrly/vitrin/internal/tui/styles"
)

// FilterBar shows the search input and the active criteria summary on
// one line. The input only receives keystrokes while focused; the app
// debounces the resulting queries itself.
type FilterBar struct {
	input    textinput.Model
	criteria domain.FilterCriteria
	shown    int
	total    int
	width    int
	focused  bool
}

// NewFilterBar creates a new filter bar component
func NewFilterBar() FilterBar {
	ti := textinput.New()
	ti.Placeholder = "title, director, cast..."
	ti.CharLimit = 100
	ti.Width = 30
	ti.Prompt = "/ "
	ti.PromptStyle = styles.FilterPromptStyle
	ti.TextStyle = lipgloss.NewStyle().Foreground(styles.White)
	ti.PlaceholderStyle = styles.DimStyle

	return FilterBar{input: ti}
}

// Focus puts the cursor into the search input
func (f *FilterBar) Focus() tea.Cmd {
	f.focused = true
	return f.input.Focus()
}

// Blur releases the search input
func (f *FilterBar) Blur() {
	f.focused = false
	f.input.Blur()
}

// Focused reports whether the search input owns the keyboard
func (f FilterBar) Focused() bool {
	return f.focused
}

// Query returns the current search input text
func (f FilterBar) Query() string {
	return f.input.Value()
}

// SetQuery replaces the search input text (clear-filters path)
func (f *FilterBar) SetQuery(q string) {
	f.input.SetValue(q)
}

// SetCriteria updates the summary segment
func (f *FilterBar) SetCriteria(c domain.FilterCriteria) {
	f.criteria = c
}

// SetCounts updates the shown/total record counts
func (f *FilterBar) SetCounts(shown, total int) {
	f.shown = shown
	f.total = total
}

// SetWidth updates the component width
func (f *FilterBar) SetWidth(width int) {
	f.width = width
}

// Update forwards keystrokes to the search input while focused.
// changed reports whether the query text differs afterwards.
func (f FilterBar) Update(msg tea.Msg) (FilterBar, tea.Cmd, bool) {
	if !f.focused {
		return f, nil, false
	}
	before := f.input.Value()
	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	return f, cmd, f.input.Value() != before
}

// View renders the filter bar as a single line
func (f FilterBar) View() string {
	var left string
	if f.focused {
		left = f.input.View()
	} else if q := f.input.Value(); q != "" {
		left = styles.FilterPromptStyle.Render("/ ") + styles.FilterStyle.Render(q)
	} else {
		left = styles.DimStyle.Render("/ search")
	}

	var segs []string
	if f.criteria.Genre != "" {
		segs = append(segs, styles.AccentStyle.Render("genre:")+f.criteria.Genre)
	}
	if f.criteria.Year != 0 {
		segs = append(segs, styles.AccentStyle.Render("year:")+fmt.Sprintf("%d", f.criteria.Year))
	}
	if f.criteria.Type != "" {
		segs = append(segs, styles.AccentStyle.Render("type:")+f.criteria.Type.Display())
	}
	segs = append(segs, styles.DimStyle.Render(f.criteria.Sort.Label()))

	right := strings.Join(segs, "  ")
	counts := styles.DimStyle.Render(fmt.Sprintf("%d/%d", f.shown, f.total))

	row := " " + left + "  " + right
	gap := f.width - lipgloss.Width(row) - lipgloss.Width(counts) - 1
	if gap < 1 {
		gap = 1
	}
	return row + strings.Repeat(" ", gap) + counts + " "
}
