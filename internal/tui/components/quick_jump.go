package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/busedmrly/vitrin/internal/domain"
	"github.com/busedmrly/vitrin/internal/search"
	"github.com/busedmrly/vitrin/internal/tui/styles"
)

const quickJumpMaxResults = 10

// QuickJump is the fuzzy title overlay. It matches against the whole
// catalog regardless of active filters; confirming a result opens its
// detail view.
type QuickJump struct {
	input   textinput.Model
	index   *search.Index
	results []search.Result
	cursor  int
	visible bool
	width   int
	height  int
}

// NewQuickJump creates a new quick-jump component
func NewQuickJump() QuickJump {
	ti := textinput.New()
	ti.Placeholder = "Jump to title..."
	ti.CharLimit = 100
	ti.Width = 40
	ti.Prompt = "» "
	ti.PromptStyle = styles.AccentStyle
	ti.TextStyle = lipgloss.NewStyle().Foreground(styles.White)
	ti.PlaceholderStyle = styles.DimStyle

	return QuickJump{input: ti}
}

// SetIndex swaps the lookup table after a catalog (re)load
func (q *QuickJump) SetIndex(index *search.Index) {
	q.index = index
}

// Show opens the overlay with an empty query
func (q *QuickJump) Show() tea.Cmd {
	q.visible = true
	q.input.SetValue("")
	q.results = nil
	q.cursor = 0
	return q.input.Focus()
}

// Hide dismisses the overlay
func (q *QuickJump) Hide() {
	q.visible = false
	q.input.Blur()
}

// IsVisible returns whether the overlay is shown
func (q QuickJump) IsVisible() bool {
	return q.visible
}

// SetSize updates the component dimensions
func (q *QuickJump) SetSize(width, height int) {
	q.width = width
	q.height = height
}

// Update processes a message while the overlay is visible. A non-nil
// selected record means the user confirmed a match; the overlay closes
// itself in that case.
func (q QuickJump) Update(msg tea.Msg) (QuickJump, tea.Cmd, *domain.MediaRecord) {
	if !q.visible {
		return q, nil, nil
	}

	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc":
			q.Hide()
			return q, nil, nil
		case "enter":
			if q.cursor < len(q.results) {
				rec := q.results[q.cursor].Record
				q.Hide()
				return q, nil, &rec
			}
			return q, nil, nil
		case "down", "ctrl+n":
			limit := len(q.results)
			if limit > quickJumpMaxResults {
				limit = quickJumpMaxResults
			}
			if q.cursor < limit-1 {
				q.cursor++
			}
			return q, nil, nil
		case "up", "ctrl+p":
			if q.cursor > 0 {
				q.cursor--
			}
			return q, nil, nil
		}
	}

	before := q.input.Value()
	var cmd tea.Cmd
	q.input, cmd = q.input.Update(msg)

	// Matching is synchronous over the in-memory index, so requery on
	// every change rather than through the debounce path.
	if q.input.Value() != before && q.index != nil {
		q.results = q.index.Query(q.input.Value())
		q.cursor = 0
	}

	return q, cmd, nil
}

// View renders the overlay
func (q QuickJump) View() string {
	if !q.visible {
		return ""
	}

	modalWidth := q.width * 2 / 3
	if modalWidth < 40 {
		modalWidth = 40
	}
	if modalWidth > 70 {
		modalWidth = 70
	}

	var b strings.Builder
	b.WriteString(styles.ModalTitleStyle.Render("Quick Jump"))
	b.WriteString("\n")
	b.WriteString(q.input.View())
	b.WriteString("\n\n")
	q.renderResults(&b, modalWidth)

	frameW, _ := styles.ModalStyle.GetFrameSize()
	return styles.ModalStyle.
		Width(modalWidth - frameW).
		Render(strings.TrimRight(b.String(), "\n"))
}

// renderResults renders the ranked matches under the input
func (q QuickJump) renderResults(b *strings.Builder, modalWidth int) {
	if len(q.results) == 0 {
		if q.input.Value() != "" && q.index != nil {
			line := styles.DimStyle.Render("No matches")
			if suggestion, ok := q.index.Suggest(q.input.Value()); ok {
				line += styles.DimStyle.Render(" · did you mean ") + styles.AccentStyle.Render(suggestion) + styles.DimStyle.Render("?")
			}
			b.WriteString(line)
		}
		return
	}

	count := len(q.results)
	if count > quickJumpMaxResults {
		count = quickJumpMaxResults
	}

	titleWidth := modalWidth - 18
	for i := 0; i < count; i++ {
		res := q.results[i]
		selected := i == q.cursor

		badge := styles.DimBadgeStyle.Render(styles.Pad(res.Record.Type.Display(), 6))
		title := styles.Truncate(res.Record.DisplayTitle(), titleWidth)
		year := ""
		if res.Record.Year > 0 {
			year = styles.DimStyle.Render(fmt.Sprintf(" (%d)", res.Record.Year))
		}

		b.WriteString(badge)
		b.WriteString(" ")
		b.WriteString(highlightMatches(title, res.MatchedIndexes, selected))
		b.WriteString(year)
		b.WriteString("\n")
	}

	if len(q.results) > count {
		b.WriteString(styles.DimStyle.Render(fmt.Sprintf("... and %d more", len(q.results)-count)))
	}
}

// highlightMatches renders text with the matched character positions
// emphasized. Batches of runes with the same match state render as one
// styled segment.
func highlightMatches(text string, matchedIndexes []int, selected bool) string {
	normal := styles.SubtitleStyle
	match := styles.MatchHighlightStyle
	if selected {
		normal = lipgloss.NewStyle().Foreground(styles.White).Background(styles.SlateLight)
		match = styles.MatchHighlightSelectedStyle
	}

	if len(matchedIndexes) == 0 {
		return normal.Render(text)
	}

	matchSet := make(map[int]bool, len(matchedIndexes))
	for _, idx := range matchedIndexes {
		matchSet[idx] = true
	}

	var out strings.Builder
	runes := []rune(text)
	i := 0
	for i < len(runes) {
		isMatch := matchSet[i]
		var batch strings.Builder
		for i < len(runes) && matchSet[i] == isMatch {
			batch.WriteRune(runes[i])
			i++
		}
		if isMatch {
			out.WriteString(match.Render(batch.String()))
		} else {
			out.WriteString(normal.Render(batch.String()))
		}
	}
	return out.String()
}
