package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/busedmrly/vitrin/internal/domain"
	"github.com/busedmrly/vitrin/internal/tui/styles"
)

// Layout constants for the detail modal
const (
	DetailBorderHeight     = 2
	DetailScrollIndicators = 2
)

// detailContent holds the three-zone layout content
type detailContent struct {
	header string // fixed top
	body   string // scrollable middle
	footer string // fixed bottom
}

// DetailModal shows the full metadata for one record. While visible it
// consumes every key; enter toggles the favorite, esc closes.
type DetailModal struct {
	visible  bool
	record   domain.MediaRecord
	favorite bool

	width  int
	height int
	offset int // body scroll offset
}

// NewDetailModal creates a new detail modal
func NewDetailModal() DetailModal {
	return DetailModal{}
}

// Show opens the modal for a record
func (m *DetailModal) Show(rec domain.MediaRecord, favorite bool) {
	m.visible = true
	m.record = rec
	m.favorite = favorite
	m.offset = 0 // Reset scroll on record change
}

// Hide dismisses the modal
func (m *DetailModal) Hide() {
	m.visible = false
}

// IsVisible returns whether the modal is shown
func (m DetailModal) IsVisible() bool {
	return m.visible
}

// SetFavorite updates the favorite marker while the modal stays open
func (m *DetailModal) SetFavorite(favorite bool) {
	m.favorite = favorite
}

// SetSize updates the modal dimensions
func (m *DetailModal) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// HandleKey processes a key press, returns (handled, toggle). A non-nil
// toggle carries the record id whose favorite state should flip.
func (m *DetailModal) HandleKey(key string) (handled bool, toggle *int) {
	if !m.visible {
		return false, nil
	}

	switch key {
	case "j", "down":
		m.offset++ // Clamped during render
		return true, nil
	case "k", "up":
		if m.offset > 0 {
			m.offset--
		}
		return true, nil
	case "enter", "f", " ":
		id := m.record.ID
		return true, &id
	case "esc", "q", "i":
		m.visible = false
		return true, nil
	}

	return true, nil // consume all keys when visible
}

// View renders the modal
func (m DetailModal) View() string {
	if !m.visible {
		return ""
	}

	frameW, frameH := styles.ModalStyle.GetFrameSize()
	contentWidth := m.width - frameW
	if contentWidth < 20 {
		contentWidth = 20
	}

	content := m.renderContent(contentWidth)

	headerLines := splitLines(content.header)
	bodyLines := splitLines(content.body)
	footerLines := splitLines(content.footer)

	maxVisible := m.height - frameH - DetailScrollIndicators
	availableForBody := maxVisible - len(headerLines) - len(footerLines)
	if availableForBody < 1 {
		availableForBody = 1
	}

	// Clamp body scroll offset
	maxOffset := len(bodyLines) - availableForBody
	if maxOffset < 0 {
		maxOffset = 0
	}
	offset := m.offset
	if offset > maxOffset {
		offset = maxOffset
	}

	end := offset + availableForBody
	if end > len(bodyLines) {
		end = len(bodyLines)
	}
	visibleBody := bodyLines[offset:end]

	// Scroll indicators for the body only
	up := " "
	if offset > 0 {
		up = styles.DimStyle.Render("↑ more")
	}
	down := " "
	if end < len(bodyLines) {
		down = styles.DimStyle.Render("↓ more")
	}

	var parts []string
	parts = append(parts, content.header)
	parts = append(parts, up)
	if len(visibleBody) > 0 {
		parts = append(parts, strings.Join(visibleBody, "\n"))
	}
	// Pad so the footer stays pinned when the body is short
	for i := len(visibleBody); i < availableForBody; i++ {
		parts = append(parts, "")
	}
	parts = append(parts, down)
	if content.footer != "" {
		parts = append(parts, content.footer)
	}

	return styles.ModalStyle.
		Width(contentWidth).
		Render(strings.Join(parts, "\n"))
}

// renderContent renders the record as three zones
func (m DetailModal) renderContent(width int) detailContent {
	rec := m.record

	var header strings.Builder

	header.WriteString(styles.TitleStyle.Render(styles.Truncate(rec.DisplayTitle(), width)))
	header.WriteString("\n")

	// When a localized title leads, keep the original underneath
	if rec.TitleLocalized != "" && rec.Title != "" && rec.Title != rec.DisplayTitle() {
		header.WriteString(styles.SubtitleStyle.Render(styles.Truncate(rec.Title, width)))
		header.WriteString("\n")
	}

	// Meta line: Year · Duration · Type
	var metaParts []string
	if rec.Year > 0 {
		metaParts = append(metaParts, fmt.Sprintf("%d", rec.Year))
	}
	if rec.Duration != "" {
		metaParts = append(metaParts, rec.Duration)
	}
	metaParts = append(metaParts, rec.Type.Display())
	header.WriteString(styles.DimStyle.Render(strings.Join(metaParts, " · ")))
	header.WriteString("\n")

	if len(rec.Genres) > 0 {
		header.WriteString(styles.SubtitleStyle.Render(styles.Truncate(strings.Join(rec.Genres, ", "), width)))
		header.WriteString("\n")
	}

	// Rating and favorite state grouped left
	var statusParts []string
	if rec.Rating > 0 {
		ratingText := "★ " + rec.FormattedRating()
		var ratingStyle lipgloss.Style
		switch {
		case rec.Rating >= 7:
			ratingStyle = lipgloss.NewStyle().Foreground(styles.Green)
		case rec.Rating >= 5:
			ratingStyle = lipgloss.NewStyle().Foreground(styles.Gold)
		default:
			ratingStyle = lipgloss.NewStyle().Foreground(styles.Red)
		}
		statusParts = append(statusParts, ratingStyle.Render(ratingText))
	}
	if m.favorite {
		statusParts = append(statusParts, styles.FavoriteStyle.Render(styles.FavoriteChar+" Favorite"))
	} else {
		statusParts = append(statusParts, styles.DimStyle.Render(styles.NonFavoriteChar+" Not a favorite"))
	}
	header.WriteString(strings.Join(statusParts, "   "))

	// Body: plot
	body := ""
	if rec.Plot != "" {
		bodyWidth := width - 2
		if bodyWidth > 80 {
			bodyWidth = 80
		}
		body = styles.SubtitleStyle.Render(wordWrap(rec.Plot, bodyWidth))
	}

	// Footer: creator, cast, key hints
	var footer strings.Builder
	footer.WriteString(styles.DimStyle.Render(strings.Repeat("─", width)))
	footer.WriteString("\n")

	if creator := rec.Creator(); creator != "" {
		footer.WriteString(styles.DimStyle.Render(rec.CreatorLabel() + ": "))
		footer.WriteString(styles.SubtitleStyle.Render(styles.Truncate(creator, width-len(rec.CreatorLabel())-2)))
		footer.WriteString("\n")
	}
	if len(rec.Cast) > 0 {
		cast := strings.Join(rec.Cast, ", ")
		footer.WriteString(styles.DimStyle.Render(rec.CastLabel() + ": "))
		footer.WriteString(styles.SubtitleStyle.Render(styles.Truncate(cast, width-len(rec.CastLabel())-2)))
		footer.WriteString("\n")
	}

	footer.WriteString(styles.HelpKeyStyle.Render("enter") + styles.HelpDescStyle.Render(" favorite  "))
	footer.WriteString(styles.HelpKeyStyle.Render("j/k") + styles.HelpDescStyle.Render(" scroll  "))
	footer.WriteString(styles.HelpKeyStyle.Render("esc") + styles.HelpDescStyle.Render(" close"))

	return detailContent{
		header: strings.TrimRight(header.String(), "\n"),
		body:   body,
		footer: strings.TrimRight(footer.String(), "\n"),
	}
}

// splitLines splits a string into lines, returning nil for empty string
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

// wordWrap wraps text to the specified width
func wordWrap(text string, width int) string {
	if width <= 0 {
		return text
	}

	var result strings.Builder
	words := strings.Fields(text)
	lineLen := 0

	for i, word := range words {
		wordLen := len([]rune(word))

		if lineLen+wordLen+1 > width && lineLen > 0 {
			result.WriteString("\n")
			lineLen = 0
		}

		if i > 0 && lineLen > 0 {
			result.WriteString(" ")
			lineLen++
		}

		result.WriteString(word)
		lineLen += wordLen
	}

	return result.String()
}
