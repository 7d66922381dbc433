package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/busedmrly/vitrin/internal/domain"
	"github.com/busedmrly/vitrin/internal/tui/styles"
)

// Layout constants for the browser
const (
	// Border adds 1 char on each side (left+right for width, top+bottom for height)
	BorderWidth  = 2
	BorderHeight = 2

	// Padding inside the border (Padding(0,1) = 1 left + 1 right)
	HorizontalPadding = 2

	// Scroll indicators ("↑ more" and "↓ more") each take 1 line
	ScrollIndicatorLines = 2

	// Breadcrumb line at top of content area
	BreadcrumbLines = 1

	// Extra safety margin for item width calculations
	ItemWidthMargin = 2

	// Card geometry: total width and height including the cell border
	CardWidth  = 26
	CardHeight = 6
)

// posterGlyph is the stand-in for cover art, one per media type.
func posterGlyph(t domain.MediaType) (string, lipgloss.Color) {
	switch t {
	case domain.TypeMovie:
		return "◆", styles.Blue
	case domain.TypeSeries:
		return "■", styles.Purple
	case domain.TypeBook:
		return "▲", styles.Green
	default:
		return "·", styles.DimGray
	}
}

func typeBadge(t domain.MediaType) string {
	switch t {
	case domain.TypeMovie:
		return styles.MovieBadgeStyle.Render(t.Display())
	case domain.TypeSeries:
		return styles.SeriesBadgeStyle.Render(t.Display())
	case domain.TypeBook:
		return styles.BookBadgeStyle.Render(t.Display())
	default:
		return styles.DimStyle.Render(t.Display())
	}
}

// Browser is the main catalog listing component. The same records render
// as a card grid or a flat list depending on the view mode.
type Browser struct {
	records   []domain.MediaRecord
	favorites map[int]bool
	mode      domain.ViewMode

	// Selection
	cursor    int
	rowOffset int // Grid rows or list lines, depending on mode

	// Dimensions
	width   int
	height  int
	columns int
	maxRows int // Visible grid rows
	maxList int // Visible list lines
	focused bool

	// Border title (breadcrumb)
	breadcrumb string

	// Empty-state copy supplied by the app
	emptyMessage string
	emptyHint    string
}

// NewBrowser creates a new browser component
func NewBrowser() Browser {
	return Browser{
		mode:      domain.DefaultViewMode,
		favorites: make(map[int]bool),
	}
}

// SetRecords replaces the listing and resets the viewport
func (b *Browser) SetRecords(records []domain.MediaRecord) {
	b.records = records
	b.cursor = 0
	b.rowOffset = 0
}

// UpdateRecords replaces the listing but keeps the cursor in place,
// clamped to the new bounds. Used when a favorite toggle shrinks the
// favorites page under the cursor.
func (b *Browser) UpdateRecords(records []domain.MediaRecord) {
	b.records = records
	if b.cursor >= len(records) {
		b.cursor = len(records) - 1
	}
	if b.cursor < 0 {
		b.cursor = 0
	}
	b.ensureVisible()
}

// SetFavorites swaps the favorite marker set
func (b *Browser) SetFavorites(favorites map[int]bool) {
	if favorites == nil {
		favorites = make(map[int]bool)
	}
	b.favorites = favorites
}

// SetMode switches between grid and list presentation. The selection
// survives the switch.
func (b *Browser) SetMode(mode domain.ViewMode) {
	b.mode = mode
	b.rowOffset = 0
	b.ensureVisible()
}

// Mode returns the current presentation mode
func (b Browser) Mode() domain.ViewMode {
	return b.mode
}

// SetSize updates the component dimensions
func (b *Browser) SetSize(width, height int) {
	b.width = width
	b.height = height

	interiorWidth := width - BorderWidth - HorizontalPadding
	b.columns = interiorWidth / CardWidth
	if b.columns < 1 {
		b.columns = 1
	}

	interiorHeight := height - BorderHeight - ScrollIndicatorLines - BreadcrumbLines
	b.maxRows = interiorHeight / CardHeight
	if b.maxRows < 1 {
		b.maxRows = 1
	}
	b.maxList = interiorHeight
	if b.maxList < 1 {
		b.maxList = 1
	}

	b.ensureVisible()
}

// SetBreadcrumb sets the breadcrumb text displayed above the listing
func (b *Browser) SetBreadcrumb(crumb string) {
	b.breadcrumb = crumb
}

// SetEmptyState sets the copy shown when there is nothing to list
func (b *Browser) SetEmptyState(message, hint string) {
	b.emptyMessage = message
	b.emptyHint = hint
}

// SetFocused sets the focus state
func (b *Browser) SetFocused(focused bool) {
	b.focused = focused
}

// IsFocused returns the focus state
func (b Browser) IsFocused() bool {
	return b.focused
}

// IsEmpty returns true if there are no records
func (b Browser) IsEmpty() bool {
	return len(b.records) == 0
}

// Cursor returns the current cursor position
func (b Browser) Cursor() int {
	return b.cursor
}

// SetCursor sets the cursor position, clamped to bounds
func (b *Browser) SetCursor(pos int) {
	max := len(b.records) - 1
	if max < 0 {
		b.cursor = 0
		return
	}
	if pos < 0 {
		pos = 0
	}
	if pos > max {
		pos = max
	}
	b.cursor = pos
	b.ensureVisible()
}

// SelectedRecord returns the record under the cursor
func (b Browser) SelectedRecord() (domain.MediaRecord, bool) {
	if len(b.records) == 0 || b.cursor >= len(b.records) {
		return domain.MediaRecord{}, false
	}
	return b.records[b.cursor], true
}

// visibleLines is how many cursor rows fit in the current mode
func (b Browser) visibleLines() int {
	if b.mode == domain.ViewGrid {
		return b.maxRows
	}
	return b.maxList
}

// cursorRow maps the cursor to its scroll row for the current mode
func (b Browser) cursorRow() int {
	if b.mode == domain.ViewGrid && b.columns > 0 {
		return b.cursor / b.columns
	}
	return b.cursor
}

// ensureVisible keeps the cursor row inside the viewport
func (b *Browser) ensureVisible() {
	row := b.cursorRow()
	visible := b.visibleLines()
	if row < b.rowOffset {
		b.rowOffset = row
	}
	if row >= b.rowOffset+visible {
		b.rowOffset = row - visible + 1
	}
	if b.rowOffset < 0 {
		b.rowOffset = 0
	}
}

// step moves the cursor by delta, clamped to bounds
func (b *Browser) step(delta int) {
	b.cursor += delta
	if b.cursor < 0 {
		b.cursor = 0
	}
	if b.cursor > len(b.records)-1 {
		b.cursor = len(b.records) - 1
	}
	b.ensureVisible()
}

// Init initializes the component
func (b Browser) Init() tea.Cmd {
	return nil
}

// Update handles navigation keys
func (b Browser) Update(msg tea.Msg) (Browser, tea.Cmd) {
	if !b.focused || len(b.records) == 0 {
		return b, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return b, nil
	}

	vertical := 1
	if b.mode == domain.ViewGrid {
		vertical = b.columns
	}

	switch {
	case key.Matches(keyMsg, BrowserKeys.Down):
		if b.cursor+vertical <= len(b.records)-1 {
			b.step(vertical)
		} else if b.mode == domain.ViewGrid && b.cursorRow() < (len(b.records)-1)/b.columns {
			// Land on the ragged last row
			b.SetCursor(len(b.records) - 1)
		}
	case key.Matches(keyMsg, BrowserKeys.Up):
		b.step(-vertical)
	case key.Matches(keyMsg, BrowserKeys.Left):
		if b.mode == domain.ViewGrid {
			b.step(-1)
		}
	case key.Matches(keyMsg, BrowserKeys.Right):
		if b.mode == domain.ViewGrid {
			b.step(1)
		}
	case key.Matches(keyMsg, BrowserKeys.Home):
		b.cursor = 0
		b.rowOffset = 0
	case key.Matches(keyMsg, BrowserKeys.End):
		b.SetCursor(len(b.records) - 1)
	case key.Matches(keyMsg, BrowserKeys.HalfDown):
		b.step(vertical * (b.visibleLines() / 2))
	case key.Matches(keyMsg, BrowserKeys.HalfUp):
		b.step(-vertical * (b.visibleLines() / 2))
	}

	return b, nil
}

// View renders the component
func (b Browser) View() string {
	style := styles.InactiveBorder
	if b.focused {
		style = styles.ActiveBorder
	}

	var content string
	if b.mode == domain.ViewGrid {
		content = b.renderGrid()
	} else {
		content = b.renderList()
	}

	// Subtract frame (border) size so total rendered size equals width x height
	frameW, frameH := style.GetFrameSize()

	return style.
		Width(b.width - frameW).
		Height(b.height - frameH).
		Render(content)
}

// renderHeaderFooter builds the breadcrumb and scroll indicator lines
func (b Browser) renderHeaderFooter(totalRows, end int) (string, string, string) {
	itemWidth := b.width - BorderWidth - HorizontalPadding - ItemWidthMargin

	// Breadcrumb is always first line (even if empty, for consistent layout)
	breadcrumbLine := " "
	if b.breadcrumb != "" {
		breadcrumbLine = styles.AccentStyle.Render(styles.Truncate(b.breadcrumb, itemWidth))
	}

	// ALWAYS reserve space for the indicators to prevent layout shifts
	header := " "
	if b.rowOffset > 0 {
		header = styles.DimStyle.Render("↑ more")
	}
	footer := " "
	if end < totalRows {
		footer = styles.DimStyle.Render("↓ more")
	}

	return breadcrumbLine, header, footer
}

// renderEmpty renders the empty-state copy
func (b Browser) renderEmpty() string {
	breadcrumbLine, _, _ := b.renderHeaderFooter(0, 0)

	message := b.emptyMessage
	if message == "" {
		message = "Nothing to show"
	}
	out := breadcrumbLine + "\n \n" + styles.DimStyle.Render(message)
	if b.emptyHint != "" {
		out += "\n" + styles.SubtitleStyle.Render(b.emptyHint)
	}
	return out
}

// renderGrid renders the card grid view
func (b Browser) renderGrid() string {
	if len(b.records) == 0 {
		return b.renderEmpty()
	}

	totalRows := (len(b.records) + b.columns - 1) / b.columns
	endRow := b.rowOffset + b.maxRows
	if endRow > totalRows {
		endRow = totalRows
	}

	var rows []string
	for row := b.rowOffset; row < endRow; row++ {
		var cards []string
		for col := 0; col < b.columns; col++ {
			i := row*b.columns + col
			if i >= len(b.records) {
				break
			}
			cards = append(cards, b.renderCard(b.records[i], i == b.cursor))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}

	breadcrumbLine, header, footer := b.renderHeaderFooter(totalRows, endRow)
	return breadcrumbLine + "\n" + header + "\n" + strings.Join(rows, "\n") + "\n" + footer
}

// renderCard renders one record as a bordered card
func (b Browser) renderCard(rec domain.MediaRecord, selected bool) string {
	inner := CardWidth - 4 // Cell border and padding

	glyph, glyphColor := posterGlyph(rec.Type)
	head := lipgloss.NewStyle().Foreground(glyphColor).Render(glyph) + " " + typeBadge(rec.Type)

	marker := styles.EmptyStar
	if b.favorites[rec.ID] {
		marker = styles.FavoriteStar
	}
	rating := styles.RatingStyle.Render(rec.FormattedRating())
	info := marker + " " + rating

	gap := inner - lipgloss.Width(head) - lipgloss.Width(info)
	if gap < 1 {
		gap = 1
	}
	line1 := head + strings.Repeat(" ", gap) + info

	line2 := styles.TitleStyle.Render(styles.Truncate(rec.DisplayTitle(), inner))

	meta := fmt.Sprintf("%d", rec.Year)
	if rec.Duration != "" {
		meta += " · " + rec.Duration
	}
	line3 := styles.DimStyle.Render(styles.Truncate(meta, inner))

	genres := rec.Genres
	if len(genres) > 2 {
		genres = genres[:2]
	}
	line4 := styles.SubtitleStyle.Render(styles.Truncate(strings.Join(genres, ", "), inner))

	cell := styles.GridCellStyle
	if selected {
		cell = styles.GridCellSelectedStyle
	}

	return cell.Width(CardWidth - 2).Render(line1 + "\n" + line2 + "\n" + line3 + "\n" + line4)
}

// renderList renders the flat list view
func (b Browser) renderList() string {
	if len(b.records) == 0 {
		return b.renderEmpty()
	}

	itemWidth := b.width - BorderWidth - HorizontalPadding - ItemWidthMargin

	end := b.rowOffset + b.maxList
	if end > len(b.records) {
		end = len(b.records)
	}

	var lines []string
	for i := b.rowOffset; i < end; i++ {
		lines = append(lines, b.renderRow(b.records[i], i == b.cursor, itemWidth))
	}

	breadcrumbLine, header, footer := b.renderHeaderFooter(len(b.records), end)
	return breadcrumbLine + "\n" + header + "\n" + strings.Join(lines, "\n") + "\n" + footer
}

// renderRow renders one record as a list row
func (b Browser) renderRow(rec domain.MediaRecord, selected bool, width int) string {
	markerChar := styles.NonFavoriteChar
	markerFg := styles.DimGray
	if b.favorites[rec.ID] {
		markerChar = styles.FavoriteChar
		markerFg = styles.Gold
	}

	_, glyphColor := posterGlyph(rec.Type)
	badge := styles.Pad(rec.Type.Display(), 5)

	title := rec.DisplayTitle()
	if rec.Year > 0 {
		title = fmt.Sprintf("%s (%d)", title, rec.Year)
	}
	title = styles.Truncate(title, width-24)

	rating := rec.FormattedRating()
	gold := styles.Gold
	dimGray := styles.DimGray

	parts := []styles.RowPart{
		{Text: markerChar, Foreground: &markerFg},
		{Text: " " + badge, Foreground: &glyphColor},
		{Text: " " + title, Foreground: nil},
		{Text: " " + rating, Foreground: &gold},
	}
	if rec.Duration != "" {
		parts = append(parts, styles.RowPart{Text: " · " + rec.Duration, Foreground: &dimGray})
	}

	return styles.RenderListRow(parts, selected, width)
}
