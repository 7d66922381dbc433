package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/busedmrly/vitrin/internal/domain"
	"github.com/busedmrly/vitrin/internal/library"
	"github.com/busedmrly/vitrin/internal/search"
	"github.com/busedmrly/vitrin/internal/tui/components"
)

// ApplicationState represents the current input mode
type ApplicationState int

const (
	StateBrowsing ApplicationState = iota
	StateSearching
	StateHelp
)

// Vertical chrome around the browser
const (
	NavbarHeight    = 1
	FilterBarHeight = 1
	FooterHeight    = 1
	ChromeHeight    = NavbarHeight + FilterBarHeight + FooterHeight
)

const spinnerInterval = 100 * time.Millisecond

// Model is the main Bubble Tea model for the application
type Model struct {
	// Application state
	State ApplicationState
	Ready bool

	// Services
	Svc *library.Service

	// UI components
	Navbar    components.Navbar
	FilterBar components.FilterBar
	Browser   components.Browser
	Detail    components.DetailModal
	SortModal components.SortModal
	QuickJump components.QuickJump

	// Search debounce
	debounce      Debouncer
	debounceDelay time.Duration

	// Catalog fetch budget
	fetchTimeout time.Duration

	// Dimensions
	Width  int
	Height int

	// UI state
	StatusMsg    string
	StatusIsErr  bool
	Loading      bool
	SpinnerFrame int
}

// NewModel creates a new application model
func NewModel(svc *library.Service, debounceDelay, fetchTimeout time.Duration) Model {
	browser := components.NewBrowser()
	browser.SetMode(svc.ViewMode())
	browser.SetFocused(true)

	return Model{
		State:         StateBrowsing,
		Svc:           svc,
		Navbar:        components.NewNavbar(),
		FilterBar:     components.NewFilterBar(),
		Browser:       browser,
		Detail:        components.NewDetailModal(),
		SortModal:     components.NewSortModal(),
		QuickJump:     components.NewQuickJump(),
		debounceDelay: debounceDelay,
		fetchTimeout:  fetchTimeout,
		Loading:       true,
	}
}

// Init starts the catalog load and the loading spinner
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		LoadCatalogCmd(m.Svc, m.fetchTimeout),
		TickCmd(spinnerInterval),
	)
}

// Update handles all messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Ready = true
		m.updateLayout()
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case TickMsg:
		if !m.Loading {
			return m, nil
		}
		m.SpinnerFrame++
		return m, TickCmd(spinnerInterval)

	case CatalogLoadedMsg:
		m.Loading = false
		m.Svc.SetCatalog(msg.Records)
		m.QuickJump.SetIndex(search.NewIndex(m.Svc.All()))
		m.refreshListing(false)
		m.StatusMsg = fmt.Sprintf("Loaded %d titles", m.Svc.Total())
		return m, ClearStatusCmd(3 * time.Second)

	case SearchDebouncedMsg:
		// Only the newest burst applies
		if !m.debounce.Current(msg.Seq) {
			return m, nil
		}
		query := msg.Query
		m.Svc.SetCriteria(domain.CriteriaPatch{Search: &query})
		m.refreshListing(false)
		return m, nil

	case ErrMsg:
		m.Loading = false
		m.StatusMsg = msg.Error()
		m.StatusIsErr = true
		m.refreshListing(false)
		return m, ClearStatusCmd(5 * time.Second)

	case StatusMsg:
		m.StatusMsg = msg.Message
		m.StatusIsErr = msg.IsError
		return m, ClearStatusCmd(3 * time.Second)

	case ClearStatusMsg:
		m.StatusMsg = ""
		m.StatusIsErr = false
		return m, nil
	}

	return m, nil
}

// refreshListing re-projects the service state into the components.
// keepCursor keeps the browser selection in place (clamped), used when
// a favorite toggle shrinks the favorites page under the cursor.
func (m *Model) refreshListing(keepCursor bool) {
	listing := m.Svc.Visible()

	m.Browser.SetFavorites(m.Svc.Favorites())
	if keepCursor {
		m.Browser.UpdateRecords(listing.Records)
	} else {
		m.Browser.SetRecords(listing.Records)
	}

	switch listing.State {
	case library.ListingNoFavorites:
		m.Browser.SetEmptyState("No favorites yet", "Press space on a title to add it")
	case library.ListingNoResults:
		hint := ""
		if listing.ClearHint {
			hint = "Press c to clear filters"
		}
		m.Browser.SetEmptyState("No results", hint)
	default:
		m.Browser.SetEmptyState("", "")
	}

	m.Browser.SetBreadcrumb(m.breadcrumb(listing))
	m.Navbar.SetActive(m.Svc.Page())
	m.FilterBar.SetCriteria(m.Svc.Criteria())
	m.FilterBar.SetCounts(len(listing.Records), m.Svc.Total())
}

// breadcrumb builds the browser border title for the current page
func (m Model) breadcrumb(listing library.Listing) string {
	page := m.Svc.Page()
	if page == domain.PageFavorites {
		return fmt.Sprintf("%s (%d)", page.Title(), len(listing.Records))
	}
	return fmt.Sprintf("%s (%d/%d)", page.Title(), len(listing.Records), m.Svc.Total())
}

// navigate switches pages and resets the listing viewport to the top
func (m *Model) navigate(page domain.Page) {
	m.Svc.Navigate(page)
	m.refreshListing(false)
}

// toggleFavorite flips membership for a record and reports the outcome
// in the status bar. Unknown ids stay silent.
func (m *Model) toggleFavorite(id int) tea.Cmd {
	title, nowFavorite, err := m.Svc.ToggleFavorite(id)
	if err != nil {
		return nil
	}

	if m.Detail.IsVisible() {
		m.Detail.SetFavorite(nowFavorite)
	}

	// On the favorites page the toggled record leaves the listing
	m.refreshListing(m.Svc.Page() == domain.PageFavorites)

	if nowFavorite {
		m.StatusMsg = "Added to favorites: " + title
	} else {
		m.StatusMsg = "Removed from favorites: " + title
	}
	m.StatusIsErr = false
	return ClearStatusCmd(3 * time.Second)
}

// updateLayout propagates window size to the components
func (m *Model) updateLayout() {
	if m.Width == 0 || m.Height == 0 {
		return
	}

	m.Navbar.SetWidth(m.Width)
	m.FilterBar.SetWidth(m.Width)
	m.Browser.SetSize(m.Width, m.Height-ChromeHeight)
	m.Detail.SetSize(min(m.Width-4, 80), m.Height-4)
	m.QuickJump.SetSize(m.Width, m.Height)
}
