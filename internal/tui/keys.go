package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the application-level key bindings. Listing movement
// lives in components.BrowserKeyMap; everything here routes through the
// top-level update loop.
type KeyMap struct {
	// Navigation
	Enter    key.Binding
	NextPage key.Binding
	PrevPage key.Binding

	// Actions
	Quit         key.Binding
	Help         key.Binding
	Escape       key.Binding
	Search       key.Binding
	QuickJump    key.Binding
	Sort         key.Binding
	Refresh      key.Binding
	Favorite     key.Binding
	ViewMode     key.Binding
	ClearFilters key.Binding
	Info         key.Binding

	// Filter cycles
	Genre key.Binding
	Year  key.Binding
	Type  key.Binding
}

// DefaultKeyMap returns the default key bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		// Navigation
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "details"),
		),
		NextPage: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next page"),
		),
		PrevPage: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("S-tab", "previous page"),
		),

		// Actions
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel/clear"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		QuickJump: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "quick jump"),
		),
		Sort: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "sort"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reload catalog"),
		),
		Favorite: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "toggle favorite"),
		),
		ViewMode: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "grid/list view"),
		),
		ClearFilters: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "clear filters"),
		),
		Info: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "details"),
		),

		// Filter cycles
		Genre: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "cycle genre"),
		),
		Year: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "cycle year"),
		),
		Type: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "cycle type"),
		),
	}
}

// Keys is the global key bindings instance
var Keys = DefaultKeyMap()
