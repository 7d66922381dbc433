package tui

import (
	"github.com/busedmrly/vitrin/internal/domain"
)

// Message types for the TUI

// ErrMsg represents an error
type ErrMsg struct {
	Err     error
	Context string
}

// Error implements the error interface
func (e ErrMsg) Error() string {
	if e.Context != "" {
		return e.Context + ": " + e.Err.Error()
	}
	return e.Err.Error()
}

// CatalogLoadedMsg signals that the catalog document has been fetched
type CatalogLoadedMsg struct {
	Records []domain.MediaRecord
}

// SearchDebouncedMsg fires when a search input burst has settled. Seq
// identifies the burst; stale messages are dropped.
type SearchDebouncedMsg struct {
	Seq   int
	Query string
}

// StatusMsg sets a temporary status message
type StatusMsg struct {
	Message string
	IsError bool
}

// ClearStatusMsg clears the status bar message
type ClearStatusMsg struct{}

// TickMsg is a general tick message for animations
type TickMsg struct{}
