package domain

// Preferences handles the local preference store (BoltDB + memory).
// Reads never fail: missing or unreadable entries yield the supplied
// default so the application always reaches a usable state.
type Preferences interface {
	// FavoriteIDs returns the persisted favorite record ids,
	// or an empty set when nothing usable is stored.
	FavoriteIDs() []int
	SaveFavoriteIDs(ids []int) error

	// ViewMode returns the persisted listing layout,
	// or fallback when nothing usable is stored.
	ViewMode(fallback ViewMode) ViewMode
	SaveViewMode(mode ViewMode) error

	Close() error
}
