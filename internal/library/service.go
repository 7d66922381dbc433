package library

import (
	"context"
	"log/slog"
	"sort"

	"github.com/busedmrly/vitrin/internal/catalog"
	"github.com/busedmrly/vitrin/internal/domain"
)

// ListingState tells the browse surface which empty-state message to show,
// if any.
type ListingState int

const (
	ListingOK ListingState = iota
	ListingNoResults
	ListingNoFavorites
)

// Listing is the projection the browse surface renders.
type Listing struct {
	Records []domain.MediaRecord
	State   ListingState

	// ClearHint suggests clearing filters on an empty result. Only set
	// when at least one criterion is active.
	ClearHint bool
}

// Service orchestrates catalog source + preference store operations and
// owns the browsing session state. Mutating methods are not safe for
// concurrent use; the TUI calls them from its update loop only.
type Service struct {
	source domain.CatalogSource
	store  domain.Preferences
	logger *slog.Logger

	all       []domain.MediaRecord
	filtered  []domain.MediaRecord
	favorites map[int]bool
	criteria  domain.FilterCriteria
	page      domain.Page
	viewMode  domain.ViewMode
}

// NewService creates a library service seeded from the preference store.
// defaultView is used when the store has no usable view mode.
func NewService(source domain.CatalogSource, store domain.Preferences, defaultView domain.ViewMode, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	if defaultView != domain.ViewGrid && defaultView != domain.ViewList {
		defaultView = domain.DefaultViewMode
	}

	s := &Service{
		source:    source,
		store:     store,
		logger:    logger,
		all:       []domain.MediaRecord{},
		favorites: make(map[int]bool),
		criteria:  domain.DefaultCriteria(),
		page:      domain.PageHome,
		viewMode:  store.ViewMode(defaultView),
	}
	for _, id := range store.FavoriteIDs() {
		s.favorites[id] = true
	}
	s.recompute()
	return s
}

// FetchCatalog loads the catalog document from the source. It does not
// touch session state, so it is safe to call from a command goroutine;
// hand the result to SetCatalog on the update loop.
func (s *Service) FetchCatalog(ctx context.Context) ([]domain.MediaRecord, error) {
	records, err := s.source.Fetch(ctx)
	if err != nil {
		s.logger.Error("failed to fetch catalog", "error", err)
		return nil, err
	}
	s.logger.Debug("fetched catalog", "count", len(records))
	return records, nil
}

// SetCatalog replaces the catalog and reapplies the active criteria.
// Pass nil after a failed fetch to continue with an empty catalog.
func (s *Service) SetCatalog(records []domain.MediaRecord) {
	if records == nil {
		records = []domain.MediaRecord{}
	}
	s.all = records
	s.recompute()
}

// SetCriteria merges the patch into the active criteria and reapplies
// them.
func (s *Service) SetCriteria(patch domain.CriteriaPatch) {
	s.criteria = patch.Apply(s.criteria)
	s.recompute()
}

// ClearFilters drops every active criterion. The sort order survives.
func (s *Service) ClearFilters() {
	keep := s.criteria.Sort
	s.criteria = domain.DefaultCriteria()
	s.criteria.Sort = keep
	if forced, ok := s.page.ForcedType(); ok {
		s.criteria.Type = forced
	}
	s.recompute()
}

// Navigate switches pages. Pages dedicated to one media type force the
// type criterion; the favorites page leaves criteria alone because it
// ignores them.
func (s *Service) Navigate(page domain.Page) {
	s.page = page
	if forced, ok := page.ForcedType(); ok {
		s.criteria.Type = forced
	}
	s.recompute()
	s.logger.Debug("navigated", "page", string(page))
}

// ToggleFavorite flips membership for the record and persists the whole
// set immediately. Unknown ids leave the set untouched.
func (s *Service) ToggleFavorite(id int) (string, bool, error) {
	rec, ok := s.Record(id)
	if !ok {
		return "", false, domain.ErrRecordNotFound
	}

	if s.favorites[id] {
		delete(s.favorites, id)
	} else {
		s.favorites[id] = true
	}

	if err := s.store.SaveFavoriteIDs(s.favoriteIDs()); err != nil {
		s.logger.Error("failed to save favorites", "error", err, "id", id)
	}
	return rec.DisplayTitle(), s.favorites[id], nil
}

// IsFavorite reports membership in the favorite set.
func (s *Service) IsFavorite(id int) bool {
	return s.favorites[id]
}

// Favorites returns a copy of the favorite id set for display markers.
func (s *Service) Favorites() map[int]bool {
	out := make(map[int]bool, len(s.favorites))
	for id := range s.favorites {
		out[id] = true
	}
	return out
}

// ToggleViewMode flips between grid and list and persists the choice.
func (s *Service) ToggleViewMode() domain.ViewMode {
	return s.SetViewMode(s.viewMode.Toggle())
}

// SetViewMode switches the presentation mode and persists it.
func (s *Service) SetViewMode(mode domain.ViewMode) domain.ViewMode {
	s.viewMode = mode
	if err := s.store.SaveViewMode(mode); err != nil {
		s.logger.Error("failed to save view mode", "error", err)
	}
	return s.viewMode
}

// Visible projects the records the current page should display.
func (s *Service) Visible() Listing {
	if s.page == domain.PageFavorites {
		favs := s.favoriteRecords()
		if len(favs) == 0 {
			return Listing{Records: favs, State: ListingNoFavorites}
		}
		return Listing{Records: favs, State: ListingOK}
	}

	if len(s.filtered) == 0 {
		return Listing{
			Records:   s.filtered,
			State:     ListingNoResults,
			ClearHint: s.criteria.HasActiveFilter(),
		}
	}
	return Listing{Records: s.filtered, State: ListingOK}
}

// Record looks a record up by id across the whole catalog.
func (s *Service) Record(id int) (domain.MediaRecord, bool) {
	for _, rec := range s.all {
		if rec.ID == id {
			return rec, true
		}
	}
	return domain.MediaRecord{}, false
}

// All returns the full catalog in natural order.
func (s *Service) All() []domain.MediaRecord {
	return s.all
}

// Total is the catalog size before filtering.
func (s *Service) Total() int {
	return len(s.all)
}

// Genres lists the distinct genres across the catalog.
func (s *Service) Genres() []string {
	return catalog.UniqueGenres(s.all)
}

// Years lists the distinct release years across the catalog, newest
// first.
func (s *Service) Years() []int {
	return catalog.UniqueYears(s.all)
}

// Criteria returns the active filter criteria.
func (s *Service) Criteria() domain.FilterCriteria {
	return s.criteria
}

// Page returns the active page.
func (s *Service) Page() domain.Page {
	return s.page
}

// ViewMode returns the active presentation mode.
func (s *Service) ViewMode() domain.ViewMode {
	return s.viewMode
}

// --- Private helpers ---

func (s *Service) recompute() {
	s.filtered = catalog.Apply(s.all, s.criteria)
}

// favoriteRecords projects the favorite set in natural catalog order.
// The active sort and filters do not apply here.
func (s *Service) favoriteRecords() []domain.MediaRecord {
	out := make([]domain.MediaRecord, 0, len(s.favorites))
	for _, rec := range s.all {
		if s.favorites[rec.ID] {
			out = append(out, rec)
		}
	}
	return out
}

func (s *Service) favoriteIDs() []int {
	ids := make([]int, 0, len(s.favorites))
	for id := range s.favorites {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}
