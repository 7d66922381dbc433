package domain

import "fmt"

// MediaType identifies the kind of catalog record. Values match the
// catalog document's wire format.
type MediaType string

const (
	TypeMovie  MediaType = "film"
	TypeSeries MediaType = "dizi"
	TypeBook   MediaType = "kitap"
)

// Display returns the human-readable name for the media type
func (t MediaType) Display() string {
	switch t {
	case TypeMovie:
		return "Movie"
	case TypeSeries:
		return "Series"
	case TypeBook:
		return "Book"
	default:
		return "Unknown"
	}
}

// MediaRecord represents one catalog entry. Records are immutable after
// the catalog is loaded; all derived views copy rather than mutate.
type MediaRecord struct {
	ID             int       `json:"id"`             // Unique identifier within the catalog
	Title          string    `json:"title"`          // Primary display title
	TitleLocalized string    `json:"titleLocalized"` // Localized title (shown and collated when present)
	Type           MediaType `json:"type"`           // film, dizi or kitap
	Genres         []string  `json:"genres"`         // At least one genre per record
	Year           int       `json:"year"`           // Release/publication year
	Rating         float64   `json:"rating"`         // 0-10 scale
	Duration       string    `json:"duration"`       // Display string, e.g. "148 min" or "432 pages"
	PosterURL      string    `json:"posterUrl"`      // Poster image URL
	BackdropURL    string    `json:"backdropUrl"`    // Backdrop image URL
	Plot           string    `json:"plot"`           // Synopsis
	Director       string    `json:"director"`       // Movies and series
	Author         string    `json:"author"`         // Books
	Cast           []string  `json:"cast"`           // Actors, or characters for books
}

// Creator returns the director for movies/series and the author for
// books, falling back to whichever field is set.
func (m MediaRecord) Creator() string {
	if m.Type == TypeBook {
		if m.Author != "" {
			return m.Author
		}
		return m.Director
	}
	if m.Director != "" {
		return m.Director
	}
	return m.Author
}

// CreatorLabel returns the label to show next to Creator()
func (m MediaRecord) CreatorLabel() string {
	if m.Type == TypeBook {
		return "Author"
	}
	return "Director"
}

// CastLabel returns the label to show next to the cast list
func (m MediaRecord) CastLabel() string {
	if m.Type == TypeBook {
		return "Characters"
	}
	return "Cast"
}

// DisplayTitle returns the localized title when present, else the title
func (m MediaRecord) DisplayTitle() string {
	if m.TitleLocalized != "" {
		return m.TitleLocalized
	}
	return m.Title
}

// FormattedRating returns the rating with one decimal, e.g. "8.4"
func (m MediaRecord) FormattedRating() string {
	return fmt.Sprintf("%.1f", m.Rating)
}

// SortKey identifies one of the supported orderings
type SortKey string

const (
	SortRatingDesc SortKey = "rating-desc"
	SortRatingAsc  SortKey = "rating-asc"
	SortYearDesc   SortKey = "year-desc"
	SortYearAsc    SortKey = "year-asc"
	SortTitleAsc   SortKey = "title-asc"
	SortTitleDesc  SortKey = "title-desc"
)

// DefaultSortKey is applied when no sort has been chosen
const DefaultSortKey = SortRatingDesc

// Label returns the display name for the sort key
func (k SortKey) Label() string {
	switch k {
	case SortRatingDesc:
		return "Rating (high to low)"
	case SortRatingAsc:
		return "Rating (low to high)"
	case SortYearDesc:
		return "Year (newest first)"
	case SortYearAsc:
		return "Year (oldest first)"
	case SortTitleAsc:
		return "Title (A-Z)"
	case SortTitleDesc:
		return "Title (Z-A)"
	default:
		return "Unknown"
	}
}

// SortKeys returns all orderings in menu order
func SortKeys() []SortKey {
	return []SortKey{
		SortRatingDesc,
		SortRatingAsc,
		SortYearDesc,
		SortYearAsc,
		SortTitleAsc,
		SortTitleDesc,
	}
}

// FilterCriteria holds the active filter and sort state. Zero values
// mean "no constraint" for every field except Sort.
type FilterCriteria struct {
	Search string    // Case-insensitive substring across title, localized title, creator and cast
	Genre  string    // Exact genre membership
	Year   int       // Exact year, 0 = any
	Type   MediaType // Exact type, "" = any
	Sort   SortKey   // One of the six orderings
}

// DefaultCriteria returns the criteria applied on startup
func DefaultCriteria() FilterCriteria {
	return FilterCriteria{Sort: DefaultSortKey}
}

// HasActiveFilter reports whether any narrowing criterion is set.
// The sort key alone never counts as a filter.
func (c FilterCriteria) HasActiveFilter() bool {
	return c.Search != "" || c.Genre != "" || c.Year != 0 || c.Type != ""
}

// CriteriaPatch is a partial criteria update; nil fields keep the
// current value.
type CriteriaPatch struct {
	Search *string
	Genre  *string
	Year   *int
	Type   *MediaType
	Sort   *SortKey
}

// Apply merges the patch into c and returns the result
func (p CriteriaPatch) Apply(c FilterCriteria) FilterCriteria {
	if p.Search != nil {
		c.Search = *p.Search
	}
	if p.Genre != nil {
		c.Genre = *p.Genre
	}
	if p.Year != nil {
		c.Year = *p.Year
	}
	if p.Type != nil {
		c.Type = *p.Type
	}
	if p.Sort != nil {
		c.Sort = *p.Sort
	}
	return c
}

// Page identifies a top-level navigation target
type Page string

const (
	PageHome      Page = "home"
	PageMovies    Page = "movies"
	PageSeries    Page = "series"
	PageBooks     Page = "books"
	PageFavorites Page = "favorites"
)

// Title returns the display name for the page
func (p Page) Title() string {
	switch p {
	case PageHome:
		return "Home"
	case PageMovies:
		return "Movies"
	case PageSeries:
		return "Series"
	case PageBooks:
		return "Books"
	case PageFavorites:
		return "Favorites"
	default:
		return "Unknown"
	}
}

// ForcedType returns the type constraint a page imposes on the filter
// criteria. force is false for the favorites page, which leaves the
// type filter untouched.
func (p Page) ForcedType() (t MediaType, force bool) {
	switch p {
	case PageMovies:
		return TypeMovie, true
	case PageSeries:
		return TypeSeries, true
	case PageBooks:
		return TypeBook, true
	case PageHome:
		return "", true
	default:
		return "", false
	}
}

// Pages returns all pages in navigation order
func Pages() []Page {
	return []Page{PageHome, PageMovies, PageSeries, PageBooks, PageFavorites}
}

// ViewMode identifies the listing layout
type ViewMode string

const (
	ViewGrid ViewMode = "grid"
	ViewList ViewMode = "list"
)

// DefaultViewMode is used when no preference has been stored
const DefaultViewMode = ViewGrid

// Toggle returns the other view mode
func (v ViewMode) Toggle() ViewMode {
	if v == ViewList {
		return ViewGrid
	}
	return ViewList
}
