package domain

import "context"

// CatalogSource loads the catalog document from its origin.
type CatalogSource interface {
	Fetch(ctx context.Context) ([]MediaRecord, error)
}
