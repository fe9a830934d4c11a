package driven

import (
	"context"

	"github.com/sitewright-labs/sitewright-cli/internal/core/domain"
)

// CatalogStore persists the ordered services catalog of a site as a
// whole. The catalog is written in full on every mutation, so a
// multi-record change (bulk delete) is a single write and partial
// failure is never observable.
type CatalogStore interface {
	// Load returns the catalog for a site in insertion order.
	// An empty slice, not an error, is returned when the site has no
	// catalog yet. A corrupt persisted payload is ErrStorage.
	Load(ctx context.Context, siteID string) ([]domain.ServiceRecord, error)

	// Save replaces the catalog for a site with the given sequence.
	Save(ctx context.Context, siteID string, records []domain.ServiceRecord) error

	// Delete removes the catalog for a site. Deleting a catalog that
	// does not exist is a no-op.
	Delete(ctx context.Context, siteID string) error
}
