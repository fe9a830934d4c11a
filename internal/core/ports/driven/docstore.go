package driven

import (
	"context"

	"github.com/sitewright-labs/sitewright-cli/internal/core/domain"
)

// SiteDocumentStore persists the content document of a site.
type SiteDocumentStore interface {
	// Load retrieves the document for a site. ErrNotFound means no
	// document has been persisted yet; ErrStorage means the persisted
	// payload could not be read.
	Load(ctx context.Context, siteID string) (*domain.SiteDocument, error)

	// Save stores or replaces the document for a site.
	Save(ctx context.Context, siteID string, doc *domain.SiteDocument) error

	// Delete removes the document for a site. Deleting an absent
	// document is a no-op.
	Delete(ctx context.Context, siteID string) error
}
