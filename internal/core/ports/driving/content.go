package driving

import (
	"context"

	"github.com/sitewright-labs/sitewright-cli/internal/core/domain"
)

// ContentService manages the content document of the active site.
type ContentService interface {
	// SiteData returns the persisted document, or the compiled-in
	// default when none is persisted yet. The default is not written
	// back; the first save materializes it.
	SiteData(ctx context.Context) (*domain.SiteDocument, error)

	// SaveSiteData overwrites the whole document.
	SaveSiteData(ctx context.Context, doc *domain.SiteDocument) error

	// UpdateSection replaces one section, leaving the others as they
	// are. On an empty store the default document is materialized
	// first. Returns the resulting document.
	UpdateSection(ctx context.Context, name string, data []byte) (*domain.SiteDocument, error)

	// Section returns one section as a generic object, or an empty
	// object for an unknown section name.
	Section(ctx context.Context, name string) (map[string]any, error)

	// ResetToDefault clears the persisted document and catalog for
	// the active site and returns the default document. The catalog
	// is not repopulated.
	ResetToDefault(ctx context.Context) (*domain.SiteDocument, error)
}
