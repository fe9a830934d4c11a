package driven

import (
	"context"

	"github.com/sitewright-labs/sitewright-cli/internal/core/domain"
)

// SiteStore persists site metadata and resolves the single active
// site that catalog and document operations implicitly target.
type SiteStore interface {
	// Save stores or updates a site.
	Save(ctx context.Context, site domain.Site) error

	// Get retrieves a site by ID.
	Get(ctx context.Context, id string) (*domain.Site, error)

	// List returns all sites ordered by creation time.
	List(ctx context.Context) ([]domain.Site, error)

	// ActiveSite returns the currently active site, or ErrNoActiveSite
	// when none has been activated yet.
	ActiveSite(ctx context.Context) (*domain.Site, error)

	// SetActive marks the given site as active, deactivating any
	// previously active site. ErrNotFound if the site does not exist.
	SetActive(ctx context.Context, id string) error
}
