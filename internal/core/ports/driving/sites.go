package driving

import (
	"context"

	"github.com/sitewright-labs/sitewright-cli/internal/core/domain"
)

// SiteService manages sites and the active-site selection.
type SiteService interface {
	// Create registers a new site. The first site created becomes
	// active automatically.
	Create(ctx context.Context, name string) (*domain.Site, error)

	// Get retrieves a site by ID.
	Get(ctx context.Context, id string) (*domain.Site, error)

	// List returns all sites.
	List(ctx context.Context) ([]domain.Site, error)

	// Update merges a partial patch onto site metadata.
	Update(ctx context.Context, id string, patch domain.SitePatch) (*domain.Site, error)

	// Active returns the currently active site.
	Active(ctx context.Context) (*domain.Site, error)

	// SetActive switches the active site.
	SetActive(ctx context.Context, id string) error
}
