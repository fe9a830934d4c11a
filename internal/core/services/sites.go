package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/sitewright-labs/sitewright-cli/internal/core/domain"
	"github.com/sitewright-labs/sitewright-cli/internal/core/ports/driven"
	"github.com/sitewright-labs/sitewright-cli/internal/core/ports/driving"
	"github.com/sitewright-labs/sitewright-cli/internal/logger"
)

// Ensure SiteService implements the interface.
var _ driving.SiteService = (*SiteService)(nil)

// SiteService manages sites and the active-site selection.
type SiteService struct {
	siteStore driven.SiteStore
	bus       driven.EventBus
}

// NewSiteService creates a new site service.
func NewSiteService(siteStore driven.SiteStore, bus driven.EventBus) *SiteService {
	return &SiteService{
		siteStore: siteStore,
		bus:       bus,
	}
}

// Create registers a new site. The first site created becomes active.
func (s *SiteService) Create(ctx context.Context, name string) (*domain.Site, error) {
	if s.siteStore == nil {
		return nil, domain.ErrNotImplemented
	}
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: site name is required", domain.ErrInvalidInput)
	}

	now := time.Now().UTC()
	site := domain.Site{
		ID:        uuid.NewString(),
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.siteStore.Save(ctx, site); err != nil {
		return nil, fmt.Errorf("saving site: %w", err)
	}
	logger.Info("Sites: created site %s (%s)", site.ID, site.Name)
	s.publish(domain.EventSitesUpdated)

	// Make the first site active so catalog and document operations
	// have a target immediately after onboarding.
	if _, err := s.siteStore.ActiveSite(ctx); errors.Is(err, domain.ErrNoActiveSite) {
		if err := s.SetActive(ctx, site.ID); err != nil {
			return nil, err
		}
	}

	return &site, nil
}

// Get retrieves a site by ID.
func (s *SiteService) Get(ctx context.Context, id string) (*domain.Site, error) {
	if s.siteStore == nil {
		return nil, domain.ErrNotImplemented
	}
	return s.siteStore.Get(ctx, id)
}

// List returns all sites.
func (s *SiteService) List(ctx context.Context) ([]domain.Site, error) {
	if s.siteStore == nil {
		return nil, domain.ErrNotImplemented
	}
	return s.siteStore.List(ctx)
}

// Update merges a partial patch onto site metadata.
func (s *SiteService) Update(ctx context.Context, id string, patch domain.SitePatch) (*domain.Site, error) {
	if s.siteStore == nil {
		return nil, domain.ErrNotImplemented
	}
	site, err := s.siteStore.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		if strings.TrimSpace(*patch.Name) == "" {
			return nil, fmt.Errorf("%w: site name is required", domain.ErrInvalidInput)
		}
		site.Name = *patch.Name
	}
	site.UpdatedAt = time.Now().UTC()

	if err := s.siteStore.Save(ctx, *site); err != nil {
		return nil, fmt.Errorf("saving site: %w", err)
	}
	logger.Debug("Sites: updated site %s", id)
	s.publish(domain.EventSitesUpdated)
	return site, nil
}

// Active returns the currently active site.
func (s *SiteService) Active(ctx context.Context) (*domain.Site, error) {
	if s.siteStore == nil {
		return nil, domain.ErrNotImplemented
	}
	return s.siteStore.ActiveSite(ctx)
}

// SetActive switches the active site.
func (s *SiteService) SetActive(ctx context.Context, id string) error {
	if s.siteStore == nil {
		return domain.ErrNotImplemented
	}
	if err := s.siteStore.SetActive(ctx, id); err != nil {
		return err
	}
	logger.Info("Sites: site %s is now active", id)
	s.publish(domain.EventActiveSiteChanged)
	return nil
}

func (s *SiteService) publish(kind domain.EventKind) {
	if s.bus != nil {
		s.bus.Publish(kind)
	}
}
