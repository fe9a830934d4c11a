package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/sitewright-labs/sitewright-cli/internal/core/domain"
	"github.com/sitewright-labs/sitewright-cli/internal/core/ports/driven"
	"github.com/sitewright-labs/sitewright-cli/internal/core/ports/driving"
	"github.com/sitewright-labs/sitewright-cli/internal/logger"
)

// Ensure CatalogService implements the interface.
var _ driving.CatalogService = (*CatalogService)(nil)

// CatalogService manages the services catalog of the active site.
type CatalogService struct {
	catalogStore driven.CatalogStore
	siteStore    driven.SiteStore
	bus          driven.EventBus
}

// NewCatalogService creates a new catalog service. The bus is optional
// (can be nil); without it no notifications are emitted.
func NewCatalogService(
	catalogStore driven.CatalogStore,
	siteStore driven.SiteStore,
	bus driven.EventBus,
) *CatalogService {
	return &CatalogService{
		catalogStore: catalogStore,
		siteStore:    siteStore,
		bus:          bus,
	}
}

// List returns the active site's catalog in insertion order.
func (s *CatalogService) List(ctx context.Context) ([]domain.ServiceRecord, error) {
	if s.catalogStore == nil {
		return nil, domain.ErrNotImplemented
	}
	siteID, err := s.activeSiteID(ctx)
	if err != nil {
		return nil, err
	}
	return s.load(ctx, siteID)
}

// Add validates the input, assigns a fresh id and appends the record
// to the end of the catalog.
func (s *CatalogService) Add(ctx context.Context, input domain.ServiceInput) (*domain.ServiceRecord, error) {
	if s.catalogStore == nil {
		return nil, domain.ErrNotImplemented
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}
	siteID, err := s.activeSiteID(ctx)
	if err != nil {
		return nil, err
	}

	records, err := s.load(ctx, siteID)
	if err != nil {
		return nil, err
	}

	rec := domain.ServiceRecord{
		ID:          uuid.NewString(),
		Title:       input.Title,
		Description: input.Description,
		Category:    input.ResolvedCategory(),
		Active:      input.Active,
	}
	records = append(records, rec)

	if err := s.catalogStore.Save(ctx, siteID, records); err != nil {
		return nil, fmt.Errorf("saving catalog: %w", err)
	}
	logger.Debug("Catalog: added service %s (%s)", rec.ID, rec.Title)
	s.notify()
	return &rec, nil
}

// Update merges a partial patch onto an existing record and persists
// the catalog.
func (s *CatalogService) Update(ctx context.Context, id string, patch domain.ServicePatch) (*domain.ServiceRecord, error) {
	if s.catalogStore == nil {
		return nil, domain.ErrNotImplemented
	}
	siteID, err := s.activeSiteID(ctx)
	if err != nil {
		return nil, err
	}

	records, err := s.load(ctx, siteID)
	if err != nil {
		return nil, err
	}

	idx := indexByID(records, id)
	if idx < 0 {
		return nil, fmt.Errorf("service %s: %w", id, domain.ErrNotFound)
	}
	if err := patch.ApplyTo(&records[idx]); err != nil {
		return nil, err
	}

	if err := s.catalogStore.Save(ctx, siteID, records); err != nil {
		return nil, fmt.Errorf("saving catalog: %w", err)
	}
	logger.Debug("Catalog: updated service %s", id)
	s.notify()
	rec := records[idx]
	return &rec, nil
}

// Delete permanently removes a record, preserving the order of the
// remaining ones.
func (s *CatalogService) Delete(ctx context.Context, id string) error {
	if s.catalogStore == nil {
		return domain.ErrNotImplemented
	}
	siteID, err := s.activeSiteID(ctx)
	if err != nil {
		return err
	}

	records, err := s.load(ctx, siteID)
	if err != nil {
		return err
	}

	idx := indexByID(records, id)
	if idx < 0 {
		return fmt.Errorf("service %s: %w", id, domain.ErrNotFound)
	}
	records = append(records[:idx], records[idx+1:]...)

	if err := s.catalogStore.Save(ctx, siteID, records); err != nil {
		return fmt.Errorf("saving catalog: %w", err)
	}
	logger.Debug("Catalog: deleted service %s", id)
	s.notify()
	return nil
}

// DeleteBatch removes all listed records in a single persisted write.
// Ids with no matching record are ignored.
func (s *CatalogService) DeleteBatch(ctx context.Context, ids []string, confirmed bool) (int, error) {
	if s.catalogStore == nil {
		return 0, domain.ErrNotImplemented
	}
	if !confirmed {
		return 0, domain.ErrNotConfirmed
	}
	siteID, err := s.activeSiteID(ctx)
	if err != nil {
		return 0, err
	}

	records, err := s.load(ctx, siteID)
	if err != nil {
		return 0, err
	}

	doomed := make(map[string]bool, len(ids))
	for _, id := range ids {
		doomed[id] = true
	}

	remaining := make([]domain.ServiceRecord, 0, len(records))
	for _, rec := range records {
		if !doomed[rec.ID] {
			remaining = append(remaining, rec)
		}
	}

	removed := len(records) - len(remaining)
	if removed == 0 {
		return 0, nil
	}

	if err := s.catalogStore.Save(ctx, siteID, remaining); err != nil {
		return 0, fmt.Errorf("saving catalog: %w", err)
	}
	logger.Info("Catalog: bulk deleted %d services", removed)
	s.notify()
	return removed, nil
}

// ToggleActive flips a record's active flag.
func (s *CatalogService) ToggleActive(ctx context.Context, id string) (*domain.ServiceRecord, error) {
	if s.catalogStore == nil {
		return nil, domain.ErrNotImplemented
	}
	siteID, err := s.activeSiteID(ctx)
	if err != nil {
		return nil, err
	}

	records, err := s.load(ctx, siteID)
	if err != nil {
		return nil, err
	}

	idx := indexByID(records, id)
	if idx < 0 {
		return nil, fmt.Errorf("service %s: %w", id, domain.ErrNotFound)
	}
	records[idx].Active = !records[idx].Active

	if err := s.catalogStore.Save(ctx, siteID, records); err != nil {
		return nil, fmt.Errorf("saving catalog: %w", err)
	}
	logger.Debug("Catalog: toggled service %s to active=%t", id, records[idx].Active)
	s.notify()
	rec := records[idx]
	return &rec, nil
}

// Query evaluates a filter/pagination spec against the current
// catalog snapshot.
func (s *CatalogService) Query(ctx context.Context, spec domain.QuerySpec) (*domain.QueryResult, error) {
	records, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	result := domain.RunQuery(records, spec)
	return &result, nil
}

// activeSiteID resolves the site all catalog operations target.
func (s *CatalogService) activeSiteID(ctx context.Context) (string, error) {
	if s.siteStore == nil {
		return "", domain.ErrNotImplemented
	}
	site, err := s.siteStore.ActiveSite(ctx)
	if err != nil {
		return "", err
	}
	return site.ID, nil
}

// load reads the catalog, degrading a corrupt payload to an empty
// catalog rather than failing the caller.
func (s *CatalogService) load(ctx context.Context, siteID string) ([]domain.ServiceRecord, error) {
	records, err := s.catalogStore.Load(ctx, siteID)
	if err != nil {
		if errors.Is(err, domain.ErrStorage) {
			logger.Warn("Catalog for site %s unreadable, falling back to empty: %v", siteID, err)
			return []domain.ServiceRecord{}, nil
		}
		return nil, fmt.Errorf("loading catalog: %w", err)
	}
	if records == nil {
		records = []domain.ServiceRecord{}
	}
	return records, nil
}

func (s *CatalogService) notify() {
	if s.bus != nil {
		s.bus.Publish(domain.EventSiteDataUpdated)
	}
}

// indexByID returns the position of the record with the given id, or -1.
func indexByID(records []domain.ServiceRecord, id string) int {
	for i := range records {
		if records[i].ID == id {
			return i
		}
	}
	return -1
}
