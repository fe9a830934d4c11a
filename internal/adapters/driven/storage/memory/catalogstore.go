// Package memory provides in-memory implementations of the driven
// storage ports, used in tests and as a scratch backend.
package memory

import (
	"context"
	"sync"

	"github.com/sitewright-labs/sitewright-cli/internal/core/domain"
	"github.com/sitewright-labs/sitewright-cli/internal/core/ports/driven"
)

// Ensure CatalogStore implements the interface.
var _ driven.CatalogStore = (*CatalogStore)(nil)

// CatalogStore is an in-memory implementation of driven.CatalogStore.
type CatalogStore struct {
	mu       sync.RWMutex
	catalogs map[string][]domain.ServiceRecord
}

// NewCatalogStore creates a new in-memory catalog store.
func NewCatalogStore() *CatalogStore {
	return &CatalogStore{
		catalogs: make(map[string][]domain.ServiceRecord),
	}
}

// Load returns the catalog for a site in insertion order.
func (s *CatalogStore) Load(_ context.Context, siteID string) ([]domain.ServiceRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	records, ok := s.catalogs[siteID]
	if !ok {
		return []domain.ServiceRecord{}, nil
	}
	out := make([]domain.ServiceRecord, len(records))
	copy(out, records)
	return out, nil
}

// Save replaces the catalog for a site.
func (s *CatalogStore) Save(_ context.Context, siteID string, records []domain.ServiceRecord) error {
	stored := make([]domain.ServiceRecord, len(records))
	copy(stored, records)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.catalogs[siteID] = stored
	return nil
}

// Delete removes the catalog for a site.
func (s *CatalogStore) Delete(_ context.Context, siteID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.catalogs, siteID)
	return nil
}
