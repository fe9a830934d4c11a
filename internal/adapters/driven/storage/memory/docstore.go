package memory

import (
	"context"
	"sync"

	"github.com/sitewright-labs/sitewright-cli/internal/core/domain"
	"github.com/sitewright-labs/sitewright-cli/internal/core/ports/driven"
)

// Ensure SiteDocumentStore implements the interface.
var _ driven.SiteDocumentStore = (*SiteDocumentStore)(nil)

// SiteDocumentStore is an in-memory implementation of
// driven.SiteDocumentStore.
type SiteDocumentStore struct {
	mu        sync.RWMutex
	documents map[string]domain.SiteDocument
}

// NewSiteDocumentStore creates a new in-memory site document store.
func NewSiteDocumentStore() *SiteDocumentStore {
	return &SiteDocumentStore{
		documents: make(map[string]domain.SiteDocument),
	}
}

// Load retrieves the document for a site.
func (s *SiteDocumentStore) Load(_ context.Context, siteID string) (*domain.SiteDocument, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.documents[siteID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &doc, nil
}

// Save stores or replaces the document for a site.
func (s *SiteDocumentStore) Save(_ context.Context, siteID string, doc *domain.SiteDocument) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.documents[siteID] = *doc
	return nil
}

// Delete removes the document for a site.
func (s *SiteDocumentStore) Delete(_ context.Context, siteID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.documents, siteID)
	return nil
}
