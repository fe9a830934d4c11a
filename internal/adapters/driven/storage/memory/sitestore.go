package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/sitewright-labs/sitewright-cli/internal/core/domain"
	"github.com/sitewright-labs/sitewright-cli/internal/core/ports/driven"
)

// Ensure SiteStore implements the interface.
var _ driven.SiteStore = (*SiteStore)(nil)

// SiteStore is an in-memory implementation of driven.SiteStore.
type SiteStore struct {
	mu       sync.RWMutex
	sites    map[string]domain.Site
	activeID string
}

// NewSiteStore creates a new in-memory site store.
func NewSiteStore() *SiteStore {
	return &SiteStore{
		sites: make(map[string]domain.Site),
	}
}

// Save stores or updates a site.
func (s *SiteStore) Save(_ context.Context, site domain.Site) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sites[site.ID] = site
	return nil
}

// Get retrieves a site by ID.
func (s *SiteStore) Get(_ context.Context, id string) (*domain.Site, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	site, ok := s.sites[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &site, nil
}

// List returns all sites ordered by creation time, ID breaking ties,
// matching the order the SQLite store yields.
func (s *SiteStore) List(_ context.Context) ([]domain.Site, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sites := make([]domain.Site, 0, len(s.sites))
	for _, site := range s.sites {
		sites = append(sites, site)
	}
	sort.Slice(sites, func(i, j int) bool {
		if !sites[i].CreatedAt.Equal(sites[j].CreatedAt) {
			return sites[i].CreatedAt.Before(sites[j].CreatedAt)
		}
		return sites[i].ID < sites[j].ID
	})
	return sites, nil
}

// ActiveSite returns the currently active site.
func (s *SiteStore) ActiveSite(_ context.Context) (*domain.Site, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.activeID == "" {
		return nil, domain.ErrNoActiveSite
	}
	site, ok := s.sites[s.activeID]
	if !ok {
		return nil, domain.ErrNoActiveSite
	}
	return &site, nil
}

// SetActive marks the given site as active.
func (s *SiteStore) SetActive(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sites[id]; !ok {
		return domain.ErrNotFound
	}
	s.activeID = id
	return nil
}
