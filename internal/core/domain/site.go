package domain

import "time"

// Site is the scoping entity that owns one services catalog and one
// content document. Exactly one site is active at a time; catalog and
// document operations implicitly target the active site.
type Site struct {
	// ID is the unique identifier for the site.
	ID string `json:"id"`

	// Name is the user-facing site name, usually the company name
	// collected by the onboarding wizard.
	Name string `json:"name"`

	// CreatedAt is when the site was onboarded.
	CreatedAt time.Time `json:"createdAt"`

	// UpdatedAt is when the site metadata last changed.
	UpdatedAt time.Time `json:"updatedAt"`
}

// SitePatch is a partial update for site metadata. Nil fields are
// retained.
type SitePatch struct {
	Name *string
}

// EventKind tags a change notification. Events carry no payload; they
// are pure invalidation signals and consumers re-fetch from the stores.
type EventKind string

// Event kinds emitted by the stores.
const (
	// EventActiveSiteChanged fires when a different site becomes active.
	EventActiveSiteChanged EventKind = "active_site_changed"

	// EventSitesUpdated fires when site metadata changes.
	EventSitesUpdated EventKind = "sites_updated"

	// EventSiteDataUpdated fires when catalog or document content of
	// the active site changes.
	EventSiteDataUpdated EventKind = "site_data_updated"
)

// IsValid returns true if the event kind is recognised.
func (k EventKind) IsValid() bool {
	switch k {
	case EventActiveSiteChanged, EventSitesUpdated, EventSiteDataUpdated:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (k EventKind) String() string {
	return string(k)
}
