package domain

import (
	"fmt"
	"strings"
)

// Built-in service categories offered by the wizard and the dashboard
// add-form. CategoryOther is a marker: when selected together with a
// custom label, the trimmed label is stored instead of the literal.
const (
	CategoryBlockchain = "Blockchain & Web3"
	CategoryGaming     = "Casino & Gaming"
	CategoryMobile     = "Mobile Development"
	CategoryWeb        = "Web Development"
	CategoryEnterprise = "Enterprise Solutions"
	CategoryAI         = "AI & Machine Learning"
	CategoryCloud      = "Cloud Services"
	CategorySecurity   = "Security"
	CategoryOther      = "Other"
)

// Categories returns the built-in category set in display order.
func Categories() []string {
	return []string{
		CategoryBlockchain,
		CategoryGaming,
		CategoryMobile,
		CategoryWeb,
		CategoryEnterprise,
		CategoryAI,
		CategoryCloud,
		CategorySecurity,
		CategoryOther,
	}
}

// IsBuiltinCategory returns true if c is one of the built-in categories.
func IsBuiltinCategory(c string) bool {
	for _, known := range Categories() {
		if c == known {
			return true
		}
	}
	return false
}

// ServiceRecord is a single entry in a site's services catalog.
// The field set is the persisted serialization contract; insertion
// order within the catalog defines display order.
type ServiceRecord struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Active      bool   `json:"active"`
}

// ServiceInput carries the caller-supplied fields for creating a
// catalog entry. CustomCategory is only consulted when Category is
// CategoryOther.
type ServiceInput struct {
	Title          string
	Description    string
	Category       string
	CustomCategory string
	Active         bool
}

// Validate checks required-field presence. Fields are considered
// empty after trimming whitespace.
func (in ServiceInput) Validate() error {
	if strings.TrimSpace(in.Title) == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if strings.TrimSpace(in.Description) == "" {
		return fmt.Errorf("%w: description is required", ErrInvalidInput)
	}
	if strings.TrimSpace(in.ResolvedCategory()) == "" {
		return fmt.Errorf("%w: category is required", ErrInvalidInput)
	}
	return nil
}

// ResolvedCategory returns the category to store: the trimmed custom
// label when "Other" was selected and a label supplied, otherwise the
// literal category. The stored value never contains both.
func (in ServiceInput) ResolvedCategory() string {
	if in.Category == CategoryOther {
		if custom := strings.TrimSpace(in.CustomCategory); custom != "" {
			return custom
		}
	}
	return in.Category
}

// ServicePatch is a partial update for a catalog entry. Nil fields are
// retained from the existing record. ID is present only so an attempt
// to rewrite the identifier can be rejected; record IDs are immutable.
type ServicePatch struct {
	ID          *string
	Title       *string
	Description *string
	Category    *string
	Active      *bool
}

// ApplyTo merges the patch onto rec. Set fields must still satisfy the
// record invariants: title, description and category never end up empty,
// and the ID cannot change.
func (p ServicePatch) ApplyTo(rec *ServiceRecord) error {
	if p.ID != nil && *p.ID != rec.ID {
		return fmt.Errorf("%w: service id is immutable", ErrInvalidInput)
	}
	if p.Title != nil {
		if strings.TrimSpace(*p.Title) == "" {
			return fmt.Errorf("%w: title is required", ErrInvalidInput)
		}
		rec.Title = *p.Title
	}
	if p.Description != nil {
		if strings.TrimSpace(*p.Description) == "" {
			return fmt.Errorf("%w: description is required", ErrInvalidInput)
		}
		rec.Description = *p.Description
	}
	if p.Category != nil {
		if strings.TrimSpace(*p.Category) == "" {
			return fmt.Errorf("%w: category is required", ErrInvalidInput)
		}
		rec.Category = *p.Category
	}
	if p.Active != nil {
		rec.Active = *p.Active
	}
	return nil
}

// DefaultServices is the catalog a freshly onboarded site is seeded
// with when the wizard's services step was skipped.
func DefaultServices() []ServiceInput {
	return []ServiceInput{
		{
			Title:       "Web Development",
			Description: "Custom websites and web applications built for your business.",
			Category:    CategoryWeb,
			Active:      true,
		},
		{
			Title:       "Mobile Apps",
			Description: "Native and cross-platform mobile applications for iOS and Android.",
			Category:    CategoryMobile,
			Active:      true,
		},
		{
			Title:       "Cloud Migration",
			Description: "Move your infrastructure to the cloud with zero downtime.",
			Category:    CategoryCloud,
			Active:      true,
		},
	}
}
