package domain

import (
	"encoding/json"
	"fmt"
)

// Top-level section names of a SiteDocument.
const (
	SectionHero         = "hero"
	SectionServices     = "services"
	SectionContacts     = "contacts"
	SectionSocial       = "social"
	SectionStats        = "stats"
	SectionTestimonials = "testimonials"
)

// SectionNames returns all section names in document order.
func SectionNames() []string {
	return []string{
		SectionHero,
		SectionServices,
		SectionContacts,
		SectionSocial,
		SectionStats,
		SectionTestimonials,
	}
}

// IsSection returns true if name is a known section name.
func IsSection(name string) bool {
	for _, s := range SectionNames() {
		if name == s {
			return true
		}
	}
	return false
}

// HeroSection is the landing banner content.
type HeroSection struct {
	CompanyName string `json:"companyName"`
	Tagline     string `json:"tagline"`
	Description string `json:"description"`
}

// ServicesSection holds the heading shown above the services catalog.
// The catalog itself is stored separately.
type ServicesSection struct {
	Heading string `json:"heading"`
}

// ContactsSection is the contact details block.
type ContactsSection struct {
	Heading string `json:"heading"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
	Website string `json:"website"`
}

// SocialSection maps platform name to profile URL.
type SocialSection map[string]string

// StatItem is one headline figure in the stats strip.
type StatItem struct {
	Icon  string `json:"icon"`
	Value string `json:"value"`
	Label string `json:"label"`
}

// StatsSection is the optional headline-figures strip.
type StatsSection struct {
	Enabled bool       `json:"enabled"`
	Items   []StatItem `json:"items"`
}

// Testimonial is a single customer quote.
type Testimonial struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Role   string `json:"role"`
	Rating int    `json:"rating"`
	Text   string `json:"text"`
}

// TestimonialsSection is the optional customer quotes block.
type TestimonialsSection struct {
	Enabled bool          `json:"enabled"`
	Items   []Testimonial `json:"items"`
}

// SiteDocument is the editable content of one site, excluding the
// services catalog. Every top-level section is always present after
// initialization; sections are mutated independently and no
// cross-section invariant is enforced at this layer.
type SiteDocument struct {
	Hero         HeroSection         `json:"hero"`
	Services     ServicesSection     `json:"services"`
	Contacts     ContactsSection     `json:"contacts"`
	Social       SocialSection       `json:"social"`
	Stats        StatsSection        `json:"stats"`
	Testimonials TestimonialsSection `json:"testimonials"`
}

// DefaultSiteDocument returns the compiled-in document used for sites
// with no persisted content yet and as the fallback when a persisted
// payload cannot be read.
func DefaultSiteDocument() SiteDocument {
	return SiteDocument{
		Hero: HeroSection{
			Tagline:     "We build software that works for you",
			Description: "From idea to launch, a partner for your digital products.",
		},
		Services: ServicesSection{
			Heading: "Our Services",
		},
		Contacts: ContactsSection{
			Heading: "Get in Touch",
		},
		Social: SocialSection{},
		Stats: StatsSection{
			Enabled: true,
			Items: []StatItem{
				{Icon: "users", Value: "150+", Label: "Happy Clients"},
				{Icon: "briefcase", Value: "300+", Label: "Projects Delivered"},
				{Icon: "award", Value: "10+", Label: "Years in Business"},
			},
		},
		Testimonials: TestimonialsSection{
			Enabled: true,
			Items:   []Testimonial{},
		},
	}
}

// Normalize repairs representational gaps in a document: a nil social
// map and nil item slices become empty, so consumers never observe nil
// collections. Section content is never touched — a section the user
// cleared to all-empty fields must stay cleared, and after JSON
// round-tripping it is indistinguishable from an omitted one. Defaults
// apply only when no document is persisted at all (DefaultSiteDocument).
func (d *SiteDocument) Normalize() {
	if d.Social == nil {
		d.Social = SocialSection{}
	}
	if d.Stats.Items == nil {
		d.Stats.Items = []StatItem{}
	}
	if d.Testimonials.Items == nil {
		d.Testimonials.Items = []Testimonial{}
	}
}

// Section returns the named section as a generic JSON object. Unknown
// names yield an empty object rather than an error.
func (d *SiteDocument) Section(name string) (map[string]any, error) {
	var section any
	switch name {
	case SectionHero:
		section = d.Hero
	case SectionServices:
		section = d.Services
	case SectionContacts:
		section = d.Contacts
	case SectionSocial:
		section = d.Social
	case SectionStats:
		section = d.Stats
	case SectionTestimonials:
		section = d.Testimonials
	default:
		return map[string]any{}, nil
	}

	raw, err := json.Marshal(section)
	if err != nil {
		return nil, fmt.Errorf("marshalling section %s: %w", name, err)
	}
	out := map[string]any{}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("unmarshalling section %s: %w", name, err)
	}
	return out, nil
}

// SetSection replaces the named section with the given JSON payload.
// Unknown section names and malformed payloads are invalid input.
func (d *SiteDocument) SetSection(name string, data []byte) error {
	unmarshal := func(v any) error {
		if err := json.Unmarshal(data, v); err != nil {
			return fmt.Errorf("%w: section %s: %v", ErrInvalidInput, name, err)
		}
		return nil
	}

	switch name {
	case SectionHero:
		var s HeroSection
		if err := unmarshal(&s); err != nil {
			return err
		}
		d.Hero = s
	case SectionServices:
		var s ServicesSection
		if err := unmarshal(&s); err != nil {
			return err
		}
		d.Services = s
	case SectionContacts:
		var s ContactsSection
		if err := unmarshal(&s); err != nil {
			return err
		}
		d.Contacts = s
	case SectionSocial:
		var s SocialSection
		if err := unmarshal(&s); err != nil {
			return err
		}
		if s == nil {
			s = SocialSection{}
		}
		d.Social = s
	case SectionStats:
		var s StatsSection
		if err := unmarshal(&s); err != nil {
			return err
		}
		d.Stats = s
	case SectionTestimonials:
		var s TestimonialsSection
		if err := unmarshal(&s); err != nil {
			return err
		}
		d.Testimonials = s
	default:
		return fmt.Errorf("%w: unknown section %q", ErrInvalidInput, name)
	}
	return nil
}
