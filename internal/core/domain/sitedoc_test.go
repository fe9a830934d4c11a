package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSiteDocument_AllSectionsPresent(t *testing.T) {
	doc := DefaultSiteDocument()

	raw, err := json.Marshal(doc)
	require.NoError(t, err)

	var asMap map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &asMap))

	for _, name := range SectionNames() {
		assert.Contains(t, asMap, name)
	}
	assert.NotNil(t, doc.Social)
	assert.NotNil(t, doc.Stats.Items)
	assert.NotNil(t, doc.Testimonials.Items)
}

func TestNormalize_RepairsNilCollections(t *testing.T) {
	doc := SiteDocument{
		Hero: HeroSection{CompanyName: "Acme"},
	}

	doc.Normalize()

	assert.NotNil(t, doc.Social)
	assert.NotNil(t, doc.Stats.Items)
	assert.NotNil(t, doc.Testimonials.Items)
}

func TestNormalize_KeepsExistingContent(t *testing.T) {
	doc := SiteDocument{
		Hero:     HeroSection{CompanyName: "Acme", Tagline: "Hi"},
		Contacts: ContactsSection{Email: "hi@acme.dev"},
		Social:   SocialSection{"github": "https://github.com/acme"},
		Stats:    StatsSection{Enabled: false, Items: []StatItem{{Value: "1"}}},
	}

	doc.Normalize()

	assert.Equal(t, "Acme", doc.Hero.CompanyName)
	assert.Equal(t, "hi@acme.dev", doc.Contacts.Email)
	assert.Equal(t, "https://github.com/acme", doc.Social["github"])
	// Explicitly disabled stats with items stay disabled.
	assert.False(t, doc.Stats.Enabled)
	require.Len(t, doc.Stats.Items, 1)
}

func TestNormalize_KeepsClearedSections(t *testing.T) {
	// A user blanking out a section must not get default content back.
	doc := DefaultSiteDocument()
	doc.Hero = HeroSection{}
	doc.Contacts = ContactsSection{}

	doc.Normalize()

	assert.Equal(t, HeroSection{}, doc.Hero)
	assert.Equal(t, ContactsSection{}, doc.Contacts)
}

func TestSection_ReturnsSectionData(t *testing.T) {
	doc := DefaultSiteDocument()
	doc.Hero.CompanyName = "Acme"

	hero, err := doc.Section(SectionHero)
	require.NoError(t, err)
	assert.Equal(t, "Acme", hero["companyName"])

	stats, err := doc.Section(SectionStats)
	require.NoError(t, err)
	assert.Equal(t, true, stats["enabled"])
}

func TestSection_UnknownName_ReturnsEmptyObject(t *testing.T) {
	doc := DefaultSiteDocument()

	section, err := doc.Section("footer")

	require.NoError(t, err)
	assert.Empty(t, section)
}

func TestSetSection_ReplacesOnlyNamedSection(t *testing.T) {
	doc := DefaultSiteDocument()
	doc.Hero.CompanyName = "Acme"

	payload := []byte(`{"heading":"Reach us","phone":"+1 555 0100","email":"hello@acme.dev","address":"1 Main St","website":"https://acme.dev"}`)
	require.NoError(t, doc.SetSection(SectionContacts, payload))

	assert.Equal(t, "Reach us", doc.Contacts.Heading)
	assert.Equal(t, "+1 555 0100", doc.Contacts.Phone)
	// Other sections untouched.
	assert.Equal(t, "Acme", doc.Hero.CompanyName)
	assert.Equal(t, DefaultSiteDocument().Services, doc.Services)
}

func TestSetSection_Social(t *testing.T) {
	doc := DefaultSiteDocument()

	require.NoError(t, doc.SetSection(SectionSocial, []byte(`{"twitter":"https://x.com/acme"}`)))
	assert.Equal(t, "https://x.com/acme", doc.Social["twitter"])

	// A JSON null resets to an empty map, never a nil section.
	require.NoError(t, doc.SetSection(SectionSocial, []byte(`null`)))
	assert.NotNil(t, doc.Social)
	assert.Empty(t, doc.Social)
}

func TestSetSection_UnknownSection(t *testing.T) {
	doc := DefaultSiteDocument()

	err := doc.SetSection("footer", []byte(`{}`))

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestSetSection_MalformedPayload(t *testing.T) {
	doc := DefaultSiteDocument()

	err := doc.SetSection(SectionHero, []byte(`{"companyName":`))

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestSiteDocument_JSONRoundTrip(t *testing.T) {
	doc := DefaultSiteDocument()
	doc.Hero.CompanyName = "Acme"
	doc.Social["github"] = "https://github.com/acme"
	doc.Testimonials.Items = append(doc.Testimonials.Items, Testimonial{
		ID: "t1", Name: "Dana", Role: "CTO", Rating: 5, Text: "Great work",
	})

	raw, err := json.Marshal(doc)
	require.NoError(t, err)

	var decoded SiteDocument
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, doc, decoded)
}

func TestIsSection(t *testing.T) {
	for _, name := range SectionNames() {
		assert.True(t, IsSection(name))
	}
	assert.False(t, IsSection("footer"))
}
