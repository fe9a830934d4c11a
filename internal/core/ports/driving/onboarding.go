package driving

import (
	"context"

	"github.com/sitewright-labs/sitewright-cli/internal/core/domain"
)

// BusinessInfo is the step-1 wizard data: who the business is and how
// to reach it. It feeds the hero and contacts sections.
type BusinessInfo struct {
	CompanyName string
	Tagline     string
	Description string
	Phone       string
	Email       string
	Address     string
	Website     string
}

// SignupRequest is the step-3 wizard data for the stub account flow.
type SignupRequest struct {
	Email    string
	Password string
}

// SignupResult reports the outcome of the stub sign-up.
type SignupResult struct {
	AccountID string
	Email     string
}

// OnboardingService drives the multi-step wizard: business info,
// initial services catalog, and the stub sign-up.
type OnboardingService interface {
	// Signup runs the stub account flow. There is no real backend;
	// any non-empty email succeeds.
	Signup(ctx context.Context, req SignupRequest) (*SignupResult, error)

	// Complete finishes the wizard: creates the site, makes it
	// active, persists the document built from info, and populates
	// the catalog from services (or the default seed when empty).
	Complete(ctx context.Context, info BusinessInfo, services []domain.ServiceInput, req SignupRequest) (*domain.Site, error)
}
