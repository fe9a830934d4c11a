package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/sitewright-labs/sitewright-cli/internal/core/domain"
	"github.com/sitewright-labs/sitewright-cli/internal/core/ports/driving"
	"github.com/sitewright-labs/sitewright-cli/internal/logger"
)

// Ensure OnboardingService implements the interface.
var _ driving.OnboardingService = (*OnboardingService)(nil)

// OnboardingService drives the multi-step wizard. It composes the
// site, content and catalog services rather than talking to stores
// directly, so every write goes through the same persist-and-notify
// path the dashboard uses.
type OnboardingService struct {
	sites   driving.SiteService
	content driving.ContentService
	catalog driving.CatalogService
}

// NewOnboardingService creates a new onboarding service.
func NewOnboardingService(
	sites driving.SiteService,
	content driving.ContentService,
	catalog driving.CatalogService,
) *OnboardingService {
	return &OnboardingService{
		sites:   sites,
		content: content,
		catalog: catalog,
	}
}

// Signup runs the stub account flow. There is no account backend;
// any request with a non-empty email succeeds.
func (s *OnboardingService) Signup(_ context.Context, req driving.SignupRequest) (*driving.SignupResult, error) {
	email := strings.TrimSpace(req.Email)
	if email == "" {
		return nil, fmt.Errorf("%w: email is required", domain.ErrInvalidInput)
	}
	result := &driving.SignupResult{
		AccountID: uuid.NewString(),
		Email:     email,
	}
	logger.Debug("Onboarding: stub sign-up for %s", email)
	return result, nil
}

// Complete finishes the wizard: sign-up stub, site creation and
// activation, document built from the business info, and the initial
// catalog (the default seed when the services step was skipped).
func (s *OnboardingService) Complete(
	ctx context.Context,
	info driving.BusinessInfo,
	serviceInputs []domain.ServiceInput,
	req driving.SignupRequest,
) (*domain.Site, error) {
	if s.sites == nil || s.content == nil || s.catalog == nil {
		return nil, domain.ErrNotImplemented
	}
	if strings.TrimSpace(info.CompanyName) == "" {
		return nil, fmt.Errorf("%w: company name is required", domain.ErrInvalidInput)
	}
	for _, in := range serviceInputs {
		if err := in.Validate(); err != nil {
			return nil, err
		}
	}
	if _, err := s.Signup(ctx, req); err != nil {
		return nil, err
	}

	site, err := s.sites.Create(ctx, info.CompanyName)
	if err != nil {
		return nil, err
	}
	if err := s.sites.SetActive(ctx, site.ID); err != nil {
		return nil, err
	}

	doc := domain.DefaultSiteDocument()
	doc.Hero.CompanyName = info.CompanyName
	if info.Tagline != "" {
		doc.Hero.Tagline = info.Tagline
	}
	if info.Description != "" {
		doc.Hero.Description = info.Description
	}
	doc.Contacts.Phone = info.Phone
	doc.Contacts.Email = info.Email
	doc.Contacts.Address = info.Address
	doc.Contacts.Website = info.Website
	if err := s.content.SaveSiteData(ctx, &doc); err != nil {
		return nil, err
	}

	if len(serviceInputs) == 0 {
		serviceInputs = domain.DefaultServices()
		logger.Info("Onboarding: services step skipped, seeding default catalog")
	}
	for _, in := range serviceInputs {
		if _, err := s.catalog.Add(ctx, in); err != nil {
			return nil, err
		}
	}

	logger.Info("Onboarding: completed for site %s (%s)", site.ID, site.Name)
	return site, nil
}
