// Package cli implements the sitewright command line interface using
// cobra. Commands talk to the core through the driving ports; wiring
// happens in main via SetServices.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/sitewright-labs/sitewright-cli/internal/core/ports/driven"
	"github.com/sitewright-labs/sitewright-cli/internal/core/ports/driving"
	"github.com/sitewright-labs/sitewright-cli/internal/logger"
)

// version is set at build time via ldflags.
var version = "dev"

// Services injected by main before Execute.
var (
	catalogService    driving.CatalogService
	contentService    driving.ContentService
	siteService       driving.SiteService
	onboardingService driving.OnboardingService
	configStore       driven.ConfigStore
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "sitewright",
	Short: "Build and manage your business website content",
	Long: `Sitewright manages the content behind your business website:
the services catalog, the page sections (hero, contacts, social links,
stats, testimonials) and the sites they belong to.

Start with 'sitewright wizard' to onboard a new site, then use the
'services' and 'site' commands to keep its content up to date.`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		if verbose {
			logger.SetVerbose(true)
		}
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
}

// SetServices injects the service implementations. Must be called
// before Execute.
func SetServices(
	catalog driving.CatalogService,
	content driving.ContentService,
	sites driving.SiteService,
	onboarding driving.OnboardingService,
	config driven.ConfigStore,
) {
	catalogService = catalog
	contentService = content
	siteService = sites
	onboardingService = onboarding
	configStore = config
}

// SetVersion overrides the reported version string.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
