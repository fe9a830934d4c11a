package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/sitewright-labs/sitewright-cli/internal/adapters/driven/config/file"
	"github.com/sitewright-labs/sitewright-cli/internal/adapters/driven/events"
	"github.com/sitewright-labs/sitewright-cli/internal/adapters/driven/storage/memory"
	"github.com/sitewright-labs/sitewright-cli/internal/core/services"
)

// setupTestServices wires the commands to memory-backed services with
// one active site, and returns a cleanup that detaches them again.
func setupTestServices(t *testing.T) func() {
	t.Helper()

	siteStore := memory.NewSiteStore()
	catalogStore := memory.NewCatalogStore()
	docStore := memory.NewSiteDocumentStore()
	bus := events.NewBus()

	sites := services.NewSiteService(siteStore, bus)
	catalog := services.NewCatalogService(catalogStore, siteStore, bus)
	content := services.NewContentService(docStore, catalogStore, siteStore, bus)
	onboarding := services.NewOnboardingService(sites, content, catalog)

	cfg, err := file.NewConfigStore(t.TempDir())
	require.NoError(t, err)

	SetServices(catalog, content, sites, onboarding, cfg)

	// First create auto-activates, so commands have a site to target.
	_, err = sites.Create(context.Background(), "Test Site")
	require.NoError(t, err)

	return func() {
		SetServices(nil, nil, nil, nil, nil)
	}
}

// resetCommandFlags restores flag defaults; flag variables keep their
// values between Execute calls otherwise.
func resetCommandFlags(cmd *cobra.Command) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue) //nolint:errcheck // defaults always parse
		f.Changed = false
	})
	for _, sub := range cmd.Commands() {
		resetCommandFlags(sub)
	}
}

// executeCommand runs the root command with args and captures output.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	resetCommandFlags(rootCmd)
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	return buf.String(), err
}

func TestRootCmd_Use(t *testing.T) {
	require.Equal(t, "sitewright", rootCmd.Use)
}

func TestRootCmd_HasVerboseFlag(t *testing.T) {
	flag := rootCmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, flag)
	require.Equal(t, "v", flag.Shorthand)
}

func TestRootCmd_RegistersSubcommands(t *testing.T) {
	names := map[string]bool{}
	for _, sub := range rootCmd.Commands() {
		names[sub.Name()] = true
	}
	for _, want := range []string{"wizard", "services", "site", "sites", "config", "version"} {
		require.True(t, names[want], "missing subcommand %s", want)
	}
}
