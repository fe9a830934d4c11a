// Command sitewright is the entry point of the sitewright CLI. It
// wires the storage, configuration and event adapters to the core
// services and hands off to cobra.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/sitewright-labs/sitewright-cli/internal/adapters/driven/config/file"
	"github.com/sitewright-labs/sitewright-cli/internal/adapters/driven/events"
	"github.com/sitewright-labs/sitewright-cli/internal/adapters/driven/storage/sqlite"
	"github.com/sitewright-labs/sitewright-cli/internal/adapters/driving/cli"
	"github.com/sitewright-labs/sitewright-cli/internal/core/ports/driven"
	"github.com/sitewright-labs/sitewright-cli/internal/core/services"
	"github.com/sitewright-labs/sitewright-cli/internal/logger"
)

// version is injected at build time via
// -ldflags "-X main.version=...".
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	_ = godotenv.Load() //nolint:errcheck // a missing .env is fine

	configStore, err := file.NewConfigStore(os.Getenv("SITEWRIGHT_CONFIG_DIR"))
	if err != nil {
		return fmt.Errorf("opening config: %w", err)
	}
	if configStore.GetBool(driven.ConfigKeyVerbose) {
		logger.SetVerbose(true)
	}

	dataDir := os.Getenv("SITEWRIGHT_DATA_DIR")
	if dataDir == "" {
		dataDir = configStore.GetString(driven.ConfigKeyDataDir)
	}

	store, err := sqlite.NewStore(dataDir)
	if err != nil {
		return fmt.Errorf("opening storage: %w", err)
	}
	defer store.Close() //nolint:errcheck // close on exit

	bus, err := events.NewPersistentBus(store.DataDir())
	if err != nil {
		return fmt.Errorf("opening event bus: %w", err)
	}
	watcher, err := events.NewWatcher(bus)
	if err != nil {
		return fmt.Errorf("starting event watcher: %w", err)
	}
	defer watcher.Close() //nolint:errcheck // close on exit

	siteStore := store.SiteStore()
	catalogStore := store.CatalogStore()
	docStore := store.SiteDocumentStore()

	siteService := services.NewSiteService(siteStore, bus)
	catalogService := services.NewCatalogService(catalogStore, siteStore, bus)
	contentService := services.NewContentService(docStore, catalogStore, siteStore, bus)
	onboardingService := services.NewOnboardingService(siteService, contentService, catalogService)

	cli.SetServices(catalogService, contentService, siteService, onboardingService, configStore)
	cli.SetVersion(version)

	logger.Debug("sitewright %s using %s", version, store.Path())
	return cli.Execute()
}
