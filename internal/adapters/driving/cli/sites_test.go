package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSitesCmd_Use(t *testing.T) {
	assert.Equal(t, "sites", sitesCmd.Use)
}

func TestSitesList_MarksActiveSite(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()

	out, err := executeCommand(t, "sites", "list")

	require.NoError(t, err)
	assert.Contains(t, out, "Test Site")
	assert.Contains(t, out, "*")
}

func TestSitesCreate_SecondSiteNotActivated(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()

	out, err := executeCommand(t, "sites", "create", "Second Site")
	require.NoError(t, err)
	assert.Contains(t, out, "Second Site")

	active, err := siteService.Active(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Test Site", active.Name)
}

func TestSitesCreate_EmptyName(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()

	_, err := executeCommand(t, "sites", "create", "  ")

	assert.Error(t, err)
}

func TestSitesUse_SwitchesActiveSite(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()
	ctx := context.Background()

	second, err := siteService.Create(ctx, "Second Site")
	require.NoError(t, err)

	out, err := executeCommand(t, "sites", "use", second.ID)
	require.NoError(t, err)
	assert.Contains(t, out, "Second Site")

	active, err := siteService.Active(ctx)
	require.NoError(t, err)
	assert.Equal(t, second.ID, active.ID)
}

func TestSitesUse_NotFound(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()

	_, err := executeCommand(t, "sites", "use", "missing")

	assert.Error(t, err)
}

func TestSitesRename(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()
	ctx := context.Background()

	active, err := siteService.Active(ctx)
	require.NoError(t, err)

	out, err := executeCommand(t, "sites", "rename", active.ID, "Fresh Name")
	require.NoError(t, err)
	assert.Contains(t, out, "Fresh Name")

	renamed, err := siteService.Get(ctx, active.ID)
	require.NoError(t, err)
	assert.Equal(t, "Fresh Name", renamed.Name)
}

func TestSitesList_ServiceNotConfigured(t *testing.T) {
	oldService := siteService
	siteService = nil
	defer func() { siteService = oldService }()

	_, err := executeCommand(t, "sites", "list")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "site service not configured")
}
