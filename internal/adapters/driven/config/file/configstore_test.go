package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sitewright-labs/sitewright-cli/internal/core/domain"
	"github.com/sitewright-labs/sitewright-cli/internal/core/ports/driven"
)

func setupTestConfig(t *testing.T) (*ConfigStore, string) {
	t.Helper()
	tempDir := t.TempDir()
	store, err := NewConfigStore(tempDir)
	require.NoError(t, err)
	return store, tempDir
}

func TestNewConfigStore_EmptyByDefault(t *testing.T) {
	store, tempDir := setupTestConfig(t)

	assert.Equal(t, filepath.Join(tempDir, "config.toml"), store.Path())
	assert.Equal(t, "", store.GetString(driven.ConfigKeyDataDir))
	assert.Equal(t, 0, store.GetInt(driven.ConfigKeyPageSize))
	assert.False(t, store.GetBool(driven.ConfigKeyVerbose))
}

func TestConfigStore_SetAndGet(t *testing.T) {
	store, _ := setupTestConfig(t)

	require.NoError(t, store.Set(driven.ConfigKeyDataDir, "/tmp/sitewright"))
	require.NoError(t, store.Set(driven.ConfigKeyPageSize, 25))
	require.NoError(t, store.Set(driven.ConfigKeyVerbose, true))

	assert.Equal(t, "/tmp/sitewright", store.GetString(driven.ConfigKeyDataDir))
	assert.Equal(t, 25, store.GetInt(driven.ConfigKeyPageSize))
	assert.True(t, store.GetBool(driven.ConfigKeyVerbose))
}

func TestConfigStore_Set_RejectsUnknownKey(t *testing.T) {
	store, _ := setupTestConfig(t)

	err := store.Set("nonsense", "value")

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), "nonsense")
}

func TestConfigStore_PersistsAcrossReopen(t *testing.T) {
	store, tempDir := setupTestConfig(t)
	require.NoError(t, store.Set(driven.ConfigKeyPageSize, 5))
	require.NoError(t, store.Set(driven.ConfigKeyVerbose, true))

	reopened, err := NewConfigStore(tempDir)
	require.NoError(t, err)

	// TOML integers round-trip as int64.
	assert.Equal(t, 5, reopened.GetInt(driven.ConfigKeyPageSize))
	assert.True(t, reopened.GetBool(driven.ConfigKeyVerbose))
}

func TestConfigStore_GetWrongType(t *testing.T) {
	store, _ := setupTestConfig(t)
	require.NoError(t, store.Set(driven.ConfigKeyPageSize, 10))

	assert.Equal(t, "", store.GetString(driven.ConfigKeyPageSize))
	assert.False(t, store.GetBool(driven.ConfigKeyPageSize))
}

func TestConfigStore_Keys(t *testing.T) {
	store, _ := setupTestConfig(t)

	assert.Equal(t, []string{driven.ConfigKeyDataDir, driven.ConfigKeyPageSize, driven.ConfigKeyVerbose}, store.Keys())
}

func TestConfigStore_Load_UnknownKeysTolerated(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("legacy_key = \"x\"\npage_size = 7\n"), 0600))

	store, err := NewConfigStore(tempDir)
	require.NoError(t, err)

	assert.Equal(t, 7, store.GetInt(driven.ConfigKeyPageSize))
	assert.Equal(t, "x", store.GetString("legacy_key"))
}
