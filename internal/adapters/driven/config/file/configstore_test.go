package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, contents string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(contents), 0600))
}

func TestNewConfigStore_Success(t *testing.T) {
	tmpDir := t.TempDir()

	store, err := NewConfigStore(tmpDir)

	require.NoError(t, err)
	require.NotNil(t, store)
	assert.Equal(t, filepath.Join(tmpDir, "config.toml"), store.Path())
}

func TestNewConfigStore_MissingDirIsNotCreated(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "does", "not", "exist")

	store, err := NewConfigStore(dir)

	require.NoError(t, err)
	_, ok := store.GetString("diagnostics.color")
	assert.False(t, ok)

	_, statErr := os.Stat(dir)
	assert.True(t, os.IsNotExist(statErr))
}

func TestNewConfigStore_DefaultDir(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("Cannot determine home directory")
	}

	store, err := NewConfigStore("")
	if err != nil {
		t.Skipf("user settings file is not readable: %v", err)
	}

	assert.Equal(t, filepath.Join(home, ".minigrep", "config.toml"), store.Path())
}

func TestNewConfigStore_EmptyFile(t *testing.T) {
	tmpDir := t.TempDir()
	writeConfig(t, tmpDir, "")

	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	_, ok := store.GetBool("diagnostics.verbose")
	assert.False(t, ok)
}

func TestNewConfigStore_InvalidTOML(t *testing.T) {
	tmpDir := t.TempDir()
	writeConfig(t, tmpDir, "this is = = not toml")

	_, err := NewConfigStore(tmpDir)

	require.Error(t, err)
	assert.Contains(t, err.Error(), ConfigFileName)
}

func TestConfigStore_NestedTables(t *testing.T) {
	tmpDir := t.TempDir()
	writeConfig(t, tmpDir, `
[diagnostics]
color = "never"
verbose = true
`)

	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	color, ok := store.GetString("diagnostics.color")
	assert.True(t, ok)
	assert.Equal(t, "never", color)

	verbose, ok := store.GetBool("diagnostics.verbose")
	assert.True(t, ok)
	assert.True(t, verbose)
}

func TestConfigStore_GetString(t *testing.T) {
	tmpDir := t.TempDir()
	writeConfig(t, tmpDir, "name = \"hello world\"\ncount = 42\n")

	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	val, ok := store.GetString("name")
	assert.True(t, ok)
	assert.Equal(t, "hello world", val)

	_, ok = store.GetString("nonexistent")
	assert.False(t, ok)

	_, ok = store.GetString("count")
	assert.False(t, ok, "wrong type is reported as absent")
}

func TestConfigStore_GetBool(t *testing.T) {
	tmpDir := t.TempDir()
	writeConfig(t, tmpDir, "enabled = false\nname = \"yes\"\n")

	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	val, ok := store.GetBool("enabled")
	assert.True(t, ok, "explicit false is present")
	assert.False(t, val)

	_, ok = store.GetBool("name")
	assert.False(t, ok, "wrong type is reported as absent")
}

func TestConfigStore_LookupThroughNonTable(t *testing.T) {
	tmpDir := t.TempDir()
	writeConfig(t, tmpDir, "diagnostics = \"loud\"\n")

	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	_, ok := store.GetString("diagnostics.color")
	assert.False(t, ok)

	val, ok := store.GetString("diagnostics")
	assert.True(t, ok)
	assert.Equal(t, "loud", val)
}
