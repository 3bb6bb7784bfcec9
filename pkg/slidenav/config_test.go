package slidenav

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/BrandonKowalski/slidenav/pkg/slidenav/constants"
	"github.com/BrandonKowalski/slidenav/pkg/slidenav/navigator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "slidenav.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoadConfigKeepsDefaults(t *testing.T) {
	path := writeConfig(t, `
id = "main"
animate = false
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "main", cfg.ID)
	assert.False(t, cfg.Animate)
	assert.True(t, cfg.Slide)
	assert.True(t, cfg.Preload)
	assert.Equal(t, constants.DefaultContainer, cfg.Container)
	assert.Equal(t, constants.DefaultMaxRecords, cfg.MaxRecords)
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(constants.StateDirEnvVar, dir)
	t.Setenv(constants.LogLevelEnvVar, "debug")

	cfg, err := LoadConfig(writeConfig(t, `state_dir = "/elsewhere"`))
	require.NoError(t, err)

	assert.Equal(t, dir, cfg.StateDir)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)

	_, err = LoadConfig(writeConfig(t, `id = `))
	assert.Error(t, err)
}

func TestConfigOptions(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ID = "app"
	cfg.Container = "#root"
	cfg.Slide = false

	opts := cfg.Options()
	assert.Equal(t, "app", opts.ID)
	assert.Equal(t, "#root", opts.Container)
	assert.False(t, opts.Slide)
	assert.True(t, opts.Animate)
	assert.Nil(t, opts.Store)

	cfg.StateDir = t.TempDir()
	store, ok := cfg.Options().Store.(*navigator.FileStore)
	require.True(t, ok)
	assert.Equal(t, cfg.StateDir, store.Dir)
}

func TestLoadConfigUnknownKeys(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, `
id = "main"
animation = true
`))
	require.NoError(t, err)

	assert.Equal(t, []string{"animation"}, cfg.UnknownKeys())
	assert.True(t, cfg.Animate)
}
