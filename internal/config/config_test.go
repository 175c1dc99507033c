package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolateXDG(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	t.Setenv("HOME", root)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(root, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(root, "data"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(root, "state"))
	t.Setenv("ENV", "")
	return root
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, 5*time.Second, cfg.Database.QueryTimeout)
	assert.False(t, cfg.Window.DoubleClickMaximizes)
	assert.True(t, cfg.Window.ResizeHandlersEnabled)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
}

func TestManagerLoadDefaults(t *testing.T) {
	root := isolateXDG(t)

	m, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, m.Load())

	cfg := m.Get()
	assert.True(t, cfg.Window.ResizeHandlersEnabled)
	assert.Equal(t, filepath.Join(root, "data", "dockyard", "dockyard.sqlite"), cfg.Database.Path)

	// First load drops a default config file for the user to edit. The
	// extension has to match the JSON contents or the next load chokes on it.
	_, err = os.Stat(filepath.Join(root, "config", "dockyard", "config.json"))
	assert.NoError(t, err)

	// A fresh manager must be able to parse the file it just wrote.
	m2, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, m2.Load())
	assert.True(t, m2.Get().Window.ResizeHandlersEnabled)
}

func TestEnvOverrides(t *testing.T) {
	isolateXDG(t)
	t.Setenv("DOCKYARD_LOGGING_LEVEL", "debug")
	t.Setenv("DOCKYARD_WINDOW_DOUBLE_CLICK_MAXIMIZES", "true")

	m, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, m.Load())

	cfg := m.Get()
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.True(t, cfg.Window.DoubleClickMaximizes)
}

func TestConfigFileOverrides(t *testing.T) {
	root := isolateXDG(t)

	configDir := filepath.Join(root, "config", "dockyard")
	require.NoError(t, os.MkdirAll(configDir, 0o755))
	yaml := []byte("window:\n  double_click_maximizes: true\nlogging:\n  level: warn\n")
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "config.yaml"), yaml, 0o644))

	m, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, m.Load())

	cfg := m.Get()
	assert.True(t, cfg.Window.DoubleClickMaximizes)
	assert.Equal(t, "warn", cfg.Logging.Level)
	// Untouched keys keep their defaults.
	assert.True(t, cfg.Window.ResizeHandlersEnabled)
}

func TestFinalizeFillsDerivedValues(t *testing.T) {
	isolateXDG(t)

	cfg := &Config{}
	require.NoError(t, finalize(cfg))

	assert.NotEmpty(t, cfg.Database.Path)
}
