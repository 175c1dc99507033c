package cli_test

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/bnema/dockyard/internal/cli"
	"github.com/bnema/dockyard/internal/config"
	"github.com/bnema/dockyard/internal/resize"
)

func TestApplyRuntimeSettings(t *testing.T) {
	prevLevel := zerolog.GlobalLevel()
	defer zerolog.SetGlobalLevel(prevLevel)
	defer resize.SetAllHandlersDisabled(false)

	cfg := config.DefaultConfig()
	cfg.Window.ResizeHandlersEnabled = false
	cfg.Logging.Level = "warn"

	cli.ApplyRuntimeSettings(cfg)
	assert.True(t, resize.AllHandlersDisabled())
	assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())

	// Re-applying with resizing enabled lifts the kill switch again, which is
	// what a config file edit under the watcher does.
	cfg.Window.ResizeHandlersEnabled = true
	cfg.Logging.Level = "debug"

	cli.ApplyRuntimeSettings(cfg)
	assert.False(t, resize.AllHandlersDisabled())
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
}

func TestApplyRuntimeSettingsEnvLevelWins(t *testing.T) {
	prevLevel := zerolog.GlobalLevel()
	defer zerolog.SetGlobalLevel(prevLevel)
	defer resize.SetAllHandlersDisabled(false)

	t.Setenv("DOCKYARD_LOG_LEVEL", "error")

	cfg := config.DefaultConfig()
	cfg.Logging.Level = "debug"

	cli.ApplyRuntimeSettings(cfg)
	assert.Equal(t, zerolog.ErrorLevel, zerolog.GlobalLevel())
}

func TestApplyRuntimeSettingsIgnoresBadLevel(t *testing.T) {
	prevLevel := zerolog.GlobalLevel()
	defer zerolog.SetGlobalLevel(prevLevel)
	defer resize.SetAllHandlersDisabled(false)

	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	cfg := config.DefaultConfig()
	cfg.Logging.Level = "shouting"

	cli.ApplyRuntimeSettings(cfg)
	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
}
