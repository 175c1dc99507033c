// Package cli wires the shared dependencies used by the CLI commands.
package cli

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/bnema/dockyard/internal/config"
	"github.com/bnema/dockyard/internal/logging"
	"github.com/bnema/dockyard/internal/persistence/sqlite"
	"github.com/bnema/dockyard/internal/resize"
)

// BuildInfo holds build-time information injected via ldflags.
type BuildInfo struct {
	Version   string
	Commit    string
	BuildDate string
}

// App holds CLI dependencies.
type App struct {
	Config    *config.Config
	BuildInfo BuildInfo
	Layouts   *sqlite.LayoutStore

	db  *sql.DB
	ctx context.Context
}

// ApplyRuntimeSettings pushes the reloadable configuration values into the
// process-wide switches: the resize kill switch and the logging threshold.
// Called once at startup and again on every config file change.
func ApplyRuntimeSettings(cfg *config.Config) {
	resize.SetAllHandlersDisabled(!cfg.Window.ResizeHandlersEnabled)

	if parsed, err := zerolog.ParseLevel(resolveLogLevel(cfg)); err == nil {
		zerolog.SetGlobalLevel(parsed)
	}
}

// resolveLogLevel picks the logging level, letting DOCKYARD_LOG_LEVEL win
// over the config file.
func resolveLogLevel(cfg *config.Config) string {
	if envLevel := os.Getenv("DOCKYARD_LOG_LEVEL"); envLevel != "" {
		return envLevel
	}
	return cfg.Logging.Level
}

// NewApp creates a new CLI application with all dependencies.
func NewApp() (*App, error) {
	if err := config.Init(); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	cfg := config.Get()

	level, err := zerolog.ParseLevel(resolveLogLevel(cfg))
	if err != nil {
		level = zerolog.InfoLevel
	}

	logCfg := logging.DefaultConfig()
	logCfg.Level = level
	logCfg.Format = cfg.Logging.Format
	logCfg.TimeFormat = "15:04:05"
	logger := logging.New(logCfg)
	ctx := logging.WithContext(context.Background(), logger)

	ApplyRuntimeSettings(cfg)
	if err := config.Watch(); err != nil {
		logger.Warn().Err(err).Msg("config watch unavailable, edits need a restart")
	}
	config.OnConfigChange(ApplyRuntimeSettings)

	db, err := sqlite.NewConnection(ctx, cfg.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("open layout database: %w", err)
	}

	return &App{
		Config:  cfg,
		Layouts: sqlite.NewLayoutStore(db),
		db:      db,
		ctx:     ctx,
	}, nil
}

// Ctx returns the application context carrying the logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// Close releases the application's resources.
func (a *App) Close() error {
	return sqlite.Close(a.db)
}
