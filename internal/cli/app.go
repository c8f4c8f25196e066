// Package cli provides CLI commands using Bubble Tea TUI.
package cli

import (
	"context"
	"fmt"

	"github.com/bnema/floaty/internal/cli/styles"
	"github.com/bnema/floaty/internal/domain/build"
	"github.com/bnema/floaty/internal/infrastructure/config"
	"github.com/bnema/floaty/internal/logging"
	"github.com/bnema/floaty/internal/scenario"
)

// App holds CLI dependencies.
type App struct {
	Config    *config.Config
	Manager   *config.Manager
	Theme     *styles.Theme
	BuildInfo build.Info

	// Context with logger
	ctx context.Context
}

// NewApp loads configuration and builds the logger. configFile overrides the
// XDG config path when non-empty.
func NewApp(configFile string) (*App, error) {
	var opts []config.Option
	if configFile != "" {
		opts = append(opts, config.WithConfigFile(configFile))
	}

	mgr, err := config.NewManager(opts...)
	if err != nil {
		return nil, fmt.Errorf("create config manager: %w", err)
	}
	if err := mgr.Load(); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	cfg := mgr.Get()

	logger := logging.NewFromConfigValues(cfg.Logging.Level, cfg.Logging.Format)
	ctx := logging.WithContext(context.Background(), logger)

	logger.Debug().Str("config_file", mgr.GetConfigFile()).Msg("config loaded")

	return &App{
		Config:  cfg,
		Manager: mgr,
		Theme:   styles.NewTheme(),
		ctx:     ctx,
	}, nil
}

// Close releases all resources.
func (*App) Close() error {
	return nil
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// Settings converts the loaded config into scenario system settings.
func (a *App) Settings() scenario.Settings {
	return SettingsFromConfig(a.Config)
}

// SettingsFromConfig converts cfg into scenario system settings using the
// demo widget catalog.
func SettingsFromConfig(cfg *config.Config) scenario.Settings {
	return scenario.Settings{
		LayoutID:         cfg.Overlay.Layout(),
		Params:           cfg.Overlay.LayoutParams(),
		AnimationEnabled: cfg.Animation.Enabled,
		AnimationKind:    string(cfg.Animation.Kind),
		Duration:         cfg.Animation.Duration(),
		ClickThreshold:   cfg.Click.Threshold(),
		Allow:            cfg.Hosts.Allow,
		Deny:             cfg.Hosts.Deny,
		Catalog:          scenario.DefaultCatalog(),
	}
}
