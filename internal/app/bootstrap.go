package app

import (
	"context"
	"fmt"
	"os"

	"panectl/internal/config"
	"panectl/pkg/logging"
)

// Application is the main application structure that bootstraps and runs panectl
type Application struct {
	config   *Config
	services *Services
	level    logging.LogLevel
}

// NewApplication creates and initializes a new application instance
func NewApplication(cfg *Config) (*Application, error) {
	// Initialize logging for CLI output; the level is refined once the
	// configuration is known
	logging.InitForCLI(logging.LevelInfo, os.Stderr)

	if cfg.PanectlConfig == nil {
		panectlCfg, err := config.LoadConfig()
		if err != nil {
			logging.Error("Bootstrap", err, "Failed to load panectl configuration")
			return nil, fmt.Errorf("failed to load panectl configuration: %w", err)
		}
		cfg.PanectlConfig = &panectlCfg
		logging.Debug("Bootstrap", "Loaded configuration using layered approach")
	}

	levelName := cfg.PanectlConfig.Logging.Level
	if cfg.LogLevel != "" {
		levelName = cfg.LogLevel
	}
	level, err := logging.ParseLevel(levelName)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}
	logging.InitForCLI(level, os.Stderr)

	services, err := InitializeServices(cfg)
	if err != nil {
		logging.Error("Bootstrap", err, "Failed to initialize services")
		return nil, fmt.Errorf("failed to initialize services: %w", err)
	}

	return &Application{
		config:   cfg,
		services: services,
		level:    level,
	}, nil
}

// Services returns the initialized services.
func (a *Application) Services() *Services {
	return a.services
}

// Config returns the application configuration.
func (a *Application) Config() *Config {
	return a.config
}

// Close releases the layout store.
func (a *Application) Close() error {
	return a.services.Close()
}

// RunTUI opens the startup layout in the interactive terminal UI
func (a *Application) RunTUI(ctx context.Context) error {
	return runTUIMode(ctx, a.config, a.services, a.level)
}

// RunMCPServer serves the layout tools on stdio
func (a *Application) RunMCPServer(ctx context.Context) error {
	return runMCPMode(ctx, a.config, a.services)
}
