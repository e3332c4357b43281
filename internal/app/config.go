package app

import (
	"panectl/internal/config"
)

// Config holds the application configuration
type Config struct {
	// LogLevel overrides logging.level from the config files when set.
	LogLevel string

	// Layout is the saved layout or preset the TUI opens. Empty means
	// layout.startup from the config files.
	Layout string

	// Version is reported by the MCP server.
	Version string

	// PanectlConfig is loaded by NewApplication unless already set.
	PanectlConfig *config.PanectlConfig
}

// NewConfig creates a new application configuration
func NewConfig(logLevel, layoutName, version string) *Config {
	return &Config{
		LogLevel: logLevel,
		Layout:   layoutName,
		Version:  version,
	}
}

// startupLayout returns the layout to open.
func (c *Config) startupLayout() string {
	if c.Layout != "" {
		return c.Layout
	}
	return c.PanectlConfig.Layout.Startup
}
