package config

// PanectlConfig is the top-level configuration structure for panectl.
type PanectlConfig struct {
	Store   StoreConfig   `yaml:"store"`
	Layout  LayoutConfig  `yaml:"layout"`
	TUI     TUIConfig     `yaml:"tui"`
	Logging LoggingConfig `yaml:"logging"`
}

// StoreConfig locates the layout database.
type StoreConfig struct {
	Path string `yaml:"path,omitempty"` // bbolt file, e.g. "~/.config/panectl/layouts.db"
}

// LayoutConfig tunes the layouts the CLI and TUI build.
type LayoutConfig struct {
	DefaultRatio  float64 `yaml:"defaultRatio,omitempty"`  // Ratio of splits created interactively
	MinPaneWidth  int     `yaml:"minPaneWidth,omitempty"`  // Minimum width of demo views
	MinPaneHeight int     `yaml:"minPaneHeight,omitempty"` // Minimum height of demo views
	Startup       string  `yaml:"startup,omitempty"`       // Preset or stored layout the TUI opens with
}

// TUIConfig holds terminal UI preferences. Pointers distinguish an explicit
// false from an unset field when layers are merged.
type TUIConfig struct {
	AltScreen *bool `yaml:"altScreen,omitempty"`
	ShowHelp  *bool `yaml:"showHelp,omitempty"`
}

// LoggingConfig sets the default log level, overridable with --log-level.
type LoggingConfig struct {
	Level string `yaml:"level,omitempty"` // debug, info, warn or error
}

// AltScreenEnabled reports the effective alt-screen setting.
func (c TUIConfig) AltScreenEnabled() bool {
	return c.AltScreen == nil || *c.AltScreen
}

// HelpEnabled reports the effective help-bar setting.
func (c TUIConfig) HelpEnabled() bool {
	return c.ShowHelp == nil || *c.ShowHelp
}
