package config

import "path/filepath"

// Preset names accepted by layout.startup besides stored layout names.
const (
	PresetIDE       = "ide"
	PresetDashboard = "dashboard"
)

// GetDefaultConfig returns the built-in configuration every layer is merged
// onto.
func GetDefaultConfig() PanectlConfig {
	storePath := "layouts.db"
	if dir, err := GetUserConfigDir(); err == nil {
		storePath = filepath.Join(dir, "layouts.db")
	}
	enabled := true
	showHelp := true
	return PanectlConfig{
		Store: StoreConfig{Path: storePath},
		Layout: LayoutConfig{
			DefaultRatio:  0.5,
			MinPaneWidth:  12,
			MinPaneHeight: 3,
			Startup:       PresetIDE,
		},
		TUI: TUIConfig{
			AltScreen: &enabled,
			ShowHelp:  &showHelp,
		},
		Logging: LoggingConfig{Level: "info"},
	}
}
