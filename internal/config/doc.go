// Package config provides configuration management for panectl.
//
// This package implements a layered configuration system that allows users to
// customize panectl's behavior through YAML files. Configuration is loaded from
// multiple sources and merged in a specific order, with later sources overriding
// earlier ones.
//
// # Configuration Layers
//
// Configuration is loaded and merged in the following order:
//
//  1. Default Configuration (embedded in binary)
//     - Provides sensible defaults for all settings
//
//  2. User Configuration (~/.config/panectl/config.yaml)
//     - User-specific settings that apply to all projects
//
//  3. Project Configuration (./.panectl/config.yaml)
//     - Project-specific settings in the current directory
//
// A field set in a later layer replaces the earlier value; unset fields keep
// it. The merged result is validated before it is returned.
//
// # Configuration Structure
//
//	store:
//	  path: "~/.config/panectl/layouts.db"
//
//	layout:
//	  defaultRatio: 0.5   # ratio of interactively created splits
//	  minPaneWidth: 12
//	  minPaneHeight: 3
//	  startup: ide        # "ide", "dashboard" or a stored layout name
//
//	tui:
//	  altScreen: true
//	  showHelp: true
//
//	logging:
//	  level: info
//
// # Usage Example
//
//	cfg, err := config.LoadConfig()
//	if err != nil {
//		return err
//	}
//	st, err := store.Open(cfg.Store.Path)
package config
