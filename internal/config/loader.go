package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"panectl/pkg/logging"
)

// For mocking in tests
var osUserHomeDir = os.UserHomeDir
var osGetwd = os.Getwd

const (
	userConfigDir    = ".config/panectl"
	projectConfigDir = ".panectl"
	configFileName   = "config.yaml"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid configuration")

// LoadConfig loads the panectl configuration by layering default, user, and
// project settings. The merged result is validated.
func LoadConfig() (PanectlConfig, error) {
	config := GetDefaultConfig()

	for _, layer := range []struct {
		name string
		path func() (string, error)
	}{
		{name: "user", path: getUserConfigPath},
		{name: "project", path: getProjectConfigPath},
	} {
		path, err := layer.path()
		if err != nil {
			// optional layer
			logging.Warn("Config", "Could not determine %s config path: %v", layer.name, err)
			continue
		}
		if _, err := os.Stat(path); os.IsNotExist(err) {
			continue
		}
		overlay, err := loadConfigFromFile(path)
		if err != nil {
			return PanectlConfig{}, fmt.Errorf("error loading %s config from %s: %w", layer.name, path, err)
		}
		logging.Debug("Config", "Merged %s config from %s", layer.name, path)
		config = mergeConfigs(config, overlay)
	}

	config.Store.Path = expandHome(config.Store.Path)
	if err := Validate(config); err != nil {
		return PanectlConfig{}, err
	}
	return config, nil
}

var getUserConfigPath = func() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir, configFileName), nil
}

var getProjectConfigPath = func() (string, error) {
	wd, err := osGetwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(wd, projectConfigDir, configFileName), nil
}

// loadConfigFromFile loads a PanectlConfig from a YAML file. Unknown keys are
// rejected so typos do not go unnoticed.
func loadConfigFromFile(filePath string) (PanectlConfig, error) {
	var config PanectlConfig
	f, err := os.Open(filePath)
	if err != nil {
		return PanectlConfig{}, err
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&config); err != nil {
		// an empty file decodes to io.EOF
		if errors.Is(err, io.EOF) {
			return PanectlConfig{}, nil
		}
		return PanectlConfig{}, err
	}
	return config, nil
}

// mergeConfigs merges 'overlay' config into 'base' config. Non-zero overlay
// fields win.
func mergeConfigs(base, overlay PanectlConfig) PanectlConfig {
	merged := base

	if overlay.Store.Path != "" {
		merged.Store.Path = overlay.Store.Path
	}

	if overlay.Layout.DefaultRatio != 0 {
		merged.Layout.DefaultRatio = overlay.Layout.DefaultRatio
	}
	if overlay.Layout.MinPaneWidth != 0 {
		merged.Layout.MinPaneWidth = overlay.Layout.MinPaneWidth
	}
	if overlay.Layout.MinPaneHeight != 0 {
		merged.Layout.MinPaneHeight = overlay.Layout.MinPaneHeight
	}
	if overlay.Layout.Startup != "" {
		merged.Layout.Startup = overlay.Layout.Startup
	}

	if overlay.TUI.AltScreen != nil {
		merged.TUI.AltScreen = overlay.TUI.AltScreen
	}
	if overlay.TUI.ShowHelp != nil {
		merged.TUI.ShowHelp = overlay.TUI.ShowHelp
	}

	if overlay.Logging.Level != "" {
		merged.Logging.Level = overlay.Logging.Level
	}

	return merged
}

// Validate checks the merged configuration.
func Validate(c PanectlConfig) error {
	if c.Layout.DefaultRatio <= 0 || c.Layout.DefaultRatio >= 1 {
		return fmt.Errorf("%w: layout.defaultRatio %v must lie strictly between 0 and 1", ErrInvalidConfig, c.Layout.DefaultRatio)
	}
	if c.Layout.MinPaneWidth < 0 {
		return fmt.Errorf("%w: layout.minPaneWidth %d is negative", ErrInvalidConfig, c.Layout.MinPaneWidth)
	}
	if c.Layout.MinPaneHeight < 0 {
		return fmt.Errorf("%w: layout.minPaneHeight %d is negative", ErrInvalidConfig, c.Layout.MinPaneHeight)
	}
	if c.Store.Path == "" {
		return fmt.Errorf("%w: store.path is empty", ErrInvalidConfig)
	}
	if _, err := logging.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("%w: logging.level: %v", ErrInvalidConfig, err)
	}
	return nil
}

// expandHome resolves a leading "~/" against the user's home directory.
func expandHome(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	homeDir, err := osUserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(homeDir, path[2:])
}

// GetUserConfigDir returns the user configuration directory path
func GetUserConfigDir() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir), nil
}
