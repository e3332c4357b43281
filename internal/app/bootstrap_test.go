package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewApplication(t *testing.T) {
	cfg := testConfig(t)

	app, err := NewApplication(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { app.Close() })

	assert.Same(t, cfg, app.Config())
	assert.NotNil(t, app.Services().Store)
	assert.Equal(t, "ide", cfg.startupLayout())
}

func TestNewApplication_LogLevelOverride(t *testing.T) {
	cfg := testConfig(t)
	cfg.LogLevel = "loud"

	_, err := NewApplication(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log level")
}

func TestConfig_StartupLayout(t *testing.T) {
	cfg := testConfig(t)
	cfg.PanectlConfig.Layout.Startup = "dashboard"
	assert.Equal(t, "dashboard", cfg.startupLayout())

	cfg.Layout = "mine"
	assert.Equal(t, "mine", cfg.startupLayout())
}
