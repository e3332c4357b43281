package app

import (
	"context"

	"github.com/charmbracelet/lipgloss"

	"panectl/internal/mcpserver"
	"panectl/internal/render"
	"panectl/internal/tui"
	"panectl/pkg/logging"
)

// runTUIMode executes the interactive terminal UI mode
func runTUIMode(ctx context.Context, config *Config, services *Services, level logging.LogLevel) error {
	name := config.startupLayout()
	root, reg, err := services.OpenLayout(name)
	if err != nil {
		return err
	}
	logging.Info("CLI", "Starting TUI with layout %q...", name)

	// Initialize styles for the terminal background
	render.Initialize(lipgloss.HasDarkBackground())

	// Switch logging to channel-based system for TUI integration
	logChan := logging.InitForTUI(level)
	defer logging.CloseTUIChannel()

	m := tui.NewModel(tui.Options{
		Root:         root,
		Registry:     reg,
		Store:        services.Store,
		LayoutName:   name,
		DefaultRatio: config.PanectlConfig.Layout.DefaultRatio,
		ShowHelp:     config.PanectlConfig.TUI.HelpEnabled(),
		LogChannel:   logChan,
	})
	p := tui.NewProgram(ctx, m, config.PanectlConfig.TUI.AltScreenEnabled())

	// Run the TUI until user exits
	if _, err := p.Run(); err != nil {
		logging.Error("TUI-Lifecycle", err, "Error running TUI program")
		return err
	}
	logging.Info("TUI-Lifecycle", "TUI exited.")
	return nil
}

// runMCPMode serves the layout tools until stdin closes or ctx ends
func runMCPMode(ctx context.Context, config *Config, services *Services) error {
	srv := mcpserver.New(services.Store, config.Version)

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ServeStdio() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		return nil
	}
}
