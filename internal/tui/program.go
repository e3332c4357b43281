package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
)

// NewProgram wraps m in a Bubble Tea program bound to ctx, on the alternate
// screen when altScreen is set.
func NewProgram(ctx context.Context, m *Model, altScreen bool) *tea.Program {
	opts := []tea.ProgramOption{tea.WithContext(ctx)}
	if altScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	return tea.NewProgram(m, opts...)
}
