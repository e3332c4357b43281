package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"panectl/internal/layout"
	"panectl/internal/render"
)

// View paints the layout, the status bar and the help line.
func (m *Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return "Initializing..."
	}
	parts := []string{
		render.Renderer{Focused: m.focused}.Render(m.root),
		m.statusBar(),
	}
	if h := m.helpView(); h != "" {
		parts = append(parts, h)
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m *Model) helpView() string {
	if !m.showHelp {
		return ""
	}
	return m.help.View(m.keys)
}

// chromeHeight is the number of lines below the layout.
func (m *Model) chromeHeight() int {
	h := 1
	if v := m.helpView(); v != "" {
		h += lipgloss.Height(v)
	}
	return h
}

func (m *Model) statusBar() string {
	left := m.layoutName
	if left == "" {
		left = "unsaved"
	}
	if v := m.focusedView(); v != nil {
		left = fmt.Sprintf("%s › %s", left, v.Name())
	}
	if m.root.Maximized() != nil {
		left += " [max]"
	}
	left = fmt.Sprintf("%s  (%d views)", left, len(layout.Leaves(m.root)))

	style := render.StatusBarStyle
	switch m.statusType {
	case StatusBarSuccess:
		style = render.StatusBarSuccessStyle
	case StatusBarError:
		style = render.StatusBarErrorStyle
	}

	inner := max(0, m.width-style.GetHorizontalFrameSize())
	line := left
	if m.statusMessage != "" {
		gap := inner - lipgloss.Width(left) - lipgloss.Width(m.statusMessage)
		if gap < 1 {
			line = left + " " + m.statusMessage
		} else {
			line = left + strings.Repeat(" ", gap) + m.statusMessage
		}
	}
	return style.Width(m.width).MaxHeight(1).Render(render.Truncate(line, inner))
}
