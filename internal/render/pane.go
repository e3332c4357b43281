package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Pane is a bordered box with an optional title line.
type Pane struct {
	Title     string
	Lines     []string
	Width     int
	Height    int
	Focused   bool
	Maximized bool
}

// Render returns the pane at exactly Width x Height cells. Panes too small
// for a border render blank.
func (p Pane) Render() string {
	if p.Width < 3 || p.Height < 3 {
		return Blank(p.Width, p.Height)
	}
	style := p.style()
	innerWidth := p.Width - style.GetHorizontalFrameSize()
	innerHeight := p.Height - style.GetVerticalFrameSize()

	var lines []string
	if p.Title != "" {
		title := Truncate(p.Title, innerWidth)
		if p.Focused {
			title = TitleFocusedStyle.Render(title)
		} else {
			title = TitleStyle.Render(title)
		}
		lines = append(lines, title)
	}
	for _, line := range Fit(p.Lines, innerWidth, innerHeight-len(lines)) {
		lines = append(lines, line)
	}

	return style.
		Width(innerWidth).
		Height(innerHeight).
		MaxHeight(p.Height).
		Render(strings.Join(lines, "\n"))
}

func (p Pane) style() lipgloss.Style {
	switch {
	case p.Maximized:
		return MaximizedPaneStyle
	case p.Focused:
		return PaneFocusedStyle
	}
	return PaneStyle
}
