package render

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

const ellipsis = "…"

// tabWidth matches the tab expansion lipgloss applies when rendering.
const tabWidth = 4

// Truncate cuts s to at most width cells, marking the cut with an ellipsis.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	s = strings.ReplaceAll(s, "\t", strings.Repeat(" ", tabWidth))
	if runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, ellipsis)
}

// Pad fills s with spaces up to width cells.
func Pad(s string, width int) string {
	return runewidth.FillRight(s, width)
}

// Fit cuts or pads lines so that exactly height lines of at most width cells
// remain.
func Fit(lines []string, width, height int) []string {
	out := make([]string, 0, max(height, 0))
	for i := 0; i < height; i++ {
		line := ""
		if i < len(lines) {
			line = Truncate(lines[i], width)
		}
		out = append(out, line)
	}
	return out
}

// Blank returns a width x height block of spaces.
func Blank(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	row := strings.Repeat(" ", width)
	rows := make([]string, height)
	for i := range rows {
		rows[i] = row
	}
	return strings.Join(rows, "\n")
}
