// Package render paints a live layout tree into a string of terminal cells.
//
// Extents come from the sizes the layout engine recorded on the surface
// nodes; the renderer only draws borders, titles, tab strips and view
// content into them.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"panectl/internal/layout"
)

// Content is implemented by views that can draw their own lines. Other
// views show the markup of their node.
type Content interface {
	Lines(width, height int) []string
}

// Renderer draws layout trees.
type Renderer struct {
	// Focused is the ID of the container drawn with the focus border.
	Focused string
}

// Render paints root at its assigned size. A maximized view covers the
// whole area.
func (r Renderer) Render(root *layout.Root) string {
	size := root.Size()
	if size.Width <= 0 || size.Height <= 0 {
		return ""
	}
	if v := root.Maximized(); v != nil {
		return r.view(v, size.Width, size.Height, true, true)
	}
	c := root.Root()
	if c == nil {
		return Blank(size.Width, size.Height)
	}
	return r.container(c, size.Width, size.Height, false)
}

// container draws c into w x h cells. inTab is set for the active child of a
// tabbing container, whose title is already on the tab strip.
func (r Renderer) container(c layout.Container, w, h int, inTab bool) string {
	switch c := c.(type) {
	case *layout.ViewContainer:
		return r.view(c, w, h, !inTab && !c.HeaderHidden(), false)
	case *layout.Tabbing:
		return r.tabbing(c, w, h)
	case *layout.Split:
		return r.sequence(c, c.Orientation(), w, h)
	case *layout.Lineup:
		return r.sequence(c, c.Orientation(), w, h)
	}
	return Blank(w, h)
}

func (r Renderer) view(v *layout.ViewContainer, w, h int, titled, maximized bool) string {
	p := Pane{
		Width:     w,
		Height:    h,
		Focused:   v.ID() == r.Focused,
		Maximized: maximized,
	}
	if titled {
		p.Title = v.Name()
	}
	innerWidth, innerHeight := max(w-2, 0), max(h-2, 0)
	if c, ok := v.View().(Content); ok {
		p.Lines = c.Lines(innerWidth, innerHeight)
	} else {
		p.Lines = strings.Split(v.View().Node().Text, "\n")
	}
	return p.Render()
}

func (r Renderer) tabbing(t *layout.Tabbing, w, h int) string {
	strip := TabStrip(t, w)
	active := t.Active()
	switch {
	case h <= 1:
		return strip
	case active == nil:
		return lipgloss.JoinVertical(lipgloss.Left, strip, Blank(w, h-1))
	}
	return lipgloss.JoinVertical(lipgloss.Left, strip, r.container(active, w, h-1, true))
}

// sequence lays children out along o using the extents the engine assigned.
// The last drawn child absorbs rounding so the block is exactly w x h.
func (r Renderer) sequence(p layout.ParentContainer, o layout.Orientation, w, h int) string {
	total := w
	if o == layout.Vertical {
		total = h
	}
	children := p.Children()
	var parts []string
	remaining := total
	for i, c := range children {
		if remaining <= 0 {
			break
		}
		ext := c.Node().Size().Width
		if o == layout.Vertical {
			ext = c.Node().Size().Height
		}
		if i == len(children)-1 {
			ext = remaining
		}
		ext = min(ext, remaining)
		if ext <= 0 {
			continue
		}
		remaining -= ext
		if o == layout.Vertical {
			parts = append(parts, r.container(c, w, ext, false))
		} else {
			parts = append(parts, r.container(c, ext, h, false))
		}
	}
	if remaining > 0 {
		if o == layout.Vertical {
			parts = append(parts, Blank(w, remaining))
		} else {
			parts = append(parts, Blank(remaining, h))
		}
	}
	if o == layout.Vertical {
		return lipgloss.JoinVertical(lipgloss.Left, parts...)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

// TabStrip renders the tab headers of t on one line of exactly w cells. The
// labels and the active marker are read from the tab strip nodes.
func TabStrip(t *layout.Tabbing, w int) string {
	var b strings.Builder
	used := 0
	for _, h := range t.Header().Children() {
		if used >= w {
			break
		}
		label := Truncate(" "+h.Text+" ", w-used)
		used += lipgloss.Width(label)
		if h.HasClass("active") {
			b.WriteString(TabActiveStyle.Render(label))
		} else {
			b.WriteString(TabStyle.Render(label))
		}
	}
	if used < w {
		b.WriteString(strings.Repeat(" ", w-used))
	}
	return b.String()
}

// Outline describes the tree under c, one container per line, with the
// extents the engine assigned.
func Outline(c layout.Container) string {
	var b strings.Builder
	outline(&b, c, 0)
	return b.String()
}

func outline(b *strings.Builder, c layout.Container, depth int) {
	size := c.Node().Size()
	fmt.Fprintf(b, "%s%s %q", strings.Repeat("  ", depth), c.Type(), c.Name())
	switch c := c.(type) {
	case *layout.Split:
		fmt.Fprintf(b, " %s ratio=%.2f", c.Orientation(), c.Ratio())
	case *layout.Lineup:
		fmt.Fprintf(b, " %s", c.Orientation())
		if c.StackLayout() {
			b.WriteString(" stacked")
		}
	case *layout.Tabbing:
		fmt.Fprintf(b, " active=%d", c.ActiveIndex())
	case *layout.ViewContainer:
		fmt.Fprintf(b, " ref=%d", c.View().DumpReference())
	}
	fmt.Fprintf(b, " [%dx%d]", size.Width, size.Height)
	if !c.Visible() {
		b.WriteString(" hidden")
	}
	b.WriteString("\n")
	if p, ok := c.(layout.ParentContainer); ok {
		for _, child := range p.Children() {
			outline(b, child, depth+1)
		}
	}
}
