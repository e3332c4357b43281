package views

import (
	"strings"
	"time"

	"panectl/internal/layout"
	"panectl/internal/surface"
)

// pane is the layout.View plumbing shared by all kinds.
type pane struct {
	node      *surface.Node
	ref       int
	minSize   layout.Size
	visible   bool
	destroyed bool
}

func newPane(n *surface.Node, ref int, kind Kind, minSize layout.Size) pane {
	n.AddClass("view-" + string(kind))
	return pane{node: n, ref: ref, minSize: minSize}
}

func (p *pane) Node() *surface.Node  { return p.node }
func (p *pane) MinSize() layout.Size { return p.minSize }
func (p *pane) Visible() bool        { return p.visible }
func (p *pane) Resized()             {}
func (p *pane) DumpReference() int   { return p.ref }
func (p *pane) Destroyed() bool      { return p.destroyed }

func (p *pane) SetVisible(visible bool) {
	p.visible = visible
	p.node.SetHidden(!visible)
}

func (p *pane) Destroy() {
	if p.destroyed {
		return
	}
	p.destroyed = true
	p.node.Remove()
}

// TextView shows the markup of its node.
type TextView struct {
	pane
}

// Lines returns the text split into lines, cut to height.
func (v *TextView) Lines(_, height int) []string {
	lines := strings.Split(v.node.Text, "\n")
	if len(lines) > height {
		lines = lines[:max(height, 0)]
	}
	return lines
}

// ClockView shows the current time of its clock.
type ClockView struct {
	pane
	now func() time.Time
}

func (v *ClockView) Lines(_, height int) []string {
	if height <= 0 {
		return nil
	}
	t := v.now()
	lines := []string{t.Format("15:04:05")}
	if height > 1 {
		lines = append(lines, t.Format("Mon 02 Jan 2006"))
	}
	return lines
}

// LogView tails a shared LogBuffer.
type LogView struct {
	pane
	buf *LogBuffer
}

func (v *LogView) Lines(_, height int) []string {
	return v.buf.Tail(height)
}
