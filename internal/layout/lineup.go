package layout

import (
	"fmt"

	"panectl/internal/surface"
)

// LineupOptions configure a Lineup.
type LineupOptions struct {
	Options
	Orientation Orientation
	// StackLayout gives each child its own requested extent instead of an
	// equal share.
	StackLayout bool
}

// Lineup lays out any number of children along one axis, either in equal
// shares or stacked at their own extents.
type Lineup struct {
	parentBase

	orientation Orientation
	stack       bool
	requested   map[string]int
}

// NewLineup builds a lineup of at least one child.
func NewLineup(doc *surface.Document, opts LineupOptions, children ...Container) (*Lineup, error) {
	if len(children) < 1 {
		return nil, fmt.Errorf("%w: lineup needs 1, got 0", ErrTooFewChildren)
	}
	l := &Lineup{orientation: opts.Orientation, stack: opts.StackLayout, requested: map[string]int{}}
	l.init(l, doc, opts.Options, "Container")
	l.hooks = l
	l.minChildren = 1
	l.node.SetAttr("orientation", opts.Orientation.String())
	if opts.StackLayout {
		l.node.AddClass("stacked")
	}
	for _, c := range children {
		if !l.Push(c) {
			l.Destroy()
			return nil, fmt.Errorf("adding %s %q to lineup: %w", c.Type(), c.Name(), ErrDestroyed)
		}
	}
	return l, nil
}

func (l *Lineup) Type() Type { return TypeLineup }

func (l *Lineup) Orientation() Orientation { return l.orientation }

func (l *Lineup) StackLayout() bool { return l.stack }

// SetChildExtent requests an axis extent for child in a stacked lineup. The
// child never gets less than its minimum.
func (l *Lineup) SetChildExtent(child Container, extent int) error {
	if l.IndexOf(child) < 0 {
		return ErrNotAChild
	}
	l.requested[child.ID()] = extent
	l.Resized()
	return nil
}

func (l *Lineup) mountChild(child Container, index int) { l.mountSequential(child, index) }

func (l *Lineup) unmountChild(child Container) {
	delete(l.requested, child.ID())
	l.unmountSequential(child)
}

func (l *Lineup) propagateVisible(visible bool) {
	for _, c := range l.children {
		c.SetVisible(visible)
	}
}

func (l *Lineup) extentOf(i int) int {
	c := l.children[i]
	minimum := along(c.MinSize(), l.orientation)
	if l.stack {
		if r, ok := l.requested[c.ID()]; ok {
			return max(r, minimum)
		}
		return minimum
	}
	n := len(l.children)
	avail := along(l.node.Size(), l.orientation)
	share := avail / n
	if i < avail%n {
		share++
	}
	return max(share, minimum)
}

func (l *Lineup) Resized() {
	if l.destroyed {
		return
	}
	cross := across(l.node.Size(), l.orientation)
	for i, c := range l.children {
		c.Node().SetSize(sizeOf(l.orientation, l.extentOf(i), cross))
		c.Resized()
	}
}

func (l *Lineup) MinSize() Size { return l.minSizeAlong(l.orientation, l.stack) }

func (l *Lineup) Destroy() { l.destroyParent() }

func (l *Lineup) Persist() Dump {
	return &LineupDump{
		DumpBase:    l.persistBase(),
		Orientation: l.orientation,
		StackLayout: l.stack,
		Children:    l.persistChildren(),
	}
}
