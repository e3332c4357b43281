package layout

import (
	"fmt"

	"panectl/internal/surface"
)

// TabbingOptions configure a Tabbing container.
type TabbingOptions struct {
	Options
	// Active is the index of the child shown initially.
	Active int
}

// Tabbing shows exactly one of its children at a time. Its header is the
// tab strip holding every child's header in child order.
type Tabbing struct {
	parentBase

	active int
}

// NewTabbing builds a tabbing container of at least one child.
func NewTabbing(doc *surface.Document, opts TabbingOptions, children ...Container) (*Tabbing, error) {
	if len(children) < 1 {
		return nil, fmt.Errorf("%w: tabbing needs 1, got 0", ErrTooFewChildren)
	}
	t := newTabbing(doc, opts.Options)
	for _, c := range children {
		if !t.Push(c) {
			t.Destroy()
			return nil, fmt.Errorf("adding %s %q to tabbing: %w", c.Type(), c.Name(), ErrDestroyed)
		}
	}
	if opts.Active > 0 && opts.Active < t.Len() {
		_ = t.Activate(opts.Active)
	}
	return t, nil
}

func newTabbing(doc *surface.Document, opts Options) *Tabbing {
	t := &Tabbing{active: -1}
	t.init(t, doc, opts, "Container")
	t.hooks = t
	t.minChildren = 1
	t.header.AddClass("tab-strip")
	return t
}

func (t *Tabbing) Type() Type { return TypeTabbing }

// ActiveIndex is the index of the visible child, -1 when empty.
func (t *Tabbing) ActiveIndex() int { return t.active }

// Active returns the visible child.
func (t *Tabbing) Active() Container { return t.At(t.active) }

// PushActive appends child and makes it the visible one.
func (t *Tabbing) PushActive(child Container) bool {
	if !t.Push(child) {
		return false
	}
	return t.SetActive(child) == nil
}

// SetActive shows child and hides its siblings.
func (t *Tabbing) SetActive(child Container) error {
	i := t.IndexOf(child)
	if i < 0 {
		return ErrNotAChild
	}
	return t.Activate(i)
}

// Activate shows the child at index and hides its siblings.
func (t *Tabbing) Activate(index int) error {
	if index < 0 || index >= len(t.children) {
		return fmt.Errorf("%w: tab index %d of %d", ErrNotAChild, index, len(t.children))
	}
	if index == t.active {
		return nil
	}
	if prev := t.At(t.active); prev != nil {
		t.show(prev, false)
	}
	t.active = index
	t.show(t.children[index], true)
	t.Resized()
	t.fire(Event{Type: EventActiveChanged, Source: t, Child: t.children[index], Index: index})
	return nil
}

func (t *Tabbing) show(child Container, active bool) {
	child.Header().ToggleClass("active", active)
	child.SetVisible(active && t.visible)
}

func (t *Tabbing) insertingChild(_ Container, index int) {
	if t.active >= index && len(t.children) > 0 {
		t.active++
	}
}

func (t *Tabbing) mountChild(child Container, index int) {
	if t.active < 0 {
		t.active = index
	}
	t.header.InsertBefore(child.Header(), t.anchorAfter(index, t.header, headerOnly))
	t.node.InsertBefore(child.Node(), t.anchorAfter(index, t.node, nodeOnly))
	t.show(child, index == t.active)
}

func (t *Tabbing) unmountChild(child Container) {
	child.Header().RemoveClass("active")
	if child.Header().Parent() == t.header {
		child.Header().Remove()
	}
	if child.Node().Parent() == t.node {
		child.Node().Remove()
	}
}

func (t *Tabbing) removedChild(index int) {
	switch {
	case len(t.children) == 0:
		t.active = -1
		return
	case index < t.active:
		t.active--
		return
	case index > t.active:
		return
	}
	// the active child went away: its following sibling, or the preceding
	// one when it was last, takes over
	t.active = min(index, len(t.children)-1)
	next := t.children[t.active]
	t.show(next, true)
	t.fire(Event{Type: EventActiveChanged, Source: t, Child: next, Index: t.active})
}

func (t *Tabbing) propagateVisible(visible bool) {
	for i, c := range t.children {
		c.SetVisible(visible && i == t.active)
	}
}

func (t *Tabbing) Resized() {
	if t.destroyed {
		return
	}
	size := t.node.Size()
	for _, c := range t.children {
		c.Node().SetSize(size)
		c.Resized()
	}
}

func (t *Tabbing) MinSize() Size { return t.minSizeAlong(Horizontal, false) }

func (t *Tabbing) Destroy() { t.destroyParent() }

func (t *Tabbing) Persist() Dump {
	return &TabbingDump{
		DumpBase: t.persistBase(),
		Active:   max(t.active, 0),
		Children: t.persistChildren(),
	}
}
