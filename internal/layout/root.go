package layout

import (
	"panectl/internal/surface"
	"panectl/pkg/logging"
)

// maximizedClass marks the overlay holding a maximized view.
const maximizedClass = "maximized-view"

// Root is the top of a layout tree. It is always visible, never dissolves
// and handles maximize and minimize requests from any view below it.
type Root struct {
	parentBase

	maximized *ViewContainer
	overlay   *surface.Node
	// where the maximized view's header and body were mounted
	saved      [2]savedPlace
	wasVisible bool
}

type savedPlace struct {
	node, parent *surface.Node
}

// NewEmptyRoot returns a root without children. A nil doc gets a fresh
// document.
func NewEmptyRoot(doc *surface.Document) *Root {
	if doc == nil {
		doc = surface.NewDocument()
	}
	r := &Root{}
	r.init(r, doc, Options{}, "")
	r.hooks = r
	r.node.AddClass("layout-root")
	r.setVisible(true)
	r.On(EventMaximize, r.onMaximize)
	r.On(EventMinimize, r.onMinimize)
	return r
}

func (r *Root) Type() Type { return TypeRoot }

// Root returns the first child, the conventional single root content.
func (r *Root) Root() Container { return r.At(0) }

// SetRoot replaces the first child with c, or pushes c into an empty root.
func (r *Root) SetRoot(c Container) bool {
	if first := r.At(0); first != nil {
		return r.Replace(first, c)
	}
	return r.Push(c)
}

// Place appends child regardless of reference and area.
func (r *Root) Place(child, _ Container, _ DropArea) bool {
	return r.Push(child)
}

// SetSize assigns the root extent and re-flows the tree.
func (r *Root) SetSize(s Size) {
	r.node.SetSize(s)
	r.Resized()
}

func (r *Root) Size() Size { return r.node.Size() }

// Maximized returns the view currently shown over the whole layout.
func (r *Root) Maximized() *ViewContainer {
	r.dropStaleMaximized()
	return r.maximized
}

// Clear destroys every child.
func (r *Root) Clear() {
	r.parentBase.Clear()
	r.dropStaleMaximized()
}

func (r *Root) mountChild(child Container, index int) { r.mountSequential(child, index) }
func (r *Root) unmountChild(child Container)          { r.unmountSequential(child) }

func (r *Root) propagateVisible(visible bool) {
	for _, c := range r.children {
		c.SetVisible(visible)
	}
}

func (r *Root) Resized() {
	if r.destroyed {
		return
	}
	size := r.node.Size()
	for _, c := range r.children {
		c.Node().SetSize(size)
		c.Resized()
	}
	if r.Maximized() != nil {
		r.overlay.SetSize(size)
		r.maximized.Node().SetSize(size)
		r.maximized.Resized()
	}
}

func (r *Root) MinSize() Size {
	if first := r.At(0); first != nil {
		return first.MinSize()
	}
	return Size{}
}

func (r *Root) Destroy() {
	if r.destroyed {
		return
	}
	if r.maximized != nil {
		r.restoreMaximized()
	}
	r.destroyParent()
}

func (r *Root) Persist() Dump {
	return &RootDump{DumpBase: r.persistBase(), Children: r.persistChildren()}
}

func (r *Root) onMaximize(ev Event) {
	v := ev.View
	if v == nil || v.Destroyed() || RootOf(v) != Container(r) {
		return
	}
	if r.Maximized() != nil {
		if r.maximized != v {
			logging.Warn(subsystem, "view %q already maximized, ignoring maximize of %q", r.maximized.Name(), v.Name())
		}
		return
	}
	r.overlay = r.doc.CreateElement("section")
	r.overlay.AddClass(maximizedClass)
	for i, n := range []*surface.Node{v.Header(), v.Node()} {
		r.saved[i] = savedPlace{node: n, parent: n.Parent()}
		if n.Parent() != nil || n == v.Node() {
			r.overlay.AppendChild(n)
		}
	}
	r.node.Prepend(r.overlay)
	r.maximized = v
	r.wasVisible = v.Visible()
	v.SetVisible(true)

	size := r.node.Size()
	r.overlay.SetSize(size)
	v.Node().SetSize(size)
	v.Resized()
}

func (r *Root) onMinimize(ev Event) {
	if ev.View == nil || ev.View != r.maximized {
		return
	}
	r.restoreMaximized()
	r.Resized()
}

// restoreMaximized puts the body back in front of the siblings that now
// follow the view, then the header in front of the body. The anchors are
// looked up at this point since the tree may have changed meanwhile.
func (r *Root) restoreMaximized() {
	v := r.maximized
	var p *parentBase
	idx := -1
	if parent := v.Parent(); parent != nil {
		p = parent.parentCore()
		idx = p.IndexOf(v)
	}
	for i := len(r.saved) - 1; i >= 0; i-- {
		s := r.saved[i]
		if s.parent == nil {
			s.node.Remove()
			continue
		}
		var next *surface.Node
		switch {
		case s.node == v.Header() && v.Node().Parent() == s.parent:
			next = v.Node()
		case idx >= 0:
			next = p.anchorAfter(idx, s.parent, headerAndNode)
		}
		s.parent.InsertBefore(s.node, next)
	}
	v.SetVisible(r.wasVisible)
	r.discardOverlay()
}

// dropStaleMaximized forgets a maximized view that was destroyed, detached
// from this root or moved elsewhere since.
func (r *Root) dropStaleMaximized() {
	v := r.maximized
	if v == nil {
		return
	}
	if !v.Destroyed() && RootOf(v) == Container(r) && v.Node().Parent() == r.overlay {
		return
	}
	if v.Header().Parent() == r.overlay {
		v.Header().Remove()
	}
	r.discardOverlay()
}

func (r *Root) discardOverlay() {
	if r.overlay != nil {
		r.overlay.Remove()
	}
	r.overlay = nil
	r.maximized = nil
	r.saved = [2]savedPlace{}
}
