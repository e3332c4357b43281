package layout

import "panectl/internal/surface"

// ViewOptions configure a ViewContainer.
type ViewOptions struct {
	Options
	// HideHeader keeps the title bar out of the surface. It implies Fixed.
	HideHeader bool
}

// ViewContainer is the leaf of a layout tree. It wraps exactly one View.
type ViewContainer struct {
	containerBase

	view       View
	hideHeader bool
}

// NewViewContainer wraps view. The view's node becomes the only child of
// the container's body.
func NewViewContainer(doc *surface.Document, view View, opts ViewOptions) *ViewContainer {
	if opts.HideHeader {
		opts.Fixed = true
	}
	v := &ViewContainer{view: view, hideHeader: opts.HideHeader}
	v.init(v, doc, opts.Options, "View")
	v.header.AddClass("view-title")
	v.node.AppendChild(view.Node())
	view.SetVisible(false)
	return v
}

func (v *ViewContainer) Type() Type { return TypeView }

// View returns the wrapped view.
func (v *ViewContainer) View() View { return v.view }

// HeaderHidden reports whether the title bar is kept out of the surface.
func (v *ViewContainer) HeaderHidden() bool { return v.hideHeader }

func (v *ViewContainer) HideableHeader() bool { return true }

func (v *ViewContainer) MinSize() Size { return v.view.MinSize() }

func (v *ViewContainer) SetVisible(visible bool) {
	v.setVisible(visible)
	v.view.SetVisible(visible)
}

func (v *ViewContainer) Resized() {
	v.view.Node().SetSize(v.node.Size())
	v.view.Resized()
}

// Maximize asks the enclosing root to show this view over the whole layout.
func (v *ViewContainer) Maximize() {
	v.fire(Event{Type: EventMaximize, Source: v, View: v})
}

// Minimize asks the enclosing root to put a maximized view back in place.
func (v *ViewContainer) Minimize() {
	v.fire(Event{Type: EventMinimize, Source: v, View: v})
}

// maximized reports whether the body is mounted in a root's overlay.
func (v *ViewContainer) maximized() bool {
	p := v.node.Parent()
	return p != nil && p.HasClass(maximizedClass)
}

// Destroy restores the view from a maximized state, detaches the container
// from its parent and destroys the view.
func (v *ViewContainer) Destroy() {
	if v.destroyed {
		return
	}
	if v.maximized() {
		v.Minimize()
	}
	v.destroyed = true
	v.detachFromParent()
	v.view.Destroy()
	v.node.Remove()
	v.header.Remove()
	v.clearHandlers()
}

func (v *ViewContainer) Persist() Dump {
	return &ViewDump{
		DumpBase:   v.persistBase(),
		Reference:  v.view.DumpReference(),
		HideHeader: v.hideHeader,
	}
}
