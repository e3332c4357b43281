package layout

import (
	"strconv"

	"panectl/internal/surface"
)

// View is the capability interface every piece of content placed in a
// layout provides. Any type with this shape can be wrapped by a
// ViewContainer without adaptation.
type View interface {
	Node() *surface.Node
	MinSize() Size
	Visible() bool
	SetVisible(visible bool)
	// Resized is called after the view's node was assigned a new extent.
	Resized()
	Destroy()
	// DumpReference returns the identifier a ViewResolver maps back to an
	// equivalent view when a dump is restored.
	DumpReference() int
}

// ViewResolver maps a dumped reference id back to a live view.
type ViewResolver func(reference int) (View, error)

// ViewFactory turns a scaffolded surface node into a view during Derive.
type ViewFactory func(node *surface.Node) View

// staticView holds the state shared by the bundled adapters.
type staticView struct {
	node      *surface.Node
	minSize   Size
	visible   bool
	reference int
	destroyed bool
}

func (v *staticView) Node() *surface.Node { return v.node }
func (v *staticView) MinSize() Size       { return v.minSize }
func (v *staticView) Visible() bool       { return v.visible }
func (v *staticView) Resized()            {}
func (v *staticView) DumpReference() int  { return v.reference }

func (v *staticView) SetVisible(visible bool) {
	v.visible = visible
	v.node.SetHidden(!visible)
}

// SetMinSize overrides the minimum extent, zero by default.
func (v *staticView) SetMinSize(s Size) {
	v.minSize = s
}

// SetReference sets the id returned by DumpReference.
func (v *staticView) SetReference(ref int) {
	v.reference = ref
}

func (v *staticView) Destroy() {
	if v.destroyed {
		return
	}
	v.destroyed = true
	v.node.Remove()
}

// MarkupView displays a string of markup in a fresh node.
type MarkupView struct {
	staticView
}

// NewMarkupView wraps markup in a new node of doc. Its reference is -1
// until set.
func NewMarkupView(doc *surface.Document, markup string) *MarkupView {
	n := doc.CreateText("div", markup)
	n.AddClass("markup-view")
	return &MarkupView{staticView{node: n, reference: -1}}
}

// Markup returns the displayed markup.
func (v *MarkupView) Markup() string {
	return v.node.Text
}

// NodeView wraps an existing surface node.
type NodeView struct {
	staticView
}

// NewNodeView wraps n. A numeric "ref" attribute on n becomes the dump
// reference, otherwise it is -1.
func NewNodeView(n *surface.Node) *NodeView {
	ref := -1
	if s, ok := n.LookupAttr("ref"); ok {
		if parsed, err := strconv.Atoi(s); err == nil {
			ref = parsed
		}
	}
	return &NodeView{staticView{node: n, reference: ref}}
}
