package layout

import (
	"github.com/google/uuid"

	"panectl/internal/surface"
)

// Container is a node of the layout tree: a ViewContainer leaf or one of
// the parent variants Split, Lineup, Tabbing and Root. The set of variants
// is closed.
type Container interface {
	ID() string
	Type() Type
	Name() string
	SetName(name string)

	// Parent is a non-owning back reference; nil for roots and detached
	// containers.
	Parent() ParentContainer

	// Node is the body handle, Header the chrome handle (title or tab).
	Node() *surface.Node
	Header() *surface.Node

	MinSize() Size

	Visible() bool
	SetVisible(visible bool)

	Fixed() bool
	FixedLayout() bool
	// AutoWrap reports whether the container should be wrapped in a
	// tabbing container when split by a drop, and the wrapper's name.
	AutoWrap() (name string, ok bool)
	HideableHeader() bool

	// Resized re-flows the container after its node was assigned a new
	// extent.
	Resized()
	// Destroy detaches the container from its parent and releases it and
	// its descendants. It is idempotent.
	Destroy()
	Destroyed() bool

	Persist() Dump

	On(t EventType, fn Handler) (unsubscribe func())

	core() *containerBase
}

// Options are the build-time flags shared by all containers.
type Options struct {
	Name string
	// Fixed forbids closing the container and moving it or its dividers.
	Fixed bool
	// FixedLayout forbids drag and drop but keeps dividers movable.
	FixedLayout bool
	// AutoWrap wraps the container in a tabbing container named
	// AutoWrapName (or after the container) when it is split by a drop.
	AutoWrap     bool
	AutoWrapName string
}

// containerBase carries the state every variant shares. self points at the
// outer variant so that shared code can call overridden methods.
type containerBase struct {
	emitter

	self      Container
	doc       *surface.Document
	id        string
	name      string
	opts      Options
	parent    ParentContainer
	node      *surface.Node
	header    *surface.Node
	visible   bool
	destroyed bool
}

func (b *containerBase) init(self Container, doc *surface.Document, opts Options, defaultName string) {
	b.self = self
	b.doc = doc
	b.id = uuid.NewString()
	if opts.Name == "" {
		opts.Name = defaultName
	}
	if opts.Fixed {
		opts.FixedLayout = true
	}
	b.opts = opts
	b.name = opts.Name

	b.node = doc.CreateElement("section")
	b.node.SetAttr("layout", string(self.Type()))
	b.node.SetHidden(true)
	b.header = doc.CreateText("header", b.name)
}

func (b *containerBase) core() *containerBase { return b }

func (b *containerBase) ID() string                  { return b.id }
func (b *containerBase) Name() string                { return b.name }
func (b *containerBase) Parent() ParentContainer     { return b.parent }
func (b *containerBase) Node() *surface.Node         { return b.node }
func (b *containerBase) Header() *surface.Node       { return b.header }
func (b *containerBase) Visible() bool               { return b.visible }
func (b *containerBase) Fixed() bool                 { return b.opts.Fixed }
func (b *containerBase) FixedLayout() bool           { return b.opts.FixedLayout }
func (b *containerBase) HideableHeader() bool        { return false }
func (b *containerBase) Destroyed() bool             { return b.destroyed }
func (b *containerBase) Document() *surface.Document { return b.doc }

func (b *containerBase) SetName(name string) {
	b.name = name
	b.header.Text = name
}

func (b *containerBase) AutoWrap() (string, bool) {
	if !b.opts.AutoWrap {
		return "", false
	}
	if b.opts.AutoWrapName != "" {
		return b.opts.AutoWrapName, true
	}
	return b.name, true
}

// setVisible records the flag and mirrors it onto the body node; variants
// propagate to their content afterwards.
func (b *containerBase) setVisible(visible bool) {
	b.visible = visible
	b.node.SetHidden(!visible)
}

// detachFromParent removes the container from its parent, running the
// parent's dissolution repair.
func (b *containerBase) detachFromParent() {
	if b.parent != nil {
		b.parent.Remove(b.self)
	}
}

func (b *containerBase) persistBase() DumpBase {
	return DumpBase{
		Type:         b.self.Type(),
		Name:         b.name,
		Fixed:        b.opts.Fixed,
		FixedLayout:  b.opts.FixedLayout,
		AutoWrap:     b.opts.AutoWrap,
		AutoWrapName: b.opts.AutoWrapName,
	}
}

// optionsFromDump restores the shared flags of a dump.
func optionsFromDump(d DumpBase) Options {
	return Options{
		Name:         d.Name,
		Fixed:        d.Fixed,
		FixedLayout:  d.FixedLayout,
		AutoWrap:     d.AutoWrap,
		AutoWrapName: d.AutoWrapName,
	}
}

// EffectiveVisible reports whether c and all its ancestors are visible.
func EffectiveVisible(c Container) bool {
	for ; c != nil; c = parentOf(c) {
		if !c.Visible() {
			return false
		}
	}
	return true
}

// parentOf avoids the typed-nil trap of returning a nil ParentContainer as
// a non-nil Container.
func parentOf(c Container) Container {
	p := c.Parent()
	if p == nil {
		return nil
	}
	return p
}

// IsAncestor reports whether ancestor is c or contains c.
func IsAncestor(ancestor, c Container) bool {
	for ; c != nil; c = parentOf(c) {
		if c == ancestor {
			return true
		}
	}
	return false
}

// RootOf walks up to the outermost container of c.
func RootOf(c Container) Container {
	for p := parentOf(c); p != nil; p = parentOf(c) {
		c = p
	}
	return c
}
