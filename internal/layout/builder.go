package layout

import (
	"fmt"

	"panectl/internal/surface"
)

// Builder describes a container to be created once a document is known.
// The variants are *ViewBuilder, *SplitBuilder, *LineupBuilder and
// *TabbingBuilder. Composites build their children depth first, left to
// right, before themselves.
type Builder interface {
	Build(root *Root, doc *surface.Document) (Container, error)
	isBuilder()
}

// A view-like is a Builder, a markup string, a *surface.Node or a View.
func toBuilder(viewLike any) (Builder, error) {
	switch v := viewLike.(type) {
	case Builder:
		return v, nil
	case string, *surface.Node, View:
		return ViewOf(v), nil
	}
	return nil, fmt.Errorf("%w: %T", ErrUnsupportedViewLike, viewLike)
}

func buildDoc(root *Root, doc *surface.Document) *surface.Document {
	switch {
	case doc != nil:
		return doc
	case root != nil:
		return root.Document()
	}
	return surface.NewDocument()
}

func buildChildren(root *Root, doc *surface.Document, likes []any) ([]Container, error) {
	out := make([]Container, 0, len(likes))
	for _, like := range likes {
		b, err := toBuilder(like)
		if err == nil {
			var c Container
			if c, err = b.Build(root, doc); err == nil {
				out = append(out, c)
				continue
			}
		}
		destroyAll(out)
		return nil, err
	}
	return out, nil
}

func autoWrap(opts *Options, name []string) {
	opts.AutoWrap = true
	if len(name) > 0 {
		opts.AutoWrapName = name[0]
	}
}

// ViewBuilder builds a ViewContainer.
type ViewBuilder struct {
	opts     ViewOptions
	viewLike any
}

// ViewOf describes a view container around a markup string, a surface
// node or a View.
func ViewOf(viewLike any) *ViewBuilder {
	return &ViewBuilder{viewLike: viewLike}
}

func (*ViewBuilder) isBuilder() {}

func (b *ViewBuilder) Name(name string) *ViewBuilder { b.opts.Name = name; return b }
func (b *ViewBuilder) Fixed() *ViewBuilder           { b.opts.Fixed = true; return b }
func (b *ViewBuilder) FixedLayout() *ViewBuilder     { b.opts.FixedLayout = true; return b }

// AutoWrap marks the view for wrapping in a tabbing container, optionally
// named, when it is split by a drop.
func (b *ViewBuilder) AutoWrap(name ...string) *ViewBuilder {
	autoWrap(&b.opts.Options, name)
	return b
}

// HideHeader keeps the title bar out of the surface and fixes the view.
func (b *ViewBuilder) HideHeader() *ViewBuilder {
	b.opts.HideHeader = true
	b.opts.Fixed = true
	return b
}

func (b *ViewBuilder) Build(root *Root, doc *surface.Document) (Container, error) {
	doc = buildDoc(root, doc)
	var v View
	switch like := b.viewLike.(type) {
	case string:
		v = NewMarkupView(doc, like)
	case *surface.Node:
		v = NewNodeView(like)
	case View:
		v = like
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedViewLike, b.viewLike)
	}
	return NewViewContainer(doc, v, b.opts), nil
}

// SplitBuilder builds a Split.
type SplitBuilder struct {
	opts     SplitOptions
	ratio    float64
	children []any
}

// HorizontalSplit describes a split placing children side by side.
func HorizontalSplit(children ...any) *SplitBuilder {
	return &SplitBuilder{opts: SplitOptions{Orientation: Horizontal}, ratio: 0.5, children: children}
}

// VerticalSplit describes a split stacking children.
func VerticalSplit(children ...any) *SplitBuilder {
	return &SplitBuilder{opts: SplitOptions{Orientation: Vertical}, ratio: 0.5, children: children}
}

// HorizontalRatioSplit describes a side by side split of a and b giving a
// the ratio share of the width.
func HorizontalRatioSplit(ratio float64, a, b any) *SplitBuilder {
	return HorizontalSplit(a, b).Ratio(ratio)
}

// VerticalRatioSplit describes a split stacking a over b giving a the
// ratio share of the height.
func VerticalRatioSplit(ratio float64, a, b any) *SplitBuilder {
	return VerticalSplit(a, b).Ratio(ratio)
}

func (*SplitBuilder) isBuilder() {}

func (b *SplitBuilder) Name(name string) *SplitBuilder { b.opts.Name = name; return b }
func (b *SplitBuilder) Fixed() *SplitBuilder           { b.opts.Fixed = true; return b }
func (b *SplitBuilder) FixedLayout() *SplitBuilder     { b.opts.FixedLayout = true; return b }
func (b *SplitBuilder) Ratio(r float64) *SplitBuilder  { b.ratio = r; return b }

func (b *SplitBuilder) AutoWrap(name ...string) *SplitBuilder {
	autoWrap(&b.opts.Options, name)
	return b
}

// Push adds more view-likes after the existing children.
func (b *SplitBuilder) Push(viewLikes ...any) *SplitBuilder {
	b.children = append(b.children, viewLikes...)
	return b
}

func (b *SplitBuilder) Build(root *Root, doc *surface.Document) (Container, error) {
	doc = buildDoc(root, doc)
	children, err := buildChildren(root, doc, b.children)
	if err != nil {
		return nil, err
	}
	s, err := NewSplit(doc, b.opts, b.ratio, children...)
	if err != nil {
		destroyAll(children)
		return nil, fmt.Errorf("building split %q: %w", b.opts.Name, err)
	}
	return s, nil
}

// LineupBuilder builds a Lineup.
type LineupBuilder struct {
	opts     LineupOptions
	children []any
}

func newLineupBuilder(o Orientation, stack bool, children []any) *LineupBuilder {
	return &LineupBuilder{opts: LineupOptions{Orientation: o, StackLayout: stack}, children: children}
}

// HorizontalLineup describes equally sized children side by side.
func HorizontalLineup(children ...any) *LineupBuilder {
	return newLineupBuilder(Horizontal, false, children)
}

// VerticalLineup describes equally sized children stacked.
func VerticalLineup(children ...any) *LineupBuilder {
	return newLineupBuilder(Vertical, false, children)
}

// HorizontalStackedLineup describes children side by side at their own
// widths.
func HorizontalStackedLineup(children ...any) *LineupBuilder {
	return newLineupBuilder(Horizontal, true, children)
}

// VerticalStackedLineup describes children stacked at their own heights.
func VerticalStackedLineup(children ...any) *LineupBuilder {
	return newLineupBuilder(Vertical, true, children)
}

func (*LineupBuilder) isBuilder() {}

func (b *LineupBuilder) Name(name string) *LineupBuilder { b.opts.Name = name; return b }
func (b *LineupBuilder) Fixed() *LineupBuilder           { b.opts.Fixed = true; return b }
func (b *LineupBuilder) FixedLayout() *LineupBuilder     { b.opts.FixedLayout = true; return b }

func (b *LineupBuilder) AutoWrap(name ...string) *LineupBuilder {
	autoWrap(&b.opts.Options, name)
	return b
}

func (b *LineupBuilder) Push(viewLikes ...any) *LineupBuilder {
	b.children = append(b.children, viewLikes...)
	return b
}

func (b *LineupBuilder) Build(root *Root, doc *surface.Document) (Container, error) {
	doc = buildDoc(root, doc)
	children, err := buildChildren(root, doc, b.children)
	if err != nil {
		return nil, err
	}
	l, err := NewLineup(doc, b.opts, children...)
	if err != nil {
		destroyAll(children)
		return nil, fmt.Errorf("building lineup %q: %w", b.opts.Name, err)
	}
	return l, nil
}

// TabbingBuilder builds a Tabbing container.
type TabbingBuilder struct {
	opts     TabbingOptions
	children []any
}

// Tabs describes a tabbing container showing the first child.
func Tabs(children ...any) *TabbingBuilder {
	return &TabbingBuilder{children: children}
}

func (*TabbingBuilder) isBuilder() {}

func (b *TabbingBuilder) Name(name string) *TabbingBuilder { b.opts.Name = name; return b }
func (b *TabbingBuilder) Fixed() *TabbingBuilder           { b.opts.Fixed = true; return b }
func (b *TabbingBuilder) FixedLayout() *TabbingBuilder     { b.opts.FixedLayout = true; return b }
func (b *TabbingBuilder) Active(index int) *TabbingBuilder { b.opts.Active = index; return b }

func (b *TabbingBuilder) AutoWrap(name ...string) *TabbingBuilder {
	autoWrap(&b.opts.Options, name)
	return b
}

func (b *TabbingBuilder) Push(viewLikes ...any) *TabbingBuilder {
	b.children = append(b.children, viewLikes...)
	return b
}

// ActiveView appends viewLike and makes it the tab shown initially.
func (b *TabbingBuilder) ActiveView(viewLike any) *TabbingBuilder {
	b.opts.Active = len(b.children)
	b.children = append(b.children, viewLike)
	return b
}

func (b *TabbingBuilder) Build(root *Root, doc *surface.Document) (Container, error) {
	doc = buildDoc(root, doc)
	children, err := buildChildren(root, doc, b.children)
	if err != nil {
		return nil, err
	}
	t, err := NewTabbing(doc, b.opts, children...)
	if err != nil {
		destroyAll(children)
		return nil, fmt.Errorf("building tabbing %q: %w", b.opts.Name, err)
	}
	return t, nil
}

// NewRoot creates a root in doc (or a fresh document) and builds viewLike
// under it. A nil viewLike yields an empty root.
func NewRoot(viewLike any, doc *surface.Document) (*Root, error) {
	r := NewEmptyRoot(doc)
	if viewLike == nil {
		return r, nil
	}
	if _, err := r.Build(viewLike); err != nil {
		r.Destroy()
		return nil, err
	}
	return r, nil
}

// Build builds viewLike with r's document and appends it.
func (r *Root) Build(viewLike any) (Container, error) {
	b, err := toBuilder(viewLike)
	if err != nil {
		return nil, err
	}
	c, err := b.Build(r, r.doc)
	if err != nil {
		return nil, err
	}
	r.Push(c)
	return c, nil
}
