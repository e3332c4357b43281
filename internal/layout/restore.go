package layout

import (
	"fmt"
	"strconv"
	"strings"

	"panectl/internal/surface"
	"panectl/pkg/logging"
)

// Restore builds a live tree from d. View leaves are resolved through
// resolve; a nil view or a resolver error fails with ErrViewNotFound. On
// failure everything built so far is destroyed. A nil doc gets a fresh
// document.
func Restore(d Dump, resolve ViewResolver, doc *surface.Document) (Container, error) {
	if doc == nil {
		doc = surface.NewDocument()
	}
	c, err := restore(d, resolve, doc)
	if err != nil {
		logging.Warn(subsystem, "restore failed: %v", err)
		return nil, err
	}
	return c, nil
}

// RestoreRoot is Restore for dumps that must describe a root.
func RestoreRoot(d Dump, resolve ViewResolver, doc *surface.Document) (*Root, error) {
	rd, ok := d.(*RootDump)
	if !ok {
		return nil, fmt.Errorf("%w: expected root, got %s", ErrInvalidLayoutType, typeOf(d))
	}
	r := NewEmptyRoot(doc)
	if err := r.Restore(rd, resolve); err != nil {
		r.Destroy()
		return nil, err
	}
	return r, nil
}

// RestoreJSON decodes a JSON dump and restores it. The dump's type is
// validated before anything is built.
func RestoreJSON(data []byte, resolve ViewResolver, doc *surface.Document) (Container, error) {
	d, err := UnmarshalDump(data)
	if err != nil {
		return nil, err
	}
	return Restore(d, resolve, doc)
}

// Restore clears r and repopulates it from d. An empty dump leaves r
// without children.
func (r *Root) Restore(d *RootDump, resolve ViewResolver) error {
	r.Clear()
	r.SetName(d.Name)
	r.opts = optionsFromDump(d.DumpBase)
	for _, cd := range d.Children {
		c, err := restore(cd, resolve, r.doc)
		if err != nil {
			r.Clear()
			return err
		}
		if !r.Push(c) {
			c.Destroy()
			r.Clear()
			return fmt.Errorf("%w: %s nested in root", ErrInvalidLayoutType, c.Type())
		}
	}
	return nil
}

func typeOf(d Dump) string {
	if d == nil {
		return "nothing"
	}
	return string(d.Base().Type)
}

func restore(d Dump, resolve ViewResolver, doc *surface.Document) (Container, error) {
	switch d := d.(type) {
	case *ViewDump:
		v, err := restoreView(d, resolve, doc)
		if err != nil {
			return nil, err
		}
		return v, nil
	case *SplitDump:
		children, err := restoreChildren(d.Children, resolve, doc)
		if err != nil {
			return nil, err
		}
		s, err := NewSplit(doc, SplitOptions{Options: optionsFromDump(d.DumpBase), Orientation: d.Orientation}, d.Ratio, children...)
		if err != nil {
			destroyAll(children)
			return nil, fmt.Errorf("restoring split %q: %w", d.Name, err)
		}
		if len(d.SecondaryRatios) > 0 {
			if err := s.SetSecondaryRatios(d.SecondaryRatios); err != nil {
				s.Destroy()
				return nil, fmt.Errorf("restoring split %q: %w", d.Name, err)
			}
		}
		return s, nil
	case *LineupDump:
		children, err := restoreChildren(d.Children, resolve, doc)
		if err != nil {
			return nil, err
		}
		l, err := NewLineup(doc, LineupOptions{Options: optionsFromDump(d.DumpBase), Orientation: d.Orientation, StackLayout: d.StackLayout}, children...)
		if err != nil {
			destroyAll(children)
			return nil, fmt.Errorf("restoring lineup %q: %w", d.Name, err)
		}
		return l, nil
	case *TabbingDump:
		if err := checkActive(d.Active, len(d.Children)); err != nil {
			return nil, fmt.Errorf("restoring tabbing %q: %w", d.Name, err)
		}
		children, err := restoreChildren(d.Children, resolve, doc)
		if err != nil {
			return nil, err
		}
		t, err := NewTabbing(doc, TabbingOptions{Options: optionsFromDump(d.DumpBase), Active: d.Active}, children...)
		if err != nil {
			destroyAll(children)
			return nil, fmt.Errorf("restoring tabbing %q: %w", d.Name, err)
		}
		return t, nil
	case *RootDump:
		r := NewEmptyRoot(doc)
		if err := r.Restore(d, resolve); err != nil {
			r.Destroy()
			return nil, err
		}
		return r, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrInvalidLayoutType, typeOf(d))
}

func restoreView(d *ViewDump, resolve ViewResolver, doc *surface.Document) (*ViewContainer, error) {
	if resolve == nil {
		return nil, fmt.Errorf("%w: reference %d: no resolver", ErrViewNotFound, d.Reference)
	}
	v, err := resolve(d.Reference)
	if err != nil {
		return nil, fmt.Errorf("%w: reference %d: %w", ErrViewNotFound, d.Reference, err)
	}
	if v == nil {
		return nil, fmt.Errorf("%w: reference %d", ErrViewNotFound, d.Reference)
	}
	return NewViewContainer(doc, v, ViewOptions{Options: optionsFromDump(d.DumpBase), HideHeader: d.HideHeader}), nil
}

func restoreChildren(dumps []Dump, resolve ViewResolver, doc *surface.Document) ([]Container, error) {
	out := make([]Container, 0, len(dumps))
	for _, d := range dumps {
		c, err := restore(d, resolve, doc)
		if err != nil {
			destroyAll(out)
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

func destroyAll(cs []Container) {
	for _, c := range cs {
		c.Destroy()
	}
}

// Derive builds a live tree from a surface tree annotated with "layout"
// attributes and puts the new root's node where n was. Recognized layouts
// are split, hsplit, vsplit, lineup, hlineup, vlineup, stack, hstack,
// vstack and tabbing; anything else is a view made by factory, which
// defaults to NewNodeView.
func Derive(n *surface.Node, doc *surface.Document, factory ViewFactory) (*Root, error) {
	if doc == nil {
		doc = surface.NewDocument()
	}
	if factory == nil {
		factory = func(n *surface.Node) View { return NewNodeView(n) }
	}
	parent, next := n.Parent(), n.NextSibling()

	c, err := derive(n, doc, factory)
	if err != nil {
		return nil, err
	}
	r := NewEmptyRoot(doc)
	r.Push(c)
	if parent != nil {
		if n.Parent() == parent {
			parent.ReplaceChild(r.Node(), n)
		} else {
			parent.InsertBefore(r.Node(), next)
		}
	}
	return r, nil
}

func derive(n *surface.Node, doc *surface.Document, factory ViewFactory) (Container, error) {
	kind := strings.ToLower(n.Attr("layout"))
	opts := Options{Name: n.Attr("name")}

	var orientation Orientation
	switch kind {
	case "vsplit", "vlineup", "vstack":
		orientation = Vertical
	case "split", "lineup", "stack":
		if s, ok := n.LookupAttr("orientation"); ok {
			o, err := ParseOrientation(s)
			if err != nil {
				return nil, err
			}
			orientation = o
		}
	}

	switch kind {
	case "split", "hsplit", "vsplit", "lineup", "hlineup", "vlineup", "stack", "hstack", "vstack", "tabbing":
	default:
		v := factory(n)
		if v == nil {
			return nil, fmt.Errorf("%w: no view for node %q", ErrViewNotFound, n.Tag)
		}
		return NewViewContainer(doc, v, ViewOptions{Options: opts}), nil
	}

	children := make([]Container, 0, n.ChildCount())
	for _, cn := range n.Children() {
		c, err := derive(cn, doc, factory)
		if err != nil {
			destroyAll(children)
			return nil, err
		}
		children = append(children, c)
	}

	var (
		c   Container
		err error
	)
	switch kind {
	case "split", "hsplit", "vsplit":
		ratio := 0.5
		if s, ok := n.LookupAttr("ratio"); ok {
			if ratio, err = strconv.ParseFloat(s, 64); err != nil {
				destroyAll(children)
				return nil, fmt.Errorf("%w: ratio %q: %w", ErrInvalidRatio, s, err)
			}
		}
		c, err = NewSplit(doc, SplitOptions{Options: opts, Orientation: orientation}, ratio, children...)
	case "tabbing":
		active, _ := strconv.Atoi(n.Attr("active"))
		if err = checkActive(active, len(children)); err == nil {
			c, err = NewTabbing(doc, TabbingOptions{Options: opts, Active: active}, children...)
		}
	default:
		stack := strings.HasSuffix(kind, "stack")
		c, err = NewLineup(doc, LineupOptions{Options: opts, Orientation: orientation, StackLayout: stack}, children...)
	}
	if err != nil {
		destroyAll(children)
		return nil, fmt.Errorf("deriving %s %q: %w", kind, opts.Name, err)
	}
	return c, nil
}
