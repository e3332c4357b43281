package layout

import "panectl/pkg/logging"

// PlacementPolicy decides how a parent container accommodates a child
// dropped onto one of its children. Implementations report whether the
// child was placed.
type PlacementPolicy interface {
	Place(parent ParentContainer, child, reference Container, area DropArea) bool
}

// PlacementFunc adapts a function to PlacementPolicy.
type PlacementFunc func(parent ParentContainer, child, reference Container, area DropArea) bool

func (f PlacementFunc) Place(parent ParentContainer, child, reference Container, area DropArea) bool {
	return f(parent, child, reference, area)
}

// DirectionalPlacement inserts the child before the reference for left and
// top drops, after it for right and bottom drops. A center drop activates
// the child in a tabbing container and appends it elsewhere. References
// that are not children of the parent degrade to an append.
type DirectionalPlacement struct{}

func (DirectionalPlacement) Place(parent ParentContainer, child, reference Container, area DropArea) bool {
	if child == nil || child == reference {
		return false
	}
	i := -1
	if reference != nil {
		i = parent.IndexOf(reference)
	}
	switch {
	case area == DropCenter:
		if t, ok := parent.(*Tabbing); ok {
			return t.PushActive(child)
		}
		return parent.Push(child)
	case i < 0:
		logging.Debug(subsystem, "drop reference not a child of %s %q, appending", parent.Type(), parent.Name())
		return parent.Push(child)
	case area == DropLeft || area == DropTop:
		return parent.Insert(i, child)
	case area == DropRight || area == DropBottom:
		return parent.Insert(i+1, child)
	}
	return parent.Push(child)
}

// SplitPlacement turns a side drop into a new split of the reference and
// the dropped child, oriented by the side and sharing the space evenly.
// Children flagged AutoWrap are wrapped in a tabbing container first.
// Center drops use DirectionalPlacement.
type SplitPlacement struct{}

func (SplitPlacement) Place(parent ParentContainer, child, reference Container, area DropArea) bool {
	if area == DropCenter || reference == nil || parent.IndexOf(reference) < 0 {
		return DirectionalPlacement{}.Place(parent, child, reference, area)
	}
	if child == nil || child == reference || IsAncestor(child, reference) {
		return false
	}
	if old := child.Parent(); old != nil {
		old.Remove(child)
	}
	// the removal may have dissolved the reference's parent
	host := reference.Parent()
	if host == nil {
		return false
	}
	doc := host.core().doc

	dropped := child
	if name, ok := child.AutoWrap(); ok {
		wrapper := newTabbing(doc, Options{Name: name})
		wrapper.Push(child)
		dropped = wrapper
	}

	o := Horizontal
	if area == DropTop || area == DropBottom {
		o = Vertical
	}
	split := newSplit(doc, SplitOptions{Orientation: o}, 0.5)
	if !host.Replace(reference, split) {
		split.Destroy()
		return false
	}
	if area == DropLeft || area == DropTop {
		split.Push(dropped)
		split.Push(reference)
	} else {
		split.Push(reference)
		split.Push(dropped)
	}
	return true
}
