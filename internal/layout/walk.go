package layout

// Walk visits c and its descendants depth first in child order. Returning
// false from fn skips the children of the visited container.
func Walk(c Container, fn func(Container) bool) {
	if c == nil || !fn(c) {
		return
	}
	if p, ok := c.(ParentContainer); ok {
		for _, child := range p.Children() {
			Walk(child, fn)
		}
	}
}

// Leaves returns the view containers below c in visual order.
func Leaves(c Container) []*ViewContainer {
	var out []*ViewContainer
	Walk(c, func(c Container) bool {
		if v, ok := c.(*ViewContainer); ok {
			out = append(out, v)
		}
		return true
	})
	return out
}

// VisibleLeaves returns the leaves whose whole ancestry is visible.
func VisibleLeaves(c Container) []*ViewContainer {
	var out []*ViewContainer
	for _, v := range Leaves(c) {
		if EffectiveVisible(v) {
			out = append(out, v)
		}
	}
	return out
}

// FindByID returns the container below c with the given id.
func FindByID(c Container, id string) Container {
	var found Container
	Walk(c, func(c Container) bool {
		if found != nil {
			return false
		}
		if c.ID() == id {
			found = c
		}
		return found == nil
	})
	return found
}

// Count returns the number of containers in the tree rooted at c.
func Count(c Container) int {
	n := 0
	Walk(c, func(Container) bool {
		n++
		return true
	})
	return n
}
