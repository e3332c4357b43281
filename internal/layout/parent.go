package layout

import (
	"slices"

	"panectl/internal/surface"
	"panectl/pkg/logging"
)

const subsystem = "Layout"

// ParentContainer is a container with an ordered list of children. The
// child order is meaningful: axis position or tab order.
type ParentContainer interface {
	Container

	Children() []Container
	Len() int
	At(index int) Container
	IndexOf(child Container) int
	ForEach(fn func(child Container, index int))

	// Push appends child, removing it from its previous parent first.
	Push(child Container) bool
	// Insert places child at index (clamped to the valid range).
	Insert(index int, child Container) bool
	// Remove detaches child. A container left with fewer than
	// MinChildCount children dissolves into its grandparent.
	Remove(child Container) bool
	// Replace puts replacement at the position of old.
	Replace(old, replacement Container) bool
	// Place moves child next to reference according to area and the
	// container's PlacementPolicy.
	Place(child, reference Container, area DropArea) bool

	MinChildCount() int
	SetPlacement(policy PlacementPolicy)

	parentCore() *parentBase
}

// parentHooks are the variant-specific steps of a child mutation.
// insertingChild and removingChild run for structural changes only, not for
// Replace, which keeps the slot and its bookkeeping.
type parentHooks interface {
	insertingChild(child Container, index int)
	mountChild(child Container, index int)
	unmountChild(child Container)
	removingChild(index int)
	removedChild(index int)
	propagateVisible(visible bool)
}

type parentBase struct {
	containerBase

	hooks       parentHooks
	children    []Container
	relays      map[string][]func()
	placement   PlacementPolicy
	minChildren int
}

func (p *parentBase) parentCore() *parentBase { return p }

// Default hooks; variants override what they need.
func (p *parentBase) insertingChild(Container, int) {}
func (p *parentBase) removingChild(int)             {}
func (p *parentBase) removedChild(int)              {}

func (p *parentBase) Children() []Container { return slices.Clone(p.children) }
func (p *parentBase) Len() int              { return len(p.children) }
func (p *parentBase) MinChildCount() int    { return p.minChildren }

func (p *parentBase) At(index int) Container {
	if index < 0 || index >= len(p.children) {
		return nil
	}
	return p.children[index]
}

func (p *parentBase) IndexOf(child Container) int {
	return slices.Index(p.children, child)
}

func (p *parentBase) ForEach(fn func(Container, int)) {
	for i, c := range slices.Clone(p.children) {
		fn(c, i)
	}
}

func (p *parentBase) SetPlacement(policy PlacementPolicy) {
	p.placement = policy
}

func (p *parentBase) asParent() ParentContainer {
	return p.self.(ParentContainer)
}

func (p *parentBase) SetVisible(visible bool) {
	p.setVisible(visible)
	p.hooks.propagateVisible(visible)
}

func (p *parentBase) Push(child Container) bool {
	return p.Insert(len(p.children), child)
}

func (p *parentBase) Insert(index int, child Container) bool {
	if !p.canAdopt(child) {
		return false
	}
	if old := child.Parent(); old != nil {
		if old.parentCore() == p {
			if from := p.IndexOf(child); from < index {
				index--
			}
			p.detach(child, true)
		} else {
			old.Remove(child)
		}
	}
	if p.destroyed {
		// the old parent's repair may have dissolved us
		return false
	}
	index = max(0, min(index, len(p.children)))

	p.hooks.insertingChild(child, index)
	p.children = slices.Insert(p.children, index, child)
	p.attach(child, index)
	p.self.Resized()
	return true
}

func (p *parentBase) Remove(child Container) bool {
	i := p.IndexOf(child)
	if i < 0 {
		return false
	}
	p.detach(child, true)
	p.repair()
	return true
}

func (p *parentBase) Replace(old, replacement Container) bool {
	if old == replacement {
		return p.IndexOf(old) >= 0
	}
	if p.IndexOf(old) < 0 || !p.canAdopt(replacement) {
		return false
	}
	sibling := false
	if rp := replacement.Parent(); rp != nil {
		switch {
		case rp == old:
			// old goes away, no need to repair it
			rp.parentCore().detach(replacement, true)
		case rp.parentCore() == p:
			sibling = true
			p.detach(replacement, true)
		default:
			rp.Remove(replacement)
		}
	}
	i := p.IndexOf(old)
	if i < 0 || p.destroyed {
		return false
	}

	p.detachAt(old, i)
	p.children[i] = replacement
	p.attach(replacement, i)
	if sibling {
		p.repair()
	} else {
		p.self.Resized()
	}
	return true
}

// Clear destroys all children.
func (p *parentBase) Clear() {
	for _, c := range slices.Clone(p.children) {
		c.Destroy()
	}
}

func (p *parentBase) canAdopt(child Container) bool {
	if child == nil || p.destroyed || child.Destroyed() {
		return false
	}
	if _, isRoot := child.(*Root); isRoot {
		return false
	}
	// adopting an ancestor would create a cycle
	return !IsAncestor(child, p.self)
}

// attach links child at index, which it already occupies in p.children.
func (p *parentBase) attach(child Container, index int) {
	child.core().parent = p.asParent()
	p.relay(child)
	p.hooks.mountChild(child, index)
	p.fire(Event{Type: EventChildAdded, Source: p.self, Child: child, Index: index})
}

// detach unlinks child. With structural set, the variant's slot bookkeeping
// runs as well and the slot is removed from p.children.
func (p *parentBase) detach(child Container, structural bool) bool {
	i := p.IndexOf(child)
	if i < 0 {
		return false
	}
	if !structural {
		p.detachAt(child, i)
		return true
	}
	p.hooks.removingChild(i)
	p.detachAt(child, i)
	p.children = slices.Delete(p.children, i, i+1)
	p.hooks.removedChild(i)
	return true
}

func (p *parentBase) detachAt(child Container, index int) {
	p.hooks.unmountChild(child)
	p.unrelay(child)
	child.core().parent = nil
	p.fire(Event{Type: EventChildRemoved, Source: p.self, Child: child, Index: index})
}

// repair restores the min-child invariant after a removal by dissolving the
// container into its grandparent.
func (p *parentBase) repair() {
	if p.destroyed {
		return
	}
	if len(p.children) >= p.minChildren {
		p.self.Resized()
		return
	}
	grand := p.parent
	if grand == nil {
		return
	}
	logging.Debug(subsystem, "dissolving %s %q with %d children left", p.self.Type(), p.name, len(p.children))
	if len(p.children) == 0 {
		grand.Remove(p.self)
	} else {
		survivor := p.children[0]
		p.detach(survivor, true)
		grand.Replace(p.self, survivor)
	}
	p.self.Destroy()
}

// relay forwards maximize and minimize requests fired anywhere below child
// to p's own handlers, so they bubble up to the root.
func (p *parentBase) relay(child Container) {
	if p.relays == nil {
		p.relays = make(map[string][]func())
	}
	p.relays[child.ID()] = []func(){
		child.On(EventMaximize, p.fire),
		child.On(EventMinimize, p.fire),
	}
}

func (p *parentBase) unrelay(child Container) {
	for _, off := range p.relays[child.ID()] {
		off()
	}
	delete(p.relays, child.ID())
}

func (p *parentBase) Place(child, reference Container, area DropArea) bool {
	if p.opts.FixedLayout {
		logging.Debug(subsystem, "drop onto fixed %s %q rejected", p.self.Type(), p.name)
		return false
	}
	policy := p.placement
	if policy == nil {
		policy = DirectionalPlacement{}
	}
	return policy.Place(p.asParent(), child, reference, area)
}

// destroyParent is the Destroy shared by Split, Lineup and Tabbing.
func (p *parentBase) destroyParent() {
	if p.destroyed {
		return
	}
	p.destroyed = true
	p.detachFromParent()
	for _, c := range slices.Clone(p.children) {
		c.Destroy()
	}
	p.node.Remove()
	p.header.Remove()
	p.clearHandlers()
}

func (p *parentBase) minSizeAlong(o Orientation, sum bool) Size {
	var a, c int
	for _, child := range p.children {
		ms := child.MinSize()
		if sum {
			a += along(ms, o)
		} else {
			a = max(a, along(ms, o))
		}
		c = max(c, across(ms, o))
	}
	return sizeOf(o, a, c)
}

func (p *parentBase) persistChildren() []Dump {
	out := make([]Dump, 0, len(p.children))
	for _, c := range p.children {
		out = append(out, c.Persist())
	}
	return out
}

// mountSequential places child's chrome and body before the next sibling's.
// Views show their title bar, tabbing containers their tab strip; nested
// split and lineup headers are not shown.
func (p *parentBase) mountSequential(child Container, index int) {
	ref := p.anchorAfter(index, p.node, headerAndNode)
	if showsHeader(child) {
		p.node.InsertBefore(child.Header(), ref)
	}
	p.node.InsertBefore(child.Node(), ref)
	child.SetVisible(p.visible)
}

// anchorAfter returns the first surface node of the children after index
// that is mounted in into, or nil to append. Children lifted into a
// maximize overlay are skipped.
func (p *parentBase) anchorAfter(index int, into *surface.Node, handles func(Container) []*surface.Node) *surface.Node {
	for _, c := range p.children[min(index+1, len(p.children)):] {
		for _, n := range handles(c) {
			if n.Parent() == into {
				return n
			}
		}
	}
	return nil
}

func headerAndNode(c Container) []*surface.Node { return []*surface.Node{c.Header(), c.Node()} }
func headerOnly(c Container) []*surface.Node    { return []*surface.Node{c.Header()} }
func nodeOnly(c Container) []*surface.Node      { return []*surface.Node{c.Node()} }

func (p *parentBase) unmountSequential(child Container) {
	if child.Header().Parent() == p.node {
		child.Header().Remove()
	}
	if child.Node().Parent() == p.node {
		child.Node().Remove()
	}
}

func showsHeader(c Container) bool {
	switch c := c.(type) {
	case *ViewContainer:
		return !c.hideHeader
	case *Tabbing:
		return true
	}
	return false
}
