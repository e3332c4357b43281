package surface

import (
	"slices"
	"strings"
)

// Size is the extent, in terminal cells, allocated to a node.
type Size struct {
	Width  int
	Height int
}

// Node is an element of the surface tree.
//
// A node has at most one parent. Every insertion operation detaches the
// inserted node from its previous parent first, so a node is never reachable
// from two places.
type Node struct {
	Tag  string
	Text string

	attrs   map[string]string
	classes []string
	hidden  bool
	size    Size

	parent   *Node
	children []*Node
}

// Parent returns the node's parent or nil when detached.
func (n *Node) Parent() *Node {
	return n.parent
}

// Children returns a copy of the child list.
func (n *Node) Children() []*Node {
	return slices.Clone(n.children)
}

// ChildCount returns the number of children.
func (n *Node) ChildCount() int {
	return len(n.children)
}

// FirstChild returns the first child or nil.
func (n *Node) FirstChild() *Node {
	if len(n.children) == 0 {
		return nil
	}
	return n.children[0]
}

// Index returns the position of n among its siblings, or -1 when detached.
func (n *Node) Index() int {
	if n.parent == nil {
		return -1
	}
	return slices.Index(n.parent.children, n)
}

// NextSibling returns the sibling following n or nil.
func (n *Node) NextSibling() *Node {
	i := n.Index()
	if i < 0 || i+1 >= len(n.parent.children) {
		return nil
	}
	return n.parent.children[i+1]
}

// AppendChild adds child as the last child of n.
func (n *Node) AppendChild(child *Node) *Node {
	return n.InsertBefore(child, nil)
}

// Prepend adds child as the first child of n.
func (n *Node) Prepend(child *Node) *Node {
	return n.InsertBefore(child, n.FirstChild())
}

// InsertBefore inserts child right before ref. A nil ref, or a ref that is
// not a child of n, appends. Inserting an ancestor of n is a no-op.
func (n *Node) InsertBefore(child, ref *Node) *Node {
	if child == nil || child == ref || child.Contains(n) {
		return child
	}
	child.Remove()
	i := len(n.children)
	if ref != nil && ref.parent == n {
		i = ref.Index()
	}
	n.children = slices.Insert(n.children, i, child)
	child.parent = n
	return child
}

// RemoveChild detaches child from n. It reports false when child is not a
// child of n.
func (n *Node) RemoveChild(child *Node) bool {
	if child == nil || child.parent != n {
		return false
	}
	i := child.Index()
	n.children = slices.Delete(n.children, i, i+1)
	child.parent = nil
	return true
}

// ReplaceChild puts replacement at the position of old and detaches old.
func (n *Node) ReplaceChild(replacement, old *Node) bool {
	if old == nil || old.parent != n {
		return false
	}
	if replacement == old {
		return true
	}
	n.InsertBefore(replacement, old)
	return n.RemoveChild(old)
}

// Remove detaches n from its parent, if any.
func (n *Node) Remove() {
	if n.parent != nil {
		n.parent.RemoveChild(n)
	}
}

// Contains reports whether other is n or one of its descendants.
func (n *Node) Contains(other *Node) bool {
	for p := other; p != nil; p = p.parent {
		if p == n {
			return true
		}
	}
	return false
}

// Find returns the first node in depth-first pre-order, starting at n,
// that matches pred.
func (n *Node) Find(pred func(*Node) bool) *Node {
	if pred(n) {
		return n
	}
	for _, c := range n.children {
		if found := c.Find(pred); found != nil {
			return found
		}
	}
	return nil
}

// Attr returns the attribute value or "" when unset.
func (n *Node) Attr(key string) string {
	return n.attrs[key]
}

// LookupAttr returns the attribute value and whether it is set.
func (n *Node) LookupAttr(key string) (string, bool) {
	v, ok := n.attrs[key]
	return v, ok
}

// SetAttr sets an attribute.
func (n *Node) SetAttr(key, value string) {
	if n.attrs == nil {
		n.attrs = make(map[string]string)
	}
	n.attrs[key] = value
}

// DelAttr removes an attribute.
func (n *Node) DelAttr(key string) {
	delete(n.attrs, key)
}

// AddClass adds a class name if not present.
func (n *Node) AddClass(class string) {
	if !n.HasClass(class) {
		n.classes = append(n.classes, class)
	}
}

// RemoveClass drops a class name.
func (n *Node) RemoveClass(class string) {
	n.classes = slices.DeleteFunc(n.classes, func(c string) bool { return c == class })
}

// HasClass reports whether the class is set.
func (n *Node) HasClass(class string) bool {
	return slices.Contains(n.classes, class)
}

// ToggleClass sets or clears a class.
func (n *Node) ToggleClass(class string, on bool) {
	if on {
		n.AddClass(class)
	} else {
		n.RemoveClass(class)
	}
}

// Hidden reports whether the node is hidden.
func (n *Node) Hidden() bool {
	return n.hidden
}

// SetHidden hides or shows the node.
func (n *Node) SetHidden(hidden bool) {
	n.hidden = hidden
}

// Size returns the extent last assigned to the node.
func (n *Node) Size() Size {
	return n.size
}

// SetSize assigns the node's extent.
func (n *Node) SetSize(s Size) {
	n.size = s
}

// String renders a compact outline of the subtree, one node per line.
func (n *Node) String() string {
	var b strings.Builder
	n.outline(&b, 0)
	return b.String()
}

func (n *Node) outline(b *strings.Builder, depth int) {
	b.WriteString(strings.Repeat("  ", depth))
	b.WriteString(n.Tag)
	if l := n.Attr("layout"); l != "" {
		b.WriteString("[" + l + "]")
	}
	if len(n.classes) > 0 {
		b.WriteString("." + strings.Join(n.classes, "."))
	}
	if n.Text != "" {
		b.WriteString(" " + n.Text)
	}
	b.WriteByte('\n')
	for _, c := range n.children {
		c.outline(b, depth+1)
	}
}
