package surface

// Document creates nodes. It is the rendering context handed to layout
// builders, restore and derive, and owns the top-level body node that
// detached layouts can be mounted into.
type Document struct {
	body    *Node
	created int
}

// NewDocument returns an empty document.
func NewDocument() *Document {
	d := &Document{}
	d.body = d.CreateElement("body")
	return d
}

// Body returns the document's top-level node.
func (d *Document) Body() *Node {
	return d.body
}

// CreateElement returns a new detached node with the given tag.
func (d *Document) CreateElement(tag string) *Node {
	d.created++
	return &Node{Tag: tag}
}

// CreateText returns a new detached node carrying markup text.
func (d *Document) CreateText(tag, text string) *Node {
	n := d.CreateElement(tag)
	n.Text = text
	return n
}

// Created returns how many nodes this document has handed out.
func (d *Document) Created() int {
	return d.created
}
