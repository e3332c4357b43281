package surface

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tags(nodes []*Node) []string {
	out := make([]string, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, n.Tag)
	}
	return out
}

func TestNode_InsertBefore(t *testing.T) {
	doc := NewDocument()
	parent := doc.CreateElement("p")
	a := parent.AppendChild(doc.CreateElement("a"))
	c := parent.AppendChild(doc.CreateElement("c"))
	parent.InsertBefore(doc.CreateElement("b"), c)

	assert.Equal(t, []string{"a", "b", "c"}, tags(parent.Children()))
	assert.Equal(t, c, a.NextSibling().NextSibling())
	assert.Nil(t, c.NextSibling())

	// moving an existing child keeps a single occurrence
	parent.InsertBefore(c, a)
	assert.Equal(t, []string{"c", "a", "b"}, tags(parent.Children()))
}

func TestNode_InsertBeforeForeignRefAppends(t *testing.T) {
	doc := NewDocument()
	parent := doc.CreateElement("p")
	other := doc.CreateElement("o")
	ref := other.AppendChild(doc.CreateElement("x"))

	parent.AppendChild(doc.CreateElement("a"))
	parent.InsertBefore(doc.CreateElement("b"), ref)

	assert.Equal(t, []string{"a", "b"}, tags(parent.Children()))
}

func TestNode_Reparent(t *testing.T) {
	doc := NewDocument()
	p1 := doc.CreateElement("p1")
	p2 := doc.CreateElement("p2")
	child := p1.AppendChild(doc.CreateElement("c"))

	p2.AppendChild(child)

	assert.Equal(t, 0, p1.ChildCount())
	assert.Equal(t, p2, child.Parent())
}

func TestNode_NoCycles(t *testing.T) {
	doc := NewDocument()
	p := doc.CreateElement("p")
	c := p.AppendChild(doc.CreateElement("c"))

	c.AppendChild(p)

	assert.Nil(t, p.Parent())
	assert.Equal(t, 0, c.ChildCount())
}

func TestNode_ReplaceChild(t *testing.T) {
	doc := NewDocument()
	p := doc.CreateElement("p")
	a := p.AppendChild(doc.CreateElement("a"))
	p.AppendChild(doc.CreateElement("b"))
	x := doc.CreateElement("x")

	require.True(t, p.ReplaceChild(x, a))

	assert.Equal(t, []string{"x", "b"}, tags(p.Children()))
	assert.Nil(t, a.Parent())
	assert.False(t, p.ReplaceChild(x, a))
}

func TestNode_AttrsAndClasses(t *testing.T) {
	n := NewDocument().CreateElement("n")
	_, ok := n.LookupAttr("layout")
	assert.False(t, ok)

	n.SetAttr("layout", "split")
	assert.Equal(t, "split", n.Attr("layout"))
	n.DelAttr("layout")
	assert.Equal(t, "", n.Attr("layout"))

	n.AddClass("tab")
	n.AddClass("tab")
	n.ToggleClass("active", true)
	assert.True(t, n.HasClass("active"))
	n.ToggleClass("active", false)
	assert.False(t, n.HasClass("active"))
	assert.True(t, n.HasClass("tab"))
}

func TestParse(t *testing.T) {
	doc := NewDocument()
	root, err := Parse(doc, strings.NewReader(`
layout: vsplit
name: Main
ratio: 0.25
children:
  - name: Files
    text: files pane
  - layout: tabbing
    active: 1
    children:
      - {name: Log, ref: 3}
      - {name: Shell, ref: 4}
`))
	require.NoError(t, err)

	assert.Equal(t, doc.Body(), root.Parent())
	assert.Equal(t, "vsplit", root.Attr("layout"))
	assert.Equal(t, "0.25", root.Attr("ratio"))
	require.Equal(t, 2, root.ChildCount())
	assert.Equal(t, "files pane", root.FirstChild().Text)

	tabs := root.Children()[1]
	assert.Equal(t, "1", tabs.Attr("active"))
	assert.Equal(t, "4", tabs.Children()[1].Attr("ref"))
}

func TestParse_UnknownField(t *testing.T) {
	_, err := Parse(NewDocument(), strings.NewReader("layout: split\nbogus: 1\n"))
	assert.Error(t, err)
}
