package layout

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"panectl/internal/surface"
)

func TestRoot_SplitDissolvesIntoRoot(t *testing.T) {
	doc := surface.NewDocument()
	root, err := NewRoot(HorizontalSplit(ViewOf("a").Name("a"), ViewOf("b").Name("b")), doc)
	require.NoError(t, err)
	s := splitIn(t, root.Root())
	a, b := s.At(0), s.At(1)

	var removed []Container
	root.On(EventChildRemoved, func(ev Event) { removed = append(removed, ev.Child) })

	require.True(t, s.Remove(a))

	assert.True(t, s.Destroyed())
	assert.Nil(t, s.Parent())
	assert.Nil(t, s.Node().Parent())
	assert.Same(t, b, root.Root())
	assert.Equal(t, 1, root.Len())
	assert.Same(t, root, b.Parent())
	assert.True(t, b.Visible())
	assert.Equal(t, root.Node(), b.Node().Parent())
	// the removed child is detached, not destroyed
	assert.Nil(t, a.Parent())
	assert.False(t, a.Destroyed())
	assert.Equal(t, []Container{s}, removed)
	checkInvariants(t, root)
}

func TestRoot_NestedDissolution(t *testing.T) {
	doc := surface.NewDocument()
	root, err := NewRoot(VerticalSplit(
		HorizontalSplit(ViewOf("a").Name("a"), ViewOf("b").Name("b")),
		ViewOf("c").Name("c"),
	), doc)
	require.NoError(t, err)
	outer := splitIn(t, root.Root())
	inner := splitIn(t, outer.At(0))

	require.True(t, inner.Remove(inner.At(0)))
	assert.True(t, inner.Destroyed())
	assert.Equal(t, "b", outer.At(0).Name())

	// destroying b dissolves the outer split as well
	outer.At(0).Destroy()
	assert.True(t, outer.Destroyed())
	assert.Equal(t, "c", root.Root().Name())
	checkInvariants(t, root)
}

func TestRoot_SetRootAndPlace(t *testing.T) {
	doc := surface.NewDocument()
	root := NewEmptyRoot(doc)
	assert.Nil(t, root.Root())
	assert.Equal(t, Size{}, root.MinSize())

	a := NewViewContainer(doc, sized(doc, 1, Size{Width: 4, Height: 2}), ViewOptions{})
	require.True(t, root.SetRoot(a))
	assert.Same(t, a, root.Root())
	assert.Equal(t, Size{Width: 4, Height: 2}, root.MinSize())

	b := NewViewContainer(doc, markup(doc, 2, "b"), ViewOptions{})
	require.True(t, root.SetRoot(b))
	assert.Same(t, b, root.Root())
	assert.Nil(t, a.Parent())

	// the root appends whatever the drop area says
	c := NewViewContainer(doc, markup(doc, 3, "c"), ViewOptions{})
	require.True(t, root.Place(c, b, DropLeft))
	assert.Equal(t, []Container{b, c}, root.Children())

	// roots cannot be adopted
	other := NewEmptyRoot(doc)
	assert.False(t, root.Push(other))
}

func TestRoot_SetSizePropagates(t *testing.T) {
	doc := surface.NewDocument()
	root, err := NewRoot(HorizontalSplit("a", VerticalSplit("b", "c")), doc)
	require.NoError(t, err)
	root.SetSize(Size{Width: 80, Height: 24})

	outer := splitIn(t, root.Root())
	inner := splitIn(t, outer.At(1))
	assert.Equal(t, Size{Width: 80, Height: 24}, outer.Node().Size())
	assert.Equal(t, Size{Width: 40, Height: 24}, inner.Node().Size())
	assert.Equal(t, Size{Width: 40, Height: 12}, inner.At(0).Node().Size())
}

func TestRoot_MaximizeMinimizeSymmetry(t *testing.T) {
	doc := surface.NewDocument()
	root, err := NewRoot(HorizontalSplit(ViewOf("a").Name("a"), Tabs("b", "c")), doc)
	require.NoError(t, err)
	root.SetSize(Size{Width: 80, Height: 24})
	s := splitIn(t, root.Root())
	a := viewIn(t, s.At(0))

	before := root.Persist()
	layoutBefore := s.Node().Children()
	require.Equal(t, []*surface.Node{a.Header(), a.Node(), s.At(1).Header(), s.At(1).Node()}, layoutBefore)

	a.Maximize()
	assert.Same(t, a, root.Maximized())
	overlay := root.Node().FirstChild()
	require.NotNil(t, overlay)
	assert.True(t, overlay.HasClass("maximized-view"))
	assert.Equal(t, overlay, a.Node().Parent())
	assert.Equal(t, overlay, a.Header().Parent())
	assert.Equal(t, Size{Width: 80, Height: 24}, a.Node().Size())
	// the logical tree is untouched
	assert.Same(t, s, a.Parent())
	if diff := cmp.Diff(before, root.Persist()); diff != "" {
		t.Errorf("Persist() changed by maximize (-before +after):\n%s", diff)
	}

	a.Minimize()
	assert.Nil(t, root.Maximized())
	assert.Nil(t, overlay.Parent())
	assert.Equal(t, layoutBefore, s.Node().Children())
	assert.Equal(t, Size{Width: 40, Height: 24}, a.Node().Size())
	if diff := cmp.Diff(before, root.Persist()); diff != "" {
		t.Errorf("Persist() changed by maximize/minimize (-before +after):\n%s", diff)
	}
	checkInvariants(t, root)
}

// mounted lists the surface handles a sequential container should hold, in
// child order.
func mounted(p ParentContainer) []*surface.Node {
	var out []*surface.Node
	for _, c := range p.Children() {
		if showsHeader(c) {
			out = append(out, c.Header())
		}
		out = append(out, c.Node())
	}
	return out
}

func TestRoot_MinimizeAfterTreeChanged(t *testing.T) {
	newX := func(doc *surface.Document) *ViewContainer {
		return NewViewContainer(doc, markup(doc, 9, "x"), ViewOptions{Options: Options{Name: "x"}})
	}
	tests := []struct {
		name   string
		views  []any
		mutate func(s *Split, doc *surface.Document)
		want   []string
	}{
		{
			name:   "sibling inserted in front",
			views:  []any{ViewOf("a").Name("a"), ViewOf("b").Name("b")},
			mutate: func(s *Split, doc *surface.Document) { s.Insert(0, newX(doc)) },
			want:   []string{"x", "a", "b"},
		},
		{
			name:   "following sibling destroyed",
			views:  []any{ViewOf("a").Name("a"), ViewOf("b").Name("b"), ViewOf("c").Name("c")},
			mutate: func(s *Split, _ *surface.Document) { s.At(1).Destroy() },
			want:   []string{"a", "c"},
		},
		{
			name:   "sibling appended",
			views:  []any{ViewOf("a").Name("a"), ViewOf("b").Name("b")},
			mutate: func(s *Split, doc *surface.Document) { s.Push(newX(doc)) },
			want:   []string{"a", "b", "x"},
		},
		{
			name:   "sibling inserted right after",
			views:  []any{ViewOf("a").Name("a"), ViewOf("b").Name("b")},
			mutate: func(s *Split, doc *surface.Document) { s.Insert(1, newX(doc)) },
			want:   []string{"a", "x", "b"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := surface.NewDocument()
			root, err := NewRoot(HorizontalSplit(tt.views...), doc)
			require.NoError(t, err)
			s := splitIn(t, root.Root())
			a := viewIn(t, s.At(0))

			a.Maximize()
			require.Same(t, a, root.Maximized())
			tt.mutate(s, doc)
			a.Minimize()

			assert.Nil(t, root.Maximized())
			assert.Equal(t, tt.want, names(s))
			assert.Equal(t, mounted(s), s.Node().Children())
			checkInvariants(t, root)
		})
	}
}

func TestRoot_MinimizeTabAfterTreeChanged(t *testing.T) {
	doc := surface.NewDocument()
	root, err := NewRoot(Tabs(ViewOf("a").Name("a"), ViewOf("b").Name("b"), ViewOf("c").Name("c")), doc)
	require.NoError(t, err)
	tb := tabbingIn(t, root.Root())
	b := viewIn(t, tb.At(1))

	b.Maximize()
	tb.Insert(1, NewViewContainer(doc, markup(doc, 9, "x"), ViewOptions{Options: Options{Name: "x"}}))
	tb.At(3).Destroy()
	b.Minimize()

	require.Equal(t, []string{"a", "x", "b"}, names(tb))
	var headers, bodies []*surface.Node
	for _, c := range tb.Children() {
		headers = append(headers, c.Header())
		bodies = append(bodies, c.Node())
	}
	assert.Equal(t, headers, tb.Header().Children())
	assert.Equal(t, bodies, tb.Node().Children())
	checkInvariants(t, root)
}

func TestRoot_MaximizeHiddenTab(t *testing.T) {
	doc := surface.NewDocument()
	root, err := NewRoot(Tabs("a", "b"), doc)
	require.NoError(t, err)
	tb := tabbingIn(t, root.Root())
	b := viewIn(t, tb.At(1))
	require.False(t, b.Visible())

	b.Maximize()
	assert.True(t, b.Visible())
	assert.Equal(t, root.Node().FirstChild(), b.Node().Parent())

	b.Minimize()
	assert.False(t, b.Visible())
	assert.Equal(t, tb.Node(), b.Node().Parent())
	assert.Equal(t, tb.Header(), b.Header().Parent())
	assert.Equal(t, 1, b.Node().Index())
	assert.Equal(t, 1, b.Header().Index())
	checkInvariants(t, root)
}

func TestRoot_SecondMaximizeIgnored(t *testing.T) {
	doc := surface.NewDocument()
	root, err := NewRoot(HorizontalSplit("a", "b"), doc)
	require.NoError(t, err)
	s := splitIn(t, root.Root())
	a, b := viewIn(t, s.At(0)), viewIn(t, s.At(1))

	a.Maximize()
	b.Maximize()
	assert.Same(t, a, root.Maximized())
	assert.Equal(t, s.Node(), b.Node().Parent())

	// minimizing a view that is not maximized changes nothing
	b.Minimize()
	assert.Same(t, a, root.Maximized())

	a.Minimize()
	b.Maximize()
	assert.Same(t, b, root.Maximized())
}

func TestRoot_DestroyMaximizedView(t *testing.T) {
	doc := surface.NewDocument()
	root, err := NewRoot(HorizontalSplit("a", "b"), doc)
	require.NoError(t, err)
	s := splitIn(t, root.Root())
	a, b := viewIn(t, s.At(0)), viewIn(t, s.At(1))

	a.Maximize()
	a.Destroy()

	assert.Nil(t, root.Maximized())
	assert.Nil(t, a.Node().Parent())
	assert.Same(t, b, root.Root())
	for _, n := range root.Node().Children() {
		assert.False(t, n.HasClass("maximized-view"))
	}
	checkInvariants(t, root)
}

func TestRoot_MaximizeDetachedViewIgnored(t *testing.T) {
	doc := surface.NewDocument()
	root := NewEmptyRoot(doc)
	v := NewViewContainer(doc, markup(doc, 1, "a"), ViewOptions{})
	v.Maximize()
	assert.Nil(t, root.Maximized())
}

func TestRoot_ClearAndDestroy(t *testing.T) {
	doc := surface.NewDocument()
	root, err := NewRoot(HorizontalLineup("a", "b", "c"), doc)
	require.NoError(t, err)
	l := root.Root()
	leaves := Leaves(root)
	require.Len(t, leaves, 3)

	root.Clear()
	assert.Equal(t, 0, root.Len())
	assert.True(t, l.Destroyed())
	for _, v := range leaves {
		assert.True(t, v.Destroyed())
	}
	assert.False(t, root.Destroyed())

	root.Destroy()
	root.Destroy()
	assert.True(t, root.Destroyed())
}
