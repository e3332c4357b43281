package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"panectl/internal/surface"
)

func TestTabbing_ActiveChild(t *testing.T) {
	doc := surface.NewDocument()
	a, b, c := markup(doc, 1, "a"), markup(doc, 2, "b"), markup(doc, 3, "c")
	root, err := NewRoot(Tabs(a, b, c).Active(1), doc)
	require.NoError(t, err)

	tb := tabbingIn(t, root.Root())
	assert.Equal(t, 1, tb.ActiveIndex())
	assert.True(t, b.Visible())
	assert.False(t, a.Visible())
	assert.False(t, c.Visible())
	assert.True(t, tb.At(1).Visible())
	assert.False(t, tb.At(0).Visible())
	checkInvariants(t, root)
}

func TestTabbing_HeaderHoldsAllTabs(t *testing.T) {
	doc := surface.NewDocument()
	root, err := NewRoot(Tabs(ViewOf("a").Name("A"), ViewOf("b").Name("B")), doc)
	require.NoError(t, err)
	tb := tabbingIn(t, root.Root())

	assert.Equal(t, []*surface.Node{tb.At(0).Header(), tb.At(1).Header()}, tb.Header().Children())
	assert.True(t, tb.At(0).Header().HasClass("active"))

	c := NewViewContainer(doc, markup(doc, 3, "c"), ViewOptions{Options: Options{Name: "C"}})
	require.True(t, tb.Insert(1, c))
	assert.Equal(t, []*surface.Node{tb.At(0).Header(), c.Header(), tb.At(2).Header()}, tb.Header().Children())
	assert.Equal(t, []*surface.Node{tb.At(0).Node(), c.Node(), tb.At(2).Node()}, tb.Node().Children())
	// a tab inserted after the active one stays hidden
	assert.Equal(t, 0, tb.ActiveIndex())
	assert.False(t, c.Visible())

	// the tab strip is mounted in the parent's body
	assert.Equal(t, root.Node(), tb.Header().Parent())
}

func TestTabbing_InsertBeforeActiveShifts(t *testing.T) {
	doc := surface.NewDocument()
	root, err := NewRoot(Tabs("a", "b").Active(1), doc)
	require.NoError(t, err)
	tb := tabbingIn(t, root.Root())
	active := tb.Active()

	require.True(t, tb.Insert(0, NewViewContainer(doc, markup(doc, 3, "c"), ViewOptions{})))
	assert.Equal(t, 2, tb.ActiveIndex())
	assert.Same(t, active, tb.Active())
	checkInvariants(t, root)
}

func TestTabbing_RemoveActive(t *testing.T) {
	tests := []struct {
		name       string
		active     int
		remove     int
		wantActive string
	}{
		{name: "middle selects following", active: 1, remove: 1, wantActive: "c"},
		{name: "last selects preceding", active: 2, remove: 2, wantActive: "b"},
		{name: "first selects following", active: 0, remove: 0, wantActive: "b"},
		{name: "inactive before shifts index", active: 2, remove: 0, wantActive: "c"},
		{name: "inactive after keeps index", active: 0, remove: 2, wantActive: "a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := surface.NewDocument()
			root, err := NewRoot(Tabs(
				ViewOf("a").Name("a"),
				ViewOf("b").Name("b"),
				ViewOf("c").Name("c"),
			).Active(tt.active), doc)
			require.NoError(t, err)
			tb := tabbingIn(t, root.Root())

			var changed []string
			tb.On(EventActiveChanged, func(ev Event) { changed = append(changed, ev.Child.Name()) })

			require.True(t, tb.Remove(tb.At(tt.remove)))
			assert.Equal(t, tt.wantActive, tb.Active().Name())
			assert.True(t, tb.Active().Visible())
			if tt.active == tt.remove {
				assert.Equal(t, []string{tt.wantActive}, changed)
			} else {
				assert.Empty(t, changed)
			}
			checkInvariants(t, root)
		})
	}
}

func TestTabbing_PushActiveAndSetActive(t *testing.T) {
	doc := surface.NewDocument()
	root, err := NewRoot(Tabs("a"), doc)
	require.NoError(t, err)
	tb := tabbingIn(t, root.Root())

	var events []Event
	tb.On(EventActiveChanged, func(ev Event) { events = append(events, ev) })

	b := NewViewContainer(doc, markup(doc, 2, "b"), ViewOptions{})
	require.True(t, tb.PushActive(b))
	assert.Equal(t, 1, tb.ActiveIndex())
	require.Len(t, events, 1)
	assert.Equal(t, 1, events[0].Index)
	assert.Same(t, b, events[0].Child)

	// activating the active tab is a no-op
	require.NoError(t, tb.SetActive(b))
	assert.Len(t, events, 1)

	stranger := NewViewContainer(doc, markup(doc, 9, "x"), ViewOptions{})
	assert.ErrorIs(t, tb.SetActive(stranger), ErrNotAChild)
	assert.ErrorIs(t, tb.Activate(5), ErrNotAChild)

	require.NoError(t, tb.Activate(0))
	assert.True(t, tb.At(0).Visible())
	assert.False(t, b.Visible())
	checkInvariants(t, root)
}

func TestTabbing_HiddenWhileParentHidden(t *testing.T) {
	doc := surface.NewDocument()
	a := NewViewContainer(doc, markup(doc, 1, "a"), ViewOptions{})
	b := NewViewContainer(doc, markup(doc, 2, "b"), ViewOptions{})
	tb, err := NewTabbing(doc, TabbingOptions{}, a, b)
	require.NoError(t, err)

	// detached containers are not shown
	assert.False(t, tb.Visible())
	assert.False(t, a.Visible())

	root := NewEmptyRoot(doc)
	root.Push(tb)
	assert.True(t, a.Visible())
	assert.False(t, b.Visible())

	require.True(t, root.Remove(tb))
	assert.Nil(t, tb.Node().Parent())
}

func TestTabbing_MinSize(t *testing.T) {
	doc := surface.NewDocument()
	a := NewViewContainer(doc, sized(doc, 1, Size{Width: 10, Height: 3}), ViewOptions{})
	b := NewViewContainer(doc, sized(doc, 2, Size{Width: 5, Height: 7}), ViewOptions{})
	tb, err := NewTabbing(doc, TabbingOptions{}, a, b)
	require.NoError(t, err)
	assert.Equal(t, Size{Width: 10, Height: 7}, tb.MinSize())
}

func TestTabbing_DissolvesWhenEmpty(t *testing.T) {
	doc := surface.NewDocument()
	root, err := NewRoot(HorizontalLineup(Tabs("a"), "b"), doc)
	require.NoError(t, err)
	l := root.Root().(*Lineup)
	tb := tabbingIn(t, l.At(0))

	require.True(t, tb.Remove(tb.At(0)))
	assert.True(t, tb.Destroyed())
	assert.Equal(t, 1, l.Len())
	assert.Equal(t, TypeView, l.At(0).Type())
	checkInvariants(t, root)
}

func TestTabbingBuilder_ActiveView(t *testing.T) {
	doc := surface.NewDocument()
	root, err := NewRoot(
		Tabs(ViewOf("a").Name("a")).ActiveView(ViewOf("b").Name("b")).Push(ViewOf("c").Name("c")),
		doc,
	)
	require.NoError(t, err)
	tb := tabbingIn(t, root.Root())

	assert.Equal(t, []string{"a", "b", "c"}, names(tb))
	assert.Equal(t, 1, tb.ActiveIndex())
	assert.Equal(t, "b", tb.Active().Name())
	checkInvariants(t, root)
}
