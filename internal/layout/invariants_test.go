package layout

import (
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"panectl/internal/surface"
)

func parents(root *Root) []ParentContainer {
	var out []ParentContainer
	Walk(root, func(c Container) bool {
		if p, ok := c.(ParentContainer); ok {
			out = append(out, p)
		}
		return true
	})
	return out
}

// TestInvariants_RandomMutations drives a tree through random pushes,
// removals, moves, activations and divider moves and checks the structural
// invariants after each step.
func TestInvariants_RandomMutations(t *testing.T) {
	areas := []DropArea{DropCenter, DropLeft, DropRight, DropTop, DropBottom}

	for seed := uint64(1); seed <= 20; seed++ {
		rng := rand.New(rand.NewPCG(seed, 42))
		doc := surface.NewDocument()
		root, err := NewRoot(HorizontalSplit(
			VerticalLineup("a", "b", "c"),
			Tabs("d", "e"),
			"f",
		), doc)
		require.NoError(t, err)
		root.SetSize(Size{Width: 120, Height: 40})
		ref := 100

		for step := 0; step < 60; step++ {
			leaves := Leaves(root)
			ps := parents(root)

			switch op := rng.IntN(6); {
			case op == 0 || len(leaves) == 0:
				ref++
				v := NewViewContainer(doc, markup(doc, ref, "new"), ViewOptions{})
				p := ps[rng.IntN(len(ps))]
				p.Insert(rng.IntN(p.Len()+1), v)
			case op == 1:
				leaf := leaves[rng.IntN(len(leaves))]
				leaf.Parent().Remove(leaf)
			case op == 2:
				leaves[rng.IntN(len(leaves))].Destroy()
			case op == 3:
				leaf := leaves[rng.IntN(len(leaves))]
				target := leaves[rng.IntN(len(leaves))]
				if p := target.Parent(); p != nil {
					if rng.IntN(2) == 0 {
						p.SetPlacement(SplitPlacement{})
					}
					p.Place(leaf, target, areas[rng.IntN(len(areas))])
				}
			case op == 4:
				for _, p := range ps {
					if tb, ok := p.(*Tabbing); ok {
						_ = tb.Activate(rng.IntN(tb.Len()))
					}
				}
			default:
				for _, p := range ps {
					if s, ok := p.(*Split); ok {
						s.MoveDivider(rng.IntN(41) - 20)
					}
				}
			}
			checkInvariants(t, root)
		}
	}
}

func TestInvariants_SplitExtentsRespectMinimums(t *testing.T) {
	doc := surface.NewDocument()
	root, err := NewRoot(HorizontalSplit(
		sized(doc, 1, Size{Width: 25}),
		sized(doc, 2, Size{Width: 35}),
	).Ratio(0.1), doc)
	require.NoError(t, err)
	s := splitIn(t, root.Root())

	for _, width := range []int{60, 80, 100, 200} {
		root.SetSize(Size{Width: width, Height: 10})
		assert.GreaterOrEqual(t, s.At(0).Node().Size().Width, 25, "width %d", width)
		assert.GreaterOrEqual(t, s.At(1).Node().Size().Width, 35, "width %d", width)
		assert.Equal(t, width, s.At(0).Node().Size().Width+s.At(1).Node().Size().Width)
	}

	for _, delta := range []int{-100, 100, 7, -13} {
		s.MoveDivider(delta)
		assert.Greater(t, s.Ratio(), 0.0)
		assert.Less(t, s.Ratio(), 1.0)
		assert.GreaterOrEqual(t, s.At(0).Node().Size().Width, 25)
		assert.GreaterOrEqual(t, s.At(1).Node().Size().Width, 35)
	}
}

func TestInvariants_ReparentMovesOnce(t *testing.T) {
	doc := surface.NewDocument()
	root, err := NewRoot(HorizontalSplit(
		HorizontalLineup(ViewOf("a").Name("a"), ViewOf("b").Name("b")),
		HorizontalLineup(ViewOf("c").Name("c"), ViewOf("d").Name("d")),
	), doc)
	require.NoError(t, err)
	s := splitIn(t, root.Root())
	left, right := s.At(0).(*Lineup), s.At(1).(*Lineup)
	a := left.At(0)

	var added, removed int
	left.On(EventChildRemoved, func(Event) { removed++ })
	right.On(EventChildAdded, func(Event) { added++ })

	require.True(t, right.Push(a))
	assert.Equal(t, 1, removed)
	assert.Equal(t, 1, added)
	assert.Same(t, right, a.Parent())
	assert.Equal(t, right.Node(), a.Node().Parent())
	assert.Equal(t, []string{"b"}, names(left))
	checkInvariants(t, root)
}

func TestInvariants_NoCycles(t *testing.T) {
	doc := surface.NewDocument()
	root, err := NewRoot(HorizontalSplit(HorizontalLineup("a", "b"), "c"), doc)
	require.NoError(t, err)
	s := splitIn(t, root.Root())
	l := s.At(0).(*Lineup)

	assert.False(t, l.Push(s), "a container cannot adopt its ancestor")
	assert.False(t, l.Push(l), "a container cannot adopt itself")
	assert.False(t, l.Push(nil))

	dead := NewViewContainer(doc, markup(doc, 9, "x"), ViewOptions{})
	dead.Destroy()
	assert.False(t, l.Push(dead))
	checkInvariants(t, root)
}

func TestInvariants_ReplaceWithSibling(t *testing.T) {
	doc := surface.NewDocument()
	root, err := NewRoot(HorizontalLineup(ViewOf("a").Name("a"), ViewOf("b").Name("b"), ViewOf("c").Name("c")), doc)
	require.NoError(t, err)
	l := root.Root().(*Lineup)
	a, c := l.At(0), l.At(2)

	require.True(t, l.Replace(a, c))
	assert.Equal(t, []string{"c", "b"}, names(l))
	assert.Nil(t, a.Parent())
	checkInvariants(t, root)
}

func TestInvariants_ReplaceWithOwnChild(t *testing.T) {
	doc := surface.NewDocument()
	root, err := NewRoot(HorizontalSplit(HorizontalLineup(ViewOf("a").Name("a"), ViewOf("b").Name("b")), "c"), doc)
	require.NoError(t, err)
	s := splitIn(t, root.Root())
	l := s.At(0).(*Lineup)
	b := l.At(1)

	require.True(t, s.Replace(l, b))
	assert.Same(t, b, s.At(0))
	assert.Equal(t, []string{"a"}, names(l))
	assert.Nil(t, l.Parent())
	checkInvariants(t, root)
}

func TestInvariants_MaximizeDoesNotChangeDump(t *testing.T) {
	doc := surface.NewDocument()
	root := buildSample(t, doc)
	before := root.Persist()

	for _, v := range Leaves(root) {
		v.Maximize()
		v.Minimize()
		if diff := cmp.Diff(before, root.Persist()); diff != "" {
			t.Fatalf("dump changed after maximizing %q:\n%s", v.Name(), diff)
		}
	}
	checkInvariants(t, root)
}
