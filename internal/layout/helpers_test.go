package layout

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"panectl/internal/surface"
)

// markup returns a markup view with the given reference.
func markup(doc *surface.Document, ref int, text string) *MarkupView {
	v := NewMarkupView(doc, text)
	v.SetReference(ref)
	return v
}

// sized is markup with a minimum size.
func sized(doc *surface.Document, ref int, minSize Size) *MarkupView {
	v := markup(doc, ref, fmt.Sprintf("view %d", ref))
	v.SetMinSize(minSize)
	return v
}

// resolverFor resolves any reference to a fresh markup view and records
// the references it was asked for.
func resolverFor(doc *surface.Document, asked *[]int) ViewResolver {
	return func(ref int) (View, error) {
		if asked != nil {
			*asked = append(*asked, ref)
		}
		return markup(doc, ref, fmt.Sprintf("view %d", ref)), nil
	}
}

func viewIn(t *testing.T, c Container) *ViewContainer {
	t.Helper()
	v, ok := c.(*ViewContainer)
	require.True(t, ok, "expected view container, got %T", c)
	return v
}

func splitIn(t *testing.T, c Container) *Split {
	t.Helper()
	s, ok := c.(*Split)
	require.True(t, ok, "expected split, got %T", c)
	return s
}

func tabbingIn(t *testing.T, c Container) *Tabbing {
	t.Helper()
	tb, ok := c.(*Tabbing)
	require.True(t, ok, "expected tabbing, got %T", c)
	return tb
}

// checkInvariants asserts the structural invariants over the whole tree.
func checkInvariants(t *testing.T, root *Root) {
	t.Helper()
	Walk(root, func(c Container) bool {
		require.False(t, c.Destroyed(), "destroyed container %q still in tree", c.Name())

		switch c := c.(type) {
		case *ViewContainer:
			require.Equal(t, c.Visible(), c.View().Visible(), "view %q visibility out of sync", c.Name())
		case *Tabbing:
			require.GreaterOrEqual(t, c.Len(), c.MinChildCount())
			visible := 0
			for i, child := range c.Children() {
				require.Same(t, c, child.Parent())
				if child.Visible() {
					visible++
				}
				require.Equal(t, c.Visible() && i == c.ActiveIndex(), child.Visible(), "tab %d of %q", i, c.Name())
			}
			if c.Visible() {
				require.Equal(t, 1, visible, "tabbing %q must show exactly one child", c.Name())
			}
		case ParentContainer:
			if _, isRoot := c.(*Root); !isRoot {
				require.GreaterOrEqual(t, c.Len(), c.MinChildCount(), "%s %q below min children", c.Type(), c.Name())
			}
			for _, child := range c.Children() {
				require.Same(t, c, child.Parent())
				require.Equal(t, c.Visible(), child.Visible(), "child %q of %q", child.Name(), c.Name())
			}
			if s, ok := c.(*Split); ok {
				require.Greater(t, s.Ratio(), 0.0)
				require.Less(t, s.Ratio(), 1.0)
				require.Len(t, s.SecondaryRatios(), max(s.Len()-2, 0))
			}
		}
		return true
	})
}
