package render

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"panectl/internal/layout"
	"panectl/internal/surface"
	"panectl/internal/views"
)

// assertBlock checks that out is exactly w x h cells.
func assertBlock(t *testing.T, out string, w, h int) {
	t.Helper()
	lines := strings.Split(out, "\n")
	require.Len(t, lines, h, "output:\n%s", out)
	for i, line := range lines {
		assert.Equal(t, w, lipgloss.Width(line), "line %d: %q", i, line)
	}
}

func newRoot(t *testing.T, b layout.Builder, w, h int) *layout.Root {
	t.Helper()
	root, err := layout.NewRoot(b, surface.NewDocument())
	require.NoError(t, err)
	root.SetSize(layout.Size{Width: w, Height: h})
	return root
}

func TestRender_Dimensions(t *testing.T) {
	tests := []struct {
		name    string
		builder layout.Builder
		w, h    int
	}{
		{
			name:    "single view",
			builder: layout.ViewOf("hello").Name("Greeting"),
			w:       20, h: 5,
		},
		{
			name:    "horizontal split",
			builder: layout.HorizontalSplit("left", "right").Ratio(0.3),
			w:       41, h: 7,
		},
		{
			name: "nested with tabs",
			builder: layout.VerticalSplit(
				layout.HorizontalSplit("a", layout.Tabs("b", "c"), "d"),
				layout.VerticalStackedLineup("e", "f"),
			).Ratio(0.6),
			w: 80, h: 24,
		},
		{
			name:    "very long content",
			builder: layout.ViewOf(strings.Repeat("This is a very long line. ", 10) + "\n\tindented\n" + strings.Repeat("x\n", 40)),
			w:       25, h: 6,
		},
		{
			name:    "too small for borders",
			builder: layout.HorizontalLineup("a", "b", "c"),
			w:       5, h: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := newRoot(t, tt.builder, tt.w, tt.h)
			assertBlock(t, Renderer{}.Render(root), tt.w, tt.h)
		})
	}
}

func TestRender_EmptyRoot(t *testing.T) {
	root := layout.NewEmptyRoot(nil)
	assert.Empty(t, Renderer{}.Render(root))

	root.SetSize(layout.Size{Width: 4, Height: 2})
	assert.Equal(t, "    \n    ", Renderer{}.Render(root))
}

func TestRender_TitlesAndTabs(t *testing.T) {
	root := newRoot(t, layout.HorizontalSplit(
		layout.ViewOf("files pane").Name("Files"),
		layout.Tabs(
			layout.ViewOf("log body").Name("Log"),
			layout.ViewOf("shell body").Name("Shell"),
		).Active(1),
	), 60, 10)

	out := Renderer{}.Render(root)
	assert.Contains(t, out, "Files")
	assert.Contains(t, out, "files pane")
	assert.Contains(t, out, " Log ")
	assert.Contains(t, out, " Shell ")
	assert.Contains(t, out, "shell body")
	assert.NotContains(t, out, "log body", "inactive tabs are not drawn")
}

func TestRender_HiddenHeader(t *testing.T) {
	root := newRoot(t, layout.VerticalLineup(
		layout.ViewOf("content").Name("Visible"),
		layout.ViewOf("status").Name("Quiet").HideHeader(),
	), 30, 10)

	out := Renderer{}.Render(root)
	assert.Contains(t, out, "Visible")
	assert.NotContains(t, out, "Quiet")
	assert.Contains(t, out, "status")
}

func TestRender_FocusAndMaximize(t *testing.T) {
	root := newRoot(t, layout.HorizontalSplit(
		layout.ViewOf("alpha").Name("A"),
		layout.ViewOf("beta").Name("B"),
	), 40, 8)
	b := layout.Leaves(root)[1]

	focused := Renderer{Focused: b.ID()}.Render(root)
	assert.Contains(t, focused, "┏", "focused pane uses the thick border")

	b.Maximize()
	out := Renderer{}.Render(root)
	assertBlock(t, out, 40, 8)
	assert.Contains(t, out, "beta")
	assert.NotContains(t, out, "alpha")
	assert.Contains(t, out, "╔")

	b.Minimize()
	assert.Contains(t, Renderer{}.Render(root), "alpha")
}

func TestRender_ContentViews(t *testing.T) {
	doc := surface.NewDocument()
	reg := views.NewDefaultRegistry(doc, views.Options{})
	reg.Log().Append("first entry")
	reg.Log().Append("second entry")
	logView, err := reg.Resolve(4)
	require.NoError(t, err)

	root, err := layout.NewRoot(layout.ViewOf(logView).Name("Log"), doc)
	require.NoError(t, err)
	root.SetSize(layout.Size{Width: 30, Height: 5})

	out := Renderer{}.Render(root)
	// a 5 line pane has room for the title and the two newest entries
	assert.Contains(t, out, "second entry")
	assert.Contains(t, out, "first entry")
	assertBlock(t, out, 30, 5)
}

func TestTabStrip_Truncates(t *testing.T) {
	root := newRoot(t, layout.Tabs(
		layout.ViewOf("a").Name("Alpha"),
		layout.ViewOf("b").Name("Beta"),
		layout.ViewOf("c").Name("Gamma"),
	), 12, 4)
	tb := root.Root().(*layout.Tabbing)

	strip := TabStrip(tb, 12)
	assert.Equal(t, 12, lipgloss.Width(strip))
	assert.True(t, strings.HasPrefix(strip, " Alpha "))
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{in: "short", width: 10, want: "short"},
		{in: "exactly10!", width: 10, want: "exactly10!"},
		{in: "much too long", width: 8, want: "much to…"},
		{in: "\tx", width: 10, want: "    x"},
		{in: "日本語テキスト", width: 7, want: "日本語…"},
		{in: "anything", width: 0, want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Truncate(tt.in, tt.width))
		})
	}
}

func TestOutline(t *testing.T) {
	root := newRoot(t, layout.HorizontalSplit(
		layout.ViewOf("a").Name("A"),
		layout.Tabs(layout.ViewOf("b").Name("B"), layout.ViewOf("c").Name("C")),
	).Name("Main"), 40, 10)

	want := `root "" [40x10]
  split "Main" HORIZONTAL ratio=0.50 [40x10]
    view "A" ref=-1 [20x10]
    tabbing "Container" active=0 [20x10]
      view "B" ref=-1 [20x10]
      view "C" ref=-1 [20x10] hidden
`
	assert.Equal(t, want, Outline(root))
}
