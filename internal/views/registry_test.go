package views

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"panectl/internal/layout"
	"panectl/internal/surface"
)

var fixedNow = func() time.Time { return time.Date(2024, 3, 9, 14, 5, 30, 0, time.UTC) }

func newTestRegistry() *Registry {
	return NewDefaultRegistry(surface.NewDocument(), Options{MinSize: layout.Size{Width: 10, Height: 2}, Now: fixedNow, LogLines: 3})
}

func TestRegistry_Resolve(t *testing.T) {
	r := newTestRegistry()

	tests := []struct {
		ref  int
		want any
	}{
		{ref: 1, want: &TextView{}},
		{ref: 4, want: &LogView{}},
		{ref: 6, want: &ClockView{}},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.ref), func(t *testing.T) {
			v, err := r.Resolve(tt.ref)
			require.NoError(t, err)
			assert.IsType(t, tt.want, v)
			assert.Equal(t, tt.ref, v.DumpReference())
			assert.Equal(t, layout.Size{Width: 10, Height: 2}, v.MinSize())
		})
	}

	_, err := r.Resolve(99)
	assert.ErrorIs(t, err, ErrUnknownReference)
}

func TestRegistry_FreshViewsShareContent(t *testing.T) {
	r := newTestRegistry()
	a, err := r.Resolve(4)
	require.NoError(t, err)
	b, err := r.Resolve(4)
	require.NoError(t, err)
	assert.NotSame(t, a, b)

	for _, line := range []string{"one", "two", "three", "four"} {
		r.Log().Append(line)
	}
	assert.Equal(t, []string{"three", "four"}, a.(*LogView).Lines(80, 2))
	assert.Equal(t, []string{"two", "three", "four"}, b.(*LogView).Lines(80, 10))
}

func TestRegistry_Register(t *testing.T) {
	r := NewRegistry(surface.NewDocument(), Options{})
	require.NoError(t, r.Register(Spec{Ref: 10, Name: "Scratch", Kind: KindText}))
	assert.ErrorIs(t, r.Register(Spec{Ref: 10, Name: "Again", Kind: KindText}), ErrDuplicateRef)
	assert.ErrorIs(t, r.Register(Spec{Ref: 11, Name: "Odd", Kind: "chart"}), ErrUnknownKind)
	assert.Len(t, r.Specs(), 1)
}

func TestRegistry_Lookup(t *testing.T) {
	r := newTestRegistry()

	s, err := r.Lookup("editor")
	require.NoError(t, err)
	assert.Equal(t, 2, s.Ref)

	_, err = r.Lookup("Edtor")
	assert.ErrorIs(t, err, ErrUnknownView)
	assert.Contains(t, err.Error(), `did you mean "Editor"`)

	_, err = r.Lookup("spreadsheet")
	assert.ErrorIs(t, err, ErrUnknownView)
	assert.NotContains(t, err.Error(), "did you mean")
}

func TestViews_Lines(t *testing.T) {
	r := newTestRegistry()

	clock, err := r.Resolve(6)
	require.NoError(t, err)
	assert.Equal(t, []string{"14:05:30", "Sat 09 Mar 2024"}, clock.(*ClockView).Lines(20, 5))
	assert.Equal(t, []string{"14:05:30"}, clock.(*ClockView).Lines(20, 1))

	files, err := r.Resolve(1)
	require.NoError(t, err)
	assert.Equal(t, []string{"cmd/", "internal/"}, files.(*TextView).Lines(20, 2))
}

func TestViews_VisibilityAndDestroy(t *testing.T) {
	r := newTestRegistry()
	v, err := r.Resolve(1)
	require.NoError(t, err)
	parent := r.Document().CreateElement("section")
	parent.AppendChild(v.Node())

	v.SetVisible(true)
	assert.True(t, v.Visible())
	assert.False(t, v.Node().Hidden())

	v.Destroy()
	v.Destroy()
	assert.Nil(t, v.Node().Parent())
	assert.True(t, v.(*TextView).Destroyed())
}

func TestRegistry_FactoryDerive(t *testing.T) {
	r := newTestRegistry()
	doc := r.Document()
	ref := 4
	n := surface.Scaffold{
		Layout: "hsplit",
		Children: []surface.Scaffold{
			{Name: "Log", Ref: &ref},
			{Text: "free text"},
		},
	}.Build(doc)

	root, err := layout.Derive(n, doc, r.Factory())
	require.NoError(t, err)
	leaves := layout.Leaves(root)
	require.Len(t, leaves, 2)
	assert.IsType(t, &LogView{}, leaves[0].View())
	assert.Equal(t, 4, leaves[0].View().DumpReference())
	assert.IsType(t, &TextView{}, leaves[1].View())
	assert.Equal(t, -1, leaves[1].View().DumpReference())
}

func TestPresets(t *testing.T) {
	for _, name := range PresetNames() {
		t.Run(name, func(t *testing.T) {
			r := newTestRegistry()
			b, err := Preset(name, r)
			require.NoError(t, err)
			root, err := layout.NewRoot(b, r.Document())
			require.NoError(t, err)
			assert.NotEmpty(t, layout.Leaves(root))

			// every leaf restores through the registry
			data, err := layout.MarshalDump(root.Persist())
			require.NoError(t, err)
			_, err = layout.RestoreJSON(data, r.Resolve, r.Document())
			require.NoError(t, err)
		})
	}

	_, err := Preset("dashbaord", newTestRegistry())
	assert.ErrorIs(t, err, ErrUnknownPreset)
	assert.Contains(t, err.Error(), "dashboard")
	assert.True(t, IsPreset("ide"))
}
