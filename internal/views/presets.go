package views

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	"panectl/internal/layout"
)

// ErrUnknownPreset is returned by Preset for names it does not know.
var ErrUnknownPreset = errors.New("unknown preset")

// presets build the startup layouts from registered references.
var presets = map[string]func(r *Registry) (layout.Builder, error){
	"ide": func(r *Registry) (layout.Builder, error) {
		v, err := r.viewsOf(1, 2, 3, 4, 5, 7)
		if err != nil {
			return nil, err
		}
		return layout.VerticalSplit(
			layout.HorizontalSplit(
				v[0].AutoWrap(),
				layout.Tabs(v[1], v[2]).Name("Documents"),
			).Ratio(0.25).Name("Workspace"),
			layout.Tabs(v[3], v[4]).Name("Console"),
			v[5].HideHeader(),
		).Ratio(0.7).Name("IDE"), nil
	},
	"dashboard": func(r *Registry) (layout.Builder, error) {
		v, err := r.viewsOf(6, 3, 4)
		if err != nil {
			return nil, err
		}
		return layout.HorizontalSplit(
			layout.VerticalStackedLineup(v[0], v[1]).Name("Side"),
			v[2],
		).Ratio(0.3).Name("Dashboard"), nil
	},
}

// PresetNames lists the known presets in order.
func PresetNames() []string {
	return slices.Sorted(maps.Keys(presets))
}

// IsPreset reports whether name is a preset.
func IsPreset(name string) bool {
	_, ok := presets[name]
	return ok
}

// Preset returns the builder for a named startup layout.
func Preset(name string, r *Registry) (layout.Builder, error) {
	build, ok := presets[name]
	if !ok {
		if hint := Suggest(name, PresetNames()); hint != "" {
			return nil, fmt.Errorf("%w: %q (did you mean %q?)", ErrUnknownPreset, name, hint)
		}
		return nil, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}
	return build(r)
}

// viewsOf creates a named view builder per reference.
func (r *Registry) viewsOf(refs ...int) ([]*layout.ViewBuilder, error) {
	out := make([]*layout.ViewBuilder, 0, len(refs))
	for _, ref := range refs {
		v, err := r.Resolve(ref)
		if err != nil {
			return nil, err
		}
		s, _ := r.Spec(ref)
		out = append(out, layout.ViewOf(v).Name(s.Name))
	}
	return out, nil
}
