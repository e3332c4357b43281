package layout

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Dump is the persisted structure of a container. The variants are
// *RootDump, *SplitDump, *LineupDump, *TabbingDump and *ViewDump.
type Dump interface {
	Base() DumpBase
	isDump()
}

// DumpBase holds the fields every variant carries.
type DumpBase struct {
	Type         Type
	Name         string
	Fixed        bool
	FixedLayout  bool
	AutoWrap     bool
	AutoWrapName string
}

func (b DumpBase) Base() DumpBase { return b }
func (DumpBase) isDump()          {}

type RootDump struct {
	DumpBase
	Children []Dump
}

type SplitDump struct {
	DumpBase
	Orientation     Orientation
	Ratio           float64
	SecondaryRatios []float64
	Children        []Dump
}

type LineupDump struct {
	DumpBase
	Orientation Orientation
	StackLayout bool
	Children    []Dump
}

type TabbingDump struct {
	DumpBase
	Active   int
	Children []Dump
}

// ViewDump carries the caller-defined reference of the view instead of any
// live view state.
type ViewDump struct {
	DumpBase
	Reference  int
	HideHeader bool
}

// ChildDumps returns the children of a composite dump, nil for views.
func ChildDumps(d Dump) []Dump {
	switch d := d.(type) {
	case *RootDump:
		return d.Children
	case *SplitDump:
		return d.Children
	case *LineupDump:
		return d.Children
	case *TabbingDump:
		return d.Children
	}
	return nil
}

// wireDump is the single on-the-wire shape of every variant. JSON and YAML
// use the same field names.
type wireDump struct {
	Type            Type        `json:"type" yaml:"type"`
	Name            string      `json:"name" yaml:"name"`
	Fixed           bool        `json:"fixed,omitempty" yaml:"fixed,omitempty"`
	FixedLayout     bool        `json:"fixedLayout,omitempty" yaml:"fixedLayout,omitempty"`
	AutoWrap        bool        `json:"autoWrap,omitempty" yaml:"autoWrap,omitempty"`
	AutoWrapName    string      `json:"autoWrapName,omitempty" yaml:"autoWrapName,omitempty"`
	Orientation     string      `json:"orientation,omitempty" yaml:"orientation,omitempty"`
	Ratio           *float64    `json:"ratio,omitempty" yaml:"ratio,omitempty"`
	SecondaryRatios []float64   `json:"secondaryRatios,omitempty" yaml:"secondaryRatios,omitempty"`
	StackLayout     bool        `json:"stackLayout,omitempty" yaml:"stackLayout,omitempty"`
	Active          *int        `json:"active,omitempty" yaml:"active,omitempty"`
	Reference       *int        `json:"reference,omitempty" yaml:"reference,omitempty"`
	HideHeader      bool        `json:"hideHeader,omitempty" yaml:"hideHeader,omitempty"`
	Children        []*wireDump `json:"children,omitempty" yaml:"children,omitempty"`
}

func toWire(d Dump) *wireDump {
	b := d.Base()
	w := &wireDump{
		Type:         b.Type,
		Name:         b.Name,
		Fixed:        b.Fixed,
		FixedLayout:  b.FixedLayout,
		AutoWrap:     b.AutoWrap,
		AutoWrapName: b.AutoWrapName,
	}
	switch d := d.(type) {
	case *SplitDump:
		w.Orientation = d.Orientation.String()
		w.Ratio = &d.Ratio
		w.SecondaryRatios = d.SecondaryRatios
	case *LineupDump:
		w.Orientation = d.Orientation.String()
		w.StackLayout = d.StackLayout
	case *TabbingDump:
		w.Active = &d.Active
	case *ViewDump:
		w.Reference = &d.Reference
		w.HideHeader = d.HideHeader
	}
	for _, c := range ChildDumps(d) {
		w.Children = append(w.Children, toWire(c))
	}
	return w
}

// fromWire validates w recursively. The type of every node is checked
// before any of its children are looked at.
func fromWire(w *wireDump, path string) (Dump, error) {
	if w == nil {
		return nil, fmt.Errorf("%w: %s: empty entry", ErrMalformedDump, path)
	}
	base := DumpBase{
		Type:         w.Type,
		Name:         w.Name,
		Fixed:        w.Fixed,
		FixedLayout:  w.FixedLayout,
		AutoWrap:     w.AutoWrap,
		AutoWrapName: w.AutoWrapName,
	}
	switch w.Type {
	case TypeRoot, TypeSplit, TypeLineup, TypeTabbing:
	case TypeView:
		if len(w.Children) > 0 {
			return nil, fmt.Errorf("%w: %s: view with children", ErrMalformedDump, path)
		}
		if w.Reference == nil {
			return nil, fmt.Errorf("%w: %s: view without reference", ErrMalformedDump, path)
		}
		return &ViewDump{DumpBase: base, Reference: *w.Reference, HideHeader: w.HideHeader}, nil
	default:
		return nil, fmt.Errorf("%w: %s: %q", ErrInvalidLayoutType, path, w.Type)
	}

	children := make([]Dump, 0, len(w.Children))
	for i, c := range w.Children {
		d, err := fromWire(c, fmt.Sprintf("%s.children[%d]", path, i))
		if err != nil {
			return nil, err
		}
		children = append(children, d)
	}

	switch w.Type {
	case TypeRoot:
		return &RootDump{DumpBase: base, Children: children}, nil
	case TypeSplit:
		o, err := ParseOrientation(w.Orientation)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		if w.Ratio == nil {
			return nil, fmt.Errorf("%w: %s: split without ratio", ErrMalformedDump, path)
		}
		return &SplitDump{DumpBase: base, Orientation: o, Ratio: *w.Ratio, SecondaryRatios: w.SecondaryRatios, Children: children}, nil
	case TypeLineup:
		o, err := ParseOrientation(w.Orientation)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return &LineupDump{DumpBase: base, Orientation: o, StackLayout: w.StackLayout, Children: children}, nil
	default:
		active := 0
		if w.Active != nil {
			active = *w.Active
		}
		if err := checkActive(active, len(children)); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return &TabbingDump{DumpBase: base, Active: active, Children: children}, nil
	}
}

// checkActive validates a tab index against n children. An empty tabbing
// is left to restore, which rejects it for having too few children.
func checkActive(active, n int) error {
	if active < 0 || (n > 0 && active >= n) {
		return fmt.Errorf("%w: active tab %d of %d", ErrMalformedDump, active, n)
	}
	return nil
}

// MarshalDump encodes d as JSON.
func MarshalDump(d Dump) ([]byte, error) {
	return json.Marshal(toWire(d))
}

// MarshalDumpIndent encodes d as indented JSON.
func MarshalDumpIndent(d Dump) ([]byte, error) {
	return json.MarshalIndent(toWire(d), "", "  ")
}

// UnmarshalDump decodes a JSON dump. An unknown type anywhere in the tree
// fails with ErrInvalidLayoutType.
func UnmarshalDump(data []byte) (Dump, error) {
	var w wireDump
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&w); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedDump, err)
	}
	return fromWire(&w, "$")
}

// MarshalDumpYAML encodes d as YAML.
func MarshalDumpYAML(d Dump) ([]byte, error) {
	return yaml.Marshal(toWire(d))
}

// UnmarshalDumpYAML decodes a YAML dump.
func UnmarshalDumpYAML(data []byte) (Dump, error) {
	var w wireDump
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&w); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedDump, err)
	}
	return fromWire(&w, "$")
}

// DecodeDump accepts a JSON or YAML dump. Input that fails to decode as
// JSON is retried as YAML; the JSON error is reported when both fail.
func DecodeDump(data []byte) (Dump, error) {
	d, err := UnmarshalDump(data)
	if err == nil || !errors.Is(err, ErrMalformedDump) {
		return d, err
	}
	if yd, yerr := UnmarshalDumpYAML(data); yerr == nil || !errors.Is(yerr, ErrMalformedDump) {
		return yd, yerr
	}
	return nil, err
}
