package views

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/agnivade/levenshtein"

	"panectl/internal/layout"
	"panectl/internal/surface"
)

// Kind selects the view implementation a Spec produces.
type Kind string

const (
	KindText  Kind = "text"
	KindClock Kind = "clock"
	KindLog   Kind = "log"
)

var (
	ErrUnknownReference = errors.New("unknown view reference")
	ErrUnknownView      = errors.New("unknown view")
	ErrDuplicateRef     = errors.New("duplicate view reference")
	ErrUnknownKind      = errors.New("unknown view kind")
)

// Spec describes a registered view.
type Spec struct {
	Ref  int    `json:"ref"`
	Name string `json:"name"`
	Kind Kind   `json:"kind"`
	Text string `json:"text,omitempty"`
}

// Options configure the views a registry creates.
type Options struct {
	MinSize layout.Size
	// Now is the clock of clock views; time.Now when nil.
	Now func() time.Time
	// LogLines bounds the shared log buffer.
	LogLines int
}

// Registry maps dump references to view specs and creates fresh views for
// them.
type Registry struct {
	doc   *surface.Document
	opts  Options
	specs map[int]Spec
	log   *LogBuffer
}

// NewRegistry returns an empty registry creating nodes in doc.
func NewRegistry(doc *surface.Document, opts Options) *Registry {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.LogLines <= 0 {
		opts.LogLines = 500
	}
	return &Registry{
		doc:   doc,
		opts:  opts,
		specs: make(map[int]Spec),
		log:   NewLogBuffer(opts.LogLines),
	}
}

// DefaultSpecs are the views the CLI and TUI know out of the box.
func DefaultSpecs() []Spec {
	return []Spec{
		{Ref: 1, Name: "Files", Kind: KindText, Text: "cmd/\ninternal/\npkg/\ngo.mod\nmain.go"},
		{Ref: 2, Name: "Editor", Kind: KindText, Text: "package main\n\nfunc main() {\n\tcmd.Execute()\n}"},
		{Ref: 3, Name: "Notes", Kind: KindText, Text: "Drop views onto each other\nto build new splits."},
		{Ref: 4, Name: "Log", Kind: KindLog},
		{Ref: 5, Name: "Shell", Kind: KindText, Text: "$ panectl layouts list"},
		{Ref: 6, Name: "Clock", Kind: KindClock},
		{Ref: 7, Name: "Keys", Kind: KindText, Text: "tab focus  m maximize  x close  s split  ? help"},
	}
}

// NewDefaultRegistry returns a registry holding DefaultSpecs.
func NewDefaultRegistry(doc *surface.Document, opts Options) *Registry {
	r := NewRegistry(doc, opts)
	for _, s := range DefaultSpecs() {
		// the defaults are known to be valid
		_ = r.Register(s)
	}
	return r
}

// Register adds s. References must be unique.
func (r *Registry) Register(s Spec) error {
	if _, ok := r.specs[s.Ref]; ok {
		return fmt.Errorf("%w: %d", ErrDuplicateRef, s.Ref)
	}
	switch s.Kind {
	case KindText, KindClock, KindLog:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownKind, s.Kind)
	}
	r.specs[s.Ref] = s
	return nil
}

// Specs returns the registered specs ordered by reference.
func (r *Registry) Specs() []Spec {
	refs := slices.Sorted(maps.Keys(r.specs))
	out := make([]Spec, 0, len(refs))
	for _, ref := range refs {
		out = append(out, r.specs[ref])
	}
	return out
}

// Spec returns the spec registered for ref.
func (r *Registry) Spec(ref int) (Spec, bool) {
	s, ok := r.specs[ref]
	return s, ok
}

// Log returns the buffer shared by all log views.
func (r *Registry) Log() *LogBuffer {
	return r.log
}

// Document returns the document new views are created in.
func (r *Registry) Document() *surface.Document {
	return r.doc
}

// Resolve creates a fresh view for ref. It has the shape of
// layout.ViewResolver.
func (r *Registry) Resolve(ref int) (layout.View, error) {
	s, ok := r.specs[ref]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownReference, ref)
	}
	return r.newView(s, r.doc.CreateText("div", s.Text)), nil
}

// Lookup finds a spec by case-insensitive name. A miss suggests the closest
// registered name.
func (r *Registry) Lookup(name string) (Spec, error) {
	var names []string
	for _, s := range r.Specs() {
		if strings.EqualFold(s.Name, name) {
			return s, nil
		}
		names = append(names, s.Name)
	}
	if hint := Suggest(name, names); hint != "" {
		return Spec{}, fmt.Errorf("%w: %q (did you mean %q?)", ErrUnknownView, name, hint)
	}
	return Spec{}, fmt.Errorf("%w: %q", ErrUnknownView, name)
}

// Factory returns a layout.ViewFactory for Derive. Scaffold nodes carrying
// a registered "ref" attribute become views of that kind; an empty node
// takes the registered text. Other nodes become plain text views.
func (r *Registry) Factory() layout.ViewFactory {
	return func(n *surface.Node) layout.View {
		ref := -1
		if s, ok := n.LookupAttr("ref"); ok {
			if parsed, err := strconv.Atoi(s); err == nil {
				ref = parsed
			}
		}
		s, ok := r.specs[ref]
		if !ok {
			s = Spec{Ref: ref, Kind: KindText}
		}
		if n.Text == "" {
			n.Text = s.Text
		}
		return r.newView(s, n)
	}
}

func (r *Registry) newView(s Spec, n *surface.Node) layout.View {
	p := newPane(n, s.Ref, s.Kind, r.opts.MinSize)
	switch s.Kind {
	case KindClock:
		return &ClockView{pane: p, now: r.opts.Now}
	case KindLog:
		return &LogView{pane: p, buf: r.log}
	}
	return &TextView{pane: p}
}

// Suggest returns the candidate closest to name by edit distance, or ""
// when nothing is within a third of the name's length.
func Suggest(name string, candidates []string) string {
	best, bestDist := "", len(name)/3+1
	for _, c := range candidates {
		d := levenshtein.ComputeDistance(strings.ToLower(name), strings.ToLower(c))
		if d < bestDist {
			best, bestDist = c, d
		}
	}
	return best
}
