package layout

import (
	"fmt"
	"math"
	"slices"

	"panectl/internal/surface"
)

// ratioEpsilon keeps recomputed ratios away from the open interval bounds.
const ratioEpsilon = 0.01

// SplitOptions configure a Split.
type SplitOptions struct {
	Options
	Orientation Orientation
}

// Split divides its extent along one axis. The first two children form the
// primary pair sharing the space left over by the others according to
// Ratio; every further child holds a fixed fraction of the whole axis.
type Split struct {
	parentBase

	orientation Orientation
	ratio       float64
	// secondary[i] is the axis fraction of children[i+2].
	secondary []float64
}

// NewSplit builds a split of at least two children. ratio is the share of
// the first child within the primary pair and must lie in (0, 1).
func NewSplit(doc *surface.Document, opts SplitOptions, ratio float64, children ...Container) (*Split, error) {
	if len(children) < 2 {
		return nil, fmt.Errorf("%w: split needs 2, got %d", ErrTooFewChildren, len(children))
	}
	if !validRatio(ratio) {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidRatio, ratio)
	}
	s := newSplit(doc, opts, ratio)
	for _, c := range children {
		if !s.Push(c) {
			s.Destroy()
			return nil, fmt.Errorf("adding %s %q to split: %w", c.Type(), c.Name(), ErrDestroyed)
		}
	}
	return s, nil
}

// newSplit returns an empty split for callers that fill it right away.
func newSplit(doc *surface.Document, opts SplitOptions, ratio float64) *Split {
	s := &Split{orientation: opts.Orientation, ratio: ratio}
	s.init(s, doc, opts.Options, "Container")
	s.hooks = s
	s.minChildren = 2
	s.node.SetAttr("orientation", opts.Orientation.String())
	return s
}

func validRatio(r float64) bool {
	return r > 0 && r < 1 && !math.IsNaN(r)
}

func clampRatio(r float64) float64 {
	if math.IsNaN(r) {
		return 0.5
	}
	return max(ratioEpsilon, min(r, 1-ratioEpsilon))
}

func (s *Split) Type() Type { return TypeSplit }

func (s *Split) Orientation() Orientation { return s.orientation }

// Ratio is the first child's share of the primary pair's space.
func (s *Split) Ratio() float64 { return s.ratio }

// SecondaryRatios returns the axis fractions of the children past the
// primary pair.
func (s *Split) SecondaryRatios() []float64 { return slices.Clone(s.secondary) }

// SetRatio validates and applies r, then re-flows.
func (s *Split) SetRatio(r float64) error {
	if !validRatio(r) {
		return fmt.Errorf("%w: got %v", ErrInvalidRatio, r)
	}
	s.ratio = r
	s.Resized()
	s.fire(Event{Type: EventRatioChanged, Source: s})
	return nil
}

// SetSecondaryRatios replaces the fractions of children past the primary
// pair. There must be one per such child, each in (0, 1), summing below 1.
func (s *Split) SetSecondaryRatios(fracs []float64) error {
	if want := max(len(s.children)-2, 0); len(fracs) != want {
		return fmt.Errorf("%w: %d secondary ratios for %d extra children", ErrInvalidRatio, len(fracs), want)
	}
	var sum float64
	for _, f := range fracs {
		if !validRatio(f) {
			return fmt.Errorf("%w: secondary ratio %v", ErrInvalidRatio, f)
		}
		sum += f
	}
	if sum >= 1 {
		return fmt.Errorf("%w: secondary ratios sum to %v", ErrInvalidRatio, sum)
	}
	s.secondary = slices.Clone(fracs)
	s.Resized()
	return nil
}

// MoveDivider shifts the divider between the primary pair by delta cells,
// clamped so both keep their minimum size. Fixed splits refuse.
func (s *Split) MoveDivider(delta int) bool {
	if s.opts.Fixed || len(s.children) < 2 {
		return false
	}
	extents := s.extents()
	rest := extents[0] + extents[1]
	if rest < 2 {
		return false
	}
	lo := max(1, along(s.children[0].MinSize(), s.orientation))
	hi := min(rest-1, rest-along(s.children[1].MinSize(), s.orientation))
	if lo > hi {
		return false
	}
	first := max(lo, min(extents[0]+delta, hi))
	if first == extents[0] {
		return false
	}
	s.ratio = float64(first) / float64(rest)
	s.Resized()
	s.fire(Event{Type: EventRatioChanged, Source: s})
	return true
}

func (s *Split) sumSecondary() float64 {
	var sum float64
	for _, f := range s.secondary {
		sum += f
	}
	return sum
}

func (s *Split) insertingChild(_ Container, index int) {
	if len(s.children) < 2 {
		return
	}
	// a child landing in the primary pair pushes the second one out of it
	f := (1 - s.sumSecondary()) / 3
	s.secondary = slices.Insert(s.secondary, max(index-2, 0), f)
}

func (s *Split) removingChild(index int) {
	if index >= 2 {
		s.secondary = slices.Delete(s.secondary, index-2, index-1)
		return
	}
	if len(s.secondary) == 0 {
		return
	}
	rest := 1 - s.sumSecondary()
	keep := s.ratio * rest
	if index == 0 {
		keep = (1 - s.ratio) * rest
	}
	promoted := s.secondary[0]
	s.secondary = s.secondary[1:]
	if keep+promoted <= 0 {
		s.ratio = 0.5
		return
	}
	s.ratio = clampRatio(keep / (keep + promoted))
}

func (s *Split) mountChild(child Container, index int) { s.mountSequential(child, index) }
func (s *Split) unmountChild(child Container)          { s.unmountSequential(child) }

func (s *Split) propagateVisible(visible bool) {
	for _, c := range s.children {
		c.SetVisible(visible)
	}
}

// extents computes the axis extent of every child for the current size.
func (s *Split) extents() []int {
	avail := along(s.node.Size(), s.orientation)
	out := make([]int, len(s.children))
	used := 0
	for i, f := range s.secondary {
		if i+2 >= len(out) {
			break
		}
		e := int(math.Round(f * float64(avail)))
		out[i+2] = e
		used += e
	}
	rest := max(avail-used, 0)
	switch len(out) {
	case 0:
	case 1:
		out[0] = rest
	default:
		first := int(math.Round(s.ratio * float64(rest)))
		min0 := along(s.children[0].MinSize(), s.orientation)
		min1 := along(s.children[1].MinSize(), s.orientation)
		if min0+min1 <= rest {
			first = max(min0, min(first, rest-min1))
		}
		out[0] = first
		out[1] = rest - first
	}
	return out
}

func (s *Split) Resized() {
	if s.destroyed {
		return
	}
	cross := across(s.node.Size(), s.orientation)
	for i, e := range s.extents() {
		c := s.children[i]
		c.Node().SetSize(sizeOf(s.orientation, e, cross))
		c.Resized()
	}
}

func (s *Split) MinSize() Size { return s.minSizeAlong(s.orientation, true) }

func (s *Split) Destroy() { s.destroyParent() }

func (s *Split) Persist() Dump {
	d := &SplitDump{
		DumpBase:    s.persistBase(),
		Orientation: s.orientation,
		Ratio:       s.ratio,
		Children:    s.persistChildren(),
	}
	if len(s.secondary) > 0 {
		d.SecondaryRatios = slices.Clone(s.secondary)
	}
	return d
}
