package layout

import (
	"fmt"
	"strings"

	"panectl/internal/surface"
)

// Size is a width/height pair in terminal cells.
type Size = surface.Size

// Type names a container variant. It is the "type" tag of a dump.
type Type string

const (
	TypeRoot    Type = "root"
	TypeSplit   Type = "split"
	TypeLineup  Type = "lineup"
	TypeTabbing Type = "tabbing"
	TypeView    Type = "view"
)

// Orientation is the axis along which a sequential container lays out its
// children.
type Orientation int

const (
	// Horizontal places children side by side; the layout axis is the width.
	Horizontal Orientation = iota
	// Vertical stacks children top to bottom; the layout axis is the height.
	Vertical
)

func (o Orientation) String() string {
	if o == Vertical {
		return "VERTICAL"
	}
	return "HORIZONTAL"
}

// ParseOrientation accepts the dump spelling ("HORIZONTAL", "VERTICAL") in
// any case, plus the short forms "h" and "v".
func ParseOrientation(s string) (Orientation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "horizontal", "h":
		return Horizontal, nil
	case "vertical", "v":
		return Vertical, nil
	}
	return Horizontal, fmt.Errorf("%w: orientation %q", ErrMalformedDump, s)
}

// along returns the extent of s on the layout axis of o.
func along(s Size, o Orientation) int {
	if o == Vertical {
		return s.Height
	}
	return s.Width
}

// across returns the extent of s perpendicular to the layout axis of o.
func across(s Size, o Orientation) int {
	if o == Vertical {
		return s.Width
	}
	return s.Height
}

// sizeOf builds a Size from axis-relative extents.
func sizeOf(o Orientation, alongExt, acrossExt int) Size {
	if o == Vertical {
		return Size{Width: acrossExt, Height: alongExt}
	}
	return Size{Width: alongExt, Height: acrossExt}
}

// DropArea is the region of a reference container a dragged container was
// dropped on.
type DropArea string

const (
	DropCenter DropArea = "center"
	DropLeft   DropArea = "left"
	DropRight  DropArea = "right"
	DropTop    DropArea = "top"
	DropBottom DropArea = "bottom"
)
