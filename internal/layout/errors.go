package layout

import "errors"

// Structural violations. These are returned at the point of violation and
// never coerced into a valid-looking tree.
var (
	ErrTooFewChildren      = errors.New("too few children for container")
	ErrInvalidRatio        = errors.New("ratio must lie strictly between 0 and 1")
	ErrInvalidLayoutType   = errors.New("invalid layout type")
	ErrMalformedDump       = errors.New("malformed layout dump")
	ErrViewNotFound        = errors.New("view not found")
	ErrUnsupportedViewLike = errors.New("unsupported view-like value")
	ErrNotAChild           = errors.New("not a child of this container")
	ErrDestroyed           = errors.New("container destroyed")
)
