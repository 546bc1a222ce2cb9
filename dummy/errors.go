package dummy

import "errors"

var (
	// ErrShape indicates an image shape that is not 2-D with positive extents.
	ErrShape = errors.New("dummy: shape must be 2-D with positive extents")
	// ErrLengthMismatch indicates rows, cols and radii of different lengths.
	ErrLengthMismatch = errors.New("dummy: rows, cols and radii must have equal length")
	// ErrNilRand indicates a missing random source.
	ErrNilRand = errors.New("dummy: nil random source")
)
