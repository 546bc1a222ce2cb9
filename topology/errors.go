package topology

import "errors"

var (
	// ErrRank indicates a shape whose rank is outside 1..MaxRank.
	ErrRank = errors.New("topology: rank must be between 1 and 3")
	// ErrExtent indicates a non-positive extent along some axis.
	ErrExtent = errors.New("topology: every extent must be > 0")
)
