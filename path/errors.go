package path

import "errors"

var (
	// ErrUnsupportedMode indicates an unknown path Mode.
	ErrUnsupportedMode = errors.New("path: unsupported mode")
	// ErrRankMismatch indicates endpoints of differing rank.
	ErrRankMismatch = errors.New("path: endpoints must have the same rank")
	// ErrRank indicates endpoints whose rank is outside 1..3.
	ErrRank = errors.New("path: rank must be between 1 and 3")
)
