package cluster

import "errors"

var (
	// ErrShape indicates an invalid grid shape (rank outside 1..3 or extent <= 0).
	ErrShape = errors.New("cluster: invalid grid shape")
	// ErrKernel indicates a kernel that is invalid or whose rank differs from the grid.
	ErrKernel = errors.New("cluster: invalid kernel")
	// ErrShapeMismatch indicates an input whose shape differs from the labeller grid.
	ErrShapeMismatch = errors.New("cluster: shape mismatch")
	// ErrOutOfRange indicates a flat index outside the grid.
	ErrOutOfRange = errors.New("cluster: index out of range")
	// ErrNilImage indicates a nil input array.
	ErrNilImage = errors.New("cluster: nil image")
	// ErrNegativeLabel indicates a label grid holding negative values.
	ErrNegativeLabel = errors.New("cluster: labels must be >= 0")
	// ErrIterations indicates a per-label iteration list shorter than max(label)+1.
	ErrIterations = errors.New("cluster: need one iteration count per label")
	// ErrOrder indicates a reorder list that is not a permutation of 0..n-1 fixing 0.
	ErrOrder = errors.New("cluster: order must be a permutation of the labels with order[0] == 0")
)
