package kernel

import "errors"

var (
	// ErrRank indicates a kernel rank outside 1..3.
	ErrRank = errors.New("kernel: rank must be between 1 and 3")
	// ErrEvenExtent indicates a kernel with an even extent along some axis.
	ErrEvenExtent = errors.New("kernel: every extent must be odd")
	// ErrNotBinary indicates a kernel holding values other than 0 and 1.
	ErrNotBinary = errors.New("kernel: values must be 0 or 1")
	// ErrCenter indicates a kernel whose centre cell is not set.
	ErrCenter = errors.New("kernel: centre must be 1")
	// ErrNilKernel indicates a nil kernel.
	ErrNilKernel = errors.New("kernel: nil kernel")
)
