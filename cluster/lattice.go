package cluster

import (
	"fmt"

	"github.com/katalvlaran/lvleye/kernel"
	"github.com/katalvlaran/lvleye/ndarray"
	"github.com/katalvlaran/lvleye/topology"
)

// lattice is a grid promoted to rank 3 (leading unit axes) together with the
// kernel neighbour offsets promoted the same way.
type lattice struct {
	shape   []int // original shape
	dims    [3]int
	offsets [][3]int
}

// newLattice validates shape and kernel and precomputes neighbour offsets.
// A nil kernel selects kernel.Nearest(len(shape)).
// Stage 1 (Validate): shape rank/extents.
// Stage 2 (Validate): kernel rank equals grid rank, kernel.Validate.
// Stage 3 (Prepare): promote offsets to 3-D.
func newLattice(shape []int, k *ndarray.Array[int]) (lattice, error) {
	if err := topology.Validate(shape); err != nil {
		return lattice{}, fmt.Errorf("%w: %w", ErrShape, err)
	}
	if k == nil {
		k, _ = kernel.Nearest(len(shape))
	}
	if k.Rank() != len(shape) {
		return lattice{}, fmt.Errorf("%w: kernel rank %d for grid rank %d", ErrKernel, k.Rank(), len(shape))
	}
	off, err := kernel.Offsets(k)
	if err != nil {
		return lattice{}, fmt.Errorf("%w: %w", ErrKernel, err)
	}
	g := lattice{shape: append([]int(nil), shape...)}
	copy(g.dims[:], topology.As3D(shape, 1))
	lead := topology.MaxRank - len(shape)
	g.offsets = make([][3]int, len(off))
	for n, d := range off {
		copy(g.offsets[n][lead:], d)
	}

	return g, nil
}

// size returns the number of sites.
func (g *lattice) size() int { return g.dims[0] * g.dims[1] * g.dims[2] }

// coords converts a flat index to (h,i,j).
func (g *lattice) coords(flat int) (h, i, j int) {
	j = flat % g.dims[2]
	flat /= g.dims[2]

	return flat / g.dims[1], flat % g.dims[1], j
}

// wrapped returns the flat index of (h,i,j)+d on the torus.
func (g *lattice) wrapped(h, i, j int, d [3]int) int {
	h = wrap(h+d[0], g.dims[0])
	i = wrap(i+d[1], g.dims[1])
	j = wrap(j+d[2], g.dims[2])

	return (h*g.dims[1]+i)*g.dims[2] + j
}

// clamped returns the flat index of (h,i,j)+d, or -1 outside the grid.
func (g *lattice) clamped(h, i, j int, d [3]int) int {
	h, i, j = h+d[0], i+d[1], j+d[2]
	if h < 0 || h >= g.dims[0] || i < 0 || i >= g.dims[1] || j < 0 || j >= g.dims[2] {
		return -1
	}

	return (h*g.dims[1]+i)*g.dims[2] + j
}

func wrap(x, n int) int {
	x %= n
	if x < 0 {
		x += n
	}

	return x
}
