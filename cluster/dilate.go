package cluster

import (
	"fmt"

	"github.com/katalvlaran/lvleye/ndarray"
)

// Dilate grows every label of f into neighbouring background sites.
// Label l is grown iterations[l] times; iterations must hold at least
// max(f)+1 entries (entry 0 is ignored).
//
// Per iteration, sites claimed during that iteration do not grow further
// until the next one. A background site reachable from several labels in
// the same iteration goes to the label met first in row-major scan order.
//
// Options: WithKernel (default kernel.Nearest), WithPeriodic (default true).
//
// Stage 1 (Validate): non-nil, non-negative labels, iteration table, kernel.
// Stage 2 (Execute): max(iterations) sweeps over the grid.
// Complexity: O(max(iterations) · grid size · kernel neighbours).
func Dilate(f *ndarray.Array[int], iterations []int, opts ...Option) (*ndarray.Array[int], error) {
	if f == nil {
		return nil, fmt.Errorf("cluster.Dilate: %w", ErrNilImage)
	}
	if err := checkNonNegative(f); err != nil {
		return nil, fmt.Errorf("cluster.Dilate: %w", err)
	}
	if len(iterations) <= ndarray.Max(f) {
		return nil, fmt.Errorf("cluster.Dilate: %d counts for max label %d: %w", len(iterations), ndarray.Max(f), ErrIterations)
	}
	o := gatherOptions(opts)
	g, err := newLattice(f.Shape(), o.kernel)
	if err != nil {
		return nil, fmt.Errorf("cluster.Dilate: %w", err)
	}

	out := f.Clone()
	cur := out.Data()
	prev := make([]int, len(cur))
	rounds := 0
	for _, n := range iterations {
		rounds = max(rounds, n)
	}
	for iter := 0; iter < rounds; iter++ {
		copy(prev, cur)
		for flat, l := range prev {
			if l == 0 || iter >= iterations[l] {
				continue
			}
			h, i, j := g.coords(flat)
			for _, d := range g.offsets {
				var nb int
				if o.periodic {
					nb = g.wrapped(h, i, j, d)
				} else if nb = g.clamped(h, i, j, d); nb < 0 {
					continue
				}
				if cur[nb] == 0 {
					cur[nb] = l
				}
			}
		}
	}

	return out, nil
}

// DilateUniform grows every label the same number of times.
func DilateUniform(f *ndarray.Array[int], iterations int, opts ...Option) (*ndarray.Array[int], error) {
	if f == nil {
		return nil, fmt.Errorf("cluster.DilateUniform: %w", ErrNilImage)
	}
	n := 1
	for _, v := range f.Data() {
		n = max(n, v+1)
	}
	it := make([]int, n)
	for i := range it {
		it[i] = iterations
	}

	return Dilate(f, it, opts...)
}
