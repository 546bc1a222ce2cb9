// Package kernel builds and inspects the structuring elements that define
// adjacency for cluster labelling and dilation.
//
// A kernel is a binary ndarray.Array[int] with an odd extent along every axis
// and a set centre cell. Its non-zero off-centre cells are the neighbour
// offsets of a site.
package kernel

import (
	"fmt"

	"github.com/katalvlaran/lvleye/ndarray"
)

// Nearest returns the face-neighbour kernel of rank ndim: a 3^ndim array with
// the centre and the two face neighbours along each axis set
// (4-connectivity in 2-D, 6-connectivity in 3-D).
// Complexity: O(3^ndim).
func Nearest(ndim int) (*ndarray.Array[int], error) {
	k, err := blank(ndim)
	if err != nil {
		return nil, err
	}
	centre := []int{1, 1, 1}[:ndim]
	for axis := 0; axis < ndim; axis++ {
		for _, c := range []int{0, 1, 2} {
			idx := append([]int(nil), centre...)
			idx[axis] = c
			_ = k.Set(1, idx...)
		}
	}

	return k, nil
}

// Full returns the all-ones kernel of rank ndim
// (8-connectivity in 2-D, 26-connectivity in 3-D).
func Full(ndim int) (*ndarray.Array[int], error) {
	k, err := blank(ndim)
	if err != nil {
		return nil, err
	}
	k.Fill(1)

	return k, nil
}

func blank(ndim int) (*ndarray.Array[int], error) {
	if ndim < 1 || ndim > 3 {
		return nil, fmt.Errorf("kernel: ndim %d: %w", ndim, ErrRank)
	}
	shape := make([]int, ndim)
	for i := range shape {
		shape[i] = 3
	}

	return ndarray.New[int](shape...)
}

// Validate checks that k is usable as a structuring element.
// Stage 1 (Validate): non-nil, rank 1..3, every extent odd.
// Stage 2 (Validate): binary values, centre set.
func Validate(k *ndarray.Array[int]) error {
	if k == nil {
		return fmt.Errorf("kernel.Validate: %w", ErrNilKernel)
	}
	if k.Rank() < 1 || k.Rank() > 3 {
		return fmt.Errorf("kernel.Validate: rank %d: %w", k.Rank(), ErrRank)
	}
	shape := k.Shape()
	for _, n := range shape {
		if n%2 == 0 {
			return fmt.Errorf("kernel.Validate: shape %v: %w", shape, ErrEvenExtent)
		}
	}
	if !ndarray.IsBinary(k) {
		return fmt.Errorf("kernel.Validate: %w", ErrNotBinary)
	}
	centre := make([]int, len(shape))
	for i, n := range shape {
		centre[i] = n / 2
	}
	if v, _ := k.At(centre...); v != 1 {
		return fmt.Errorf("kernel.Validate: %w", ErrCenter)
	}

	return nil
}

// Offsets returns the relative coordinates of every set cell except the
// centre, in row-major kernel order. The kernel must be valid.
// Complexity: O(size of k).
func Offsets(k *ndarray.Array[int]) ([][]int, error) {
	if err := Validate(k); err != nil {
		return nil, err
	}
	shape := k.Shape()
	var out [][]int
	for flat, v := range k.Data() {
		if v == 0 {
			continue
		}
		idx := k.Unravel(flat)
		centre := true
		for i := range idx {
			idx[i] -= shape[i] / 2
			if idx[i] != 0 {
				centre = false
			}
		}
		if !centre {
			out = append(out, idx)
		}
	}

	return out, nil
}
