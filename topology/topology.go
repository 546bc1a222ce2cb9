// Package topology holds the shape arithmetic shared by every lvleye package:
// region-of-interest pad widths, half shapes and promotion of 1..3-D shapes
// to the fixed 3-D layout used by the hot loops.
//
// All functions are pure and allocate their results; inputs are never
// modified.
package topology

import "fmt"

// MaxRank is the highest grid rank supported by lvleye.
const MaxRank = 3

// PadWidth returns, per axis, the number of cells a region of interest of the
// given shape extends before and after its centre cell.
//
// Odd extent n gives ((n-1)/2, (n-1)/2). Even extent n gives (n/2-1, n/2), so
// an even window is one cell heavier on the "after" side.
//
// Complexity: O(rank).
func PadWidth(shape []int) [][2]int {
	pad := make([][2]int, len(shape))
	for i, n := range shape {
		if n%2 == 0 {
			pad[i] = [2]int{n/2 - 1, n / 2}
		} else {
			pad[i] = [2]int{(n - 1) / 2, (n - 1) / 2}
		}
	}

	return pad
}

// HalfShape returns floor(n/2) for every axis, the index of the centre cell
// of a window of that shape.
func HalfShape(shape []int) []int {
	out := make([]int, len(shape))
	for i, n := range shape {
		out[i] = n / 2
	}

	return out
}

// As3D promotes shape to rank 3 by prepending fill. Shapes already of rank 3
// (or higher) are returned as a copy.
// Complexity: O(1).
func As3D(shape []int, fill int) []int {
	if len(shape) >= MaxRank {
		out := make([]int, len(shape))
		copy(out, shape)
		return out
	}
	out := make([]int, MaxRank)
	lead := MaxRank - len(shape)
	for i := 0; i < lead; i++ {
		out[i] = fill
	}
	copy(out[lead:], shape)

	return out
}

// As3DPad promotes a per-axis pad list to rank 3 by prepending (0,0) pairs.
func As3DPad(pad [][2]int) [][2]int {
	out := make([][2]int, MaxRank)
	copy(out[MaxRank-len(pad):], pad)

	return out
}

// Volume returns the product of all extents (1 for an empty shape).
func Volume(shape []int) int {
	v := 1
	for _, n := range shape {
		v *= n
	}

	return v
}

// Equal reports whether two shapes have the same rank and extents.
func Equal(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

// Validate checks that shape has rank 1..MaxRank and strictly positive extents.
// Stage 1 (Validate): rank.
// Stage 2 (Validate): extents.
func Validate(shape []int) error {
	if len(shape) == 0 || len(shape) > MaxRank {
		return fmt.Errorf("topology.Validate(%v): %w", shape, ErrRank)
	}
	for _, n := range shape {
		if n <= 0 {
			return fmt.Errorf("topology.Validate(%v): %w", shape, ErrExtent)
		}
	}

	return nil
}
