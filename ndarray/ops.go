// SPDX-License-Identifier: MIT

package ndarray

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/lvleye/topology"
)

// PadMode selects how Pad fills cells outside the source array.
type PadMode int

const (
	// PadConstant fills the border with a constant value.
	PadConstant PadMode = iota
	// PadPeriodic wraps indices modulo the extent along every axis.
	PadPeriodic
)

// String returns the mode name.
func (m PadMode) String() string {
	switch m {
	case PadConstant:
		return "constant"
	case PadPeriodic:
		return "periodic"
	default:
		return fmt.Sprintf("PadMode(%d)", int(m))
	}
}

// Convert returns a copy of a with every element converted to D.
// Complexity: O(size).
func Convert[D, S Number](a *Array[S]) *Array[D] {
	buf := make([]D, len(a.data))
	for i, v := range a.data {
		buf[i] = D(v)
	}

	return &Array[D]{shape: cloneInts(a.shape), strides: cloneInts(a.strides), data: buf}
}

// AsFloat64 is Convert[float64].
func AsFloat64[S Number](a *Array[S]) *Array[float64] { return Convert[float64](a) }

// SameShape reports whether two arrays (of any element type) share rank and extents.
func SameShape[T, U Number](a *Array[T], b *Array[U]) bool {
	return topology.Equal(a.shape, b.shape)
}

// IsBinary reports whether every element is 0 or 1.
// Complexity: O(size).
func IsBinary[T Number](a *Array[T]) bool {
	for _, v := range a.data {
		if v != 0 && v != 1 {
			return false
		}
	}

	return true
}

// Max returns the largest element.
func Max[T Number](a *Array[T]) T {
	m := a.data[0]
	for _, v := range a.data[1:] {
		if v > m {
			m = v
		}
	}

	return m
}

// CountNonZero returns the number of non-zero elements.
func CountNonZero[T Number](a *Array[T]) int {
	n := 0
	for _, v := range a.data {
		if v != 0 {
			n++
		}
	}

	return n
}

// Sum returns the sum of all elements of a float64 array.
func Sum(a *Array[float64]) float64 { return floats.Sum(a.data) }

// View3D returns an array sharing a's storage whose shape is promoted to
// rank 3 by prepending unit axes. Rank-3 arrays are returned re-headed but
// unchanged.
func (a *Array[T]) View3D() *Array[T] {
	shape := topology.As3D(a.shape, 1)

	return &Array[T]{shape: shape, strides: stridesOf(shape), data: a.data}
}

// Pad returns a new array extended by pads[i][0] cells before and pads[i][1]
// cells after axis i.
//
// PadPeriodic wraps every out-of-range index modulo the extent (pad widths
// larger than the extent wrap repeatedly). PadConstant writes cval.
//
// Stage 1 (Validate): one non-negative pair per axis, known mode.
// Stage 2 (Execute): for every output cell map each coordinate back.
// Complexity: O(size of result · rank).
func Pad[T Number](a *Array[T], pads [][2]int, mode PadMode, cval T) (*Array[T], error) {
	if a == nil {
		return nil, fmt.Errorf("ndarray.Pad: %w", ErrNilArray)
	}
	if len(pads) != len(a.shape) {
		return nil, fmt.Errorf("ndarray.Pad: %d pad pairs for rank %d: %w", len(pads), len(a.shape), ErrDimensionMismatch)
	}
	if mode != PadConstant && mode != PadPeriodic {
		return nil, fmt.Errorf("ndarray.Pad: %v: %w", mode, ErrPadMode)
	}
	shape := make([]int, len(a.shape))
	for i, p := range pads {
		if p[0] < 0 || p[1] < 0 {
			return nil, fmt.Errorf("ndarray.Pad: pad %v: %w", p, ErrPadMode)
		}
		shape[i] = a.shape[i] + p[0] + p[1]
	}
	out, _ := New[T](shape...)

	rank := len(shape)
	idx := make([]int, rank)
	for flat := range out.data {
		// decode flat into idx (row-major)
		rem := flat
		for i := 0; i < rank; i++ {
			idx[i] = rem / out.strides[i]
			rem -= idx[i] * out.strides[i]
		}
		src, inside := 0, true
		for i := 0; i < rank; i++ {
			c := idx[i] - pads[i][0]
			n := a.shape[i]
			if c < 0 || c >= n {
				if mode == PadConstant {
					inside = false
					break
				}
				c = ((c % n) + n) % n
			}
			src += c * a.strides[i]
		}
		if inside {
			out.data[flat] = a.data[src]
		} else {
			out.data[flat] = cval
		}
	}

	return out, nil
}
