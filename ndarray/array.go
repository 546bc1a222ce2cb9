// SPDX-License-Identifier: MIT

// Package ndarray provides the n-dimensional numeric array used for images,
// masks, label grids and statistic buffers throughout lvleye.
//
// Array is a row-major container storing its elements in one flat slice for
// cache friendliness. The last axis varies fastest. Element types are
// restricted to the built-in integer and floating-point kinds.
package ndarray

import (
	"fmt"
	"strings"
)

// Number is the set of element types an Array may hold.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// arrayErrorf wraps an underlying error with Array method context.
func arrayErrorf(method string, idx []int, err error) error {
	return fmt.Errorf("Array.%s(%v): %w", method, idx, err)
}

// Array is a row-major n-dimensional array.
// shape and strides have one entry per axis; data holds Volume(shape) elements.
type Array[T Number] struct {
	shape   []int // extent per axis
	strides []int // flat step per axis, strides[rank-1] == 1
	data    []T   // flat backing storage
}

// New creates a zero-filled array of the given shape.
// Stage 1 (Validate): at least one axis, every extent > 0.
// Stage 2 (Prepare): compute strides and allocate storage.
// Complexity: O(size) time and memory.
func New[T Number](shape ...int) (*Array[T], error) {
	size, err := checkShape(shape)
	if err != nil {
		return nil, fmt.Errorf("ndarray.New: %w", err)
	}

	return &Array[T]{
		shape:   cloneInts(shape),
		strides: stridesOf(shape),
		data:    make([]T, size),
	}, nil
}

// FromSlice creates an array of the given shape holding a copy of data.
// Returns ErrBadShape when len(data) differs from the shape volume.
// Complexity: O(size).
func FromSlice[T Number](data []T, shape ...int) (*Array[T], error) {
	size, err := checkShape(shape)
	if err != nil {
		return nil, fmt.Errorf("ndarray.FromSlice: %w", err)
	}
	if size != len(data) {
		return nil, fmt.Errorf("ndarray.FromSlice: %d values for shape %v: %w", len(data), shape, ErrBadShape)
	}
	buf := make([]T, size)
	copy(buf, data)

	return &Array[T]{shape: cloneInts(shape), strides: stridesOf(shape), data: buf}, nil
}

// FromRows builds a 2-D array from a non-empty rectangular slice of rows.
// The input is deep-copied.
func FromRows[T Number](rows [][]T) (*Array[T], error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("ndarray.FromRows: %w", ErrBadShape)
	}
	h, w := len(rows), len(rows[0])
	buf := make([]T, 0, h*w)
	for _, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("ndarray.FromRows: %w", ErrNonRectangular)
		}
		buf = append(buf, row...)
	}

	return &Array[T]{shape: []int{h, w}, strides: []int{w, 1}, data: buf}, nil
}

// Full creates an array of the given shape with every element set to v.
func Full[T Number](v T, shape ...int) (*Array[T], error) {
	a, err := New[T](shape...)
	if err != nil {
		return nil, err
	}
	a.Fill(v)

	return a, nil
}

// Shape returns a copy of the extents.
func (a *Array[T]) Shape() []int { return cloneInts(a.shape) }

// Rank returns the number of axes.
func (a *Array[T]) Rank() int { return len(a.shape) }

// Size returns the total number of elements.
func (a *Array[T]) Size() int { return len(a.data) }

// Data returns the flat backing slice. It is shared with the array:
// writes through it are visible to the array.
func (a *Array[T]) Data() []T { return a.data }

// Strides returns a copy of the per-axis flat steps.
func (a *Array[T]) Strides() []int { return cloneInts(a.strides) }

// Index converts a multi-index to a flat offset.
// Stage 1 (Validate): len(idx) == rank and 0 <= idx[i] < shape[i].
// Stage 2 (Execute): dot product with strides.
// Complexity: O(rank).
func (a *Array[T]) Index(idx ...int) (int, error) {
	if len(idx) != len(a.shape) {
		return 0, arrayErrorf("Index", idx, ErrOutOfRange)
	}
	flat := 0
	for i, v := range idx {
		if v < 0 || v >= a.shape[i] {
			return 0, arrayErrorf("Index", idx, ErrOutOfRange)
		}
		flat += v * a.strides[i]
	}

	return flat, nil
}

// Unravel converts a flat offset back to a multi-index. The offset is
// assumed to lie in [0, Size()).
func (a *Array[T]) Unravel(flat int) []int {
	idx := make([]int, len(a.shape))
	for i, s := range a.strides {
		idx[i] = flat / s
		flat -= idx[i] * s
	}

	return idx
}

// At returns the element at the given multi-index.
func (a *Array[T]) At(idx ...int) (T, error) {
	i, err := a.Index(idx...)
	if err != nil {
		var zero T
		return zero, err
	}

	return a.data[i], nil
}

// Set assigns v at the given multi-index.
func (a *Array[T]) Set(v T, idx ...int) error {
	i, err := a.Index(idx...)
	if err != nil {
		return err
	}
	a.data[i] = v

	return nil
}

// Flat returns the element at flat offset i without bounds checks beyond
// the runtime's own.
func (a *Array[T]) Flat(i int) T { return a.data[i] }

// SetFlat assigns v at flat offset i.
func (a *Array[T]) SetFlat(i int, v T) { a.data[i] = v }

// Fill sets every element to v.
// Complexity: O(size).
func (a *Array[T]) Fill(v T) {
	for i := range a.data {
		a.data[i] = v
	}
}

// Clone returns a deep copy.
// Complexity: O(size).
func (a *Array[T]) Clone() *Array[T] {
	buf := make([]T, len(a.data))
	copy(buf, a.data)

	return &Array[T]{shape: cloneInts(a.shape), strides: cloneInts(a.strides), data: buf}
}

// Reshape returns an array with a new shape sharing a's storage.
// Returns ErrBadShape when the volumes differ.
// Complexity: O(rank).
func (a *Array[T]) Reshape(shape ...int) (*Array[T], error) {
	size, err := checkShape(shape)
	if err != nil {
		return nil, fmt.Errorf("Array.Reshape(%v): %w", shape, err)
	}
	if size != len(a.data) {
		return nil, fmt.Errorf("Array.Reshape(%v): volume %d != %d: %w", shape, size, len(a.data), ErrBadShape)
	}

	return &Array[T]{shape: cloneInts(shape), strides: stridesOf(shape), data: a.data}, nil
}

// Rows returns a copy of a 2-D array as nested rows.
// Returns ErrDimensionMismatch for any other rank.
func (a *Array[T]) Rows() ([][]T, error) {
	if len(a.shape) != 2 {
		return nil, fmt.Errorf("Array.Rows: rank %d: %w", len(a.shape), ErrDimensionMismatch)
	}
	h, w := a.shape[0], a.shape[1]
	out := make([][]T, h)
	for i := 0; i < h; i++ {
		out[i] = make([]T, w)
		copy(out[i], a.data[i*w:(i+1)*w])
	}

	return out, nil
}

// String implements fmt.Stringer. The last axis is printed as one bracketed
// row; higher axes are separated by blank lines.
func (a *Array[T]) String() string {
	var sb strings.Builder
	w := a.shape[len(a.shape)-1]
	for i := 0; i < len(a.data); i += w {
		if i > 0 && len(a.shape) > 2 && i%(a.strides[0]) == 0 {
			sb.WriteString("\n")
		}
		sb.WriteString("[")
		for j := 0; j < w; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%v", a.data[i+j])
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}

func checkShape(shape []int) (int, error) {
	if len(shape) == 0 {
		return 0, ErrBadShape
	}
	size := 1
	for _, n := range shape {
		if n <= 0 {
			return 0, ErrBadShape
		}
		size *= n
	}

	return size, nil
}

func stridesOf(shape []int) []int {
	strides := make([]int, len(shape))
	s := 1
	for i := len(shape) - 1; i >= 0; i-- {
		strides[i] = s
		s *= shape[i]
	}

	return strides
}

func cloneInts(s []int) []int {
	out := make([]int, len(s))
	copy(out, s)

	return out
}
