// SPDX-License-Identifier: MIT
// Package ndarray: sentinel error set.
// Every public entry point returns one of these sentinels, possibly wrapped
// with method context; callers match with errors.Is.

package ndarray

import "errors"

var (
	// ErrBadShape is returned when a requested shape is invalid
	// (no axes, or an extent <= 0) or does not match the data length.
	ErrBadShape = errors.New("ndarray: invalid shape")

	// ErrOutOfRange indicates an index outside the array bounds, or an index
	// tuple whose length differs from the rank.
	ErrOutOfRange = errors.New("ndarray: index out of range")

	// ErrDimensionMismatch indicates operands (or pad lists) whose shapes disagree.
	ErrDimensionMismatch = errors.New("ndarray: dimension mismatch")

	// ErrNonRectangular indicates nested rows of differing lengths.
	ErrNonRectangular = errors.New("ndarray: all rows must have the same length")

	// ErrPadMode indicates an unknown padding mode or a negative pad width.
	ErrPadMode = errors.New("ndarray: invalid padding")

	// ErrNilArray indicates that a nil *Array was passed where data is required.
	ErrNilArray = errors.New("ndarray: nil array")
)
