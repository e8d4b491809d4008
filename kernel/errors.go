// SPDX-License-Identifier: MIT
// Package kernel: sentinel error set.
// All structural failures in this package are reported through these
// sentinels; callers match them with errors.Is. Numeric degeneracy
// (NaN/±Inf) is never an error here.

package kernel

import (
	"errors"
	"fmt"
)

var (
	// ErrDimensionMismatch indicates operands whose shapes cannot be combined:
	// zipping vectors of different lengths (neither of length 1), or stacking
	// operands that are not both rank 1.
	ErrDimensionMismatch = errors.New("kernel: dimension mismatch")

	// ErrOutOfRange indicates that a Dense index (row or column) is outside bounds.
	ErrOutOfRange = errors.New("kernel: index out of range")

	// ErrInvalidDimensions indicates that requested Dense dimensions are non-positive.
	ErrInvalidDimensions = errors.New("kernel: dimensions must be > 0")
)

// kernelErrorf attaches an operation tag to a sentinel, preserving it for errors.Is.
func kernelErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// denseErrorf wraps an error with Dense method context and coordinates.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}
