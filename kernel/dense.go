// SPDX-License-Identifier: MIT

// Package kernel - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Hold rank-2 results (the stacked x/y columns of a profile curve) in one
//     flat buffer addressed as i*cols + j.
//   - Keep the public surface panic-free: At/Set return wrapped sentinels.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Row: O(c); Points: O(r).

package kernel

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt  = "At"  // method tag used in error wrappers
	ctxSet = "Set" // method tag used in error wrappers
	ctxRow = "Row" // method tag used in error wrappers
)

// ---------- formatting literals ----------

const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// Dense is a concrete row-major matrix of reals.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
type Dense[T Real] struct {
	r, c int // row and column counts (zero rows allowed for internal constructors)
	data []T // contiguous row-major storage (len == r*c)
}

// Compile-time conformance.
var (
	_ Array[float64] = (*Dense[float64])(nil)
	_ fmt.Stringer   = (*Dense[float64])(nil)
)

// NewDense creates an r×c zero matrix.
//
// Errors:
//   - ErrInvalidDimensions when rows<=0 or cols<=0.
//
// Complexity: Time O(r*c), Space O(r*c).
func NewDense[T Real](rows, cols int) (*Dense[T], error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense[T]{r: rows, c: cols, data: make([]T, rows*cols)}, nil
}

// newDenseZeroOK is the internal factory that admits 0×N shapes, used by
// Stack when both operands are empty.
func newDenseZeroOK[T Real](rows, cols int) (*Dense[T], error) {
	if rows < 0 || cols < 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense[T]{r: rows, c: cols, data: make([]T, rows*cols)}, nil
}

// Rows returns the row count. A nil receiver has zero rows.
func (m *Dense[T]) Rows() int {
	if m == nil {
		return 0
	}
	return m.r
}

// Cols returns the column count. A nil receiver has zero columns.
func (m *Dense[T]) Cols() int {
	if m == nil {
		return 0
	}
	return m.c
}

// Shape returns [rows, cols]; nil for a nil receiver so that rank checks
// treat a nil *Dense as shapeless rather than panicking.
func (m *Dense[T]) Shape() []int {
	if m == nil {
		return nil
	}
	return []int{m.r, m.c}
}

// Flat exposes the row-major buffer. Callers must treat it as read-only.
func (m *Dense[T]) Flat() []T {
	if m == nil {
		return nil
	}
	return m.data
}

// indexOf computes the row-major offset or returns ErrOutOfRange.
func (m *Dense[T]) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.Rows() {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	return row*m.c + col, nil
}

// At returns the value at (row, col).
//
// Errors:
//   - ErrOutOfRange (wrapped with coordinates) on invalid indices.
func (m *Dense[T]) At(row, col int) (T, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col). Non-finite values are accepted: a degenerate
// geometry is still a valid result.
//
// Errors:
//   - ErrOutOfRange (wrapped with coordinates) on invalid indices.
func (m *Dense[T]) Set(row, col int, v T) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	m.data[off] = v

	return nil
}

// Row returns a copy of row i.
func (m *Dense[T]) Row(i int) ([]T, error) {
	if i < 0 || i >= m.Rows() {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}
	out := make([]T, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// Points views a two-column matrix as a list of (x, y) pairs.
//
// Errors:
//   - ErrDimensionMismatch when Cols() != 2.
func (m *Dense[T]) Points() ([][2]T, error) {
	if m.Cols() != 2 {
		return nil, kernelErrorf("Dense.Points", ErrDimensionMismatch)
	}
	out := make([][2]T, m.r)
	for i := 0; i < m.r; i++ {
		base := i * 2 // row base offset
		out[i] = [2]T{m.data[base], m.data[base+1]}
	}

	return out, nil
}

// String renders rows as "[a, b]\n" lines. Intended for debugging output.
func (m *Dense[T]) String() string {
	if m == nil {
		return "<nil>"
	}
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		sb.WriteString(_fmtRowOpen)
		for j := 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			fmt.Fprintf(&sb, "%g", m.data[i*m.c+j])
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}
