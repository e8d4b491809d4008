// SPDX-License-Identifier: MIT

package kernel

import (
	"gonum.org/v1/gonum/floats"
)

// Linspace returns count evenly spaced values over [start, end], both ends
// inclusive, with element k = start + k·(end−start)/(count−1).
//
// Behavior highlights:
//   - count < 2 (including zero and negatives) yields the single value [start].
//   - start == end yields count copies of start.
//   - float64 goes through gonum floats.Span; other element types use the same
//     step formula in their own precision.
//
// Complexity: Time O(count), Space O(count).
func Linspace[T Real](start, end T, count int) Vector[T] {
	if count < 2 {
		return Vector[T]{start}
	}
	out := make(Vector[T], count)
	if dst, ok := any(out).(Vector[float64]); ok {
		floats.Span(dst, float64(start), float64(end))
		return out
	}
	step := (end - start) / T(count-1)
	for i := range out {
		out[i] = start + step*T(i)
	}

	return out
}

// Stack builds a two-column matrix whose row k is [a[k], b[k]].
//
// Contracts:
//   - Both operands must be rank 1 (Vector-shaped). A rank mismatch, or two
//     rank-2 operands, is ErrDimensionMismatch.
//   - Lengths may differ: the result has max(len a, len b) rows and the
//     shorter operand's missing trailing entries read as 0.
//
// Complexity: Time O(n), Space O(n).
func Stack[T Real](a, b Array[T]) (*Dense[T], error) {
	if a == nil || b == nil {
		return nil, kernelErrorf("Stack", ErrDimensionMismatch)
	}
	sa, sb := a.Shape(), b.Shape()
	if len(sa) != len(sb) || len(sa) != 1 {
		return nil, kernelErrorf("Stack", ErrDimensionMismatch)
	}
	fa, fb := a.Flat(), b.Flat()
	n := max(len(fa), len(fb))

	out, err := newDenseZeroOK[T](n, 2)
	if err != nil {
		return nil, kernelErrorf("Stack", err)
	}
	for i := 0; i < n; i++ {
		base := i * 2 // row base offset
		if i < len(fa) {
			out.data[base] = fa[i]
		}
		if i < len(fb) {
			out.data[base+1] = fb[i]
		}
	}

	return out, nil
}
