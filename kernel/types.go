// SPDX-License-Identifier: MIT

package kernel

import (
	"math"

	math32 "github.com/chewxy/math32"
	"golang.org/x/exp/constraints"
)

// Real is the element constraint of every kernel container.
// Both float32 and float64 (and named types over them) satisfy it.
type Real interface {
	constraints.Float
}

// Array is anything with a shape and a flat row-major view of its elements.
// Vector reports rank 1, Dense reports rank 2.
type Array[T Real] interface {
	Shape() []int
	Flat() []T
}

// Vector is a rank-1 sequence of reals. Operations never mutate their operands;
// each returns a freshly allocated Vector.
type Vector[T Real] []T

// Compile-time conformance.
var (
	_ Array[float64] = Vector[float64](nil)
	_ Array[float32] = Vector[float32](nil)
)

// Shape returns [len(v)].
func (v Vector[T]) Shape() []int { return []int{len(v)} }

// Flat returns v itself (rank-1 storage is already flat).
func (v Vector[T]) Flat() []T { return v }

// Len returns the element count.
func (v Vector[T]) Len() int { return len(v) }

// Clone returns an independent copy of v.
func (v Vector[T]) Clone() Vector[T] {
	if v == nil {
		return nil
	}
	out := make(Vector[T], len(v))
	copy(out, v)
	return out
}

// funcs bundles the scalar elementary functions for one element type.
// The float32 table runs in single precision via math32 so results do not
// silently widen; every other Real uses the float64 math package.
type funcs[T Real] struct {
	sin   func(T) T
	cos   func(T) T
	sqrt  func(T) T
	atan2 func(y, x T) T
	pow   func(x, p T) T
}

// funcsFor selects the elementary function table for T.
func funcsFor[T Real]() funcs[T] {
	var zero T
	if _, ok := any(zero).(float32); ok {
		return funcs[T]{
			sin:   func(x T) T { return T(math32.Sin(float32(x))) },
			cos:   func(x T) T { return T(math32.Cos(float32(x))) },
			sqrt:  func(x T) T { return T(math32.Sqrt(float32(x))) },
			atan2: func(y, x T) T { return T(math32.Atan2(float32(y), float32(x))) },
			pow:   func(x, p T) T { return T(math32.Pow(float32(x), float32(p))) },
		}
	}

	return funcs[T]{
		sin:   func(x T) T { return T(math.Sin(float64(x))) },
		cos:   func(x T) T { return T(math.Cos(float64(x))) },
		sqrt:  func(x T) T { return T(math.Sqrt(float64(x))) },
		atan2: func(y, x T) T { return T(math.Atan2(float64(y), float64(x))) },
		pow:   func(x, p T) T { return T(math.Pow(float64(x), float64(p))) },
	}
}
