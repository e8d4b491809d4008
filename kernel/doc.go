// SPDX-License-Identifier: MIT

// Package kernel is the numeric core of vptk: small, pure, element-wise
// array primitives that the profile generator is written in.
//
// 🚀 What is inside?
//
//	A stateless, generic function library over float32/float64:
//		• Vector[T] — rank-1 sequence (angles, radii, coordinates)
//		• Dense[T]  — rank-2 row-major storage (stacked x/y point columns)
//		• Unary maps: Sin, Cos, Sqrt, Square, Map
//		• Binary zips: Add, Sub, Mul, Div, Atan2 (with length-1 broadcast)
//		• Scalar broadcast: AddScalar, SubScalar, RSubScalar, Scale, DivScalar, PowScalar
//		• Generators: Linspace, Stack
//
// ✨ Guarantees:
//   - Deterministic: fixed 0..n-1 loop order, no hidden state, no goroutines.
//   - Non-finite values are data: NaN/±Inf flow through every op untouched
//     (a negative radicand in Sqrt yields NaN, never an error).
//   - Only structural problems are errors: ErrDimensionMismatch when operand
//     shapes cannot be combined, ErrOutOfRange / ErrInvalidDimensions on Dense.
//
// ⚙️ Usage:
//
//	theta := kernel.Linspace(0, 2*math.Pi, 600)
//	s := kernel.Sqrt(kernel.RSubScalar(r*r, kernel.Square(kernel.Scale(kernel.Sin(theta), e))))
//	xy, err := kernel.Stack[float64](x, y)
//
// float32 operands are evaluated with github.com/chewxy/math32, float64 with the
// standard math package; Linspace over float64 delegates to gonum's floats.Span.
package kernel
