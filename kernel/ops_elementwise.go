// SPDX-License-Identifier: MIT
// Package: kernel
//
// Purpose:
//   - Element-wise unary maps, vector⊕vector zips and scalar broadcasts.
//   - One tight loop per op, shared through mapWith / zipWith.
//
// Determinism:
//   - Fixed 0..n-1 loop order; each op allocates exactly one output Vector.
//   - NaN/±Inf propagate as values (IEEE semantics); nothing here returns an
//     error for a non-finite element.
//
// Broadcasting:
//   - Zips accept equal lengths, or a length-1 operand that is repeated
//     against the other (the numpy rule for rank 1). Anything else is
//     ErrDimensionMismatch.

package kernel

// ---------- unary ----------

// Map returns f applied to every element of v.
// Time O(n). Space O(n).
func Map[T Real](v Vector[T], f func(T) T) Vector[T] {
	return mapWith(v, f)
}

// Sin returns sin(v[i]) for each i.
func Sin[T Real](v Vector[T]) Vector[T] { return mapWith(v, funcsFor[T]().sin) }

// Cos returns cos(v[i]) for each i.
func Cos[T Real](v Vector[T]) Vector[T] { return mapWith(v, funcsFor[T]().cos) }

// Sqrt returns sqrt(v[i]) for each i. Negative inputs give NaN.
func Sqrt[T Real](v Vector[T]) Vector[T] { return mapWith(v, funcsFor[T]().sqrt) }

// Square returns v[i]*v[i] for each i.
func Square[T Real](v Vector[T]) Vector[T] {
	return mapWith(v, func(x T) T { return x * x })
}

// ---------- scalar broadcast ----------

// AddScalar returns v[i] + s.
func AddScalar[T Real](v Vector[T], s T) Vector[T] {
	return mapWith(v, func(x T) T { return x + s })
}

// SubScalar returns v[i] - s.
func SubScalar[T Real](v Vector[T], s T) Vector[T] {
	return mapWith(v, func(x T) T { return x - s })
}

// RSubScalar returns s - v[i] (scalar minuend, vector subtrahend).
func RSubScalar[T Real](s T, v Vector[T]) Vector[T] {
	return mapWith(v, func(x T) T { return s - x })
}

// Scale returns v[i] * s.
func Scale[T Real](v Vector[T], s T) Vector[T] {
	return mapWith(v, func(x T) T { return x * s })
}

// DivScalar returns v[i] / s. Division by zero yields ±Inf or NaN per IEEE.
func DivScalar[T Real](v Vector[T], s T) Vector[T] {
	return mapWith(v, func(x T) T { return x / s })
}

// PowScalar returns v[i] ** p.
func PowScalar[T Real](v Vector[T], p T) Vector[T] {
	pow := funcsFor[T]().pow
	return mapWith(v, func(x T) T { return pow(x, p) })
}

// ---------- binary (vector ⊕ vector) ----------

// Add returns a[i] + b[i].
//
// Errors: ErrDimensionMismatch when lengths are incompatible.
func Add[T Real](a, b Vector[T]) (Vector[T], error) {
	return zipWith("Add", a, b, func(x, y T) T { return x + y })
}

// Sub returns a[i] - b[i].
func Sub[T Real](a, b Vector[T]) (Vector[T], error) {
	return zipWith("Sub", a, b, func(x, y T) T { return x - y })
}

// Mul returns the element-wise (Hadamard) product a[i] * b[i].
func Mul[T Real](a, b Vector[T]) (Vector[T], error) {
	return zipWith("Mul", a, b, func(x, y T) T { return x * y })
}

// Div returns a[i] / b[i].
func Div[T Real](a, b Vector[T]) (Vector[T], error) {
	return zipWith("Div", a, b, func(x, y T) T { return x / y })
}

// Atan2 returns atan2(y[i], x[i]) using the quadrant-aware definition.
func Atan2[T Real](y, x Vector[T]) (Vector[T], error) {
	return zipWith("Atan2", y, x, funcsFor[T]().atan2)
}

// ---------- loops ----------

// mapWith is the single unary loop every map op delegates to.
// A nil input maps to nil so absent data stays absent.
func mapWith[T Real](v Vector[T], f func(T) T) Vector[T] {
	if v == nil {
		return nil
	}
	out := make(Vector[T], len(v))
	for i, x := range v {
		out[i] = f(x)
	}

	return out
}

// zipWith is the single binary loop every zip op delegates to.
func zipWith[T Real](op string, a, b Vector[T], f func(x, y T) T) (Vector[T], error) {
	n, err := broadcastLen(len(a), len(b))
	if err != nil {
		return nil, kernelErrorf(op, err)
	}
	out := make(Vector[T], n)
	// Stride 0 repeats a length-1 operand.
	sa, sb := stride(len(a)), stride(len(b))
	for i := 0; i < n; i++ {
		out[i] = f(a[i*sa], b[i*sb])
	}

	return out, nil
}

// broadcastLen resolves the output length of a rank-1 zip.
func broadcastLen(la, lb int) (int, error) {
	switch {
	case la == lb:
		return la, nil
	case la == 1:
		return lb, nil
	case lb == 1:
		return la, nil
	default:
		return 0, ErrDimensionMismatch
	}
}

func stride(n int) int {
	if n == 1 {
		return 0
	}
	return 1
}
