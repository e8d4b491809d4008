// SPDX-License-Identifier: MIT

package reducer

import (
	"errors"
	"fmt"
	"math"
)

// BallClearance is the factor applied to the ball diameter in the boundary.
const BallClearance = 1.03

// ErrInvalidGeometry is the advisory failure reported by ValidityResult.Err.
var ErrInvalidGeometry = errors.New("reducer: invalid geometry")

// ValidityResult is the outcome of CheckValidity.
type ValidityResult struct {
	Passes   bool    // Rin <= Boundary (false whenever Boundary is NaN)
	Boundary float64 // (1.03·dsh) / sin(π/zg)
}

// CheckValidity evaluates boundary = (1.03·dsh)/sin(π/zg) and passes = rin <= boundary.
//
// Edge behaviour follows IEEE arithmetic with no special cases:
//   - zg = 0: π/0 = +Inf, sin(+Inf) = NaN, so the boundary is NaN and the check fails.
//   - zg = 1: sin(π) is a tiny positive number, so the boundary is huge and any
//     finite rin passes.
//   - zg < 0: the formula is applied as is and may give a negative boundary.
//
// The comparison is non-strict: rin exactly on the boundary passes.
func CheckValidity(rin, zg, dsh float64) ValidityResult {
	boundary := (BallClearance * dsh) / math.Sin(math.Pi/zg)

	return ValidityResult{
		Passes:   rin <= boundary,
		Boundary: boundary,
	}
}

// Err returns nil when the check passed, otherwise ErrInvalidGeometry wrapped
// with the boundary value the inner radius was compared against.
func (v ValidityResult) Err() error {
	if v.Passes {
		return nil
	}
	return fmt.Errorf("%w: inner radius Rin exceeds boundary %g", ErrInvalidGeometry, v.Boundary)
}
