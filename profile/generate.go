// SPDX-License-Identifier: MIT

package profile

import (
	"fmt"
	"math"

	"github.com/katalvlaran/vptk/kernel"
)

// Generate computes the rigid-wheel curve at the given resolution and the
// ball-centre set. It is GenerateCurve followed by GenerateShaft.
//
// Errors: only structural kernel errors (kernel.ErrDimensionMismatch).
func Generate(resolution int, p Params) (Result, error) {
	curve, err := GenerateCurve(resolution, p)
	if err != nil {
		return Result{}, err
	}
	shaft, err := GenerateShaft(p)
	if err != nil {
		return Result{}, err
	}

	return Result{Curve: curve, Shaft: shaft}, nil
}

// GenerateCurve samples the rigid-wheel profile at resolution angles over
// [0, 2π]. A resolution below 2 gives the single angle 0.
//
// Steps:
//  1. θ = Linspace(0, 2π, resolution).
//  2. S, L and sin(zg·θ) via pitch.
//  3. Xi = atan2(e·zg·sin(zg·θ), S).
//  4. x = L·sin θ + rsh·sin(θ+Xi), y = L·cos θ + rsh·cos(θ+Xi).
//  5. XY = Stack(x, y).
//
// Complexity: Time O(resolution), Space O(resolution).
func GenerateCurve(resolution int, p Params) (Curve, error) {
	theta := kernel.Linspace[float64](0, 2*math.Pi, resolution)

	s, l, sinZ, err := pitch(theta, p)
	if err != nil {
		return Curve{}, curveErrorf(err)
	}

	xi, err := kernel.Atan2(kernel.Scale(sinZ, p.E*p.Zg), s)
	if err != nil {
		return Curve{}, curveErrorf(err)
	}

	thetaXi, err := kernel.Add(theta, xi)
	if err != nil {
		return Curve{}, curveErrorf(err)
	}
	x, err := rollingCoord(theta, thetaXi, l, p.Rsh, kernel.Sin[float64])
	if err != nil {
		return Curve{}, curveErrorf(err)
	}
	y, err := rollingCoord(theta, thetaXi, l, p.Rsh, kernel.Cos[float64])
	if err != nil {
		return Curve{}, curveErrorf(err)
	}

	xy, err := kernel.Stack[float64](x, y)
	if err != nil {
		return Curve{}, curveErrorf(err)
	}

	return Curve{Theta: theta, S: s, L: l, Xi: xi, X: x, Y: y, XY: xy}, nil
}

// GenerateShaft computes the ball-centre set on round(zsh)+1 angles over [0, 2π].
//
// Steps:
//  1. φ = Linspace(0, 1, round(zsh)+1)·2π.
//  2. S_sh, L_sh via pitch.
//  3. x_sh = L_sh·sin φ, y_sh = L_sh·cos φ.
func GenerateShaft(p Params) (Shaft, error) {
	angle := kernel.Scale(kernel.Linspace[float64](0, 1, shaftAngleCount(p.Zsh)), 2*math.Pi)

	s, l, _, err := pitch(angle, p)
	if err != nil {
		return Shaft{}, shaftErrorf(err)
	}
	xs, err := kernel.Mul(l, kernel.Sin(angle))
	if err != nil {
		return Shaft{}, shaftErrorf(err)
	}
	ys, err := kernel.Mul(l, kernel.Cos(angle))
	if err != nil {
		return Shaft{}, shaftErrorf(err)
	}

	return Shaft{ShAngle: angle, SSh: s, LSh: l, XSh: xs, YSh: ys}, nil
}

// BallCount is round(zsh) (half away from zero), clamped to 0 for negative or
// non-finite counts and for counts too large to represent as an int.
func BallCount(zsh float64) int {
	n, ok := roundCount(zsh)
	if !ok || n < 0 {
		return 0
	}
	return n
}

// shaftAngleCount is the Linspace count round(zsh)+1. Counts below 2 fall back
// to Linspace's single [0] angle; non-finite zsh, and zsh whose count does not
// fit an int, are treated the same way.
func shaftAngleCount(zsh float64) int {
	n, ok := roundCount(zsh)
	if !ok || n < 0 {
		return 1
	}
	return n + 1
}

// roundCount rounds zsh half away from zero. ok is false when the result is
// not finite or round(zsh)+1 would overflow int.
func roundCount(zsh float64) (n int, ok bool) {
	r := math.Round(zsh)
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return 0, false
	}
	// float64(math.MaxInt) rounds up to 2^63, which is already out of range;
	// below it the largest float64 leaves room for the +1.
	if r >= float64(math.MaxInt) || r <= float64(math.MinInt) {
		return 0, false
	}
	return int(r), true
}

// pitch evaluates the shared formula family over angles:
// S = sqrt((rsh+rd)² − (e·sin(zg·a))²) and L = e·cos(zg·a) + S.
// It also returns sin(zg·a) so the curve can reuse it for Xi.
func pitch(angle kernel.Vector[float64], p Params) (s, l, sinZ kernel.Vector[float64], err error) {
	zgA := kernel.Scale(angle, p.Zg)
	sinZ = kernel.Sin(zgA)

	r := p.Rsh + p.Rd
	s = kernel.Sqrt(kernel.RSubScalar(r*r, kernel.Square(kernel.Scale(sinZ, p.E))))

	l, err = kernel.Add(kernel.Scale(kernel.Cos(zgA), p.E), s)
	if err != nil {
		return nil, nil, nil, err
	}

	return s, l, sinZ, nil
}

// rollingCoord evaluates l·f(θ) + rsh·f(θ+Xi) for f ∈ {sin, cos}.
func rollingCoord(
	theta, thetaXi, l kernel.Vector[float64],
	rsh float64,
	f func(kernel.Vector[float64]) kernel.Vector[float64],
) (kernel.Vector[float64], error) {
	termA, err := kernel.Mul(l, f(theta))
	if err != nil {
		return nil, err
	}
	termB := kernel.Scale(f(thetaXi), rsh)

	return kernel.Add(termA, termB)
}

func curveErrorf(err error) error { return fmt.Errorf("profile: curve: %w", err) }

func shaftErrorf(err error) error { return fmt.Errorf("profile: shaft: %w", err) }
