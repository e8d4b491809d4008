// SPDX-License-Identifier: MIT

package profile

import (
	"github.com/katalvlaran/vptk/kernel"
)

// Params are the derived scalars the generator consumes.
type Params struct {
	Zg  float64 // rigid-wheel tooth count (may be fractional)
	Rsh float64 // ball radius
	E   float64 // eccentricity
	Rd  float64 // eccentric disk radius
	Zsh float64 // ball count
}

// Curve is the rigid-wheel profile sampled at Resolution angles.
// All vectors share one length and index-correspond to Theta.
type Curve struct {
	Theta kernel.Vector[float64] // evenly spaced over [0, 2π]
	S     kernel.Vector[float64]
	L     kernel.Vector[float64]
	Xi    kernel.Vector[float64]
	X     kernel.Vector[float64]
	Y     kernel.Vector[float64]

	// XY is the column stack of X and Y: Len()×2.
	XY *kernel.Dense[float64]
}

// Len returns the number of sampled angles.
func (c Curve) Len() int { return len(c.Theta) }

// Points returns XY as (x, y) pairs.
func (c Curve) Points() [][2]float64 {
	pts, err := c.XY.Points()
	if err != nil {
		return nil
	}
	return pts
}

// Shaft holds the ball-centre geometry: round(zsh)+1 shaft angles, the last
// one closing the circle at 2π.
type Shaft struct {
	ShAngle kernel.Vector[float64]
	SSh     kernel.Vector[float64]
	LSh     kernel.Vector[float64]
	XSh     kernel.Vector[float64]
	YSh     kernel.Vector[float64]
}

// Len returns the number of shaft angles.
func (s Shaft) Len() int { return len(s.ShAngle) }

// Centers returns the ball centres actually occupied by balls. The final shaft
// angle (2π) duplicates the first and is excluded, so a ball count of n yields
// n centres.
func (s Shaft) Centers() [][2]float64 {
	n := len(s.XSh) - 1
	if n <= 0 {
		return nil
	}
	out := make([][2]float64, n)
	for k := 0; k < n; k++ {
		out[k] = [2]float64{s.XSh[k], s.YSh[k]}
	}

	return out
}

// Result bundles one full generation.
type Result struct {
	Curve Curve
	Shaft Shaft
}
