// SPDX-License-Identifier: MIT

package reducer

import (
	"math"

	"github.com/katalvlaran/vptk/profile"
)

// Derivation coefficients.
const (
	// EccentricityRatio is e/dsh.
	EccentricityRatio = 0.2

	// SeparatorRatio is hc/e.
	SeparatorRatio = 2.2
)

// Defaults mirror the stock design the tool ships with (1:17 reducer on 6 mm balls).
const (
	DefaultDsh  = 6.0
	DefaultU    = 1.0
	DefaultI    = 17.0
	DefaultRout = 38.0
)

// Inputs are the four user-facing design values.
type Inputs struct {
	Dsh  float64 // ball diameter
	U    float64 // wave count
	I    float64 // transmission ratio
	Rout float64 // outer trough radius of the rigid wheel
}

// DefaultInputs returns the stock design.
func DefaultInputs() Inputs {
	return Inputs{Dsh: DefaultDsh, U: DefaultU, I: DefaultI, Rout: DefaultRout}
}

// Derive is shorthand for DeriveBasicParams(in.Dsh, in.U, in.I, in.Rout).
func (in Inputs) Derive() BasicParams {
	return DeriveBasicParams(in.Dsh, in.U, in.I, in.Rout)
}

// BasicParams is the derived dimension set. Every field is a pure function of
// (Dsh, U, I, Rout); the struct carries no other state and does not validate
// itself.
type BasicParams struct {
	Dsh  float64 // ball diameter (input)
	U    float64 // wave count (input)
	E    float64 // eccentricity: 0.2·dsh
	I    float64 // transmission ratio (input)
	Zg   float64 // rigid-wheel tooth count: (i+1)·u, may be fractional or negative
	Zsh  float64 // ball count: i
	Rout float64 // outer trough radius (input)
	Rin  float64 // inner trough radius: Rout − 2e
	Rsh  float64 // ball radius: dsh/2
	Rd   float64 // eccentric disk radius: Rin + e − dsh
	Hc   float64 // separator thickness: 2.2·e

	RsepM   float64 // separator pitch radius: rd + rsh
	RsepOut float64 // separator outer radius: Rsep_m + hc/2
	RsepIn  float64 // separator inner radius: Rsep_m − hc/2
}

// DeriveBasicParams computes the full dimension set. It never fails.
func DeriveBasicParams(dsh, u, i, rout float64) BasicParams {
	e := EccentricityRatio * dsh
	rin := rout - 2*e
	rsh := dsh / 2
	rd := rin + e - dsh
	hc := SeparatorRatio * e
	rsepM := rd + rsh

	return BasicParams{
		Dsh:     dsh,
		U:       u,
		E:       e,
		I:       i,
		Zg:      (i + 1) * u,
		Zsh:     i,
		Rout:    rout,
		Rin:     rin,
		Rsh:     rsh,
		Rd:      rd,
		Hc:      hc,
		RsepM:   rsepM,
		RsepOut: rsepM + hc/2,
		RsepIn:  rsepM - hc/2,
	}
}

// Inputs recovers the design inputs the parameters were derived from.
func (bp BasicParams) Inputs() Inputs {
	return Inputs{Dsh: bp.Dsh, U: bp.U, I: bp.I, Rout: bp.Rout}
}

// Validity runs CheckValidity on this parameter set.
func (bp BasicParams) Validity() ValidityResult {
	return CheckValidity(bp.Rin, bp.Zg, bp.Dsh)
}

// ProfileParams projects the values the profile generator consumes.
func (bp BasicParams) ProfileParams() profile.Params {
	return profile.Params{Zg: bp.Zg, Rsh: bp.Rsh, E: bp.E, Rd: bp.Rd, Zsh: bp.Zsh}
}

// BallCount is the number of balls actually placed: round(zsh), or 0 when
// zsh is negative or non-finite.
func (bp BasicParams) BallCount() int {
	return profile.BallCount(bp.Zsh)
}

// Finite reports whether every dimension is a finite number.
func (bp BasicParams) Finite() bool {
	for _, v := range [...]float64{
		bp.Dsh, bp.U, bp.E, bp.I, bp.Zg, bp.Zsh, bp.Rout, bp.Rin,
		bp.Rsh, bp.Rd, bp.Hc, bp.RsepM, bp.RsepOut, bp.RsepIn,
	} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
