// SPDX-License-Identifier: MIT

// Package reducer derives the mechanism dimensions of a wave (cycloidal)
// ball reducer from four design inputs and checks them for geometric
// validity.
//
// Inputs:
//
//	dsh  — ball diameter
//	u    — number of waves produced by the wave generator
//	i    — transmission ratio (also the ball count)
//	Rout — outer radius of the rigid-wheel profile troughs
//
// Derivation is total: zero, negative or otherwise unphysical inputs produce
// the corresponding (possibly negative or non-finite) dimensions instead of an
// error. Whether those dimensions describe a buildable reducer is the job of
// CheckValidity, which is advisory; the caller decides whether to go on and
// generate a profile.
//
//	bp := reducer.DeriveBasicParams(6, 1, 17, 38)
//	if v := bp.Validity(); !v.Passes {
//		return v.Err()
//	}
//	res, err := profile.Generate(600, bp.ProfileParams())
package reducer
