// SPDX-License-Identifier: MIT

// Package profile generates the rigid-wheel tooth profile of a wave ball
// reducer and the centres of its rolling balls.
//
// For every angle θ the same formula family is evaluated:
//
//	S(θ)  = sqrt((rsh + rd)² − (e·sin(zg·θ))²)
//	L(θ)  = e·cos(zg·θ) + S(θ)
//	Xi(θ) = atan2(e·zg·sin(zg·θ), S(θ))
//
// The rigid-wheel curve offsets the pitch curve by the rolling ball:
//
//	x(θ) = L(θ)·sin θ + rsh·sin(θ + Xi(θ))
//	y(θ) = L(θ)·cos θ + rsh·cos(θ + Xi(θ))
//
// while the ball centres sit on the pitch curve itself:
//
//	x_sh(φ) = L(φ)·sin φ,  y_sh(φ) = L(φ)·cos φ
//
// θ runs over Linspace(0, 2π, resolution) and φ over Linspace(0, 1, round(zsh)+1)·2π.
//
// Everything here is deterministic and side-effect free. A negative radicand in S
// is not guarded: it produces NaN for that angle, which then propagates through
// L, Xi and the coordinates. Only structural kernel failures are returned as errors.
package profile
