// SPDX-License-Identifier: MIT

// Package vptk is a geometry engine for wave ball reducers: from four design
// values it derives the full dimension set, checks that the balls fit, and
// generates the rigid-wheel tooth profile and ball centres.
//
// 🚀 What is in the box?
//
//	• Numeric kernel: generic element-wise vectors, Linspace and column Stack
//	• Parameter derivation and the validity boundary check
//	• Profile generator: rigid-wheel curve and ball-centre set
//	• Computation task: cancellable, progress-reporting runs, background or inline
//	• Drawing layout, PNG preview and a SQLite run history
//
// ✨ Why vptk?
//
//   - Deterministic: the same inputs always give bit-identical output
//   - Degenerate designs yield NaN data, never panics
//   - Pure Go: no cgo, SQLite included
//
// Packages:
//
//	kernel/   — Vector, Dense, element-wise ops, Linspace, Stack
//	reducer/  — Inputs, BasicParams, CheckValidity
//	profile/  — GenerateCurve, GenerateShaft, Generate
//	task/     — Manager, Task, worker message protocol
//	drawing/  — layer layout of the wheel drawing
//	preview/  — PNG rendering of a drawing
//	history/  — SQLite record of runs
//	cmd/vptk  — command-line front end
//
// Quick start:
//
//	bp := reducer.DefaultInputs().Derive()
//	if err := bp.Validity().Err(); err != nil {
//		log.Println(err)
//	}
//	res, err := profile.Generate(600, bp.ProfileParams())
package vptk
