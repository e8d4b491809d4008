// SPDX-License-Identifier: MIT

// Package preview rasterises a drawing.Drawing to PNG with gogpu/gg.
//
// The drawing is fitted into a square canvas of Options.Size pixels with
// Options.Margin pixels of padding, preserving aspect ratio. The y axis is
// flipped so that +y points up as in the CAD output. Each layer gets its own
// colour; polylines break at non-finite points instead of failing.
//
//	d := drawing.Build(bp, res, 90, drawing.DefaultFlags())
//	var buf bytes.Buffer
//	err := preview.Render(&buf, d, preview.DefaultOptions())
package preview
