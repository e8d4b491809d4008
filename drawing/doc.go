// SPDX-License-Identifier: MIT

// Package drawing lays out the 2D wheel drawing of a wave ball reducer from its
// derived parameters and a generated profile.
//
// 🧩 Layers (each toggled by a Flags field):
//
//	LayerProfile    origin point + rigid-wheel profile polyline
//	LayerSeparator  separator circles at Rsep_out and Rsep_in
//	LayerEccentric  eccentric centre (0, e), its axis marks and the disk circle r = rd
//	LayerBalls      one circle r = rsh per ball centre
//	LayerOutline    outer diameter circle r = D/2
//
// ⚙️ Usage:
//
//	bp := reducer.DefaultInputs().Derive()
//	res, _ := profile.Generate(600, bp.ProfileParams())
//	d := drawing.Build(bp, res, 90, drawing.DefaultFlags())
//	box, ok := d.Bounds()
//
// Build is pure: it neither validates the parameters nor writes anything.
// Exporters (the PNG preview, a DXF writer) consume the Drawing.
package drawing
