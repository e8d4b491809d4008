// SPDX-License-Identifier: MIT

package drawing

import (
	"github.com/katalvlaran/vptk/profile"
	"github.com/katalvlaran/vptk/reducer"
)

// Half-lengths of the eccentric axis marks.
const (
	axisMark      = 6.0 // horizontal mark through the origin
	eccentricMark = 3.0 // horizontal mark through (0, e)
)

// Flags selects the layers Build emits.
type Flags struct {
	BaseWheelShape bool // LayerProfile
	Separator      bool // LayerSeparator
	Eccentric      bool // LayerEccentric
	Balls          bool // LayerBalls
	OutDiameter    bool // LayerOutline
}

// DefaultFlags enables every layer except the balls.
func DefaultFlags() Flags {
	return Flags{
		BaseWheelShape: true,
		Separator:      true,
		Eccentric:      true,
		Balls:          false,
		OutDiameter:    true,
	}
}

// Build lays out the drawing for the parameter set bp, the generation result res
// and the outer diameter d.
func Build(bp reducer.BasicParams, res profile.Result, d float64, f Flags) Drawing {
	var out Drawing
	origin := Point{}

	if f.BaseWheelShape {
		out.Markers = append(out.Markers, Marker{Layer: LayerProfile, At: origin})
		pts := res.Curve.Points()
		if len(pts) > 0 {
			pl := Polyline{Layer: LayerProfile, Points: make([]Point, len(pts))}
			for k, p := range pts {
				pl.Points[k] = Point{X: p[0], Y: p[1]}
			}
			out.Polylines = append(out.Polylines, pl)
		}
	}

	if f.Separator {
		out.Circles = append(out.Circles,
			Circle{Layer: LayerSeparator, Center: origin, Radius: bp.RsepOut},
			Circle{Layer: LayerSeparator, Center: origin, Radius: bp.RsepIn},
		)
	}

	if f.Eccentric {
		ecc := Point{Y: bp.E}
		out.Markers = append(out.Markers, Marker{Layer: LayerEccentric, At: ecc})
		out.Polylines = append(out.Polylines,
			Polyline{Layer: LayerEccentric, Points: []Point{origin, ecc}},
			Polyline{Layer: LayerEccentric, Points: []Point{{X: -axisMark}, {X: axisMark}}},
			Polyline{Layer: LayerEccentric, Points: []Point{{X: -eccentricMark, Y: bp.E}, {X: eccentricMark, Y: bp.E}}},
		)
		out.Circles = append(out.Circles, Circle{Layer: LayerEccentric, Center: ecc, Radius: bp.Rd})
	}

	if f.Balls {
		centers := res.Shaft.Centers()
		n := max(min(len(centers), bp.BallCount()), 0)
		for _, c := range centers[:n] {
			out.Circles = append(out.Circles, Circle{
				Layer:  LayerBalls,
				Center: Point{X: c[0], Y: c[1]},
				Radius: bp.Rsh,
			})
		}
	}

	if f.OutDiameter {
		out.Circles = append(out.Circles, Circle{Layer: LayerOutline, Center: origin, Radius: d / 2})
	}

	return out
}
