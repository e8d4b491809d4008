// SPDX-License-Identifier: MIT

package drawing

import (
	"fmt"
	"math"
)

// Layer tags every primitive with the part of the drawing it belongs to.
type Layer int

const (
	LayerProfile Layer = iota
	LayerSeparator
	LayerEccentric
	LayerBalls
	LayerOutline
)

// Layers lists every layer in drawing order.
var Layers = [...]Layer{LayerProfile, LayerSeparator, LayerEccentric, LayerBalls, LayerOutline}

func (l Layer) String() string {
	switch l {
	case LayerProfile:
		return "profile"
	case LayerSeparator:
		return "separator"
	case LayerEccentric:
		return "eccentric"
	case LayerBalls:
		return "balls"
	case LayerOutline:
		return "outline"
	default:
		return fmt.Sprintf("layer(%d)", int(l))
	}
}

// Point is a 2D coordinate in millimetres.
type Point struct {
	X, Y float64
}

// Finite reports whether both coordinates are finite.
func (p Point) Finite() bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) && !math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}

// Marker is a single point entity.
type Marker struct {
	Layer Layer
	At    Point
}

// Polyline is an open polyline.
type Polyline struct {
	Layer  Layer
	Points []Point
}

// Circle is a full circle.
type Circle struct {
	Layer  Layer
	Center Point
	Radius float64
}

// Rect is an axis-aligned box.
type Rect struct {
	Min, Max Point
}

// Width returns Max.X − Min.X.
func (r Rect) Width() float64 { return r.Max.X - r.Min.X }

// Height returns Max.Y − Min.Y.
func (r Rect) Height() float64 { return r.Max.Y - r.Min.Y }

// Drawing is the full set of primitives, grouped by kind and kept in the order
// Build emitted them.
type Drawing struct {
	Markers   []Marker
	Polylines []Polyline
	Circles   []Circle
}

// Empty reports whether the drawing has no primitives at all.
func (d Drawing) Empty() bool {
	return len(d.Markers) == 0 && len(d.Polylines) == 0 && len(d.Circles) == 0
}

// Only returns the primitives of layer l.
func (d Drawing) Only(l Layer) Drawing {
	var out Drawing
	for _, m := range d.Markers {
		if m.Layer == l {
			out.Markers = append(out.Markers, m)
		}
	}
	for _, pl := range d.Polylines {
		if pl.Layer == l {
			out.Polylines = append(out.Polylines, pl)
		}
	}
	for _, c := range d.Circles {
		if c.Layer == l {
			out.Circles = append(out.Circles, c)
		}
	}

	return out
}

// Bounds returns the extent of every finite primitive. Non-finite points and
// circles with a non-finite centre or radius are skipped. ok is false when
// nothing finite remains.
func (d Drawing) Bounds() (r Rect, ok bool) {
	grow := func(p Point) {
		if !ok {
			r = Rect{Min: p, Max: p}
			ok = true
			return
		}
		r.Min.X = math.Min(r.Min.X, p.X)
		r.Min.Y = math.Min(r.Min.Y, p.Y)
		r.Max.X = math.Max(r.Max.X, p.X)
		r.Max.Y = math.Max(r.Max.Y, p.Y)
	}

	for _, m := range d.Markers {
		if m.At.Finite() {
			grow(m.At)
		}
	}
	for _, pl := range d.Polylines {
		for _, p := range pl.Points {
			if p.Finite() {
				grow(p)
			}
		}
	}
	for _, c := range d.Circles {
		rad := math.Abs(c.Radius)
		if !c.Center.Finite() || math.IsNaN(rad) || math.IsInf(rad, 0) {
			continue
		}
		grow(Point{X: c.Center.X - rad, Y: c.Center.Y - rad})
		grow(Point{X: c.Center.X + rad, Y: c.Center.Y + rad})
	}

	return r, ok
}
