// SPDX-License-Identifier: MIT

package preview

import (
	"fmt"
	"io"
	"math"

	"github.com/gogpu/gg"

	"github.com/katalvlaran/vptk/drawing"
)

// Options configures Render.
//   - Size:      canvas edge in pixels (square).
//   - Margin:    padding in pixels on every side.
//   - LineWidth: stroke width in pixels.
type Options struct {
	Size      int
	Margin    float64
	LineWidth float64
}

// DefaultOptions returns an 800×800 canvas, 20 px margin, 1.5 px strokes.
func DefaultOptions() Options {
	return Options{Size: 800, Margin: 20, LineWidth: 1.5}
}

func (o Options) validate() error {
	if o.Size <= 0 {
		return fmt.Errorf("%w: size %d", ErrInvalidOptions, o.Size)
	}
	if o.Margin < 0 || 2*o.Margin >= float64(o.Size) {
		return fmt.Errorf("%w: margin %g on size %d", ErrInvalidOptions, o.Margin, o.Size)
	}
	if o.LineWidth <= 0 {
		return fmt.Errorf("%w: line width %g", ErrInvalidOptions, o.LineWidth)
	}
	return nil
}

// palette maps every layer to its stroke colour.
var palette = map[drawing.Layer]gg.RGBA{
	drawing.LayerProfile:   gg.Black,
	drawing.LayerSeparator: gg.RGB(0.12, 0.38, 0.80),
	drawing.LayerEccentric: gg.RGB(0.80, 0.15, 0.15),
	drawing.LayerBalls:     gg.RGB(0.10, 0.55, 0.25),
	drawing.LayerOutline:   gg.RGB(0.45, 0.45, 0.45),
}

// markerRadius is the on-canvas radius of point entities, in pixels.
const markerRadius = 2.5

// Render draws d onto a white canvas and writes it to w as PNG.
//
// Errors:
//   - ErrInvalidOptions for a bad canvas configuration.
//   - ErrEmptyDrawing when d has no finite primitive.
//   - stroke and encoder errors from gg / image/png, wrapped.
func Render(w io.Writer, d drawing.Drawing, opts Options) error {
	if err := opts.validate(); err != nil {
		return err
	}
	box, ok := d.Bounds()
	if !ok {
		return ErrEmptyDrawing
	}

	dc := gg.NewContext(opts.Size, opts.Size)
	defer dc.Close()
	dc.ClearWithColor(gg.White)
	dc.SetLineWidth(opts.LineWidth)

	v := newViewport(box, opts)
	for _, layer := range drawing.Layers {
		if err := renderLayer(dc, v, d.Only(layer), palette[layer]); err != nil {
			return fmt.Errorf("preview: layer %s: %w", layer, err)
		}
	}

	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("preview: encode: %w", err)
	}
	return nil
}

func renderLayer(dc *gg.Context, v viewport, d drawing.Drawing, col gg.RGBA) error {
	if d.Empty() {
		return nil
	}
	dc.SetRGBA(col.R, col.G, col.B, col.A)

	for _, pl := range d.Polylines {
		pen := false
		for _, p := range pl.Points {
			if !p.Finite() {
				pen = false
				continue
			}
			x, y := v.project(p)
			if pen {
				dc.LineTo(x, y)
			} else {
				dc.MoveTo(x, y)
				pen = true
			}
		}
	}
	for _, c := range d.Circles {
		r := math.Abs(c.Radius) * v.scale
		if !c.Center.Finite() || math.IsNaN(r) || math.IsInf(r, 0) {
			continue
		}
		x, y := v.project(c.Center)
		dc.DrawCircle(x, y, r)
	}
	if len(d.Polylines) > 0 || len(d.Circles) > 0 {
		if err := dc.Stroke(); err != nil {
			return err
		}
	}

	for _, m := range d.Markers {
		if !m.At.Finite() {
			continue
		}
		x, y := v.project(m.At)
		dc.DrawPoint(x, y, markerRadius)
	}
	if len(d.Markers) > 0 {
		return dc.Fill()
	}
	return nil
}

// viewport maps drawing millimetres to canvas pixels.
type viewport struct {
	scale      float64
	minX, minY float64
	offX, offY float64
	size       float64
}

func newViewport(box drawing.Rect, opts Options) viewport {
	size := float64(opts.Size)
	avail := size - 2*opts.Margin

	extent := math.Max(box.Width(), box.Height())
	scale := 1.0
	if extent > 0 {
		scale = avail / extent
	}

	return viewport{
		scale: scale,
		minX:  box.Min.X,
		minY:  box.Min.Y,
		offX:  opts.Margin + (avail-box.Width()*scale)/2,
		offY:  opts.Margin + (avail-box.Height()*scale)/2,
		size:  size,
	}
}

// project returns canvas coordinates with y growing downwards.
func (v viewport) project(p drawing.Point) (x, y float64) {
	x = v.offX + (p.X-v.minX)*v.scale
	y = v.size - (v.offY + (p.Y-v.minY)*v.scale)
	return x, y
}
