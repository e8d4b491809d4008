// SPDX-License-Identifier: MIT

package drawing_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vptk/drawing"
	"github.com/katalvlaran/vptk/profile"
	"github.com/katalvlaran/vptk/reducer"
)

func stock(t *testing.T, resolution int) (reducer.BasicParams, profile.Result) {
	t.Helper()
	bp := reducer.DefaultInputs().Derive()
	res, err := profile.Generate(resolution, bp.ProfileParams())
	require.NoError(t, err)
	return bp, res
}

func TestBuild_DefaultLayers(t *testing.T) {
	t.Parallel()
	bp, res := stock(t, 120)
	d := drawing.Build(bp, res, 90, drawing.DefaultFlags())

	prof := d.Only(drawing.LayerProfile)
	require.Len(t, prof.Markers, 1)
	assert.Equal(t, drawing.Point{}, prof.Markers[0].At)
	require.Len(t, prof.Polylines, 1)
	assert.Len(t, prof.Polylines[0].Points, 120)

	sep := d.Only(drawing.LayerSeparator)
	require.Len(t, sep.Circles, 2)
	assert.InDelta(t, bp.RsepOut, sep.Circles[0].Radius, 1e-12)
	assert.InDelta(t, bp.RsepIn, sep.Circles[1].Radius, 1e-12)

	ecc := d.Only(drawing.LayerEccentric)
	require.Len(t, ecc.Markers, 1)
	assert.Equal(t, drawing.Point{Y: bp.E}, ecc.Markers[0].At)
	require.Len(t, ecc.Polylines, 3)
	assert.Equal(t, []drawing.Point{{}, {Y: bp.E}}, ecc.Polylines[0].Points)
	assert.Equal(t, []drawing.Point{{X: -6}, {X: 6}}, ecc.Polylines[1].Points)
	assert.Equal(t, []drawing.Point{{X: -3, Y: bp.E}, {X: 3, Y: bp.E}}, ecc.Polylines[2].Points)
	require.Len(t, ecc.Circles, 1)
	assert.Equal(t, bp.Rd, ecc.Circles[0].Radius)

	assert.True(t, d.Only(drawing.LayerBalls).Empty(), "balls are off by default")

	out := d.Only(drawing.LayerOutline)
	require.Len(t, out.Circles, 1)
	assert.Equal(t, 45.0, out.Circles[0].Radius)
}

func TestBuild_Balls(t *testing.T) {
	t.Parallel()
	bp, res := stock(t, 16)
	d := drawing.Build(bp, res, 90, drawing.Flags{Balls: true})

	balls := d.Only(drawing.LayerBalls).Circles
	require.Len(t, balls, 17)
	for k, c := range balls {
		assert.Equal(t, bp.Rsh, c.Radius)
		assert.Equal(t, res.Shaft.XSh[k], c.Center.X)
		assert.Equal(t, res.Shaft.YSh[k], c.Center.Y)
	}
	assert.Len(t, d.Circles, 17, "no other layer enabled")
}

func TestBuild_BallsWithOversizedCount(t *testing.T) {
	t.Parallel()
	bp := reducer.DeriveBasicParams(6, 1, 1e19, 38)
	res, err := profile.Generate(16, bp.ProfileParams())
	require.NoError(t, err)

	var d drawing.Drawing
	require.NotPanics(t, func() {
		d = drawing.Build(bp, res, 90, drawing.Flags{Balls: true})
	})
	assert.Empty(t, d.Only(drawing.LayerBalls).Circles)
}

func TestBuild_NoFlagsIsEmpty(t *testing.T) {
	t.Parallel()
	bp, res := stock(t, 16)
	d := drawing.Build(bp, res, 90, drawing.Flags{})
	assert.True(t, d.Empty())

	_, ok := d.Bounds()
	assert.False(t, ok)
}

func TestBounds_OutlineDominates(t *testing.T) {
	t.Parallel()
	bp, res := stock(t, 240)
	d := drawing.Build(bp, res, 90, drawing.DefaultFlags())

	r, ok := d.Bounds()
	require.True(t, ok)
	assert.InDelta(t, -45, r.Min.X, 1e-9)
	assert.InDelta(t, 45, r.Max.X, 1e-9)
	assert.InDelta(t, 90, r.Width(), 1e-9)
	assert.InDelta(t, 90, r.Height(), 1e-9)
}

func TestBounds_SkipsNonFinite(t *testing.T) {
	t.Parallel()
	d := drawing.Drawing{
		Polylines: []drawing.Polyline{{Points: []drawing.Point{
			{X: math.NaN(), Y: 1}, {X: 1, Y: 2}, {X: -3, Y: math.Inf(1)}, {X: 2, Y: -1},
		}}},
		Circles: []drawing.Circle{
			{Center: drawing.Point{}, Radius: math.NaN()},
			{Center: drawing.Point{X: math.Inf(-1)}, Radius: 1},
		},
	}

	r, ok := d.Bounds()
	require.True(t, ok)
	assert.Equal(t, drawing.Rect{Min: drawing.Point{X: 1, Y: -1}, Max: drawing.Point{X: 2, Y: 2}}, r)
}

func TestBounds_NegativeRadiusUsesMagnitude(t *testing.T) {
	t.Parallel()
	d := drawing.Drawing{Circles: []drawing.Circle{{Radius: -2}}}
	r, ok := d.Bounds()
	require.True(t, ok)
	assert.Equal(t, 4.0, r.Width())
}

func TestLayerString(t *testing.T) {
	t.Parallel()
	names := make([]string, 0, len(drawing.Layers))
	for _, l := range drawing.Layers {
		names = append(names, l.String())
	}
	assert.Equal(t, []string{"profile", "separator", "eccentric", "balls", "outline"}, names)
}
