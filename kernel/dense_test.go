// SPDX-License-Identifier: MIT

package kernel_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vptk/kernel"
)

func TestNewDense_InvalidDimensions(t *testing.T) {
	t.Parallel()
	for _, shape := range [][2]int{{0, 2}, {2, 0}, {-1, 3}} {
		_, err := kernel.NewDense[float64](shape[0], shape[1])
		assert.ErrorIs(t, err, kernel.ErrInvalidDimensions, "shape %v", shape)
	}
}

func TestDense_AtSetRow(t *testing.T) {
	t.Parallel()
	d, err := kernel.NewDense[float64](2, 3)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3}, d.Shape())

	require.NoError(t, d.Set(1, 2, 7.5))
	v, err := d.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 7.5, v)

	row, err := d.Row(1)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 7.5}, row)

	// Row returns a copy.
	row[0] = 99
	v, err = d.At(1, 0)
	require.NoError(t, err)
	assert.Equal(t, 0.0, v)
}

func TestDense_OutOfRange(t *testing.T) {
	t.Parallel()
	d, err := kernel.NewDense[float32](1, 2)
	require.NoError(t, err)

	_, err = d.At(1, 0)
	assert.ErrorIs(t, err, kernel.ErrOutOfRange)
	assert.ErrorIs(t, d.Set(0, 2, 1), kernel.ErrOutOfRange)
	_, err = d.Row(-1)
	assert.ErrorIs(t, err, kernel.ErrOutOfRange)
}

func TestDense_PointsNeedsTwoColumns(t *testing.T) {
	t.Parallel()
	d, err := kernel.NewDense[float64](2, 3)
	require.NoError(t, err)
	_, err = d.Points()
	assert.ErrorIs(t, err, kernel.ErrDimensionMismatch)

	var nilDense *kernel.Dense[float64]
	assert.Nil(t, nilDense.Shape())
	assert.Equal(t, 0, nilDense.Rows())
}

func TestDense_String(t *testing.T) {
	t.Parallel()
	xy, err := kernel.Stack[float64](kernel.Vector[float64]{1, 2}, kernel.Vector[float64]{3, 4.5})
	require.NoError(t, err)
	assert.Equal(t, "[1, 3]\n[2, 4.5]\n", xy.String())
}
