package gridding

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForwardGridder3DBlockMeanScenario(t *testing.T) {
	// S6: x=[1.25], y=[1.25], z=[0.8], v=[5], per-axis range [0,1], res 1,
	// n=2 per axis -> image_values[1,1,0] = 0, image_weights[1,1,0] = 0.
	g := NewForwardGridder3DFromRange(0, 1, 1, 0, 0, 1, 1, 0, 0, 1, 1, 0)
	require.Equal(t, 2, g.GetNx())
	require.Equal(t, 2, g.GetNy())
	require.Equal(t, 2, g.GetNz())

	values, weights, err := g.InterpolateBlockMean(
		[]float32{1.25}, []float32{1.25}, []float32{0.8}, []float32{5},
	)
	require.NoError(t, err)

	assert.Equal(t, float32(0), values.At(1, 1, 0))
	assert.Equal(t, float32(0), weights.At(1, 1, 0))
}

func TestForwardGridder3DGetExtent(t *testing.T) {
	g := NewForwardGridder3DFromRange(0, 1, 1, 0, 0, 1, 1, 0, 0, 1, 1, 0)
	_, err := g.GetExtent("w")
	assert.Error(t, err)

	for _, axis := range []string{"x", "y", "z"} {
		ext, err := g.GetExtent(axis)
		require.NoError(t, err)
		assert.InDelta(t, -0.5, ext[0], 1e-6)
		assert.InDelta(t, 1.5, ext[1], 1e-6)
	}
}

func TestForwardGridder3DWeightedMeanConservation(t *testing.T) {
	g := NewForwardGridder3DFromRange(0, 4, 1, 0, 0, 4, 1, 0, 0, 4, 1, 0)
	xs := []float32{0.4, 2.2}
	ys := []float32{1.1, 3.9}
	zs := []float32{0.5, 2.5}
	vs := []float32{1, 2}

	_, weights, err := g.InterpolateWeightedMean(xs, ys, zs, vs)
	require.NoError(t, err)

	total := float32(0)
	for _, w := range weights.Data() {
		total += w
	}
	assert.InDelta(t, float32(len(xs)), total, 1e-4)
}

func TestForwardGridder3DLengthMismatch(t *testing.T) {
	g := NewForwardGridder3DFromRange(0, 1, 1, 0, 0, 1, 1, 0, 0, 1, 1, 0)
	_, _, err := g.InterpolateBlockMean([]float32{0, 1}, []float32{0}, []float32{0}, []float32{1, 2})
	assert.Error(t, err)
}
