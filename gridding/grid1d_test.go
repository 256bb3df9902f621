package gridding

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForwardGridder1DWeightedMeanScenario(t *testing.T) {
	// S5: x=[0.25], v=[10], range [0,1], res 1, n=2 ->
	// image_values[0] ~= 7.5, image_weights[0] ~= 0.75.
	g := NewForwardGridder1DFromRange(0, 1, 1, 0)
	require.Equal(t, 2, g.GetNx())

	values, weights, err := g.InterpolateWeightedMean([]float32{0.25}, []float32{10})
	require.NoError(t, err)
	assert.InDelta(t, 7.5, values.At(0), 1e-6)
	assert.InDelta(t, 0.75, weights.At(0), 1e-6)
}

func TestForwardGridder1DBlockMean(t *testing.T) {
	g := NewForwardGridder1DFromRange(0, 4, 1, 0)
	values, weights, err := g.InterpolateBlockMean([]float32{0, 0.1, 3}, []float32{10, 20, 5})
	require.NoError(t, err)

	assert.InDelta(t, 30, values.At(0), 1e-6) // 10+20 accumulated at cell 0
	assert.InDelta(t, 2, weights.At(0), 1e-6)
	assert.InDelta(t, 5, values.At(3), 1e-6)
	assert.InDelta(t, 1, weights.At(3), 1e-6)
}

func TestForwardGridder1DDiscardsNonFiniteAndOutOfBounds(t *testing.T) {
	g := NewForwardGridder1DFromRange(0, 1, 1, 0)
	nan := float32(math.NaN())
	values, weights, err := g.InterpolateBlockMean([]float32{0, 100, 0}, []float32{1, 2, nan})
	require.NoError(t, err)

	total := float32(0)
	for _, w := range weights.Data() {
		total += w
	}
	assert.InDelta(t, 1, total, 1e-6)
	_ = values
}

func TestForwardGridder1DLengthMismatch(t *testing.T) {
	g := NewForwardGridder1DFromRange(0, 1, 1, 0)
	_, _, err := g.InterpolateBlockMean([]float32{0, 1}, []float32{1})
	assert.Error(t, err)
}

func TestForwardGridder1DGetExtentInvalidAxis(t *testing.T) {
	g := NewForwardGridder1DFromRange(0, 1, 1, 0)
	_, err := g.GetExtent("y")
	assert.Error(t, err)

	ext, err := g.GetExtent("x")
	require.NoError(t, err)
	assert.InDelta(t, -0.5, ext[0], 1e-6)
	assert.InDelta(t, 1.5, ext[1], 1e-6)
}

func TestForwardGridder1DConservation(t *testing.T) {
	// Property 8 (partition of unity) summed over several points: total
	// deposited weight across weighted-mean splatting equals the count of
	// in-grid finite samples.
	g := NewForwardGridder1DFromRange(0, 10, 1, 0)
	xs := []float32{0.1, 1.9, 5.5, 9.99}
	vs := []float32{1, 2, 3, 4}

	_, weights, err := g.InterpolateWeightedMean(xs, vs)
	require.NoError(t, err)

	total := float32(0)
	for _, w := range weights.Data() {
		total += w
	}
	assert.InDelta(t, float32(len(xs)), total, 1e-4)
}

func TestFloorFloat32Negative(t *testing.T) {
	assert.Equal(t, float32(-2), floorFloat32(-1.5))
	assert.Equal(t, float32(2), floorFloat32(2))
}
