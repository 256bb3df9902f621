package gridding

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForwardGridder2DBlockMean(t *testing.T) {
	g := NewForwardGridder2DFromRange(0, 4, 1, 0, 0, 4, 1, 0)
	values, weights, err := g.InterpolateBlockMean([]float32{0}, []float32{0}, []float32{9})
	require.NoError(t, err)
	assert.Equal(t, float32(9), values.At(0, 0))
	assert.Equal(t, float32(1), weights.At(0, 0))
}

func TestForwardGridder2DWeightedMeanPartitionOfUnity(t *testing.T) {
	// Property 8: weighted-mean splatting's deposited weights sum to 1
	// per in-grid sample.
	g := NewForwardGridder2DFromRange(0, 4, 1, 0, 0, 4, 1, 0)
	_, weights, err := g.InterpolateWeightedMean([]float32{1.3}, []float32{2.7}, []float32{1})
	require.NoError(t, err)

	total := float32(0)
	for _, w := range weights.Data() {
		total += w
	}
	assert.InDelta(t, 1, total, 1e-5)
}

func TestForwardGridder2DGetCoordinates(t *testing.T) {
	g := NewForwardGridder2DFromRange(0, 2, 1, 0, 0, 2, 1, 0)
	coords := g.GetCoordinates()
	assert.Equal(t, []float32{0, 1, 2}, coords["x"])
	assert.Equal(t, []float32{0, 1, 2}, coords["y"])
}

func TestForwardGridder2DGetExtentInvalidAxis(t *testing.T) {
	g := NewForwardGridder2DFromRange(0, 1, 1, 0, 0, 1, 1, 0)
	_, err := g.GetExtent("z")
	assert.Error(t, err)
}

func TestForwardGridder2DLengthMismatch(t *testing.T) {
	g := NewForwardGridder2DFromRange(0, 1, 1, 0, 0, 1, 1, 0)
	_, _, err := g.InterpolateBlockMean([]float32{0, 1}, []float32{0}, []float32{1, 2})
	assert.Error(t, err)
}

func TestNewForwardGridder2DFromData(t *testing.T) {
	g, err := NewForwardGridder2DFromData([]float32{0, 1, 2}, []float32{0, 2, 4}, 1, 0, 2, 0)
	require.NoError(t, err)
	assert.Equal(t, 3, g.GetNx())
	assert.Equal(t, 3, g.GetNy())
}
