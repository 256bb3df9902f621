package gridding

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeResampledCoordinatesExplicitBounds(t *testing.T) {
	coords, err := ComputeResampledCoordinates(
		[]float32{0, 0, 0}, []float32{10, 10, 10}, []float32{1, 1, 1},
		0, 10, 1024,
	)
	require.NoError(t, err)
	require.NotEmpty(t, coords)
	assert.InDelta(t, 0, coords[0], 1e-6)
	assert.LessOrEqual(t, coords[len(coords)-1], float32(10.01))
}

func TestComputeResampledCoordinatesHeuristicFallback(t *testing.T) {
	nan := float32(math.NaN())
	coords, err := ComputeResampledCoordinates(
		[]float32{0, 1, 2}, []float32{8, 9, 10}, []float32{1, 1, 1},
		nan, nan, 1024,
	)
	require.NoError(t, err)
	assert.NotEmpty(t, coords)
}

func TestComputeResampledCoordinatesEmptyInput(t *testing.T) {
	_, err := ComputeResampledCoordinates(nil, nil, nil, 0, 1, 1024)
	assert.Error(t, err)
}

func TestComputeResampledCoordinatesMaxStepsFallsBackToLinspace(t *testing.T) {
	coords, err := ComputeResampledCoordinates(
		[]float32{0}, []float32{100}, []float32{0.01},
		0, 100, 50,
	)
	require.NoError(t, err)
	assert.Len(t, coords, 50)
	assert.InDelta(t, 0, coords[0], 1e-4)
	assert.InDelta(t, 100, coords[len(coords)-1], 1e-4)
}

func TestComputeResampledCoordinatesInvalidResolution(t *testing.T) {
	_, err := ComputeResampledCoordinates(
		[]float32{0}, []float32{10}, []float32{0},
		0, 10, 1024,
	)
	assert.Error(t, err)
}

func TestArange(t *testing.T) {
	got := arange(0, 3, 1)
	assert.Equal(t, []float32{0, 1, 2}, got)
	assert.Nil(t, arange(0, 1, 0))
}

func TestLinspace(t *testing.T) {
	got := linspace(0, 10, 5)
	assert.Equal(t, []float32{0, 2.5, 5, 7.5, 10}, got)
	assert.Equal(t, []float32{3}, linspace(3, 3, 1))
}
