package backtrace

import (
	"math"
	"testing"

	"github.com/sixy6e/go-sonargeo"
	"github.com/sixy6e/go-sonargeo/raytrace"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBacktracePointsScenario(t *testing.T) {
	// S4: sensor (sx,sy)=(-2,5), z=3, yaw=pitch=roll=0.
	// backtrace([0],[0],[0]) -> along≈18.93182°, cross≈54.20424°, range≈6.16441.
	bt := New(sonargeo.GeoLocation{X: -2, Y: 5, Z: 3})
	out, err := bt.BacktracePoints([]float32{0}, []float32{0}, []float32{0}, 1)
	require.NoError(t, err)

	assert.InDelta(t, 18.93182, out.AlongAngle.At(0), 1e-3)
	assert.InDelta(t, 54.20424, out.CrossAngle.At(0), 1e-3)
	assert.InDelta(t, 6.16441, out.Range.At(0), 1e-3)
}

func TestBacktracePointsLengthMismatch(t *testing.T) {
	bt := New(sonargeo.GeoLocation{})
	_, err := bt.BacktracePoints([]float32{1, 2}, []float32{1}, []float32{1, 2}, 1)
	require.Error(t, err)
	assert.IsType(t, &sonargeo.LengthMismatch{}, err)
}

func TestBacktraceSensorCoincidentPointPropagatesNaN(t *testing.T) {
	bt := New(sonargeo.GeoLocation{X: 1, Y: 2, Z: 3})
	out, err := bt.BacktracePoints([]float32{1}, []float32{2}, []float32{3}, 1)
	require.NoError(t, err)
	// r = 0; dx/r, dy/r are 0/0 = NaN, propagating into along/cross.
	assert.True(t, math.IsNaN(float64(out.AlongAngle.At(0))))
	assert.Equal(t, float32(0), out.Range.At(0))
}

func TestRaytraceBacktraceInverse(t *testing.T) {
	// Property 4: backtrace(trace(tt, along, cross)) ≈ (along, cross, tt*c/2).
	sensor := sonargeo.GeoLocation{X: 0, Y: 0, Z: 3}
	c := float32(1450)
	rt := raytrace.New(sensor, c)
	bt := New(sensor)

	cases := []struct{ tt, along, cross float32 }{
		{5, 45, 0},
		{3, 10, -20},
		{2, -30, 5},
	}

	for _, tc := range cases {
		res := rt.TracePoint(tc.tt, tc.along, tc.cross)
		out, err := bt.BacktracePoints([]float32{res.X}, []float32{res.Y}, []float32{res.Z}, 1)
		require.NoError(t, err)

		assert.InDelta(t, tc.along, out.AlongAngle.At(0), 1e-3)
		assert.InDelta(t, tc.cross, out.CrossAngle.At(0), 1e-3)
		assert.InDelta(t, math.Abs(float64(tc.tt*c/2)), float64(out.Range.At(0)), 1e-2)
	}
}

func TestBacktraceImageShape(t *testing.T) {
	bt := New(sonargeo.GeoLocation{X: 0, Y: 0, Z: 3})
	out := bt.BacktraceImage([]float32{-1, 0, 1}, []float32{0, 1}, 2)
	assert.Equal(t, []int{3, 2}, out.Shape())
}

func TestBacktraceImageDeterministicUnderCores(t *testing.T) {
	bt := New(sonargeo.GeoLocation{X: -2, Y: 5, Z: 3})
	yCoords := make([]float32, 10)
	zCoords := make([]float32, 6)
	for i := range yCoords {
		yCoords[i] = float32(i) - 5
	}
	for i := range zCoords {
		zCoords[i] = float32(i)
	}

	var baseline sonargeo.SampleDirectionsRange2
	for _, cores := range []int{1, 2, 4, 8} {
		out := bt.BacktraceImage(yCoords, zCoords, cores)
		if cores == 1 {
			baseline = out
			continue
		}
		assert.Equal(t, baseline.Range.Data(), out.Range.Data(), "cores=%d", cores)
	}
}

func TestBacktraceImageMatchesBacktracePointsAtXZero(t *testing.T) {
	// BacktraceImage uses the x offset -sensor_x for every (y, z) pair,
	// i.e. targets at absolute x = 0; it must agree exactly with
	// BacktracePoints queried at those absolute coordinates (sensor.X
	// nonzero, so this catches a double-subtraction of sensor.X inside
	// BacktraceImage).
	sensor := sonargeo.GeoLocation{X: -2, Y: 5, Z: 3}
	bt := New(sensor)
	yCoords := []float32{0, 2, 7}
	zCoords := []float32{0, 4}

	image := bt.BacktraceImage(yCoords, zCoords, 1)

	x := float32(0)
	for iy, y := range yCoords {
		for iz, z := range zCoords {
			points, err := bt.BacktracePoints([]float32{x}, []float32{y}, []float32{z}, 1)
			require.NoError(t, err)

			assert.InDelta(t, points.AlongAngle.At(0), image.AlongAngle.At(iy, iz), 1e-4)
			assert.InDelta(t, points.CrossAngle.At(0), image.CrossAngle.At(iy, iz), 1e-4)
			assert.InDelta(t, points.Range.At(0), image.Range.At(iy, iz), 1e-4)
		}
	}
}
