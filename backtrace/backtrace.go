// Package backtrace implements the constant-SVP backtracer (C4): the
// inverse of raytrace.RTConstantSVP, mapping 3-D target positions back to
// launch directions and slant range, grounded on
// original_source/.../geoprocessing/backtracers/btconstantsvp.hpp.
package backtrace

import (
	"math"

	"github.com/sixy6e/go-sonargeo"
	"github.com/sixy6e/go-sonargeo/internal/parallel"
)

// BTConstantSVP backtraces against a fixed sensor pose.
type BTConstantSVP struct {
	sensor sonargeo.GeoLocation
}

// New builds a backtracer for a fixed sensor pose.
func New(sensor sonargeo.GeoLocation) *BTConstantSVP {
	return &BTConstantSVP{sensor: sensor}
}

func hypot3(dx, dy, dz float32) float32 {
	return float32(math.Sqrt(float64(dx)*float64(dx) + float64(dy)*float64(dy) + float64(dz)*float64(dz)))
}

func degrees(rad float64) float32 {
	return float32(rad * 180 / math.Pi)
}

// backtraceDelta computes along/cross/range from a precomputed
// sensor-to-target delta. r=0 is reachable only when the target
// coincides with the sensor; the resulting ±Inf/NaN is allowed to
// propagate, per the numerics note.
func (b *BTConstantSVP) backtraceDelta(dx, dy, dz float32) (along, cross, rng float32) {
	r := hypot3(dx, dy, dz)

	along = degrees(math.Asin(float64(dx/r))) - b.sensor.Pitch
	cross = degrees(-math.Asin(float64(dy/r))) - b.sensor.Roll
	return along, cross, r
}

// backtraceOne computes along/cross/range for a single target point given
// in absolute coordinates.
func (b *BTConstantSVP) backtraceOne(x, y, z float32) (along, cross, rng float32) {
	return b.backtraceDelta(x-b.sensor.X, y-b.sensor.Y, z-b.sensor.Z)
}

// BacktracePoints backtraces a batch of equal-length (x, y, z) points,
// optionally in parallel across points.
func (b *BTConstantSVP) BacktracePoints(x, y, z []float32, cores int) (sonargeo.SampleDirectionsRange1, error) {
	n := len(x)
	if len(y) != n {
		return sonargeo.SampleDirectionsRange1{}, &sonargeo.LengthMismatch{A: n, B: len(y)}
	}
	if len(z) != n {
		return sonargeo.SampleDirectionsRange1{}, &sonargeo.LengthMismatch{A: n, B: len(z)}
	}

	along := sonargeo.NewTensor1D[float32](n)
	cross := sonargeo.NewTensor1D[float32](n)
	rng := sonargeo.NewTensor1D[float32](n)

	parallel.For(n, cores, func(i int) {
		a, c, r := b.backtraceOne(x[i], y[i], z[i])
		along.Set(i, a)
		cross.Set(i, c)
		rng.Set(i, r)
	})

	return sonargeo.NewSampleDirectionsRange1(along, cross, rng)
}

// BacktraceImage backtraces the cross product of y_coords × z_coords with
// the x offset fixed at -sensor_x (targets at absolute x = 0), producing a
// shape (len(y_coords), len(z_coords)) result.
// Parallel over y.
func (b *BTConstantSVP) BacktraceImage(yCoords, zCoords []float32, cores int) sonargeo.SampleDirectionsRange2 {
	ny, nz := len(yCoords), len(zCoords)
	along := sonargeo.NewTensor2D[float32](ny, nz)
	cross := sonargeo.NewTensor2D[float32](ny, nz)
	rng := sonargeo.NewTensor2D[float32](ny, nz)

	// The original C++ backtrace_image sets dx directly to -sensor_x
	// (not x=-sensor_x fed through the usual x-sensor.X delta), so this
	// calls backtraceDelta rather than backtraceOne to avoid
	// double-subtracting sensor.X.
	dx := -b.sensor.X

	parallel.For(ny, cores, func(iy int) {
		alongRow := along.Row(iy)
		crossRow := cross.Row(iy)
		rngRow := rng.Row(iy)
		for iz := 0; iz < nz; iz++ {
			a, c, r := b.backtraceDelta(dx, yCoords[iy]-b.sensor.Y, zCoords[iz]-b.sensor.Z)
			alongRow[iz] = a
			crossRow[iz] = c
			rngRow[iz] = r
		}
	})

	return sonargeo.SampleDirectionsRange2{AlongAngle: along, CrossAngle: cross, Range: rng}
}
