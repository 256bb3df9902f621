// Package raytrace implements the constant-sound-velocity-profile
// raytracer (C3): mapping (two_way_time, along_angle, cross_angle)
// triples to 3-D sample positions, grounded on
// original_source/.../geoprocessing/raytracers/rtconstantsvp.hpp and
// i_raytracer.hpp.
package raytrace

import (
	"github.com/sixy6e/go-sonargeo"
	"github.com/sixy6e/go-sonargeo/internal/parallel"
	"github.com/sixy6e/go-sonargeo/rotation"
)

// RTConstantSVP traces rays through a single scalar sound speed. The
// sensor quaternion deliberately zeroes yaw when composing the pose,
// since the alongtrack/crosstrack frame is already sensor-relative.
type RTConstantSVP struct {
	sensor   sonargeo.GeoLocation
	sensorQ  rotation.Quat
	c        float32
	cHalf    float32
}

// New builds a raytracer for a fixed sensor pose and sound speed.
func New(sensor sonargeo.GeoLocation, soundSpeed float32) *RTConstantSVP {
	return &RTConstantSVP{
		sensor:  sensor,
		sensorQ: rotation.FromYPR(0, sensor.Pitch, sensor.Roll),
		c:       soundSpeed,
		cHalf:   soundSpeed / 2,
	}
}

// TracePoint traces a single ray at two-way time tt along the given
// along/cross angles (degrees).
func (r *RTConstantSVP) TracePoint(tt, along, cross float32) sonargeo.RaytraceResult {
	rng := tt * r.cHalf
	q := rotation.Compose(r.sensorQ, rotation.FromYPR(0, along, cross))
	xyz := rotation.Rotate(q, [3]float32{0, 0, rng})

	return sonargeo.RaytraceResult{
		X:         xyz[0],
		Y:         xyz[1],
		Z:         xyz[2] + r.sensor.Z,
		TrueRange: rng,
	}
}

// TracePoints traces a batch of equal-length (tt, along, cross) triples,
// optionally in parallel across points. Unequal lengths fail with
// LengthMismatch.
func (r *RTConstantSVP) TracePoints(tt, along, cross []float32, cores int) (sonargeo.RaytraceResults1, error) {
	n := len(tt)
	if len(along) != n {
		return sonargeo.RaytraceResults1{}, &sonargeo.LengthMismatch{A: n, B: len(along)}
	}
	if len(cross) != n {
		return sonargeo.RaytraceResults1{}, &sonargeo.LengthMismatch{A: n, B: len(cross)}
	}

	out := sonargeo.NewRaytraceResults1(n)
	parallel.For(n, cores, func(i int) {
		out.Set(i, r.TracePoint(tt[i], along[i], cross[i]))
	})

	return out, nil
}

// TracePointsBroadcastAlong traces a batch where a single along-angle is
// broadcast across every (tt, cross) pair.
func (r *RTConstantSVP) TracePointsBroadcastAlong(tt []float32, along float32, cross []float32, cores int) (sonargeo.RaytraceResults1, error) {
	n := len(tt)
	if len(cross) != n {
		return sonargeo.RaytraceResults1{}, &sonargeo.LengthMismatch{A: n, B: len(cross)}
	}

	out := sonargeo.NewRaytraceResults1(n)
	parallel.For(n, cores, func(i int) {
		out.Set(i, r.TracePoint(tt[i], along, cross[i]))
	})

	return out, nil
}

// TraceBeam scale-traces a single beam: it computes the full-range result
// at the last sample and then linearly scales the straight-line segment
// from the sensor to that end point, against each sample's two-way time.
// This reproduces trace_point exactly at t=0 and at t=t_last. Empty input
// is valid and yields an empty result.
func (r *RTConstantSVP) TraceBeam(sampleNumbers []uint32, dt, t0, along, cross float32) sonargeo.RaytraceResults1 {
	n := len(sampleNumbers)
	out := sonargeo.NewRaytraceResults1(n)
	if n == 0 {
		return out
	}

	tLast := float32(sampleNumbers[n-1])*dt + t0
	scale := r.TracePoint(tLast, along, cross)

	for i, s := range sampleNumbers {
		ti := float32(s)*dt + t0
		var frac float32
		if tLast != 0 {
			frac = ti / tLast
		}
		out.Set(i, sonargeo.RaytraceResult{
			X:         frac * scale.X,
			Y:         frac * scale.Y,
			Z:         r.sensor.Z + frac*(scale.Z-r.sensor.Z),
			TrueRange: frac * scale.TrueRange,
		})
	}

	return out
}

// TraceBeamFromCount is the supplemented convenience overload from
// i_raytracer.hpp's default trace_beam: builds the sample-number arange
// [firstSampleNumber, firstSampleNumber+numberOfSamples*sampleStep) and
// delegates to TraceBeam.
func (r *RTConstantSVP) TraceBeamFromCount(firstSampleNumber, numberOfSamples, sampleStep uint32, dt, t0, along, cross float32) sonargeo.RaytraceResults1 {
	samples := make([]uint32, numberOfSamples)
	for i := range samples {
		samples[i] = firstSampleNumber + uint32(i)*sampleStep
	}
	return r.TraceBeam(samples, dt, t0, along, cross)
}

// TraceSwath scale-traces every beam of a swath in parallel, writing each
// beam's samples into the corresponding row of a 2-D result.
func (r *RTConstantSVP) TraceSwath(sampleNumbers [][]uint32, dt, t0 float32, alongPerBeam, crossPerBeam []float32, cores int) (sonargeo.RaytraceResults2, error) {
	nBeams := len(sampleNumbers)
	if len(alongPerBeam) != nBeams {
		return sonargeo.RaytraceResults2{}, &sonargeo.LengthMismatch{A: nBeams, B: len(alongPerBeam)}
	}
	if len(crossPerBeam) != nBeams {
		return sonargeo.RaytraceResults2{}, &sonargeo.LengthMismatch{A: nBeams, B: len(crossPerBeam)}
	}

	nSamples := 0
	if nBeams > 0 {
		nSamples = len(sampleNumbers[0])
	}
	out := sonargeo.NewRaytraceResults2(nBeams, nSamples)

	parallel.For(nBeams, cores, func(b int) {
		beamResult := r.TraceBeam(sampleNumbers[b], dt, t0, alongPerBeam[b], crossPerBeam[b])
		copy(out.X.Row(b), beamResult.X.Data())
		copy(out.Y.Row(b), beamResult.Y.Data())
		copy(out.Z.Row(b), beamResult.Z.Data())
		copy(out.TrueRange.Row(b), beamResult.TrueRange.Data())
	})

	return out, nil
}

// TraceSwathFromCount is the supplemented convenience overload building
// each beam's sample-number arange from (first_sample_number,
// number_of_samples, sample_step) triples before delegating to
// TraceSwath.
func (r *RTConstantSVP) TraceSwathFromCount(firstSampleNumber, numberOfSamples, sampleStep []uint32, dt, t0 float32, alongPerBeam, crossPerBeam []float32, cores int) (sonargeo.RaytraceResults2, error) {
	nBeams := len(firstSampleNumber)
	sampleNumbers := make([][]uint32, nBeams)
	for b := 0; b < nBeams; b++ {
		samples := make([]uint32, numberOfSamples[b])
		for i := range samples {
			samples[i] = firstSampleNumber[b] + uint32(i)*sampleStep[b]
		}
		sampleNumbers[b] = samples
	}
	return r.TraceSwath(sampleNumbers, dt, t0, alongPerBeam, crossPerBeam, cores)
}
