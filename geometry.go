package sonargeo

import (
	"github.com/sixy6e/go-sonargeo/projection"
	"github.com/sixy6e/go-sonargeo/rotation"
)

// GeoLocation is the external pose collaborator: a transducer's position
// and orientation. z is positive down; yaw/pitch/roll are in degrees.
type GeoLocation struct {
	X, Y, Z              float32
	Yaw, Pitch, Roll     float32
}

// Equal reports whether two locations carry identical fields.
func (g GeoLocation) Equal(o GeoLocation) bool {
	return g == o
}

// XYZ1 is a rank-1 dense tensor of {x, y, z} triples, in meters, frame: x
// forward, y starboard, z down.
type XYZ1 struct {
	X, Y, Z Tensor1D[float32]
}

// NewXYZ1 allocates a zero-valued rank-1 XYZ tensor of length n.
func NewXYZ1(n int) XYZ1 {
	return XYZ1{X: NewTensor1D[float32](n), Y: NewTensor1D[float32](n), Z: NewTensor1D[float32](n)}
}

func (a XYZ1) Len() int { return a.X.Len() }

// Rotate applies q to every (x, y, z) triple, returning a new tensor of
// the same shape.
func (a XYZ1) Rotate(q rotation.Quat) XYZ1 {
	out := NewXYZ1(a.Len())
	for i := 0; i < a.Len(); i++ {
		r := rotation.Rotate(q, [3]float32{a.X.At(i), a.Y.At(i), a.Z.At(i)})
		out.X.Set(i, r[0])
		out.Y.Set(i, r[1])
		out.Z.Set(i, r[2])
	}
	return out
}

// RotateYPR builds the quaternion from yaw/pitch/roll (degrees) and
// rotates every triple.
func (a XYZ1) RotateYPR(yaw, pitch, roll float32) XYZ1 {
	return a.Rotate(rotation.FromYPR(yaw, pitch, roll))
}

// Translate adds (dx, dy, dz) to every triple, element-wise.
func (a XYZ1) Translate(dx, dy, dz float32) XYZ1 {
	out := NewXYZ1(a.Len())
	for i := 0; i < a.Len(); i++ {
		out.X.Set(i, a.X.At(i)+dx)
		out.Y.Set(i, a.Y.At(i)+dy)
		out.Z.Set(i, a.Z.At(i)+dz)
	}
	return out
}

// ConcatXYZ1 flattens a list of rank-1 XYZ tensors into one contiguous
// output of total length sum(len_i). Dimensionality of any 2-D/3-D inputs
// is intentionally dropped by callers before reaching this function; the
// concat operation itself is defined only over already-flat tensors, per
// the geometric primitives' "flattens each input" contract.
func ConcatXYZ1(parts ...XYZ1) XYZ1 {
	total := 0
	for _, p := range parts {
		total += p.Len()
	}
	out := NewXYZ1(total)
	offset := 0
	for _, p := range parts {
		for i := 0; i < p.Len(); i++ {
			out.X.Set(offset+i, p.X.At(i))
			out.Y.Set(offset+i, p.Y.At(i))
			out.Z.Set(offset+i, p.Z.At(i))
		}
		offset += p.Len()
	}
	return out
}

// MinMaxX returns [min, max] over the x tensor. NaN-ignoring is not
// guaranteed at this layer, per the geometric-primitives contract; a NaN
// value may propagate into the result depending on comparison order.
func (a XYZ1) MinMaxX() (*EmptyInput, [2]float32) { return minMax1(a.X) }
func (a XYZ1) MinMaxY() (*EmptyInput, [2]float32) { return minMax1(a.Y) }
func (a XYZ1) MinMaxZ() (*EmptyInput, [2]float32) { return minMax1(a.Z) }

// ToLatLon projects every (northing=y, easting=x) pair to lat/lon via the
// external UTM projector, returning tensors of the same shape.
func (a XYZ1) ToLatLon(zone int, northern bool) (lat, lon Tensor1D[float32], err error) {
	lat = NewTensor1D[float32](a.Len())
	lon = NewTensor1D[float32](a.Len())
	for i := 0; i < a.Len(); i++ {
		la, lo, perr := projection.ToLatLon(zone, northern, float64(a.Y.At(i)), float64(a.X.At(i)))
		if perr != nil {
			return lat, lon, perr
		}
		lat.Set(i, float32(la))
		lon.Set(i, float32(lo))
	}
	return lat, lon, nil
}

func minMax1(t Tensor1D[float32]) (*EmptyInput, [2]float32) {
	if t.Len() == 0 {
		return &EmptyInput{Op: "minmax"}, [2]float32{}
	}
	lo, hi := t.At(0), t.At(0)
	for i := 1; i < t.Len(); i++ {
		v := t.At(i)
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return nil, [2]float32{lo, hi}
}

// XYZ2 is a rank-2 dense tensor of {x, y, z}, e.g. one row per beam,
// one column per sample.
type XYZ2 struct {
	X, Y, Z Tensor2D[float32]
}

// NewXYZ2 allocates a zero-valued rank-2 XYZ tensor of shape (rows, cols).
func NewXYZ2(rows, cols int) XYZ2 {
	return XYZ2{X: NewTensor2D[float32](rows, cols), Y: NewTensor2D[float32](rows, cols), Z: NewTensor2D[float32](rows, cols)}
}

func (a XYZ2) Shape() []int { return a.X.Shape() }

// SampleDirections1 holds equal-shape along/cross angle tensors, in
// degrees: along positive bow-up / 0 = downward, cross positive
// starboard-up / 0 = downward.
type SampleDirections1 struct {
	AlongAngle Tensor1D[float32]
	CrossAngle Tensor1D[float32]
}

func (s SampleDirections1) Len() int { return s.AlongAngle.Len() }

func (s SampleDirections1) validate() error {
	if s.AlongAngle.Len() != s.CrossAngle.Len() {
		return &ShapeMismatch{Field: "cross_angle", Expected: s.AlongAngle.Shape(), Got: s.CrossAngle.Shape()}
	}
	return nil
}

// NewSampleDirections1 constructs a validated rank-1 SampleDirections,
// failing with ShapeMismatch rather than panicking, per the "fallible
// constructor" design note.
func NewSampleDirections1(along, cross Tensor1D[float32]) (SampleDirections1, error) {
	s := SampleDirections1{AlongAngle: along, CrossAngle: cross}
	if err := s.validate(); err != nil {
		return SampleDirections1{}, err
	}
	return s, nil
}

// SampleDirectionsRange1 extends SampleDirections1 with a non-negative
// ray-path-length range tensor of the same shape.
type SampleDirectionsRange1 struct {
	SampleDirections1
	Range Tensor1D[float32]
}

// NewSampleDirectionsRange1 validates that Range matches the base shape.
func NewSampleDirectionsRange1(along, cross, rng Tensor1D[float32]) (SampleDirectionsRange1, error) {
	base, err := NewSampleDirections1(along, cross)
	if err != nil {
		return SampleDirectionsRange1{}, err
	}
	if rng.Len() != base.Len() {
		return SampleDirectionsRange1{}, &ShapeMismatch{Field: "range", Expected: base.AlongAngle.Shape(), Got: rng.Shape()}
	}
	return SampleDirectionsRange1{SampleDirections1: base, Range: rng}, nil
}

// SampleDirectionsRange2 is the rank-2 counterpart, produced by
// backtrace_image: shape (len(y_coords), len(z_coords)).
type SampleDirectionsRange2 struct {
	AlongAngle Tensor2D[float32]
	CrossAngle Tensor2D[float32]
	Range      Tensor2D[float32]
}

func (s SampleDirectionsRange2) Shape() []int { return s.AlongAngle.Shape() }

// SampleDirectionsTime1 extends SampleDirections1 with a non-negative
// two-way travel time tensor of the same shape.
type SampleDirectionsTime1 struct {
	SampleDirections1
	TwoWayTravelTime Tensor1D[float32]
}

// RaytraceResult is the scalar result of tracing a single ray.
type RaytraceResult struct {
	X, Y, Z   float32
	TrueRange float32
}

// RaytraceResults1 is the batched, rank-1 counterpart.
type RaytraceResults1 struct {
	XYZ1
	TrueRange Tensor1D[float32]
}

// NewRaytraceResults1 allocates a zero-valued batch of n results.
func NewRaytraceResults1(n int) RaytraceResults1 {
	return RaytraceResults1{XYZ1: NewXYZ1(n), TrueRange: NewTensor1D[float32](n)}
}

// Set stores a single scalar result at index i.
func (r RaytraceResults1) Set(i int, v RaytraceResult) {
	r.X.Set(i, v.X)
	r.Y.Set(i, v.Y)
	r.Z.Set(i, v.Z)
	r.TrueRange.Set(i, v.TrueRange)
}

// At reads back a single scalar result.
func (r RaytraceResults1) At(i int) RaytraceResult {
	return RaytraceResult{X: r.X.At(i), Y: r.Y.At(i), Z: r.Z.At(i), TrueRange: r.TrueRange.At(i)}
}

// RaytraceResults2 is the batched, rank-2 counterpart produced by
// trace_swath: one row per beam, one column per sample.
type RaytraceResults2 struct {
	XYZ2
	TrueRange Tensor2D[float32]
}

// NewRaytraceResults2 allocates a zero-valued batch of shape (beams, samples).
func NewRaytraceResults2(beams, samples int) RaytraceResults2 {
	return RaytraceResults2{XYZ2: NewXYZ2(beams, samples), TrueRange: NewTensor2D[float32](beams, samples)}
}

// BeamSampleParameters holds the five per-beam tensors common to a swath:
// along/cross angle, first-sample-offset, sample interval and sample
// count, all of length n_beams. NewBeamSampleParameters checks that all
// lengths are equal; the fields are exported and there are no setters, so
// assignments made after construction are not re-checked.
type BeamSampleParameters struct {
	AlongAngle        Tensor1D[float32]
	CrossAngle        Tensor1D[float32]
	FirstSampleOffset Tensor1D[float32]
	SampleInterval    Tensor1D[float32]
	NumberOfSamples   Tensor1D[uint32]
}

// NewBeamSampleParameters validates all five tensors share one length.
func NewBeamSampleParameters(
	along, cross, firstOffset, interval Tensor1D[float32],
	nSamples Tensor1D[uint32],
) (BeamSampleParameters, error) {
	p := BeamSampleParameters{
		AlongAngle:        along,
		CrossAngle:        cross,
		FirstSampleOffset: firstOffset,
		SampleInterval:    interval,
		NumberOfSamples:   nSamples,
	}
	if err := p.validate(); err != nil {
		return BeamSampleParameters{}, err
	}
	return p, nil
}

func (p BeamSampleParameters) validate() error {
	n := []int{p.AlongAngle.Len()}
	if got := []int{p.CrossAngle.Len()}; !shapeEqual(n, got) {
		return &ShapeMismatch{Field: "cross_angle", Expected: n, Got: got}
	}
	if got := []int{p.FirstSampleOffset.Len()}; !shapeEqual(n, got) {
		return &ShapeMismatch{Field: "first_sample_offset", Expected: n, Got: got}
	}
	if got := []int{p.SampleInterval.Len()}; !shapeEqual(n, got) {
		return &ShapeMismatch{Field: "sample_interval", Expected: n, Got: got}
	}
	if got := []int{p.NumberOfSamples.Len()}; !shapeEqual(n, got) {
		return &ShapeMismatch{Field: "number_of_samples", Expected: n, Got: got}
	}
	return nil
}

func (p BeamSampleParameters) NumBeams() int { return p.AlongAngle.Len() }

// SampleIndices1 is an equal-shape pair of u16 beam/sample number
// tensors.
type SampleIndices1 struct {
	BeamNumbers   Tensor1D[uint16]
	SampleNumbers Tensor1D[uint16]
}

// NewSampleIndices1 validates both tensors share one length.
func NewSampleIndices1(beams, samples Tensor1D[uint16]) (SampleIndices1, error) {
	if beams.Len() != samples.Len() {
		return SampleIndices1{}, &ShapeMismatch{Field: "sample_numbers", Expected: beams.Shape(), Got: samples.Shape()}
	}
	return SampleIndices1{BeamNumbers: beams, SampleNumbers: samples}, nil
}
