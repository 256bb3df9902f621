package wci

import (
	"math"
	"sort"

	"github.com/sixy6e/go-sonargeo"
)

// BacktracedWCI resolves a backtraced (angle, range) pair to a cell in a
// beam×sample amplitude tensor: nearest-neighbour from angle to reference
// beam, then linear from range to sample number within that beam.
type BacktracedWCI struct {
	wci          sonargeo.Tensor2D[float32]
	angleToBeam  NearestInterpolator
	rangeToSample []LinearInterpolator // indexed by original beam index
	minAngle     float32
	maxAngle     float32
}

// New constructs a BacktracedWCI from the raw amplitude tensor, the
// reference beams' directions+ranges, and their reference sample
// numbers. Beams are sorted by cross_angle to build the angle→beam
// interpolator; the allowed angle range is extended by half the mean
// inter-beam spacing on each end. One linear range→sample interpolator is
// built per reference beam, anchored at (0, 0) and
// (ref_range_b, ref_sample_b).
func New(wciTensor sonargeo.Tensor2D[float32], refDirs sonargeo.SampleDirectionsRange1, refSamples []uint16) (*BacktracedWCI, error) {
	b := refDirs.Len()
	if b == 0 {
		return nil, &sonargeo.EmptyInput{Op: "BacktracedWCI"}
	}
	if len(refSamples) != b {
		return nil, &sonargeo.ShapeMismatch{Field: "reference_sample_numbers", Expected: []int{b}, Got: []int{len(refSamples)}}
	}

	maxRefSample := refSamples[0]
	for _, s := range refSamples {
		if s > maxRefSample {
			maxRefSample = s
		}
	}

	shape := wciTensor.Shape()
	if shape[0] < b {
		return nil, &sonargeo.ShapeMismatch{Field: "wci.rows", Expected: []int{b}, Got: []int{shape[0]}}
	}
	if shape[1] < int(maxRefSample) {
		return nil, &sonargeo.ShapeMismatch{Field: "wci.cols", Expected: []int{int(maxRefSample)}, Got: []int{shape[1]}}
	}

	order := make([]int, b)
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(i, j int) bool {
		return refDirs.CrossAngle.At(order[i]) < refDirs.CrossAngle.At(order[j])
	})

	sortedAngles := make([]float32, b)
	sortedBeamIdx := make([]uint16, b)
	for pos, orig := range order {
		sortedAngles[pos] = refDirs.CrossAngle.At(orig)
		sortedBeamIdx[pos] = uint16(orig)
	}

	meanSpacing := float32(0)
	if b > 1 {
		meanSpacing = (sortedAngles[b-1] - sortedAngles[0]) / float32(b-1)
	}
	minAngle := sortedAngles[0] - meanSpacing/2
	maxAngle := sortedAngles[b-1] + meanSpacing/2

	angleToBeam := NewNearestInterpolator(sortedAngles, sortedBeamIdx)

	rangeToSample := make([]LinearInterpolator, b)
	for beamIdx := 0; beamIdx < b; beamIdx++ {
		refRange := refDirs.Range.At(beamIdx)
		refSample := float32(refSamples[beamIdx])
		rangeToSample[beamIdx] = NewLinearInterpolator([]float32{0, refRange}, []float32{0, refSample})
	}

	return &BacktracedWCI{
		wci:           wciTensor,
		angleToBeam:   angleToBeam,
		rangeToSample: rangeToSample,
		minAngle:      minAngle,
		maxAngle:      maxAngle,
	}, nil
}

// LookupConst resolves (angle, range) to an amplitude, returning NaN when
// the angle is out of range or the interpolated sample index falls
// outside the beam's sample count. Free of interior mutation: safe for
// concurrent callers.
func (w *BacktracedWCI) LookupConst(angle, rng float32) float32 {
	if angle < w.minAngle || angle > w.maxAngle {
		return float32(math.NaN())
	}

	b := w.angleToBeam.At(angle)
	s := int(math.Round(float64(w.rangeToSample[b].At(rng))))

	nSamples := w.wci.Cols()
	if s < 0 || s >= nSamples {
		return float32(math.NaN())
	}

	return w.wci.At(int(b), s)
}

// Lookup is an alias for LookupConst: both the spec's "mutating" and
// "const" source variants collapse to one const-only implementation in
// this rewrite, per the "2-D SampleDirectionsRange::lookup" open
// question.
func (w *BacktracedWCI) Lookup(angle, rng float32) float32 {
	return w.LookupConst(angle, rng)
}

// MinMaxAngle returns the half-bin-extended [min_angle, max_angle] range.
func (w *BacktracedWCI) MinMaxAngle() (float32, float32) {
	return w.minAngle, w.maxAngle
}
