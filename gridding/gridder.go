// Package gridding implements the forward gridders (C7): 1-D/2-D/3-D
// uniform-grid splatting with block-mean and weighted-mean (multilinear)
// kernels, grounded on
// original_source/.../gridding/forwardgridder1d.hpp and
// functions/gridfunctions.hpp.
package gridding

import (
	"math"

	"github.com/sixy6e/go-sonargeo"
)

// Axis is one gridded dimension's geometry: res/base/min/max/n plus
// half-cell borders, satisfying the invariants:
//
//	min = base + res * round((raw_min - base) / res)
//	max analogous
//	n = round((max - min) / res) + 1
//	border_min = min - res/2
//	border_max = max + res/2
type Axis struct {
	Res        float32
	Base       float32
	Min        float32
	Max        float32
	N          int
	BorderMin  float32
	BorderMax  float32
}

func roundHalfAwayFromZero(v float32) float32 {
	return float32(math.Round(float64(v)))
}

// newAxis computes an Axis from res/base and a raw [min, max] range.
func newAxis(res, base, rawMin, rawMax float32) Axis {
	cellCentre := func(v float32) float32 {
		return base + res*roundHalfAwayFromZero((v-base)/res)
	}

	min := cellCentre(rawMin)
	max := cellCentre(rawMax)
	n := int(roundHalfAwayFromZero((max-min)/res)) + 1

	return Axis{
		Res:       res,
		Base:      base,
		Min:       min,
		Max:       max,
		N:         n,
		BorderMin: min - res/2,
		BorderMax: max + res/2,
	}
}

// Index returns the nearest cell index for v: round((v - min) / res).
func (a Axis) Index(v float32) int {
	return int(roundHalfAwayFromZero((v - a.Min) / a.Res))
}

// IndexFraction returns the real-valued cell position (v - min) / res.
func (a Axis) IndexFraction(v float32) float32 {
	return (v - a.Min) / a.Res
}

// Value returns the cell-centre coordinate for integer index i.
func (a Axis) Value(i int) float32 {
	return a.Min + a.Res*float32(i)
}

// GrdValue snaps v to the coordinate of its containing cell.
func (a Axis) GrdValue(v float32) float32 {
	return a.Value(a.Index(v))
}

// Coordinates returns every cell-centre coordinate on this axis.
func (a Axis) Coordinates() []float32 {
	out := make([]float32, a.N)
	for i := range out {
		out[i] = a.Value(i)
	}
	return out
}

func (a Axis) inBounds(i int) bool {
	return i >= 0 && i < a.N
}

func isFinite32(v float32) bool {
	return !math.IsNaN(float64(v)) && !math.IsInf(float64(v), 0)
}

// getMinMax1 returns [min, max] of xs; EmptyInput if xs is empty. Not
// NaN-aware, matching the geometric-primitives minmax contract (as
// distinct from the NaN-aware heuristics in ComputeResampledCoordinates).
func getMinMax1(xs []float32) (lo, hi float32, err error) {
	if len(xs) == 0 {
		return 0, 0, &sonargeo.EmptyInput{Op: "get_minmax"}
	}
	lo, hi = xs[0], xs[0]
	for _, v := range xs[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi, nil
}
