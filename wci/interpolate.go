// Package wci implements interpolated water-column-image lookup (C5):
// resolving a backtraced (angle, range) pair to a (beam, sample) cell in
// a beam×sample amplitude tensor, grounded on
// original_source/.../geoprocessing/backtracers/backtracedwci.hpp.
package wci

import "sort"

// NearestInterpolator maps a query value to the y belonging to the
// nearest x, via binary search over a pre-sorted xs array. It is a pure
// function with no mutable iterator cache, so concurrent queries from
// multiple workers are safe — see the "interpolator thread-safety"
// design note.
type NearestInterpolator struct {
	xs []float32
	ys []uint16
}

// NewNearestInterpolator builds an interpolator over xs (must already be
// sorted ascending) and their paired ys.
func NewNearestInterpolator(xs []float32, ys []uint16) NearestInterpolator {
	return NearestInterpolator{xs: xs, ys: ys}
}

// At returns the y of the x nearest to query.
func (n NearestInterpolator) At(query float32) uint16 {
	i := sort.Search(len(n.xs), func(i int) bool { return n.xs[i] >= query })

	if i == 0 {
		return n.ys[0]
	}
	if i == len(n.xs) {
		return n.ys[len(n.ys)-1]
	}

	below := n.xs[i-1]
	above := n.xs[i]
	if query-below <= above-query {
		return n.ys[i-1]
	}
	return n.ys[i]
}

// LinearInterpolator maps a query value to a linearly-interpolated (or
// extrapolated) y, via binary search over a pre-sorted xs array. Pure
// function, no mutable state.
type LinearInterpolator struct {
	xs []float32
	ys []float32
}

// NewLinearInterpolator builds an interpolator over xs (sorted ascending,
// at least two points) and their paired ys.
func NewLinearInterpolator(xs, ys []float32) LinearInterpolator {
	return LinearInterpolator{xs: xs, ys: ys}
}

// At linearly interpolates (or extrapolates, for queries outside the
// bracketing range) the y for query.
func (l LinearInterpolator) At(query float32) float32 {
	n := len(l.xs)
	i := sort.Search(n, func(i int) bool { return l.xs[i] >= query })

	var lo, hi int
	switch {
	case i == 0:
		lo, hi = 0, 1
	case i == n:
		lo, hi = n-2, n-1
	default:
		lo, hi = i-1, i
	}

	x0, x1 := l.xs[lo], l.xs[hi]
	y0, y1 := l.ys[lo], l.ys[hi]
	if x1 == x0 {
		return y0
	}

	frac := (query - x0) / (x1 - x0)
	return y0 + frac*(y1-y0)
}
