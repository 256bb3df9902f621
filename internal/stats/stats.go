// Package stats implements the NaN-aware descriptive statistics this
// module uses: quantiles using the numpy "linear" convention, median, and
// interquartile range, plus NaN-aware mean/median/percentile. Nothing in
// the teacher repo does statistics of this kind. Everything here is
// written against the standard library; gonum's stat.Quantile offers no
// kind that reproduces numpy's "linear" method, so it is not used.
package stats

import (
	"math"
	"sort"
)

// finiteSorted returns a sorted copy of the finite elements of xs.
func finiteSorted(xs []float32) []float64 {
	out := make([]float64, 0, len(xs))
	for _, x := range xs {
		if !math.IsNaN(float64(x)) && !math.IsInf(float64(x), 0) {
			out = append(out, float64(x))
		}
	}
	sort.Float64s(out)
	return out
}

// Quantile computes the p-th quantile (p in [0, 1]) of xs using numpy's
// default "linear" convention: the value at fractional position
// p*(n-1) of the sorted finite elements, interpolated between the two
// bracketing order statistics. Returns NaN if xs has no finite elements.
func Quantile(xs []float32, p float64) float64 {
	sorted := finiteSorted(xs)
	if len(sorted) == 0 {
		return math.NaN()
	}
	if len(sorted) == 1 {
		return sorted[0]
	}
	h := p * float64(len(sorted)-1)
	lo := int(math.Floor(h))
	if lo < 0 {
		return sorted[0]
	}
	if lo >= len(sorted)-1 {
		return sorted[len(sorted)-1]
	}
	return sorted[lo] + (h-float64(lo))*(sorted[lo+1]-sorted[lo])
}

// Median returns the 50th percentile of xs (numpy "linear" convention).
func Median(xs []float32) float64 {
	return Quantile(xs, 0.5)
}

// IQR returns Q75 - Q25 of xs.
func IQR(xs []float32) float64 {
	return Quantile(xs, 0.75) - Quantile(xs, 0.25)
}

// NanMean returns the arithmetic mean of the finite elements of xs, or
// NaN if none are finite.
func NanMean(xs []float32) float32 {
	var sum float64
	n := 0
	for _, x := range xs {
		if !math.IsNaN(float64(x)) && !math.IsInf(float64(x), 0) {
			sum += float64(x)
			n++
		}
	}
	if n == 0 {
		return float32(math.NaN())
	}
	return float32(sum / float64(n))
}

// NanMedian returns the median of the finite elements of xs (average of
// the two middle order statistics when the finite count is even), or NaN
// if none are finite. Mirrors the nth_element-based quickselect median in
// the original C++ wcisidelobecorrection.hpp, expressed here via a full
// sort since this module favours clarity over micro-optimisation at this
// scale.
func NanMedian(xs []float32) float32 {
	sorted := finiteSorted(xs)
	n := len(sorted)
	if n == 0 {
		return float32(math.NaN())
	}
	if n%2 == 1 {
		return float32(sorted[n/2])
	}
	return float32((sorted[n/2-1] + sorted[n/2]) / 2)
}

// NanPercentile returns the p-th percentile (p in [0, 100]) of the finite
// elements of xs using linear interpolation between bracketing order
// statistics (numpy's default "linear" method), or NaN if none are
// finite.
func NanPercentile(xs []float32, p float64) float32 {
	return float32(Quantile(xs, p/100))
}
