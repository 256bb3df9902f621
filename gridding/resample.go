package gridding

import (
	"math"

	"github.com/sixy6e/go-sonargeo"
	"github.com/sixy6e/go-sonargeo/internal/stats"
)

// finiteOnly filters out non-finite entries; used because
// compute_resampled_coordinates only considers finite min/max/res
// entries, unlike the geometric-primitives getMinMax1.
func finiteOnly(xs []float32) []float32 {
	out := make([]float32, 0, len(xs))
	for _, v := range xs {
		if isFinite32(v) {
			out = append(out, v)
		}
	}
	return out
}

func sliceMin(xs []float32) float32 {
	m := xs[0]
	for _, v := range xs[1:] {
		if v < m {
			m = v
		}
	}
	return m
}

func sliceMax(xs []float32) float32 {
	m := xs[0]
	for _, v := range xs[1:] {
		if v > m {
			m = v
		}
	}
	return m
}

func arange(start, stop, step float32) []float32 {
	if step <= 0 {
		return nil
	}
	n := int(math.Ceil(float64((stop - start) / step)))
	if n <= 0 {
		return nil
	}
	out := make([]float32, n)
	for i := range out {
		out[i] = start + step*float32(i)
	}
	return out
}

func linspace(start, stop float32, n int) []float32 {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []float32{start}
	}
	out := make([]float32, n)
	step := (stop - start) / float32(n-1)
	for i := range out {
		out[i] = start + step*float32(i)
	}
	return out
}

// ComputeResampledCoordinates builds a 1-D axis coordinate array from a
// collection of candidate per-swath min/max/res triples, falling back to
// robust IQR-trimmed heuristics wherever an explicit grid bound is not
// finite, and capping the result at maxSteps via linspace. NaN/Inf
// entries in values_min/max/res are discarded before any statistic is
// computed — the one place in this package where minmax-style reduction
// is explicitly NaN-aware.
func ComputeResampledCoordinates(valuesMin, valuesMax, valuesRes []float32, gridMin, gridMax float32, maxSteps int) ([]float32, error) {
	if maxSteps <= 0 {
		maxSteps = 1024
	}

	mins := finiteOnly(valuesMin)
	maxs := finiteOnly(valuesMax)
	resList := finiteOnly(valuesRes)
	if len(mins) == 0 || len(maxs) == 0 || len(resList) == 0 {
		return nil, &sonargeo.EmptyInput{Op: "compute_resampled_coordinates"}
	}

	var heuristicMin float32
	if isFinite32(gridMin) {
		heuristicMin = gridMin
	} else {
		heuristicMin = float32(stats.Median(mins)) - 1.5*float32(stats.IQR(mins))
	}

	var heuristicMax float32
	if isFinite32(gridMax) {
		heuristicMax = gridMax
	} else {
		// Mirror of the heuristic_min formula (median + 1.5*IQR, applied
		// to values_max): step 3 then takes min(raw_max, heuristic_max),
		// so this acts as an outlier-trimming ceiling above the bulk.
		heuristicMax = float32(stats.Median(maxs)) + 1.5*float32(stats.IQR(maxs))
	}

	heuristicRes := float32(stats.Median(resList)) - 1.5*float32(stats.IQR(resList))

	res := sliceMin(resList)
	if heuristicRes > res {
		res = heuristicRes
	}

	yMin := sliceMin(mins)
	if heuristicMin > yMin {
		yMin = heuristicMin
	}

	yMax := sliceMax(maxs)
	if heuristicMax < yMax {
		yMax = heuristicMax
	}

	if res <= 0 || yMax < yMin {
		return nil, &sonargeo.InvalidArgument{Name: "res", Value: res}
	}

	coords := arange(yMin, yMax+res, res)
	if len(coords) > maxSteps {
		return linspace(yMin, yMax, maxSteps), nil
	}
	return coords, nil
}
