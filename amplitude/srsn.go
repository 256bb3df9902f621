package amplitude

import (
	"github.com/sixy6e/go-sonargeo"
	"github.com/sixy6e/go-sonargeo/internal/parallel"
	"github.com/sixy6e/go-sonargeo/internal/stats"
)

// PerSampleStat selects the NaN-aware across-beam reduction SRSN uses to
// build its per-sample statistic.
type PerSampleStat int

const (
	PerSampleMean PerSampleStat = iota
	PerSampleMedian
)

// column returns the B values of column s across all beams.
func column(wci sonargeo.Tensor2D[float32], s int) []float32 {
	rows := wci.Rows()
	out := make([]float32, rows)
	for b := 0; b < rows; b++ {
		out[b] = wci.At(b, s)
	}
	return out
}

// ComputeNanmeanAcrossBeams returns, for each sample column, the
// NaN-aware mean across beams. Parallel over samples.
func ComputeNanmeanAcrossBeams(wci sonargeo.Tensor2D[float32], cores int) []float32 {
	cols := wci.Cols()
	out := make([]float32, cols)
	parallel.For(cols, cores, func(s int) {
		out[s] = stats.NanMean(column(wci, s))
	})
	return out
}

// ComputeNanmedianAcrossBeams returns, for each sample column, the
// NaN-aware median across beams (average of the two middle order
// statistics for an even finite count). Parallel over samples.
func ComputeNanmedianAcrossBeams(wci sonargeo.Tensor2D[float32], cores int) []float32 {
	cols := wci.Cols()
	out := make([]float32, cols)
	parallel.For(cols, cores, func(s int) {
		out[s] = stats.NanMedian(column(wci, s))
	})
	return out
}

// ComputeReferenceNanmean returns the NaN-aware mean of a clean
// water-column sub-region, flattened.
func ComputeReferenceNanmean(region []float32) float32 {
	return stats.NanMean(region)
}

// ComputeReferenceNanpercentile returns the NaN-aware percentile
// (linear-interpolation convention) of a clean water-column sub-region.
// percentile must be in [0, 100].
func ComputeReferenceNanpercentile(region []float32, percentile float64) (float32, error) {
	if percentile < 0 || percentile > 100 {
		return 0, &sonargeo.InvalidArgument{Name: "percentile", Value: percentile}
	}
	return stats.NanPercentile(region, percentile), nil
}

// perSampleStatistic dispatches to the mean or median across-beam
// reduction.
func perSampleStatistic(wci sonargeo.Tensor2D[float32], stat PerSampleStat, cores int) []float32 {
	if stat == PerSampleMedian {
		return ComputeNanmedianAcrossBeams(wci, cores)
	}
	return ComputeNanmeanAcrossBeams(wci, cores)
}

// InplaceSidelobeCorrection mutates wci in place: for every cell,
// wci[b,s] += referenceLevel - per_sample_stat[s]. stat selects mean or
// median for the across-beam per-sample statistic.
func InplaceSidelobeCorrection(wci sonargeo.Tensor2D[float32], stat PerSampleStat, referenceLevel float32, cores int) {
	perSample := perSampleStatistic(wci, stat, cores)

	parallel.For(wci.Rows(), cores, func(b int) {
		row := wci.Row(b)
		for s := range row {
			row[s] += referenceLevel - perSample[s]
		}
	})
}

// ApplySidelobeCorrection is the out-of-place counterpart.
func ApplySidelobeCorrection(wci sonargeo.Tensor2D[float32], stat PerSampleStat, referenceLevel float32, cores int) sonargeo.Tensor2D[float32] {
	out := cloneTensor(wci)
	InplaceSidelobeCorrection(out, stat, referenceLevel, cores)
	return out
}
