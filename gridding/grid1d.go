package gridding

import "github.com/sixy6e/go-sonargeo"

// ForwardGridder1D deposits scattered (x, v) samples into a uniform 1-D
// grid.
type ForwardGridder1D struct {
	X Axis
}

// NewForwardGridder1DFromData builds a gridder whose range covers xs.
func NewForwardGridder1DFromData(xs []float32, res, base float32) (*ForwardGridder1D, error) {
	lo, hi, err := getMinMax1(xs)
	if err != nil {
		return nil, err
	}
	return NewForwardGridder1DFromRange(lo, hi, res, base), nil
}

// NewForwardGridder1DFromRange builds a gridder from an explicit raw
// [min, max] range.
func NewForwardGridder1DFromRange(rawMin, rawMax, res, base float32) *ForwardGridder1D {
	return &ForwardGridder1D{X: newAxis(res, base, rawMin, rawMax)}
}

func (g *ForwardGridder1D) GetNx() int           { return g.X.N }
func (g *ForwardGridder1D) GetXRes() float32     { return g.X.Res }
func (g *ForwardGridder1D) GetXMin() float32     { return g.X.Min }
func (g *ForwardGridder1D) GetXMax() float32     { return g.X.Max }
func (g *ForwardGridder1D) GetXBase() float32    { return g.X.Base }
func (g *ForwardGridder1D) GetBorderXMin() float32 { return g.X.BorderMin }
func (g *ForwardGridder1D) GetBorderXMax() float32 { return g.X.BorderMax }

func (g *ForwardGridder1D) GetXIndex(v float32) int            { return g.X.Index(v) }
func (g *ForwardGridder1D) GetXIndexFraction(v float32) float32 { return g.X.IndexFraction(v) }
func (g *ForwardGridder1D) GetXValue(i int) float32            { return g.X.Value(i) }
func (g *ForwardGridder1D) GetXGrdValue(v float32) float32     { return g.X.GrdValue(v) }
func (g *ForwardGridder1D) GetXCoordinates() []float32         { return g.X.Coordinates() }

// GetExtentX returns [border_min, border_max] for the x axis.
func (g *ForwardGridder1D) GetExtentX() [2]float32 {
	return [2]float32{g.X.BorderMin, g.X.BorderMax}
}

// GetExtent dispatches to the axis named by a single character ('x'),
// failing with InvalidArgument on anything else, per the supplemented
// get_extent(axis) helper.
func (g *ForwardGridder1D) GetExtent(axis string) ([2]float32, error) {
	if axis == "x" {
		return g.GetExtentX(), nil
	}
	return [2]float32{}, &sonargeo.InvalidArgument{Name: "axis", Value: axis}
}

// GetEmptyGrdImages allocates zero-valued (values, weights) images of
// shape (nx).
func (g *ForwardGridder1D) GetEmptyGrdImages() (values, weights sonargeo.Tensor1D[float32]) {
	return sonargeo.NewTensor1D[float32](g.X.N), sonargeo.NewTensor1D[float32](g.X.N)
}

// InterpolateBlockMeanInplace accumulates every finite-valued, in-grid
// (x[i], v[i]) pair into its nearest cell: values[i] += v, weights[i] +=
// 1. Callers finish the mean themselves (values / weights) once all
// accumulation passes are done, matching the in-place accumulation
// contract.
func (g *ForwardGridder1D) InterpolateBlockMeanInplace(xs, vs []float32, values, weights sonargeo.Tensor1D[float32]) error {
	if len(xs) != len(vs) {
		return &sonargeo.LengthMismatch{A: len(xs), B: len(vs)}
	}
	for i, v := range vs {
		if !isFinite32(v) {
			continue
		}
		ix := g.X.Index(xs[i])
		if !g.X.inBounds(ix) {
			continue
		}
		values.Set(ix, values.At(ix)+v)
		weights.Set(ix, weights.At(ix)+1)
	}
	return nil
}

// InterpolateBlockMean allocates fresh images and accumulates into them.
func (g *ForwardGridder1D) InterpolateBlockMean(xs, vs []float32) (values, weights sonargeo.Tensor1D[float32], err error) {
	values, weights = g.GetEmptyGrdImages()
	err = g.InterpolateBlockMeanInplace(xs, vs, values, weights)
	return
}

// InterpolateWeightedMeanInplace splats every finite-valued, in-grid
// (x[i], v[i]) pair across its two surrounding cells using the standard
// linear hat weights; a point exactly on a cell centre collapses to
// block-mean (all weight on that one cell).
func (g *ForwardGridder1D) InterpolateWeightedMeanInplace(xs, vs []float32, values, weights sonargeo.Tensor1D[float32]) error {
	if len(xs) != len(vs) {
		return &sonargeo.LengthMismatch{A: len(xs), B: len(vs)}
	}
	for i, v := range vs {
		if !isFinite32(v) {
			continue
		}
		f := g.X.IndexFraction(xs[i])
		i0 := int(floorFloat32(f))
		frac := f - floorFloat32(f)

		for _, nb := range [2]struct {
			idx int
			w   float32
		}{
			{i0, 1 - frac},
			{i0 + 1, frac},
		} {
			if nb.w == 0 || !g.X.inBounds(nb.idx) {
				continue
			}
			values.Set(nb.idx, values.At(nb.idx)+v*nb.w)
			weights.Set(nb.idx, weights.At(nb.idx)+nb.w)
		}
	}
	return nil
}

// InterpolateWeightedMean allocates fresh images and accumulates into them.
func (g *ForwardGridder1D) InterpolateWeightedMean(xs, vs []float32) (values, weights sonargeo.Tensor1D[float32], err error) {
	values, weights = g.GetEmptyGrdImages()
	err = g.InterpolateWeightedMeanInplace(xs, vs, values, weights)
	return
}

func floorFloat32(v float32) float32 {
	f := v
	i := int(f)
	if f < 0 && float32(i) != f {
		i--
	}
	return float32(i)
}
