package gridding

import "github.com/sixy6e/go-sonargeo"

// ForwardGridder2D deposits scattered (x, y, v) samples into a uniform
// 2-D grid, row-major over (y, x) to match Tensor2D's row-major
// convention.
type ForwardGridder2D struct {
	X Axis
	Y Axis
}

func NewForwardGridder2DFromData(xs, ys []float32, resX, baseX, resY, baseY float32) (*ForwardGridder2D, error) {
	xlo, xhi, err := getMinMax1(xs)
	if err != nil {
		return nil, err
	}
	ylo, yhi, err := getMinMax1(ys)
	if err != nil {
		return nil, err
	}
	return NewForwardGridder2DFromRange(xlo, xhi, resX, baseX, ylo, yhi, resY, baseY), nil
}

func NewForwardGridder2DFromRange(xMin, xMax, resX, baseX, yMin, yMax, resY, baseY float32) *ForwardGridder2D {
	return &ForwardGridder2D{
		X: newAxis(resX, baseX, xMin, xMax),
		Y: newAxis(resY, baseY, yMin, yMax),
	}
}

func (g *ForwardGridder2D) GetNx() int { return g.X.N }
func (g *ForwardGridder2D) GetNy() int { return g.Y.N }

func (g *ForwardGridder2D) GetExtent(axis string) ([2]float32, error) {
	switch axis {
	case "x":
		return [2]float32{g.X.BorderMin, g.X.BorderMax}, nil
	case "y":
		return [2]float32{g.Y.BorderMin, g.Y.BorderMax}, nil
	default:
		return [2]float32{}, &sonargeo.InvalidArgument{Name: "axis", Value: axis}
	}
}

// GetCoordinates returns the per-axis cell-centre coordinates keyed by
// axis name.
func (g *ForwardGridder2D) GetCoordinates() map[string][]float32 {
	return map[string][]float32{"x": g.X.Coordinates(), "y": g.Y.Coordinates()}
}

// GetEmptyGrdImages allocates zero-valued (values, weights) images of
// shape (ny, nx).
func (g *ForwardGridder2D) GetEmptyGrdImages() (values, weights sonargeo.Tensor2D[float32]) {
	return sonargeo.NewTensor2D[float32](g.Y.N, g.X.N), sonargeo.NewTensor2D[float32](g.Y.N, g.X.N)
}

// InterpolateBlockMeanInplace deposits every finite, in-grid (x, y, v)
// triple into its nearest cell.
func (g *ForwardGridder2D) InterpolateBlockMeanInplace(xs, ys, vs []float32, values, weights sonargeo.Tensor2D[float32]) error {
	if len(xs) != len(vs) || len(ys) != len(vs) {
		return &sonargeo.LengthMismatch{A: len(xs), B: len(vs)}
	}
	for i, v := range vs {
		if !isFinite32(v) {
			continue
		}
		ix, iy := g.X.Index(xs[i]), g.Y.Index(ys[i])
		if !g.X.inBounds(ix) || !g.Y.inBounds(iy) {
			continue
		}
		values.Set(iy, ix, values.At(iy, ix)+v)
		weights.Set(iy, ix, weights.At(iy, ix)+1)
	}
	return nil
}

func (g *ForwardGridder2D) InterpolateBlockMean(xs, ys, vs []float32) (values, weights sonargeo.Tensor2D[float32], err error) {
	values, weights = g.GetEmptyGrdImages()
	err = g.InterpolateBlockMeanInplace(xs, ys, vs, values, weights)
	return
}

// InterpolateWeightedMeanInplace splats every finite, in-grid (x, y, v)
// triple across its four surrounding cells using bilinear weights.
func (g *ForwardGridder2D) InterpolateWeightedMeanInplace(xs, ys, vs []float32, values, weights sonargeo.Tensor2D[float32]) error {
	if len(xs) != len(vs) || len(ys) != len(vs) {
		return &sonargeo.LengthMismatch{A: len(xs), B: len(vs)}
	}
	for i, v := range vs {
		if !isFinite32(v) {
			continue
		}
		fx := g.X.IndexFraction(xs[i])
		fy := g.Y.IndexFraction(ys[i])
		ix0 := int(floorFloat32(fx))
		iy0 := int(floorFloat32(fy))
		fracX := fx - floorFloat32(fx)
		fracY := fy - floorFloat32(fy)

		type cell struct {
			ix, iy int
			w      float32
		}
		cells := [4]cell{
			{ix0, iy0, (1 - fracX) * (1 - fracY)},
			{ix0 + 1, iy0, fracX * (1 - fracY)},
			{ix0, iy0 + 1, (1 - fracX) * fracY},
			{ix0 + 1, iy0 + 1, fracX * fracY},
		}
		for _, c := range cells {
			if c.w == 0 || !g.X.inBounds(c.ix) || !g.Y.inBounds(c.iy) {
				continue
			}
			values.Set(c.iy, c.ix, values.At(c.iy, c.ix)+v*c.w)
			weights.Set(c.iy, c.ix, weights.At(c.iy, c.ix)+c.w)
		}
	}
	return nil
}

func (g *ForwardGridder2D) InterpolateWeightedMean(xs, ys, vs []float32) (values, weights sonargeo.Tensor2D[float32], err error) {
	values, weights = g.GetEmptyGrdImages()
	err = g.InterpolateWeightedMeanInplace(xs, ys, vs, values, weights)
	return
}
