package gridding

import "github.com/sixy6e/go-sonargeo"

// ForwardGridder3D deposits scattered (x, y, z, v) samples into a
// uniform 3-D grid, row-major over (z, y, x) matching Tensor3D.
type ForwardGridder3D struct {
	X Axis
	Y Axis
	Z Axis
}

func NewForwardGridder3DFromData(xs, ys, zs []float32, resX, baseX, resY, baseY, resZ, baseZ float32) (*ForwardGridder3D, error) {
	xlo, xhi, err := getMinMax1(xs)
	if err != nil {
		return nil, err
	}
	ylo, yhi, err := getMinMax1(ys)
	if err != nil {
		return nil, err
	}
	zlo, zhi, err := getMinMax1(zs)
	if err != nil {
		return nil, err
	}
	return NewForwardGridder3DFromRange(xlo, xhi, resX, baseX, ylo, yhi, resY, baseY, zlo, zhi, resZ, baseZ), nil
}

func NewForwardGridder3DFromRange(xMin, xMax, resX, baseX, yMin, yMax, resY, baseY, zMin, zMax, resZ, baseZ float32) *ForwardGridder3D {
	return &ForwardGridder3D{
		X: newAxis(resX, baseX, xMin, xMax),
		Y: newAxis(resY, baseY, yMin, yMax),
		Z: newAxis(resZ, baseZ, zMin, zMax),
	}
}

func (g *ForwardGridder3D) GetNx() int { return g.X.N }
func (g *ForwardGridder3D) GetNy() int { return g.Y.N }
func (g *ForwardGridder3D) GetNz() int { return g.Z.N }

func (g *ForwardGridder3D) GetExtent(axis string) ([2]float32, error) {
	switch axis {
	case "x":
		return [2]float32{g.X.BorderMin, g.X.BorderMax}, nil
	case "y":
		return [2]float32{g.Y.BorderMin, g.Y.BorderMax}, nil
	case "z":
		return [2]float32{g.Z.BorderMin, g.Z.BorderMax}, nil
	default:
		return [2]float32{}, &sonargeo.InvalidArgument{Name: "axis", Value: axis}
	}
}

func (g *ForwardGridder3D) GetCoordinates() map[string][]float32 {
	return map[string][]float32{"x": g.X.Coordinates(), "y": g.Y.Coordinates(), "z": g.Z.Coordinates()}
}

// GetEmptyGrdImages allocates zero-valued (values, weights) volumes of
// shape (nz, ny, nx).
func (g *ForwardGridder3D) GetEmptyGrdImages() (values, weights sonargeo.Tensor3D[float32]) {
	return sonargeo.NewTensor3D[float32](g.Z.N, g.Y.N, g.X.N), sonargeo.NewTensor3D[float32](g.Z.N, g.Y.N, g.X.N)
}

func (g *ForwardGridder3D) InterpolateBlockMeanInplace(xs, ys, zs, vs []float32, values, weights sonargeo.Tensor3D[float32]) error {
	if len(xs) != len(vs) || len(ys) != len(vs) || len(zs) != len(vs) {
		return &sonargeo.LengthMismatch{A: len(xs), B: len(vs)}
	}
	for i, v := range vs {
		if !isFinite32(v) {
			continue
		}
		ix, iy, iz := g.X.Index(xs[i]), g.Y.Index(ys[i]), g.Z.Index(zs[i])
		if !g.X.inBounds(ix) || !g.Y.inBounds(iy) || !g.Z.inBounds(iz) {
			continue
		}
		values.Set(iz, iy, ix, values.At(iz, iy, ix)+v)
		weights.Set(iz, iy, ix, weights.At(iz, iy, ix)+1)
	}
	return nil
}

func (g *ForwardGridder3D) InterpolateBlockMean(xs, ys, zs, vs []float32) (values, weights sonargeo.Tensor3D[float32], err error) {
	values, weights = g.GetEmptyGrdImages()
	err = g.InterpolateBlockMeanInplace(xs, ys, zs, vs, values, weights)
	return
}

// InterpolateWeightedMeanInplace splats every finite, in-grid sample
// across its eight surrounding voxels using trilinear weights.
func (g *ForwardGridder3D) InterpolateWeightedMeanInplace(xs, ys, zs, vs []float32, values, weights sonargeo.Tensor3D[float32]) error {
	if len(xs) != len(vs) || len(ys) != len(vs) || len(zs) != len(vs) {
		return &sonargeo.LengthMismatch{A: len(xs), B: len(vs)}
	}
	for i, v := range vs {
		if !isFinite32(v) {
			continue
		}
		fx := g.X.IndexFraction(xs[i])
		fy := g.Y.IndexFraction(ys[i])
		fz := g.Z.IndexFraction(zs[i])
		ix0 := int(floorFloat32(fx))
		iy0 := int(floorFloat32(fy))
		iz0 := int(floorFloat32(fz))
		fracX := fx - floorFloat32(fx)
		fracY := fy - floorFloat32(fy)
		fracZ := fz - floorFloat32(fz)

		type voxel struct {
			ix, iy, iz int
			w          float32
		}
		voxels := [8]voxel{
			{ix0, iy0, iz0, (1 - fracX) * (1 - fracY) * (1 - fracZ)},
			{ix0 + 1, iy0, iz0, fracX * (1 - fracY) * (1 - fracZ)},
			{ix0, iy0 + 1, iz0, (1 - fracX) * fracY * (1 - fracZ)},
			{ix0 + 1, iy0 + 1, iz0, fracX * fracY * (1 - fracZ)},
			{ix0, iy0, iz0 + 1, (1 - fracX) * (1 - fracY) * fracZ},
			{ix0 + 1, iy0, iz0 + 1, fracX * (1 - fracY) * fracZ},
			{ix0, iy0 + 1, iz0 + 1, (1 - fracX) * fracY * fracZ},
			{ix0 + 1, iy0 + 1, iz0 + 1, fracX * fracY * fracZ},
		}
		for _, c := range voxels {
			if c.w == 0 || !g.X.inBounds(c.ix) || !g.Y.inBounds(c.iy) || !g.Z.inBounds(c.iz) {
				continue
			}
			values.Set(c.iz, c.iy, c.ix, values.At(c.iz, c.iy, c.ix)+v*c.w)
			weights.Set(c.iz, c.iy, c.ix, weights.At(c.iz, c.iy, c.ix)+c.w)
		}
	}
	return nil
}

func (g *ForwardGridder3D) InterpolateWeightedMean(xs, ys, zs, vs []float32) (values, weights sonargeo.Tensor3D[float32], err error) {
	values, weights = g.GetEmptyGrdImages()
	err = g.InterpolateWeightedMeanInplace(xs, ys, zs, vs, values, weights)
	return
}
