// Package sonargeo implements the geometric and signal-processing core of
// a multibeam echo-sounder / water-column-sonar pipeline: raytracing,
// backtracing, water-column-image lookup, amplitude correction and
// forward gridding, over a small family of dense tensor types.
package sonargeo

// Number is the set of element types the dense tensor containers support:
// the two IEEE-754 floating point widths used for geometry/amplitude, and
// the two unsigned integer widths used for beam/sample indices.
type Number interface {
	~float32 | ~float64 | ~uint16 | ~uint32
}

// Tensor1D is a row-major, rank-1 dense container.
type Tensor1D[T Number] struct {
	data []T
}

// NewTensor1D allocates a zero-valued 1-D tensor of length n.
func NewTensor1D[T Number](n int) Tensor1D[T] {
	return Tensor1D[T]{data: make([]T, n)}
}

// Tensor1DFrom wraps an existing slice without copying.
func Tensor1DFrom[T Number](data []T) Tensor1D[T] {
	return Tensor1D[T]{data: data}
}

func (t Tensor1D[T]) Len() int        { return len(t.data) }
func (t Tensor1D[T]) Shape() []int    { return []int{len(t.data)} }
func (t Tensor1D[T]) At(i int) T      { return t.data[i] }
func (t Tensor1D[T]) Set(i int, v T)  { t.data[i] = v }
func (t Tensor1D[T]) Data() []T       { return t.data }
func (t Tensor1D[T]) Slice(a, b int) Tensor1D[T] {
	return Tensor1D[T]{data: t.data[a:b]}
}

// Tensor2D is a row-major, rank-2 dense container: element (r, c) lives at
// data[r*cols+c].
type Tensor2D[T Number] struct {
	data       []T
	rows, cols int
}

// NewTensor2D allocates a zero-valued 2-D tensor of shape (rows, cols).
func NewTensor2D[T Number](rows, cols int) Tensor2D[T] {
	return Tensor2D[T]{data: make([]T, rows*cols), rows: rows, cols: cols}
}

// Tensor2DFrom wraps an existing row-major slice without copying.
func Tensor2DFrom[T Number](data []T, rows, cols int) Tensor2D[T] {
	return Tensor2D[T]{data: data, rows: rows, cols: cols}
}

func (t Tensor2D[T]) Shape() []int { return []int{t.rows, t.cols} }
func (t Tensor2D[T]) Rows() int    { return t.rows }
func (t Tensor2D[T]) Cols() int    { return t.cols }
func (t Tensor2D[T]) Data() []T    { return t.data }

func (t Tensor2D[T]) At(r, c int) T     { return t.data[r*t.cols+c] }
func (t Tensor2D[T]) Set(r, c int, v T) { t.data[r*t.cols+c] = v }

// Row returns the backing slice for row r; mutations through it are
// visible in the tensor (slicing by row, per the container contract).
func (t Tensor2D[T]) Row(r int) []T {
	start := r * t.cols
	return t.data[start : start+t.cols]
}

// Tensor3D is a row-major, rank-3 dense container: element (i, j, k) lives
// at data[(i*d1+j)*d2+k].
type Tensor3D[T Number] struct {
	data           []T
	d0, d1, d2 int
}

// NewTensor3D allocates a zero-valued 3-D tensor of shape (d0, d1, d2).
func NewTensor3D[T Number](d0, d1, d2 int) Tensor3D[T] {
	return Tensor3D[T]{data: make([]T, d0*d1*d2), d0: d0, d1: d1, d2: d2}
}

func (t Tensor3D[T]) Shape() []int { return []int{t.d0, t.d1, t.d2} }
func (t Tensor3D[T]) Data() []T    { return t.data }

func (t Tensor3D[T]) index(i, j, k int) int { return (i*t.d1+j)*t.d2 + k }

func (t Tensor3D[T]) At(i, j, k int) T     { return t.data[t.index(i, j, k)] }
func (t Tensor3D[T]) Set(i, j, k int, v T) { t.data[t.index(i, j, k)] = v }

// Row returns the backing slice for the (i, j) "row" along the last axis.
func (t Tensor3D[T]) Row(i, j int) []T {
	start := t.index(i, j, 0)
	return t.data[start : start+t.d2]
}

func shapeEqual(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
