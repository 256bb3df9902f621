package gridstore

import (
	"errors"

	tiledb "github.com/TileDB-Inc/TileDB-Go"
)

// gridAttrs is the on-disk attribute layout for a forward-gridded image:
// a values buffer and a weights buffer, both dense float32 arrays over
// the same domain. Tags drive BuildSchemaAttrs/CreateAttr exactly as the
// teacher's per-sensor record types do.
type gridAttrs struct {
	Values  []float32 `tiledb:"dtype=float32,ftype=attr" filters:"zstd(level=16)"`
	Weights []float32 `tiledb:"dtype=float32,ftype=attr" filters:"zstd(level=16)"`
}

// CreateGridArray1D creates a dense 1-D TileDB array of shape (n) with a
// "values"/"weights" attribute pair, per ForwardGridder1D's output shape.
func CreateGridArray1D(ctx *tiledb.Context, uri string, n uint64) error {
	return createGridArray(ctx, uri, []string{"x"}, []uint64{n})
}

// CreateGridArray2D creates a dense 2-D TileDB array of shape (ny, nx).
func CreateGridArray2D(ctx *tiledb.Context, uri string, ny, nx uint64) error {
	return createGridArray(ctx, uri, []string{"y", "x"}, []uint64{ny, nx})
}

// CreateGridArray3D creates a dense 3-D TileDB array of shape (nz, ny, nx).
func CreateGridArray3D(ctx *tiledb.Context, uri string, nz, ny, nx uint64) error {
	return createGridArray(ctx, uri, []string{"z", "y", "x"}, []uint64{nz, ny, nx})
}

func createGridArray(ctx *tiledb.Context, uri string, axisNames []string, extents []uint64) error {
	domain, err := newDenseDomain(ctx, axisNames, extents)
	if err != nil {
		return err
	}
	defer domain.Free()

	schema, err := newDenseSchema(ctx, domain, &gridAttrs{})
	if err != nil {
		return err
	}
	defer schema.Free()

	if err := schema.Check(); err != nil {
		return errors.Join(ErrCreateGridTdb, err)
	}

	array, err := tiledb.NewArray(ctx, uri)
	if err != nil {
		return errors.Join(ErrCreateGridTdb, err)
	}
	defer array.Free()

	if err := array.Create(schema); err != nil {
		return errors.Join(ErrCreateGridTdb, err)
	}

	return nil
}

// WriteGridImage writes a grid's flattened values/weights buffers to an
// already-created dense array. The caller flattens its row-major
// Tensor1D/2D/3D data before calling this; gridstore itself stays
// rank-agnostic and only ever sees flat buffers plus a schema.
func WriteGridImage(ctx *tiledb.Context, uri string, values, weights []float32) error {
	if len(values) != len(weights) {
		return errors.Join(ErrWriteGridTdb, errors.New("values/weights length mismatch"))
	}

	array, err := ArrayOpen(ctx, uri, tiledb.TILEDB_WRITE)
	if err != nil {
		return errors.Join(ErrWriteGridTdb, err)
	}
	defer array.Free()
	defer array.Close()

	query, err := tiledb.NewQuery(ctx, array)
	if err != nil {
		return errors.Join(ErrWriteGridTdb, err)
	}
	defer query.Free()

	if err := query.SetLayout(tiledb.TILEDB_ROW_MAJOR); err != nil {
		return errors.Join(ErrWriteGridTdb, err)
	}

	payload := &gridAttrs{Values: values, Weights: weights}
	if err := setStructFieldBuffers(query, payload); err != nil {
		return errors.Join(ErrWriteGridTdb, err)
	}

	if err := query.Submit(); err != nil {
		return errors.Join(ErrWriteGridTdb, err)
	}

	return nil
}

// ReadGridImage reads back the full values/weights buffers of a dense
// grid array of the given total element count.
func ReadGridImage(ctx *tiledb.Context, uri string, n uint64) (values, weights []float32, err error) {
	array, err := ArrayOpen(ctx, uri, tiledb.TILEDB_READ)
	if err != nil {
		return nil, nil, errors.Join(ErrWriteGridTdb, err)
	}
	defer array.Free()
	defer array.Close()

	query, err := tiledb.NewQuery(ctx, array)
	if err != nil {
		return nil, nil, errors.Join(ErrWriteGridTdb, err)
	}
	defer query.Free()

	if err := query.SetLayout(tiledb.TILEDB_ROW_MAJOR); err != nil {
		return nil, nil, errors.Join(ErrWriteGridTdb, err)
	}

	values = make([]float32, n)
	weights = make([]float32, n)

	if _, err := query.SetDataBuffer("Values", values); err != nil {
		return nil, nil, errors.Join(ErrWriteGridTdb, err)
	}
	if _, err := query.SetDataBuffer("Weights", weights); err != nil {
		return nil, nil, errors.Join(ErrWriteGridTdb, err)
	}

	if err := query.Submit(); err != nil {
		return nil, nil, errors.Join(ErrWriteGridTdb, err)
	}

	return values, weights, nil
}
