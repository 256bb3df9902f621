package gridstore

import (
	"errors"

	tiledb "github.com/TileDB-Inc/TileDB-Go"
)

// wciAttrs is the on-disk attribute layout for a corrected water-column
// image: amplitude plus the per-sample range coordinate, both dense over
// the (beam, sample) domain.
type wciAttrs struct {
	Amplitude []float32 `tiledb:"dtype=float32,ftype=attr" filters:"zstd(level=16)"`
	RangeM    []float32 `tiledb:"dtype=float32,ftype=attr" filters:"zstd(level=16)"`
}

// CreateWciArray creates a dense 2-D TileDB array of shape (nBeams,
// nSamples) with "Amplitude"/"RangeM" attributes.
func CreateWciArray(ctx *tiledb.Context, uri string, nBeams, nSamples uint64) error {
	domain, err := newDenseDomain(ctx, []string{"beam", "sample"}, []uint64{nBeams, nSamples})
	if err != nil {
		return err
	}
	defer domain.Free()

	schema, err := newDenseSchema(ctx, domain, &wciAttrs{})
	if err != nil {
		return err
	}
	defer schema.Free()

	if err := schema.Check(); err != nil {
		return errors.Join(ErrCreateWciTdb, err)
	}

	array, err := tiledb.NewArray(ctx, uri)
	if err != nil {
		return errors.Join(ErrCreateWciTdb, err)
	}
	defer array.Free()

	if err := array.Create(schema); err != nil {
		return errors.Join(ErrCreateWciTdb, err)
	}

	return nil
}

// WriteWciImage writes a corrected water-column image's flattened
// amplitude and per-sample range buffers. rangeM is broadcast across
// beams by the caller before flattening, matching the ranges() output
// shape used throughout the amplitude package.
func WriteWciImage(ctx *tiledb.Context, uri string, amplitude, rangeM []float32) error {
	if len(amplitude) != len(rangeM) {
		return errors.Join(ErrWriteWciTdb, errors.New("amplitude/range length mismatch"))
	}

	array, err := ArrayOpen(ctx, uri, tiledb.TILEDB_WRITE)
	if err != nil {
		return errors.Join(ErrWriteWciTdb, err)
	}
	defer array.Free()
	defer array.Close()

	query, err := tiledb.NewQuery(ctx, array)
	if err != nil {
		return errors.Join(ErrWriteWciTdb, err)
	}
	defer query.Free()

	if err := query.SetLayout(tiledb.TILEDB_ROW_MAJOR); err != nil {
		return errors.Join(ErrWriteWciTdb, err)
	}

	payload := &wciAttrs{Amplitude: amplitude, RangeM: rangeM}
	if err := setStructFieldBuffers(query, payload); err != nil {
		return errors.Join(ErrWriteWciTdb, err)
	}

	if err := query.Submit(); err != nil {
		return errors.Join(ErrWriteWciTdb, err)
	}

	return nil
}

// ReadWciImage reads back the full amplitude/range buffers of a dense
// WCI array holding n total cells.
func ReadWciImage(ctx *tiledb.Context, uri string, n uint64) (amplitude, rangeM []float32, err error) {
	array, err := ArrayOpen(ctx, uri, tiledb.TILEDB_READ)
	if err != nil {
		return nil, nil, errors.Join(ErrWriteWciTdb, err)
	}
	defer array.Free()
	defer array.Close()

	query, err := tiledb.NewQuery(ctx, array)
	if err != nil {
		return nil, nil, errors.Join(ErrWriteWciTdb, err)
	}
	defer query.Free()

	if err := query.SetLayout(tiledb.TILEDB_ROW_MAJOR); err != nil {
		return nil, nil, errors.Join(ErrWriteWciTdb, err)
	}

	amplitude = make([]float32, n)
	rangeM = make([]float32, n)

	if _, err := query.SetDataBuffer("Amplitude", amplitude); err != nil {
		return nil, nil, errors.Join(ErrWriteWciTdb, err)
	}
	if _, err := query.SetDataBuffer("RangeM", rangeM); err != nil {
		return nil, nil, errors.Join(ErrWriteWciTdb, err)
	}

	if err := query.Submit(); err != nil {
		return nil, nil, errors.Join(ErrWriteWciTdb, err)
	}

	return amplitude, rangeM, nil
}
