package gridstore

import (
	"errors"
	"reflect"

	tiledb "github.com/TileDB-Inc/TileDB-Go"
	stgpsr "github.com/yuin/stagparser"
)

// BuildSchemaAttrs walks the exported fields of s via reflection and
// attaches one TileDB attribute per field tagged `ftype=attr`, configured
// by its `tiledb` and `filters` struct tags. Fields tagged `ftype=dim`
// are skipped; they are expected to already be part of the array's
// domain. This generalises the teacher's per-struct `schemaAttrs` method
// (see the svp/ping records in the teacher repo) into a single reusable
// helper, since every gridstore payload (grid images, WCI tensors) needs
// the same struct-tag-driven attribute construction.
func BuildSchemaAttrs(s any, schema *tiledb.ArraySchema, ctx *tiledb.Context) error {
	var (
		field_tdb_defs map[string]stgpsr.Definition
		def            stgpsr.Definition
		status         bool
	)

	values := reflect.ValueOf(s).Elem()
	types := values.Type()
	filt_defs, _ := stgpsr.ParseStruct(s, "filters")
	tdb_defs, _ := stgpsr.ParseStruct(s, "tiledb")

	for i := 0; i < values.NumField(); i++ {
		name := types.Field(i).Name
		field_filt_defs := filt_defs[name]

		field_tdb_defs = make(map[string]stgpsr.Definition)
		for _, v := range tdb_defs[name] {
			field_tdb_defs[v.Name()] = v
		}

		def, status = field_tdb_defs["ftype"]
		if !status {
			return errors.Join(ErrCreateAttributeTdb, errors.New("ftype tag not found for field "+name))
		}
		ftype, _ := def.Attribute("ftype")
		if ftype == "dim" {
			continue
		}

		if err := CreateAttr(name, field_filt_defs, field_tdb_defs, schema, ctx); err != nil {
			return errors.Join(ErrCreateAttributeTdb, err)
		}
	}

	return nil
}

// newDenseDomain builds an N-dimensional dense domain with one
// TILEDB_UINT64 dimension per axis extent, using a positive-delta plus
// zstandard filter pipeline on each dimension, mirroring the teacher's
// svp/ping row-dimension filter setup.
func newDenseDomain(ctx *tiledb.Context, axis_names []string, extents []uint64) (*tiledb.Domain, error) {
	domain, err := tiledb.NewDomain(ctx)
	if err != nil {
		return nil, errors.Join(ErrCreateDimTdb, err)
	}

	for i, extent := range extents {
		if extent == 0 {
			domain.Free()
			return nil, errors.Join(ErrCreateDimTdb, errors.New("zero-length axis"))
		}

		dim, err := tiledb.NewDimension(ctx, axis_names[i], tiledb.TILEDB_UINT64, []uint64{0, extent - 1}, extent)
		if err != nil {
			domain.Free()
			return nil, errors.Join(ErrCreateDimTdb, err)
		}

		dim_filters, err := tiledb.NewFilterList(ctx)
		if err != nil {
			dim.Free()
			domain.Free()
			return nil, errors.Join(ErrCreateDimTdb, err)
		}

		dd_filt, err := tiledb.NewFilter(ctx, tiledb.TILEDB_FILTER_POSITIVE_DELTA)
		if err != nil {
			dim_filters.Free()
			dim.Free()
			domain.Free()
			return nil, errors.Join(ErrCreateDimTdb, err)
		}

		zstd_filt, err := ZstdFilter(ctx, int32(16))
		if err != nil {
			dd_filt.Free()
			dim_filters.Free()
			dim.Free()
			domain.Free()
			return nil, errors.Join(ErrCreateDimTdb, err)
		}

		if err := AddFilters(dim_filters, dd_filt, zstd_filt); err != nil {
			return nil, errors.Join(ErrCreateDimTdb, err)
		}

		if err := dim.SetFilterList(dim_filters); err != nil {
			return nil, errors.Join(ErrCreateDimTdb, err)
		}

		if err := domain.AddDimensions(dim); err != nil {
			return nil, errors.Join(ErrCreateDimTdb, err)
		}
	}

	return domain, nil
}

// newDenseSchema wires a domain into a row-major dense array schema and
// attaches attrs via BuildSchemaAttrs, following the cell/tile ordering
// choice made throughout the teacher's tiledb-writing code.
func newDenseSchema(ctx *tiledb.Context, domain *tiledb.Domain, attrs any) (*tiledb.ArraySchema, error) {
	schema, err := tiledb.NewArraySchema(ctx, tiledb.TILEDB_DENSE)
	if err != nil {
		return nil, errors.Join(ErrCreateSchemaTdb, err)
	}

	if err := schema.SetDomain(domain); err != nil {
		schema.Free()
		return nil, errors.Join(ErrCreateSchemaTdb, err)
	}

	if err := schema.SetCellOrder(tiledb.TILEDB_ROW_MAJOR); err != nil {
		schema.Free()
		return nil, errors.Join(ErrCreateSchemaTdb, err)
	}

	if err := schema.SetTileOrder(tiledb.TILEDB_ROW_MAJOR); err != nil {
		schema.Free()
		return nil, errors.Join(ErrCreateSchemaTdb, err)
	}

	if err := BuildSchemaAttrs(attrs, schema, ctx); err != nil {
		schema.Free()
		return nil, err
	}

	return schema, nil
}
