package gridstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"

	tiledb "github.com/TileDB-Inc/TileDB-Go"
	stgpsr "github.com/yuin/stagparser"
)

// ArrayOpen is a helper func for opening a tiledb array.
func ArrayOpen(ctx *tiledb.Context, uri string, mode tiledb.QueryType) (*tiledb.Array, error) {
	array, err := tiledb.NewArray(ctx, uri)
	if err != nil {
		return nil, err
	}

	err = array.Open(mode)
	if err != nil {
		array.Free()
		return nil, err
	}

	return array, nil
}

// AddFilters sequentially appends compression filters to the filter pipeline list.
func AddFilters(filter_list *tiledb.FilterList, filter ...*tiledb.Filter) error {
	for _, filt := range filter {
		err := filter_list.AddFilter(filt)
		if err != nil {
			return err
		}
	}

	return nil
}

// ZstdFilter initialises the Zstandard compression filter and sets the
// compression level. Every gridstore attribute (grid values/weights, WCI
// amplitude/range) is compressed with this filter alone; the teacher's
// wider filter zoo (gzip/lz4/rle/bzip2/bit-width-reduction) existed for
// per-sensor tuning across a dozen GSF payload shapes that have no
// equivalent here, so it isn't carried over.
func ZstdFilter(ctx *tiledb.Context, level int32) (*tiledb.Filter, error) {
	filt, err := tiledb.NewFilter(ctx, tiledb.TILEDB_FILTER_ZSTD)
	if err != nil {
		return nil, err
	}

	err = filt.SetOption(tiledb.TILEDB_COMPRESSION_LEVEL, level)
	if err != nil {
		filt.Free()
		return nil, err
	}

	return filt, nil
}

// AttachFilters acts as a helper for when setting the same pipeline filter list to
// a bunch of attributes.
func AttachFilters(filter_list *tiledb.FilterList, attrs ...*tiledb.Attribute) error {
	for _, attr := range attrs {
		err := attr.SetFilterList(filter_list)
		if err != nil {
			return err
		}
	}

	return nil
}

// CreateAttr creates a dense float32 TileDB attribute with a zstd
// compression pipeline, configured by the `tiledb`/`filters` struct tags
// BuildSchemaAttrs parses off gridAttrs/wciAttrs. Every attribute this
// package ever creates is a fixed-length float32 array (grid
// values/weights, WCI amplitude/range); unlike the teacher's per-sensor
// CreateAttr, there is no variable-length or non-float32 case to support,
// so this only implements that one path.
// An example tag is `tiledb:"dtype=float32,ftype=attr" filters:"zstd(level=16)"`.
func CreateAttr(
	field_name string,
	filter_defs []stgpsr.Definition,
	tiledb_defs map[string]stgpsr.Definition,
	schema *tiledb.ArraySchema,
	ctx *tiledb.Context,
) error {
	def, status := tiledb_defs["dtype"]
	if !status {
		return errors.Join(ErrCreateAttributeTdb, errors.New("dtype tag not found"))
	}
	dtype, _ := def.Attribute("dtype")
	if dtype != "float32" {
		return errors.Join(ErrDtype, fmt.Errorf("unsupported dtype %v", dtype))
	}

	attr_filts, err := tiledb.NewFilterList(ctx)
	if err != nil {
		return errors.Join(ErrCreateAttributeTdb, err)
	}
	defer attr_filts.Free()

	for _, filter := range filter_defs {
		if filter.Name() != "zstd" {
			continue
		}
		level, status := filter.Attribute("level")
		if !status {
			return errors.Join(ErrCreateAttributeTdb, errors.New("zstd level not defined"))
		}
		filt, err := ZstdFilter(ctx, int32(level.(int64)))
		if err != nil {
			return errors.Join(ErrCreateAttributeTdb, err)
		}
		defer filt.Free()
		if err := attr_filts.AddFilter(filt); err != nil {
			return errors.Join(ErrCreateAttributeTdb, err)
		}
	}

	attr, err := tiledb.NewAttribute(ctx, field_name, tiledb.TILEDB_FLOAT32)
	if err != nil {
		return errors.Join(ErrCreateAttributeTdb, err)
	}
	defer attr.Free()

	if err := AttachFilters(attr_filts, attr); err != nil {
		return errors.Join(ErrCreateAttributeTdb, err)
	}

	if err := schema.AddAttributes(attr); err != nil {
		return errors.Join(ErrCreateAttributeTdb, err)
	}

	return nil
}

// setStructFieldBuffers binds every exported []float32 field of t to the
// query's data buffer of the same name. gridAttrs and wciAttrs are both
// flat float32-slice structs with no variable-length fields, so this
// skips the teacher's general-purpose reflection over a dozen scalar
// datatypes and the offsets-buffer bookkeeping variable-length GSF arrays
// need.
func setStructFieldBuffers(query *tiledb.Query, t any) error {
	values := reflect.ValueOf(t).Elem()
	types := reflect.TypeOf(t).Elem()

	for i := 0; i < values.NumField(); i++ {
		if !types.Field(i).IsExported() {
			continue
		}

		name := types.Field(i).Name
		fld := values.Field(i)

		slc, ok := fld.Interface().([]float32)
		if !ok {
			return errors.Join(ErrDtype, errors.New(name))
		}

		if _, err := query.SetDataBuffer(name, slc); err != nil {
			return errors.Join(ErrSetBuff, err, errors.New(name))
		}
	}

	return nil
}

// GridProvenance records the processing parameters that produced a
// persisted grid or WCI array: the splatting kernel used and the
// worker-count the run was computed with, so a reader of the array can
// tell block-mean apart from weighted-mean output without re-deriving it
// from the data.
type GridProvenance struct {
	Kernel string `json:"kernel"`
	Cores  int    `json:"cores"`
}

// WriteArrayMetadata attaches md to a TileDB array's metadata store,
// JSON-encoded under key.
func WriteArrayMetadata(ctx *tiledb.Context, array_uri, key string, md any) error {
	array, err := ArrayOpen(ctx, array_uri, tiledb.TILEDB_WRITE)
	if err != nil {
		return errors.Join(err, errors.New("error opening (w) TileDB array: "+array_uri))
	}
	defer array.Free()
	defer array.Close()

	jsn, err := json.Marshal(md)
	if err != nil {
		return errors.Join(err, errors.New("error serialising metadata to JSON"))
	}

	err = array.PutMetadata(key, jsn)
	if err != nil {
		return errors.Join(err, errors.New("error writing metadata to array: "+array_uri))
	}

	return nil
}

// WriteGridProvenance records the kernel/cores a grid image was produced
// with alongside the array itself.
func WriteGridProvenance(ctx *tiledb.Context, uri, kernel string, cores int) error {
	return WriteArrayMetadata(ctx, uri, "provenance", GridProvenance{Kernel: kernel, Cores: cores})
}
