package gridstore

import (
	"path/filepath"
	"testing"

	tiledb "github.com/TileDB-Inc/TileDB-Go"
	"github.com/stretchr/testify/require"
)

func newTestContext(t *testing.T) *tiledb.Context {
	t.Helper()
	config, err := tiledb.NewConfig()
	require.NoError(t, err)
	ctx, err := tiledb.NewContext(config)
	require.NoError(t, err)
	return ctx
}

func TestCreateWriteReadGridArray1D(t *testing.T) {
	ctx := newTestContext(t)
	uri := filepath.Join(t.TempDir(), "grid1d")

	require.NoError(t, CreateGridArray1D(ctx, uri, 4))
	values := []float32{1, 2, 3, 4}
	weights := []float32{1, 1, 1, 1}
	require.NoError(t, WriteGridImage(ctx, uri, values, weights))

	gotValues, gotWeights, err := ReadGridImage(ctx, uri, 4)
	require.NoError(t, err)
	require.Equal(t, values, gotValues)
	require.Equal(t, weights, gotWeights)

	require.NoError(t, WriteGridProvenance(ctx, uri, "weighted-mean", 4))
}

func TestWriteGridImageLengthMismatch(t *testing.T) {
	ctx := newTestContext(t)
	uri := filepath.Join(t.TempDir(), "grid1d-mismatch")
	require.NoError(t, CreateGridArray1D(ctx, uri, 4))

	err := WriteGridImage(ctx, uri, []float32{1, 2}, []float32{1, 2, 3})
	require.Error(t, err)
}

func TestCreateGridArray2D3D(t *testing.T) {
	ctx := newTestContext(t)

	uri2d := filepath.Join(t.TempDir(), "grid2d")
	require.NoError(t, CreateGridArray2D(ctx, uri2d, 3, 2))

	uri3d := filepath.Join(t.TempDir(), "grid3d")
	require.NoError(t, CreateGridArray3D(ctx, uri3d, 2, 3, 4))
}
