package amplitude

import (
	"testing"

	"github.com/sixy6e/go-sonargeo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWCI() sonargeo.Tensor2D[float32] {
	return sonargeo.Tensor2DFrom([]float32{
		1, 2, 3,
		4, 5, 6,
	}, 2, 3)
}

func TestApplyBeamCorrection(t *testing.T) {
	wci := newTestWCI()
	out, err := ApplyBeamCorrection(wci, []float32{10, 20}, 1)
	require.NoError(t, err)

	assert.Equal(t, float32(11), out.At(0, 0))
	assert.Equal(t, float32(24), out.At(1, 0))
	// Original untouched (out-of-place).
	assert.Equal(t, float32(1), wci.At(0, 0))
}

func TestApplyBeamCorrectionShapeMismatch(t *testing.T) {
	wci := newTestWCI()
	_, err := ApplyBeamCorrection(wci, []float32{10}, 1)
	assert.IsType(t, &sonargeo.ShapeMismatch{}, err)
}

func TestApplySampleCorrection(t *testing.T) {
	wci := newTestWCI()
	out, err := ApplySampleCorrection(wci, []float32{100, 200, 300}, 1)
	require.NoError(t, err)
	assert.Equal(t, float32(101), out.At(0, 0))
	assert.Equal(t, float32(206), out.At(1, 2))
}

func TestApplyBeamSampleCorrection(t *testing.T) {
	wci := newTestWCI()
	out, err := ApplyBeamSampleCorrection(wci, []float32{10, 20}, []float32{100, 200, 300}, 1)
	require.NoError(t, err)
	assert.Equal(t, float32(1+10+100), out.At(0, 0))
	assert.Equal(t, float32(6+20+300), out.At(1, 2))
}

func TestApplyBeamSampleCorrectionWithAbsorption(t *testing.T) {
	wci := newTestWCI()
	perBeam := []float32{0, 0}
	perSample := []float32{0, 0, 0}
	absorption := []float32{1, 2}
	ranges := []float32{10, 10, 10}

	out, err := ApplyBeamSampleCorrectionWithAbsorption(wci, perBeam, perSample, absorption, ranges, 1)
	require.NoError(t, err)

	assert.Equal(t, float32(1+2*1*10), out.At(0, 0))
	assert.Equal(t, float32(4+2*2*10), out.At(1, 0))
}

func TestInplaceBeamCorrectionRange(t *testing.T) {
	wci := sonargeo.NewTensor2D[float32](3, 2)
	err := InplaceBeamCorrection(wci, []float32{10, 20, 30}, 1, 2, 1)
	require.NoError(t, err)

	// Only beam 1 touched.
	assert.Equal(t, float32(0), wci.At(0, 0))
	assert.Equal(t, float32(20), wci.At(1, 0))
	assert.Equal(t, float32(0), wci.At(2, 0))
}

func TestApplySystemOffset(t *testing.T) {
	wci := newTestWCI()
	out := ApplySystemOffset(wci, 1000, 2)
	assert.Equal(t, float32(1001), out.At(0, 0))
	assert.Equal(t, float32(1006), out.At(1, 2))
}

func TestBeamSampleCorrectionVariantsAgree(t *testing.T) {
	wci := newTestWCI()
	perBeam := []float32{1.5, -2.5}
	perSample := []float32{0.1, 0.2, 0.3}

	loop, err := BeamSampleCorrectionLoop(wci, perBeam, perSample)
	require.NoError(t, err)
	xt2, err := BeamSampleCorrectionXtensor2(wci, perBeam, perSample)
	require.NoError(t, err)
	xt3, err := BeamSampleCorrectionXtensor3(wci, perBeam, perSample)
	require.NoError(t, err)

	for i := range loop.Data() {
		assert.InDelta(t, loop.Data()[i], xt2.Data()[i], 1e-4)
		assert.InDelta(t, loop.Data()[i], xt3.Data()[i], 1e-4)
	}
}

func TestBeamCorrectionDeterministicUnderCores(t *testing.T) {
	rows, cols := 32, 16
	wci := sonargeo.NewTensor2D[float32](rows, cols)
	data := wci.Data()
	for i := range data {
		data[i] = float32(i)
	}
	perBeam := make([]float32, rows)
	for i := range perBeam {
		perBeam[i] = float32(i) * 0.1
	}

	var baseline sonargeo.Tensor2D[float32]
	for _, cores := range []int{1, 2, 4, 8} {
		out, err := ApplyBeamCorrection(wci, perBeam, cores)
		require.NoError(t, err)
		if cores == 1 {
			baseline = out
			continue
		}
		assert.Equal(t, baseline.Data(), out.Data(), "cores=%d", cores)
	}
}
