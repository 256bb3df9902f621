package absorption

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAbsorptionCoefficientScenarioLowFrequency(t *testing.T) {
	// S7a: calc_absorption_coefficient_db_m(1000, 0, 1500, 10, 35) ≈ 5.95565729641e-5.
	got := AbsorptionCoefficientDbMDefaultPH(1000, 0, 1500, 10, 35)
	assert.InDelta(t, 5.95565729641e-5, got, 1e-8)
}

func TestAbsorptionCoefficientScenarioHighFrequency(t *testing.T) {
	// S7b: calc_absorption_coefficient_db_m(1_000_000, 100, 1500, 4, 35, 8) ≈ 0.43118748483875202.
	got := AbsorptionCoefficientDbM(1_000_000, 100, 1500, 4, 35, 8)
	assert.InDelta(t, 0.43118748483875202, got, 1e-3)
}

func TestIts90ToIts68(t *testing.T) {
	assert.InDelta(t, 10.0024, Its90ToIts68(10), 1e-6)
}

func TestRangeFactorAndRanges(t *testing.T) {
	rf := RangeFactor(0.002, 1500)
	assert.InDelta(t, 1.5, rf, 1e-6)

	ranges := Ranges([]float32{0, 1, 2}, rf)
	assert.InDelta(t, 0.75, ranges[0], 1e-6)
	assert.InDelta(t, 2.25, ranges[1], 1e-6)
	assert.InDelta(t, 3.75, ranges[2], 1e-6)
}

func TestCWRangeCorrection(t *testing.T) {
	got := CWRangeCorrection(10, 0.5, 2)
	want := float32(2*0.5*10) + float32(2*math.Log10(10))
	assert.InDelta(t, want, got, 1e-4)
}

func TestCWRangeCorrectionZeroInputs(t *testing.T) {
	assert.Equal(t, float32(0), CWRangeCorrection(10, 0, 0))
}

func TestCWRangeCorrectionNonFiniteDropsTerm(t *testing.T) {
	inf := float32(math.Inf(1))
	nan := float32(math.NaN())

	got := CWRangeCorrection(10, inf, 2)
	want := float32(2 * math.Log10(10))
	assert.InDelta(t, want, got, 1e-4)

	got2 := CWRangeCorrection(10, 0.5, nan)
	want2 := float32(2 * 0.5 * 10)
	assert.InDelta(t, want2, got2, 1e-4)
}

func TestSoundVelocityIsFinite(t *testing.T) {
	c := SoundVelocity(100, 10, 35, 0, 0)
	assert.False(t, math.IsNaN(float64(c)))
	assert.Greater(t, c, float32(1400))
	assert.Less(t, c, float32(1600))
}
