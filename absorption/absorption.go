// Package absorption implements the Francois-Garrison absorption
// coefficient, a documented sound-velocity stand-in, and the range-factor
// helpers (C8), grounded on
// original_source/.../amplitudecorrection/functions/absorption.hpp and
// rangecorrection.hpp, and numerically verified against
// original_source/src/tests/.../absorption.test.cpp.
package absorption

import "math"

// Its90ToIts68 converts an ITS-90 temperature to the older ITS-68 scale.
func Its90ToIts68(tC float32) float32 {
	return tC * 1.00024
}

// SoundVelocity is a Chen-Millero/UNESCO-class stand-in for the TEOS-10
// seawater sound-speed primitive the original system delegates to.
// TEOS-10 itself is named out of scope (spec Non-goals: "no replacement
// of the TEOS-10 seawater equations... they are called but not
// re-derived"); this implementation is not TEOS-10-compliant and exists
// only so the absorption/range pipeline has a concrete collaborator to
// call end to end.
func SoundVelocity(depthM, tC, sPsu float32, _lat, _lon float64) float32 {
	t := float64(tC)
	s := float64(sPsu)
	d := float64(depthM)

	c := 1448.96 + 4.591*t - 5.304e-2*t*t + 2.374e-4*t*t*t +
		1.340*(s-35) + 1.630e-2*d + 1.675e-7*d*d -
		1.025e-2*t*(s-35) - 7.139e-13*t*d*d*d

	return float32(c)
}

// AbsorptionCoefficientDbM implements the Francois-Garrison (1982)
// absorption formula: boric-acid, magnesium-sulfate and pure-water
// relaxation terms, piecewise in temperature at 20 degC, with
// depth-pressure corrections, converting the dB/km result to dB/m. pH is
// always taken from the caller; AbsorptionCoefficientDbMDefaultPH supplies
// the default of 8.
func AbsorptionCoefficientDbM(fHz, depthM, cMS, tC, sPsu float32, pH float32) float32 {
	f := float64(fHz) / 1000 // kHz
	d := float64(depthM)
	c := float64(cMS)
	t := float64(tC)
	s := float64(sPsu)
	p := float64(pH)

	tKelvin := t + 273

	// Boric acid relaxation (term 1).
	f1 := 2.8 * math.Sqrt(s/35) * math.Pow(10, 4-1245/tKelvin)
	a1 := (8.86 / c) * math.Pow(10, 0.78*p-5)
	p1 := 1.0
	term1 := a1 * p1 * f1 * f * f / (f1*f1 + f*f)

	// Magnesium sulfate relaxation (term 2).
	f2 := 8.17 * math.Pow(10, 8-1990/tKelvin) / (1 + 0.0018*(s-35))
	a2 := 21.44 * (s / c) * (1 + 0.025*t)
	p2 := 1 - 1.37e-4*d + 6.2e-9*d*d
	term2 := a2 * p2 * f2 * f * f / (f2*f2 + f*f)

	// Pure water (term 3), piecewise in T at 20 degC.
	var a3 float64
	if t <= 20 {
		a3 = 4.937e-4 - 2.59e-5*t + 9.11e-7*t*t - 1.5e-8*t*t*t
	} else {
		a3 = 3.964e-4 - 1.146e-5*t + 1.45e-7*t*t - 6.5e-10*t*t*t
	}
	p3 := 1 - 3.83e-5*d + 4.9e-10*d*d
	term3 := a3 * p3 * f * f

	dbPerKm := term1 + term2 + term3
	return float32(dbPerKm / 1000)
}

// AbsorptionCoefficientDbMDefaultPH calls AbsorptionCoefficientDbM with
// the default pH of 8, matching the source's pH=8 default argument.
func AbsorptionCoefficientDbMDefaultPH(fHz, depthM, cMS, tC, sPsu float32) float32 {
	return AbsorptionCoefficientDbM(fHz, depthM, cMS, tC, sPsu, 8)
}

// RangeFactor returns dt*c/2, the scalar converting a sample offset into
// metres of slant range.
func RangeFactor(dt, c float32) float32 {
	return dt * c / 2
}

// Ranges returns (sample_numbers + 0.5) * range_factor for every sample.
func Ranges(sampleNumbers []float32, rangeFactor float32) []float32 {
	out := make([]float32, len(sampleNumbers))
	for i, s := range sampleNumbers {
		out[i] = (s + 0.5) * rangeFactor
	}
	return out
}

// CWRangeCorrection returns 2*alpha*r + tvg*log10(r). A non-finite or
// zero alpha/tvg drops its term from the sum; if both are zero (or
// non-finite), the result is zero.
func CWRangeCorrection(r, alpha, tvg float32) float32 {
	var out float64
	if alpha != 0 && !math.IsNaN(float64(alpha)) && !math.IsInf(float64(alpha), 0) {
		out += 2 * float64(alpha) * float64(r)
	}
	if tvg != 0 && !math.IsNaN(float64(tvg)) && !math.IsInf(float64(tvg), 0) {
		out += float64(tvg) * math.Log10(float64(r))
	}
	return float32(out)
}
