// Package blep provides polynomial band-limited step corrections for
// oscillators with waveform discontinuities.
//
// A naive waveform with a step discontinuity of size d at fractional
// time t within the current sample period aliases badly. Adding
// d*ThisSample(t) to the current sample and d*NextSample(t) to the
// following one replaces the ideal step with a two-sample polynomial
// approximation of a band-limited step. Slope discontinuities use the
// integrated variants the same way.
package blep

// ThisSample returns the correction owed to the current sample for a
// step discontinuity at fractional time t in [0, 1].
func ThisSample(t float64) float64 {
	return 0.5 * t * t
}

// NextSample returns the correction owed to the following sample for a
// step discontinuity at fractional time t in [0, 1].
func NextSample(t float64) float64 {
	t = 1.0 - t
	return 0.5 * t * t
}

// NextIntegratedSample returns the correction owed to the following
// sample for a slope discontinuity at fractional time t in [0, 1].
func NextIntegratedSample(t float64) float64 {
	t1 := 0.5 * t
	t2 := t1 * t1
	t4 := t2 * t2
	return 0.1875 - t1 + 1.5*t2 - t4
}

// ThisIntegratedSample returns the correction owed to the current
// sample for a slope discontinuity at fractional time t in [0, 1].
func ThisIntegratedSample(t float64) float64 {
	return NextIntegratedSample(1.0 - t)
}
