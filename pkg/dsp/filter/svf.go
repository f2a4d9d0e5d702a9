// Package filter provides digital signal processing filters
package filter

import "math"

// Mode selects which output of the state variable filter is returned
type Mode int

const (
	// LowPass selects the low-pass output
	LowPass Mode = iota
	// BandPass selects the band-pass output
	BandPass
	// HighPass selects the high-pass output
	HighPass
)

// maxNormalizedFreq keeps the pre-warped coefficient finite near
// Nyquist; tan(0.5*pi) diverges.
const maxNormalizedFreq = 0.497

// SVF implements a two-pole multimode state variable filter with a
// trapezoidal (zero-delay feedback) integrator topology. Coefficients
// are cheap enough to recompute every sample, which is the expected
// usage for audio-rate cutoff modulation.
type SVF struct {
	mode Mode

	g float64 // pre-warped frequency coefficient
	r float64 // damping (1/Q)
	h float64 // feedback normalization

	state1 float64
	state2 float64
}

// New creates a state variable filter with fully open cutoff
func New(mode Mode) *SVF {
	s := &SVF{mode: mode}
	s.SetFrequencyAndQ(maxNormalizedFreq, 1.0)
	return s
}

// SetMode selects the returned output
func (s *SVF) SetMode(mode Mode) {
	s.mode = mode
}

// Reset clears the integrator states
func (s *SVF) Reset() {
	s.state1 = 0.0
	s.state2 = 0.0
}

// SetFrequencyAndQ recomputes the coefficients from a normalized
// cutoff (cutoffHz / sampleRate) and a resonance. The cutoff is
// clamped below the stability boundary near Nyquist. Call whenever
// cutoff or resonance change; once per sample is fine.
func (s *SVF) SetFrequencyAndQ(normalizedFreq, resonance float64) {
	if normalizedFreq > maxNormalizedFreq {
		normalizedFreq = maxNormalizedFreq
	}
	s.g = math.Tan(normalizedFreq * math.Pi)
	s.r = 1.0 / resonance
	s.h = 1.0 / (1.0 + s.r*s.g + s.g*s.g)
}

// Process advances the filter by one sample and returns the output
// selected by the mode. The update is algebraic: both integrator
// states are solved for directly, with no unit delay in the feedback
// path.
func (s *SVF) Process(in float64) float64 {
	hp := (in - s.r*s.state1 - s.g*s.state1 - s.state2) * s.h
	bp := s.g*hp + s.state1
	lp := s.g*bp + s.state2

	s.state1 = s.g*hp + bp
	s.state2 = s.g*bp + lp

	switch s.mode {
	case BandPass:
		return bp
	case HighPass:
		return hp
	}
	return lp
}
