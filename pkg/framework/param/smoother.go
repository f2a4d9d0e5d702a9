// Package param provides parameter smoothing for control values.
//
// Discrete parameter changes are amortized into short per-sample ramps
// so that audio-rate consumers never see a discontinuity. A Smoother is
// the concrete form of the "give me the next interpolated value"
// service the synthesis core depends on.
package param

import "math"

// Style defines the smoothing curve.
type Style int

const (
	// Linear ramps to the target in equal per-sample steps.
	Linear Style = iota
	// Exponential approaches the target with a one-pole lag.
	Exponential
)

// Smoother ramps a control value toward a target over a fixed duration.
// The zero duration degenerates to an instant jump. Not safe for
// concurrent use; each consumer owns its smoother.
type Smoother struct {
	style      Style
	durationMs float64

	current float64
	target  float64

	// Linear state
	step      float64
	stepsLeft int

	// Exponential state
	coef float64
}

// NewSmoother creates a smoother that reaches (or, for Exponential,
// effectively reaches) its target in durationMs milliseconds.
func NewSmoother(style Style, durationMs float64) *Smoother {
	return &Smoother{style: style, durationMs: durationMs}
}

// SetTarget starts a ramp from the current value to target. The sample
// rate fixes the ramp length in samples.
func (s *Smoother) SetTarget(sampleRate, target float64) {
	s.target = target

	switch s.style {
	case Linear:
		steps := int(sampleRate * s.durationMs / 1000.0)
		if steps < 1 {
			steps = 1
		}
		s.stepsLeft = steps
		s.step = (target - s.current) / float64(steps)

	case Exponential:
		samples := sampleRate * s.durationMs / 1000.0
		if samples <= 0 {
			s.coef = 0.0
			return
		}
		// Decays the error by -60 dB over the duration.
		s.coef = math.Exp(-6.908 / samples)
	}
}

// Next advances the ramp by one sample and returns the current value.
func (s *Smoother) Next() float64 {
	switch s.style {
	case Linear:
		if s.stepsLeft > 0 {
			s.current += s.step
			s.stepsLeft--
			if s.stepsLeft == 0 {
				s.current = s.target
			}
		}

	case Exponential:
		s.current = s.target + (s.current-s.target)*s.coef
		if math.Abs(s.current-s.target) < 1e-9 {
			s.current = s.target
		}
	}

	return s.current
}

// Value returns the current value without advancing the ramp.
func (s *Smoother) Value() float64 {
	return s.current
}

// Reset jumps directly to value and cancels any ramp in progress.
func (s *Smoother) Reset(value float64) {
	s.current = value
	s.target = value
	s.step = 0.0
	s.stepsLeft = 0
}

// IsSmoothing reports whether a ramp is still in progress.
func (s *Smoother) IsSmoothing() bool {
	if s.style == Linear {
		return s.stepsLeft > 0
	}
	return s.current != s.target
}
