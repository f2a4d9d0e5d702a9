// Package oscillator provides the band-limited waveform generators and
// the variant engine of the synthesizer voice.
package oscillator

import "math"

// Waveform selects the shape of a Digital oscillator
type Waveform int

const (
	// WaveSine is a pure sine
	WaveSine Waveform = iota
	// WaveSquare is a naive unipolar square
	WaveSquare
	// WaveSaw is a naive sawtooth
	WaveSaw
	// WaveTriangle is a naive triangle
	WaveTriangle
)

// Digital is a plain phase-accumulator oscillator with no
// anti-aliasing. It serves as a cheap reference and blend source; the
// band-limited variants below do the real work.
type Digital struct {
	phase    float64
	waveform Waveform
}

// NewDigital creates a digital oscillator with the given waveform
func NewDigital(waveform Waveform) *Digital {
	return &Digital{waveform: waveform}
}

// Process advances the phase by frequency/sampleRate and returns one
// naive sample.
func (o *Digital) Process(frequency, sampleRate float64) float64 {
	var v float64
	switch o.waveform {
	case WaveSine:
		v = math.Sin(o.phase * 2.0 * math.Pi)
	case WaveSquare:
		if o.phase < 0.5 {
			v = 1.0
		}
	case WaveSaw:
		v = 2.0*o.phase - 1.0
	case WaveTriangle:
		if o.phase < 0.5 {
			v = 4.0*o.phase - 1.0
		} else {
			v = 3.0 - 4.0*o.phase
		}
	}

	o.phase += frequency / sampleRate
	if o.phase >= 1.0 {
		o.phase -= 1.0
	}

	return v
}

// Blend crossfades two digital oscillators running at the same
// frequency. Shape 0 yields only the first oscillator, 1 only the
// second.
type Blend struct {
	Shape float64

	a *Digital
	b *Digital
}

// NewBlend creates a sine/square blend at equal weight
func NewBlend() *Blend {
	return &Blend{
		Shape: 0.5,
		a:     NewDigital(WaveSine),
		b:     NewDigital(WaveSquare),
	}
}

// Process renders both oscillators and returns the crossfade
func (o *Blend) Process(frequency, sampleRate float64) float64 {
	a := o.a.Process(frequency, sampleRate)
	b := o.b.Process(frequency, sampleRate)
	return a*(1.0-o.Shape) + b*o.Shape
}
