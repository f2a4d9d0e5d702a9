// Package modulator provides stateless two-signal combination
// functions: crossfade, wavefolding, ring modulation and bitwise XOR.
// All functions are pure; they can run per-sample on the audio thread
// without allocation.
package modulator

import (
	"github.com/abstractaudio/polysynth/pkg/dsp/gain"
)

// Algorithm selects a combination function
type Algorithm int

const (
	// XFade blends linearly between the two inputs
	XFade Algorithm = iota
	// Fold drives the summed inputs through a wavefolding table
	Fold
	// AnalogRing emulates a diode-based ring modulator
	AnalogRing
	// DigitalRing multiplies the inputs with a soft saturator
	DigitalRing
	// Xor combines the 16-bit quantized inputs bitwise
	Xor
	// Nop passes the modulator input through unchanged
	Nop
)

// Process combines modulator and carrier under the selected algorithm.
// The parameter is the algorithm's single depth control in [0, 1].
func (a Algorithm) Process(modulator, carrier, parameter float64) float64 {
	switch a {
	case XFade:
		return processXFade(modulator, carrier, parameter)
	case Fold:
		return processFold(modulator, carrier, parameter)
	case AnalogRing:
		return processAnalogRing(modulator, carrier, parameter)
	case DigitalRing:
		return processDigitalRing(modulator, carrier, parameter)
	case Xor:
		return processXor(modulator, carrier, parameter)
	default:
		return modulator
	}
}

func processXFade(x1, x2, parameter float64) float64 {
	return x1*(1.0-parameter) + x2*parameter
}

func processFold(x1, x2, parameter float64) float64 {
	sum := x1 + x2 + x1*x2*0.25
	sum *= 0.02 * parameter

	// Each input contributes at most 1 plus the 0.25 cross term; the
	// scale maps the largest possible sum onto the table half-width.
	const scale = foldTableCenter / ((1.0 + 1.0 + 0.25) * 1.02)
	return foldLookup(sum * scale)
}

func processAnalogRing(modulator, carrier, parameter float64) float64 {
	carrier *= 2.0
	ring := diode(modulator+carrier) + diode(modulator-carrier)
	ring *= 4.0 + parameter*24.0
	return gain.SoftLimit(ring)
}

func processDigitalRing(modulator, carrier, parameter float64) float64 {
	ring := 4.0 * modulator * carrier * (1.0 + parameter*8.0)
	return ring / (1.0 + abs(ring))
}

func processXor(x1, x2, parameter float64) float64 {
	short1 := gain.Clip16(int32(x1 * 32768.0))
	short2 := gain.Clip16(int32(x2 * 32768.0))

	xored := float64(short1^short2) / 32768.0
	sum := (x1 + x2) * 0.7

	return sum + (xored-sum)*parameter
}

// diode approximates the diode non-linearity from Julian Parker,
// "A simple digital model of the diode-based ring-modulator",
// Proc. DAFx-11.
func diode(x float64) float64 {
	sign := 1.0
	if x <= 0.0 {
		sign = -1.0
	}

	deadZone := abs(x) - 0.667
	deadZone += abs(deadZone)
	deadZone *= deadZone

	return 0.04324765822726063 * deadZone * sign
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
