package oscillator

import (
	"github.com/abstractaudio/polysynth/pkg/dsp/blep"
)

// Depth of the notch carved into the saw ramp, in waveform units.
const notchDepth = 0.2

// VariableSaw morphs between a notched sawtooth and a variable-slope
// triangle. The waveshape control weighs the two components; the pulse
// width moves the notch (and the triangle apex).
//
// The nextSample field is a one-slot pipeline register: each Process
// call drains the correction the previous call left for it, and leaves
// the naive sample plus any fresh BLEP contribution for the next.
type VariableSaw struct {
	// Parameters
	pw        float64
	waveshape float64

	// State
	phase      float64
	high       bool
	nextSample float64
	previousPW float64
}

// NewVariableSaw creates a variable saw oscillator at center pulse width
func NewVariableSaw() *VariableSaw {
	return &VariableSaw{
		pw:         0.5,
		previousPW: 0.5,
	}
}

// PrepareBlock updates pulse width and waveshape once per audio block.
// The pulse width is clamped so that both edges are at least one full
// sample apart; above a quarter of the sample rate it snaps to center.
func (o *VariableSaw) PrepareBlock(pw, waveshape, frequency, sampleRate float64) {
	phaseDelta := frequency / sampleRate
	if phaseDelta >= 0.25 {
		pw = 0.5
	} else {
		pw = clamp(pw, phaseDelta*2.0, 1.0-2.0*phaseDelta)
	}

	o.pw = pw
	o.waveshape = waveshape
}

// Process advances the phase by frequency/sampleRate and returns one
// band-limited sample in approximately [-1, 1]. Each edge applies both
// a step correction (the notch) and a slope correction (the triangle
// apex) via BLEP.
func (o *VariableSaw) Process(frequency, sampleRate float64) float64 {
	thisSample := o.nextSample
	o.nextSample = 0.0

	phaseDelta := frequency / sampleRate
	triangleAmount := o.waveshape
	notchAmount := 1.0 - o.waveshape

	slopeUp := 1.0 / o.pw
	slopeDown := 1.0 / (1.0 - o.pw)

	o.phase += phaseDelta

	if !o.high && o.phase >= o.pw {
		triangleStep := (slopeUp + slopeDown) * phaseDelta * triangleAmount
		notch := (notchDepth + 1.0 - o.pw) * notchAmount

		// Edge position accounts for the notch itself moving when the
		// pulse width changed since last sample.
		t := (o.phase - o.pw) / (o.previousPW - o.pw + phaseDelta)

		thisSample += notch * blep.ThisSample(t)
		o.nextSample += notch * blep.NextSample(t)

		thisSample -= triangleStep * blep.ThisIntegratedSample(t)
		o.nextSample -= triangleStep * blep.NextIntegratedSample(t)

		o.high = true
	} else if o.phase >= 1.0 {
		o.phase -= 1.0

		triangleStep := (slopeUp + slopeDown) * phaseDelta * triangleAmount
		notch := (notchDepth + 1.0) * notchAmount

		t := o.phase / phaseDelta

		thisSample += notch * blep.ThisSample(t)
		o.nextSample += notch * blep.NextSample(t)

		thisSample -= triangleStep * blep.ThisIntegratedSample(t)
		o.nextSample -= triangleStep * blep.NextIntegratedSample(t)

		o.high = false
	}

	o.nextSample += o.naiveSample(slopeUp, slopeDown, triangleAmount, notchAmount)
	o.previousPW = o.pw

	return (2.0*thisSample - 1.0) / (1.0 + notchDepth)
}

func (o *VariableSaw) naiveSample(slopeUp, slopeDown, triangleAmount, notchAmount float64) float64 {
	var notchSaw float64
	if o.phase < o.pw {
		notchSaw = o.phase
	} else {
		notchSaw = 1.0 + notchDepth
	}

	var triangle float64
	if o.phase < o.pw {
		triangle = o.phase * slopeUp
	} else {
		triangle = 1.0 - (o.phase-o.pw)*slopeDown
	}

	return notchSaw*notchAmount + triangle*triangleAmount
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
