package oscillator

import (
	"github.com/abstractaudio/polysynth/pkg/dsp/blep"
	"github.com/abstractaudio/polysynth/pkg/framework/param"
)

// Registration is a fixed mixture of harmonic gains, by analogy to
// organ stop registration. Entries weigh, in order, the saw and square
// components at 8', 5 1/3', 4', 2 2/3', 2', 1 1/3' and 1'.
type Registration [7]float64

// RegistrationTable holds the mixtures the morph control scans through,
// from a plain saw to a plain square.
var RegistrationTable = [11]Registration{
	{1.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0}, // Saw
	{0.5, 0.0, 0.5, 0.0, 0.0, 0.0, 0.0}, // Saw + saw
	{0.4, 0.0, 0.2, 0.0, 0.4, 0.0, 0.0}, // Full saw
	{0.3, 0.0, 0.0, 0.3, 0.0, 0.4, 0.0}, // Full saw + square hybrid
	{0.3, 0.0, 0.0, 0.0, 0.0, 0.7, 0.0}, // Saw + high square harmonics
	{0.2, 0.0, 0.0, 0.2, 0.0, 0.6, 0.0}, // Weird hybrid
	{0.0, 0.2, 0.1, 0.0, 0.2, 0.5, 0.0}, // Sawsquare high harmonics
	{0.0, 0.3, 0.0, 0.3, 0.0, 0.4, 0.0}, // Square high harmonics
	{0.0, 0.4, 0.0, 0.3, 0.0, 0.3, 0.0}, // Full square
	{0.0, 0.5, 0.0, 0.5, 0.0, 0.0, 0.0}, // Square + square
	{0.0, 1.0, 0.0, 0.0, 0.0, 0.0, 0.0}, // Square
}

// StringSynth sums four saw-like harmonics (8', 4', 2', 1') whose
// gains come from a registration mixture, each gain independently
// smoothed. The phase accumulator spans eight fundamental periods;
// each integer segment boundary is a step discontinuity whose size is
// the net gain of the harmonics landing an edge there, corrected via
// BLEP.
type StringSynth struct {
	// State
	phase      float64
	segment    int
	nextSample float64

	// Params
	frequency *param.Smoother
	saw8Gain  *param.Smoother
	saw4Gain  *param.Smoother
	saw2Gain  *param.Smoother
	saw1Gain  *param.Smoother
}

// NewStringSynth creates an additive string-synth oscillator
func NewStringSynth() *StringSynth {
	return &StringSynth{
		frequency: param.NewSmoother(param.Linear, 4.0),
		saw8Gain:  param.NewSmoother(param.Linear, 4.0),
		saw4Gain:  param.NewSmoother(param.Linear, 4.0),
		saw2Gain:  param.NewSmoother(param.Linear, 4.0),
		saw1Gain:  param.NewSmoother(param.Linear, 4.0),
	}
}

// PrepareBlock derives the per-harmonic gains from the registration
// and ramps the smoothed parameters toward them.
//
// Fundamentals whose upper harmonics would alias are octave-shifted
// down: instead of playing the 1st harmonic of an 8 kHz wave, play the
// 2nd harmonic of a 4 kHz wave. A shift of 8 or more means even the
// fundamental cannot be reproduced; the block's update is skipped and
// the oscillator keeps its previous parameters.
func (o *StringSynth) PrepareBlock(registration *Registration, gain, frequency, sampleRate float64) {
	phaseDelta := frequency / sampleRate
	shift := 0
	for phaseDelta > 0.5 {
		shift += 2
		phaseDelta *= 0.5
	}

	if shift >= 8 {
		return
	}

	var shifted Registration
	copy(shifted[shift:], registration[:7-shift])

	o.frequency.SetTarget(sampleRate, clamp(phaseDelta, minFrequency, maxFrequency))
	o.frequency.Next()

	o.saw8Gain.SetTarget(sampleRate, gain*(shifted[0]+2.0*shifted[1]))
	o.saw8Gain.Next()
	o.saw4Gain.SetTarget(sampleRate, gain*(shifted[2]-shifted[1]+2.0*shifted[3]))
	o.saw4Gain.Next()
	o.saw2Gain.SetTarget(sampleRate, gain*(shifted[4]-shifted[3]+2.0*shifted[5]))
	o.saw2Gain.Next()
	o.saw1Gain.SetTarget(sampleRate, gain*(shifted[6]-shifted[5]))
	o.saw1Gain.Next()
}

// Process advances the phase and returns one band-limited sample.
func (o *StringSynth) Process() float64 {
	thisSample := o.nextSample
	o.nextSample = 0.0

	frequency := o.frequency.Next()
	saw8Gain := o.saw8Gain.Next()
	saw4Gain := o.saw4Gain.Next()
	saw2Gain := o.saw2Gain.Next()
	saw1Gain := o.saw1Gain.Next()

	o.phase += frequency

	nextSegment := int(o.phase)
	if nextSegment != o.segment {
		discontinuity := 0.0
		if nextSegment == 8 {
			o.phase -= 8.0
			nextSegment -= 8
			discontinuity -= saw8Gain
		}

		if nextSegment&3 == 0 {
			discontinuity -= saw4Gain
		}
		if nextSegment&1 == 0 {
			discontinuity -= saw2Gain
		}
		discontinuity -= saw1Gain

		if discontinuity != 0.0 {
			fraction := o.phase - float64(nextSegment)
			t := fraction / frequency
			thisSample += discontinuity * blep.ThisSample(t)
			o.nextSample = discontinuity * blep.NextSample(t)
		}
	}
	o.segment = nextSegment

	o.nextSample += (o.phase - 4.0) * saw8Gain * 0.125
	o.nextSample += (o.phase - float64(o.segment&4) - 2.0) * saw4Gain * 0.25
	o.nextSample += (o.phase - float64(o.segment&6) - 1.0) * saw2Gain * 0.5
	o.nextSample += (o.phase - float64(o.segment&7)) * saw1Gain

	return 2.0 * thisSample
}
