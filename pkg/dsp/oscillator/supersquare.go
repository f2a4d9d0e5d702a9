package oscillator

import (
	"github.com/abstractaudio/polysynth/pkg/dsp/blep"
	"github.com/abstractaudio/polysynth/pkg/framework/param"
)

const (
	// Phase increments are confined to (0, 0.25]; above a quarter of
	// the sample rate the waveforms degenerate, below the minimum the
	// reset-time division blows up.
	maxFrequency = 0.25
	minFrequency = 0.000001

	frequencyEpsilon = 0.000001
)

// SuperSquare is a hard-synced square oscillator: a master phase at
// the fundamental resets a slave square whenever it wraps. The shape
// control sets the slave/master frequency ratio — below 0.5 the slave
// runs slower (0.51x to 1x), above 0.5 quadratically faster up to 17x.
//
// Edge ordering matters here. On a master wrap the slave's state at
// the exact reset instant is reconstructed first: if a slave edge
// would have fired inside the reset window it still must be corrected
// ("transition during reset") before the forced reset lands, and the
// reset itself is a step discontinuity corrected at its own
// sub-sample time.
type SuperSquare struct {
	// State
	masterPhase float64
	slavePhase  float64
	nextSample  float64
	high        bool

	// Params
	masterFrequency *param.Smoother
	slaveFrequency  *param.Smoother
}

// NewSuperSquare creates a hard-sync square oscillator
func NewSuperSquare() *SuperSquare {
	return &SuperSquare{
		masterFrequency: param.NewSmoother(param.Linear, 2.0),
		slaveFrequency:  param.NewSmoother(param.Linear, 2.0),
	}
}

// PrepareBlock derives master and slave phase increments from the
// fundamental frequency (Hz) and the shape control, and ramps the
// smoothed increments toward them.
func (o *SuperSquare) PrepareBlock(shape, frequency, sampleRate float64) {
	phaseDelta := frequency / (sampleRate + frequencyEpsilon)

	var slaveDelta float64
	if shape < 0.5 {
		slaveDelta = phaseDelta * (0.51 + 0.98*shape)
	} else {
		slaveDelta = phaseDelta * (1.0 + 16.0*(shape-0.5)*(shape-0.5))
	}

	o.masterFrequency.SetTarget(sampleRate, clamp(phaseDelta, minFrequency, maxFrequency))
	o.masterFrequency.Next()
	o.slaveFrequency.SetTarget(sampleRate, clamp(slaveDelta, minFrequency, maxFrequency))
	o.slaveFrequency.Next()
}

// Process advances both phases by one sample and returns a
// band-limited sample in approximately [-1, 1].
func (o *SuperSquare) Process() float64 {
	reset := false
	transitionDuringReset := false
	resetTime := 0.0

	thisSample := o.nextSample
	o.nextSample = 0.0

	masterFrequency := o.masterFrequency.Next()
	slaveFrequency := o.slaveFrequency.Next()

	o.masterPhase += masterFrequency
	if o.masterPhase >= 1.0 {
		o.masterPhase -= 1.0
		resetTime = o.masterPhase / masterFrequency

		// Where the slave would have been at the reset instant.
		slavePhaseAtReset := o.slavePhase + (1.0-resetTime)*slaveFrequency
		reset = true

		if slavePhaseAtReset >= 1.0 {
			slavePhaseAtReset -= 1.0
			transitionDuringReset = true
		}
		if !o.high && slavePhaseAtReset >= 0.5 {
			transitionDuringReset = true
		}

		var value float64
		if slavePhaseAtReset >= 0.5 {
			value = 1.0
		}

		thisSample -= value * blep.ThisSample(resetTime)
		o.nextSample -= value * blep.NextSample(resetTime)
	}

	o.slavePhase += slaveFrequency
	for transitionDuringReset || !reset {
		if !o.high {
			if o.slavePhase < 0.5 {
				break
			}
			t := (o.slavePhase - 0.5) / slaveFrequency
			thisSample += blep.ThisSample(t)
			o.nextSample += blep.NextSample(t)
			o.high = true
		}

		if o.high {
			if o.slavePhase < 1.0 {
				break
			}
			o.slavePhase -= 1.0
			t := o.slavePhase / slaveFrequency
			thisSample -= blep.ThisSample(t)
			o.nextSample -= blep.NextSample(t)
			o.high = false
		}
	}

	if reset {
		o.slavePhase = resetTime * slaveFrequency
		o.high = false
	}

	if o.slavePhase >= 0.5 {
		o.nextSample += 1.0
	}

	return 2.0*thisSample - 1.0
}
