// Package envelope provides envelope generators for audio synthesis
package envelope

import "math"

// Stage represents the current envelope stage
type Stage int

const (
	// StageIdle represents envelope idle state
	StageIdle Stage = iota
	// StageAttack represents envelope attack phase
	StageAttack
	// StageDecay represents envelope decay phase
	StageDecay
	// StageSustain represents envelope sustain phase
	StageSustain
	// StageRelease represents envelope release phase
	StageRelease
)

// Event is a trigger delivered to the envelope
type Event int

const (
	// EventAttack starts the attack ramp
	EventAttack Event = iota
	// EventRelease starts the release ramp
	EventRelease
)

// ADSR implements an Attack-Decay-Sustain-Release envelope generator
// with linear segments. Attack ramps 0 to 1, decay ramps 1 to the
// sustain level, release ramps the sustain level to 0 and then parks
// the envelope in StageIdle, where output is always 0.
type ADSR struct {
	sampleRate float64

	// Parameters (in seconds for A,D,R and 0-1 for S)
	attack  float64
	decay   float64
	sustain float64
	release float64

	// State
	stage     Stage
	stepTimer float64 // seconds since stage entry
	timer     float64 // seconds since last trigger, used for voice-steal ordering
}

// New creates a new ADSR envelope
func New(sampleRate float64) *ADSR {
	return &ADSR{
		sampleRate: sampleRate,
		attack:     0.05,
		decay:      0.001,
		sustain:    0.8,
		release:    1.0,
		stage:      StageIdle,
		stepTimer:  0.1,
	}
}

// SetSampleRate updates the sample rate used by Next
func (e *ADSR) SetSampleRate(sampleRate float64) {
	e.sampleRate = sampleRate
}

// SetAttack sets the attack time in seconds
func (e *ADSR) SetAttack(seconds float64) {
	e.attack = math.Max(0.001, seconds)
}

// SetDecay sets the decay time in seconds
func (e *ADSR) SetDecay(seconds float64) {
	e.decay = math.Max(0.001, seconds)
}

// SetSustain sets the sustain level (0-1)
func (e *ADSR) SetSustain(level float64) {
	e.sustain = math.Max(0.0, math.Min(1.0, level))
}

// SetRelease sets the release time in seconds
func (e *ADSR) SetRelease(seconds float64) {
	e.release = math.Max(0.001, seconds)
}

// SetADSR sets all parameters at once
func (e *ADSR) SetADSR(attack, decay, sustain, release float64) {
	e.SetAttack(attack)
	e.SetDecay(decay)
	e.SetSustain(sustain)
	e.SetRelease(release)
}

// Trigger resets both timers and enters the attack or release stage.
// Legal from any stage.
func (e *ADSR) Trigger(event Event) {
	e.stepTimer = 0.0
	e.timer = 0.0
	if event == EventAttack {
		e.stage = StageAttack
	} else {
		e.stage = StageRelease
	}
}

// ResetTimer restarts the trigger-age timer without changing stage.
// Used for legato re-articulation of a note already in decay or
// sustain, so the voice counts as freshly played for steal ordering.
func (e *ADSR) ResetTimer() {
	e.timer = 0.0
}

// Reset forces the envelope back to idle
func (e *ADSR) Reset() {
	e.stage = StageIdle
	e.stepTimer = e.release
	e.timer = 0.0
}

// Stage returns the current envelope stage
func (e *ADSR) Stage() Stage {
	return e.stage
}

// Timer returns seconds elapsed since the last trigger
func (e *ADSR) Timer() float64 {
	return e.timer
}

// IsActive returns true if the envelope is generating output
func (e *ADSR) IsActive() bool {
	return e.stage != StageIdle
}

// Next advances the envelope by one sample and returns the gain in
// [0, 1]. Stage transitions happen when a stage's duration elapses:
// the attack-decay boundary emits exactly 1.0 once, the decay-sustain
// boundary emits the sustain level once, and release completion emits
// 0 and parks the envelope in StageIdle.
func (e *ADSR) Next() float64 {
	dt := 1.0 / e.sampleRate
	e.timer += dt

	switch e.stage {
	case StageAttack:
		if e.stepTimer >= e.attack {
			e.stage = StageDecay
			e.stepTimer = 0.0
			return 1.0
		}
		e.stepTimer += dt
		return interpolate(math.Min(e.stepTimer/e.attack, 1.0), 0.0, 1.0)

	case StageDecay:
		if e.stepTimer >= e.decay {
			e.stage = StageSustain
			e.stepTimer = 0.0
			return e.sustain
		}
		e.stepTimer += dt
		return interpolate(math.Min(e.stepTimer/e.decay, 1.0), 1.0, e.sustain)

	case StageSustain:
		return e.sustain

	case StageRelease:
		if e.stepTimer >= e.release {
			e.stage = StageIdle
			e.stepTimer = 0.0
			return 0.0
		}
		e.stepTimer += dt
		return interpolate(math.Min(e.stepTimer/e.release, 1.0), e.sustain, 0.0)
	}

	return 0.0
}

// interpolate blends linearly from one level to another; value is the
// normalized position in [0, 1]
func interpolate(value, from, to float64) float64 {
	return from*(1.0-value) + to*value
}
