// Package voice implements the polyphonic voice pool: a fixed arena of
// oscillator-envelope-filter chains and the allocation policy that maps
// note events onto them.
package voice

import (
	"github.com/abstractaudio/polysynth/pkg/dsp/envelope"
	"github.com/abstractaudio/polysynth/pkg/dsp/filter"
	"github.com/abstractaudio/polysynth/pkg/dsp/gain"
	"github.com/abstractaudio/polysynth/pkg/dsp/oscillator"
	"github.com/abstractaudio/polysynth/pkg/midi"
)

// NoNote marks a voice that has never been triggered
const NoNote = -1

// Params holds the per-block controls shared by every voice
type Params struct {
	OscillatorType oscillator.Type
	Shape          float64
	Morph          float64

	// Gain in dB, cutoff in Hz, resonance as filter Q.
	Gain      float64
	Cutoff    float64
	Resonance float64
}

// Voice is one note-playing signal chain. All fields are owned by the
// voice and the manager's allocation logic; nothing else mutates them.
type Voice struct {
	Oscillator *oscillator.Engine
	Filter     *filter.SVF
	Envelope   *envelope.ADSR

	note      int
	frequency float64
	velocity  float64
}

// New creates a silent voice
func New(sampleRate float64) *Voice {
	return &Voice{
		Oscillator: oscillator.NewEngine(),
		Filter:     filter.New(filter.LowPass),
		Envelope:   envelope.New(sampleRate),
		note:       NoNote,
		frequency:  1.0,
		velocity:   1.0,
	}
}

// Note returns the MIDI note this voice holds, or NoNote
func (v *Voice) Note() int {
	return v.note
}

// Velocity returns the normalized strike velocity of the held note
func (v *Voice) Velocity() float64 {
	return v.velocity
}

// IsActive mirrors the envelope: true until the release tail ends
func (v *Voice) IsActive() bool {
	return v.Envelope.IsActive()
}

// Trigger binds the voice to a note and starts its attack
func (v *Voice) Trigger(note uint8, velocity float64) {
	v.note = int(note)
	v.frequency = midi.NoteToFrequency(note, 0)
	v.velocity = velocity

	v.Envelope.Trigger(envelope.EventAttack)
}

// Retrigger re-articulates the note the voice already holds. A voice
// still ramping (attack) or already fading (release) restarts its
// attack; a voice in decay or sustain only refreshes its trigger age,
// so the level never jumps.
func (v *Voice) Retrigger(velocity float64) {
	v.velocity = velocity

	switch v.Envelope.Stage() {
	case envelope.StageAttack, envelope.StageRelease:
		v.Envelope.Trigger(envelope.EventAttack)
	case envelope.StageDecay, envelope.StageSustain:
		v.Envelope.ResetTimer()
	}
}

// Release starts the envelope's release tail
func (v *Voice) Release() {
	v.Envelope.Trigger(envelope.EventRelease)
}

// PrepareBlock updates the oscillator's block-rate parameters
func (v *Voice) PrepareBlock(p Params, sampleRate float64) {
	v.Oscillator.Selected = p.OscillatorType
	v.Oscillator.PrepareBlock(oscillator.Params{
		Shape: p.Shape,
		Morph: p.Morph,
	}, v.frequency, sampleRate)
}

// ProcessSample renders one sample: oscillator, envelope gain, filter,
// then output gain.
func (v *Voice) ProcessSample(p Params, sampleRate float64) float64 {
	v.Filter.SetFrequencyAndQ(p.Cutoff/sampleRate, p.Resonance)

	out := v.Oscillator.Process(v.frequency, sampleRate)
	out *= v.Envelope.Next()
	out = v.Filter.Process(out)

	return out * gain.DbToLinearFast(p.Gain)
}
