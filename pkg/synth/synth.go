// Package synth is the block-rate engine: it consumes timed note
// events and per-block control values, drives the voice pool, and
// renders mono audio one block at a time.
package synth

import (
	"github.com/abstractaudio/polysynth/pkg/dsp/oscillator"
	"github.com/abstractaudio/polysynth/pkg/framework/voice"
	"github.com/abstractaudio/polysynth/pkg/midi"
)

// DefaultVoiceCount is the pool size used by New
const DefaultVoiceCount = 8

// Params holds the host's smoothed control values for one block
type Params struct {
	OscillatorType oscillator.Type
	Shape          float64 // 0 to 1
	Morph          float64 // 0 to 1

	Gain      float64 // dB
	Cutoff    float64 // Hz
	Resonance float64 // filter Q
}

// DefaultParams mirrors the engine's startup controls
func DefaultParams() Params {
	return Params{
		OscillatorType: oscillator.TypeVariableSaw,
		Shape:          0.5,
		Morph:          0.2,
		Gain:           -10.0,
		Cutoff:         20000.0,
		Resonance:      0.5,
	}
}

// Synth renders a polyphonic voice pool into caller-provided blocks.
// It is single-threaded: ProcessBlock must be called from one
// goroutine at a time, the way an audio callback would.
type Synth struct {
	voices     *voice.Manager
	sampleRate float64
}

// New creates a synth with the default voice pool
func New(sampleRate float64) *Synth {
	return NewWithVoices(DefaultVoiceCount, sampleRate)
}

// NewWithVoices creates a synth with a fixed pool of voiceCount voices
func NewWithVoices(voiceCount int, sampleRate float64) *Synth {
	return &Synth{
		voices:     voice.NewManager(voiceCount, sampleRate),
		sampleRate: sampleRate,
	}
}

// SampleRate returns the rate the synth renders at
func (s *Synth) SampleRate() float64 {
	return s.sampleRate
}

// SetADSR configures the envelope of every voice. Attack, decay and
// release are in seconds; sustain is a level in [0, 1].
func (s *Synth) SetADSR(attack, decay, sustain, release float64) {
	for _, v := range s.voices.Voices() {
		v.Envelope.SetADSR(attack, decay, sustain, release)
	}
}

// ProcessBlock renders len(out) samples into out. Events must arrive
// in non-decreasing sample-offset order; each is applied before the
// sample at its offset. Offsets past the block end are treated as the
// block end.
func (s *Synth) ProcessBlock(out []float32, p Params, events []midi.Event) {
	vp := voice.Params{
		OscillatorType: p.OscillatorType,
		Shape:          p.Shape,
		Morph:          p.Morph,
		Gain:           p.Gain,
		Cutoff:         p.Cutoff,
		Resonance:      p.Resonance,
	}

	s.voices.PrepareBlock(vp)

	next := 0
	for i := range out {
		for next < len(events) && int(events[next].SampleOffset()) <= i {
			s.dispatch(events[next], vp)
			next++
		}
		out[i] = float32(s.voices.ProcessSample(vp))
	}
	for next < len(events) {
		s.dispatch(events[next], vp)
		next++
	}
}

// dispatch applies one event to the pool. A note-on's voice gets its
// block parameters immediately so it does not render one block with
// stale oscillator settings.
func (s *Synth) dispatch(event midi.Event, vp voice.Params) {
	switch e := event.(type) {
	case midi.NoteOnEvent:
		v := s.voices.NoteOn(e.NoteNumber, e.Velocity)
		if v != nil {
			v.PrepareBlock(vp, s.sampleRate)
		}
	case midi.NoteOffEvent:
		s.voices.NoteOff(e.NoteNumber)
	}
}
