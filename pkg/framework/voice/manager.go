package voice

import (
	"github.com/abstractaudio/polysynth/pkg/dsp/envelope"
)

// Manager owns a fixed pool of voices and routes note events to them.
// The pool never grows or shrinks after construction; allocation is a
// pure function of the pool's current state, so the hot path stays
// free of heap work.
type Manager struct {
	voices     []*Voice
	sampleRate float64
}

// NewManager creates a pool of voiceCount silent voices
func NewManager(voiceCount int, sampleRate float64) *Manager {
	m := &Manager{
		voices:     make([]*Voice, voiceCount),
		sampleRate: sampleRate,
	}
	for i := range m.voices {
		m.voices[i] = New(sampleRate)
	}
	return m
}

// Voices exposes the pool for configuration (envelope times etc.)
func (m *Manager) Voices() []*Voice {
	return m.voices
}

// NoteOn allocates a voice for the note and triggers it. The candidate
// is chosen in strict priority order, first match wins:
//
//  1. an active voice already holding this note is re-articulated;
//  2. the first inactive voice;
//  3. the first voice already in its release tail;
//  4. the voice triggered longest ago (ties keep the earlier voice).
//
// The returned voice is never nil for a non-empty pool.
func (m *Manager) NoteOn(note uint8, velocity float64) *Voice {
	for _, v := range m.voices {
		if v.IsActive() && v.Note() == int(note) {
			v.Retrigger(velocity)
			return v
		}
	}

	for _, v := range m.voices {
		if !v.IsActive() {
			v.Trigger(note, velocity)
			return v
		}
	}

	for _, v := range m.voices {
		if v.Envelope.Stage() == envelope.StageRelease {
			v.Trigger(note, velocity)
			return v
		}
	}

	var oldest *Voice
	for _, v := range m.voices {
		if oldest == nil || v.Envelope.Timer() > oldest.Envelope.Timer() {
			oldest = v
		}
	}
	if oldest != nil {
		oldest.Trigger(note, velocity)
	}
	return oldest
}

// NoteOff releases the first active voice holding the note. An
// unmatched note-off is dropped.
func (m *Manager) NoteOff(note uint8) {
	for _, v := range m.voices {
		if v.IsActive() && v.Note() == int(note) {
			v.Release()
			return
		}
	}
}

// PrepareBlock updates block-rate parameters on every active voice
func (m *Manager) PrepareBlock(p Params) {
	for _, v := range m.voices {
		if v.IsActive() {
			v.PrepareBlock(p, m.sampleRate)
		}
	}
}

// ProcessSample renders and sums one sample from every active voice
func (m *Manager) ProcessSample(p Params) float64 {
	var sum float64
	for _, v := range m.voices {
		if v.IsActive() {
			sum += v.ProcessSample(p, m.sampleRate)
		}
	}
	return sum
}
