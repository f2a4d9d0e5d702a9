// Package midi defines the timed note events the synthesizer consumes
// from its host, plus note/frequency conversions.
package midi

import (
	"fmt"
	"math"
)

// EventType identifies the kind of a host event
type EventType uint8

const (
	EventTypeNoteOff EventType = iota
	EventTypeNoteOn
)

// Event is a host event timed relative to the start of the current
// audio block. Hosts deliver events in non-decreasing offset order.
type Event interface {
	Type() EventType
	SampleOffset() int32
	String() string
}

// BaseEvent carries the sample offset shared by all event kinds
type BaseEvent struct {
	Offset int32
}

func (e BaseEvent) SampleOffset() int32 {
	return e.Offset
}

// NoteOnEvent starts a note. Velocity is normalized to [0, 1].
type NoteOnEvent struct {
	BaseEvent
	NoteNumber uint8
	Velocity   float64
}

func (e NoteOnEvent) Type() EventType {
	return EventTypeNoteOn
}

func (e NoteOnEvent) String() string {
	return fmt.Sprintf("NoteOn{note:%d, vel:%.3f, offset:%d}",
		e.NoteNumber, e.Velocity, e.Offset)
}

// NoteOffEvent releases a note
type NoteOffEvent struct {
	BaseEvent
	NoteNumber uint8
}

func (e NoteOffEvent) Type() EventType {
	return EventTypeNoteOff
}

func (e NoteOffEvent) String() string {
	return fmt.Sprintf("NoteOff{note:%d, offset:%d}",
		e.NoteNumber, e.Offset)
}

// NoteToFrequency converts a MIDI note number to Hz under equal
// temperament. A tuningA4 of 0 defaults to 440 Hz.
func NoteToFrequency(note uint8, tuningA4 float64) float64 {
	if tuningA4 == 0 {
		tuningA4 = 440.0
	}
	return tuningA4 * math.Exp2((float64(note)-69.0)/12.0)
}

// FrequencyToNote converts a frequency in Hz to the nearest MIDI note
// number, clamped to [0, 127].
func FrequencyToNote(freq, tuningA4 float64) uint8 {
	if tuningA4 == 0 {
		tuningA4 = 440.0
	}
	if freq <= 0 {
		return 0
	}
	note := 69.0 + 12.0*math.Log2(freq/tuningA4)
	if note < 0 {
		return 0
	}
	if note > 127 {
		return 127
	}
	return uint8(note + 0.5)
}

// NoteNumberToName formats a note number as pitch and octave, C4 = 60
func NoteNumberToName(note uint8) string {
	noteNames := []string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}
	octave := int(note/12) - 1
	return fmt.Sprintf("%s%d", noteNames[note%12], octave)
}
