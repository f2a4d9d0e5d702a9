// Command polysynth plays a short phrase through the synthesizer on
// the default audio device.
package main

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"
	"time"

	"github.com/ebitengine/oto/v3"

	"github.com/abstractaudio/polysynth/pkg/midi"
	"github.com/abstractaudio/polysynth/pkg/synth"
)

const sampleRate = 44100

// timedEvent is an event scheduled at an absolute sample position
type timedEvent struct {
	at    int
	event midi.Event
}

// phrase builds a simple arpeggio with overlapping releases
func phrase() []timedEvent {
	notes := []uint8{57, 60, 64, 69, 64, 60}
	const step = sampleRate / 2

	var events []timedEvent
	for i, n := range notes {
		on := i * step
		events = append(events, timedEvent{
			at: on,
			event: midi.NoteOnEvent{
				BaseEvent:  midi.BaseEvent{},
				NoteNumber: n,
				Velocity:   0.9,
			},
		})
		events = append(events, timedEvent{
			at: on + step*3/4,
			event: midi.NoteOffEvent{
				BaseEvent:  midi.BaseEvent{},
				NoteNumber: n,
			},
		})
	}
	return events
}

// streamer renders synth blocks on demand as little-endian float32
// frames, the format oto reads.
type streamer struct {
	synth  *synth.Synth
	params synth.Params
	events []timedEvent

	clock int
	total int
	block []float32
}

func (s *streamer) Read(p []byte) (int, error) {
	if s.clock >= s.total {
		return 0, io.EOF
	}

	n := len(p) / 4
	if n > s.total-s.clock {
		n = s.total - s.clock
	}
	if cap(s.block) < n {
		s.block = make([]float32, n)
	}
	block := s.block[:n]

	var due []midi.Event
	for _, te := range s.events {
		if te.at < s.clock || te.at >= s.clock+n {
			continue
		}
		switch e := te.event.(type) {
		case midi.NoteOnEvent:
			e.Offset = int32(te.at - s.clock)
			due = append(due, e)
			fmt.Printf("note on  %s\n", midi.NoteNumberToName(e.NoteNumber))
		case midi.NoteOffEvent:
			e.Offset = int32(te.at - s.clock)
			due = append(due, e)
		}
	}

	s.synth.ProcessBlock(block, s.params, due)
	s.clock += n

	for i, v := range block {
		binary.LittleEndian.PutUint32(p[i*4:], math.Float32bits(v))
	}
	return n * 4, nil
}

func run() error {
	s := &streamer{
		synth:  synth.New(sampleRate),
		params: synth.DefaultParams(),
		events: phrase(),
		total:  sampleRate * 5,
	}
	s.synth.SetADSR(0.01, 0.1, 0.7, 0.8)

	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: 1,
		Format:       oto.FormatFloat32LE,
	})
	if err != nil {
		return fmt.Errorf("opening audio device: %w", err)
	}
	<-ready

	player := ctx.NewPlayer(s)
	defer player.Close()

	player.Play()
	for player.IsPlaying() {
		time.Sleep(50 * time.Millisecond)
	}
	return nil
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
