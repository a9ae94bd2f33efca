package midi

import (
	"fmt"
	"io"
	"math"
	"os"
	"sort"

	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/Akira98000/mp3midi/constants"
	"github.com/Akira98000/mp3midi/model"
)

type tickEvent struct {
	tick uint32
	off  bool
	msg  gomidi.Message
}

// WriteNotes encodes raw notes as a single-track SMF on channel 0, using
// metric ticks at a fixed tempo. At equal ticks note-offs are written
// before note-ons so back-to-back notes never overlap on the wire.
func WriteNotes(w io.Writer, notes []model.RawNote) error {
	ticksPerSec := float64(constants.TicksPerQuarter) * constants.WriteBPM / 60

	events := make([]tickEvent, 0, len(notes)*2)
	for _, n := range notes {
		if n.Pitch > 127 {
			return fmt.Errorf("cannot encode pitch %v", n.Pitch)
		}
		events = append(events, tickEvent{
			tick: uint32(math.Round(n.Start * ticksPerSec)),
			msg:  gomidi.NoteOn(0, n.Pitch, n.Velocity),
		})
		events = append(events, tickEvent{
			tick: uint32(math.Round(n.End * ticksPerSec)),
			off:  true,
			msg:  gomidi.NoteOff(0, n.Pitch),
		})
	}
	sort.SliceStable(events, func(i, j int) bool {
		if events[i].tick != events[j].tick {
			return events[i].tick < events[j].tick
		}
		return events[i].off && !events[j].off
	})

	var s smf.SMF
	s.TimeFormat = smf.MetricTicks(constants.TicksPerQuarter)

	var track smf.Track
	track = append(track, smf.Event{Delta: 0, Message: smf.MetaTempo(constants.WriteBPM)})
	var lastTick uint32
	for _, evt := range events {
		track = append(track, smf.Event{Delta: evt.tick - lastTick, Message: smf.Message(evt.msg)})
		lastTick = evt.tick
	}
	track.Close(0)
	s.Tracks = append(s.Tracks, track)

	_, err := s.WriteTo(w)
	return err
}

// WriteFile writes note events to a MIDI file on disk.
func WriteFile(filepath string, notes []model.RawNote) error {
	f, err := os.Create(filepath)
	if err != nil {
		return fmt.Errorf("error creating midi file... %w", err)
	}
	defer f.Close()
	return WriteNotes(f, notes)
}
