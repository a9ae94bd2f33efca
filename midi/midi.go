package midi

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/Akira98000/mp3midi/model"
)

type pendingNote struct {
	start    float64
	velocity uint8
}

func eventKey(channel, key uint8) uint16 {
	return uint16(channel)<<8 | uint16(key)
}

func seconds(s *smf.SMF, absTicks int64) float64 {
	// TimeAt reports microseconds
	return float64(s.TimeAt(absTicks)) / 1e6
}

// ReadNotes decodes note events from standard MIDI file data. NoteOn and
// NoteOff events are paired per (channel, key) and times come out in
// seconds. Unpaired events are logged and skipped rather than failing the
// whole file.
func ReadNotes(r io.Reader) (notes []model.RawNote, e error) {
	// handle panics
	// https://github.com/gomidi/midi/issues/20
	defer func() {
		if r, ok := recover().(string); ok {
			e = errors.New(r)
		}
	}()

	s, err := smf.ReadFrom(r)
	if err != nil {
		return nil, fmt.Errorf("error parsing midi data... %w", err)
	}

	for _, track := range s.Tracks {
		var absTicks int64
		active := make(map[uint16]pendingNote)
		for _, event := range track {
			absTicks += int64(event.Delta)
			var channel uint8
			var key uint8
			var velocity uint8
			switch {
			case event.Message.GetNoteStart(&channel, &key, &velocity):
				k := eventKey(channel, key)
				if _, ok := active[k]; ok {
					logrus.Warnf("note %v pressed twice on channel %v", key, channel)
					continue
				}
				active[k] = pendingNote{start: seconds(s, absTicks), velocity: velocity}
			case event.Message.GetNoteEnd(&channel, &key):
				k := eventKey(channel, key)
				p, ok := active[k]
				if !ok {
					logrus.Warnf("note off without note on: %v on channel %v", key, channel)
					continue
				}
				delete(active, k)
				notes = append(notes, model.RawNote{
					Pitch:    key,
					Start:    p.start,
					End:      seconds(s, absTicks),
					Velocity: p.velocity,
				})
			}
		}
		for k := range active {
			logrus.Warnf("missing note off for note %v, dropping it", k&0xff)
		}
	}
	return notes, nil
}

// ReadFile reads note events from a MIDI file on disk.
func ReadFile(filepath string) ([]model.RawNote, error) {
	dat, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("error reading midi file... %w", err)
	}
	return ReadNotes(bytes.NewReader(dat))
}
