package timeline

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/Akira98000/mp3midi/model"
	"github.com/Akira98000/mp3midi/note"
)

// ErrInvalidInterval is returned by Normalize for a raw note whose end is
// not after its start.
var ErrInvalidInterval = errors.New("note end is not after its start")

// Sequence is a canonical note list sorted by (start, pitch). It is built
// once by Normalize and never mutated afterward, so it can be shared
// freely between readers.
type Sequence []model.Note

// round3 rounds to millisecond precision, half away from zero.
func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}

// Normalize converts raw note events into a canonical Sequence: pitches
// get their dual names and octave, start and duration are rounded to
// three decimals, and the result is sorted by (start, pitch). The input
// order does not matter. An empty input yields an empty Sequence.
func Normalize(raw []model.RawNote) (Sequence, error) {
	seq := make(Sequence, 0, len(raw))
	for _, r := range raw {
		if r.End <= r.Start {
			return nil, fmt.Errorf("%w: pitch %v at %vs", ErrInvalidInterval, r.Pitch, r.Start)
		}
		info, err := note.Name(r.Pitch)
		if err != nil {
			return nil, err
		}
		octave := note.Octave(r.Pitch)
		seq = append(seq, model.Note{
			Pitch:    r.Pitch,
			Octave:   octave,
			NameEN:   fmt.Sprintf("%s%d", info.English, octave),
			NameFR:   fmt.Sprintf("%s%d", info.French, octave),
			IsSharp:  info.IsSharp,
			Start:    round3(r.Start),
			Duration: round3(r.End - r.Start),
			Velocity: r.Velocity,
		})
	}
	sort.SliceStable(seq, func(i, j int) bool {
		if seq[i].Start != seq[j].Start {
			return seq[i].Start < seq[j].Start
		}
		return seq[i].Pitch < seq[j].Pitch
	})
	return seq, nil
}

// ActiveAt returns the notes sounding at time t using half-open interval
// membership: a note is active at its start instant and inactive at its
// end instant. The result keeps sequence order and is a fresh slice.
func (s Sequence) ActiveAt(t float64) []model.Note {
	var active []model.Note
	for _, n := range s {
		if n.Start <= t && t < n.Start+n.Duration {
			active = append(active, n)
		}
	}
	return active
}

// MaxEnd returns the largest note end time, or 0 for an empty sequence.
func (s Sequence) MaxEnd() float64 {
	var max float64
	for _, n := range s {
		if end := n.Start + n.Duration; end > max {
			max = end
		}
	}
	return max
}
