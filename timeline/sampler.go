package timeline

import (
	"errors"
	"fmt"

	"github.com/Akira98000/mp3midi/model"
)

// ErrInvalidStep is returned by NewSampler for a non-positive time step.
var ErrInvalidStep = errors.New("time step must be positive")

// Frame is one piano-roll tick: the sample time and the notes active at
// that instant.
type Frame struct {
	Time   float64
	Active []model.Note
}

// Sampler walks a sequence in fixed time steps from zero through the last
// note end. Frames with no active notes are still produced; skipping them
// is a rendering decision, not a timeline one. A Sampler is consumed by
// iteration but can always be rebuilt from the same sequence.
type Sampler struct {
	seq    Sequence
	step   float64
	maxEnd float64
	tick   int
	done   bool
}

// NewSampler returns a sampler over seq. An empty sequence yields zero
// frames; a step <= 0 is rejected with ErrInvalidStep.
func NewSampler(seq Sequence, step float64) (*Sampler, error) {
	if step <= 0 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidStep, step)
	}
	s := &Sampler{seq: seq, step: step, maxEnd: seq.MaxEnd()}
	if len(seq) == 0 {
		s.done = true
	}
	return s, nil
}

// Next returns the next frame, or ok=false once the timeline is
// exhausted. Sample times are computed as tick*step rather than by
// accumulation, so they do not drift.
func (s *Sampler) Next() (Frame, bool) {
	if s.done {
		return Frame{}, false
	}
	t := float64(s.tick) * s.step
	if t > s.maxEnd {
		s.done = true
		return Frame{}, false
	}
	s.tick++
	return Frame{Time: t, Active: s.seq.ActiveAt(t)}, true
}
