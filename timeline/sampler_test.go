package timeline_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Akira98000/mp3midi/model"
	"github.com/Akira98000/mp3midi/timeline"
)

func collectFrames(t *testing.T, seq timeline.Sequence, step float64) []timeline.Frame {
	sampler, err := timeline.NewSampler(seq, step)
	require.NoError(t, err)

	var frames []timeline.Frame
	for {
		frame, ok := sampler.Next()
		if !ok {
			return frames
		}
		frames = append(frames, frame)
	}
}

func TestSamplerTicksThroughMaxEnd(t *testing.T) {
	seq, err := timeline.Normalize([]model.RawNote{
		{Pitch: 60, Start: 0.0, End: 0.5, Velocity: 80},
		{Pitch: 62, Start: 0.5, End: 1.0, Velocity: 80},
	})
	require.NoError(t, err)

	frames := collectFrames(t, seq, 0.5)
	require.Len(t, frames, 3)

	assert := assert.New(t)
	assert.Equal(0.0, frames[0].Time)
	assert.Equal(0.5, frames[1].Time)
	assert.Equal(1.0, frames[2].Time)

	require.Len(t, frames[0].Active, 1)
	assert.Equal(uint8(60), frames[0].Active[0].Pitch)
	require.Len(t, frames[1].Active, 1)
	assert.Equal(uint8(62), frames[1].Active[0].Pitch)

	// the final tick lands on the last note end, which is exclusive;
	// the frame is still produced, just with nothing active
	assert.Empty(frames[2].Active)
}

func TestSamplerEmptySequence(t *testing.T) {
	frames := collectFrames(t, nil, 0.5)
	assert.Empty(t, frames)
}

func TestSamplerSilentGapsStillProduced(t *testing.T) {
	seq, err := timeline.Normalize([]model.RawNote{
		{Pitch: 60, Start: 2.0, End: 2.25, Velocity: 80},
	})
	require.NoError(t, err)

	frames := collectFrames(t, seq, 0.5)
	require.Len(t, frames, 5) // 0.0 through 2.0

	assert := assert.New(t)
	for _, frame := range frames[:4] {
		assert.Empty(frame.Active)
	}
	require.Len(t, frames[4].Active, 1)
	assert.Equal(uint8(60), frames[4].Active[0].Pitch)
}

func TestSamplerRejectsNonPositiveStep(t *testing.T) {
	seq := timeline.Sequence{{Pitch: 60, Start: 0, Duration: 1}}

	_, err := timeline.NewSampler(seq, 0)
	assert.ErrorIs(t, err, timeline.ErrInvalidStep)

	_, err = timeline.NewSampler(seq, -0.5)
	assert.ErrorIs(t, err, timeline.ErrInvalidStep)
}
