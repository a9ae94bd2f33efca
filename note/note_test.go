package note_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Akira98000/mp3midi/note"
)

func TestMiddleC(t *testing.T) {
	info, err := note.Name(60)

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal("C", info.English)
	assert.Equal("Do", info.French)
	assert.False(info.IsSharp)
	assert.Equal(4, note.Octave(60))
}

func TestMiddleCSharp(t *testing.T) {
	info, err := note.Name(61)

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal("C#", info.English)
	assert.Equal("Do#", info.French)
	assert.True(info.IsSharp)
	assert.Equal(4, note.Octave(61))
}

func TestKnownPitches(t *testing.T) {
	cases := []struct {
		pitch   uint8
		english string
		french  string
		octave  int
	}{
		{0, "C", "Do", -1},
		{21, "A", "La", 0},
		{66, "F#", "Fa#", 4},
		{69, "A", "La", 4},
		{70, "A#", "La#", 4},
		{127, "G", "Sol", 9},
	}

	for _, c := range cases {
		t.Run(fmt.Sprintf("pitch %v", c.pitch), func(t *testing.T) {
			info, err := note.Name(c.pitch)

			assert := assert.New(t)
			assert.NoError(err)
			assert.Equal(c.english, info.English)
			assert.Equal(c.french, info.French)
			assert.Equal(c.octave, note.Octave(c.pitch))
		})
	}
}

func TestMappingIsTotalOverMidiRange(t *testing.T) {
	assert := assert.New(t)
	for pitch := 0; pitch <= 127; pitch++ {
		info, err := note.Name(uint8(pitch))
		assert.NoError(err)
		assert.NotEmpty(info.English)
		assert.NotEmpty(info.French)
		assert.Equal(pitch/12-1, note.Octave(uint8(pitch)))

		// octave-independent: same pitch class a full octave up
		if pitch+12 <= 127 {
			up, err := note.Name(uint8(pitch + 12))
			assert.NoError(err)
			assert.Equal(info, up)
		}
	}
}

func TestOutOfRangePitch(t *testing.T) {
	_, err := note.Name(128)
	assert.ErrorIs(t, err, note.ErrOutOfRange)

	_, err = note.Name(255)
	assert.ErrorIs(t, err, note.ErrOutOfRange)
}
