package note

import (
	"errors"
	"fmt"
)

// ErrOutOfRange is returned for pitches outside the MIDI range 0-127.
var ErrOutOfRange = errors.New("pitch out of range")

// Info names a single pitch class in both naming systems, without the
// octave. Spelling is sharp-only; flats are never produced.
type Info struct {
	English string
	French  string
	IsSharp bool
}

// One entry per pitch class, indexed by pitch mod 12 (C = 0). The French
// name of a sharp is the solfège syllable of the letter below it plus "#".
var names = [12]Info{
	{English: "C", French: "Do"},
	{English: "C#", French: "Do#", IsSharp: true},
	{English: "D", French: "Ré"},
	{English: "D#", French: "Ré#", IsSharp: true},
	{English: "E", French: "Mi"},
	{English: "F", French: "Fa"},
	{English: "F#", French: "Fa#", IsSharp: true},
	{English: "G", French: "Sol"},
	{English: "G#", French: "Sol#", IsSharp: true},
	{English: "A", French: "La"},
	{English: "A#", French: "La#", IsSharp: true},
	{English: "B", French: "Si"},
}

// Name maps a MIDI pitch to its pitch-class names. The result does not
// depend on the octave; same pitch always yields the same Info.
func Name(pitch uint8) (Info, error) {
	if pitch > 127 {
		return Info{}, fmt.Errorf("%w: %v", ErrOutOfRange, pitch)
	}
	return names[pitch%12], nil
}

// Octave returns the octave number for a pitch, with middle C (60) in
// octave 4.
func Octave(pitch uint8) int {
	return int(pitch)/12 - 1
}
