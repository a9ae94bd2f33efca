package model

// RawNote is a decoded note event as handed over by an upstream
// collaborator (MIDI file parser or transcription model). Times are in
// seconds; Pitch and Velocity follow standard MIDI numbering.
type RawNote struct {
	Pitch    uint8   `json:"pitch"`
	Start    float64 `json:"start"`
	End      float64 `json:"end"`
	Velocity uint8   `json:"velocity"`
}

// Note is the canonical, display-ready form of a RawNote. Start and
// Duration are rounded to millisecond precision; NameEN and NameFR carry
// the octave suffix, e.g. "C4" and "Do4".
type Note struct {
	Pitch    uint8   `json:"midi_number"`
	Octave   int     `json:"octave"`
	NameEN   string  `json:"name_en"`
	NameFR   string  `json:"name_fr"`
	IsSharp  bool    `json:"is_sharp"`
	Start    float64 `json:"start"`
	Duration float64 `json:"duration"`
	Velocity uint8   `json:"velocity"`
}
