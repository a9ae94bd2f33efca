package constants

import "os"

func GetTranscriberURL() string {
	url := os.Getenv("TRANSCRIBER_URL")
	if url != "" {
		return url
	}
	return "http://localhost:8321"
}

func GetServePort() string {
	port := os.Getenv("PORT")
	if port != "" {
		return port
	}
	return "8080"
}

// DefaultRollStep is the piano-roll time resolution in seconds.
const DefaultRollStep = 0.5

// Fixed tempo and resolution used when encoding note events to a MIDI
// file. Transcribed notes carry wall-clock seconds, not musical beats, so
// any fixed tempo works as long as reading uses the same tempo map.
const (
	WriteBPM        = 120
	TicksPerQuarter = 960
)
