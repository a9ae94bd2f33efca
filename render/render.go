package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/Akira98000/mp3midi/timeline"
)

// Table writes the note listing in a fixed-width layout, one row per
// note, with a trailing marker on sharps.
func Table(w io.Writer, seq timeline.Sequence) {
	if len(seq) == 0 {
		fmt.Fprintln(w, "No notes found.")
		return
	}

	fmt.Fprintf(w, "\n%s\n", strings.Repeat("=", 70))
	fmt.Fprintf(w, "%8s  %8s  %10s  %10s  %5s  %3s\n",
		"Time", "Duration", "Note (EN)", "Note (FR)", "MIDI#", "Vel")
	fmt.Fprintf(w, "%s\n", strings.Repeat("-", 70))

	for _, n := range seq {
		marker := "  "
		if n.IsSharp {
			marker = " #"
		}
		fmt.Fprintf(w, "%7.3fs  %7.3fs  %10s  %10s  %5d  %3d%s\n",
			n.Start, n.Duration, n.NameEN, n.NameFR, n.Pitch, n.Velocity, marker)
	}

	fmt.Fprintf(w, "%s\n", strings.Repeat("=", 70))
	fmt.Fprintf(w, "Total notes: %d\n", len(seq))
}

// PianoRoll writes a text piano roll, one row per sample tick that has at
// least one active note. Silent ticks are the renderer's to drop; the
// sampler still produces them.
func PianoRoll(w io.Writer, seq timeline.Sequence, step float64) error {
	sampler, err := timeline.NewSampler(seq, step)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "\nPiano Roll (step=%vs):\n", step)
	fmt.Fprintf(w, "%s\n", strings.Repeat("-", 60))

	for {
		frame, ok := sampler.Next()
		if !ok {
			break
		}
		if len(frame.Active) == 0 {
			continue
		}
		names := make([]string, 0, len(frame.Active))
		for _, n := range frame.Active {
			names = append(names, n.NameFR)
		}
		fmt.Fprintf(w, "  %7.2fs | %s\n", frame.Time, strings.Join(names, ", "))
	}

	fmt.Fprintf(w, "%s\n", strings.Repeat("-", 60))
	return nil
}
