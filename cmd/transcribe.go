package cmd

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/Akira98000/mp3midi/constants"
	"github.com/Akira98000/mp3midi/midi"
	"github.com/Akira98000/mp3midi/render"
	"github.com/Akira98000/mp3midi/timeline"
	"github.com/Akira98000/mp3midi/transcribe"
)

var transcribeStep float64

func init() {
	transcribeCmd.Flags().Float64Var(&transcribeStep, "step", constants.DefaultRollStep, "piano roll time step in seconds")
	rootCmd.AddCommand(transcribeCmd)
}

var transcribeCmd = &cobra.Command{
	Use:   "transcribe <input.mp3> [output.mid]",
	Short: "Transcribes an audio file to MIDI and displays the notes",
	Long:  `Transcribes an audio file to MIDI and displays the notes`,
	Args:  cobra.RangeArgs(1, 2),
	Run: func(cmd *cobra.Command, args []string) {
		var outPath string
		if len(args) == 2 {
			outPath = args[1]
		}
		runTranscribe(args[0], outPath, transcribeStep)
	},
}

func runTranscribe(audioPath, outPath string, step float64) {
	if outPath == "" {
		outPath = strings.TrimSuffix(audioPath, filepath.Ext(audioPath)) + ".mid"
	}

	client := transcribe.NewClient(constants.GetTranscriberURL())
	logrus.Infof("Transcribing %v ...", filepath.Base(audioPath))
	raw, err := client.Transcribe(context.Background(), audioPath)
	if err != nil {
		logrus.Fatalf("Transcription failed: %v", err)
	}

	if err := midi.WriteFile(outPath, raw); err != nil {
		logrus.Fatalf("Could not write %v: %v", outPath, err)
	}
	logrus.Infof("MIDI saved to %v", outPath)

	seq, err := timeline.Normalize(raw)
	if err != nil {
		logrus.Fatalf("Could not normalize notes: %v", err)
	}
	render.Table(os.Stdout, seq)
	if err := render.PianoRoll(os.Stdout, seq, step); err != nil {
		logrus.Fatalf("Could not render piano roll: %v", err)
	}
}
