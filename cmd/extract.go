package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/Akira98000/mp3midi/constants"
	"github.com/Akira98000/mp3midi/midi"
	"github.com/Akira98000/mp3midi/render"
	"github.com/Akira98000/mp3midi/timeline"
)

var extractStep float64

func init() {
	extractCmd.Flags().Float64Var(&extractStep, "step", constants.DefaultRollStep, "piano roll time step in seconds")
	rootCmd.AddCommand(extractCmd)
}

var extractCmd = &cobra.Command{
	Use:   "extract <file.mid>",
	Short: "Extracts and displays notes from a MIDI file",
	Long:  `Extracts and displays notes from a MIDI file`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		extract(args[0], extractStep)
	},
}

func extract(path string, step float64) {
	raw, err := midi.ReadFile(path)
	if err != nil {
		logrus.Fatalf("Could not read %v: %v", path, err)
	}
	seq, err := timeline.Normalize(raw)
	if err != nil {
		logrus.Fatalf("Could not normalize notes: %v", err)
	}
	render.Table(os.Stdout, seq)
	if err := render.PianoRoll(os.Stdout, seq, step); err != nil {
		logrus.Fatalf("Could not render piano roll: %v", err)
	}
}
