package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "mp3midi",
	Short: "MP3 to MIDI transcription tool",
	Long:  `Converts audio to MIDI through a transcription sidecar, extracts notes with timing, and displays piano keys.`,
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
