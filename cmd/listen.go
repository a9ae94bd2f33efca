package cmd

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	gomidi "gitlab.com/gomidi/midi/v2"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // autoregisters driver

	"github.com/Akira98000/mp3midi/note"
)

func init() {
	rootCmd.AddCommand(listenCmd)
}

var listenCmd = &cobra.Command{
	Use:   "listen",
	Short: "Names notes from a connected MIDI input in real time",
	Long:  `Names notes from a connected MIDI input in real time`,
	Run: func(cmd *cobra.Command, args []string) {
		listen()
	},
}

func listen() {
	defer gomidi.CloseDriver()

	in, err := gomidi.InPort(0)
	if err != nil {
		logrus.Fatal("can't find a MIDI input port")
	}

	stop, err := gomidi.ListenTo(in, func(msg gomidi.Message, timestampms int32) {
		var ch, key, vel uint8
		switch {
		case msg.GetNoteStart(&ch, &key, &vel):
			info, err := note.Name(key)
			if err != nil {
				logrus.Warnf("ignoring pitch %v: %v", key, err)
				return
			}
			octave := note.Octave(key)
			fmt.Printf("%s%d (%s%d) vel=%d\n", info.English, octave, info.French, octave, vel)
		default:
			// ignore
		}
	})
	if err != nil {
		logrus.Fatalf("Could not listen: %v", err)
	}
	defer stop()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)
	<-sig
}
