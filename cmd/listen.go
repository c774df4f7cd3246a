package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"sync"
	"time"

	"github.com/bep/debounce"
	"github.com/google/uuid"
	"github.com/mkalish/quaver/model"
	"github.com/mkalish/quaver/quantize"
	"github.com/mkalish/quaver/theory"
	"github.com/spf13/cobra"
	gomidi "gitlab.com/gomidi/midi/v2"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // autoregisters driver
)

func init() {
	rootCmd.AddCommand(listenCmd)
}

var listenCmd = &cobra.Command{
	Use:   "listen",
	Short: "Engraves live midi input",
	Long:  `Engraves live midi input`,
	Run: func(cmd *cobra.Command, args []string) {
		startListen()
	},
}

// listenTempo is fixed for live input; there is no tempo meta on a wire.
const listenTempo = 120.0

func startListen() {
	defer gomidi.CloseDriver()
	in, err := gomidi.InPort(0)
	if err != nil {
		fmt.Println("can't find a midi in port")
		return
	}

	q := quantize.New()
	deb := debounce.New(500 * time.Millisecond)

	type openNote struct {
		startBeat float64
		velocity  uint8
	}

	var mu sync.Mutex
	var live []model.MIDINote
	pressed := make(map[uint8]openNote)

	toBeat := func(timestampms int32) float64 {
		return float64(timestampms) / 1000 * listenTempo / 60
	}

	// each debounced run replaces the previous output wholesale; a stale
	// quantization is simply overwritten by the next one
	requantize := func() {
		mu.Lock()
		notes := make([]model.MIDINote, len(live))
		copy(notes, live)
		mu.Unlock()

		measures := q.Quantize(notes, model.TimeSignature{MeasureDuration: 4}, listenTempo, theory.KeySignature{})
		var scoreNotes int
		for _, m := range measures {
			scoreNotes += len(m.Notes)
		}
		fmt.Printf("engraved %v notes into %v measures (%v score notes)\n", len(notes), len(measures), scoreNotes)
	}

	stop, err := gomidi.ListenTo(in, func(msg gomidi.Message, timestampms int32) {
		var ch, pitch, vel uint8
		switch {
		case msg.GetNoteStart(&ch, &pitch, &vel):
			mu.Lock()
			pressed[pitch] = openNote{startBeat: toBeat(timestampms), velocity: vel}
			mu.Unlock()
		case msg.GetNoteEnd(&ch, &pitch):
			mu.Lock()
			if open, ok := pressed[pitch]; ok {
				delete(pressed, pitch)
				duration := toBeat(timestampms) - open.startBeat
				if duration <= 0 {
					duration = model.SixtyFourth.Beats()
				}
				live = append(live, model.MIDINote{
					ID:            uuid.New().String(),
					Pitch:         pitch,
					StartBeat:     open.startBeat,
					DurationBeats: duration,
					Velocity:      open.velocity,
				})
			}
			mu.Unlock()
			deb(requantize)
		default:
			// ignore
		}
	})
	if err != nil {
		fmt.Printf("ERROR: %s\n", err)
		return
	}

	fmt.Println("listening... ctrl-c to stop")
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)
	<-sig
	stop()
}
