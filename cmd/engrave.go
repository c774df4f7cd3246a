package cmd

import (
	"encoding/json"
	"os"

	"github.com/mkalish/quaver/engrave"
	"github.com/mkalish/quaver/midi"
	"github.com/mkalish/quaver/model"
	"github.com/mkalish/quaver/quantize"
	"github.com/mkalish/quaver/theory"
	"github.com/spf13/cobra"
)

var (
	engraveWidth float64
	engraveClef  string
	engraveRests bool
)

func init() {
	engraveCmd.Flags().Float64Var(&engraveWidth, "width", 300, "measure width in pixels")
	engraveCmd.Flags().StringVar(&engraveClef, "clef", "treble", "clef: treble, bass or alto")
	engraveCmd.Flags().BoolVar(&engraveRests, "rests", false, "fill gaps with rests")
	rootCmd.AddCommand(engraveCmd)
}

var engraveCmd = &cobra.Command{
	Use:   "engrave <file.mid>",
	Short: "Engraves a midi file into JSON measures",
	Long:  `Engraves a midi file into JSON measures`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			panic("Need 1 arg...")
		}
		runEngrave(args[0])
	},
}

func engraveFile(path string) ([]model.MeasureLayout, error) {
	s, err := midi.ReadMidiFile(path)
	if err != nil {
		return nil, err
	}
	notes, meta := midi.ExtractNotes(s)

	clef := theory.ClefFromString(engraveClef)
	q := quantize.New(
		quantize.WithClef(clef),
		quantize.WithRestFill(engraveRests),
	)
	measures := q.Quantize(notes, meta.TimeSignature, meta.Tempo, theory.FromKey(meta.Key, meta.Minor))

	e := engrave.New()
	layouts := make([]model.MeasureLayout, 0, len(measures))
	for _, m := range measures {
		layouts = append(layouts, e.LayoutMeasure(m, clef, engraveWidth))
	}
	return layouts, nil
}

func runEngrave(path string) {
	layouts, err := engraveFile(path)
	if err != nil {
		panic("Could not engrave file: " + err.Error())
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(model.EngraveResponse{Measures: layouts}); err != nil {
		panic("Could not encode output: " + err.Error())
	}
}
