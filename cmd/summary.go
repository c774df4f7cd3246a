package cmd

import (
	"fmt"

	"github.com/mkalish/quaver/midi"
	"github.com/mkalish/quaver/quantize"
	"github.com/mkalish/quaver/theory"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(summaryCmd)
}

var summaryCmd = &cobra.Command{
	Use:   "summary <file.mid>",
	Short: "Prints a notation report for a midi file",
	Long:  `Prints a notation report for a midi file`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			panic("Need 1 arg...")
		}
		summarize(args[0])
	},
}

func summarize(path string) {
	s, err := midi.ReadMidiFile(path)
	if err != nil {
		panic("Could not read midi file: " + err.Error())
	}
	notes, meta := midi.ExtractNotes(s)

	q := quantize.New()
	measures := q.Quantize(notes, meta.TimeSignature, meta.Tempo, theory.FromKey(meta.Key, meta.Minor))

	var numNotes, numTied, numAccidentals, numTuplets int
	beamGroups := make(map[string]bool)
	notated := make(map[string]bool)
	for _, m := range measures {
		numNotes += len(m.Notes)
		numTuplets += len(m.Tuplets)
		for _, n := range m.Notes {
			notated[n.MIDINoteID] = true
			if n.TieToNext {
				numTied++
			}
			if n.Accidental != 0 {
				numAccidentals++
			}
			if n.BeamGroupID != "" {
				beamGroups[n.BeamGroupID] = true
			}
		}
	}

	fmt.Printf("input notes: %v\n", len(notes))
	fmt.Printf("measures: %v\n", len(measures))
	fmt.Printf("score notes: %v\n", numNotes)
	fmt.Printf("ties: %v\n", numTied)
	fmt.Printf("printed accidentals: %v\n", numAccidentals)
	fmt.Printf("beam groups: %v\n", len(beamGroups))
	fmt.Printf("suspected triplets: %v\n", numTuplets)
	fmt.Printf("notes dropped from notation: %v\n", len(notes)-len(notated))
}
