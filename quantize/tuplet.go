package quantize

import (
	"math"

	"github.com/mkalish/quaver/constants"
	"github.com/mkalish/quaver/model"
)

// detectTuplets slides a window of three notes over the measure and flags
// windows whose wall-clock span lands within tolerance of twice the first
// note's nominal length. Best effort only: false positives and negatives
// are accepted. A full implementation would analyze timing ratios more
// carefully.
func detectTuplets(m *model.Measure, tempo float64) {
	if tempo <= 0 {
		tempo = 120
	}
	secondsPerBeat := 60.0 / tempo

	i := 0
	for i+2 < len(m.Notes) {
		first := m.Notes[i]
		third := m.Notes[i+2]
		span := (third.StartBeat + third.LengthBeats() - first.StartBeat) * secondsPerBeat
		expected := 2 * first.LengthBeats() * secondsPerBeat
		if expected > 0 && math.Abs(span-expected) <= constants.TupletSpanTolerance*expected {
			m.Tuplets = append(m.Tuplets, model.Tuplet{
				NoteIDs:     []string{m.Notes[i].ID, m.Notes[i+1].ID, m.Notes[i+2].ID},
				ActualNotes: 3,
				NormalNotes: 2,
			})
			i += 3
		} else {
			i++
		}
	}
}
