package engrave

import (
	"sort"

	"github.com/mkalish/quaver/constants"
	"github.com/mkalish/quaver/model"
	"github.com/mkalish/quaver/theory"
)

// AccidentalOffsets staggers accidentals that would collide vertically.
// Sorted by staff position, each accidental within two positions of its
// lower neighbor moves one column further left; a larger gap resets the
// column. The result is the conventional left-staircase seen in chords.
func (e *Engraver) AccidentalOffsets(notes []model.ScoreNote, clef theory.Clef) map[string]float64 {
	type candidate struct {
		id  string
		pos int
	}
	var withAccidental []candidate
	for _, n := range notes {
		if n.Accidental != model.NoAccidental {
			withAccidental = append(withAccidental, candidate{n.ID, theory.StaffPosition(n.Pitch, clef)})
		}
	}
	sort.SliceStable(withAccidental, func(i, j int) bool {
		return withAccidental[i].pos < withAccidental[j].pos
	})

	offsets := make(map[string]float64, len(withAccidental))
	column := 0
	for i, c := range withAccidental {
		if i > 0 && c.pos-withAccidental[i-1].pos <= constants.AccidentalProximity {
			column++
		} else {
			column = 0
		}
		offsets[c.id] = -float64(column) * e.AccidentalSpacing
	}
	return offsets
}
