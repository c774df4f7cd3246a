package engrave

import (
	"github.com/mkalish/quaver/constants"
	"github.com/mkalish/quaver/model"
	"github.com/mkalish/quaver/theory"
	"github.com/mkalish/quaver/util"
)

// articulationClearance is how far (in line spacings) above/below-staff
// markings clear the outermost element.
const articulationClearance = 1.5

// ArticulationY places a marking vertically. Above/below-staff markings
// clear whichever is outermost of the staff edge, the notehead and the stem
// tip; near-notehead markings sit on the side opposite the stem so they
// never collide with it or the beam.
func (e *Engraver) ArticulationY(art model.Articulation, note *model.ScoreNote, dir model.StemDirection, clef theory.Clef) float64 {
	noteY := e.staffY(theory.StaffPosition(note.Pitch, clef))

	switch art.DefaultPlacement() {
	case model.AboveStaff:
		top := util.Min(e.staffY(8), noteY)
		if dir == model.StemUp {
			top = util.Min(top, noteY-e.stemLength())
		}
		return top - articulationClearance*e.StaffLineSpacing
	case model.BelowStaff:
		bottom := util.Max(e.staffY(0), noteY)
		if dir == model.StemDown {
			bottom = util.Max(bottom, noteY+e.stemLength())
		}
		return bottom + articulationClearance*e.StaffLineSpacing
	case model.NearNotehead:
		if dir == model.StemUp {
			return noteY + e.StaffLineSpacing
		}
		return noteY - e.StaffLineSpacing
	}
	return noteY
}

// DynamicPosition interpolates a dynamic marking's point within a measure's
// horizontal span, at a fixed drop below the staff baseline. No collision
// avoidance; dynamics rarely collide in a single voice.
func (e *Engraver) DynamicPosition(beat, measureStart, measureDuration, measureWidth float64) model.Point {
	var frac float64
	if measureDuration > 0 {
		frac = (beat - measureStart) / measureDuration
	}
	x := constants.MeasureMargin + frac*(measureWidth-2*constants.MeasureMargin)
	y := e.staffY(0) + constants.DynamicDropSpaces*e.StaffLineSpacing
	return model.Point{X: x, Y: y}
}
