package engrave

import (
	"github.com/mkalish/quaver/model"
	"github.com/mkalish/quaver/theory"
	"github.com/mkalish/quaver/util"
)

// BeamLayout computes the beam geometry for a group of two or more notes.
// The slope follows the first and last note only — a simplification versus
// full engraving practice — and is capped so beams never look extreme. The
// beam sits a fixed stem length away from the endpoint noteheads, on the
// stem side, and carries one line per flag of the group's shortest value.
func (e *Engraver) BeamLayout(notes []model.ScoreNote, clef theory.Clef, noteX map[string]float64) model.BeamLayout {
	if len(notes) < 2 {
		return model.BeamLayout{}
	}

	dir := e.GroupStemDirection(notes, clef)

	first := notes[0]
	last := notes[len(notes)-1]
	startY := e.staffY(theory.StaffPosition(first.Pitch, clef))
	endY := e.staffY(theory.StaffPosition(last.Pitch, clef))
	if dir == model.StemUp {
		startY -= e.stemLength()
		endY -= e.stemLength()
	} else {
		startY += e.stemLength()
		endY += e.stemLength()
	}

	dx := noteX[last.ID] - noteX[first.ID]
	var slope float64
	if dx > 0 {
		slope = util.Clamp((endY-startY)/dx, -e.MaxBeamSlope, e.MaxBeamSlope)
	}
	endY = startY + slope*dx

	beamCount := 0
	for _, n := range notes {
		beamCount = util.Max(beamCount, n.Duration.FlagCount())
	}

	return model.BeamLayout{
		Angle:     slope,
		StartY:    startY,
		EndY:      endY,
		BeamCount: beamCount,
		StemDir:   dir,
	}
}
