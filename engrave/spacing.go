package engrave

import (
	"github.com/mkalish/quaver/constants"
	"github.com/mkalish/quaver/model"
)

// NoteSpacing distributes a measure's usable width across its notes in
// proportion to duration weight, with a floor so runs of short notes stay
// readable. Positions accumulate left to right from the left margin.
func (e *Engraver) NoteSpacing(notes []model.ScoreNote, measureWidth float64) map[string]float64 {
	positions := make(map[string]float64, len(notes))
	if len(notes) == 0 {
		return positions
	}

	var totalWeight float64
	for _, n := range notes {
		totalWeight += n.Duration.SpacingWeight()
	}

	usable := measureWidth - 2*constants.MeasureMargin
	x := constants.MeasureMargin
	for _, n := range notes {
		positions[n.ID] = x
		advance := usable * n.Duration.SpacingWeight() / totalWeight
		if advance < e.MinNoteSpacing {
			advance = e.MinNoteSpacing
		}
		x += advance
	}
	return positions
}
