package engrave

import (
	"github.com/mkalish/quaver/model"
	"github.com/mkalish/quaver/theory"
	"github.com/mkalish/quaver/util"
)

// StemDirection picks the stem side for a single note. Notes above the
// middle line point down, notes below point up. A note sitting exactly on
// the middle line follows the previous note's direction for readability,
// defaulting to down.
func (e *Engraver) StemDirection(note *model.ScoreNote, clef theory.Clef, prev *model.StemDirection) model.StemDirection {
	pos := theory.StaffPosition(note.Pitch, clef)
	switch {
	case pos > 4:
		return model.StemDown
	case pos < 4:
		return model.StemUp
	}
	if prev != nil {
		return *prev
	}
	return model.StemDown
}

// GroupStemDirection decides one shared direction for a beamed group: stems
// point away from whichever side of the middle line the group reaches
// farther into, keeping stem lengths short. Ties fall back to the mean
// position.
func (e *Engraver) GroupStemDirection(notes []model.ScoreNote, clef theory.Clef) model.StemDirection {
	if len(notes) == 0 {
		return model.StemDown
	}
	minPos := theory.StaffPosition(notes[0].Pitch, clef)
	maxPos := minPos
	sum := 0
	for _, n := range notes {
		pos := theory.StaffPosition(n.Pitch, clef)
		minPos = util.Min(minPos, pos)
		maxPos = util.Max(maxPos, pos)
		sum += pos
	}
	distanceToTop := maxPos - 4
	distanceToBottom := 4 - minPos
	switch {
	case distanceToTop > distanceToBottom:
		return model.StemDown
	case distanceToTop < distanceToBottom:
		return model.StemUp
	}
	if float64(sum)/float64(len(notes)) >= 4 {
		return model.StemDown
	}
	return model.StemUp
}
