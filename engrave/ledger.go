package engrave

import (
	"github.com/mkalish/quaver/model"
	"github.com/mkalish/quaver/theory"
)

// LedgerLines counts the extensions needed outside the printed staff.
// Lines sit two positions apart, so the counts follow the alternating
// line/space steps.
func (e *Engraver) LedgerLines(note *model.ScoreNote, clef theory.Clef) model.LedgerLines {
	pos := theory.StaffPosition(note.Pitch, clef)
	var ll model.LedgerLines
	if pos < 0 {
		ll.Below = (-pos + 1) / 2
	}
	if pos > 8 {
		ll.Above = (pos - 8 + 1) / 2
	}
	return ll
}
