package engrave

import (
	"github.com/mkalish/quaver/model"
	"github.com/mkalish/quaver/theory"
)

// LayoutMeasure runs the full set of layout computations for one measure
// and bundles the results for a renderer.
func (e *Engraver) LayoutMeasure(m model.Measure, clef theory.Clef, measureWidth float64) model.MeasureLayout {
	noteX := e.NoteSpacing(m.Notes, measureWidth)

	layout := model.MeasureLayout{
		Measure:           m,
		NoteX:             noteX,
		AccidentalOffsets: e.AccidentalOffsets(m.Notes, clef),
		Ledger:            make(map[string]model.LedgerLines),
	}

	for i := range m.Notes {
		ll := e.LedgerLines(&m.Notes[i], clef)
		if ll.Above > 0 || ll.Below > 0 {
			layout.Ledger[m.Notes[i].ID] = ll
		}
	}

	seen := make(map[string]bool)
	for _, n := range m.Notes {
		id := n.BeamGroupID
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		var group []model.ScoreNote
		for _, member := range m.Notes {
			if member.BeamGroupID == id {
				group = append(group, member)
			}
		}
		layout.Beams = append(layout.Beams, e.BeamLayout(group, clef, noteX))
	}

	return layout
}
