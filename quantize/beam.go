package quantize

import (
	"github.com/google/uuid"
	"github.com/mkalish/quaver/model"
)

// assignBeamGroups links maximal runs of two or more consecutive flagged
// notes (eighth or shorter) under a shared fresh group id. A lone short
// note keeps its flag.
func assignBeamGroups(m *model.Measure) {
	var run []int
	flush := func() {
		if len(run) >= 2 {
			id := uuid.New().String()
			for _, i := range run {
				m.Notes[i].BeamGroupID = id
			}
		}
		run = run[:0]
	}

	for i := range m.Notes {
		if m.Notes[i].Duration.FlagCount() > 0 {
			run = append(run, i)
		} else {
			flush()
		}
	}
	flush()
}
