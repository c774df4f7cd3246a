package quantize

import (
	"github.com/mkalish/quaver/constants"
	"github.com/mkalish/quaver/model"
)

// durationCandidates in strictly descending total length. Dots stop at one
// for eighths and sixteenths and disappear entirely below that; dotted
// short values read worse than ties.
var durationCandidates = []struct {
	duration model.Duration
	dots     int
}{
	{model.Whole, 2},
	{model.Whole, 1},
	{model.Whole, 0},
	{model.Half, 2},
	{model.Half, 1},
	{model.Half, 0},
	{model.Quarter, 2},
	{model.Quarter, 1},
	{model.Quarter, 0},
	{model.Eighth, 1},
	{model.Eighth, 0},
	{model.Sixteenth, 1},
	{model.Sixteenth, 0},
	{model.ThirtySecond, 0},
	{model.SixtyFourth, 0},
}

// determineNoteDuration picks the longest duration+dot combination fitting
// inside the actual duration whose base value respects the configured
// resolution. The bool reports whether the remainder is itself notatable
// and must continue as a tied note. Deterministic for a given input.
func (q *Quantizer) determineNoteDuration(actual float64) (model.Duration, int, bool) {
	minBeats := q.resolution.Beats()
	for _, c := range durationCandidates {
		if c.duration.Beats() < minBeats {
			continue
		}
		total := c.duration.DottedBeats(c.dots)
		if total <= actual+constants.DurationEpsilon {
			needsTie := actual-total > minBeats*constants.TieThresholdFactor
			return c.duration, c.dots, needsTie
		}
	}
	// Nothing fit: degenerate duration, fall back to the bare resolution.
	return q.resolution, 0, actual > 1.5*minBeats
}
