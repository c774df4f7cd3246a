package quantize

import (
	"github.com/mkalish/quaver/constants"
	"github.com/mkalish/quaver/model"
	"github.com/mkalish/quaver/util"
)

// restValues largest first; rests are never dotted.
var restValues = []model.Duration{
	model.Whole,
	model.Half,
	model.Quarter,
	model.Eighth,
	model.Sixteenth,
	model.ThirtySecond,
	model.SixtyFourth,
}

// fillMeasureRests walks the measure's notes in start order and fills every
// uncovered gap — before, between and after notes — with rests.
func (q *Quantizer) fillMeasureRests(m *model.Measure, ts model.TimeSignature) {
	start := m.StartBeat(ts)
	end := start + ts.MeasureDuration

	covered := start
	for _, n := range m.Notes {
		if n.StartBeat > covered+constants.DurationEpsilon {
			q.fillGap(m, covered, n.StartBeat)
		}
		covered = util.Max(covered, n.StartBeat+n.LengthBeats())
	}
	if end > covered+constants.DurationEpsilon {
		q.fillGap(m, covered, end)
	}
}

// fillGap greedily decomposes a gap into the largest fitting rest values.
// The iteration cap guards against pathological floating point remainders.
func (q *Quantizer) fillGap(m *model.Measure, from, to float64) {
	pos := from
	for iter := 0; iter < constants.RestFillIterationCap; iter++ {
		gap := to - pos
		if gap <= constants.DurationEpsilon {
			return
		}
		d, ok := largestFittingRest(gap)
		if !ok {
			return
		}
		m.Rests = append(m.Rests, model.ScoreRest{StartBeat: pos, Duration: d})
		pos += d.Beats()
	}
}

func largestFittingRest(gap float64) (model.Duration, bool) {
	for _, d := range restValues {
		if d.Beats() <= gap+constants.DurationEpsilon {
			return d, true
		}
	}
	return 0, false
}
