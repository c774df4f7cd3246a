// Package quantize turns flat MIDI note lists into measures of notatable
// score entities. It is the single entry point of the notation pipeline:
// everything downstream (stems, beams, spacing) hangs off the measures
// produced here. Quantization is purely derivational — the input notes are
// never written to — and never fails: malformed input degrades to an empty
// or truncated score instead of an error.
package quantize

import (
	"sort"

	"github.com/google/uuid"
	"github.com/mkalish/quaver/constants"
	"github.com/mkalish/quaver/engrave"
	"github.com/mkalish/quaver/model"
	"github.com/mkalish/quaver/theory"
	"github.com/mkalish/quaver/util"
)

type Quantizer struct {
	resolution model.Duration
	fillRests  bool
	clef       theory.Clef
	engraver   *engrave.Engraver
}

type Option func(*Quantizer)

// WithResolution sets the shortest note value the quantizer will emit.
func WithResolution(d model.Duration) Option {
	return func(q *Quantizer) { q.resolution = d }
}

// WithRestFill toggles gap filling with rests.
func WithRestFill(enabled bool) Option {
	return func(q *Quantizer) { q.fillRests = enabled }
}

// WithClef sets the clef used for the engraving pass.
func WithClef(c theory.Clef) Option {
	return func(q *Quantizer) { q.clef = c }
}

func New(opts ...Option) *Quantizer {
	q := &Quantizer{
		resolution: model.Sixteenth,
		fillRests:  constants.RestFillEnabled(),
		clef:       theory.TrebleClef,
		engraver:   engrave.New(),
	}
	for _, opt := range opts {
		opt(q)
	}
	return q
}

// Quantize converts notes into an ordered list of populated measures under
// the given time and key signatures. Tempo only feeds the tuplet heuristic;
// all durations are in beats. Calls are self-contained and safe to run in
// parallel for different tracks.
func (q *Quantizer) Quantize(notes []model.MIDINote, ts model.TimeSignature, tempo float64, ks theory.KeySignature) []model.Measure {
	if len(notes) == 0 || ts.MeasureDuration <= 0 {
		return nil
	}

	measures := q.makeMeasures(notes, ts)
	for _, n := range notes {
		q.placeNote(measures, n, ts, ks)
	}

	for i := range measures {
		m := &measures[i]
		sort.SliceStable(m.Notes, func(a, b int) bool {
			return m.Notes[a].StartBeat < m.Notes[b].StartBeat
		})
		if q.fillRests {
			q.fillMeasureRests(m, ts)
		}
		assignBeamGroups(m)
		detectTuplets(m, tempo)
		q.applyEngraving(m)
	}
	return measures
}

// makeMeasures sizes the measure list from the furthest note end, capped so
// corrupt or huge input can't cause runaway allocation. Notes past the cap
// are silently absent from notation; the underlying MIDI is untouched.
func (q *Quantizer) makeMeasures(notes []model.MIDINote, ts model.TimeSignature) []model.Measure {
	var furthest float64
	for _, n := range notes {
		furthest = util.Max(furthest, n.EndBeat())
	}

	count := int(furthest / ts.MeasureDuration)
	if float64(count)*ts.MeasureDuration < furthest {
		count++
	}
	count = util.Clamp(count, 1, constants.MaxMeasures)

	measures := make([]model.Measure, count)
	for i := range measures {
		measures[i].Number = i + 1
	}
	return measures
}

// placeNote locates the note's measure and emits the first ScoreNote,
// clipped to the measure boundary. Whatever duration the chosen value
// doesn't cover continues as tied notes.
func (q *Quantizer) placeNote(measures []model.Measure, n model.MIDINote, ts model.TimeSignature, ks theory.KeySignature) {
	idx := int(n.StartBeat / ts.MeasureDuration)
	if idx < 0 || idx >= len(measures) {
		return
	}

	available := float64(idx+1)*ts.MeasureDuration - n.StartBeat
	target := util.Min(n.DurationBeats, available)
	d, dots, _ := q.determineNoteDuration(target)
	covered := d.DottedBeats(dots)
	leftover := n.DurationBeats - covered
	tie := leftover > q.resolution.Beats()*constants.TieThresholdFactor

	measures[idx].Notes = append(measures[idx].Notes, model.ScoreNote{
		ID:         uuid.New().String(),
		MIDINoteID: n.ID,
		Pitch:      n.Pitch,
		StartBeat:  n.StartBeat,
		Duration:   d,
		DotCount:   dots,
		Accidental: theory.DisplayAccidental(n.Pitch, ks),
		TieToNext:  tie,
		Velocity:   n.Velocity,
	})

	if tie {
		q.continueTie(measures, n, ts, ks, n.StartBeat+covered, leftover)
	}
}

// continueTie consumes the remaining duration of a note that didn't fit a
// single value, appending tied ScoreNotes and rolling over measure
// boundaries until the remainder is negligible or measures run out.
func (q *Quantizer) continueTie(measures []model.Measure, n model.MIDINote, ts model.TimeSignature, ks theory.KeySignature, pos, remaining float64) {
	for remaining >= constants.TieSumEpsilon {
		idx := int(pos / ts.MeasureDuration)
		if idx < 0 || idx >= len(measures) {
			return
		}

		available := float64(idx+1)*ts.MeasureDuration - pos
		target := util.Min(remaining, available)
		d, dots, _ := q.determineNoteDuration(target)
		covered := d.DottedBeats(dots)
		remaining -= covered

		measures[idx].Notes = append(measures[idx].Notes, model.ScoreNote{
			ID:          uuid.New().String(),
			MIDINoteID:  n.ID,
			Pitch:       n.Pitch,
			StartBeat:   pos,
			Duration:    d,
			DotCount:    dots,
			Accidental:  theory.DisplayAccidental(n.Pitch, ks),
			TieFromPrev: true,
			TieToNext:   remaining >= constants.TieSumEpsilon,
			Velocity:    n.Velocity,
		})
		pos += covered
	}
}

// applyEngraving commits stem directions in two passes: individual
// directions first into a side buffer, then beam-group overrides, then one
// write back onto the notes.
func (q *Quantizer) applyEngraving(m *model.Measure) {
	dirs := make([]model.StemDirection, len(m.Notes))
	for i := range m.Notes {
		var prev *model.StemDirection
		if i > 0 {
			prev = &dirs[i-1]
		}
		dirs[i] = q.engraver.StemDirection(&m.Notes[i], q.clef, prev)
	}

	groups := make(map[string][]int)
	for i := range m.Notes {
		if id := m.Notes[i].BeamGroupID; id != "" {
			groups[id] = append(groups[id], i)
		}
	}
	for _, members := range groups {
		group := make([]model.ScoreNote, 0, len(members))
		for _, i := range members {
			group = append(group, m.Notes[i])
		}
		dir := q.engraver.GroupStemDirection(group, q.clef)
		for _, i := range members {
			dirs[i] = dir
		}
	}

	for i := range m.Notes {
		m.Notes[i].StemDir = dirs[i]
	}
}
