package quantize

import (
	"math"
	"math/rand"
	"testing"

	"github.com/mkalish/quaver/model"
	"github.com/mkalish/quaver/theory"
	"github.com/stretchr/testify/assert"
)

var fourFour = model.TimeSignature{MeasureDuration: 4.0}

func midiNote(id string, pitch uint8, start, duration float64) model.MIDINote {
	return model.MIDINote{ID: id, Pitch: pitch, StartBeat: start, DurationBeats: duration, Velocity: 80}
}

func allNotes(measures []model.Measure) []model.ScoreNote {
	var res []model.ScoreNote
	for _, m := range measures {
		res = append(res, m.Notes...)
	}
	return res
}

func TestQuantizeEmptyInput(t *testing.T) {
	q := New()
	assert.Empty(t, q.Quantize(nil, fourFour, 120, theory.KeySignature{}))
}

func TestQuantizeBadMeasureDuration(t *testing.T) {
	q := New()
	notes := []model.MIDINote{midiNote("a", 60, 0, 1)}
	assert.Empty(t, q.Quantize(notes, model.TimeSignature{MeasureDuration: 0}, 120, theory.KeySignature{}))
	assert.Empty(t, q.Quantize(notes, model.TimeSignature{MeasureDuration: -4}, 120, theory.KeySignature{}))
}

func TestQuantizeExactMeasureFit(t *testing.T) {
	q := New()
	notes := []model.MIDINote{midiNote("a", 60, 0, 4.0)}
	measures := q.Quantize(notes, fourFour, 120, theory.KeySignature{})

	assert := assert.New(t)
	assert.Len(measures, 1)
	assert.Len(measures[0].Notes, 1)

	sn := measures[0].Notes[0]
	assert.Equal(model.Whole, sn.Duration)
	assert.Equal(0, sn.DotCount)
	assert.False(sn.TieToNext)
	assert.False(sn.TieFromPrev)
	assert.Equal("a", sn.MIDINoteID)
}

func TestQuantizeCrossMeasureTie(t *testing.T) {
	q := New()
	notes := []model.MIDINote{midiNote("a", 60, 3.5, 1.0)}
	measures := q.Quantize(notes, fourFour, 120, theory.KeySignature{})

	assert := assert.New(t)
	assert.Len(measures, 2)
	assert.Len(measures[0].Notes, 1)
	assert.Len(measures[1].Notes, 1)

	first := measures[0].Notes[0]
	second := measures[1].Notes[0]

	assert.Equal(3.5, first.StartBeat)
	assert.True(first.LengthBeats() <= 0.5)
	assert.True(first.TieToNext)
	assert.False(first.TieFromPrev)

	assert.Equal(4.0, second.StartBeat)
	assert.True(second.TieFromPrev)
	assert.Equal("a", second.MIDINoteID)
	assert.NotEqual(first.ID, second.ID)

	assert.InDelta(1.0, first.LengthBeats()+second.LengthBeats(), 0.01)
}

func TestQuantizeMeasureCap(t *testing.T) {
	q := New()
	var notes []model.MIDINote
	// one note per measure out to measure 500
	for i := 0; i < 500; i++ {
		notes = append(notes, midiNote("", 60, float64(i)*4, 1.0))
	}
	measures := q.Quantize(notes, fourFour, 120, theory.KeySignature{})

	assert := assert.New(t)
	assert.Len(measures, 100)
	for i, m := range measures {
		assert.Equal(i+1, m.Number)
	}
	// trailing notes are silently absent
	assert.Len(allNotes(measures), 100)
}

func TestQuantizeMeasurePartitionInvariant(t *testing.T) {
	q := New(WithResolution(model.SixtyFourth))
	r := rand.New(rand.NewSource(7))

	var notes []model.MIDINote
	for i := 0; i < 100; i++ {
		start := float64(r.Intn(1024)) / 16.0
		duration := float64(1+r.Intn(64)) / 16.0
		notes = append(notes, midiNote("", uint8(48+r.Intn(24)), start, duration))
	}
	measures := q.Quantize(notes, fourFour, 120, theory.KeySignature{})

	for i, m := range measures {
		if m.Number != i+1 {
			t.Fatalf("measure numbers not sequential: got %v at index %v", m.Number, i)
		}
		lo := float64(m.Number-1) * fourFour.MeasureDuration
		hi := float64(m.Number) * fourFour.MeasureDuration
		for _, n := range m.Notes {
			if n.StartBeat < lo || n.StartBeat >= hi {
				t.Errorf("note at beat %v escaped measure %v [%v, %v)", n.StartBeat, m.Number, lo, hi)
			}
		}
	}
}

func TestQuantizeTieSumInvariant(t *testing.T) {
	q := New(WithResolution(model.SixtyFourth))
	r := rand.New(rand.NewSource(42))

	var notes []model.MIDINote
	for i := 0; i < 200; i++ {
		start := float64(r.Intn(4800)) / 16.0
		duration := float64(1+r.Intn(256)) / 16.0 // up to 16 beats, 64th grid
		notes = append(notes, model.MIDINote{
			ID:            string(rune('a'+i%26)) + string(rune('0'+i/26)),
			Pitch:         uint8(40 + r.Intn(48)),
			StartBeat:     start,
			DurationBeats: duration,
			Velocity:      90,
		})
	}

	measures := q.Quantize(notes, fourFour, 120, theory.KeySignature{})

	sums := make(map[string]float64)
	for _, sn := range allNotes(measures) {
		sums[sn.MIDINoteID] += sn.LengthBeats()
	}

	for _, n := range notes {
		got, ok := sums[n.ID]
		if !ok {
			t.Fatalf("midi note %v produced no score notes", n.ID)
		}
		if math.Abs(got-n.DurationBeats) > 0.01 {
			t.Errorf("tie sum for %v: got %v, want %v", n.ID, got, n.DurationBeats)
		}
	}
}

func TestQuantizeAccidentalSuppression(t *testing.T) {
	q := New()
	fsharp := []model.MIDINote{midiNote("a", 66, 0, 1)}

	cMajor := q.Quantize(fsharp, fourFour, 120, theory.FromSharps(0))
	assert.Equal(t, model.Sharp, cMajor[0].Notes[0].Accidental)

	gMajor := q.Quantize(fsharp, fourFour, 120, theory.FromSharps(1))
	assert.Equal(t, model.NoAccidental, gMajor[0].Notes[0].Accidental)
}

func TestQuantizeBeamGrouping(t *testing.T) {
	q := New()
	notes := []model.MIDINote{
		midiNote("a", 60, 0.0, 0.5),
		midiNote("b", 62, 0.5, 0.5),
		midiNote("c", 64, 1.0, 0.5),
		midiNote("d", 65, 1.5, 0.5),
		midiNote("e", 67, 2.0, 1.0), // quarter: breaks the run
		midiNote("f", 69, 3.0, 0.5),
	}
	measures := q.Quantize(notes, fourFour, 120, theory.KeySignature{})

	assert := assert.New(t)
	assert.Len(measures, 1)
	sns := measures[0].Notes

	groupID := sns[0].BeamGroupID
	assert.NotEmpty(groupID)
	for _, sn := range sns[:4] {
		assert.Equal(groupID, sn.BeamGroupID)
	}
	assert.Empty(sns[4].BeamGroupID, "quarter note should not be beamed")
	assert.Empty(sns[5].BeamGroupID, "run of one should not be beamed")
}

func TestQuantizeBeamGroupStemUniformity(t *testing.T) {
	q := New()
	notes := []model.MIDINote{
		midiNote("a", 60, 0.0, 0.5), // below middle line
		midiNote("b", 79, 0.5, 0.5), // above middle line
		midiNote("c", 81, 1.0, 0.5),
		midiNote("d", 60, 1.5, 0.5),
	}
	measures := q.Quantize(notes, fourFour, 120, theory.KeySignature{})

	sns := measures[0].Notes
	for _, sn := range sns[1:] {
		if sn.StemDir != sns[0].StemDir {
			t.Errorf("beamed notes disagree on stem direction: %v vs %v", sn.StemDir, sns[0].StemDir)
		}
	}
}

func TestQuantizeRestFill(t *testing.T) {
	notes := []model.MIDINote{
		midiNote("a", 60, 1.0, 1.0),
		midiNote("b", 62, 3.0, 1.0),
	}

	t.Run("disabled by default", func(t *testing.T) {
		measures := New().Quantize(notes, fourFour, 120, theory.KeySignature{})
		assert.Empty(t, measures[0].Rests)
	})

	t.Run("fills gaps when enabled", func(t *testing.T) {
		measures := New(WithRestFill(true)).Quantize(notes, fourFour, 120, theory.KeySignature{})
		rests := measures[0].Rests
		assert := assert.New(t)
		assert.Len(rests, 2)
		assert.Equal(0.0, rests[0].StartBeat)
		assert.Equal(model.Quarter, rests[0].Duration)
		assert.Equal(2.0, rests[1].StartBeat)
		assert.Equal(model.Quarter, rests[1].Duration)
	})
}

func TestQuantizeTupletDetection(t *testing.T) {
	q := New()
	// three sixteenth-length notes packed into half the straight span
	notes := []model.MIDINote{
		midiNote("a", 60, 0.0, 0.25),
		midiNote("b", 62, 0.125, 0.25),
		midiNote("c", 64, 0.25, 0.25),
	}
	measures := q.Quantize(notes, fourFour, 120, theory.KeySignature{})

	assert := assert.New(t)
	assert.Len(measures[0].Tuplets, 1)
	tuplet := measures[0].Tuplets[0]
	assert.Equal(3, tuplet.ActualNotes)
	assert.Equal(2, tuplet.NormalNotes)
	assert.Len(tuplet.NoteIDs, 3)
}

func TestQuantizeDoesNotMutateInput(t *testing.T) {
	q := New()
	notes := []model.MIDINote{midiNote("a", 66, 3.5, 2.0)}
	before := notes[0]
	q.Quantize(notes, fourFour, 120, theory.FromSharps(2))
	assert.Equal(t, before, notes[0])
}
