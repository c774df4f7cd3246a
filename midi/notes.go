package midi

import (
	"sort"

	"github.com/google/uuid"
	"github.com/mkalish/quaver/model"
	"gitlab.com/gomidi/midi/v2/smf"
	"gopkg.in/music-theory.v0/key"
)

// Meta is what the score settings need from a file besides the notes.
// Defaults apply when the file carries no meta events: 4/4, 120bpm, C major.
type Meta struct {
	TimeSignature model.TimeSignature
	Tempo         float64
	Key           key.Key
	Minor         bool
}

// circle-of-fifths names indexed by sharps+7 (flats negative)
var keyNames = []string{"Cb", "Gb", "Db", "Ab", "Eb", "Bb", "F", "C", "G", "D", "A", "E", "B", "F#", "C#"}

func keyOf(sk smf.Key) key.Key {
	sf := int(sk.Num)
	if sk.IsFlat {
		sf = -sf
	}
	idx := sf + 7
	if idx < 0 {
		idx = 0
	}
	if idx >= len(keyNames) {
		idx = len(keyNames) - 1
	}
	mode := "major"
	if !sk.IsMajor {
		mode = "minor"
	}
	return key.Of(keyNames[idx] + " " + mode)
}

// ExtractNotes walks every track pairing note starts with their ends and
// converts tick offsets into beats. The first tempo, time-signature and
// key-signature meta events win; later changes are ignored since the
// quantizer works with a single fixed context. Notes left hanging at end of
// track are dropped.
func ExtractNotes(s *smf.SMF) ([]model.MIDINote, Meta) {
	ticksPerQuarter := 480.0
	if mt, ok := s.TimeFormat.(smf.MetricTicks); ok {
		ticksPerQuarter = float64(mt)
	}

	meta := Meta{
		TimeSignature: model.TimeSignature{MeasureDuration: 4.0},
		Tempo:         120.0,
	}
	var haveTempo, haveTimeSig, haveKey bool

	type openNote struct {
		startTicks int64
		velocity   uint8
	}

	var notes []model.MIDINote
	for _, track := range s.Tracks {
		var absTicks int64
		pressed := make(map[uint8]openNote)
		for _, ev := range track {
			absTicks += int64(ev.Delta)

			var ch, pitch, vel uint8
			var bpm float64
			var num, denom, cpt, dsq uint8
			var sk smf.Key
			switch {
			case ev.Message.GetNoteStart(&ch, &pitch, &vel):
				pressed[pitch] = openNote{startTicks: absTicks, velocity: vel}
			case ev.Message.GetNoteEnd(&ch, &pitch):
				open, ok := pressed[pitch]
				if !ok {
					continue
				}
				delete(pressed, pitch)
				duration := float64(absTicks-open.startTicks) / ticksPerQuarter
				if duration <= 0 {
					continue
				}
				notes = append(notes, model.MIDINote{
					ID:            uuid.New().String(),
					Pitch:         pitch,
					StartBeat:     float64(open.startTicks) / ticksPerQuarter,
					DurationBeats: duration,
					Velocity:      open.velocity,
				})
			case ev.Message.GetMetaTempo(&bpm):
				if !haveTempo && bpm > 0 {
					meta.Tempo = bpm
					haveTempo = true
				}
			case ev.Message.GetMetaTimeSig(&num, &denom, &cpt, &dsq):
				if !haveTimeSig && denom > 0 {
					meta.TimeSignature.MeasureDuration = 4 * float64(num) / float64(denom)
					haveTimeSig = true
				}
			case ev.Message.GetMetaKey(&sk):
				if !haveKey {
					meta.Key = keyOf(sk)
					meta.Minor = !sk.IsMajor
					haveKey = true
				}
			}
		}
	}

	sort.SliceStable(notes, func(i, j int) bool {
		return notes[i].StartBeat < notes[j].StartBeat
	})
	return notes, meta
}
