package model

// MIDINote is the read-only input to quantization. The quantizer never
// mutates these; the score is derived from them and can always be rebuilt.
type MIDINote struct {
	ID            string  `json:"id"`
	Pitch         uint8   `json:"pitch"`
	StartBeat     float64 `json:"start_beat"`
	DurationBeats float64 `json:"duration_beats"`
	Velocity      uint8   `json:"velocity"`
}

// EndBeat is the beat position at which the note stops sounding.
func (n MIDINote) EndBeat() float64 {
	return n.StartBeat + n.DurationBeats
}

type Accidental int

const (
	NoAccidental Accidental = iota
	Sharp
	Flat
	Natural
	DoubleSharp
	DoubleFlat
)

func (a Accidental) String() string {
	switch a {
	case NoAccidental:
		return ""
	case Sharp:
		return "#"
	case Flat:
		return "b"
	case Natural:
		return "n"
	case DoubleSharp:
		return "##"
	case DoubleFlat:
		return "bb"
	}
	return ""
}

type StemDirection int

const (
	StemUp StemDirection = iota
	StemDown
)

func (s StemDirection) String() string {
	if s == StemDown {
		return "down"
	}
	return "up"
}

// ScoreNote is one notated note head. A single MIDINote can fan out into
// several ScoreNotes joined by ties, which is why every instance gets a
// fresh ID while MIDINoteID stays shared.
type ScoreNote struct {
	ID          string        `json:"id"`
	MIDINoteID  string        `json:"midi_note_id"`
	Pitch       uint8         `json:"pitch"`
	StartBeat   float64       `json:"start_beat"`
	Duration    Duration      `json:"duration"`
	DotCount    int           `json:"dot_count"`
	Accidental  Accidental    `json:"accidental"`
	TieToNext   bool          `json:"tie_to_next"`
	TieFromPrev bool          `json:"tie_from_prev"`
	BeamGroupID string        `json:"beam_group_id,omitempty"`
	StemDir     StemDirection `json:"stem_direction"`
	Velocity    uint8         `json:"velocity"`
}

// LengthBeats is the notated length including dots.
func (n ScoreNote) LengthBeats() float64 {
	return n.Duration.DottedBeats(n.DotCount)
}

// ScoreRest fills silence between notes. No pitch, no ties, no stem.
type ScoreRest struct {
	StartBeat float64  `json:"start_beat"`
	Duration  Duration `json:"duration"`
}

// Tuplet annotates three notes suspected to form a triplet. Detection is
// heuristic and never alters durations.
type Tuplet struct {
	NoteIDs     []string `json:"note_ids"`
	ActualNotes int      `json:"actual_notes"`
	NormalNotes int      `json:"normal_notes"`
}

type Articulation int

const (
	Staccato Articulation = iota
	Accent
	Tenuto
	Marcato
	Fermata
	FermataBelow
)

func (a Articulation) String() string {
	switch a {
	case Staccato:
		return "staccato"
	case Accent:
		return "accent"
	case Tenuto:
		return "tenuto"
	case Marcato:
		return "marcato"
	case Fermata:
		return "fermata"
	case FermataBelow:
		return "fermata_below"
	}
	return "unknown"
}

// ArticulationPlacement is the marking's declared default position relative
// to the staff and notehead.
type ArticulationPlacement int

const (
	AboveStaff ArticulationPlacement = iota
	BelowStaff
	NearNotehead
)

func (a Articulation) DefaultPlacement() ArticulationPlacement {
	switch a {
	case Marcato, Fermata:
		return AboveStaff
	case FermataBelow:
		return BelowStaff
	case Staccato, Accent, Tenuto:
		return NearNotehead
	}
	return AboveStaff
}
