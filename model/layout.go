package model

// BeamLayout is the computed geometry for one beam group. Ephemeral: derived
// per layout pass, not stored on the notes.
type BeamLayout struct {
	Angle     float64       `json:"angle"`
	StartY    float64       `json:"start_y"`
	EndY      float64       `json:"end_y"`
	BeamCount int           `json:"beam_count"`
	StemDir   StemDirection `json:"stem_direction"`
}

type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// LedgerLines counts the short staff extensions a note needs above and
// below the five printed lines.
type LedgerLines struct {
	Above int `json:"above"`
	Below int `json:"below"`
}

// MeasureLayout bundles a measure with everything the renderer needs to
// draw it: x positions, accidental offsets, beam geometry, ledger lines.
type MeasureLayout struct {
	Measure           Measure                `json:"measure"`
	NoteX             map[string]float64     `json:"note_x"`
	AccidentalOffsets map[string]float64     `json:"accidental_offsets,omitempty"`
	Ledger            map[string]LedgerLines `json:"ledger,omitempty"`
	Beams             []BeamLayout           `json:"beams,omitempty"`
}
