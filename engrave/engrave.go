// Package engrave holds the pure layout computations applied to already
// quantized notes: stem directions, accidental staggering, spacing, beam
// geometry, ledger lines, articulation and dynamic placement. Everything is
// a function of its arguments plus fixed metric configuration, so an
// Engraver is safe to share across goroutines.
package engrave

import (
	"github.com/mkalish/quaver/constants"
)

type Engraver struct {
	StaffLineSpacing  float64
	MinNoteSpacing    float64
	AccidentalSpacing float64
	StemLengthSpaces  float64
	MaxBeamSlope      float64
}

func New() *Engraver {
	return &Engraver{
		StaffLineSpacing:  constants.StaffLineSpacing,
		MinNoteSpacing:    constants.MinNoteSpacing,
		AccidentalSpacing: constants.AccidentalSpacing,
		StemLengthSpaces:  constants.StemLengthSpaces,
		MaxBeamSlope:      constants.MaxBeamSlope,
	}
}

// staffY converts a staff position to a y coordinate. y grows downward,
// with the top line at zero; each position step is half a line spacing.
func (e *Engraver) staffY(pos int) float64 {
	return float64(8-pos) * e.StaffLineSpacing / 2
}

func (e *Engraver) stemLength() float64 {
	return e.StemLengthSpaces * e.StaffLineSpacing
}
