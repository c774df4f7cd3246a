package constants

import "os"

// DurationEpsilon is the tolerance used when deciding whether a candidate
// display duration fits inside an actual MIDI duration.
const DurationEpsilon = 0.001

// TieSumEpsilon is the smallest leftover duration (in beats) still worth
// notating as a tied continuation.
const TieSumEpsilon = 0.01

// TieThresholdFactor scales the quantize resolution to decide whether a
// leftover duration needs a tie.
const TieThresholdFactor = 0.5

// MaxMeasures bounds the number of measures produced from a single quantize
// call. Notes past the cap are dropped from notation.
const MaxMeasures = 100

// RestFillIterationCap bounds the greedy rest decomposition per measure.
const RestFillIterationCap = 100

// TupletSpanTolerance is the relative window for the triplet heuristic.
const TupletSpanTolerance = 0.10

// Staff metrics. All vertical units are pixels at nominal zoom; a staff
// position step is half a line spacing.
const (
	StaffLineSpacing  = 10.0
	MinNoteSpacing    = 15.0
	AccidentalSpacing = 12.0
	StemLengthSpaces  = 3.5
	MaxBeamSlope      = 0.25
	MeasureMargin     = 20.0
	DynamicDropSpaces = 3.0
)

// AccidentalProximity is the staff-position distance at or under which two
// accidentals are considered colliding.
const AccidentalProximity = 2

func RestFillEnabled() bool {
	v := os.Getenv("QUAVER_FILL_RESTS")
	return v == "1" || v == "true"
}
