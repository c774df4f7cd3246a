package model

// TimeSignature only carries what quantization needs: the measure length in
// beats. 4/4 is 4.0, 6/8 is 3.0, and so on.
type TimeSignature struct {
	MeasureDuration float64 `json:"measure_duration"`
}

// Measure is one window of the score. Created empty, populated once by the
// quantizer, then annotated in place by the engraving pass. Measures are
// never deleted individually; re-quantization replaces the whole slice.
type Measure struct {
	Number  int         `json:"number"`
	Notes   []ScoreNote `json:"notes"`
	Rests   []ScoreRest `json:"rests,omitempty"`
	Tuplets []Tuplet    `json:"tuplets,omitempty"`
}

// StartBeat is the absolute beat the measure begins on.
func (m Measure) StartBeat(ts TimeSignature) float64 {
	return float64(m.Number-1) * ts.MeasureDuration
}
