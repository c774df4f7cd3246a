package model

type EngraveRequestBody struct {
	Notes           []MIDINote `json:"notes"`
	MeasureDuration float64    `json:"measure_duration"`
	Tempo           float64    `json:"tempo"`
	KeySharps       int        `json:"key_sharps"`
	Clef            string     `json:"clef"`
	FillRests       bool       `json:"fill_rests"`
	MeasureWidth    float64    `json:"measure_width"`
}

type EngraveResponse struct {
	Measures []MeasureLayout `json:"measures"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
