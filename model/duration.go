package model

// Duration is the closed set of note values notation can render. Anything
// the quantizer produces is drawn from these seven.
type Duration int

const (
	Whole Duration = iota
	Half
	Quarter
	Eighth
	Sixteenth
	ThirtySecond
	SixtyFourth
)

// Beats returns the length in beats, with a quarter note worth one beat.
func (d Duration) Beats() float64 {
	switch d {
	case Whole:
		return 4.0
	case Half:
		return 2.0
	case Quarter:
		return 1.0
	case Eighth:
		return 0.5
	case Sixteenth:
		return 0.25
	case ThirtySecond:
		return 0.125
	case SixtyFourth:
		return 0.0625
	}
	return 0
}

// DottedBeats returns the length in beats with dots applied. Each dot adds
// half of the previous addition.
func (d Duration) DottedBeats(dots int) float64 {
	total := d.Beats()
	add := d.Beats() / 2
	for i := 0; i < dots; i++ {
		total += add
		add /= 2
	}
	return total
}

// FlagCount is the number of flags (and therefore beam lines) the value
// carries. Quarter notes and longer have none.
func (d Duration) FlagCount() int {
	switch d {
	case Eighth:
		return 1
	case Sixteenth:
		return 2
	case ThirtySecond:
		return 3
	case SixtyFourth:
		return 4
	}
	return 0
}

// SpacingWeight is the horizontal weight used for proportional note spacing.
// Deliberately non-linear so short notes don't get squeezed to nothing.
func (d Duration) SpacingWeight() float64 {
	switch d {
	case Whole:
		return 4.0
	case Half:
		return 2.0
	case Quarter:
		return 1.0
	case Eighth:
		return 0.75
	case Sixteenth:
		return 0.5
	case ThirtySecond:
		return 0.4
	case SixtyFourth:
		return 0.35
	}
	return 1.0
}

func (d Duration) String() string {
	switch d {
	case Whole:
		return "whole"
	case Half:
		return "half"
	case Quarter:
		return "quarter"
	case Eighth:
		return "eighth"
	case Sixteenth:
		return "sixteenth"
	case ThirtySecond:
		return "thirtysecond"
	case SixtyFourth:
		return "sixtyfourth"
	}
	return "unknown"
}
