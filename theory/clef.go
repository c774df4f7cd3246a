package theory

type Clef int

const (
	TrebleClef Clef = iota
	BassClef
	AltoClef
)

func (c Clef) String() string {
	switch c {
	case TrebleClef:
		return "treble"
	case BassClef:
		return "bass"
	case AltoClef:
		return "alto"
	}
	return "unknown"
}

// ClefFromString parses a clef name, defaulting to treble.
func ClefFromString(s string) Clef {
	switch s {
	case "bass":
		return BassClef
	case "alto":
		return AltoClef
	}
	return TrebleClef
}

// bottomLineDiatonic is the diatonic number (octave*7 + letter step) of the
// pitch sitting on the clef's bottom staff line.
func (c Clef) bottomLineDiatonic() int {
	switch c {
	case BassClef:
		return 2*7 + G.diatonicStep() // G2
	case AltoClef:
		return 3*7 + F.diatonicStep() // F3
	}
	return 4*7 + E.diatonicStep() // E4
}

// StaffPosition maps a MIDI pitch to a staff coordinate for the clef:
// 0 is the bottom line, 8 the top line, even values on lines, odd in
// spaces. Values outside 0..8 are ledger-line territory.
func StaffPosition(pitch uint8, c Clef) int {
	name, _ := Spell(pitch)
	diatonic := Octave(pitch)*7 + name.diatonicStep()
	return diatonic - c.bottomLineDiatonic()
}
