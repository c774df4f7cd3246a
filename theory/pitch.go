package theory

import (
	"github.com/mkalish/quaver/model"
)

// NoteName is the letter part of a spelled pitch, C through B.
type NoteName int

const (
	C NoteName = iota
	D
	E
	F
	G
	A
	B
)

func (n NoteName) String() string {
	return [...]string{"C", "D", "E", "F", "G", "A", "B"}[n]
}

// diatonicStep is the letter's offset within an octave (C=0 .. B=6).
func (n NoteName) diatonicStep() int {
	return int(n)
}

var chromaticSpelling = [12]struct {
	name NoteName
	acc  model.Accidental
}{
	{C, model.NoAccidental},
	{C, model.Sharp},
	{D, model.NoAccidental},
	{D, model.Sharp},
	{E, model.NoAccidental},
	{F, model.NoAccidental},
	{F, model.Sharp},
	{G, model.NoAccidental},
	{G, model.Sharp},
	{A, model.NoAccidental},
	{A, model.Sharp},
	{B, model.NoAccidental},
}

// Spell maps a MIDI pitch onto a letter name plus the accidental the pitch
// itself implies, using sharp spellings for the black keys.
func Spell(pitch uint8) (NoteName, model.Accidental) {
	s := chromaticSpelling[pitch%12]
	return s.name, s.acc
}

// Octave returns the scientific octave number of a MIDI pitch (60 = C4).
func Octave(pitch uint8) int {
	return int(pitch)/12 - 1
}
