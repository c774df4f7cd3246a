package theory

import (
	"github.com/mkalish/quaver/model"
	"gopkg.in/music-theory.v0/key"
)

// KeySignature is the circle-of-fifths position: positive for sharp keys,
// negative for flat keys, zero for C major / A minor.
type KeySignature struct {
	Sharps int `json:"sharps"`
}

var sharpOrder = [7]NoteName{F, C, G, D, A, E, B}
var flatOrder = [7]NoteName{B, E, A, D, G, C, F}

// ImpliedAccidental is what the key signature already notates for a letter
// name. A note matching this needs no printed accidental.
func (k KeySignature) ImpliedAccidental(n NoteName) model.Accidental {
	if k.Sharps > 0 {
		for _, s := range sharpOrder[:k.Sharps] {
			if s == n {
				return model.Sharp
			}
		}
	}
	if k.Sharps < 0 {
		for _, f := range flatOrder[:-k.Sharps] {
			if f == n {
				return model.Flat
			}
		}
	}
	return model.NoAccidental
}

// DisplayAccidental decides what to print in front of a pitch under the
// active key. Accidentals the key already implies are suppressed; a natural
// is emitted when the pitch contradicts the key (courtesy naturals).
func DisplayAccidental(pitch uint8, k KeySignature) model.Accidental {
	name, implied := Spell(pitch)
	keyImplied := k.ImpliedAccidental(name)
	if implied == keyImplied {
		return model.NoAccidental
	}
	if implied == model.NoAccidental {
		return model.Natural
	}
	return implied
}

// FromSharps clamps a raw sharps/flats count into a valid signature.
func FromSharps(n int) KeySignature {
	if n > 7 {
		n = 7
	}
	if n < -7 {
		n = -7
	}
	return KeySignature{Sharps: n}
}

// FromKey converts a music-theory key into a signature. Minor keys sit
// three steps flatward of the major key on the same root.
func FromKey(k key.Key, minor bool) KeySignature {
	if k.Root == 0 {
		return KeySignature{}
	}
	pc := (int(k.Root) - 1) % 12
	sharps := (pc * 7) % 12
	if sharps > 6 {
		sharps -= 12
	}
	if minor {
		sharps -= 3
	}
	return FromSharps(sharps)
}
