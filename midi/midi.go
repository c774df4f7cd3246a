package midi

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"gitlab.com/gomidi/midi/v2/smf"
)

// ReadMidiFile parses a standard MIDI file from disk.
func ReadMidiFile(filepath string) (s *smf.SMF, e error) {
	var blank smf.SMF

	// the smf parser can panic on malformed files
	// https://github.com/gomidi/midi/issues/20
	defer func() {
		if r, ok := recover().(string); ok {
			e = errors.New(r)
		}
	}()

	dat, err := os.ReadFile(filepath)
	if err != nil {
		return &blank, fmt.Errorf("could not read midi file: %w", err)
	}

	res, err := smf.ReadFrom(bytes.NewReader(dat))
	if err != nil {
		return &blank, fmt.Errorf("could not parse midi file: %w", err)
	}

	return res, nil
}
