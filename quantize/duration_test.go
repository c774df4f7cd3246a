package quantize

import (
	"fmt"
	"testing"

	"github.com/mkalish/quaver/model"
	"github.com/stretchr/testify/assert"
)

func TestDetermineNoteDurationExactValues(t *testing.T) {
	q := New(WithResolution(model.SixtyFourth))

	cases := []struct {
		actual   float64
		duration model.Duration
		dots     int
		tie      bool
	}{
		{4.0, model.Whole, 0, false},
		{7.0, model.Whole, 2, false},
		{6.0, model.Whole, 1, false},
		{3.0, model.Half, 1, false},
		{3.5, model.Half, 2, false},
		{2.0, model.Half, 0, false},
		{1.75, model.Quarter, 2, false},
		{1.5, model.Quarter, 1, false},
		{1.0, model.Quarter, 0, false},
		{0.75, model.Eighth, 1, false},
		{0.5, model.Eighth, 0, false},
		{0.375, model.Sixteenth, 1, false},
		{0.25, model.Sixteenth, 0, false},
		{0.125, model.ThirtySecond, 0, false},
		{0.0625, model.SixtyFourth, 0, false},
		{1.25, model.Quarter, 0, true},
		{4.5, model.Whole, 0, true},
	}

	for _, c := range cases {
		t.Run(fmt.Sprintf("duration %v", c.actual), func(t *testing.T) {
			d, dots, tie := q.determineNoteDuration(c.actual)
			assert := assert.New(t)
			assert.Equal(c.duration, d)
			assert.Equal(c.dots, dots)
			assert.Equal(c.tie, tie)
		})
	}
}

func TestDetermineNoteDurationHonorsResolution(t *testing.T) {
	q := New(WithResolution(model.Sixteenth))

	// a thirty-second is below the configured resolution, so the match
	// falls back to the resolution itself
	d, dots, tie := q.determineNoteDuration(0.125)
	assert := assert.New(t)
	assert.Equal(model.Sixteenth, d)
	assert.Equal(0, dots)
	assert.False(tie)
}

func TestDetermineNoteDurationDegenerateFallback(t *testing.T) {
	q := New(WithResolution(model.Sixteenth))

	// below every candidate the resolution allows, so the fallback kicks in
	d, _, tie := q.determineNoteDuration(0.2)
	assert.Equal(t, model.Sixteenth, d)
	assert.False(t, tie)

	d, _, tie = q.determineNoteDuration(0.126)
	assert.Equal(t, model.Sixteenth, d)
	assert.False(t, tie)
}

func TestDetermineNoteDurationIsDeterministic(t *testing.T) {
	q := New(WithResolution(model.SixtyFourth))
	for _, actual := range []float64{0.3, 1.1, 2.2, 3.9, 0.0625, 16} {
		d1, dots1, tie1 := q.determineNoteDuration(actual)
		d2, dots2, tie2 := q.determineNoteDuration(actual)
		if d1 != d2 || dots1 != dots2 || tie1 != tie2 {
			t.Errorf("non-deterministic result for %v", actual)
		}
	}
}
