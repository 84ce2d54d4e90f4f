package schedule

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePattern(t *testing.T) {
	t.Run("Correct flow", func(t *testing.T) {
		//**Arrange
		cases := []struct {
			pattern  string
			expected []Slot
		}{
			{
				pattern: "mon. 09:00-10:30",
				expected: []Slot{
					{Day: "mon", Clock: "09:00-10:30", Interval: Interval{Start: 540, End: 630}},
				},
			},
			{
				pattern: "wed. 09:00-10:30",
				expected: []Slot{
					{Day: "wed", Clock: "09:00-10:30", Interval: Interval{Start: 2*1440 + 540, End: 2*1440 + 630}},
				},
			},
			{
				// Case-insensitive days, whitespace tolerated around entries
				pattern: " Tue. 9:00-11:30 ; THUR. 14:15-15:45",
				expected: []Slot{
					{Day: "tue", Clock: "9:00-11:30", Interval: Interval{Start: 1440 + 540, End: 1440 + 690}},
					{Day: "thur", Clock: "14:15-15:45", Interval: Interval{Start: 3*1440 + 855, End: 3*1440 + 945}},
				},
			},
			{
				pattern: "sun. 00:00-23:59",
				expected: []Slot{
					{Day: "sun", Clock: "00:00-23:59", Interval: Interval{Start: 6 * 1440, End: 6*1440 + 1439}},
				},
			},
		}

		for _, c := range cases {
			//**Act
			slots, err := ParsePattern(c.pattern)

			//**Assert
			assert.Nil(t, err)
			assert.Equal(t, c.expected, slots)
		}
	})

	t.Run("Error flow", func(t *testing.T) {
		//**Arrange
		patterns := []string{
			"",
			"mon 09:00-10:30",           // missing '.' separator
			"monday. 09:00-10:30",       // unknown day token
			"mon. 09:00",                // missing '-' separator
			"mon. 0900-1030",            // missing ':' separator
			"mon. ab:00-10:30",          // unparsable hour
			"mon. 09:xx-10:30",          // unparsable minute
			"mon. 09:00-10:30; tue 1-2", // second entry malformed, no partial recovery
		}

		for _, pattern := range patterns {
			//**Act
			slots, err := ParsePattern(pattern)

			//**Assert
			assert.Nil(t, slots, "pattern %q must not produce slots", pattern)
			var formatErr *FormatError
			assert.True(t, errors.As(err, &formatErr), "pattern %q must yield a FormatError", pattern)
		}
	})
}

func TestOverlap(t *testing.T) {
	//**Arrange
	cases := []struct {
		a, b     []Interval
		expected bool
	}{
		{[]Interval{{540, 630}}, []Interval{{600, 700}}, true},
		{[]Interval{{540, 630}}, []Interval{{630, 700}}, false}, // touching endpoints do not overlap
		{[]Interval{{540, 630}}, []Interval{{2 * 1440, 2*1440 + 90}}, false},
		{[]Interval{{540, 630}, {3000, 3100}}, []Interval{{700, 800}, {3050, 3200}}, true},
		{nil, []Interval{{540, 630}}, false},
	}

	for _, c := range cases {
		//**Act and assert
		assert.Equal(t, c.expected, Overlap(c.a, c.b))
		assert.Equal(t, c.expected, Overlap(c.b, c.a)) // overlap is symmetric
	}
}
