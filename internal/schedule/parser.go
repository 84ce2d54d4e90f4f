package schedule

import (
	"fmt"
	"strconv"
	"strings"
)

const minutesPerDay = 24 * 60

var dayOffsets = map[string]int{
	"mon":  0,
	"tue":  1 * minutesPerDay,
	"wed":  2 * minutesPerDay,
	"thur": 3 * minutesPerDay,
	"fri":  4 * minutesPerDay,
	"sat":  5 * minutesPerDay,
	"sun":  6 * minutesPerDay,
}

// FormatError reports a time-pattern entry that could not be parsed
type FormatError struct {
	Entry  string
	Reason string
}

func (err *FormatError) Error() string {
	return fmt.Sprintf("malformed time pattern %q: %v", err.Entry, err.Reason)
}

// Slot is a single parsed pattern entry. It keeps the display form (day token
// and clock range) alongside the absolute week interval.
type Slot struct {
	Day      string
	Clock    string
	Interval Interval
}

// ParsePattern parses a weekly time pattern composed of ";"-separated
// "<day>. <hh:mm>-<hh:mm>" entries (case-insensitive, days mon..sun) into
// absolute week slots. Any malformed entry fails the whole pattern, there is no
// partial recovery.
func ParsePattern(pattern string) ([]Slot, error) {
	entries := strings.Split(pattern, ";")
	slots := make([]Slot, 0, len(entries))
	for _, entry := range entries {
		entry = strings.ToLower(strings.TrimSpace(entry))

		day, clock, found := strings.Cut(entry, ".")
		if !found {
			return nil, &FormatError{Entry: entry, Reason: "missing '.' separator between day and duration"}
		}
		day, clock = strings.TrimSpace(day), strings.TrimSpace(clock)

		offset, known := dayOffsets[day]
		if !known {
			return nil, &FormatError{Entry: entry, Reason: fmt.Sprintf("unknown day token %q", day)}
		}

		start, end, found := strings.Cut(clock, "-")
		if !found {
			return nil, &FormatError{Entry: entry, Reason: "missing '-' separator between start and end time"}
		}

		startMinute, err := clockToMinutes(start)
		if err != nil {
			return nil, &FormatError{Entry: entry, Reason: err.Error()}
		}
		endMinute, err := clockToMinutes(end)
		if err != nil {
			return nil, &FormatError{Entry: entry, Reason: err.Error()}
		}

		slots = append(slots, Slot{
			Day:      day,
			Clock:    clock,
			Interval: Interval{Start: offset + startMinute, End: offset + endMinute},
		})
	}
	return slots, nil
}

func clockToMinutes(clock string) (int, error) {
	hour, minute, found := strings.Cut(strings.TrimSpace(clock), ":")
	if !found {
		return 0, fmt.Errorf("clock value %q lacks ':' separator", clock)
	}

	hours, err := strconv.Atoi(strings.TrimSpace(hour))
	if err != nil {
		return 0, fmt.Errorf("unparsable hour in clock value %q", clock)
	}
	minutes, err := strconv.Atoi(strings.TrimSpace(minute))
	if err != nil {
		return 0, fmt.Errorf("unparsable minute in clock value %q", clock)
	}

	return hours*60 + minutes, nil
}
