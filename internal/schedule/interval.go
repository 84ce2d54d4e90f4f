package schedule

import "github.com/samber/lo"

// Interval is a span of minutes on a single week-long axis, where minute 0 is
// Monday 00:00. End is expected to be greater than Start.
type Interval struct {
	Start int
	End   int
}

// Overlaps reports whether the two intervals share more than zero minutes.
func (interval Interval) Overlaps(other Interval) bool {
	return min(interval.End, other.End)-max(interval.Start, other.Start) > 0
}

// Overlap reports whether any interval from the first set overlaps any interval from the second
func Overlap(a, b []Interval) bool {
	return lo.SomeBy(a, func(intervalA Interval) bool {
		return lo.SomeBy(b, func(intervalB Interval) bool {
			return intervalA.Overlaps(intervalB)
		})
	})
}

// Intervals extracts the absolute week intervals from a sequence of parsed slots
func Intervals(slots []Slot) []Interval {
	return lo.Map(slots, func(slot Slot, _ int) Interval { return slot.Interval })
}
