package selection

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"courseselect/internal/schedule"
)

// Course is a normalized candidate, immutable after normalization
type Course struct {
	Name      string
	Credit    int
	Field     string
	Format    string
	Slots     []schedule.Slot
	Intervals []schedule.Interval
}

// Constraints is one solve request
type Constraints struct {
	TargetCredits int
	Fields        []string
	Formats       []string
	BusySchedules []string
}

// SolutionEntry pairs a selected course with the presentation info the
// downstream layer needs to show it.
type SolutionEntry struct {
	Name   string
	Times  []string
	Credit int
}

// Solution is a conflict-free set of courses whose credits sum exactly to the
// requested target.
type Solution []SolutionEntry

// normalizeCourses turns raw records into typed candidates: time patterns are
// parsed onto the week axis and credits are coerced to integers. The course
// name is the unique id, so a later record replaces an earlier one with the
// same name.
func normalizeCourses(records []CourseRecord) ([]Course, error) {
	courses := make([]Course, 0, len(records))
	indexByName := make(map[string]int, len(records))

	for _, record := range records {
		credit, err := coerceCredit(record.Credit)
		if err != nil {
			return nil, fmt.Errorf("course %q: %w", record.Name, err)
		} else if credit <= 0 {
			return nil, fmt.Errorf("course %q: credit must be positive: %v", record.Name, credit)
		}

		slots, err := schedule.ParsePattern(record.Dates)
		if err != nil {
			return nil, fmt.Errorf("course %q: %w", record.Name, err)
		}

		course := Course{
			Name:      record.Name,
			Credit:    credit,
			Field:     record.Field,
			Format:    record.Format,
			Slots:     slots,
			Intervals: schedule.Intervals(slots),
		}

		if index, exists := indexByName[record.Name]; exists {
			courses[index] = course
		} else {
			indexByName[record.Name] = len(courses)
			courses = append(courses, course)
		}
	}

	return courses, nil
}

func coerceCredit(raw any) (int, error) {
	switch value := raw.(type) {
	case int:
		return value, nil
	case int64:
		return int(value), nil
	case uint64:
		return int(value), nil
	case float64:
		if value != math.Trunc(value) {
			return 0, fmt.Errorf("credit %v is not an integer", value)
		}
		return int(value), nil
	case string:
		credit, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return 0, fmt.Errorf("credit %q is not numeric", value)
		}
		return credit, nil
	default:
		return 0, fmt.Errorf("credit has unsupported type %T", raw)
	}
}
