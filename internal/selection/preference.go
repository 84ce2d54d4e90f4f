package selection

import (
	"strings"

	"github.com/samber/lo"
)

// filterBySlot returns the names of courses whose slot value (field or format)
// case-insensitively contains any of the constraint terms. An empty term set
// expresses no preference and yields no matches, not a match-everything.
func filterBySlot(courses []Course, value func(Course) string, terms []string) []string {
	if len(terms) == 0 {
		return nil
	}

	matching := lo.Filter(courses, func(course Course, _ int) bool {
		return lo.SomeBy(terms, func(term string) bool {
			return strings.Contains(strings.ToLower(value(course)), strings.ToLower(term))
		})
	})

	return lo.Map(matching, func(course Course, _ int) string { return course.Name })
}
