package selection

import (
	"fmt"
	"math"
	"math/rand"
	"slices"
	"strings"

	"courseselect/internal/schedule"

	"github.com/samber/lo"
)

type selectorImplementation struct {
	rng          *rand.Rand
	greedyTrials int
	passes       int
	searchBudget uint64
}

func (selector *selectorImplementation) SelectCourses(records []CourseRecord, constraints Constraints) ([]Solution, error) {
	if constraints.TargetCredits <= 0 {
		return nil, fmt.Errorf("target credits must be positive: %v", constraints.TargetCredits)
	}

	candidates, err := normalizeCourses(records)
	if err != nil {
		return nil, err
	}

	//** Remove candidates clashing with the user's own schedule
	if len(constraints.BusySchedules) > 0 {
		busySlots, err := schedule.ParsePattern(strings.Join(constraints.BusySchedules, ";"))
		if err != nil {
			return nil, fmt.Errorf("busy schedule: %w", err)
		}
		busy := schedule.Intervals(busySlots)
		candidates = lo.Filter(candidates, func(course Course, _ int) bool {
			return !schedule.Overlap(course.Intervals, busy)
		})
	}

	//** Precompute the pairwise conflict relation
	graph := NewConflictGraph(candidates)

	//** Partition candidates by preference
	fieldMatches := filterBySlot(candidates, func(course Course) string { return course.Field }, constraints.Fields)
	formatMatches := filterBySlot(candidates, func(course Course) string { return course.Format }, constraints.Formats)

	courseByName := lo.SliceToMap(candidates, func(course Course) (string, Course) { return course.Name, course })

	//** Run the pipeline over reshuffled candidates, keeping distinct non-empty results
	solutions := make([]Solution, 0, selector.passes)
	seen := make(map[string]bool, selector.passes)
	for pass := 0; pass < selector.passes; pass++ {
		selector.rng.Shuffle(len(candidates), func(i, j int) {
			candidates[i], candidates[j] = candidates[j], candidates[i]
		})

		names := selector.selectOnce(graph, candidates, fieldMatches, formatMatches, constraints.TargetCredits)
		if len(names) == 0 {
			continue
		}

		key := canonicalKey(names)
		if seen[key] {
			continue
		}
		seen[key] = true

		solutions = append(solutions, assembleSolution(names, courseByName))
	}

	return solutions, nil
}

// selectOnce is one pass of the three-stage pipeline. Stage A approximates half
// the target with courses meeting both preferences, stage B approaches the rest
// with courses meeting either one, and stage C closes the remaining gap exactly
// with the untouched candidates. A pass whose gap cannot be closed yields
// nothing at all: the partial stage-A/B progress is discarded rather than
// surfaced as an inexact solution.
func (selector *selectorImplementation) selectOnce(graph ConflictGraph, candidates []Course, fieldMatches, formatMatches []string, targetCredits int) []string {
	restrict := func(names []string) []Course {
		return lo.Filter(candidates, func(course Course, _ int) bool {
			return slices.Contains(names, course.Name)
		})
	}

	//** Stage A: courses meeting both preferences
	intersection := lo.Intersect(fieldMatches, formatMatches)
	interCredits, interSolution := selector.approximateOver(graph, restrict(intersection), nil, max(3, int(math.Round(0.5*float64(targetCredits)))))

	//** Stage B: courses meeting either preference, minus the stage-A picks
	union, _ := lo.Difference(lo.Union(fieldMatches, formatMatches), interSolution)
	unionCredits, unionSolution := selector.approximateOver(graph, restrict(union), restrict(interSolution), max(0, targetCredits-interCredits))

	chosen := append(interSolution, unionSolution...)

	//** Stage C: close the credit gap exactly or discard the whole pass
	remaining := targetCredits - interCredits - unionCredits
	if remaining == 0 {
		return chosen
	}

	rest := lo.Filter(candidates, func(course Course, _ int) bool {
		return !slices.Contains(chosen, course.Name)
	})
	completion, found := solveExact(graph, rest, restrict(chosen), remaining, selector.searchBudget)
	if !found {
		return nil
	}

	return append(chosen, completion...)
}

// approximateOver runs the greedy approximation over an already-restricted
// candidate set. An empty set means the stage has no preference signal to work
// with and contributes nothing.
func (selector *selectorImplementation) approximateOver(graph ConflictGraph, restricted, context []Course, targetCredits int) (int, []string) {
	if len(restricted) == 0 {
		return 0, nil
	}
	return approximate(selector.rng, graph, restricted, context, targetCredits, selector.greedyTrials)
}

func assembleSolution(names []string, courseByName map[string]Course) Solution {
	return lo.Map(names, func(name string, _ int) SolutionEntry {
		course, known := courseByName[name]
		if !known {
			panic(fmt.Sprintf("selected course %q is not part of the candidate pool", name))
		}
		return SolutionEntry{
			Name: name,
			Times: lo.Map(course.Slots, func(slot schedule.Slot, _ int) string {
				return slot.Day + ". " + slot.Clock
			}),
			Credit: course.Credit,
		}
	})
}

// canonicalKey identifies a solution by its course-name set regardless of order
func canonicalKey(names []string) string {
	sorted := slices.Clone(names)
	slices.Sort(sorted)
	return fmt.Sprintf("%q", sorted)
}
