package selection

import (
	"math/rand"
	"slices"

	"github.com/samber/lo"
)

// approximate runs repeated randomized greedy constructions to approach
// targetCredits from below. Each trial shuffles the candidates, then accepts
// courses in order, skipping those that conflict with the pre-chosen context or
// with a course already accepted in the trial, and stops at the first course
// that would overshoot the target (the order matters, which is exactly why
// multiple shuffled trials are taken). The best trial wins, ties broken by
// first found. There is no optimality guarantee; the exact search closes
// whatever gap is left.
func approximate(rng *rand.Rand, graph ConflictGraph, candidates, context []Course, targetCredits, trials int) (int, []string) {
	if len(candidates) == 0 {
		return 0, nil
	}

	pool := slices.Clone(candidates)
	bestCredits := 0
	var best []Course

	for trial := 0; trial < trials; trial++ {
		rng.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })

		accepted := make([]Course, 0, len(pool))
		credits := 0
		for _, course := range pool {
			if conflictsWithAny(graph, course, context) || conflictsWithAny(graph, course, accepted) {
				continue
			}
			if credits+course.Credit > targetCredits {
				break
			}
			accepted = append(accepted, course)
			credits += course.Credit
		}

		if credits > bestCredits {
			bestCredits = credits
			best = accepted
		}
	}

	return bestCredits, lo.Map(best, func(course Course, _ int) string { return course.Name })
}

func conflictsWithAny(graph ConflictGraph, course Course, accepted []Course) bool {
	return lo.SomeBy(accepted, func(other Course) bool {
		return graph.Conflicts(other.Name, course.Name)
	})
}
