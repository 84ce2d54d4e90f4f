package selection

import "math/rand"

// Selector composes the preference filter, the greedy approximation and the
// exact completion search into the full selection pipeline.
type Selector interface {
	// SelectCourses normalizes the raw candidates, drops those clashing with
	// the user's busy schedule and runs the pipeline over reshuffled candidate
	// orders to produce up to three distinct solutions, each summing exactly to
	// the requested credits and free of time conflicts. An empty result is a
	// normal outcome, not an error.
	SelectCourses(records []CourseRecord, constraints Constraints) ([]Solution, error)
}

type Option func(*selectorImplementation)

// WithGreedyTrials overrides the number of shuffled constructions each greedy
// approximation runs.
func WithGreedyTrials(trials int) Option {
	return func(selector *selectorImplementation) { selector.greedyTrials = trials }
}

// WithPasses overrides how many reshuffled pipeline passes are attempted per
// request, which is also the maximum number of returned solutions.
func WithPasses(passes int) Option {
	return func(selector *selectorImplementation) { selector.passes = passes }
}

// WithSearchBudget bounds the number of nodes the exact completion search may
// visit per pass; exhausting the budget makes the pass yield no solution. Zero
// means unlimited.
func WithSearchBudget(budget uint64) Option {
	return func(selector *selectorImplementation) { selector.searchBudget = budget }
}

// NewSelector builds a Selector around the given pseudo-random source, which
// drives every shuffle so that a fixed seed reproduces the exact same
// solutions.
func NewSelector(rng *rand.Rand, options ...Option) Selector {
	selector := &selectorImplementation{
		rng:          rng,
		greedyTrials: 10,
		passes:       3,
	}
	for _, option := range options {
		option(selector)
	}
	return selector
}
