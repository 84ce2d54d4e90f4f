package selection

import (
	"fmt"

	"courseselect/internal/schedule"
)

// ConflictGraph is a symmetric pairwise relation telling whether two candidate
// courses overlap in time. It is built once per candidate pool and read-only
// during search.
type ConflictGraph interface {
	// Conflicts reports whether the two named courses overlap in time. The
	// relation is symmetric. Panics if the pair was never registered, since
	// every distinct pair of the candidate pool is registered at build time.
	Conflicts(a, b string) bool
}

func NewConflictGraph(courses []Course) ConflictGraph {
	graph := &pairConflictGraph{
		conflicts: make(map[[2]string]bool, len(courses)*(len(courses)-1)/2),
	}
	for i := 0; i < len(courses)-1; i++ {
		for j := i + 1; j < len(courses); j++ {
			key := pairKey(courses[i].Name, courses[j].Name)
			graph.conflicts[key] = schedule.Overlap(courses[i].Intervals, courses[j].Intervals)
		}
	}
	return graph
}

type pairConflictGraph struct {
	conflicts map[[2]string]bool
}

func (graph *pairConflictGraph) Conflicts(a, b string) bool {
	conflict, registered := graph.conflicts[pairKey(a, b)]
	if !registered {
		panic(fmt.Sprintf("conflict graph: unregistered course pair (%q, %q)", a, b))
	}
	return conflict
}

// pairKey builds an order-independent key for a pair of course names
func pairKey(a, b string) [2]string {
	if a > b {
		a, b = b, a
	}
	return [2]string{a, b}
}
