package selection

import "github.com/samber/lo"

// solveExact searches candidates depth-first, in their given order, for a
// subset whose credits sum exactly to targetCredits while respecting the
// conflict graph, both within the subset and against the pre-chosen context.
// All search state lives in parameters and return values, so concurrent
// invocations never share anything. A course clashing with the context can
// never be included and is skipped, leaving only the exclude branch; a course
// clashing with the accepted path fails its branch immediately. budget bounds
// the number of visited nodes, zero meaning unlimited; exhausting it fails the
// search. Worst case is exponential in the candidate count, kept practical by
// conflict pruning and by the usually small residual target.
func solveExact(graph ConflictGraph, candidates, context []Course, targetCredits int, budget uint64) ([]string, bool) {
	remaining := budget

	var search func(index, credits int, path []Course) ([]string, bool)
	search = func(index, credits int, path []Course) ([]string, bool) {
		if budget > 0 {
			if remaining == 0 {
				return nil, false
			}
			remaining--
		}

		if index >= len(candidates) {
			return nil, false
		}

		current := candidates[index]
		if conflictsWithAny(graph, current, context) {
			return search(index+1, credits, path)
		}
		if conflictsWithAny(graph, current, path) {
			return nil, false
		}

		// Include the current course: an exact hit succeeds right away,
		// otherwise explore the rest with the updated sum and path
		if sum := credits + current.Credit; sum == targetCredits {
			names := lo.Map(path, func(course Course, _ int) string { return course.Name })
			return append(names, current.Name), true
		} else if names, found := search(index+1, sum, append(path, current)); found {
			return names, true
		}

		// Exclude the current course
		return search(index+1, credits, path)
	}

	return search(0, 0, nil)
}
