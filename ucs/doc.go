// Package ucs implements uniform-cost search over the 8-puzzle slide graph,
// processing boards in increasing accumulated path cost with a min-heap
// priority queue.
//
// # What
//
//   - Solve(start, opts...): settle boards cheapest-first until the goal
//     surfaces from the queue.
//   - Returns a Result containing:
//   - Path: the cost-minimal start→goal sequence
//   - Cost: map from board → best-known path cost
//   - Parent: map from board → predecessor on the cheapest known route
//   - Expanded: number of boards settled and relaxed
//
// # Why
//
//	Every slide costs 1, so on this graph UCS finds paths of the same
//	length as breadth-first search. The value of the package is the general
//	mechanism: the cost model, the best-known-cost map, and the lazy
//	decrease-key queue are exactly what a weighted variant would need.
//
// # Semantics
//
//	Improvements do not remove superseded heap entries. A cheaper route
//	overwrites the board's cost and predecessor (last improving write wins)
//	and pushes a fresh entry; the stale duplicate is recognized and dropped
//	when popped, via the visited check. Tie-breaking among equal-cost
//	entries follows container/heap's internal order: deterministic for a
//	given push sequence, but not a documented contract.
//
// # Complexity (S = reachable states ≤ 181,440)
//
//   - Time:   O(S log S); each settle and each relaxation touches the heap
//   - Memory: O(S) maps plus up to O(4·S) heap entries under lazy decrease-key
//
// # Usage
//
//	res, err := ucs.Solve(start)
//	if err != nil {
//	    // ErrNoPath, ErrOptionViolation, or a context error
//	}
//	fmt.Println("slides:", len(res.Path)-1)
//
// # Errors
//
//   - ErrNoPath          if the queue empties without reaching the goal.
//   - ErrNotReached      from Result.PathTo for boards never costed.
//   - ErrOptionViolation for a negative MaxCost.
//   - Context errors when the supplied context is cancelled.
package ucs
