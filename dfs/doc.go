// Package dfs implements depth-limited depth-first search over the 8-puzzle
// slide graph. It finds a valid (not necessarily shortest) solving sequence
// using an explicit stack, a depth cap, and visited-on-pop bookkeeping.
//
// # What
//
//   - Solve(start, opts...): walk branches deep-first until the goal appears
//     or every branch is exhausted or depth-capped.
//   - Each stack entry carries its own start→here path, so the winning
//     branch is returned directly with no parent map.
//   - Result reports the path, the expansion count, and the deepest level
//     reached (MaxDepthSeen) as a diagnostic.
//
// # Semantics
//
//	Visited marks are applied when a board is popped, not when it is pushed.
//	A board can therefore be pushed multiple times by different branches;
//	whichever pop happens first settles it and later pops discard it. This
//	is a deliberate simplicity/memory tradeoff that shapes the strategy's
//	exploration order; do not "fix" it to match bfs's mark-at-discovery.
//
//	Neighbors are pushed in reverse of the board package's up, down, left,
//	right emission order, so the natural order is explored first off the
//	LIFO stack. Tie-breaking is therefore fully deterministic.
//
//	Termination is guaranteed by the depth cap together with the visited
//	check: no branch outlives DepthLimit slides and no board expands twice.
//
// # Complexity (S = reachable states, L = depth limit)
//
//   - Time:   O(S) expansions worst case; the cap prunes long branches.
//   - Memory: O(S · L) worst case, since each stack entry owns its path.
//
// # Usage
//
//	res, err := dfs.Solve(start, dfs.WithDepthLimit(50))
//	if errors.Is(err, dfs.ErrNoPath) {
//	    // every route exceeds the limit (or the start is unsolvable)
//	}
//
// # Errors
//
//   - ErrNoPath          if the stack empties or all branches hit the cap.
//   - ErrOptionViolation for a negative depth limit.
//   - Context errors when the supplied context is cancelled.
//   - Wrapped user-supplied hook errors from OnVisit.
package dfs
