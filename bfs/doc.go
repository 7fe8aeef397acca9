// Package bfs provides breadth-first search over the 8-puzzle slide graph,
// returning the shortest start→goal path in slide count.
//
// # What
//
//   - Explore boards in non-decreasing distance (slide count) from a start.
//   - Returns a Result containing:
//   - Path: the minimal start→goal sequence, both endpoints inclusive
//   - Depth: map from board → distance (slides) from start
//   - Parent: map from board → the board that first discovered it
//   - Expanded: number of boards dequeued and expanded
//   - Supports functional hooks at three stages:
//   - OnEnqueue (when a board is first discovered)
//   - OnDequeue (immediately before expansion)
//   - OnVisit   (during expansion; may abort with an error)
//
// # Why
//
//   - Every slide has unit cost, so level-order exploration finds the
//     provably shortest solving sequence.
//   - The parent map doubles as a reusable BFS tree: Result.PathTo
//     reconstructs the path to any discovered board, not just the goal.
//
// # Semantics
//
//	Boards are marked visited at discovery time (enqueue), not at expansion
//	time, so no board enters the frontier twice. This differs deliberately
//	from the dfs package, which defers the visited mark to pop time; the
//	two timings give each strategy its characteristic memory profile.
//
// # Complexity (S = reachable states ≤ 181,440)
//
//   - Time:   O(S) board expansions, ≤ 4 neighbors each
//   - Memory: O(S) for frontier, visited set, depth and parent maps
//
// # Usage
//
//	start, _ := board.Shuffle(board.Goal(), 30)
//	res, err := bfs.Solve(start)
//	if err != nil {
//	    // ErrNoPath (unsolvable start), context error, or a hook error
//	}
//	for _, b := range res.Path {
//	    fmt.Println(b)
//	}
//
// # Errors
//
//   - ErrNoPath      if the frontier empties without reaching the goal.
//   - ErrNotReached  from Result.PathTo for boards the search never saw.
//   - Context errors when the supplied context is cancelled.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
