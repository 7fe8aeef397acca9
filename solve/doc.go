// Package solve exposes the npuzzle library to presentation layers: pick a
// strategy by name, pre-check solvability, run the search, get back a plain
// start→goal path to render at whatever cadence suits the front-end.
//
// # What
//
//   - Strategy constants BFS, DFS, UCS plus ParseStrategy for user input.
//   - Run(start, strategy, opts...): solvability gate, dispatch, path.
//   - Uniform error taxonomy as matchable sentinels:
//   - ErrUnsolvable      — parity rules the goal out; nothing searched
//   - ErrUnknownStrategy — the name is not one of BFS, DFS, UCS
//   - ErrNoPath          — the strategy exhausted its space (DFS's depth
//     cap makes this a legitimate outcome, not a fault)
//
// # Why
//
//	Front-ends should not care which package implements which strategy or
//	how each reports exhaustion. Run gives them one call, one path shape,
//	and errors they can switch on with errors.Is to decide between showing
//	a message and replaying a solution.
//
// # Usage
//
//	start, _ := board.Shuffle(board.Goal(), 30)
//	path, err := solve.Run(start, solve.BFS)
//	switch {
//	case errors.Is(err, solve.ErrUnsolvable):
//	    // report to the user; no search was attempted
//	case errors.Is(err, solve.ErrNoPath):
//	    // depth-capped DFS came up empty
//	case err != nil:
//	    // cancellation or option misuse
//	default:
//	    for _, b := range path { fmt.Println(b) }
//	}
//
// Direct use of the bfs, dfs, and ucs packages remains available when a
// caller needs hooks, diagnostics, or per-strategy options beyond the
// facade's surface.
package solve
