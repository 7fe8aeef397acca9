// Package board provides the value types and pure primitives underlying the
// npuzzle search strategies: the Board state, neighbor generation, the
// inversion-parity solvability test, and random shuffling.
//
// # What
//
//   - Board: a comparable [3][3]int value type; 0 (Blank) marks the empty slot.
//     Two boards are equal iff all nine cells match, so Boards key maps and
//     sets directly with no hashing layer.
//   - Position: the blank's (row, col), derived on demand via Board.Blank.
//   - Neighbors: all boards one legal slide away, emitted in the fixed order
//     up, down, left, right (2 for corners, 3 for edges, 4 for the center).
//   - Solvable: parity of the inversion count over the 8 non-blank tiles;
//     even parity means the goal is reachable.
//   - Shuffle: a random walk of legal slides from a given board, solvability-
//     preserving by construction.
//
// # Why
//
//	Search strategies treat the puzzle as an implicit graph: vertices are
//	Boards, edges are slides, and adjacency is generated on the fly rather
//	than stored. Keeping Board a plain comparable value makes visited sets
//	and predecessor maps ordinary Go maps.
//
// # Determinism
//
//	Neighbors always emits in the same direction order, so traversal order
//	and DFS tie-breaking are fully reproducible. Shuffle is reproducible
//	when given a fixed-seed source via WithRand.
//
// # Errors
//
//   - ErrNotPermutation  if New receives cells that are not 0..8 each once.
//   - ErrNoBlank         if Blank finds no empty slot (defensive; cannot
//     occur for boards built by this package).
//   - ErrNegativeMoves   if Shuffle is asked for a negative walk length.
//
// # Usage
//
//	start, _ := board.Shuffle(board.Goal(), 30)
//	if !start.Solvable() {
//	    // cannot happen for shuffled boards; required for hand-built ones
//	}
//	for _, nb := range start.Neighbors() {
//	    fmt.Println(nb)
//	}
package board
