// Package dfs implements depth-limited depth-first search over the 8-puzzle
// slide graph using an explicit stack.
package dfs

import (
	"fmt"

	"github.com/quenlan/npuzzle/board"
)

// stackEntry carries a board together with the path taken to reach it and
// its depth, so no parent map is needed for reconstruction.
type stackEntry struct {
	b     board.Board
	path  []board.Board
	depth int
}

// Solve runs depth-first search from start toward board.Goal(), abandoning
// any branch deeper than the configured depth limit.
//
// Boards are marked visited when popped, not when pushed. The same board
// may therefore sit on the stack several times before the first pop settles
// it; later pops discard it as a duplicate. This asymmetry with bfs, which
// marks at discovery time, is part of the strategy's contract.
//
// Neighbors are pushed in reverse emission order so that the board package's
// up, down, left, right order is popped first from the LIFO stack.
//
// The returned path is valid but not necessarily shortest. Returns ErrNoPath
// when the stack empties or every branch is depth-capped, ErrOptionViolation
// for invalid options, the context's error on cancellation, or any error
// returned by an OnVisit hook.
func Solve(start board.Board, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	res := &Result{}
	visited := make(map[board.Board]bool, 64)
	stack := []stackEntry{{b: start, path: nil, depth: 0}}

	var e stackEntry
	for len(stack) > 0 {
		// cancellation check (once per pop)
		select {
		case <-o.Ctx.Done():
			return nil, o.Ctx.Err()
		default:
		}

		e, stack = stack[len(stack)-1], stack[:len(stack)-1]

		// Depth cap: discard the branch without expanding.
		if e.depth > o.DepthLimit {
			continue
		}

		// Visited-on-pop: a board pushed twice settles on its first pop.
		if visited[e.b] {
			continue
		}
		visited[e.b] = true

		if e.b.IsGoal() {
			res.Path = append(e.path, e.b)
			return res, nil
		}

		res.Expanded++
		if e.depth > res.MaxDepthSeen {
			res.MaxDepthSeen = e.depth
		}
		if o.OnVisit != nil {
			if err := o.OnVisit(e.b, e.depth); err != nil {
				return nil, fmt.Errorf("dfs: OnVisit hook at %v: %w", e.b, err)
			}
		}

		nbs := e.b.Neighbors()
		for i := len(nbs) - 1; i >= 0; i-- {
			if visited[nbs[i]] {
				continue
			}
			next := make([]board.Board, len(e.path), len(e.path)+1)
			copy(next, e.path)
			stack = append(stack, stackEntry{
				b:     nbs[i],
				path:  append(next, e.b),
				depth: e.depth + 1,
			})
		}
	}

	return nil, ErrNoPath
}
