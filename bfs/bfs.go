// Package bfs provides breadth-first search over the 8-puzzle slide graph,
// returning the shortest start→goal path in slide count together with
// depth and parent maps for every discovered board.
package bfs

import (
	"fmt"

	"github.com/quenlan/npuzzle/board"
)

// queueItem pairs a board with its BFS depth.
type queueItem struct {
	b     board.Board
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	opts    Options
	queue   []queueItem
	visited map[board.Board]bool
	res     *Result
}

// Solve runs breadth-first search from start toward board.Goal(),
// applying any number of functional Options.
//
// Boards are marked visited at discovery time, not expansion time, so no
// board is ever enqueued twice. Because every slide costs one move, the
// returned Result.Path is minimal in length. Returns ErrNoPath if the
// frontier empties without reaching the goal, the context's error on
// cancellation, or any error returned by an OnVisit hook.
func Solve(start board.Board, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	w := &walker{
		opts:    o,
		queue:   make([]queueItem, 0, 64),
		visited: make(map[board.Board]bool, 64),
		res: &Result{
			Depth:  make(map[board.Board]int, 64),
			Parent: make(map[board.Board]board.Board, 64),
		},
	}

	// Seed frontier with the start board (no parent entry).
	w.enqueue(start, 0, nil)

	goal, err := w.loop()
	if err != nil {
		return nil, err
	}
	if !goal {
		return nil, ErrNoPath
	}

	// Reconstruct the start→goal path from the parent map.
	if w.res.Path, err = w.res.PathTo(board.Goal()); err != nil {
		// Cannot happen: the goal was just dequeued, so it is in Depth.
		return nil, fmt.Errorf("bfs: reconstruct after goal hit: %w", err)
	}

	return w.res, nil
}

// enqueue marks b visited at depth d, records its parent, fires OnEnqueue,
// and appends it to the frontier.
func (w *walker) enqueue(b board.Board, d int, parent *board.Board) {
	w.visited[b] = true
	w.res.Depth[b] = d
	if parent != nil {
		w.res.Parent[b] = *parent
	}
	w.opts.OnEnqueue(b, d)
	w.queue = append(w.queue, queueItem{b: b, depth: d})
}

// loop processes the frontier until the goal is dequeued, the frontier
// empties, an error occurs, or the context is cancelled.
// Reports whether the goal was reached.
func (w *walker) loop() (bool, error) {
	for len(w.queue) > 0 {
		// cancellation check (once per iteration)
		select {
		case <-w.opts.Ctx.Done():
			return false, w.opts.Ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		w.opts.OnDequeue(item.b, item.depth)

		if item.b.IsGoal() {
			return true, nil
		}

		w.res.Expanded++
		if err := w.opts.OnVisit(item.b, item.depth); err != nil {
			return false, fmt.Errorf("bfs: OnVisit error at %v: %w", item.b, err)
		}

		for _, nb := range item.b.Neighbors() {
			if !w.visited[nb] {
				w.enqueue(nb, item.depth+1, &item.b)
			}
		}
	}

	return false, nil
}
