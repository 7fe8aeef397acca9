// Package ucs implements uniform-cost search over the 8-puzzle slide graph.
//
// Every slide costs 1, so UCS settles boards in the same order class as
// breadth-first search; the implementation is nonetheless a general
// priority-queue search, processing boards in increasing accumulated cost
// with a min-heap and a lazy decrease-key strategy: improved costs push
// duplicate heap entries, and stale entries are skipped when popped.
package ucs

import (
	"container/heap"

	"github.com/quenlan/npuzzle/board"
)

// Solve runs uniform-cost search from start toward board.Goal().
//
// The queue is keyed by accumulated path cost. When a cheaper route to an
// already-queued board is found, its cost and predecessor are overwritten
// and a fresh entry is pushed; the superseded entry is discarded on pop via
// the visited check. Tie-breaking among equal costs follows the heap's
// internal order, which is deterministic for a given sequence of pushes but
// not a contract of this package.
//
// Returns ErrNoPath if the queue empties without reaching the goal,
// ErrOptionViolation for invalid options, or the context's error on
// cancellation.
func Solve(start board.Board, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	r := &runner{
		opts:    o,
		visited: make(map[board.Board]bool, 64),
		res: &Result{
			Cost:   make(map[board.Board]int, 64),
			Parent: make(map[board.Board]board.Board, 64),
		},
	}
	r.init(start)

	goal, err := r.process()
	if err != nil {
		return nil, err
	}
	if !goal {
		return nil, ErrNoPath
	}

	if r.res.Path, err = r.res.PathTo(board.Goal()); err != nil {
		// Cannot happen: the goal was just popped with a recorded cost.
		return nil, err
	}

	return r.res, nil
}

// runner holds the mutable state for a single UCS execution.
type runner struct {
	opts    Options
	visited map[board.Board]bool
	pq      itemPQ
	res     *Result
}

// init seeds the cost map and the heap with (start, 0).
func (r *runner) init(start board.Board) {
	r.res.Cost[start] = 0
	r.pq = make(itemPQ, 0, 64)
	heap.Init(&r.pq)
	heap.Push(&r.pq, &item{b: start, cost: 0})
}

// process pops minimum-cost entries until the goal surfaces, the queue
// empties, the cost cap is crossed, or the context is cancelled.
// Reports whether the goal was reached.
func (r *runner) process() (bool, error) {
	for r.pq.Len() > 0 {
		select {
		case <-r.opts.Ctx.Done():
			return false, r.opts.Ctx.Err()
		default:
		}

		it := heap.Pop(&r.pq).(*item)

		// Stale entry: a cheaper duplicate settled this board already.
		if r.visited[it.b] {
			continue
		}

		if it.cost > r.opts.MaxCost {
			break
		}

		if it.b.IsGoal() {
			return true, nil
		}

		r.visited[it.b] = true
		r.res.Expanded++
		r.relax(it)
	}

	return false, nil
}

// relax attempts to improve the cost of every neighbor of it.b.
func (r *runner) relax(it *item) {
	newCost := it.cost + 1 // every slide costs one move
	if newCost > r.opts.MaxCost {
		return
	}
	for _, nb := range it.b.Neighbors() {
		prev, seen := r.res.Cost[nb]
		if seen && newCost >= prev {
			continue
		}
		r.res.Cost[nb] = newCost
		r.res.Parent[nb] = it.b
		heap.Push(&r.pq, &item{b: nb, cost: newCost})
	}
}

// item pairs a board with its accumulated path cost for heap ordering.
type item struct {
	b    board.Board
	cost int
}

// itemPQ is a min-heap of *item ordered by cost ascending. Duplicates are
// expected under lazy decrease-key; stale ones are filtered on pop.
type itemPQ []*item

func (pq itemPQ) Len() int           { return len(pq) }
func (pq itemPQ) Less(i, j int) bool { return pq[i].cost < pq[j].cost }
func (pq itemPQ) Swap(i, j int)      { pq[i], pq[j] = pq[j], pq[i] }

func (pq *itemPQ) Push(x interface{}) { *pq = append(*pq, x.(*item)) }

func (pq *itemPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	it := old[n-1]
	*pq = old[:n-1]

	return it
}
