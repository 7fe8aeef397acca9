// Package bfs provides tunable options and error definitions
// for breadth-first search over the 8-puzzle slide graph.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/quenlan/npuzzle/board"
)

// Sentinel errors for BFS execution.
var (
	// ErrNoPath is returned when the frontier empties before the goal is
	// reached. Confirmed-solvable starts never hit this; unsolvable ones
	// always do, after exhausting their half of the state space.
	ErrNoPath = errors.New("bfs: no path to goal")

	// ErrNotReached is returned by Result.PathTo for a board the search
	// never discovered. Seeing it for the goal after a successful run
	// indicates a defect in the search itself, not a caller condition.
	ErrNotReached = errors.New("bfs: board not reached by search")
)

// Option configures BFS behavior via functional arguments.
type Option func(*Options)

// Options holds parameters and callbacks to customize BFS execution.
type Options struct {
	// Ctx allows cancellation and deadlines. The search itself is
	// synchronous and run-to-completion; cancellation only serves callers
	// driving it from another goroutine.
	Ctx context.Context

	// OnEnqueue is called when a board is first discovered and enqueued.
	// Receives the board and its depth (slides from the start).
	OnEnqueue func(b board.Board, depth int)

	// OnDequeue is called immediately before expanding a board.
	OnDequeue func(b board.Board, depth int)

	// OnVisit is called when expanding a board. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(b board.Board, depth int) error
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - no-op hooks (OnEnqueue, OnDequeue, OnVisit)
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		OnEnqueue: func(board.Board, int) {},
		OnDequeue: func(board.Board, int) {},
		OnVisit:   func(board.Board, int) error { return nil },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(b board.Board, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run on dequeue.
func WithOnDequeue(fn func(b board.Board, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnVisit registers a callback to run on expansion; returning an error
// from this callback stops the search.
func WithOnVisit(fn func(b board.Board, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// Result holds the outcome of a BFS run:
//   - Path: the start→goal sequence, one slide per step, shortest possible.
//   - Depth: map from discovered board to its distance (slides) from start.
//   - Parent: map from discovered board to the board that first found it.
//   - Expanded: how many boards were dequeued and expanded.
type Result struct {
	Path     []board.Board
	Depth    map[board.Board]int
	Parent   map[board.Board]board.Board
	Expanded int
}

// PathTo reconstructs the start→dest sequence by walking Parent links back
// from dest and reversing. Returns ErrNotReached if the search never
// discovered dest.
func (r *Result) PathTo(dest board.Board) ([]board.Board, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("%w: %v", ErrNotReached, dest)
	}
	// build reversed path; the start has no Parent entry
	path := []board.Board{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	// reverse to get start → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
