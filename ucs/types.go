// Package ucs defines core types and configuration options for uniform-cost
// search over the 8-puzzle slide graph.
package ucs

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/quenlan/npuzzle/board"
)

// Sentinel errors for UCS execution.
var (
	// ErrNoPath is returned when the queue empties before the goal is
	// reached. With an uncapped cost budget this only happens for
	// unsolvable starts, whose entire parity class gets exhausted.
	ErrNoPath = errors.New("ucs: no path to goal")

	// ErrNotReached is returned by Result.PathTo for a board the search
	// never recorded a cost for.
	ErrNotReached = errors.New("ucs: board not reached by search")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("ucs: invalid option supplied")
)

// Option configures UCS behavior via functional arguments.
type Option func(*Options)

// Options holds configurable parameters for UCS execution.
type Options struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	Ctx context.Context

	// MaxCost stops exploration once the cheapest queued entry exceeds it.
	// Defaults to math.MaxInt (no cap).
	MaxCost int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with a background context and no cost cap.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		MaxCost: math.MaxInt,
		err:     nil,
	}
}

// WithContext sets a custom context for cancellation.
// Passing nil has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxCost caps the accumulated path cost explored.
// Negative values are invalid and surface as ErrOptionViolation.
func WithMaxCost(c int) Option {
	return func(o *Options) {
		if c < 0 {
			o.err = fmt.Errorf("%w: MaxCost cannot be negative (%d)", ErrOptionViolation, c)
			return
		}
		o.MaxCost = c
	}
}

// Result holds the outcome of a UCS run:
//   - Path: the start→goal sequence; minimal in total cost, which on this
//     unit-cost graph means minimal in slide count.
//   - Cost: map from discovered board to its best-known path cost.
//   - Parent: map from discovered board to its predecessor on the cheapest
//     known route (last improving write wins).
//   - Expanded: how many boards were settled and relaxed.
type Result struct {
	Path     []board.Board
	Cost     map[board.Board]int
	Parent   map[board.Board]board.Board
	Expanded int
}

// PathTo reconstructs the start→dest sequence by walking Parent links back
// from dest and reversing. Returns ErrNotReached if the search never
// recorded a cost for dest.
func (r *Result) PathTo(dest board.Board) ([]board.Board, error) {
	if _, ok := r.Cost[dest]; !ok {
		return nil, fmt.Errorf("%w: %v", ErrNotReached, dest)
	}
	path := []board.Board{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
