// Package dfs defines types, options, and sentinel errors for depth-limited
// depth-first search over the 8-puzzle slide graph.
package dfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/quenlan/npuzzle/board"
)

// DefaultDepthLimit bounds how many slides deep a branch may grow before
// it is abandoned. Fifty covers every solvable 8-puzzle instance (the
// hardest needs 31 slides) while keeping runaway branches in check.
const DefaultDepthLimit = 50

// Sentinel errors for DFS execution.
var (
	// ErrNoPath is returned when the stack empties without reaching the
	// goal. Unlike breadth-first search, a depth-capped DFS can report this
	// even for solvable starts whose every route exceeds the limit.
	ErrNoPath = errors.New("dfs: no path to goal within depth limit")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("dfs: invalid option supplied")
)

// Option configures DFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth limit), it is recorded
// internally and surfaced as ErrOptionViolation when Solve is invoked.
type Option func(*Options)

// Options holds configurable parameters for DFS execution.
type Options struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	Ctx context.Context

	// DepthLimit caps branch depth. An entry popped at depth > DepthLimit
	// is discarded without expansion. A limit of 0 admits only the start
	// itself, so any non-goal start yields ErrNoPath.
	DepthLimit int

	// OnVisit, if non-nil, is invoked when a board is popped and expanded.
	// Returning an error aborts the search with that error.
	OnVisit func(b board.Board, depth int) error

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - Background context
//   - DepthLimit = DefaultDepthLimit (50)
//   - no OnVisit hook
func DefaultOptions() Options {
	return Options{
		Ctx:        context.Background(),
		DepthLimit: DefaultDepthLimit,
		OnVisit:    nil,
		err:        nil,
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

// WithDepthLimit caps branch depth at d slides from the start.
//
//	d > 0: abandon branches deeper than d
//	d == 0: admit only the start board
//	d < 0: invalid option → ErrOptionViolation
func WithDepthLimit(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: DepthLimit cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.DepthLimit = d
	}
}

// WithOnVisit registers a hook fired on each expansion; returning an error
// stops the search.
func WithOnVisit(fn func(b board.Board, depth int) error) Option {
	return func(o *Options) {
		o.OnVisit = fn
	}
}

// Result captures the outcome of a depth-first run.
type Result struct {
	// Path is the start→goal sequence actually walked; not necessarily
	// minimal, but never longer than DepthLimit slides.
	Path []board.Board

	// Expanded counts boards popped and expanded (duplicates and
	// depth-capped pops excluded).
	Expanded int

	// MaxDepthSeen is the deepest expansion reached, for diagnostics.
	MaxDepthSeen int
}
