// Package solve is the front door of npuzzle: strategy selection, the
// solvability pre-check, and a single Run entry point returning a plain
// start→goal path for presentation layers to replay.
package solve

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/quenlan/npuzzle/bfs"
	"github.com/quenlan/npuzzle/board"
	"github.com/quenlan/npuzzle/dfs"
	"github.com/quenlan/npuzzle/ucs"
)

// Sentinel errors for the solving facade.
var (
	// ErrUnsolvable is returned before any search runs when the start's
	// inversion parity puts the goal out of reach.
	ErrUnsolvable = errors.New("solve: board is not solvable")

	// ErrUnknownStrategy is returned for a strategy outside {BFS, DFS, UCS}.
	ErrUnknownStrategy = errors.New("solve: unknown strategy")

	// ErrNoPath is returned when the chosen strategy exhausted its search
	// space without reaching the goal. For BFS and UCS on a solvable start
	// this cannot happen; DFS's depth cap can legitimately produce it.
	ErrNoPath = errors.New("solve: no path found")
)

// Strategy names an uninformed search strategy.
type Strategy string

// Supported strategies.
const (
	BFS Strategy = "BFS"
	DFS Strategy = "DFS"
	UCS Strategy = "UCS"
)

// ParseStrategy maps a case-insensitive name to a Strategy.
// Returns ErrUnknownStrategy for anything outside {BFS, DFS, UCS}.
func ParseStrategy(name string) (Strategy, error) {
	switch s := Strategy(strings.ToUpper(strings.TrimSpace(name))); s {
	case BFS, DFS, UCS:
		return s, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
}

// Option configures Run via functional arguments.
type Option func(*Options)

// Options holds parameters shared across strategies.
type Options struct {
	// Ctx allows cancellation and deadlines; defaults to context.Background().
	Ctx context.Context

	// DepthLimit is forwarded to the DFS strategy and ignored by the
	// others. Defaults to dfs.DefaultDepthLimit.
	DepthLimit int
}

// DefaultOptions returns Options with a background context and the DFS
// default depth limit.
func DefaultOptions() Options {
	return Options{
		Ctx:        context.Background(),
		DepthLimit: dfs.DefaultDepthLimit,
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

// WithDepthLimit overrides the DFS depth cap. Only DFS consults it;
// negative values surface as dfs.ErrOptionViolation when DFS runs.
func WithDepthLimit(d int) Option {
	return func(o *Options) {
		o.DepthLimit = d
	}
}

// Run checks solvability, dispatches to the chosen strategy, and returns
// the start→goal path toward the fixed board.Goal().
//
// The solvability pre-check runs before any strategy: an odd-parity start
// returns ErrUnsolvable without searching at all. A strategy that exhausts
// its space yields an error matching ErrNoPath via errors.Is. The goal
// configuration is a fixed constant, not an input.
func Run(start board.Board, strategy Strategy, opts ...Option) ([]board.Board, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if !start.Solvable() {
		return nil, fmt.Errorf("%w: %v", ErrUnsolvable, start)
	}

	switch strategy {
	case BFS:
		res, err := bfs.Solve(start, bfs.WithContext(o.Ctx))
		if err != nil {
			return nil, wrapNoPath(err, bfs.ErrNoPath, strategy)
		}
		return res.Path, nil
	case DFS:
		res, err := dfs.Solve(start, dfs.WithContext(o.Ctx), dfs.WithDepthLimit(o.DepthLimit))
		if err != nil {
			return nil, wrapNoPath(err, dfs.ErrNoPath, strategy)
		}
		return res.Path, nil
	case UCS:
		res, err := ucs.Solve(start, ucs.WithContext(o.Ctx))
		if err != nil {
			return nil, wrapNoPath(err, ucs.ErrNoPath, strategy)
		}
		return res.Path, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, strategy)
	}
}

// wrapNoPath folds a strategy's exhaustion error into the facade's
// ErrNoPath sentinel; every other error passes through unchanged.
func wrapNoPath(err, strategyNoPath error, s Strategy) error {
	if errors.Is(err, strategyNoPath) {
		return fmt.Errorf("%w by %s: %v", ErrNoPath, s, err)
	}

	return err
}
