// Package board defines core types, options, and sentinel errors
// for the board subpackage of github.com/quenlan/npuzzle.
package board

import (
	"errors"
	"math/rand"
)

// Sentinel errors for board operations.
var (
	// ErrNotPermutation indicates the input cells are not a permutation of 0..8.
	ErrNotPermutation = errors.New("board: cells must contain each of 0..8 exactly once")
	// ErrNoBlank indicates a board with no blank tile; unreachable for boards
	// built via New, Goal, or Neighbors.
	ErrNoBlank = errors.New("board: no blank tile present")
	// ErrNegativeMoves indicates a negative shuffle length.
	ErrNegativeMoves = errors.New("board: shuffle moves must be non-negative")
)

const (
	// Size is the fixed edge length of the puzzle grid.
	Size = 3
	// Tiles is the number of cells (and the exclusive upper bound of tile values).
	Tiles = Size * Size
	// Blank is the cell value marking the empty slot.
	Blank = 0
)

// Board is a 3×3 sliding-puzzle configuration. Cells range over 0..8 with
// Blank (0) marking the empty slot. Board is a plain comparable value type:
// it can key maps and sets directly, and every operation returns fresh
// values rather than mutating in place.
type Board [Size][Size]int

// Position identifies a cell by row and column, each in [0, Size).
type Position struct {
	Row, Col int
}

// ShuffleOptions holds tunable parameters for Shuffle.
type ShuffleOptions struct {
	// Rand supplies the randomness source. Defaults to a time-seeded source;
	// inject a fixed-seed *rand.Rand for reproducible walks.
	Rand *rand.Rand
}

// Option configures Shuffle behavior via functional arguments.
type Option func(*ShuffleOptions)

// WithRand sets a custom randomness source for Shuffle.
// Passing nil has no effect (the default source is retained).
func WithRand(r *rand.Rand) Option {
	return func(o *ShuffleOptions) {
		if r != nil {
			o.Rand = r
		}
	}
}
