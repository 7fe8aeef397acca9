package board_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/quenlan/npuzzle/board"
)

// TestShuffle_NegativeMoves rejects negative walk lengths.
func TestShuffle_NegativeMoves(t *testing.T) {
	if _, err := board.Shuffle(board.Goal(), -1); !errors.Is(err, board.ErrNegativeMoves) {
		t.Errorf("want ErrNegativeMoves, got %v", err)
	}
}

// TestShuffle_ZeroMoves returns the input unchanged.
func TestShuffle_ZeroMoves(t *testing.T) {
	b, err := board.Shuffle(board.Goal(), 0)
	if err != nil {
		t.Fatal(err)
	}
	if !b.IsGoal() {
		t.Errorf("Shuffle(goal, 0) = %v; want goal", b)
	}
}

// TestShuffle_AlwaysSolvable: a walk of legal slides from the goal stays in
// the solvable class, for a spread of walk lengths.
func TestShuffle_AlwaysSolvable(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	for _, moves := range []int{0, 1, 2, 5, 20, 30, 100} {
		b, err := board.Shuffle(board.Goal(), moves, board.WithRand(rnd))
		if err != nil {
			t.Fatalf("moves=%d: %v", moves, err)
		}
		if !b.Solvable() {
			t.Errorf("moves=%d: shuffled board %v not solvable", moves, b)
		}
	}
}

// TestShuffle_Reproducible: identical seeds yield identical walks.
func TestShuffle_Reproducible(t *testing.T) {
	a, err := board.Shuffle(board.Goal(), 30, board.WithRand(rand.New(rand.NewSource(99))))
	if err != nil {
		t.Fatal(err)
	}
	b, err := board.Shuffle(board.Goal(), 30, board.WithRand(rand.New(rand.NewSource(99))))
	if err != nil {
		t.Fatal(err)
	}
	if a != b {
		t.Errorf("same seed diverged: %v vs %v", a, b)
	}
}
