package dfs_test

import (
	"context"
	"errors"
	"math/rand"
	"reflect"
	"testing"

	"github.com/quenlan/npuzzle/board"
	"github.com/quenlan/npuzzle/dfs"
)

// TestSolve_StartIsGoal returns the one-element path without expanding.
func TestSolve_StartIsGoal(t *testing.T) {
	res, err := dfs.Solve(board.Goal())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []board.Board{board.Goal()}; !reflect.DeepEqual(res.Path, want) {
		t.Errorf("Path = %v; want %v", res.Path, want)
	}
	if res.Expanded != 0 {
		t.Errorf("Expanded = %d; want 0", res.Expanded)
	}
}

// TestSolve_FindsValidPath checks endpoints and slide adjacency on
// shuffled starts; DFS paths need not be shortest.
func TestSolve_FindsValidPath(t *testing.T) {
	rnd := rand.New(rand.NewSource(21))
	for i := 0; i < 3; i++ {
		start, err := board.Shuffle(board.Goal(), 10, board.WithRand(rnd))
		if err != nil {
			t.Fatal(err)
		}
		res, err := dfs.Solve(start)
		if err != nil {
			t.Fatalf("start %v: %v", start, err)
		}
		if res.Path[0] != start {
			t.Errorf("path[0] = %v; want start %v", res.Path[0], start)
		}
		if last := res.Path[len(res.Path)-1]; !last.IsGoal() {
			t.Errorf("path end = %v; want goal", last)
		}
		for j := 1; j < len(res.Path); j++ {
			if !isNeighbor(res.Path[j-1], res.Path[j]) {
				t.Errorf("path[%d] not one slide from path[%d]", j, j-1)
			}
		}
		if edges := len(res.Path) - 1; edges > dfs.DefaultDepthLimit {
			t.Errorf("path has %d slides; depth limit is %d", edges, dfs.DefaultDepthLimit)
		}
	}
}

// TestSolve_DepthLimitZero: only the start is admitted, so any non-goal
// start must report no path.
func TestSolve_DepthLimitZero(t *testing.T) {
	start, err := board.New([3][3]int{{1, 2, 3}, {4, 5, 6}, {7, 0, 8}})
	if err != nil {
		t.Fatal(err)
	}
	if _, err = dfs.Solve(start, dfs.WithDepthLimit(0)); !errors.Is(err, dfs.ErrNoPath) {
		t.Errorf("want ErrNoPath, got %v", err)
	}
	// The goal itself still solves at limit 0.
	res, err := dfs.Solve(board.Goal(), dfs.WithDepthLimit(0))
	if err != nil {
		t.Fatalf("goal at limit 0: %v", err)
	}
	if len(res.Path) != 1 {
		t.Errorf("len(Path) = %d; want 1", len(res.Path))
	}
}

// TestSolve_TightLimitFindsShortRoute: with the limit at the exact distance,
// the short route must still be found.
func TestSolve_TightLimitFindsShortRoute(t *testing.T) {
	start, err := board.New([3][3]int{{1, 2, 3}, {4, 5, 6}, {0, 7, 8}}) // 2 slides out
	if err != nil {
		t.Fatal(err)
	}
	res, err := dfs.Solve(start, dfs.WithDepthLimit(2))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if edges := len(res.Path) - 1; edges != 2 {
		t.Errorf("path has %d slides; want 2", edges)
	}
}

// TestSolve_NegativeLimit surfaces the recorded option violation.
func TestSolve_NegativeLimit(t *testing.T) {
	if _, err := dfs.Solve(board.Goal(), dfs.WithDepthLimit(-1)); !errors.Is(err, dfs.ErrOptionViolation) {
		t.Errorf("want ErrOptionViolation, got %v", err)
	}
}

// TestSolve_Cancellation aborts promptly on a cancelled context.
func TestSolve_Cancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	start, err := board.Shuffle(board.Goal(), 20, board.WithRand(rand.New(rand.NewSource(3))))
	if err != nil {
		t.Fatal(err)
	}
	if _, err = dfs.Solve(start, dfs.WithContext(ctx)); !errors.Is(err, context.Canceled) {
		t.Errorf("want context.Canceled, got %v", err)
	}
}

// TestSolve_VisitHook fires per expansion and can abort.
func TestSolve_VisitHook(t *testing.T) {
	start, err := board.New([3][3]int{{1, 2, 3}, {4, 5, 6}, {0, 7, 8}})
	if err != nil {
		t.Fatal(err)
	}

	seen := 0
	res, err := dfs.Solve(start, dfs.WithOnVisit(func(board.Board, int) error {
		seen++
		return nil
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if seen != res.Expanded {
		t.Errorf("hook fired %d times; Expanded = %d", seen, res.Expanded)
	}

	boom := errors.New("boom")
	if _, err = dfs.Solve(start, dfs.WithOnVisit(func(board.Board, int) error { return boom })); !errors.Is(err, boom) {
		t.Errorf("want hook error, got %v", err)
	}
}

func isNeighbor(a, b board.Board) bool {
	for _, nb := range a.Neighbors() {
		if nb == b {
			return true
		}
	}

	return false
}
