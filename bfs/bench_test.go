package bfs_test

import (
	"math/rand"
	"testing"

	"github.com/quenlan/npuzzle/bfs"
	"github.com/quenlan/npuzzle/board"
)

// BenchmarkSolve_Shallow measures BFS on starts a short walk from the goal.
func BenchmarkSolve_Shallow(b *testing.B) {
	start, err := board.Shuffle(board.Goal(), 10, board.WithRand(rand.New(rand.NewSource(42))))
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.Solve(start)
	}
}

// BenchmarkSolve_Deep measures BFS on heavily shuffled starts, where the
// frontier covers a large share of the 181,440 reachable states.
func BenchmarkSolve_Deep(b *testing.B) {
	start, err := board.Shuffle(board.Goal(), 200, board.WithRand(rand.New(rand.NewSource(42))))
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.Solve(start)
	}
}
