package bfs_test

import (
	"fmt"

	"github.com/quenlan/npuzzle/bfs"
	"github.com/quenlan/npuzzle/board"
)

// ExampleSolve solves a board one slide from the goal; the shortest path
// has exactly two elements.
func ExampleSolve() {
	start, _ := board.New([3][3]int{
		{1, 2, 3},
		{4, 5, 6},
		{7, 0, 8},
	})

	res, err := bfs.Solve(start)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	for _, b := range res.Path {
		fmt.Println(b)
	}
	// Output:
	// 1 2 3 | 4 5 6 | 7 _ 8
	// 1 2 3 | 4 5 6 | 7 8 _
}

// ExampleSolve_hooks counts frontier activity while solving.
func ExampleSolve_hooks() {
	start, _ := board.New([3][3]int{
		{1, 2, 3},
		{4, 5, 6},
		{0, 7, 8},
	})

	enqueued := 0
	res, err := bfs.Solve(start, bfs.WithOnEnqueue(func(board.Board, int) { enqueued++ }))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("slides:", len(res.Path)-1)
	fmt.Println("enqueued at least the path:", enqueued >= len(res.Path))
	// Output:
	// slides: 2
	// enqueued at least the path: true
}
