// Package npuzzle is an in-memory toolkit for solving the classic 3×3
// sliding-tile puzzle (the 8-puzzle) with uninformed search.
//
// 🚀 What is npuzzle?
//
//	A small, dependency-light library that brings together:
//		• Board primitives: immutable 3×3 states, neighbor generation, parity solvability
//		• Traversals: breadth-first search, depth-limited depth-first search
//		• Uniform-cost search: priority-queue exploration with lazy decrease-key
//		• Shuffling: random walks from the goal that stay solvable by construction
//
// ✨ Why choose npuzzle?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Pure functions – state in, state out; no shared mutable puzzle state
//   - Extensible – add custom hooks (OnVisit, OnEnqueue…) for custom logic
//   - Pure Go – no cgo
//
// Under the hood, everything is organized under five subpackages:
//
//	board/ — Board and Position value types, neighbors, solvability, shuffling
//	bfs/   — breadth-first search, shortest path in slide count
//	dfs/   — depth-limited depth-first search with an explicit stack
//	ucs/   — uniform-cost search over the unit-cost slide graph
//	solve/ — strategy selection facade consumed by front-ends
//
// Quick ASCII example:
//
//	    1 2 3
//	    4 5 6        the goal configuration; _ marks the blank
//	    7 8 _
//
// A front-end shuffles from the goal, checks solvability, picks a strategy,
// and replays the returned path at its own pace. See cmd/npuzzle for a
// terminal front-end built on exactly that flow.
//
//	go get github.com/quenlan/npuzzle
package npuzzle
