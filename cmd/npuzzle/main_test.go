package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/quenlan/npuzzle/board"
)

// TestParseState round-trips a valid flag value and rejects malformed ones.
func TestParseState(t *testing.T) {
	b, err := parseState("1,2,3,4,5,6,7,0,8")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := (board.Board{{1, 2, 3}, {4, 5, 6}, {7, 0, 8}}); b != want {
		t.Errorf("parseState = %v; want %v", b, want)
	}

	if _, err = parseState("1,2,3"); err == nil {
		t.Error("short input: want error, got nil")
	}
	if _, err = parseState("1,2,3,4,5,6,7,0,x"); err == nil {
		t.Error("non-numeric input: want error, got nil")
	}
	if _, err = parseState("1,2,3,4,5,6,7,8,8"); !errors.Is(err, board.ErrNotPermutation) {
		t.Errorf("duplicate input: want ErrNotPermutation, got %v", err)
	}
}

// TestSolveCommand_OneSlide replays the two-step path for a near-goal start.
func TestSolveCommand_OneSlide(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{
		"solve",
		"--state", "1,2,3,4,5,6,7,0,8",
		"--strategy", "bfs",
		"--delay", "0s",
	})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}

	got := out.String()
	for _, want := range []string{"Step 1:", "Step 2:", "Solved in 1 slides with BFS."} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}

// TestSolveCommand_Unsolvable reports the parity failure instead of a path.
func TestSolveCommand_Unsolvable(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{
		"solve",
		"--state", "1,2,3,4,5,6,8,7,0",
		"--strategy", "ucs",
		"--delay", "0s",
	})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.Contains(out.String(), "not solvable") {
		t.Errorf("output missing solvability message:\n%s", out.String())
	}
}
