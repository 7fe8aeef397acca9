package board

import (
	"fmt"
	"strings"
)

// Goal returns the solved configuration:
//
//	1 2 3
//	4 5 6
//	7 8 _
func Goal() Board {
	return Board{
		{1, 2, 3},
		{4, 5, 6},
		{7, 8, Blank},
	}
}

// New validates cells and returns them as a Board.
// Returns ErrNotPermutation unless each value 0..8 appears exactly once.
func New(cells [Size][Size]int) (Board, error) {
	var seen [Tiles]bool
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			v := cells[r][c]
			if v < 0 || v >= Tiles || seen[v] {
				return Board{}, fmt.Errorf("%w: got %d at (%d,%d)", ErrNotPermutation, v, r, c)
			}
			seen[v] = true
		}
	}

	return cells, nil
}

// Blank locates the blank tile. Returns ErrNoBlank if absent, which cannot
// happen for boards obtained from New, Goal, Neighbors, or Shuffle.
func (b Board) Blank() (Position, error) {
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if b[r][c] == Blank {
				return Position{Row: r, Col: c}, nil
			}
		}
	}

	return Position{}, ErrNoBlank
}

// slideOffsets enumerates the four blank moves in fixed emission order:
// up, down, left, right. DFS tie-breaking depends on this order.
var slideOffsets = [4][2]int{
	{-1, 0},
	{1, 0},
	{0, -1},
	{0, 1},
}

// Neighbors returns every configuration reachable by one legal slide:
// for each in-bounds direction, a fresh Board with the blank and the
// adjacent tile swapped. Corners yield 2 boards, edges 3, the center 4.
func (b Board) Neighbors() []Board {
	pos, err := b.Blank()
	if err != nil {
		// No blank means no legal slides.
		return nil
	}

	out := make([]Board, 0, len(slideOffsets))
	var nr, nc int
	for _, d := range slideOffsets {
		nr, nc = pos.Row+d[0], pos.Col+d[1]
		if nr < 0 || nr >= Size || nc < 0 || nc >= Size {
			continue
		}
		next := b // value copy
		next[pos.Row][pos.Col], next[nr][nc] = next[nr][nc], next[pos.Row][pos.Col]
		out = append(out, next)
	}

	return out
}

// IsGoal reports whether b equals the solved configuration.
func (b Board) IsGoal() bool { return b == Goal() }

// String renders the board row by row with the blank shown as "_":
//
//	1 2 3 | 4 5 6 | 7 8 _
func (b Board) String() string {
	var sb strings.Builder
	for r := 0; r < Size; r++ {
		if r > 0 {
			sb.WriteString(" | ")
		}
		for c := 0; c < Size; c++ {
			if c > 0 {
				sb.WriteByte(' ')
			}
			if b[r][c] == Blank {
				sb.WriteByte('_')
			} else {
				fmt.Fprintf(&sb, "%d", b[r][c])
			}
		}
	}

	return sb.String()
}
