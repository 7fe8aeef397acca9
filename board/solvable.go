package board

// Solvable reports whether the goal configuration is reachable from b.
//
// The test flattens the 8 non-blank tiles in row-major order and counts
// inversions: pairs (i, j) with i < j and value[i] > value[j]. A slide never
// changes inversion parity, and the goal has zero inversions, so b can reach
// the goal iff its inversion count is even. Run this before launching any
// search; strategies assume a solvable start.
func (b Board) Solvable() bool {
	flat := make([]int, 0, Tiles-1)
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if b[r][c] != Blank {
				flat = append(flat, b[r][c])
			}
		}
	}

	inversions := 0
	for i := 0; i < len(flat); i++ {
		for j := i + 1; j < len(flat); j++ {
			if flat[i] > flat[j] {
				inversions++
			}
		}
	}

	return inversions%2 == 0
}
