package board

import (
	"math/rand"
	"time"
)

// Shuffle returns the board reached from b by taking moves uniformly random
// legal slides. Because every step is a legal slide, the result stays in b's
// solvability class: shuffling the goal always yields a solvable board, for
// any moves ≥ 0. This is the only sanctioned way to produce start states;
// boards built by other means must be re-checked with Solvable.
//
// Returns ErrNegativeMoves if moves < 0. Use WithRand for reproducibility.
func Shuffle(b Board, moves int, opts ...Option) (Board, error) {
	if moves < 0 {
		return Board{}, ErrNegativeMoves
	}

	o := ShuffleOptions{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.Rand == nil {
		o.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	cur := b
	for i := 0; i < moves; i++ {
		nbs := cur.Neighbors()
		cur = nbs[o.Rand.Intn(len(nbs))]
	}

	return cur, nil
}
