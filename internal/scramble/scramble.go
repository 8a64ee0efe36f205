// Package scramble generates random face-turn sequences and applies them to
// a cube.
package scramble

import (
	"math/rand/v2"

	"github.com/SeamusWaldron/piececube/internal/cube"
	"github.com/SeamusWaldron/piececube/pkg/types"
)

// Scrambler draws random quarter turns. A Scrambler is not safe for
// concurrent use.
type Scrambler struct {
	rng          *rand.Rand
	avoidRepeats bool
}

// New creates a Scrambler. Without WithSeed or WithRand it is seeded from
// the runtime's random source.
func New(opts ...Option) *Scrambler {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Scrambler{rng: cfg.rng, avoidRepeats: cfg.avoidRepeats}
}

// Moves draws n quarter turns, each a uniform choice of face and direction.
func (s *Scrambler) Moves(n int) []types.Move {
	if n <= 0 {
		return nil
	}
	moves := make([]types.Move, 0, n)
	prev := -1
	for len(moves) < n {
		var i int
		if s.avoidRepeats && prev >= 0 {
			// uniform over the other five faces
			i = s.rng.IntN(len(types.Faces) - 1)
			if i >= prev {
				i++
			}
		} else {
			i = s.rng.IntN(len(types.Faces))
		}
		turn := types.TurnCW
		if s.rng.IntN(2) == 1 {
			turn = types.TurnCCW
		}
		moves = append(moves, types.Move{Face: types.Faces[i], Turn: turn})
		prev = i
	}
	return moves
}

// Scramble applies n random quarter turns to st and returns them in order.
func (s *Scrambler) Scramble(st *cube.State, n int) []types.Move {
	moves := s.Moves(n)
	st.ApplyMoves(moves)
	return moves
}

// Inverse returns the sequence that undoes moves.
func Inverse(moves []types.Move) []types.Move {
	inv := make([]types.Move, len(moves))
	for i, m := range moves {
		inv[len(moves)-1-i] = m.Inverse()
	}
	return inv
}
