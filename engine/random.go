package engine

import (
	"atarigo/game"

	"golang.org/x/exp/rand"
)

// Random plays a uniformly random legal move. It stands in for an
// external search algorithm when exercising the engine.
type Random struct {
	rng *rand.Rand
}

func NewRandom(seed uint64) *Random {
	return &Random{rng: rand.New(rand.NewSource(seed))}
}

func (r *Random) FindMove(s *game.GameState) game.Move {
	moves := s.LegalMoves()
	if len(moves) == 0 {
		panic("no legal moves to pick from")
	}
	return moves[r.rng.Intn(len(moves))]
}
