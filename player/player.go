package player

import (
	"golang.org/x/exp/rand"

	"uckers/game"
)

// Agent picks one of the legal moves for the current roll. moves is never
// empty.
type Agent interface {
	Choose(state *game.GameState, moves []*game.Move) *game.Move
}

type first struct{}

// First always plays the lowest numbered token that can move.
func First() Agent {
	return first{}
}

func (first) Choose(state *game.GameState, moves []*game.Move) *game.Move {
	return moves[0]
}

type random struct {
	rng *rand.Rand
}

// NewRandom picks uniformly among the legal moves. Equal seeds give equal
// games.
func NewRandom(seed uint64) Agent {
	return &random{rng: rand.New(rand.NewSource(seed))}
}

func (r *random) Choose(state *game.GameState, moves []*game.Move) *game.Move {
	return moves[r.rng.Intn(len(moves))]
}
