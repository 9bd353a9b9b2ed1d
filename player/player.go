package player

import (
	"errors"

	"dominoes/game"

	"golang.org/x/exp/rand"
)

var ErrNoMove = errors.New("no move available")

// Player picks a move for the seat whose view it is handed. The move must be
// drawn from state.LegalMoves.
type Player interface {
	FindMove(rules game.Rules, state *game.GameState) (game.Move, error)
}

// Learner is told about the final state of every game it took part in.
type Learner interface {
	Observe(state *game.GameState)
}

type random struct {
	rng *rand.Rand
}

// NewRandom returns a player picking uniformly among the legal moves.
func NewRandom(seed uint64) Player {
	return &random{rng: rand.New(rand.NewSource(seed))}
}

func (p *random) FindMove(_ game.Rules, state *game.GameState) (game.Move, error) {
	if state.Terminal() || len(state.Moves) == 0 {
		return game.Move{}, ErrNoMove
	}
	return state.Moves[p.rng.Intn(len(state.Moves))], nil
}

type first struct{}

// NewFirst returns a player that always takes the first legal move.
func NewFirst() Player {
	return first{}
}

func (first) FindMove(_ game.Rules, state *game.GameState) (game.Move, error) {
	if state.Terminal() || len(state.Moves) == 0 {
		return game.Move{}, ErrNoMove
	}
	return state.Moves[0], nil
}
