package player

import (
	"dominoes/game"
	"dominoes/qlearning"
)

type learningPlayer struct {
	agent *qlearning.Agent
}

// NewLearning wraps a q-learning agent. The agent keeps learning while it plays.
func NewLearning(agent *qlearning.Agent) *learningPlayer {
	return &learningPlayer{agent: agent}
}

func (p *learningPlayer) FindMove(_ game.Rules, state *game.GameState) (game.Move, error) {
	move, ok := p.agent.Step(state)
	if !ok {
		return game.Move{}, ErrNoMove
	}
	return move, nil
}

// Observe hands the final state to the agent so the seat's last move is credited.
func (p *learningPlayer) Observe(state *game.GameState) {
	p.agent.Step(state)
}

func (p *learningPlayer) Agent() *qlearning.Agent {
	return p.agent
}
