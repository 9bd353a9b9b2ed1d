package mdp

import (
	"errors"
	"fmt"

	"dominoes/game"
	"dominoes/meta"
)

var ErrInvalidGamma = errors.New("gamma must lie in [0, 1)")

type Option func(m *MDP)

func WithStepPenalty(penalty float64) Option {
	return func(m *MDP) {
		m.stepPenalty = penalty
	}
}

// MDP exposes pooled game states as a Markov decision process for tabular learning.
type MDP struct {
	Gamma       float64
	stepPenalty float64
}

func New(gamma float64, options ...Option) (*MDP, error) {
	if gamma < 0 || gamma >= 1 {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidGamma, gamma)
	}
	m := &MDP{Gamma: gamma, stepPenalty: meta.STEP_PENALTY}
	for _, option := range options {
		option(m)
	}
	return m, nil
}

// R is the step penalty for a state in play and the exact outcome otherwise.
func (m *MDP) R(s *game.GameState) float64 {
	if s.Terminal() {
		return s.Outcome
	}
	return m.stepPenalty
}

// Actions lists the canonical legal moves, or NoAction for a terminal state.
func (m *MDP) Actions(s *game.GameState) []CanonicalMove {
	if s.Terminal() {
		return []CanonicalMove{NoAction}
	}
	actions := make([]CanonicalMove, len(s.Moves))
	for i, mv := range s.Moves {
		actions[i] = CanonicalizeMove(mv)
	}
	return actions
}

type Transition struct {
	P     float64
	State *game.GameState
}

// T returns the successor of a. The seat's own moves are certain; a move on
// another seat's turn is weighted as if each hidden tile were equally likely.
func (m *MDP) T(s *game.GameState, a game.Move) ([]Transition, error) {
	next, err := s.Apply(a)
	if err != nil {
		return nil, err
	}
	p := 1.0
	if s.ToMove != s.Perspective {
		p = 0
		if len(s.Others) > 0 {
			p = 1 / float64(len(s.Others))
		}
	}
	return []Transition{{P: p, State: next}}, nil
}
