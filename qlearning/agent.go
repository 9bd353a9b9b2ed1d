package qlearning

import (
	"dominoes/game"
	"dominoes/mdp"
	"dominoes/meta"
)

// Schedule maps a visit count to a learning rate.
type Schedule func(visits int) float64

// Decay is the schedule c / (c - 1 + n).
func Decay(c float64) Schedule {
	return func(n int) float64 {
		return c / (c - 1 + float64(n))
	}
}

type Option func(a *Agent)

// WithExploration sets the optimistic value rplus returned for pairs tried
// fewer than ne times.
func WithExploration(ne int, rplus float64) Option {
	return func(a *Agent) {
		if ne >= 0 {
			a.ne = ne
		}
		a.rplus = rplus
	}
}

func WithSchedule(alpha Schedule) Option {
	return func(a *Agent) {
		if alpha != nil {
			a.alpha = alpha
		}
	}
}

// trace is what a seat did on its previous turn.
type trace struct {
	state  mdp.CanonicalKey
	action mdp.CanonicalMove
	reward float64
	set    bool
}

// Agent is an exploring temporal-difference learner. One agent can drive all
// four seats: each seat keeps its own trace while the table is shared.
type Agent struct {
	mdp    *mdp.MDP
	table  *Table
	ne     int
	rplus  float64
	alpha  Schedule
	traces [game.NumSeats]trace
}

func NewAgent(m *mdp.MDP, table *Table, options ...Option) *Agent {
	a := &Agent{
		mdp:   m,
		table: table,
		ne:    meta.EXPLORE_NE,
		rplus: meta.EXPLORE_R,
		alpha: Decay(meta.ALPHA_C),
	}
	for _, option := range options {
		option(a)
	}
	return a
}

func (a *Agent) Table() *Table {
	return a.table
}

// Step takes the state the seat now observes, learns from the seat's previous
// move and picks the next one. It returns false for a terminal state.
func (a *Agent) Step(s *game.GameState) (game.Move, bool) {
	key := mdp.Canonicalize(s)
	reward := a.mdp.R(s)
	tr := &a.traces[s.Perspective]

	if s.Terminal() {
		a.table.Set(SA{State: key, Action: mdp.NoAction}, reward)
	}
	if tr.set {
		future := a.table.MaxValue(key, a.mdp.Actions(s))
		a.table.Update(SA{State: tr.state, Action: tr.action}, tr.reward+a.mdp.Gamma*future, a.alpha)
	}
	if s.Terminal() {
		*tr = trace{}
		return game.Move{}, false
	}

	move := a.explore(key, s.Moves)
	*tr = trace{state: key, action: mdp.CanonicalizeMove(move), reward: reward, set: true}
	return move, true
}

// Reset forgets every seat's trace, e.g. after an aborted game.
func (a *Agent) Reset() {
	a.traces = [game.NumSeats]trace{}
}

// explore returns the first move with the highest exploration value.
func (a *Agent) explore(key mdp.CanonicalKey, moves []game.Move) game.Move {
	best := moves[0]
	bestValue := 0.0
	for i, m := range moves {
		sa := SA{State: key, Action: mdp.CanonicalizeMove(m)}
		v := a.f(a.table.Value(sa), a.table.Visits(sa))
		if i == 0 || v > bestValue {
			best, bestValue = m, v
		}
	}
	return best
}

func (a *Agent) f(value float64, visits int) float64 {
	if visits < a.ne {
		return a.rplus
	}
	return value
}
