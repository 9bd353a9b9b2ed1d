package game

import (
	"github.com/samber/lo"
)

// Role is a seat's relation to the seat being optimised for.
type Role int

const (
	RoleSelf Role = iota
	RoleTeammate
	RoleOpponent
)

func RoleOf(perspective, seat int) Role {
	switch seat {
	case perspective:
		return RoleSelf
	case Teammate(perspective):
		return RoleTeammate
	}
	return RoleOpponent
}

// Features describe the hand of the seat that just moved. Hidden hands are
// approximated by the pool averaged over the hidden seats.
type Features struct {
	Doubles   float64 // double tiles weighted by pip value, a 0-0 counts as 1
	Tiles     float64 // tiles left in hand
	Advantage float64 // mean tile count of the other seats minus this hand's
	Mobility  float64 // legal moves of the seat to move
	PipSum    float64
	Diversity float64 // distinct pip values in hand, 0-7
}

type Weights struct {
	Doubles   float64 `mapstructure:"doubles" yaml:"doubles"`
	Tiles     float64 `mapstructure:"tiles" yaml:"tiles"`
	Advantage float64 `mapstructure:"advantage" yaml:"advantage"`
	Mobility  float64 `mapstructure:"mobility" yaml:"mobility"`
	PipSum    float64 `mapstructure:"pip_sum" yaml:"pip_sum"`
	Diversity float64 `mapstructure:"diversity" yaml:"diversity"`
}

type RoleWeights struct {
	Self     Weights `mapstructure:"self" yaml:"self"`
	Teammate Weights `mapstructure:"teammate" yaml:"teammate"`
	Opponent Weights `mapstructure:"opponent" yaml:"opponent"`
}

// DefaultRoleWeights reward shedding tiles for the evaluated seat and punish
// an opponent that is getting ahead.
func DefaultRoleWeights() RoleWeights {
	return RoleWeights{
		Self:     Weights{Doubles: -0.2, Tiles: -0.2, Advantage: 0.9, Mobility: 0.05, PipSum: -0.02, Diversity: 0.1},
		Teammate: Weights{Doubles: -0.1, Tiles: -0.1, Advantage: -2.5, Mobility: 0.05, PipSum: -0.01, Diversity: 0.05},
		Opponent: Weights{Doubles: -0.1, Tiles: -0.1, Advantage: -5, Mobility: -0.05, PipSum: 0.01, Diversity: -0.05},
	}
}

func (rw RoleWeights) For(role Role) Weights {
	switch role {
	case RoleSelf:
		return rw.Self
	case RoleTeammate:
		return rw.Teammate
	}
	return rw.Opponent
}

func (w Weights) Score(f Features) float64 {
	return w.Doubles*f.Doubles +
		w.Tiles*f.Tiles +
		w.Advantage*f.Advantage +
		w.Mobility*f.Mobility +
		w.PipSum*f.PipSum +
		w.Diversity*f.Diversity
}

type Evaluator struct {
	Weights RoleWeights
}

func NewEvaluator(weights RoleWeights) *Evaluator {
	return &Evaluator{Weights: weights}
}

// Evaluate scores gs for seat using the weights of the role held by the seat
// that made the last move.
func (e *Evaluator) Evaluate(gs *GameState, seat int) float64 {
	mover := (gs.ToMove + NumSeats - 1) % NumSeats
	role := RoleOf(seat, mover)
	return e.Weights.For(role).Score(ExtractFeatures(gs, role))
}

// EvaluateDefault evaluates with DefaultRoleWeights.
func EvaluateDefault(gs *GameState, seat int) float64 {
	return NewEvaluator(DefaultRoleWeights()).Evaluate(gs, seat)
}

func ExtractFeatures(gs *GameState, role Role) Features {
	hidden := float64(NumSeats - 1)
	own := float64(len(gs.Own))
	pooled := float64(len(gs.Others)) / hidden
	f := Features{Mobility: float64(len(gs.Moves))}

	if role == RoleSelf {
		f.Doubles = doubleWeight(gs.Own)
		f.Tiles = own
		f.Advantage = pooled - own
		f.PipSum = float64(PipSum(gs.Own))
		f.Diversity = float64(diversity(gs.Own))
		return f
	}
	f.Doubles = doubleWeight(gs.Others) / hidden
	f.Tiles = pooled
	f.Advantage = own - pooled
	f.PipSum = float64(PipSum(gs.Others)) / hidden
	f.Diversity = float64(diversity(gs.Others))
	return f
}

func doubleWeight(tiles []Tile) float64 {
	return lo.SumBy(tiles, func(t Tile) float64 {
		switch {
		case !t.IsDouble():
			return 0
		case t.Low == 0:
			return 1
		}
		return float64(t.Low)
	})
}

func diversity(tiles []Tile) int {
	pips := lo.FlatMap(tiles, func(t Tile, _ int) []int { return []int{t.Low, t.High} })
	return len(lo.Uniq(pips))
}
