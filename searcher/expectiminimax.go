package searcher

import (
	"dominoes/experiments/metrics"
	"dominoes/game"
	"dominoes/meta"

	"github.com/rs/zerolog/log"
)

type Option func(e *Expectiminimax)

// Expectiminimax is a depth-bounded search over a pooled state. Opponent turns
// are expanded through chance branches over the hidden tiles.
type Expectiminimax struct {
	evaluate      game.Evaluate
	fullDepth     int // depth while holding a full hand
	shortDepth    int // depth once a tile has left the hand
	endgame       int
	normalization Normalization
	metrics       metrics.Collector
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(e *Expectiminimax) {
		if evaluate != nil {
			e.evaluate = evaluate
		}
	}
}

func WithDepths(full, short int) Option {
	return func(e *Expectiminimax) {
		if full > 0 {
			e.fullDepth = full
		}
		if short > 0 {
			e.shortDepth = short
		}
	}
}

func WithEndgameThreshold(tiles int) Option {
	return func(e *Expectiminimax) {
		if tiles >= 0 {
			e.endgame = tiles
		}
	}
}

func WithNormalization(n Normalization) Option {
	return func(e *Expectiminimax) {
		e.normalization = n
	}
}

func WithMetrics() Option {
	return func(e *Expectiminimax) {
		e.metrics = metrics.NewCollector()
	}
}

func NewExpectiminimax(options ...Option) *Expectiminimax {
	e := &Expectiminimax{ // Default values
		evaluate:      game.EvaluateDefault,
		fullDepth:     meta.DEPTH_FULL_HAND,
		shortDepth:    meta.DEPTH_SHORT_HAND,
		endgame:       meta.ENDGAME_TILES,
		normalization: ByBranchCount,
		metrics:       metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// Depth is the search horizon for a seat holding hand tiles.
func (e *Expectiminimax) Depth(s *game.GameState) int {
	if len(s.Own) >= s.Rules.HandSize() {
		return e.fullDepth
	}
	return e.shortDepth
}

// Skip reports whether search should give no recommendation for s: the game
// is over, the seat has nothing to play, it is not the seat's turn, or so few
// hidden tiles remain that a cheaper exact policy should take over.
func (e *Expectiminimax) Skip(s *game.GameState) bool {
	return s.Terminal() ||
		len(s.Own) == 0 ||
		s.ToMove != s.Perspective ||
		len(s.Others) <= e.endgame
}

// FindMove returns the move with the highest expected value for the
// perspective seat, the first one on ties. ok is false when Skip holds.
func (e *Expectiminimax) FindMove(s *game.GameState) (move game.Move, ok bool) {
	if e.Skip(s) {
		return game.Move{}, false
	}

	depth := e.Depth(s)
	e.metrics.Start("expectiminimax", depth)
	n := node{
		perspective:   s.Perspective,
		limit:         depth,
		evaluate:      e.evaluate,
		normalization: e.normalization,
		metrics:       e.metrics,
	}

	best := negInf
	for i, m := range s.Moves {
		v := chanceValue(s, m, 1, n)
		if i == 0 || v > best {
			best, move = v, m
		}
	}
	log.Debug().Int("seat", s.Perspective).Int("depth", depth).Float64("value", best).Msgf("expectiminimax picked %s", move)
	return move, true
}

// Metrics returns the counters of the last search.
func (e *Expectiminimax) Metrics() metrics.SearchMetric {
	return e.metrics.Complete()
}
