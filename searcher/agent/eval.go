package agent

import (
	"fmt"

	"dominoes/experiments/metrics"
	"dominoes/game"
	"dominoes/searcher"

	"github.com/rs/zerolog/log"
)

// Fallback is the policy asked when search has no recommendation.
type Fallback interface {
	FindMove(rules game.Rules, state *game.GameState) (game.Move, error)
}

type expectiminimaxAgent struct {
	search   *searcher.Expectiminimax
	fallback Fallback
	last     metrics.SearchMetric
}

// NewExpectiminimaxAgent plays by expectiminimax and defers to fallback in the
// end-game. A nil fallback means exact alpha-beta over the pooled view.
func NewExpectiminimaxAgent(search *searcher.Expectiminimax, fallback Fallback) Agent {
	if fallback == nil {
		fallback = NewAlphaBetaAgent(false)
	}
	return &expectiminimaxAgent{search: search, fallback: fallback}
}

func (a *expectiminimaxAgent) FindMove(rules game.Rules, state *game.GameState) (game.Move, error) {
	move, ok := a.search.FindMove(state)
	if ok {
		a.last = a.search.Metrics()
		return move, nil
	}

	log.Debug().Int("seat", state.Perspective).Int("pool", len(state.Others)).Msg("expectiminimax deferred to fallback")
	move, err := a.fallback.FindMove(rules, state)
	if err != nil {
		return game.Move{}, fmt.Errorf("fallback failed: %w", err)
	}
	a.last = metrics.SearchMetric{Algorithm: "expectiminimax", Fallback: true}
	if m, ok := a.fallback.(Agent); ok {
		a.last = m.Metrics()
		a.last.Fallback = true
	}
	return move, nil
}

func (a *expectiminimaxAgent) Metrics() metrics.SearchMetric {
	return a.last
}

type alphaBetaAgent struct {
	collector metrics.Collector
}

// NewAlphaBetaAgent searches the pooled view to the end of the game.
func NewAlphaBetaAgent(withMetrics bool) Agent {
	collector := metrics.NewDummyCollector()
	if withMetrics {
		collector = metrics.NewCollector()
	}
	return &alphaBetaAgent{collector: collector}
}

func (a *alphaBetaAgent) FindMove(_ game.Rules, state *game.GameState) (game.Move, error) {
	if state.Terminal() {
		return game.Move{}, game.ErrGameOver
	}
	a.collector.Start("alphabeta", 0)
	move, value := searcher.AlphaBeta(state, a.collector)
	log.Debug().Int("seat", state.Perspective).Float64("value", value).Msgf("alpha-beta picked %s", move)
	return move, nil
}

func (a *alphaBetaAgent) Metrics() metrics.SearchMetric {
	return a.collector.Complete()
}
