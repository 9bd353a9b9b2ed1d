package agent

import (
	"dominoes/experiments/metrics"
	"dominoes/game"
)

// Agent is a search-backed player that also reports how its last search went.
type Agent interface {
	FindMove(rules game.Rules, state *game.GameState) (game.Move, error)
	Metrics() metrics.SearchMetric
}
