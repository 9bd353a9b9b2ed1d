package engine

import "dominoes/experiments/metrics"

type Engine interface {
	// Run plays a game till there's a winner or the turn limit is reached
	Run() (winner int, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric, err error)
}
