package engine

import (
	"fmt"
	"time"

	"dominoes/experiments/metrics"
	"dominoes/game"
	"dominoes/gamemaster"
	"dominoes/meta"
	"dominoes/player"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// reporter is implemented by players that measure their own searches.
type reporter interface {
	Metrics() metrics.SearchMetric
}

type LocalGame struct {
	Rules   game.Rules
	Master  *gamemaster.LocalEngine
	Players [game.NumSeats]player.Player
}

// LocalEngine deals a new game with rng and seats the players in order.
func LocalEngine(rules game.Rules, players [game.NumSeats]player.Player, rng *rand.Rand) (*LocalGame, error) {
	for seat, p := range players {
		if p == nil {
			return nil, fmt.Errorf("seat %d has no player", seat)
		}
	}
	master := gamemaster.NewLocalEngine(rules)
	if err := master.Init(rng); err != nil {
		return nil, err
	}
	return &LocalGame{Rules: rules, Master: master, Players: players}, nil
}

// Run executes the entire game loop until a winner is found. An error from a
// player or an illegal move aborts the game.
func (e *LocalGame) Run() (int, metrics.GameMetric, []metrics.MoveMetric, error) {
	gameMetric := metrics.GameMetric{
		StartingPlayer: e.Master.ToMove(),
		StartTime:      time.Now(),
	}
	log.Debug().Msgf("seat %d is starting", gameMetric.StartingPlayer)

	var moveMetrics []metrics.MoveMetric
	turnCount := 1
	for !e.Master.Over() && turnCount <= meta.MAX_TURNS {
		seat := e.Master.ToMove()
		view := e.Master.View(seat)

		move, err := e.Players[seat].FindMove(e.Rules, view)
		if err != nil {
			return game.NoSeat, gameMetric, moveMetrics, fmt.Errorf("seat %d failed to move: %w", seat, err)
		}
		if err := e.Master.Play(move); err != nil {
			return game.NoSeat, gameMetric, moveMetrics, fmt.Errorf("seat %d: %w", seat, err)
		}

		mm := metrics.MoveMetric{Step: turnCount, Player: seat, Pass: move.IsPass()}
		if update, ok := e.Master.Last(); ok {
			mm.Position = uint64(update.Hash)
		}
		if r, ok := e.Players[seat].(reporter); ok {
			mm.SearchMetric = r.Metrics()
		}
		moveMetrics = append(moveMetrics, mm)
		if move.IsPass() {
			gameMetric.Passes++
		}
		turnCount++
	}

	// Every learner gets its seat's final view, winners and losers alike.
	for seat, p := range e.Players {
		if l, ok := p.(player.Learner); ok {
			l.Observe(e.Master.View(seat))
		}
	}

	table := e.Master.Table()
	gameMetric.Winner = table.Winner()
	gameMetric.Winners = table.Winners
	gameMetric.PipSums = table.PipSums()
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = turnCount - 1

	if table.Terminal() {
		log.Debug().Msgf("game ended with winner: seat %d", gameMetric.Winner)
	} else {
		log.Warn().Msgf("stopped after %d turns (no winner yet)", meta.MAX_TURNS)
	}
	return gameMetric.Winner, gameMetric, moveMetrics, nil
}
