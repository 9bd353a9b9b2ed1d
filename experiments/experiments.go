package experiments

import (
	"context"
	"fmt"

	"dominoes/config"
	"dominoes/engine"
	"dominoes/experiments/metrics"
	"dominoes/game"
	"dominoes/player"
	"dominoes/qlearning"
	"dominoes/utils"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
	"golang.org/x/sync/errgroup"
)

// arenaSetup is what setup.yaml records for an arena run.
type arenaSetup struct {
	Seed      uint64        `yaml:"seed"`
	TableSize int           `yaml:"tableSize"`
	Config    config.Config `yaml:"config"`
}

type gameResult struct {
	record metrics.GameRecord
	moves  []metrics.MoveMetric
}

// RunArena plays cfg.Arena.Games games between the configured seat policies,
// Goroutines at a time. Learning seats share table. Records are written under
// cfg.Arena.OutDir unless it is empty.
func RunArena(ctx context.Context, cfg *config.Config, table *qlearning.Table, seed uint64) (Summary, error) {
	rules, err := cfg.GameRules()
	if err != nil {
		return Summary{}, err
	}
	m, err := newMDP(cfg)
	if err != nil {
		return Summary{}, err
	}
	if table == nil {
		table = qlearning.NewTable()
	}

	games := cfg.Arena.Games
	log.Info().Msgf("starting arena of %d games with seats %v...", games, cfg.Arena.Seats)

	results := make([]gameResult, games)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(cfg.Arena.Goroutines, 1))
	for i := 0; i < games; i++ {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			gameSeed := seed + uint64(i)
			var players [game.NumSeats]player.Player
			for seat, policy := range cfg.Arena.Seats {
				p, err := newPlayer(policy, cfg, m, table, gameSeed*game.NumSeats+uint64(seat))
				if err != nil {
					return err
				}
				players[seat] = p
			}

			e, err := engine.LocalEngine(rules, players, rand.New(rand.NewSource(gameSeed)))
			if err != nil {
				return err
			}
			winner, gameMetric, moveMetrics, err := e.Run()
			if err != nil {
				return fmt.Errorf("game %d: %w", i+1, err)
			}
			results[i] = gameResult{
				record: metrics.GameRecord{ID: i + 1, Seats: cfg.Arena.Seats, GameMetric: gameMetric},
				moves:  moveMetrics,
			}
			log.Debug().Msgf("completed game %d of %d with winner: seat %d", i+1, games, winner)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Summary{}, err
	}

	gameRecords := make([]metrics.GameRecord, 0, games)
	moveRecords := []metrics.MoveRecord{}
	for _, r := range results {
		gameRecords = append(gameRecords, r.record)
		for _, mm := range r.moves {
			moveRecords = append(moveRecords, metrics.MoveRecord{Game: r.record.ID, MoveMetric: mm})
		}
	}
	summary := Summarize(gameRecords)
	log.Info().Msgf("completed arena: %s", summary)

	if cfg.Arena.OutDir == "" {
		return summary, nil
	}
	setup := arenaSetup{Seed: seed, TableSize: table.Len(), Config: *cfg}
	if err := writeRecords(cfg.Arena.OutDir, "arena", setup, gameRecords, moveRecords); err != nil {
		return summary, err
	}
	return summary, nil
}

// wins counts every seat in a game's winners, so a shared block win counts once
// per winning seat.
func wins(records []metrics.GameRecord) [game.NumSeats]int {
	var counts [game.NumSeats]int
	for _, r := range records {
		for seat := range counts {
			if utils.FindIndex(r.Winners, seat) >= 0 {
				counts[seat]++
			}
		}
	}
	return counts
}

func writeRecords(root, name string, setup any, gameRecords []metrics.GameRecord, moveRecords []metrics.MoveRecord) error {
	writer, err := metrics.NewWriter(root, name)
	if err != nil {
		return fmt.Errorf("failed to create experiment writer: %w", err)
	}

	err = writer.WriteSetup(setup)
	if err != nil {
		return fmt.Errorf("failed to store setup: %w", err)
	}
	log.Info().Msg("stored setup")

	err = writer.WriteGameRecords(gameRecords)
	if err != nil {
		return fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	err = writer.WriteMoveRecords(moveRecords)
	if err != nil {
		return fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msgf("stored move records in %s", writer.Dir())
	return nil
}
