package experiments

import (
	"time"

	"dominoes/config"
	"dominoes/engine"
	"dominoes/game"
	"dominoes/player"
	"dominoes/qlearning"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

type TrainingReport struct {
	Episodes  int
	Wins      [game.NumSeats]int
	TableSize int
	Duration  time.Duration
}

// Train runs cfg.Learning.Episodes games of self-play in which one agent
// drives all four seats and writes into table.
func Train(cfg *config.Config, table *qlearning.Table, seed uint64) (TrainingReport, error) {
	rules, err := cfg.GameRules()
	if err != nil {
		return TrainingReport{}, err
	}
	m, err := newMDP(cfg)
	if err != nil {
		return TrainingReport{}, err
	}

	learner := player.NewLearning(newLearningAgent(cfg, m, table))
	players := [game.NumSeats]player.Player{learner, learner, learner, learner}
	rng := rand.New(rand.NewSource(seed))

	episodes := cfg.Learning.Episodes
	progressEvery := max(episodes/10, 1)
	report := TrainingReport{Episodes: episodes}
	start := time.Now()

	log.Info().Msgf("starting self-play training for %d episodes...", episodes)
	for i := 0; i < episodes; i++ {
		e, err := engine.LocalEngine(rules, players, rng)
		if err != nil {
			return report, err
		}
		_, gameMetric, _, err := e.Run()
		// Traces of a game stopped at the turn limit must not leak into the next.
		learner.Agent().Reset()
		if err != nil {
			return report, err
		}
		for _, seat := range gameMetric.Winners {
			report.Wins[seat]++
		}

		if (i+1)%progressEvery == 0 {
			log.Info().Msgf("training %d%% (%d of %d episodes), %d q-values", (i+1)*100/episodes, i+1, episodes, table.Len())
		}
	}

	report.TableSize = table.Len()
	report.Duration = time.Since(start)
	log.Info().Msgf("completed training in %s with %d q-values", report.Duration, report.TableSize)
	return report, nil
}
