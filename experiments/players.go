package experiments

import (
	"fmt"

	"dominoes/config"
	"dominoes/game"
	"dominoes/mdp"
	"dominoes/player"
	"dominoes/qlearning"
	"dominoes/searcher"
	"dominoes/searcher/agent"
)

// newMDP builds the decision process the learning seats share.
func newMDP(cfg *config.Config) (*mdp.MDP, error) {
	return mdp.New(cfg.Learning.Gamma, mdp.WithStepPenalty(cfg.Learning.StepPenalty))
}

func newLearningAgent(cfg *config.Config, m *mdp.MDP, table *qlearning.Table) *qlearning.Agent {
	return qlearning.NewAgent(m, table,
		qlearning.WithExploration(cfg.Learning.Ne, cfg.Learning.Rplus),
		qlearning.WithSchedule(qlearning.Decay(cfg.Learning.AlphaC)),
	)
}

func createExpectiminimax(cfg *config.Config) (*searcher.Expectiminimax, error) {
	normalization, err := cfg.SearchNormalization()
	if err != nil {
		return nil, err
	}
	evaluator := game.NewEvaluator(cfg.Search.Weights)
	return searcher.NewExpectiminimax(
		searcher.WithEvaluationFn(evaluator.Evaluate),
		searcher.WithDepths(cfg.Search.FullDepth, cfg.Search.ShortDepth),
		searcher.WithEndgameThreshold(cfg.Search.EndgameThreshold),
		searcher.WithNormalization(normalization),
		searcher.WithMetrics(),
	), nil
}

// newPlayer seats one policy. Learning seats get their own agent over the
// shared table so their traces never mix.
func newPlayer(policy string, cfg *config.Config, m *mdp.MDP, table *qlearning.Table, seed uint64) (player.Player, error) {
	switch policy {
	case config.PolicyRandom:
		return player.NewRandom(seed), nil
	case config.PolicyFirst:
		return player.NewFirst(), nil
	case config.PolicyAlphaBeta:
		return agent.NewAlphaBetaAgent(true), nil
	case config.PolicyExpectiminimax:
		search, err := createExpectiminimax(cfg)
		if err != nil {
			return nil, err
		}
		return agent.NewExpectiminimaxAgent(search, agent.NewAlphaBetaAgent(true)), nil
	case config.PolicyLearning:
		return player.NewLearning(newLearningAgent(cfg, m, table)), nil
	}
	return nil, fmt.Errorf("unknown policy %q", policy)
}
