package config

import (
	"os"
	"path/filepath"
	"testing"

	"dominoes/game"
	"dominoes/searcher"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, 7, cfg.Search.FullDepth)
	require.Equal(t, 9, cfg.Search.ShortDepth)
	require.Equal(t, 3, cfg.Search.EndgameThreshold)
	require.Equal(t, game.DefaultRoleWeights(), cfg.Search.Weights)

	rules, err := cfg.GameRules()
	require.NoError(t, err)
	require.Equal(t, 6, rules.MaxPip())
	require.Equal(t, 7, rules.HandSize())
	require.Equal(t, game.LowestSeat, rules.Tie)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
seed: 42
rules:
  tieBreak: shared
search:
  normalization: probability
  weights:
    self:
      advantage: 2.5
learning:
  gamma: 0.5
arena:
  seats: [random, first, qlearning, expectiminimax]
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, uint64(42), cfg.Seed)
	require.Equal(t, uint64(42), cfg.RandSeed())
	require.Equal(t, 0.5, cfg.Learning.Gamma)
	require.Equal(t, 2.5, cfg.Search.Weights.Self.Advantage)
	require.Equal(t, game.DefaultRoleWeights().Self.Doubles, cfg.Search.Weights.Self.Doubles, "Unset weights keep their default")

	rules, err := cfg.GameRules()
	require.NoError(t, err)
	require.Equal(t, game.Shared, rules.Tie)

	n, err := cfg.SearchNormalization()
	require.NoError(t, err)
	require.Equal(t, searcher.ByProbability, n)
}

func TestValidate(t *testing.T) {
	cases := map[string]func(c *Config){
		"gamma of one":               func(c *Config) { c.Learning.Gamma = 1 },
		"negative gamma":             func(c *Config) { c.Learning.Gamma = -0.2 },
		"hands too large":            func(c *Config) { c.Rules.HandSize = 8 },
		"unknown tie-break":          func(c *Config) { c.Rules.TieBreak = "coin" },
		"unknown policy":             func(c *Config) { c.Arena.Seats[1] = "oracle" },
		"three seats":                func(c *Config) { c.Arena.Seats = c.Arena.Seats[:3] },
		"bad normalization":          func(c *Config) { c.Search.Normalization = "mean" },
		"alpha-beta on the full set": func(c *Config) { c.Arena.Seats[0] = PolicyAlphaBeta },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := Default()
			mutate(&cfg)
			require.Error(t, cfg.Validate())
		})
	}

	cfg := Default()
	require.NoError(t, cfg.Validate())
	require.NotZero(t, cfg.RandSeed())

	t.Run("alpha-beta on a reduced set", func(t *testing.T) {
		cfg := Default()
		cfg.Rules.MaxPip, cfg.Rules.HandSize = 3, 2
		cfg.Arena.Seats = []string{PolicyAlphaBeta, PolicyRandom, PolicyAlphaBeta, PolicyFirst}
		require.NoError(t, cfg.Validate())
	})
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("DOMINOES_LEARNING_GAMMA", "0.5")
	t.Setenv("DOMINOES_SEARCH_FULLDEPTH", "3")
	t.Setenv("DOMINOES_ARENA_GAMES", "7")
	t.Setenv("DOMINOES_SEARCH_WEIGHTS_OPPONENT_PIP_SUM", "0.25")
	t.Setenv("DOMINOES_RULES_TIEBREAK", "shared")
	t.Setenv("DOMINOES_ARENA_SEATS", "random,first,qlearning,expectiminimax")

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, 0.5, cfg.Learning.Gamma)
	require.Equal(t, 3, cfg.Search.FullDepth)
	require.Equal(t, 9, cfg.Search.ShortDepth, "Unset keys keep their default")
	require.Equal(t, 7, cfg.Arena.Games)
	require.Equal(t, 0.25, cfg.Search.Weights.Opponent.PipSum)
	require.Equal(t, "shared", cfg.Rules.TieBreak)
	require.Equal(t, []string{PolicyRandom, PolicyFirst, PolicyLearning, PolicyExpectiminimax}, cfg.Arena.Seats)

	t.Run("environment wins over the file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("learning:\n  gamma: 0.3\n"), 0o644))
		cfg, err := Load(path)
		require.NoError(t, err)
		require.Equal(t, 0.5, cfg.Learning.Gamma)
	})
}
