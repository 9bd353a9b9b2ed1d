package config

import (
	"fmt"
	"math"
	"reflect"
	"strings"

	"dominoes/game"
	"dominoes/meta"
	"dominoes/searcher"

	"github.com/spf13/viper"
	"lukechampine.com/frand"
)

type Config struct {
	Seed     uint64       `mapstructure:"seed" yaml:"seed"`
	Log      LogConf      `mapstructure:"log" yaml:"log"`
	Rules    RulesConf    `mapstructure:"rules" yaml:"rules"`
	Search   SearchConf   `mapstructure:"search" yaml:"search"`
	Learning LearningConf `mapstructure:"learning" yaml:"learning"`
	Arena    ArenaConf    `mapstructure:"arena" yaml:"arena"`
}

type LogConf struct {
	Level string `mapstructure:"level" yaml:"level"`
}

type RulesConf struct {
	MaxPip   int     `mapstructure:"maxPip" yaml:"maxPip"`
	HandSize int     `mapstructure:"handSize" yaml:"handSize"`
	TieBreak string  `mapstructure:"tieBreak" yaml:"tieBreak"`
	Win      float64 `mapstructure:"win" yaml:"win"`
	Loss     float64 `mapstructure:"loss" yaml:"loss"`
}

type SearchConf struct {
	FullDepth        int              `mapstructure:"fullDepth" yaml:"fullDepth"`
	ShortDepth       int              `mapstructure:"shortDepth" yaml:"shortDepth"`
	EndgameThreshold int              `mapstructure:"endgameThreshold" yaml:"endgameThreshold"`
	Normalization    string           `mapstructure:"normalization" yaml:"normalization"`
	Weights          game.RoleWeights `mapstructure:"weights" yaml:"weights"`
}

type LearningConf struct {
	Gamma       float64 `mapstructure:"gamma" yaml:"gamma"`
	StepPenalty float64 `mapstructure:"stepPenalty" yaml:"stepPenalty"`
	Ne          int     `mapstructure:"ne" yaml:"ne"`
	Rplus       float64 `mapstructure:"rplus" yaml:"rplus"`
	AlphaC      float64 `mapstructure:"alphaC" yaml:"alphaC"`
	Episodes    int     `mapstructure:"episodes" yaml:"episodes"`
	Store       string  `mapstructure:"store" yaml:"store"` // sqlite file, empty to keep the table in memory
}

type ArenaConf struct {
	Games      int      `mapstructure:"games" yaml:"games"`
	Goroutines int      `mapstructure:"goroutines" yaml:"goroutines"`
	Seats      []string `mapstructure:"seats" yaml:"seats"`
	OutDir     string   `mapstructure:"outDir" yaml:"outDir"`
}

// Default mirrors the constants in meta.
func Default() Config {
	return Config{
		Log:   LogConf{Level: "info"},
		Rules: RulesConf{MaxPip: meta.MAX_PIP, HandSize: meta.HAND_SIZE, TieBreak: game.LowestSeat.String(), Win: meta.WIN, Loss: meta.LOSS},
		Search: SearchConf{
			FullDepth:        meta.DEPTH_FULL_HAND,
			ShortDepth:       meta.DEPTH_SHORT_HAND,
			EndgameThreshold: meta.ENDGAME_TILES,
			Normalization:    searcher.ByBranchCount.String(),
			Weights:          game.DefaultRoleWeights(),
		},
		Learning: LearningConf{
			Gamma:       meta.GAMMA,
			StepPenalty: meta.STEP_PENALTY,
			Ne:          meta.EXPLORE_NE,
			Rplus:       meta.EXPLORE_R,
			AlphaC:      meta.ALPHA_C,
			Episodes:    meta.EPISODES,
		},
		Arena: ArenaConf{
			Games:      meta.ARENA_GAMES,
			Goroutines: meta.GO_ROUTINES,
			Seats:      []string{PolicyLearning, PolicyExpectiminimax, PolicyRandom, PolicyRandom},
			OutDir:     "experiments",
		},
	}
}

// setDefaults registers every leaf of value under its mapstructure path, so
// each setting can be overridden from the environment.
func setDefaults(v *viper.Viper, prefix string, value reflect.Value) {
	typ := value.Type()
	for i := 0; i < typ.NumField(); i++ {
		key := typ.Field(i).Tag.Get("mapstructure")
		if key == "" {
			continue
		}
		if prefix != "" {
			key = prefix + "." + key
		}
		field := value.Field(i)
		if field.Kind() == reflect.Struct {
			setDefaults(v, key, field)
			continue
		}
		v.SetDefault(key, field.Interface())
	}
}

// Load reads configFile on top of the defaults. An empty path keeps the
// defaults. Environment variables prefixed DOMINOES_ override both.
func Load(configFile string) (*Config, error) {
	cfg := Default()
	v := viper.New()
	v.SetEnvPrefix("dominoes")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	setDefaults(v, "", reflect.ValueOf(cfg))

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Learning.Gamma < 0 || c.Learning.Gamma >= 1 {
		return fmt.Errorf("learning.gamma must lie in [0, 1), got %v", c.Learning.Gamma)
	}
	if c.Learning.AlphaC <= 1 {
		return fmt.Errorf("learning.alphaC must exceed 1, got %v", c.Learning.AlphaC)
	}
	if _, err := c.GameRules(); err != nil {
		return err
	}
	if _, err := c.SearchNormalization(); err != nil {
		return err
	}
	if len(c.Arena.Seats) != game.NumSeats {
		return fmt.Errorf("arena.seats needs %d policies, got %d", game.NumSeats, len(c.Arena.Seats))
	}
	for _, seat := range c.Arena.Seats {
		if !KnownPolicy(seat) {
			return fmt.Errorf("arena.seats: unknown policy %q", seat)
		}
		// Alpha-beta searches to the end of the game with no depth bound.
		if seat == PolicyAlphaBeta && c.Rules.MaxPip >= meta.MAX_PIP {
			return fmt.Errorf("arena.seats: %s needs a reduced tile set (rules.maxPip < %d), got %d", seat, meta.MAX_PIP, c.Rules.MaxPip)
		}
	}
	return nil
}

// GameRules builds validated rules from the rules section.
func (c *Config) GameRules() (*game.StandardRules, error) {
	tb, err := game.ParseTieBreak(c.Rules.TieBreak)
	if err != nil {
		return nil, err
	}
	rules := game.NewStandardRules(
		game.WithMaxPip(c.Rules.MaxPip),
		game.WithHandSize(c.Rules.HandSize),
		game.WithTieBreak(tb),
		game.WithScores(c.Rules.Win, c.Rules.Loss),
	)
	if err := rules.Validate(); err != nil {
		return nil, err
	}
	return rules, nil
}

func (c *Config) SearchNormalization() (searcher.Normalization, error) {
	switch c.Search.Normalization {
	case "", searcher.ByBranchCount.String():
		return searcher.ByBranchCount, nil
	case searcher.ByProbability.String():
		return searcher.ByProbability, nil
	}
	return 0, fmt.Errorf("search.normalization: unknown mode %q", c.Search.Normalization)
}

// RandSeed returns the configured seed, or a fresh one when it is 0.
func (c *Config) RandSeed() uint64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return frand.Uint64n(math.MaxUint64) + 1
}

// Seat policy names
const (
	PolicyRandom         = "random"
	PolicyFirst          = "first"
	PolicyAlphaBeta      = "alphabeta"
	PolicyExpectiminimax = "expectiminimax"
	PolicyLearning       = "qlearning"
)

func KnownPolicy(name string) bool {
	switch name {
	case PolicyRandom, PolicyFirst, PolicyAlphaBeta, PolicyExpectiminimax, PolicyLearning:
		return true
	}
	return false
}
