package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"

	"dominoes/config"
	"dominoes/experiments"
	"dominoes/qlearning"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	configFile := flag.String("config", "", "YAML config file, defaults apply when empty")
	mode := flag.String("mode", "both", "What to run: train, arena or both")
	flag.Parse()

	cfg, err := config.Load(*configFile)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	level, err := zerolog.ParseLevel(cfg.Log.Level)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	seed := cfg.RandSeed()
	log.Info().Uint64("seed", seed).Str("mode", *mode).Msg("starting")

	if err := run(ctx, cfg, *mode, seed); err != nil {
		log.Fatal().Err(err).Msg("run failed")
	}
	log.Info().Msg("bye")
}

func run(ctx context.Context, cfg *config.Config, mode string, seed uint64) error {
	table, err := loadTable(ctx, cfg.Learning.Store)
	if err != nil {
		return err
	}

	switch mode {
	case "train", "both":
		if _, err := experiments.Train(cfg, table, seed); err != nil {
			return err
		}
		if cfg.Learning.Store != "" {
			if err := qlearning.Save(ctx, cfg.Learning.Store, table); err != nil {
				return err
			}
			log.Info().Msgf("saved %d q-values to %s", table.Len(), cfg.Learning.Store)
		}
		if mode == "train" {
			return nil
		}
	case "arena":
	default:
		return errors.New("mode must be train, arena or both")
	}

	_, err = experiments.RunArena(ctx, cfg, table, seed)
	return err
}

// loadTable resumes from the store when one exists.
func loadTable(ctx context.Context, store string) (*qlearning.Table, error) {
	if store == "" {
		return qlearning.NewTable(), nil
	}
	if _, err := os.Stat(store); errors.Is(err, os.ErrNotExist) {
		return qlearning.NewTable(), nil
	}
	table, err := qlearning.Load(ctx, store)
	if err != nil {
		return nil, err
	}
	log.Info().Msgf("loaded %d q-values from %s", table.Len(), store)
	return table, nil
}
