package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/crossplay/bestword/bot"
	"github.com/crossplay/bestword/config"
	"github.com/crossplay/bestword/runner"
)

const connectAttempts = 10

func main() {
	ex, err := os.Executable()
	if err != nil {
		panic(err)
	}
	exPath := filepath.Dir(ex)

	cfg := &config.Config{}
	if err := cfg.Load(os.Args[1:]); err != nil {
		log.Fatal().Err(err).Msg("bad-arguments")
	}
	cfg.AdjustRelativePaths(exPath)
	if cfg.GetBool(config.ConfigDebug) {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	log.Info().Interface("config", cfg.SanitizedSettings()).Str("exPath", exPath).Msg("loaded-config")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	solver, err := runner.NewSolver(ctx, cfg, runner.SolverOptions{})
	if err != nil {
		log.Fatal().Err(err).Msg("could-not-load-solver")
	}
	defer solver.Close()

	nc, err := bot.Connect(ctx, cfg.GetString(config.ConfigNatsURL), connectAttempts)
	if err != nil {
		log.Fatal().Err(err).Msg("could-not-connect")
	}
	defer nc.Close()

	b := bot.NewBot(solver, cfg.GetString(config.ConfigNatsSubject))
	if err := b.Serve(ctx, nc); err != nil {
		log.Err(err).Msg("serve")
	}
	log.Info().Msg("server gracefully shutting down")
}
