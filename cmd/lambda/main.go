package main

import (
	"context"
	"os"
	"path/filepath"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/crossplay/bestword/bot"
	"github.com/crossplay/bestword/config"
	"github.com/crossplay/bestword/runner"
)

var solver *runner.Solver
var nc *nats.Conn

func HandleRequest(ctx context.Context, evt bot.LambdaEvent) (*bot.Reply, error) {
	return bot.HandleLambdaEvent(ctx, solver, nc, evt)
}

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
	log.Info().Interface("config", cfg.SanitizedSettings()).Msg("loaded-config")
	cfg.AdjustRelativePaths(exPath)
	if cfg.GetBool(config.ConfigDebug) {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	solver, err = runner.NewSolver(context.Background(), cfg, runner.SolverOptions{})
	if err != nil {
		log.Fatal().Err(err).Msg("could-not-load-solver")
	}
	// Replies over NATS are optional; without a server the function still
	// answers its caller.
	nc, err = nats.Connect(cfg.GetString(config.ConfigNatsURL))
	if err != nil {
		log.Warn().AnErr("natsConnectErr", err).Msg("no-nats-replies")
		nc = nil
	}

	lambda.Start(HandleRequest)
}
