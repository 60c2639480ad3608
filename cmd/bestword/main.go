// Command bestword prints the best move for one board and rack.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"

	"github.com/crossplay/bestword/board"
	"github.com/crossplay/bestword/cache"
	"github.com/crossplay/bestword/config"
	"github.com/crossplay/bestword/runner"
)

const (
	flagBoardFile = "board-file"
	flagRack      = "rack"
	flagJSON      = "json"
)

func flags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("bestword", pflag.ContinueOnError)
	fs.String(flagBoardFile, "", "board text file; an empty board when not given")
	fs.String(flagRack, "", "rack letters, ? for a blank")
	fs.Bool(flagJSON, false, "print the answer as JSON")
	return fs
}

func run(ctx context.Context, cfg *config.Config, w io.Writer) error {
	rack := cfg.GetString(flagRack)
	if rack == "" {
		return errors.New("--rack is required")
	}
	b := board.NewBoard()
	if path := cfg.GetString(flagBoardFile); path != "" {
		var err error
		if b, err = board.Load(path); err != nil {
			return err
		}
	}
	solver, err := runner.NewSolver(ctx, cfg, runner.SolverOptions{})
	if err != nil {
		return err
	}
	defer solver.Close()

	resp, err := solver.Solve(ctx, runner.SolveRequest{Board: b.ToText(), Rack: rack})
	if err != nil {
		return err
	}
	if cfg.GetBool(flagJSON) {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(resp)
	}
	bonus, err := cache.Load(cfg, "layout:"+cfg.BoardLayoutPath(), board.BonusMapLoadFunc)
	if err != nil {
		return err
	}
	if resp.Move.Found() {
		if _, err := b.PlaceMove(resp.Move); err != nil {
			return err
		}
	}
	fmt.Fprintln(w, b.ToDisplayText(bonus))
	fmt.Fprintln(w, resp.Description)
	return nil
}

func main() {
	ex, err := os.Executable()
	if err != nil {
		panic(err)
	}
	cfg := &config.Config{}
	if err := cfg.Load(os.Args[1:], flags()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	cfg.AdjustRelativePaths(filepath.Dir(ex))
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	if cfg.GetBool(config.ConfigDebug) {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	}
	if err := run(context.Background(), cfg, os.Stdout); err != nil {
		log.Error().Err(err).Msg("bestword")
		os.Exit(1)
	}
}
