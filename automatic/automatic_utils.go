package automatic

// Data collection for autoplay runs.

import (
	"context"
	"errors"
	"expvar"
	"fmt"
	"io"
	"os"
	"strings"
	"sync/atomic"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/crossplay/bestword/runner"
	"github.com/crossplay/bestword/stats"
)

var (
	GamesCounter *expvar.Int
	IsPlaying    *expvar.Int
)

func init() {
	GamesCounter = expvar.NewInt("autoplayGames")
	IsPlaying = expvar.NewInt("autoplayIsPlaying")
}

var ErrAlreadyPlaying = errors.New("autoplay is already running")

// playing guards PlayGames; IsPlaying only reports it.
var playing atomic.Bool

// Result sums up an autoplay run.
type Result struct {
	Games []*GameResult `yaml:"games"`
	// Scores and Turns are per game.
	Scores stats.Summary `yaml:"scores"`
	Turns  stats.Summary `yaml:"turns"`
	// TurnPoints is over every turn of every game.
	TurnPoints *stats.Statistic `yaml:"-"`
}

func (r *Result) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Games played: %d\n", len(r.Games))
	fmt.Fprintf(&sb, "Score: %v\n", r.Scores)
	fmt.Fprintf(&sb, "Turns: %v\n", r.Turns)
	if r.TurnPoints != nil && r.TurnPoints.Iterations() > 0 {
		fmt.Fprintf(&sb, "Points per turn: %.2f ± %.2f (stdev %.2f)\n", r.TurnPoints.Mean(),
			r.TurnPoints.ConfidenceInterval(95), r.TurnPoints.Stdev())
	}
	ended := map[string]int{}
	for _, g := range r.Games {
		ended[g.End]++
	}
	fmt.Fprintf(&sb, "Ended with no move: %d, out of tiles: %d\n", ended[EndNoMove], ended[EndOutOfTiles])
	return sb.String()
}

// PlayGames plays numGames solitaire games on up to threads goroutines and
// writes every turn to logPath as a stream of YAML documents. Game i uses
// seeds[i] when seeds is given.
func PlayGames(ctx context.Context, solver *runner.Solver, numGames, threads int,
	logPath string, seeds [][32]byte) (*Result, error) {

	if numGames < 1 {
		return nil, errors.New("need to play at least one game")
	}
	if seeds != nil && len(seeds) < numGames {
		return nil, fmt.Errorf("have %d seeds for %d games", len(seeds), numGames)
	}
	if threads < 1 {
		threads = solver.Options().Threads
	}
	threads = max(1, min(threads, numGames))
	if !playing.CompareAndSwap(false, true) {
		return nil, ErrAlreadyPlaying
	}
	defer playing.Store(false)
	IsPlaying.Set(1)
	defer IsPlaying.Set(0)

	var w io.Writer = io.Discard
	if logPath != "" {
		f, err := os.Create(logPath)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		w = f
	}
	logChan := make(chan *TurnLog, 100)
	logDone := make(chan error, 1)
	go func() {
		logDone <- writeTurnLogs(w, logChan)
	}()

	jobs := make(chan int, numGames)
	for i := 0; i < numGames; i++ {
		jobs <- i
	}
	close(jobs)

	games := make([]*GameResult, numGames)
	perThread := make([]*stats.Statistic, threads)
	g, gctx := errgroup.WithContext(ctx)
	for t := 0; t < threads; t++ {
		g.Go(func() error {
			r, err := NewGameRunner(logChan, solver)
			if err != nil {
				return err
			}
			perThread[t] = r.turnPoints
			for j := range jobs {
				var seed *[32]byte
				if seeds != nil {
					seed = &seeds[j]
				}
				r.StartGame(seed)
				res, err := r.PlayGame(gctx)
				if err != nil {
					return err
				}
				games[j] = res
				GamesCounter.Add(1)
			}
			return nil
		})
	}
	err := g.Wait()
	close(logChan)
	if lerr := <-logDone; err == nil {
		err = lerr
	}
	if err != nil {
		return nil, err
	}

	res := &Result{Games: games, TurnPoints: &stats.Statistic{}}
	scores := make([]float64, numGames)
	turns := make([]float64, numGames)
	for i, gr := range games {
		scores[i] = float64(gr.Score)
		turns[i] = float64(gr.Turns)
	}
	for _, st := range perThread {
		if st != nil {
			res.TurnPoints.Merge(st)
		}
	}
	res.Scores = stats.Summarize(scores)
	res.Turns = stats.Summarize(turns)
	log.Info().Int("games", numGames).Float64("mean-score", res.Scores.Mean).
		Str("log", logPath).Msg("autoplay-done")
	return res, nil
}

// writeTurnLogs drains ch even after a write fails, so players never block.
func writeTurnLogs(w io.Writer, ch <-chan *TurnLog) error {
	enc := yaml.NewEncoder(w)
	var err error
	for tl := range ch {
		if err == nil {
			err = enc.Encode(tl)
		}
	}
	if cerr := enc.Close(); err == nil {
		err = cerr
	}
	return err
}
