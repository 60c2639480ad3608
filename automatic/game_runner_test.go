package automatic

import (
	"context"
	"testing"

	"github.com/matryer/is"

	"github.com/crossplay/bestword/runner"
	"github.com/crossplay/bestword/testhelpers"
)

func newSolver(t *testing.T) *runner.Solver {
	t.Helper()
	s, err := runner.NewSolver(context.Background(), testhelpers.Config(), runner.SolverOptions{Threads: 2})
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func seed(b byte) *[32]byte {
	var s [32]byte
	for i := range s {
		s[i] = b + byte(i)
	}
	return &s
}

func TestStartGame(t *testing.T) {
	is := is.New(t)
	r, err := NewGameRunner(nil, newSolver(t))
	is.NoErr(err)
	r.StartGame(seed(1))
	is.Equal(r.Rack().NumTiles(), RackSize)
	is.Equal(r.Bag().TilesRemaining(), 100-RackSize)
	is.True(r.Board().IsEmpty())
	is.Equal(len(r.GameID()), 8)
}

func TestPlayGameKeepsTilesConserved(t *testing.T) {
	is := is.New(t)
	logchan := make(chan *TurnLog, 200)
	r, err := NewGameRunner(logchan, newSolver(t))
	is.NoErr(err)
	r.StartGame(seed(7))
	res, err := r.PlayGame(context.Background())
	is.NoErr(err)
	close(logchan)

	is.Equal(r.Board().TilesPlayed()+r.Rack().NumTiles()+r.Bag().TilesRemaining(), 100)
	is.Equal(res.TilesLeft, r.Rack().NumTiles()+r.Bag().TilesRemaining())

	total := 0
	turns := 0
	for tl := range logchan {
		turns++
		total += tl.Points
		is.Equal(tl.Turn, turns)
		is.Equal(tl.Total, total)
		is.Equal(tl.GameID, res.GameID)
	}
	is.Equal(turns, res.Turns)
	is.Equal(total, res.Score)
	if res.Turns > 0 {
		is.True(!r.Board().IsEmpty())
	}
}

func TestSeededGamesRepeat(t *testing.T) {
	is := is.New(t)
	s := newSolver(t)
	play := func() *GameResult {
		r, err := NewGameRunner(nil, s)
		is.NoErr(err)
		r.StartGame(seed(42))
		res, err := r.PlayGame(context.Background())
		is.NoErr(err)
		return res
	}
	first, second := play(), play()
	is.Equal(first, second)
}

func TestPlayGameCanceled(t *testing.T) {
	is := is.New(t)
	r, err := NewGameRunner(nil, newSolver(t))
	is.NoErr(err)
	r.StartGame(nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = r.PlayGame(ctx)
	is.Equal(err, context.Canceled)
}
