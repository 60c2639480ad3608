package runner

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matryer/is"
	"github.com/stretchr/testify/assert"

	"github.com/crossplay/bestword/config"
	"github.com/crossplay/bestword/lexicon"
	"github.com/crossplay/bestword/move"
	"github.com/crossplay/bestword/movegen"
	"github.com/crossplay/bestword/testhelpers"
)

func alphaCenterRows() []string {
	rows := make([]string, 15)
	for i := range rows {
		rows[i] = strings.Repeat("-", 15)
	}
	rows[7] = "-----ALPHA-----"
	return rows
}

func TestSolveOpening(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()
	s, err := NewSolver(ctx, testhelpers.Config(), SolverOptions{})
	is.NoErr(err)
	defer s.Close()

	resp, err := s.Solve(ctx, SolveRequest{Rack: "quenest"})
	is.NoErr(err)
	is.Equal(resp.Move.Word, "QUEENS")
	is.Equal(resp.Move.Points, 30)
	is.Equal(resp.Description, "QUEENS at (4, 7) going right for 30 points")
	is.True(!resp.Cached)
}

func TestSolveErrors(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()
	s, err := NewSolver(ctx, testhelpers.Config(), SolverOptions{})
	is.NoErr(err)

	_, err = s.Solve(ctx, SolveRequest{Board: []string{"--#"}, Rack: "AB"})
	is.True(err != nil)
	_, err = s.Solve(ctx, SolveRequest{Rack: "A1"})
	is.True(err != nil)
	_, err = s.Solve(ctx, SolveRequest{Rack: "AB", Method: "genetic"})
	is.True(errors.Is(err, movegen.ErrUnknownSearchMethod))

	_, err = NewSolver(ctx, testhelpers.Config(), SolverOptions{Method: "genetic"})
	is.True(errors.Is(err, movegen.ErrUnknownSearchMethod))
}

func TestMissingDictionary(t *testing.T) {
	is := is.New(t)
	cfg := testhelpers.Config()
	cfg.Set("dictionary", "no-such-words.txt")
	_, err := NewSolver(context.Background(), cfg, SolverOptions{})
	is.True(errors.Is(err, lexicon.ErrDictionaryUnavailable))
}

func TestMissingKWGLexicon(t *testing.T) {
	is := is.New(t)
	cfg := testhelpers.Config()
	cfg.Set(config.ConfigLexicon, "NOSUCHLEX")
	_, err := NewSolver(context.Background(), cfg, SolverOptions{})
	is.True(err != nil)
}

func TestSolveIsMemoized(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()
	cfg := testhelpers.Config()
	cfg.Set("results-db", filepath.Join(t.TempDir(), "results.db"))
	s, err := NewSolver(ctx, cfg, SolverOptions{})
	is.NoErr(err)
	defer s.Close()

	req := SolveRequest{Board: alphaCenterRows(), Rack: "SPKMETA"}
	first, err := s.Solve(ctx, req)
	is.NoErr(err)
	is.True(!first.Cached)
	is.True(first.Move.Found())

	second, err := s.Solve(ctx, req)
	is.NoErr(err)
	is.True(second.Cached)
	is.Equal(second.Move.Word, first.Move.Word)
	is.Equal(second.Move.Points, first.Move.Points)
	is.Equal(second.Move.AnchorX, first.Move.AnchorX)
	is.Equal(second.Move.Direction, first.Move.Direction)

	// A different method is a different search.
	third, err := s.Solve(ctx, SolveRequest{Board: req.Board, Rack: req.Rack, Method: movegen.MethodExhaustive})
	is.NoErr(err)
	is.True(!third.Cached)
}

func TestSolveBatch(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()
	s, err := NewSolver(ctx, testhelpers.Config(), SolverOptions{Threads: 3})
	is.NoErr(err)

	reqs := []SolveRequest{
		{Rack: "QUENEST"},
		{Board: alphaCenterRows(), Rack: "SPKMETA"},
		{Rack: "VVV"},
		{Rack: "QUEE?"},
	}
	resps, err := s.SolveBatch(ctx, reqs)
	is.NoErr(err)
	is.Equal(len(resps), 4)
	is.Equal(resps[0].Move.Word, "QUEENS")
	is.True(resps[1].Move.Found())
	is.True(!resps[2].Move.Found())
	is.Equal(resps[3].Move.TilesString(), "QUEEn")

	reqs = append(reqs, SolveRequest{Rack: "!!"})
	_, err = s.SolveBatch(ctx, reqs)
	is.True(err != nil)
}

func TestLiteralBlanks(t *testing.T) {
	is := is.New(t)
	cfg := testhelpers.Config()
	cfg.Set("blanks", false)
	s, err := NewSolver(context.Background(), cfg, SolverOptions{})
	is.NoErr(err)
	is.True(s.Options().LiteralBlanks)
	resp, err := s.Solve(context.Background(), SolveRequest{Rack: "QUEE?"})
	is.NoErr(err)
	is.True(!resp.Move.Found())
}

func TestParsePlacement(t *testing.T) {
	is := is.New(t)
	m, err := ParsePlacement([]string{"8h", "QUEeN"})
	is.NoErr(err)
	is.Equal(m.Word, "QUEEN")
	is.Equal(m.Blanks, []int{3})
	is.Equal(m.AnchorX, 7)
	is.Equal(m.AnchorY, 7)
	is.Equal(m.Direction, move.Horizontal)

	_, err = ParsePlacement([]string{"8H"})
	is.True(err != nil)
	_, err = ParsePlacement([]string{"8H", "QU3EN"})
	is.True(err != nil)
}

func TestShowPlays(t *testing.T) {
	m := &move.Move{Word: "HM", Points: 10, AnchorX: 8, AnchorY: 7, Direction: move.Vertical,
		PivotX: 8, PivotY: 7}
	out := ShowPlays([]*move.Move{m})
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, 2)
	assert.Contains(t, lines[1], "I8")
	assert.Contains(t, lines[1], "HM")
	assert.Contains(t, lines[1], "10")
	assert.Contains(t, lines[1], "8I")
}
