package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/matryer/is"

	"github.com/crossplay/bestword/move"
)

func TestPutGet(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()
	s, err := Open(ctx, filepath.Join(t.TempDir(), "results.db"))
	is.NoErr(err)
	defer s.Close()

	_, err = s.Get(ctx, "abc")
	is.True(errors.Is(err, ErrNotFound))

	m := &move.Move{Word: "QUEEN", Points: 28, AnchorX: 5, AnchorY: 7,
		Direction: move.Horizontal, PivotX: 7, PivotY: 7, Blanks: []int{3}}
	is.NoErr(s.Put(ctx, &Solution{Hash: "abc", Board: "board", Rack: "QUEN?", Method: "probabilistic", Move: m}))

	sol, err := s.Get(ctx, "abc")
	is.NoErr(err)
	is.Equal(sol.Rack, "QUEN?")
	is.Equal(sol.Move.Word, "QUEEN")
	is.Equal(sol.Move.Points, 28)
	is.Equal(sol.Move.Direction, move.Horizontal)
	is.Equal(sol.Move.PivotX, 7)
	is.Equal(sol.Move.Blanks, []int{3})
	is.True(!sol.CreatedAt.IsZero())

	n, err := s.Count(ctx)
	is.NoErr(err)
	is.Equal(n, 1)
}

func TestPutReplaces(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()
	s, err := Open(ctx, ":memory:")
	is.NoErr(err)
	defer s.Close()

	none := move.New()
	is.NoErr(s.Put(ctx, &Solution{Hash: "h", Move: none}))
	is.NoErr(s.Put(ctx, &Solution{Hash: "h", Move: none}))
	n, err := s.Count(ctx)
	is.NoErr(err)
	is.Equal(n, 1)

	sol, err := s.Get(ctx, "h")
	is.NoErr(err)
	is.Equal(sol.Move.Direction, move.NoDirection)
	is.Equal(sol.Move.PivotX, move.NoPivot)
	is.True(sol.Move.Blanks == nil)
}
