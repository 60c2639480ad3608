package movegen

import (
	"testing"

	"github.com/matryer/is"
	"github.com/stretchr/testify/assert"

	"github.com/crossplay/bestword/board"
	"github.com/crossplay/bestword/move"
	"github.com/crossplay/bestword/testhelpers"
)

func mustBoard(t *testing.T, rows ...string) *board.Board {
	t.Helper()
	b, err := board.MakeBoard(rows)
	if err != nil {
		t.Fatal(err)
	}
	return b
}

func TestEmptyNeighbors(t *testing.T) {
	is := is.New(t)
	b := testhelpers.Board(t, "crowded.txt")
	is.Equal(EmptyNeighbors(b, 7, 7), 0)
	is.Equal(EmptyNeighbors(b, 7, 5), 3)
	is.Equal(EmptyNeighbors(b, 6, 7), 2)
	// off-board squares are not empty
	corner := mustBoard(t, "AB")
	is.Equal(EmptyNeighbors(corner, 0, 0), 1)
}

func TestBestDirection(t *testing.T) {
	is := is.New(t)
	b := testhelpers.Board(t, "crowded.txt")
	is.Equal(BestDirection(b, 7, 5), move.Horizontal)
	is.Equal(BestDirection(b, 5, 7), move.Vertical)
	is.Equal(BestDirection(b, 7, 7), move.NoDirection)
	// both axes open: horizontal wins
	lone := mustBoard(t, "", "", "--Z")
	is.Equal(BestDirection(lone, 2, 2), move.Horizontal)
}

func TestTileProbability(t *testing.T) {
	b := testhelpers.Board(t, "crowded.txt")
	type testcase struct {
		x, y int
		prob float64
	}
	for _, tc := range []testcase{
		{7, 5, 99.5},
		{7, 6, 200.0/3*8/12 - 0.5},
		{5, 7, 95},
		{6, 7, 49.5},
		{7, 7, 0},
		{8, 7, 49.5},
		{9, 7, 99.5},
		{7, 8, 200.0/3 - 0.5},
	} {
		assert.InDelta(t, tc.prob, TileProbability(b, tc.x, tc.y), 1e-9, "tile (%d, %d)", tc.x, tc.y)
	}
}

func TestTileProbabilityWithoutDirection(t *testing.T) {
	// One empty neighbor, so no direction: the whole 5x5 window counts and
	// the squares off the board count as taken.
	b := mustBoard(t, "AB")
	assert.InDelta(t, 100.0/3*7/24-0.5, TileProbability(b, 0, 0), 1e-9)
}

func TestTileProbabilityLineTiles(t *testing.T) {
	// Four open neighbors push the base above 100; a tile two squares along
	// the line costs three.
	b := mustBoard(t, "", "", "", "", "", "", "", "-----A-B")
	assert.InDelta(t, 99.5, TileProbability(b, 5, 7), 1e-9)
	assert.InDelta(t, 98.5, TileProbability(b, 7, 7), 1e-9)
}

func TestHighestProbabilities(t *testing.T) {
	is := is.New(t)
	b := testhelpers.Board(t, "crowded.txt")
	top := HighestProbabilities(b, DefaultTopK)
	is.Equal(len(top), 5)
	type xy struct{ x, y int }
	got := make([]xy, len(top))
	for i, tile := range top {
		got[i] = xy{tile.X, tile.Y}
	}
	// S and the last N tie; S was seen first.
	is.Equal(got, []xy{{7, 5}, {9, 7}, {5, 7}, {7, 8}, {6, 7}})
	for i := 1; i < len(top); i++ {
		is.True(top[i-1].Probability >= top[i].Probability)
	}
	// probabilities were written back to the board
	is.Equal(b.Tile(5, 7).Probability, 95.0)
}

func TestHighestProbabilitiesFewTiles(t *testing.T) {
	is := is.New(t)
	b := mustBoard(t, "", "", "", "", "", "", "", "-----ALPHA-----")
	top := HighestProbabilities(b, 3)
	is.Equal(len(top), 3)
	is.Equal(top[0].X, 5)
	is.Equal(top[1].X, 9)
	is.Equal(top[2].X, 6)

	is.Equal(len(HighestProbabilities(board.NewBoard(), DefaultTopK)), 0)

	// a tile with no empty neighbor never qualifies
	boxed := mustBoard(t, "", "", "", "", "", "", "-------A-------", "------AAA------", "-------A-------")
	for _, tile := range HighestProbabilities(boxed, 10) {
		is.True(!(tile.X == 7 && tile.Y == 7))
	}
}
