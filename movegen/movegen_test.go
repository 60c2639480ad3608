package movegen

import (
	"errors"
	"testing"

	"github.com/matryer/is"
	"github.com/stretchr/testify/assert"

	"github.com/crossplay/bestword/alphabet"
	"github.com/crossplay/bestword/anagrammer"
	"github.com/crossplay/bestword/board"
	"github.com/crossplay/bestword/equity"
	"github.com/crossplay/bestword/lexicon"
	"github.com/crossplay/bestword/move"
	"github.com/crossplay/bestword/testhelpers"
)

func classicCalc(t *testing.T) equity.Calculator {
	t.Helper()
	bm, err := board.NamedBonusMap(board.ClassicLayout)
	if err != nil {
		t.Fatal(err)
	}
	return equity.NewBonusCalculator(bm)
}

func mustRack(t *testing.T, s string) *alphabet.Rack {
	t.Helper()
	r, err := alphabet.RackFromString(s)
	if err != nil {
		t.Fatal(err)
	}
	return r
}

func TestOpeningMove(t *testing.T) {
	is := is.New(t)
	dict := testhelpers.Dictionary(t)
	m := FindBestWord(board.NewBoard(), mustRack(t, "QUENEST"), dict, classicCalc(t))
	// Nothing on the middle row near the center carries a bonus, so QUEENS
	// is worth its face value, doubled.
	is.Equal(m.Word, "QUEENS")
	is.Equal(m.Points, 30)
	is.Equal(m.AnchorX, 4)
	is.Equal(m.AnchorY, 7)
	is.Equal(m.Direction, move.Horizontal)
	is.True(!m.HasPivot())
}

func TestOpeningMoveWithBlank(t *testing.T) {
	is := is.New(t)
	dict := testhelpers.Dictionary(t)
	m := FindBestWord(board.NewBoard(), mustRack(t, "QUEE?"), dict, classicCalc(t))
	is.Equal(m.Word, "QUEEN")
	is.Equal(m.Blanks, []int{4})
	is.Equal(m.Points, 26)
	is.Equal(m.TilesString(), "QUEEn")

	literal := mustRack(t, "QUEE?")
	literal.SetLiteralBlanks(true)
	m = FindBestWord(board.NewBoard(), literal, dict, classicCalc(t))
	is.True(!m.Found())
	is.Equal(m.Points, 0)
	is.Equal(m.Direction, move.NoDirection)
}

func TestNoWordsNoMove(t *testing.T) {
	is := is.New(t)
	dict := testhelpers.Dictionary(t)
	m := FindBestWord(board.NewBoard(), mustRack(t, "VVV"), dict, classicCalc(t))
	is.Equal(m.Describe(), "no move found")
	is.Equal(m.PivotX, move.NoPivot)
}

// On the ALPHA board every anchor is vertical. The only word through H puts
// the M on a double letter, which beats the plays through either A.
func alphaSearch(t *testing.T, gen MoveGenerator) *move.Move {
	b := testhelpers.Board(t, "alpha_center.txt")
	return gen.GenAll(b, mustRack(t, "M"))
}

func alphaDict() *lexicon.Dictionary {
	return lexicon.NewDictionary("alpha", []string{"ALPHA", "AM", "MA", "HM"})
}

func TestProbabilisticSearch(t *testing.T) {
	is := is.New(t)
	dict := alphaDict()
	gen := NewProbabilisticGenerator(anagrammer.NewMatcher(dict), dict, classicCalc(t), DefaultTopK)
	m := alphaSearch(t, gen)
	is.Equal(m.Word, "HM")
	is.Equal(m.Points, 10)
	is.Equal(m.AnchorX, 8)
	is.Equal(m.AnchorY, 7)
	is.Equal(m.Direction, move.Vertical)
	is.Equal(m.PivotX, 8)
	is.Equal(m.PivotY, 7)
	is.Equal(m.Describe(), "HM at (8, 7) going down for 10 points")
	is.Equal(len(gen.Plays()), 1)
}

func TestExhaustiveSearchAgrees(t *testing.T) {
	is := is.New(t)
	dict := alphaDict()
	gen := NewExhaustiveGenerator(anagrammer.NewMatcher(dict), dict, classicCalc(t))
	m := alphaSearch(t, gen)
	is.Equal(m.Word, "HM")
	is.Equal(m.Points, 10)
	is.Equal(gen.Type(), MethodExhaustive)
}

func TestAllPlaysRecorder(t *testing.T) {
	is := is.New(t)
	dict := alphaDict()
	gen := NewProbabilisticGenerator(anagrammer.NewMatcher(dict), dict, classicCalc(t), DefaultTopK)
	gen.SetPlayRecorder(AllPlaysRecorder)
	m := alphaSearch(t, gen)
	is.Equal(m.Word, "HM")
	plays := gen.Plays()
	// AM and MA through each A, and HM.
	is.Equal(len(plays), 5)
	is.Equal(plays[0].Word, "HM")
	for _, p := range plays[1:] {
		is.Equal(p.Points, 4)
	}
}

func TestPlaysSurviveNextSearch(t *testing.T) {
	is := is.New(t)
	dict := testhelpers.Dictionary(t)
	b := testhelpers.Board(t, "crowded.txt")
	gen := NewProbabilisticGenerator(anagrammer.NewMatcher(dict), dict, classicCalc(t), DefaultTopK)
	gen.SetPlayRecorder(AllPlaysRecorder)

	gen.GenAll(b, mustRack(t, "SPKMETA"))
	first := gen.Plays()
	is.True(len(first) > 0)
	want := make([]string, len(first))
	for i, p := range first {
		want[i] = p.String()
	}

	gen.GenAll(b, mustRack(t, "QUENEST"))
	is.True(len(gen.Plays()) > 0)
	for i, p := range first {
		is.Equal(p.String(), want[i])
	}
}

func TestNullPlayRecorder(t *testing.T) {
	is := is.New(t)
	dict := alphaDict()
	gen := NewProbabilisticGenerator(anagrammer.NewMatcher(dict), dict, classicCalc(t), DefaultTopK)
	gen.SetPlayRecorder(NullPlayRecorder)
	m := alphaSearch(t, gen)
	is.True(!m.Found())
	is.True(gen.Evaluated() > 0)
}

func TestSearchOnCrowdedBoard(t *testing.T) {
	dict := testhelpers.Dictionary(t)
	calc := classicCalc(t)
	for _, method := range []string{MethodProbabilistic, MethodExhaustive} {
		t.Run(method, func(t *testing.T) {
			is := is.New(t)
			b := testhelpers.Board(t, "crowded.txt")
			gen, err := NewGenerator(method, anagrammer.NewMatcher(dict), dict, calc, DefaultTopK)
			is.NoErr(err)
			rack := mustRack(t, "SPKMETA")
			m := gen.GenAll(b, rack)
			is.True(m.Found())
			is.True(m.HasPivot())
			is.True(b.Get(m.PivotX, m.PivotY).IsLetter())
			is.True(dict.HasWord(m.Word))

			// The play must commit cleanly and only use rack tiles.
			used, err := b.Copy().PlaceMove(m)
			is.NoErr(err)
			is.Equal(len(used), m.Length()-1)
			is.NoErr(rack.Copy().Take(m.Word, m.PivotIndex(), m.Blanks))

			// Re-checking the move adds the same cross-word points again, so
			// the base score is recoverable.
			check := m.Copy()
			check.Points = 0
			base := calc.Score(check)
			is.True(IsPossibleMove(b, dict, check))
			is.Equal(check.Points, m.Points)
			is.True(base <= m.Points)
		})
	}
}

func TestProbabilisticUsesOnlyTopTiles(t *testing.T) {
	dict := testhelpers.Dictionary(t)
	b := testhelpers.Board(t, "crowded.txt")
	gen := NewProbabilisticGenerator(anagrammer.NewMatcher(dict), dict, classicCalc(t), DefaultTopK)
	gen.SetPlayRecorder(AllPlaysRecorder)
	gen.GenAll(b, mustRack(t, "SPKMETA"))
	top := HighestProbabilities(b.Copy(), DefaultTopK)
	for _, p := range gen.Plays() {
		found := false
		for _, tile := range top {
			if tile.X == p.PivotX && tile.Y == p.PivotY {
				found = true
				assert.Equal(t, BestDirection(b, tile.X, tile.Y), p.Direction)
			}
		}
		assert.True(t, found, "play %v does not go through a top tile", p)
	}
}

func TestDegenerateEmptyBoard(t *testing.T) {
	is := is.New(t)
	// The center is free, so this is an opening, but tiles sit on the middle
	// row. The opening play must not overlap them.
	b := testhelpers.Board(t, "alpha.txt")
	is.True(b.IsEmpty())
	dict := testhelpers.Dictionary(t)
	m := FindBestWord(b, mustRack(t, "QUENEST"), dict, classicCalc(t))
	if m.Found() {
		_, err := b.Copy().PlaceMove(m)
		is.NoErr(err)
		for i := 0; i < m.Length(); i++ {
			x, y := m.Coords(i)
			is.True(b.Get(x, y).IsEmpty())
		}
	}
}

func TestNewGeneratorUnknownMethod(t *testing.T) {
	is := is.New(t)
	dict := alphaDict()
	_, err := NewGenerator("annealing", anagrammer.NewMatcher(dict), dict, classicCalc(t), 5)
	is.True(errors.Is(err, ErrUnknownSearchMethod))
	gen, err := NewGenerator("", anagrammer.NewMatcher(dict), nil, classicCalc(t), 0)
	is.NoErr(err)
	is.Equal(gen.Type(), MethodProbabilistic)
}
