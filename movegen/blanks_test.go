package movegen

import (
	"testing"

	"github.com/matryer/is"
	"github.com/stretchr/testify/assert"

	"github.com/crossplay/bestword/anagrammer"
	"github.com/crossplay/bestword/board"
	"github.com/crossplay/bestword/equity"
	"github.com/crossplay/bestword/lexicon"
	"github.com/crossplay/bestword/move"
)

func qDict() *lexicon.Dictionary {
	return lexicon.NewDictionary("q", []string{"QI", "QA", "QAT", "AT", "TA"})
}

// qiBoard has QI across the center, with the Q played as a blank when
// blankQ is set.
func qiBoard(t *testing.T, blankQ bool) *board.Board {
	t.Helper()
	qi := &move.Move{Word: "QI", AnchorX: 7, AnchorY: 7, Direction: move.Horizontal,
		PivotX: move.NoPivot, PivotY: move.NoPivot}
	if blankQ {
		qi.Blanks = []int{0}
	}
	b := board.NewBoard()
	if _, err := b.PlaceMove(qi); err != nil {
		t.Fatal(err)
	}
	return b
}

func TestPlayThroughBoardBlank(t *testing.T) {
	dict := qDict()
	calc := equity.NewNoBonusCalculator()
	for _, method := range []string{MethodProbabilistic, MethodExhaustive} {
		t.Run(method, func(t *testing.T) {
			is := is.New(t)
			gen, err := NewGenerator(method, anagrammer.NewMatcher(dict), dict, calc, DefaultTopK)
			is.NoErr(err)
			m := gen.GenAll(qiBoard(t, true), mustRack(t, "AT"))
			is.Equal(m.Word, "QAT")
			is.Equal(m.Blanks, []int{0})
			is.Equal(m.TilesString(), "qAT")
			is.Equal(m.Points, 2)

			m = gen.GenAll(qiBoard(t, false), mustRack(t, "AT"))
			is.Equal(m.Word, "QAT")
			is.Equal(len(m.Blanks), 0)
			is.Equal(m.Points, 12)
		})
	}
}

func TestCrossWordThroughBoardBlank(t *testing.T) {
	is := is.New(t)
	dict := qDict()
	ta := placement("TA", 6, 8, move.Horizontal)

	// the A under the Q makes QA
	m := ta.Copy()
	is.True(IsPossibleMove(qiBoard(t, true), dict, m))
	is.Equal(m.Points, 1)

	m = ta.Copy()
	is.True(IsPossibleMove(qiBoard(t, false), dict, m))
	is.Equal(m.Points, 11)
}

func TestProbabilityOfBoardBlank(t *testing.T) {
	blank := TileProbability(qiBoard(t, true), 7, 7)
	face := TileProbability(qiBoard(t, false), 7, 7)
	// a real Q costs the most a letter can
	assert.InDelta(t, 5.0, blank-face, 1e-9)
}
