package equity

import (
	"github.com/crossplay/bestword/board"
	"github.com/crossplay/bestword/move"
)

// BonusCalculator applies premium squares. Letter bonuses multiply a single
// letter; every word bonus the play covers multiplies the whole word again.
// The pivot tile was already on the board, so it only counts its face value.
type BonusCalculator struct {
	bonuses board.BonusMap
}

func NewBonusCalculator(bm board.BonusMap) *BonusCalculator {
	return &BonusCalculator{bonuses: bm}
}

func (bc *BonusCalculator) Score(play *move.Move) int {
	raw := 0
	doubleWords, tripleWords := 0, 0
	for i, c := range []rune(play.Word) {
		val := letterValue(play, i, c)
		x, y := play.Coords(i)
		if play.IsPivot(x, y) {
			raw += val
			continue
		}
		switch bc.bonusAt(x, y) {
		case board.Bonus3LS:
			raw += val * 2
		case board.Bonus2LS:
			raw += val
		case board.Bonus3WS:
			tripleWords++
		case board.Bonus2WS:
			doubleWords++
		}
		raw += val
	}
	for ; doubleWords > 0; doubleWords-- {
		raw *= 2
	}
	for ; tripleWords > 0; tripleWords-- {
		raw *= 3
	}
	play.Points += raw
	return raw
}

// bonusAt is NoBonus off the board, so a linear index never wraps onto the
// next row.
func (bc *BonusCalculator) bonusAt(x, y int) board.BonusSquare {
	if x < 0 || x >= board.Dim || y < 0 || y >= board.Dim {
		return board.NoBonus
	}
	return bc.bonuses.At(x, y)
}

func (bc *BonusCalculator) Type() string {
	return "BonusCalculator"
}
