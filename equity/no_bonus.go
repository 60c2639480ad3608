package equity

import "github.com/crossplay/bestword/move"

// NoBonusCalculator ignores premium squares; a play is worth the sum of
// its letters.
type NoBonusCalculator struct{}

func NewNoBonusCalculator() *NoBonusCalculator {
	return &NoBonusCalculator{}
}

func (nbc *NoBonusCalculator) Score(play *move.Move) int {
	score := 0
	for i, c := range []rune(play.Word) {
		score += letterValue(play, i, c)
	}
	play.Points += score
	return score
}

func (nbc *NoBonusCalculator) Type() string {
	return "NoBonusCalculator"
}
