package equity

import "github.com/crossplay/bestword/move"

// OpeningMultiplier is applied to the first word on an empty board.
const OpeningMultiplier = 2

// OpeningScore scores a first move: the calculator's score, doubled. Unlike
// Score it sets play.Points rather than adding to it.
func OpeningScore(calc Calculator, play *move.Move) int {
	play.Points = 0
	pts := calc.Score(play) * OpeningMultiplier
	play.Points = pts
	return pts
}
