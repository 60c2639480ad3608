// Package equity scores moves. Despite the name there is no leave or
// positional adjustment here; a move is worth exactly the points it makes.
package equity

import (
	"github.com/crossplay/bestword/alphabet"
	"github.com/crossplay/bestword/move"
)

// Calculator scores a move on the board.
type Calculator interface {
	// Score returns the points of the word laid down by play and adds them
	// to play.Points.
	Score(play *move.Move) int
	Type() string
}

// WordScore is the plain sum of the letter values in word. Anything that is
// not a letter counts zero.
func WordScore(word string) int {
	score := 0
	for _, c := range word {
		v, _ := alphabet.Value(c)
		score += v
	}
	return score
}

// letterValue is the value of the i-th letter of play, zero when a blank
// stands in for it.
func letterValue(play *move.Move, i int, c rune) int {
	if play.IsBlank(i) {
		return 0
	}
	v, _ := alphabet.Value(c)
	return v
}
