package movegen

import (
	"github.com/crossplay/bestword/alphabet"
	"github.com/crossplay/bestword/board"
	"github.com/crossplay/bestword/lexicon"
	"github.com/crossplay/bestword/move"
)

// IsPossibleMove checks that m can be laid on b: every letter is on the
// board, only the pivot square is already taken, the word does not run into
// tiles at either end, and every cross-word it forms is in lex. The values of
// the cross-words are added to m.Points when the move is legal.
func IsPossibleMove(b *board.Board, lex lexicon.Lexicon, m *move.Move) bool {
	if m.Direction == move.NoDirection {
		return false
	}
	word := []rune(m.Word)
	if len(word) == 0 {
		return false
	}
	if x, y := m.Coords(-1); b.Get(x, y).IsLetter() {
		return false
	}
	if x, y := m.Coords(len(word)); b.Get(x, y).IsLetter() {
		return false
	}

	crossPoints := 0
	for i, c := range word {
		x, y := m.Coords(i)
		st := b.Get(x, y)
		if st.IsOutOfBounds() {
			return false
		}
		if m.IsPivot(x, y) {
			if st.IsLetter() && st.Letter() != c {
				return false
			}
			continue
		}
		if st.IsLetter() {
			return false
		}
		cross, boardPoints := crossWord(b, x, y, c, m.Direction)
		if len(cross) == 1 {
			continue
		}
		if !lex.HasWord(cross) {
			return false
		}
		crossPoints += boardPoints
		if !m.IsBlank(i) {
			v, _ := alphabet.Value(c)
			crossPoints += v
		}
	}
	m.Points += crossPoints
	return true
}

// CrossWord is the word formed across dir by putting c on the empty square
// (x, y): the contiguous letters on either side of it, perpendicular to dir,
// with c in the middle.
func CrossWord(b *board.Board, x, y int, c rune, dir move.Direction) string {
	w, _ := crossWord(b, x, y, c, dir)
	return w
}

// crossWord also sums the values of the tiles already on the board, so a
// blank in the cross-word counts zero.
func crossWord(b *board.Board, x, y int, c rune, dir move.Direction) (string, int) {
	dx, dy := 0, 1
	if dir == move.Vertical {
		dx, dy = 1, 0
	}
	points := 0
	var before []rune
	for px, py := x-dx, y-dy; b.Get(px, py).IsLetter(); px, py = px-dx, py-dy {
		before = append(before, b.Get(px, py).Letter())
		points += b.Tile(px, py).Value
	}
	cross := make([]rune, 0, len(before)+8)
	for i := len(before) - 1; i >= 0; i-- {
		cross = append(cross, before[i])
	}
	cross = append(cross, c)
	for px, py := x+dx, y+dy; b.Get(px, py).IsLetter(); px, py = px+dx, py+dy {
		cross = append(cross, b.Get(px, py).Letter())
		points += b.Tile(px, py).Value
	}
	return string(cross), points
}
