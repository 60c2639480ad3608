package board

import (
	"fmt"
	"os"
)

var (
	ColorSupport = os.Getenv("BESTWORD_DISABLE_COLOR") != "on"
)

// Kind tags what a square holds.
type Kind uint8

const (
	Empty Kind = iota
	OutOfBounds
	Letter
)

// TileState is what a board lookup returns: an empty square, a square off
// the board, or a letter. Compare kinds, never raw letters, so the three can
// not be confused.
type TileState struct {
	kind   Kind
	letter rune
}

var (
	EmptyState       = TileState{kind: Empty}
	OutOfBoundsState = TileState{kind: OutOfBounds}
)

func LetterState(c rune) TileState {
	return TileState{kind: Letter, letter: c}
}

func (s TileState) Kind() Kind {
	return s.kind
}

func (s TileState) IsEmpty() bool {
	return s.kind == Empty
}

func (s TileState) IsOutOfBounds() bool {
	return s.kind == OutOfBounds
}

func (s TileState) IsLetter() bool {
	return s.kind == Letter
}

// Letter returns the letter, or 0 if the state is not a letter.
func (s TileState) Letter() rune {
	if s.kind != Letter {
		return 0
	}
	return s.letter
}

func (s TileState) String() string {
	switch s.kind {
	case Empty:
		return "<empty>"
	case OutOfBounds:
		return "<out of bounds>"
	}
	return string(s.letter)
}

// A Tile is a single square of the board.
type Tile struct {
	State TileState
	// Value is the letter's point value, -1 for an empty tile.
	Value int
	X, Y  int
	// Probability is the ranker's estimate of how promising this tile is as
	// an anchor for a crossing word.
	Probability float64
}

func (t Tile) String() string {
	return fmt.Sprintf("<(%d, %d) %v val: %d prob: %.3f>", t.X, t.Y, t.State, t.Value, t.Probability)
}

// A BonusSquare is a bonus square (duh)
type BonusSquare rune

const (
	NoBonus BonusSquare = ' '
	// Bonus3WS is a triple word score
	Bonus3WS BonusSquare = '='
	// Bonus3LS is a triple letter score
	Bonus3LS BonusSquare = '"'
	// Bonus2LS is a double letter score
	Bonus2LS BonusSquare = '\''
	// Bonus2WS is a double word score
	Bonus2WS BonusSquare = '-'
)

func (b BonusSquare) displayString() string {
	if !ColorSupport {
		return string(b)
	}
	switch b {
	case Bonus3WS:
		return fmt.Sprintf("\033[31m%s\033[0m", string(b))
	case Bonus2WS:
		return fmt.Sprintf("\033[35m%s\033[0m", string(b))
	case Bonus3LS:
		return fmt.Sprintf("\033[34m%s\033[0m", string(b))
	case Bonus2LS:
		return fmt.Sprintf("\033[36m%s\033[0m", string(b))
	default:
		return "?"
	}
}

// BonusMap maps a linear coordinate (y*Dim + x) to a premium square. A
// missing entry is simply a square with no bonus.
type BonusMap map[int]BonusSquare

// Linear maps a board coordinate to the index used by BonusMap.
func Linear(x, y int) int {
	return y*Dim + x
}

func (bm BonusMap) Lookup(idx int) (BonusSquare, bool) {
	b, ok := bm[idx]
	return b, ok
}

// At returns the bonus at (x, y), or NoBonus.
func (bm BonusMap) At(x, y int) BonusSquare {
	if b, ok := bm[Linear(x, y)]; ok {
		return b
	}
	return NoBonus
}

// Indices lists the linear coordinates holding the given bonus, ascending.
func (bm BonusMap) Indices(bonus BonusSquare) []int {
	var idxs []int
	for i := 0; i < Dim*Dim; i++ {
		if bm[i] == bonus {
			idxs = append(idxs, i)
		}
	}
	return idxs
}
