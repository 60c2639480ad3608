package board

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/crossplay/bestword/alphabet"
	"github.com/crossplay/bestword/move"
)

const (
	Dim = 15
	// Center is both the row and the column of the center square.
	Center = Dim / 2
)

var (
	ErrBoardUnavailable = errors.New("board unavailable")
	ErrInvalidBoard     = errors.New("invalid board")
)

// Board is a 15x15 grid of tiles, indexed [x][y] with x the column.
type Board struct {
	tiles       [Dim][Dim]Tile
	tilesPlayed int
}

func NewBoard() *Board {
	b := &Board{}
	b.Clear()
	return b
}

func (b *Board) Clear() {
	for x := 0; x < Dim; x++ {
		for y := 0; y < Dim; y++ {
			b.tiles[x][y] = Tile{State: EmptyState, Value: -1, X: x, Y: y}
		}
	}
	b.tilesPlayed = 0
}

// isEmptyMarker reports whether c marks an empty square in a text layout.
func isEmptyMarker(c rune) bool {
	return c == '-' || c == '.' || c == ' '
}

// MakeBoard builds a board from text rows: row y is line y, column x is
// character x. Missing rows or trailing squares are empty.
func MakeBoard(rows []string) (*Board, error) {
	b := NewBoard()
	if len(rows) > Dim {
		return nil, fmt.Errorf("%w: %d rows, at most %d allowed", ErrInvalidBoard, len(rows), Dim)
	}
	for y, row := range rows {
		runes := []rune(alphabet.Upper(strings.TrimRight(row, "\r\n")))
		if len(runes) > Dim {
			return nil, fmt.Errorf("%w: row %d has %d squares, at most %d allowed",
				ErrInvalidBoard, y+1, len(runes), Dim)
		}
		for x, c := range runes {
			if isEmptyMarker(c) {
				continue
			}
			if err := b.SetLetter(x, y, c); err != nil {
				return nil, err
			}
		}
	}
	return b, nil
}

// Load reads a board from a text file.
func Load(path string) (*Board, error) {
	bts, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBoardUnavailable, err)
	}
	rows := strings.Split(strings.TrimRight(string(bts), "\r\n"), "\n")
	b, err := MakeBoard(rows)
	if err != nil {
		return nil, err
	}
	log.Debug().Str("path", path).Int("tiles", b.tilesPlayed).Msg("loaded-board")
	return b, nil
}

func inBounds(x, y int) bool {
	return x >= 0 && x < Dim && y >= 0 && y < Dim
}

// Get returns the state of (x, y). Coordinates off the board give
// OutOfBoundsState.
func (b *Board) Get(x, y int) TileState {
	if !inBounds(x, y) {
		return OutOfBoundsState
	}
	return b.tiles[x][y].State
}

// Tile returns the tile at (x, y), or nil off the board.
func (b *Board) Tile(x, y int) *Tile {
	if !inBounds(x, y) {
		return nil
	}
	return &b.tiles[x][y]
}

// IsEmpty is true iff the center square is empty, whatever else is on the
// board.
func (b *Board) IsEmpty() bool {
	return b.tiles[Center][Center].State.IsEmpty()
}

func (b *Board) TilesPlayed() int {
	return b.tilesPlayed
}

// SetLetter puts a tile with its face value on (x, y).
func (b *Board) SetLetter(x, y int, c rune) error {
	v, ok := alphabet.Value(c)
	if !ok {
		return fmt.Errorf("%w: %q at (%d, %d) is not a tile", ErrInvalidBoard, c, x, y)
	}
	return b.setTile(x, y, c, v)
}

func (b *Board) setTile(x, y int, c rune, value int) error {
	t := b.Tile(x, y)
	if t == nil {
		return fmt.Errorf("%w: (%d, %d) is off the board", ErrInvalidBoard, x, y)
	}
	if t.State.IsEmpty() {
		b.tilesPlayed++
	}
	t.State = LetterState(c)
	t.Value = value
	t.Probability = 0
	return nil
}

// PlaceMove commits a move, returning the tiles that came off the rack. A
// square that already holds the same letter is played through; any other
// occupied square is an error and leaves the board untouched.
func (b *Board) PlaceMove(m *move.Move) ([]rune, error) {
	word := []rune(m.Word)
	for i, c := range word {
		x, y := m.Coords(i)
		st := b.Get(x, y)
		if st.IsOutOfBounds() {
			return nil, fmt.Errorf("%w: %v runs off the board", ErrInvalidBoard, m.ShortDescription())
		}
		if st.IsLetter() && st.Letter() != c {
			return nil, fmt.Errorf("%w: %v overlaps %c at (%d, %d)",
				ErrInvalidBoard, m.ShortDescription(), st.Letter(), x, y)
		}
	}
	var used []rune
	for i, c := range word {
		x, y := m.Coords(i)
		if b.Get(x, y).IsLetter() {
			continue
		}
		if m.IsBlank(i) {
			b.setTile(x, y, c, 0)
			used = append(used, alphabet.BlankCharacter)
			continue
		}
		b.SetLetter(x, y, c)
		used = append(used, c)
	}
	return used, nil
}

// OccupiedTiles returns every tile with a letter, in row-major order.
func (b *Board) OccupiedTiles() []*Tile {
	var tiles []*Tile
	for y := 0; y < Dim; y++ {
		for x := 0; x < Dim; x++ {
			if b.tiles[x][y].State.IsLetter() {
				tiles = append(tiles, &b.tiles[x][y])
			}
		}
	}
	return tiles
}

// Letters lists the letters on the board, in row-major order.
func (b *Board) Letters() []rune {
	var letters []rune
	for _, t := range b.OccupiedTiles() {
		letters = append(letters, t.State.Letter())
	}
	return letters
}

func (b *Board) Copy() *Board {
	n := *b
	return &n
}

// Equals compares letters only.
func (b *Board) Equals(other *Board) bool {
	for x := 0; x < Dim; x++ {
		for y := 0; y < Dim; y++ {
			if b.tiles[x][y].State != other.tiles[x][y].State {
				return false
			}
		}
	}
	return true
}
