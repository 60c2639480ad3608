package move

import (
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"unicode"
)

// Direction is the axis a word is laid along.
type Direction int

const (
	Vertical Direction = iota
	Horizontal
	NoDirection
)

func (d Direction) String() string {
	switch d {
	case Vertical:
		return "vertical"
	case Horizontal:
		return "horizontal"
	}
	return "none"
}

// Label is the human name for the direction a word reads in.
func (d Direction) Label() string {
	switch d {
	case Vertical:
		return "down"
	case Horizontal:
		return "right"
	}
	return "none"
}

func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Direction) UnmarshalText(b []byte) error {
	switch strings.ToLower(string(b)) {
	case "vertical", "down":
		*d = Vertical
	case "horizontal", "right":
		*d = Horizontal
	case "none", "":
		*d = NoDirection
	default:
		return fmt.Errorf("unknown direction %q", string(b))
	}
	return nil
}

// NoPivot marks a move that does not play through an existing tile.
const NoPivot = -1

// Move is a candidate placement. The zero-point move with NoDirection means
// no move was found.
type Move struct {
	Word      string    `json:"word" yaml:"word"`
	Points    int       `json:"points" yaml:"points"`
	AnchorX   int       `json:"anchor_x" yaml:"anchor_x"`
	AnchorY   int       `json:"anchor_y" yaml:"anchor_y"`
	Direction Direction `json:"direction" yaml:"direction"`
	PivotX    int       `json:"pivot_x" yaml:"pivot_x"`
	PivotY    int       `json:"pivot_y" yaml:"pivot_y"`
	// Blanks are the word indices played with a blank tile.
	Blanks []int `json:"blanks,omitempty" yaml:"blanks,omitempty,flow"`
}

// New returns the default move.
func New() *Move {
	return &Move{Direction: NoDirection, PivotX: NoPivot, PivotY: NoPivot}
}

// Found reports whether this is an actual placement rather than the default
// "no move" result.
func (m *Move) Found() bool {
	return m.Direction != NoDirection && m.Word != "" && m.Points > 0
}

func (m *Move) Length() int {
	return len([]rune(m.Word))
}

// Coords returns the board coordinates of the i-th letter.
func (m *Move) Coords(i int) (x, y int) {
	if m.Direction == Vertical {
		return m.AnchorX, m.AnchorY + i
	}
	return m.AnchorX + i, m.AnchorY
}

func (m *Move) IsPivot(x, y int) bool {
	return m.PivotX == x && m.PivotY == y
}

// HasPivot reports whether the move plays through an existing tile.
func (m *Move) HasPivot() bool {
	return m.PivotX != NoPivot && m.PivotY != NoPivot
}

// PivotIndex is the word index of the pivot, or NoPivot.
func (m *Move) PivotIndex() int {
	if !m.HasPivot() {
		return NoPivot
	}
	for i := 0; i < m.Length(); i++ {
		if x, y := m.Coords(i); m.IsPivot(x, y) {
			return i
		}
	}
	return NoPivot
}

func (m *Move) IsBlank(i int) bool {
	return slices.Contains(m.Blanks, i)
}

// AddBlank marks index i as played with a blank, keeping Blanks sorted.
func (m *Move) AddBlank(i int) {
	idx, found := slices.BinarySearch(m.Blanks, i)
	if found {
		return
	}
	m.Blanks = slices.Insert(m.Blanks, idx, i)
}

func (m *Move) Copy() *Move {
	n := *m
	n.Blanks = slices.Clone(m.Blanks)
	return &n
}

// CopyFrom overwrites m with the contents of other.
func (m *Move) CopyFrom(other *Move) {
	*m = *other
	m.Blanks = slices.Clone(other.Blanks)
}

// TilesString is the word with letters played as blanks in lowercase.
func (m *Move) TilesString() string {
	runes := []rune(m.Word)
	for _, i := range m.Blanks {
		if i >= 0 && i < len(runes) {
			runes[i] = unicode.ToLower(runes[i])
		}
	}
	return string(runes)
}

// BoardCoords returns coordinates like "8H" (horizontal) or "H8" (vertical).
func (m *Move) BoardCoords() string {
	return ToBoardGameCoords(m.AnchorY, m.AnchorX, m.Direction == Vertical)
}

// ShortDescription provides a short description, useful for logging or
// user display.
func (m *Move) ShortDescription() string {
	if !m.Found() {
		return "(no move)"
	}
	return fmt.Sprintf("%v %v", m.BoardCoords(), m.TilesString())
}

// Describe renders the word, the anchor, the direction and the points.
func (m *Move) Describe() string {
	if !m.Found() {
		return "no move found"
	}
	return fmt.Sprintf("%v at (%d, %d) going %v for %d points",
		m.TilesString(), m.AnchorX, m.AnchorY, m.Direction.Label(), m.Points)
}

// String provides a string just for debugging purposes.
func (m *Move) String() string {
	return fmt.Sprintf("<word: %v anchor: (%d, %d) dir: %v pivot: (%d, %d) points: %d blanks: %v>",
		m.Word, m.AnchorX, m.AnchorY, m.Direction, m.PivotX, m.PivotY, m.Points, m.Blanks)
}

var reVertical, reHorizontal *regexp.Regexp

func init() {
	reVertical = regexp.MustCompile(`^(?P<col>[A-Z])(?P<row>[0-9]+)$`)
	reHorizontal = regexp.MustCompile(`^(?P<row>[0-9]+)(?P<col>[A-Z])$`)
}

func ToBoardGameCoords(row int, col int, vertical bool) string {
	colCoords := string(rune('A' + col))
	rowCoords := strconv.Itoa(row + 1)
	if vertical {
		return colCoords + rowCoords
	}
	return rowCoords + colCoords
}

// FromBoardGameCoords does the inverse operation of ToBoardGameCoords above.
// ok is false if c is not a coordinate.
func FromBoardGameCoords(c string) (row, col int, vertical bool, ok bool) {
	c = strings.ToUpper(strings.TrimSpace(c))
	if vMatches := reVertical.FindStringSubmatch(c); len(vMatches) == 3 {
		row, _ = strconv.Atoi(vMatches[2])
		col = int(vMatches[1][0] - 'A')
		return row - 1, col, true, true
	}
	if hMatches := reHorizontal.FindStringSubmatch(c); len(hMatches) == 3 {
		row, _ = strconv.Atoi(hMatches[1])
		col = int(hMatches[2][0] - 'A')
		return row - 1, col, false, true
	}
	return 0, 0, false, false
}

// NewPlacement builds an unscored move from board coordinates such as "8H".
func NewPlacement(coords, word string) (*Move, error) {
	row, col, vertical, ok := FromBoardGameCoords(coords)
	if !ok {
		return nil, fmt.Errorf("bad coordinates %q", coords)
	}
	m := New()
	m.Word = strings.ToUpper(word)
	m.AnchorX, m.AnchorY = col, row
	m.Direction = Horizontal
	if vertical {
		m.Direction = Vertical
	}
	return m, nil
}
