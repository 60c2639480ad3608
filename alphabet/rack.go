package alphabet

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/samber/lo"
)

var ErrInvalidRack = errors.New("rack contains an invalid character")

// Rack is a multiset of letters plus a number of blanks.
type Rack struct {
	counts [NumLetters]int
	blanks int
	// literalBlanks makes a blank match only a literal '?' in a word, which
	// no dictionary word contains.
	literalBlanks bool
}

func NewRack() *Rack {
	return &Rack{}
}

// RackFromString builds a rack from a bare string of letters. Case is
// normalized; anything other than A-Z and '?' is rejected.
func RackFromString(letters string) (*Rack, error) {
	r := NewRack()
	for _, c := range Normalize(letters) {
		if err := r.Add(c); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// SetLiteralBlanks switches blanks between wildcard and literal matching.
func (r *Rack) SetLiteralBlanks(literal bool) {
	r.literalBlanks = literal
}

func (r *Rack) Add(c rune) error {
	switch {
	case IsLetter(c):
		r.counts[c-'A']++
	case c == BlankCharacter:
		r.blanks++
	default:
		return fmt.Errorf("%w: %q", ErrInvalidRack, c)
	}
	return nil
}

// WithLetter returns a copy of the rack with one more c.
func (r *Rack) WithLetter(c rune) (*Rack, error) {
	n := r.Copy()
	if err := n.Add(c); err != nil {
		return nil, err
	}
	return n, nil
}

func (r *Rack) Copy() *Rack {
	n := *r
	return &n
}

func (r *Rack) Count(c rune) int {
	if IsLetter(c) {
		return r.counts[c-'A']
	}
	if c == BlankCharacter {
		return r.blanks
	}
	return 0
}

func (r *Rack) Blanks() int {
	return r.blanks
}

func (r *Rack) NumTiles() int {
	return lo.Sum(r.counts[:]) + r.blanks
}

// String returns the tiles in alphabetical order, blanks last.
func (r *Rack) String() string {
	var sb strings.Builder
	for i, ct := range r.counts {
		sb.WriteString(strings.Repeat(string(rune('A'+i)), ct))
	}
	sb.WriteString(strings.Repeat(string(BlankCharacter), r.blanks))
	return sb.String()
}

// Hashable is a canonical form of the rack, suitable as a map key.
func (r *Rack) Hashable() string {
	if r.literalBlanks {
		return r.String() + "#literal"
	}
	return r.String()
}

// CanForm reports whether word can be spelled from this rack.
func (r *Rack) CanForm(word string) bool {
	_, ok := r.BlankPositions(word, -1)
	return ok
}

// BlankPositions works out which indices of word must be played with a blank,
// ignoring the index skip (a tile already on the board; -1 for none). Blanks
// cover the last occurrences of each letter the rack is short of. ok is false
// when the word cannot be formed.
func (r *Rack) BlankPositions(word string, skip int) ([]int, bool) {
	runes := []rune(word)
	need := lo.CountValues(lo.Filter(runes, func(_ rune, i int) bool {
		return i != skip
	}))
	shortfall := map[rune]int{}
	total := 0
	for c, ct := range need {
		var have int
		switch {
		case IsLetter(c):
			have = r.counts[c-'A']
		case c == BlankCharacter && r.literalBlanks:
			have = r.blanks
		default:
			// Not a tile at all; never formable.
			return nil, false
		}
		if ct > have {
			if c == BlankCharacter || r.literalBlanks {
				return nil, false
			}
			shortfall[c] = ct - have
			total += ct - have
		}
	}
	if total > r.blanks {
		return nil, false
	}
	if total == 0 {
		return nil, true
	}
	positions := make([]int, 0, total)
	for i := len(runes) - 1; i >= 0; i-- {
		if i == skip {
			continue
		}
		if shortfall[runes[i]] > 0 {
			shortfall[runes[i]]--
			positions = append(positions, i)
		}
	}
	sort.Ints(positions)
	return positions, true
}

// Take removes the tiles used to play word from the rack. The index skip is a
// tile already on the board, and blanks lists the indices played as blanks.
func (r *Rack) Take(word string, skip int, blanks []int) error {
	isBlank := lo.SliceToMap(blanks, func(i int) (int, bool) { return i, true })
	for i, c := range []rune(word) {
		if i == skip {
			continue
		}
		if isBlank[i] {
			if r.blanks == 0 {
				return fmt.Errorf("no blank left for %q", c)
			}
			r.blanks--
			continue
		}
		if !IsLetter(c) || r.counts[c-'A'] == 0 {
			return fmt.Errorf("%w: %q is not on the rack", ErrInvalidRack, c)
		}
		r.counts[c-'A']--
	}
	return nil
}

// Tiles lists the tiles on the rack in String order.
func (r *Rack) Tiles() []rune {
	return []rune(r.String())
}
