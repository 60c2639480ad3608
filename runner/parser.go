package runner

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/crossplay/bestword/move"
)

// ParsePlacement reads a play typed as coordinates and a word, for example
// "8H QUEeN". Lowercase letters are played with a blank.
func ParsePlacement(fields []string) (*move.Move, error) {
	if len(fields) != 2 {
		msg := fmt.Sprintf("unrecognized move: %s", strings.Join(fields, " "))
		return nil, errors.New(msg)
	}
	coords, word := fields[0], fields[1]
	var blanks []int
	for i, r := range []rune(word) {
		if !unicode.IsLetter(r) {
			return nil, fmt.Errorf("unrecognized move: %q is not a letter", r)
		}
		if unicode.IsLower(r) {
			blanks = append(blanks, i)
		}
	}
	m, err := move.NewPlacement(coords, word)
	if err != nil {
		return nil, err
	}
	m.Blanks = blanks
	return m, nil
}
