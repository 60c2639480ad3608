package alphabet

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	// BlankCharacter is how a blank is written on a rack or in a dictionary.
	BlankCharacter = '?'
	// MaxLetterPoints is the highest value of any single letter.
	MaxLetterPoints = 10
	NumLetters      = 26
)

var letterValues = [NumLetters]int{
	1, 3, 3, 2, 1, 4, 2, 4, 1, 8, 5, 1, 3, // A-M
	1, 1, 3, 10, 1, 1, 1, 1, 4, 4, 8, 4, 10, // N-Z
}

// IsLetter reports whether r is one of the uppercase letters A-Z.
func IsLetter(r rune) bool {
	return r >= 'A' && r <= 'Z'
}

// Value returns the point value of a letter. The blank is worth zero. The
// second return value is false for anything that is not a tile.
func Value(r rune) (int, bool) {
	if IsLetter(r) {
		return letterValues[r-'A'], true
	}
	if r == BlankCharacter {
		return 0, true
	}
	return 0, false
}

// Upper uppercases s without trimming it.
func Upper(s string) string {
	// A Caser keeps state, so build one per call; callers may be concurrent.
	return cases.Upper(language.Und).String(s)
}

// Normalize trims and uppercases user or file input.
func Normalize(s string) string {
	return Upper(strings.TrimSpace(s))
}
