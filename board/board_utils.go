package board

import (
	"fmt"
	"strings"
)

// ToDisplayText renders the board with column letters and row numbers.
// Empty squares show their bonus, if any.
func (b *Board) ToDisplayText(bm BonusMap) string {
	var str string
	row := "   "
	for i := 0; i < Dim; i++ {
		row = row + fmt.Sprintf("%c", 'A'+i) + " "
	}
	str = str + row + "\n"
	str = str + "   " + strings.Repeat("-", Dim*2) + "\n"
	for y := 0; y < Dim; y++ {
		row := fmt.Sprintf("%2d|", y+1)
		for x := 0; x < Dim; x++ {
			row = row + b.squareDisplay(x, y, bm) + " "
		}
		row = row + "|"
		str = str + row + "\n"
	}
	str = str + "   " + strings.Repeat("-", Dim*2) + "\n"
	return "\n" + str
}

func (b *Board) squareDisplay(x, y int, bm BonusMap) string {
	t := &b.tiles[x][y]
	if t.State.IsLetter() {
		if t.Value == 0 && t.State.Letter() != '?' {
			// blank played as a letter
			return strings.ToLower(string(t.State.Letter()))
		}
		return string(t.State.Letter())
	}
	if bonus := bm.At(x, y); bonus != NoBonus {
		return bonus.displayString()
	}
	return " "
}

// ToText is the inverse of MakeBoard: one row per line, '-' for empty.
func (b *Board) ToText() []string {
	rows := make([]string, Dim)
	for y := 0; y < Dim; y++ {
		var sb strings.Builder
		for x := 0; x < Dim; x++ {
			st := b.tiles[x][y].State
			if st.IsLetter() {
				sb.WriteRune(st.Letter())
			} else {
				sb.WriteByte('-')
			}
		}
		rows[y] = sb.String()
	}
	return rows
}

// ProbabilityGrid renders the last computed tile probabilities, one row per
// line. Empty squares are dots.
func (b *Board) ProbabilityGrid() string {
	var sb strings.Builder
	for y := 0; y < Dim; y++ {
		for x := 0; x < Dim; x++ {
			t := &b.tiles[x][y]
			if !t.State.IsLetter() {
				sb.WriteString("     .")
				continue
			}
			fmt.Fprintf(&sb, "%6.1f", t.Probability)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
