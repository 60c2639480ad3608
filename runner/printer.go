package runner

import (
	"fmt"
	"strings"

	"github.com/crossplay/bestword/move"
)

// ShowPlays renders plays as a ranked table.
func ShowPlays(plays []*move.Move) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%-4s%-6s%-17s%-8s%s\n", "#", "Pos", "Word", "Score", "Through")
	for i, p := range plays {
		through := "-"
		if p.HasPivot() {
			through = move.ToBoardGameCoords(p.PivotY, p.PivotX, false)
		}
		fmt.Fprintf(&sb, "%-4d%-6s%-17s%-8d%s\n", i+1, p.BoardCoords(), p.TilesString(), p.Points, through)
	}
	return sb.String()
}
