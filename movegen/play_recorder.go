package movegen

import "github.com/crossplay/bestword/move"

// A PlayRecorderFunc is handed every scored placement. It decides whether
// the placement is worth a legality check and what to keep. The play is
// scratch space owned by the generator; copy it to keep it.
type PlayRecorderFunc func(gen *Generator, play *move.Move)

// NullPlayRecorder keeps nothing. Useful for timing the search itself.
func NullPlayRecorder(gen *Generator, play *move.Move) {
}

// TopPlayOnlyRecorder keeps the single best play. A placement is only
// checked for legality when it already outscores the best play so far, and
// ties keep the earlier play.
func TopPlayOnlyRecorder(gen *Generator, play *move.Move) {
	if play.Points <= gen.best.Points {
		return
	}
	if !gen.legal(play) {
		return
	}
	gen.best.CopyFrom(play)
	if len(gen.plays) == 0 {
		gen.plays = append(gen.plays, gen.best)
	} else {
		gen.plays[0] = gen.best
	}
}

// AllPlaysRecorder keeps every legal placement. It is much slower, since
// every placement goes through the legality check.
func AllPlaysRecorder(gen *Generator, play *move.Move) {
	if !gen.legal(play) {
		return
	}
	gen.plays = append(gen.plays, play.Copy())
	if play.Points > gen.best.Points {
		gen.best.CopyFrom(play)
	}
}
