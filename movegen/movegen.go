// Package movegen finds the best word to play. It ranks the tiles already on
// the board, tries to build words through the most promising ones, and keeps
// the highest scoring placement whose cross-words are all valid.
package movegen

import (
	"errors"
	"fmt"
	"sort"

	"github.com/rs/zerolog/log"

	"github.com/crossplay/bestword/alphabet"
	"github.com/crossplay/bestword/anagrammer"
	"github.com/crossplay/bestword/board"
	"github.com/crossplay/bestword/equity"
	"github.com/crossplay/bestword/lexicon"
	"github.com/crossplay/bestword/move"
)

const (
	MethodProbabilistic = "probabilistic"
	MethodExhaustive    = "exhaustive"
)

var ErrUnknownSearchMethod = errors.New("unknown search method")

// MoveGenerator searches a board for plays.
type MoveGenerator interface {
	// GenAll searches b with rack and returns the best play found, or the
	// default move. b is only written to through tile probabilities.
	GenAll(b *board.Board, rack *alphabet.Rack) *move.Move
	// Plays returns what the play recorder kept during the last GenAll.
	Plays() []*move.Move
	SetPlayRecorder(pr PlayRecorderFunc)
	Type() string
}

// Generator holds what both search strategies share. It is not safe for
// concurrent use; build one per goroutine. The matcher, lexicon and
// calculator it points at may be shared.
type Generator struct {
	matcher  *anagrammer.Matcher
	lexicon  lexicon.Lexicon
	calc     equity.Calculator
	recorder PlayRecorderFunc

	board       *board.Board
	best        *move.Move
	plays       []*move.Move
	placeholder move.Move
	evaluated   int
}

func newGenerator(matcher *anagrammer.Matcher, lex lexicon.Lexicon, calc equity.Calculator) *Generator {
	if lex == nil {
		lex = matcher.Dictionary()
	}
	return &Generator{
		matcher:  matcher,
		lexicon:  lex,
		calc:     calc,
		recorder: TopPlayOnlyRecorder,
		best:     move.New(),
	}
}

func (gen *Generator) SetPlayRecorder(pr PlayRecorderFunc) {
	gen.recorder = pr
}

// Plays returns the recorded plays, best first. Each search starts a new
// slice, so earlier results stay valid.
func (gen *Generator) Plays() []*move.Move {
	return gen.plays
}

// Evaluated is the number of placements scored during the last search.
func (gen *Generator) Evaluated() int {
	return gen.evaluated
}

func (gen *Generator) reset(b *board.Board) {
	gen.board = b
	gen.best = move.New()
	gen.plays = nil
	gen.evaluated = 0
}

func (gen *Generator) legal(play *move.Move) bool {
	return IsPossibleMove(gen.board, gen.lexicon, play)
}

// result sorts the recorded plays and hands back a copy of the best one.
func (gen *Generator) result() *move.Move {
	sort.SliceStable(gen.plays, func(i, j int) bool {
		return gen.plays[i].Points > gen.plays[j].Points
	})
	log.Debug().Int("evaluated", gen.evaluated).Int("recorded", len(gen.plays)).
		Str("best", gen.best.ShortDescription()).Msg("search-done")
	return gen.best.Copy()
}

// genOpening places words built from the rack alone across the center of an
// empty board. Every opening play is worth double.
func (gen *Generator) genOpening(rack *alphabet.Rack) {
	for _, w := range gen.matcher.PossibleWords(rack) {
		n := len([]rune(w))
		if n > board.Dim {
			continue
		}
		blanks, ok := rack.BlankPositions(w, move.NoPivot)
		if !ok {
			continue
		}
		play := &gen.placeholder
		*play = move.Move{
			Word:      w,
			AnchorX:   board.Center - n/2,
			AnchorY:   board.Center,
			Direction: move.Horizontal,
			PivotX:    move.NoPivot,
			PivotY:    move.NoPivot,
			Blanks:    blanks,
		}
		equity.OpeningScore(gen.calc, play)
		gen.evaluated++
		gen.recorder(gen, play)
	}
}

// genThrough tries every word that the rack plus the tile's letter can form,
// laid along dir so that one of its occurrences of the letter sits on the
// tile.
func (gen *Generator) genThrough(rack *alphabet.Rack, tile board.Tile, dir move.Direction) {
	letter := tile.State.Letter()
	if !alphabet.IsLetter(letter) || dir == move.NoDirection {
		return
	}
	augmented, err := rack.WithLetter(letter)
	if err != nil {
		return
	}
	for _, w := range gen.matcher.PossibleWords(augmented) {
		for i, c := range []rune(w) {
			if c != letter {
				continue
			}
			blanks, ok := rack.BlankPositions(w, i)
			if !ok {
				continue
			}
			play := &gen.placeholder
			*play = move.Move{
				Word:      w,
				Direction: dir,
				PivotX:    tile.X,
				PivotY:    tile.Y,
				Blanks:    blanks,
			}
			if tile.Value == 0 {
				// a blank on the board scores nothing through its pivot
				play.AddBlank(i)
			}
			if dir == move.Vertical {
				play.AnchorX, play.AnchorY = tile.X, tile.Y-i
			} else {
				play.AnchorX, play.AnchorY = tile.X-i, tile.Y
			}
			gen.calc.Score(play)
			gen.evaluated++
			gen.recorder(gen, play)
		}
	}
}

// ProbabilisticGenerator only builds through the few tiles the probability
// ranker likes best, each in its best direction.
type ProbabilisticGenerator struct {
	*Generator
	topK int
}

func NewProbabilisticGenerator(matcher *anagrammer.Matcher, lex lexicon.Lexicon,
	calc equity.Calculator, topK int) *ProbabilisticGenerator {
	if topK <= 0 {
		topK = DefaultTopK
	}
	return &ProbabilisticGenerator{Generator: newGenerator(matcher, lex, calc), topK: topK}
}

func (gen *ProbabilisticGenerator) GenAll(b *board.Board, rack *alphabet.Rack) *move.Move {
	gen.reset(b)
	if b.IsEmpty() {
		gen.genOpening(rack)
		return gen.result()
	}
	for _, tile := range HighestProbabilities(b, gen.topK) {
		dir := BestDirection(b, tile.X, tile.Y)
		log.Debug().Str("tile", tile.String()).Str("dir", dir.String()).Msg("anchor")
		gen.genThrough(rack, tile, dir)
	}
	return gen.result()
}

func (gen *ProbabilisticGenerator) Type() string {
	return MethodProbabilistic
}

// ExhaustiveGenerator builds through every tile on the board in both
// directions. It is slower but never misses a play the probabilistic search
// would find.
type ExhaustiveGenerator struct {
	*Generator
}

func NewExhaustiveGenerator(matcher *anagrammer.Matcher, lex lexicon.Lexicon,
	calc equity.Calculator) *ExhaustiveGenerator {
	return &ExhaustiveGenerator{Generator: newGenerator(matcher, lex, calc)}
}

func (gen *ExhaustiveGenerator) GenAll(b *board.Board, rack *alphabet.Rack) *move.Move {
	gen.reset(b)
	if b.IsEmpty() {
		gen.genOpening(rack)
		return gen.result()
	}
	for _, tile := range b.OccupiedTiles() {
		gen.genThrough(rack, *tile, move.Horizontal)
		gen.genThrough(rack, *tile, move.Vertical)
	}
	return gen.result()
}

func (gen *ExhaustiveGenerator) Type() string {
	return MethodExhaustive
}

// NewGenerator builds the generator for a search method name.
func NewGenerator(method string, matcher *anagrammer.Matcher, lex lexicon.Lexicon,
	calc equity.Calculator, topK int) (MoveGenerator, error) {
	switch method {
	case MethodProbabilistic, "":
		return NewProbabilisticGenerator(matcher, lex, calc, topK), nil
	case MethodExhaustive:
		return NewExhaustiveGenerator(matcher, lex, calc), nil
	}
	return nil, fmt.Errorf("%w: %v", ErrUnknownSearchMethod, method)
}

// FindBestWord runs the default probabilistic search with the dictionary as
// both the word source and the cross-word lexicon.
func FindBestWord(b *board.Board, rack *alphabet.Rack, dict *lexicon.Dictionary,
	calc equity.Calculator) *move.Move {
	gen := NewProbabilisticGenerator(anagrammer.NewMatcher(dict), dict, calc, DefaultTopK)
	return gen.GenAll(b, rack)
}
