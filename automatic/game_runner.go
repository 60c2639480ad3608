// Package automatic plays solitaire games with the solver: draw a rack, play
// the best word, refill, and repeat until the tiles run out or nothing fits.
package automatic

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/crossplay/bestword/alphabet"
	"github.com/crossplay/bestword/board"
	"github.com/crossplay/bestword/movegen"
	"github.com/crossplay/bestword/runner"
	"github.com/crossplay/bestword/stats"
)

// RackSize is the number of tiles drawn up to after every turn.
const RackSize = 7

const (
	EndNoMove     = "no-move"
	EndOutOfTiles = "out-of-tiles"
)

// TurnLog is one line of the autoplay log.
type TurnLog struct {
	GameID  string `yaml:"game_id"`
	Turn    int    `yaml:"turn"`
	Rack    string `yaml:"rack"`
	Play    string `yaml:"play"`
	Through string `yaml:"through,omitempty"`
	Points  int    `yaml:"points"`
	Total   int    `yaml:"total"`
	InBag   int    `yaml:"in_bag"`
}

type GameResult struct {
	GameID    string `yaml:"game_id"`
	Score     int    `yaml:"score"`
	Turns     int    `yaml:"turns"`
	TilesLeft int    `yaml:"tiles_left"`
	End       string `yaml:"end"`
}

// GameRunner is the master struct here for the automatic game logic. One
// runner plays one game at a time.
type GameRunner struct {
	solver  *runner.Solver
	gen     movegen.MoveGenerator
	logchan chan<- *TurnLog

	gameID string
	board  *board.Board
	bag    *alphabet.Bag
	rack   *alphabet.Rack
	turn   int
	score  int
	// turnPoints collects the points of every turn this runner has played,
	// across games.
	turnPoints *stats.Statistic
}

// NewGameRunner makes a runner that sends its turns to logchan, which may be
// nil.
func NewGameRunner(logchan chan<- *TurnLog, solver *runner.Solver) (*GameRunner, error) {
	gen, err := solver.NewGenerator("")
	if err != nil {
		return nil, err
	}
	return &GameRunner{
		solver:     solver,
		gen:        gen,
		logchan:    logchan,
		turnPoints: &stats.Statistic{},
	}, nil
}

// StartGame clears the board and draws a new rack. A nil seed uses the
// process-wide random source.
func (r *GameRunner) StartGame(seed *[32]byte) {
	r.board = board.NewBoard()
	if seed != nil {
		r.bag = alphabet.NewSeededBag(*seed)
		r.gameID = base64.RawURLEncoding.EncodeToString(seed[:6])
	} else {
		r.bag = alphabet.NewBag()
		r.gameID = lo.RandomString(8, lo.AlphanumericCharset)
	}
	r.rack = alphabet.NewRack()
	r.rack.SetLiteralBlanks(r.solver.Options().LiteralBlanks)
	r.turn, r.score = 0, 0
	r.refill()
}

func (r *GameRunner) refill() {
	for _, t := range r.bag.DrawAtMost(RackSize - r.rack.NumTiles()) {
		if err := r.rack.Add(t); err != nil {
			// The bag only holds valid tiles.
			panic(err)
		}
	}
}

func (r *GameRunner) GameID() string {
	return r.gameID
}

func (r *GameRunner) Board() *board.Board {
	return r.board
}

func (r *GameRunner) Rack() *alphabet.Rack {
	return r.rack
}

func (r *GameRunner) Bag() *alphabet.Bag {
	return r.bag
}

func (r *GameRunner) Score() int {
	return r.score
}

// PlayTurn plays the best move for the current rack and draws back up. It
// returns false once the game is over.
func (r *GameRunner) PlayTurn() (bool, error) {
	if r.rack.NumTiles() == 0 {
		return false, nil
	}
	rack := r.rack.String()
	m := r.gen.GenAll(r.board, r.rack)
	if !m.Found() {
		return false, nil
	}
	if _, err := r.board.PlaceMove(m); err != nil {
		return false, fmt.Errorf("game %v turn %d: %w", r.gameID, r.turn+1, err)
	}
	if err := r.rack.Take(m.Word, m.PivotIndex(), m.Blanks); err != nil {
		return false, fmt.Errorf("game %v turn %d: %w", r.gameID, r.turn+1, err)
	}
	r.turn++
	r.score += m.Points
	r.turnPoints.Push(float64(m.Points))
	r.refill()

	tl := &TurnLog{
		GameID: r.gameID,
		Turn:   r.turn,
		Rack:   rack,
		Play:   m.ShortDescription(),
		Points: m.Points,
		Total:  r.score,
		InBag:  r.bag.TilesRemaining(),
	}
	if m.HasPivot() {
		tl.Through = fmt.Sprintf("%c%d", 'A'+m.PivotX, m.PivotY+1)
	}
	log.Debug().Str("game", r.gameID).Int("turn", r.turn).Str("play", tl.Play).
		Int("points", m.Points).Msg("autoplay-turn")
	if r.logchan != nil {
		r.logchan <- tl
	}
	return true, nil
}

// PlayGame plays turns until the game ends or ctx is done.
func (r *GameRunner) PlayGame(ctx context.Context) (*GameResult, error) {
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		more, err := r.PlayTurn()
		if err != nil {
			return nil, err
		}
		if !more {
			break
		}
	}
	res := &GameResult{
		GameID:    r.gameID,
		Score:     r.score,
		Turns:     r.turn,
		TilesLeft: r.rack.NumTiles() + r.bag.TilesRemaining(),
		End:       EndNoMove,
	}
	if res.TilesLeft == 0 {
		res.End = EndOutOfTiles
	}
	log.Info().Str("game", r.gameID).Int("score", r.score).Int("turns", r.turn).
		Str("end", res.End).Msg("autoplay-game-over")
	return res, nil
}
