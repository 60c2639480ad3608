package shell

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/crossplay/bestword/alphabet"
	"github.com/crossplay/bestword/anagrammer"
	"github.com/crossplay/bestword/automatic"
	"github.com/crossplay/bestword/board"
	"github.com/crossplay/bestword/bot"
	"github.com/crossplay/bestword/config"
	"github.com/crossplay/bestword/move"
	"github.com/crossplay/bestword/movegen"
	"github.com/crossplay/bestword/runner"
	"github.com/crossplay/bestword/stats"
)

const (
	defaultGenPlays  = 15
	histogramWidth   = 40
	defaultWordsMin  = 2
	remoteNatsTries  = 3
	remoteViaNats    = "nats"
	remoteViaLambda  = "lambda"
	defaultAutoGames = 10
)

// settableKeys are the config keys `set` accepts.
var settableKeys = []string{
	config.ConfigSearchMethod, config.ConfigTopK, config.ConfigBlanks,
	config.ConfigBoardLayout, config.ConfigBonusTiles, config.ConfigDictionary,
	config.ConfigLexicon, config.ConfigSolverThreads, config.ConfigResultsDB,
	config.ConfigNatsURL, config.ConfigNatsSubject, config.ConfigLambdaFunction,
}

func (sc *ShellController) settingsText() string {
	var sb strings.Builder
	sb.WriteString("Settings:\n")
	for _, key := range settableKeys {
		fmt.Fprintf(&sb, "  %s: %v\n", key, sc.config.Get(key))
	}
	return sb.String()
}

func (sc *ShellController) set(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) == 0 {
		return msg(sc.settingsText()), nil
	}
	key := cmd.args[0]
	found := false
	for _, k := range settableKeys {
		found = found || k == key
	}
	if !found {
		return nil, errors.New("no such setting: " + key)
	}
	if len(cmd.args) == 1 {
		return msg(fmt.Sprintf("%s: %v", key, sc.config.Get(key))), nil
	}
	old := sc.config.Get(key)
	value := strings.Join(cmd.args[1:], " ")
	sc.config.Set(key, value)
	if err := sc.initSolver(); err != nil {
		sc.config.Set(key, old)
		return nil, err
	}
	return msg("set " + key + " to " + value), nil
}

func (sc *ShellController) resolvePath(name string) string {
	if _, err := os.Stat(name); err == nil || filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(sc.config.GetString(config.ConfigDataPath), "boards", name)
}

func (sc *ShellController) loadBoard(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) == 0 {
		return sc.show(cmd)
	}
	if cmd.args[0] == "clear" {
		sc.board = board.NewBoard()
	} else {
		b, err := board.Load(sc.resolvePath(cmd.args[0]))
		if err != nil {
			return nil, err
		}
		sc.board = b
	}
	sc.curPlays, sc.lastBest = nil, nil
	return sc.show(cmd)
}

func (sc *ShellController) setRack(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) != 1 {
		return nil, errors.New("usage: rack <letters>")
	}
	rack, err := sc.solver.ParseRack(cmd.args[0])
	if err != nil {
		return nil, err
	}
	sc.rack = rack
	sc.curPlays, sc.lastBest = nil, nil
	return msg("rack: " + rack.String()), nil
}

func (sc *ShellController) show(cmd *shellcmd) (*Response, error) {
	out := sc.board.ToDisplayText(sc.bonus)
	if sc.rack != nil {
		out += "\nRack: " + sc.rack.String()
	}
	return msg(out), nil
}

func (sc *ShellController) best(cmd *shellcmd) (*Response, error) {
	if sc.rack == nil {
		return nil, errNoRack
	}
	m, err := sc.solver.SolveBoard(sc.board.Copy(), sc.rack)
	if err != nil {
		return nil, err
	}
	sc.lastBest = m
	return msg(m.Describe()), nil
}

func (sc *ShellController) generate(cmd *shellcmd) (*Response, error) {
	if sc.rack == nil {
		return nil, errNoRack
	}
	n := defaultGenPlays
	if len(cmd.args) > 0 {
		var err error
		if n, err = strconv.Atoi(cmd.args[0]); err != nil {
			return nil, err
		}
	}
	gen, err := sc.solver.NewGenerator(cmd.options["method"])
	if err != nil {
		return nil, err
	}
	gen.SetPlayRecorder(movegen.AllPlaysRecorder)
	sc.lastBest = gen.GenAll(sc.board.Copy(), sc.rack)
	plays := gen.Plays()
	if len(plays) > n {
		plays = plays[:n]
	}
	sc.curPlays = plays
	if len(plays) == 0 {
		return msg("no move found"), nil
	}
	return msg(runner.ShowPlays(plays)), nil
}

func (sc *ShellController) probs(cmd *shellcmd) (*Response, error) {
	b := sc.board.Copy()
	movegen.CalcProbabilities(b)
	var values []float64
	for _, t := range b.OccupiedTiles() {
		if t.Probability > 0 {
			values = append(values, t.Probability)
		}
	}
	var sb strings.Builder
	sb.WriteString(b.ProbabilityGrid())
	sb.WriteString("\n")
	if err := stats.FprintHistogram(&sb, values, histogramWidth); err != nil {
		return nil, err
	}
	sb.WriteString("\nBest anchors:\n")
	for i, t := range movegen.HighestProbabilities(b, sc.solver.Options().TopK) {
		fmt.Fprintf(&sb, "%d: %c at %v (%d, %d) %.2f %v\n", i+1, t.State.Letter(),
			move.ToBoardGameCoords(t.Y, t.X, false), t.X, t.Y, t.Probability,
			movegen.BestDirection(b, t.X, t.Y))
	}
	return msg(sb.String()), nil
}

// inferPivot makes the first occupied square under m its pivot. A blank on
// that square is marked as one on the move.
func (sc *ShellController) inferPivot(m *move.Move) {
	m.PivotX, m.PivotY = move.NoPivot, move.NoPivot
	for i := 0; i < m.Length(); i++ {
		x, y := m.Coords(i)
		if sc.board.Get(x, y).IsLetter() {
			m.PivotX, m.PivotY = x, y
			if sc.board.Tile(x, y).Value == 0 {
				m.AddBlank(i)
			}
			return
		}
	}
}

func (sc *ShellController) check(cmd *shellcmd) (*Response, error) {
	m, err := runner.ParsePlacement(cmd.args)
	if err != nil {
		return nil, errors.New("usage: check <coord> <word>")
	}
	sc.inferPivot(m)
	if !sc.solver.Dictionary().HasWord(m.Word) {
		return msg(m.Word + " is not in the dictionary"), nil
	}
	sc.solver.Calculator().Score(m)
	if !movegen.IsPossibleMove(sc.board, sc.solver.Lexicon(), m) {
		return msg(m.TilesString() + " does not fit at " + m.BoardCoords()), nil
	}
	return msg(m.Describe()), nil
}

func (sc *ShellController) words(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) != 1 {
		return nil, errors.New("usage: words <letters> [-min n] [-exact true]")
	}
	rack, err := alphabet.RackFromString(cmd.args[0])
	if err != nil {
		return nil, err
	}
	minLength, err := cmd.intOption("min", defaultWordsMin)
	if err != nil {
		return nil, err
	}
	mode := anagrammer.ModeBuild
	if cmd.boolOption("exact") {
		mode = anagrammer.ModeExact
	}
	found := anagrammer.Anagram(sc.solver.Dictionary(), rack, mode, minLength)
	return msg(fmt.Sprintf("%d words\n%s", len(found), strings.Join(found, " "))), nil
}

// place commits the last best move, a play from the `gen` list (#n), or a
// typed placement to the board.
func (sc *ShellController) place(cmd *shellcmd) (*Response, error) {
	var m *move.Move
	switch {
	case len(cmd.args) == 0:
		if sc.lastBest == nil || !sc.lastBest.Found() {
			return nil, errors.New("nothing to place; run `best` or `gen` first")
		}
		m = sc.lastBest
	case len(cmd.args) == 1 && strings.HasPrefix(cmd.args[0], "#"):
		idx, err := strconv.Atoi(cmd.args[0][1:])
		if err != nil {
			return nil, err
		}
		if idx < 1 || idx > len(sc.curPlays) {
			return nil, errors.New("play outside range")
		}
		m = sc.curPlays[idx-1]
	default:
		var err error
		m, err = runner.ParsePlacement(cmd.args)
		if err != nil {
			return nil, err
		}
		sc.inferPivot(m)
	}
	b := sc.board.Copy()
	if _, err := b.PlaceMove(m); err != nil {
		return nil, err
	}
	sc.board = b
	out := "placed " + m.ShortDescription()
	if sc.rack != nil {
		rack := sc.rack.Copy()
		if err := rack.Take(m.Word, m.PivotIndex(), m.Blanks); err != nil {
			log.Debug().Err(err).Msg("rack-unchanged")
		} else {
			sc.rack = rack
			out += "; rack: " + rack.String()
		}
	}
	sc.curPlays, sc.lastBest = nil, nil
	log.Debug().Str("move", m.String()).Msg("placed")
	return msg(out + "\n" + sc.board.ToDisplayText(sc.bonus)), nil
}

func (sc *ShellController) autoplay(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) == 2 && cmd.args[0] == "analyze" {
		out, err := automatic.AnalyzeLogFile(cmd.args[1])
		if err != nil {
			return nil, err
		}
		return msg(out), nil
	}
	games, err := cmd.intOption("games", defaultAutoGames)
	if err != nil {
		return nil, err
	}
	threads, err := cmd.intOption("threads", sc.solver.Options().Threads)
	if err != nil {
		return nil, err
	}
	var seeds [][32]byte
	if path, ok := cmd.options["seeds"]; ok {
		if seeds, err = automatic.LoadSeeds(path); err != nil {
			return nil, err
		}
		if games > len(seeds) {
			games = len(seeds)
		}
	} else if path, ok := cmd.options["saveseeds"]; ok {
		seeds = automatic.GenerateSeeds(games)
		if err := automatic.SaveSeeds(seeds, path); err != nil {
			return nil, err
		}
	}
	res, err := automatic.PlayGames(context.Background(), sc.solver, games, threads,
		cmd.options["logfile"], seeds)
	if err != nil {
		return nil, err
	}
	return msg(res.String()), nil
}

func (sc *ShellController) remote(cmd *shellcmd) (*Response, error) {
	if sc.rack == nil {
		return nil, errNoRack
	}
	ctx := context.Background()
	req := runner.SolveRequest{Board: sc.board.ToText(), Rack: sc.rack.String(), Method: cmd.options["method"]}
	var resp *runner.SolveResponse
	switch via := cmd.options["via"]; via {
	case "", remoteViaNats:
		nc, err := bot.Connect(ctx, sc.config.GetString(config.ConfigNatsURL), remoteNatsTries)
		if err != nil {
			return nil, err
		}
		defer nc.Close()
		resp, err = bot.NewClient(nc, sc.config.GetString(config.ConfigNatsSubject)).Solve(ctx, req)
		if err != nil {
			return nil, err
		}
	case remoteViaLambda:
		client, err := bot.NewLambdaClient(ctx, sc.config.GetString(config.ConfigLambdaFunction))
		if err != nil {
			return nil, err
		}
		resp, err = client.Solve(ctx, req)
		if err != nil {
			return nil, err
		}
	default:
		return nil, errors.New("unknown remote: " + via)
	}
	sc.lastBest = resp.Move
	return msg(fmt.Sprintf("%s (%d ms)", resp.Description, resp.ElapsedMs)), nil
}
