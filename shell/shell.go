package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"syscall"

	"github.com/chzyer/readline"
	"github.com/kballard/go-shellquote"
	"github.com/rs/zerolog/log"

	"github.com/crossplay/bestword/alphabet"
	"github.com/crossplay/bestword/board"
	"github.com/crossplay/bestword/cache"
	"github.com/crossplay/bestword/config"
	"github.com/crossplay/bestword/move"
	"github.com/crossplay/bestword/runner"
)

var (
	errNoData            = errors.New("no data in this line")
	errWrongOptionSyntax = errors.New("wrong format; all options need arguments")
	errNoRack            = errors.New("please set a rack first with the `rack` command")
)

type Response struct {
	message string
}

func msg(message string) *Response {
	return &Response{message: message}
}

// shellcmd is a parsed command line: positional args plus -key value
// options.
type shellcmd struct {
	cmd     string
	args    []string
	options map[string]string
}

func (c *shellcmd) intOption(key string, def int) (int, error) {
	v, ok := c.options[key]
	if !ok {
		return def, nil
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("option -%s: %w", key, err)
	}
	return i, nil
}

func (c *shellcmd) boolOption(key string) bool {
	return strings.ToLower(c.options[key]) == "true"
}

func extractFields(line string) (*shellcmd, error) {
	fields, err := shellquote.Split(line)
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, errNoData
	}
	cmd := &shellcmd{cmd: fields[0], options: map[string]string{}}
	for i := 1; i < len(fields); i++ {
		if strings.HasPrefix(fields[i], "-") && len(fields[i]) > 1 {
			if i == len(fields)-1 {
				return nil, errWrongOptionSyntax
			}
			cmd.options[fields[i][1:]] = fields[i+1]
			i++
			continue
		}
		cmd.args = append(cmd.args, fields[i])
	}
	return cmd, nil
}

// ShellController holds the position being worked on: a board, a rack, and
// the last search results.
type ShellController struct {
	l        *readline.Instance
	config   *config.Config
	execPath string

	solver *runner.Solver
	bonus  board.BonusMap

	board    *board.Board
	rack     *alphabet.Rack
	curPlays []*move.Move
	lastBest *move.Move
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func writeln(msg string, w io.Writer) {
	io.WriteString(w, msg)
	io.WriteString(w, "\n")
}

// newController sets up everything but the terminal.
func newController(cfg *config.Config, execPath string) (*ShellController, error) {
	sc := &ShellController{config: cfg, execPath: execPath, board: board.NewBoard()}
	if err := sc.initSolver(); err != nil {
		return nil, err
	}
	return sc, nil
}

func NewShellController(cfg *config.Config, execPath string) (*ShellController, error) {
	sc, err := newController(cfg, execPath)
	if err != nil {
		return nil, err
	}
	sc.l, err = readline.NewEx(&readline.Config{
		Prompt:          "\033[32mbestword>\033[0m ",
		HistoryFile:     "/tmp/bestword-readline.tmp",
		AutoComplete:    NewShellCompleter(sc),
		EOFPrompt:       "exit",
		InterruptPrompt: "^C",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		return nil, err
	}
	return sc, nil
}

// initSolver (re)builds the solver and bonus map from the current config.
func (sc *ShellController) initSolver() error {
	solver, err := runner.NewSolver(context.Background(), sc.config, runner.SolverOptions{})
	if err != nil {
		return err
	}
	bonus, err := cache.Load(sc.config, "layout:"+sc.config.BoardLayoutPath(), board.BonusMapLoadFunc)
	if err != nil {
		solver.Close()
		return err
	}
	if sc.solver != nil {
		sc.solver.Close()
	}
	sc.solver, sc.bonus = solver, bonus
	if sc.rack != nil {
		sc.rack.SetLiteralBlanks(solver.Options().LiteralBlanks)
	}
	sc.curPlays, sc.lastBest = nil, nil
	return nil
}

func (sc *ShellController) stderr() io.Writer {
	if sc.l == nil {
		return os.Stderr
	}
	return sc.l.Stderr()
}

func (sc *ShellController) showMessage(msg string) {
	writeln(msg, sc.stderr())
}

func (sc *ShellController) showError(err error) {
	sc.showMessage("Error: " + err.Error())
}

// Cleanup closes the solver's store.
func (sc *ShellController) Cleanup() {
	if sc.solver != nil {
		if err := sc.solver.Close(); err != nil {
			log.Err(err).Msg("closing-solver")
		}
	}
}

func (sc *ShellController) dispatch(cmd *shellcmd) (*Response, error) {
	switch cmd.cmd {
	case "board", "b":
		return sc.loadBoard(cmd)
	case "set":
		return sc.set(cmd)
	case "rack", "r":
		return sc.setRack(cmd)
	case "best":
		return sc.best(cmd)
	case "gen":
		return sc.generate(cmd)
	case "probs":
		return sc.probs(cmd)
	case "check":
		return sc.check(cmd)
	case "words":
		return sc.words(cmd)
	case "show", "s":
		return sc.show(cmd)
	case "place":
		return sc.place(cmd)
	case "autoplay":
		return sc.autoplay(cmd)
	case "script":
		return sc.script(cmd)
	case "remote":
		return sc.remote(cmd)
	case "help":
		if len(cmd.args) == 0 {
			return msg(usage()), nil
		}
		return msg(usageTopic(cmd.args[0])), nil
	default:
		return nil, fmt.Errorf("command %v not found", strconv.Quote(cmd.cmd))
	}
}

// Execute runs one line, as given on the command line.
func (sc *ShellController) Execute(sig chan os.Signal, line string) {
	sc.handleLine(sig, line)
}

// handleLine reports whether the shell should quit.
func (sc *ShellController) handleLine(sig chan os.Signal, line string) bool {
	cmd, err := extractFields(line)
	if err == errNoData {
		return false
	} else if err != nil {
		sc.showError(err)
		return false
	}
	if cmd.cmd == "exit" || cmd.cmd == "bye" {
		sig <- syscall.SIGINT
		return true
	}
	resp, err := sc.dispatch(cmd)
	if err != nil {
		sc.showError(err)
	} else if resp != nil && resp.message != "" {
		sc.showMessage(resp.message)
	}
	return false
}

func (sc *ShellController) Loop(sig chan os.Signal) {
	defer sc.l.Close()

	for {
		line, err := sc.l.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				sig <- syscall.SIGINT
				break
			} else {
				continue
			}
		} else if err == io.EOF {
			sig <- syscall.SIGINT
			break
		}
		if sc.handleLine(sig, strings.TrimSpace(line)) {
			break
		}
	}
	log.Debug().Msg("exiting-readline-loop")
}
