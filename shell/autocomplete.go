package shell

import (
	"strings"

	"github.com/kballard/go-shellquote"

	"github.com/crossplay/bestword/movegen"
)

// ShellCompleter provides context-aware autocomplete for shell commands
type ShellCompleter struct {
	sc *ShellController
}

func NewShellCompleter(sc *ShellController) *ShellCompleter {
	return &ShellCompleter{sc: sc}
}

// CommandMetadata holds autocomplete information for a command
type CommandMetadata struct {
	Options []string
	Args    []string
}

var commandMetadata = map[string]CommandMetadata{
	"board":    {Args: []string{"clear"}},
	"gen":      {Options: []string{"-method"}},
	"words":    {Options: []string{"-min", "-exact"}},
	"autoplay": {Options: []string{"-games", "-threads", "-logfile", "-seeds", "-saveseeds"}, Args: []string{"analyze"}},
	"remote":   {Options: []string{"-via", "-method"}},
	"set":      {Args: settableKeys},
	"help": {Args: []string{"board", "gen", "check", "words", "autoplay", "set",
		"script", "remote"}},
}

var commandNames = []string{
	"help", "board", "set", "rack", "best", "gen", "probs", "check", "words",
	"show", "place", "autoplay", "script", "remote", "exit",
}

var boolValues = []string{"true", "false"}

// Do implements the readline.AutoComplete interface
func (c *ShellCompleter) Do(line []rune, pos int) ([][]rune, int) {
	text := string(line[:pos])

	// shellquote handles quoted strings; fall back to plain splitting on an
	// unfinished quote.
	fields, err := shellquote.Split(text)
	if err != nil {
		fields = strings.Fields(text)
	}
	endsWithSpace := len(text) > 0 && text[len(text)-1] == ' '

	var prefix string
	var completions []string

	if len(fields) == 0 || (len(fields) == 1 && !endsWithSpace) {
		if len(fields) == 1 {
			prefix = fields[0]
		}
		completions = commandNames
	} else {
		cmdName := fields[0]
		if !endsWithSpace {
			prefix = fields[len(fields)-1]
		}
		var lastCompleteField string
		if endsWithSpace {
			lastCompleteField = fields[len(fields)-1]
		} else if len(fields) > 1 {
			lastCompleteField = fields[len(fields)-2]
		}

		if strings.HasPrefix(lastCompleteField, "-") {
			switch strings.TrimPrefix(lastCompleteField, "-") {
			case "method":
				completions = []string{movegen.MethodProbabilistic, movegen.MethodExhaustive}
			case "via":
				completions = []string{remoteViaNats, remoteViaLambda}
			case "exact":
				completions = boolValues
			}
		}
		if cmdName == "set" && len(fields) >= 2 && (endsWithSpace || len(fields) > 2) {
			switch fields[1] {
			case "search-method":
				completions = []string{movegen.MethodProbabilistic, movegen.MethodExhaustive}
			case "blanks", "bonus-tiles":
				completions = boolValues
			case "board-layout":
				completions = []string{"classic", "standard"}
			default:
				completions = []string{}
			}
		}

		if completions == nil {
			if metadata, exists := commandMetadata[cmdName]; exists {
				if strings.HasPrefix(prefix, "-") || len(metadata.Args) == 0 {
					completions = metadata.Options
				} else {
					completions = metadata.Args
				}
			}
		}
	}

	var matches [][]rune
	for _, completion := range completions {
		if strings.HasPrefix(completion, prefix) {
			matches = append(matches, []rune(completion[len(prefix):]))
		}
	}
	return matches, len(prefix)
}
