package automatic

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/crossplay/bestword/stats"
)

// ReadTurnLogs reads every turn from an autoplay log.
func ReadTurnLogs(r io.Reader) ([]*TurnLog, error) {
	dec := yaml.NewDecoder(r)
	var turns []*TurnLog
	for {
		tl := &TurnLog{}
		err := dec.Decode(tl)
		if errors.Is(err, io.EOF) {
			return turns, nil
		}
		if err != nil {
			return nil, fmt.Errorf("turn %d: %w", len(turns)+1, err)
		}
		turns = append(turns, tl)
	}
}

// AnalyzeLogFile analyzes the given autoplay log and spits out a bunch of
// statistics.
func AnalyzeLogFile(filepath string) (string, error) {
	file, err := os.Open(filepath)
	if err != nil {
		return "", err
	}
	defer file.Close()
	turns, err := ReadTurnLogs(file)
	if err != nil {
		return "", err
	}

	finals := map[string]*TurnLog{}
	var order []string
	points := make([]float64, 0, len(turns))
	best := &TurnLog{}
	for _, tl := range turns {
		points = append(points, float64(tl.Points))
		if tl.Points > best.Points {
			best = tl
		}
		last, ok := finals[tl.GameID]
		if !ok {
			order = append(order, tl.GameID)
		}
		if !ok || tl.Turn > last.Turn {
			finals[tl.GameID] = tl
		}
	}
	scores := make([]float64, len(order))
	lengths := make([]float64, len(order))
	for i, id := range order {
		scores[i] = float64(finals[id].Total)
		lengths[i] = float64(finals[id].Turn)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Games played: %d\n", len(order))
	fmt.Fprintf(&sb, "Score: %v\n", stats.Summarize(scores))
	fmt.Fprintf(&sb, "Turns: %v\n", stats.Summarize(lengths))
	fmt.Fprintf(&sb, "Points per turn: %v\n", stats.Summarize(points))
	if best.Points > 0 {
		fmt.Fprintf(&sb, "Best turn: %v for %d (game %v, turn %d)\n",
			best.Play, best.Points, best.GameID, best.Turn)
	}
	return sb.String(), nil
}
