package main

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/matryer/is"

	"github.com/crossplay/bestword/runner"
	"github.com/crossplay/bestword/testhelpers"
)

func TestRun(t *testing.T) {
	is := is.New(t)
	cfg := testhelpers.Config()
	cfg.Set(flagRack, "QUENEST")
	var out bytes.Buffer
	is.NoErr(run(context.Background(), cfg, &out))
	is.True(strings.HasSuffix(out.String(), "QUEENS at (4, 7) going right for 30 points\n"))
	is.True(strings.Contains(out.String(), "Q U E E N S "))
}

func TestRunJSON(t *testing.T) {
	is := is.New(t)
	cfg := testhelpers.Config()
	cfg.Set(flagRack, "SPKMETA")
	cfg.Set(flagBoardFile, testhelpers.BoardPath("crowded.txt"))
	cfg.Set(flagJSON, true)
	var out bytes.Buffer
	is.NoErr(run(context.Background(), cfg, &out))
	resp := runner.SolveResponse{}
	is.NoErr(json.Unmarshal(out.Bytes(), &resp))
	is.True(resp.Move.Found())
	is.True(resp.Move.HasPivot())
}

func TestRunErrors(t *testing.T) {
	is := is.New(t)
	cfg := testhelpers.Config()
	is.True(run(context.Background(), cfg, &bytes.Buffer{}) != nil)
	cfg.Set(flagRack, "AB")
	cfg.Set(flagBoardFile, testhelpers.BoardPath("no-such-board.txt"))
	is.True(run(context.Background(), cfg, &bytes.Buffer{}) != nil)
}
