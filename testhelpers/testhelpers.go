// Package testhelpers loads the fixtures under testdata/ for tests in any
// package.
package testhelpers

import (
	"path/filepath"
	"runtime"
	"testing"

	"github.com/crossplay/bestword/board"
	"github.com/crossplay/bestword/config"
	"github.com/crossplay/bestword/lexicon"
)

// DataPath is the absolute path of the repository's testdata directory.
func DataPath() string {
	_, file, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(file), "..", "testdata")
}

// BoardPath is the path of a fixture board such as "crowded.txt".
func BoardPath(name string) string {
	return filepath.Join(DataPath(), "boards", name)
}

// Config is the default configuration pointed at testdata.
func Config() *config.Config {
	cfg := config.DefaultConfig()
	cfg.Set(config.ConfigDataPath, DataPath())
	return &cfg
}

func Dictionary(t testing.TB) *lexicon.Dictionary {
	t.Helper()
	d, err := lexicon.Load(filepath.Join(DataPath(), "dictionary.txt"))
	if err != nil {
		t.Fatal(err)
	}
	return d
}

func Board(t testing.TB, name string) *board.Board {
	t.Helper()
	b, err := board.Load(BoardPath(name))
	if err != nil {
		t.Fatal(err)
	}
	return b
}
