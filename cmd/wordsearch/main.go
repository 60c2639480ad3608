// Command wordsearch lists the dictionary words that can be spelled from a
// set of letters.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"

	"github.com/crossplay/bestword/alphabet"
	"github.com/crossplay/bestword/anagrammer"
	"github.com/crossplay/bestword/cache"
	"github.com/crossplay/bestword/config"
	"github.com/crossplay/bestword/lexicon"
)

const (
	flagFour = "four"
	// Words shorter than this are never listed.
	minLength     = 3
	minLengthFour = 4
)

func flags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("wordsearch", pflag.ContinueOnError)
	fs.BoolP(flagFour, "f", false, "only list words of four letters or more")
	return fs
}

func search(dict *lexicon.Dictionary, letters string, four bool) ([]string, error) {
	rack, err := alphabet.RackFromString(letters)
	if err != nil {
		return nil, err
	}
	// Only the given letters count; ? is not a wildcard here.
	rack.SetLiteralBlanks(true)
	min := minLength
	if four {
		min = minLengthFour
	}
	return anagrammer.Anagram(dict, rack, anagrammer.ModeBuild, min), nil
}

func run(cfg *config.Config, w io.Writer) error {
	args := cfg.Args()
	if len(args) != 1 {
		return errors.New("usage: wordsearch [-f] <letters>")
	}
	dict, err := cache.Load(cfg, "dictionary:"+cfg.DictionaryPath(), lexicon.CacheLoadFunc)
	if err != nil {
		return err
	}
	words, err := search(dict, args[0], cfg.GetBool(flagFour))
	if err != nil {
		return err
	}
	for _, word := range words {
		fmt.Fprintln(w, word)
	}
	return nil
}

func main() {
	ex, err := os.Executable()
	if err != nil {
		panic(err)
	}
	cfg := &config.Config{}
	if err := cfg.Load(os.Args[1:], flags()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	cfg.AdjustRelativePaths(filepath.Dir(ex))
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.WarnLevel)
	if cfg.GetBool(config.ConfigDebug) {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	if err := run(cfg, os.Stdout); err != nil {
		log.Error().Err(err).Msg("wordsearch")
		os.Exit(1)
	}
}
