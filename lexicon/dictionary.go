package lexicon

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/domino14/word-golib/cache"
	"github.com/rs/zerolog/log"

	"github.com/crossplay/bestword/alphabet"
	"github.com/crossplay/bestword/config"
)

var ErrDictionaryUnavailable = errors.New("dictionary unavailable")

// Dictionary is an immutable word list. It remembers the order words were
// read in, and answers membership queries from a set.
type Dictionary struct {
	name  string
	words []string
	set   map[string]struct{}
}

// NewDictionary builds a dictionary from words, keeping the first occurrence
// of each (normalized) word.
func NewDictionary(name string, words []string) *Dictionary {
	d := &Dictionary{
		name: name,
		set:  make(map[string]struct{}, len(words)),
	}
	for _, w := range words {
		d.add(w)
	}
	return d
}

func (d *Dictionary) add(w string) {
	w = alphabet.Normalize(w)
	if w == "" {
		return
	}
	if _, ok := d.set[w]; ok {
		return
	}
	d.set[w] = struct{}{}
	d.words = append(d.words, w)
}

// Read reads a word list, one word per line.
func Read(name string, r io.Reader) (*Dictionary, error) {
	d := &Dictionary{name: name, set: map[string]struct{}{}}
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		d.add(scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return d, nil
}

// Load reads the word list at path. An unreadable or empty file is reported
// as ErrDictionaryUnavailable rather than producing an empty dictionary.
func Load(path string) (*Dictionary, error) {
	f, _, err := cache.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrDictionaryUnavailable, path, err)
	}
	defer f.Close()
	d, err := Read(strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)), f)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrDictionaryUnavailable, path, err)
	}
	if d.Len() == 0 {
		return nil, fmt.Errorf("%w: %s has no words", ErrDictionaryUnavailable, path)
	}
	log.Debug().Str("path", path).Int("words", d.Len()).Msg("loaded-dictionary")
	return d, nil
}

// CacheLoadFunc loads a dictionary for the object cache. The key is
// "dictionary:<path>".
func CacheLoadFunc(cfg *config.Config, key string) (*Dictionary, error) {
	path, ok := strings.CutPrefix(key, "dictionary:")
	if !ok {
		return nil, errors.New("dictionary load func - bad cache key: " + key)
	}
	return Load(path)
}

func (d *Dictionary) Name() string {
	return d.name
}

func (d *Dictionary) HasWord(word string) bool {
	_, ok := d.set[alphabet.Normalize(word)]
	return ok
}

// Words returns the words in file order. The slice must not be modified.
func (d *Dictionary) Words() []string {
	return d.words
}

func (d *Dictionary) Len() int {
	return len(d.words)
}
