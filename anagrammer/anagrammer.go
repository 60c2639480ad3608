package anagrammer

import (
	"sync"

	"github.com/hashicorp/golang-lru/simplelru"
	"github.com/pbnjay/memory"
	"github.com/rs/zerolog/log"

	"github.com/crossplay/bestword/alphabet"
	"github.com/crossplay/bestword/lexicon"
)

type Mode int

const (
	// ModeBuild finds every word that can be built from some of the tiles.
	ModeBuild Mode = iota
	// ModeExact finds words that use every tile.
	ModeExact
)

// PossibleWords returns every dictionary word that is a sub-multiset of the
// rack, in dictionary order.
func PossibleWords(dict *lexicon.Dictionary, rack *alphabet.Rack) []string {
	var words []string
	for _, w := range dict.Words() {
		if rack.CanForm(w) {
			words = append(words, w)
		}
	}
	return words
}

// Anagram is PossibleWords with a mode and a minimum word length, for
// interactive word searches.
func Anagram(dict *lexicon.Dictionary, rack *alphabet.Rack, mode Mode, minLength int) []string {
	ntiles := rack.NumTiles()
	answers := []string{}
	for _, w := range PossibleWords(dict, rack) {
		l := len([]rune(w))
		if l < minLength {
			continue
		}
		if mode == ModeExact && l != ntiles {
			continue
		}
		answers = append(answers, w)
	}
	return answers
}

// Matcher memoizes PossibleWords per rack in an LRU. A search asks for the
// same augmented racks over and over (one per anchor letter), and batch
// solving asks for the same racks across boards. It is safe for concurrent
// use.
type Matcher struct {
	dict *lexicon.Dictionary

	mu  sync.Mutex
	lru *simplelru.LRU
}

// memoCapacity sizes the memo from the machine's memory: roughly one entry
// per megabyte, within sane bounds.
func memoCapacity() int {
	entries := int(memory.TotalMemory() >> 20)
	return max(256, min(entries, 1<<16))
}

func NewMatcher(dict *lexicon.Dictionary) *Matcher {
	return newMatcherSize(dict, memoCapacity())
}

func newMatcherSize(dict *lexicon.Dictionary, size int) *Matcher {
	log.Debug().Int("capacity", size).Msg("creating-word-matcher")
	m := &Matcher{dict: dict}
	m.lru, _ = simplelru.NewLRU(size, nil)
	return m
}

func (m *Matcher) Dictionary() *lexicon.Dictionary {
	return m.dict
}

// Len is the number of racks currently memoized.
func (m *Matcher) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lru.Len()
}

// PossibleWords is the memoized form of the package-level function. The
// returned slice is shared and must not be modified.
func (m *Matcher) PossibleWords(rack *alphabet.Rack) []string {
	key := rack.Hashable()

	m.mu.Lock()
	if words, ok := m.lru.Get(key); ok {
		m.mu.Unlock()
		return words.([]string)
	}
	m.mu.Unlock()

	words := PossibleWords(m.dict, rack)

	m.mu.Lock()
	m.lru.Add(key, words)
	m.mu.Unlock()
	return words
}
