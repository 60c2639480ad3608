package lexicon

// Lexicon answers word-membership questions. Words are compared in
// uppercase.
type Lexicon interface {
	Name() string
	HasWord(word string) bool
}

// AcceptAll accepts every word. It is handy in tests that only care about
// geometry or scoring.
type AcceptAll struct{}

func (lex AcceptAll) Name() string {
	return "AcceptAll"
}

func (lex AcceptAll) HasWord(word string) bool {
	return true
}
