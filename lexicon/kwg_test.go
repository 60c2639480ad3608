package lexicon

import (
	"testing"

	wglconfig "github.com/domino14/word-golib/config"
	"github.com/matryer/is"
)

func TestKWGLexiconMissing(t *testing.T) {
	is := is.New(t)
	lex, err := NewKWGLexicon(&wglconfig.Config{DataPath: t.TempDir()}, "NOSUCHLEX")
	is.True(err != nil)
	is.True(lex == nil)
}
