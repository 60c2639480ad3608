package lexicon

import (
	wglconfig "github.com/domino14/word-golib/config"
	"github.com/domino14/word-golib/kwg"
	"github.com/domino14/word-golib/tilemapping"

	"github.com/crossplay/bestword/alphabet"
)

// KWGLexicon validates words against a compiled KWG word graph, such as the
// lexica shipped in the data directory.
type KWGLexicon struct {
	name string
	lex  kwg.Lexicon
	alph *tilemapping.TileMapping
}

func NewKWGLexicon(cfg *wglconfig.Config, name string) (*KWGLexicon, error) {
	k, err := kwg.GetKWG(cfg, name)
	if err != nil {
		return nil, err
	}
	return &KWGLexicon{
		name: name,
		lex:  kwg.Lexicon{KWG: *k},
		alph: k.GetAlphabet(),
	}, nil
}

func (l *KWGLexicon) Name() string {
	return l.name
}

func (l *KWGLexicon) HasWord(word string) bool {
	mw, err := tilemapping.ToMachineWord(alphabet.Normalize(word), l.alph)
	if err != nil {
		return false
	}
	return l.lex.HasWord(mw)
}
