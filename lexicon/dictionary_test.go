package lexicon

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matryer/is"

	"github.com/crossplay/bestword/config"
)

const testDictionary = "../testdata/dictionary.txt"

func TestLoad(t *testing.T) {
	is := is.New(t)
	d, err := Load(testDictionary)
	is.NoErr(err)
	is.Equal(d.Name(), "dictionary")
	is.True(d.HasWord("QUEENS"))
	is.True(d.HasWord("queens"))
	is.True(!d.HasWord("QUEENSS"))
	// file order is preserved
	is.Equal(d.Words()[0], "QUEEN")
	is.Equal(d.Words()[1], "QUEENS")
}

func TestLoadMissing(t *testing.T) {
	is := is.New(t)
	_, err := Load("../testdata/no-such-file.txt")
	is.True(errors.Is(err, ErrDictionaryUnavailable))
}

func TestLoadEmptyFile(t *testing.T) {
	is := is.New(t)
	path := filepath.Join(t.TempDir(), "empty.txt")
	is.NoErr(os.WriteFile(path, []byte("\n\n"), 0o644))
	_, err := Load(path)
	is.True(errors.Is(err, ErrDictionaryUnavailable))
}

func TestReadDeduplicates(t *testing.T) {
	is := is.New(t)
	d, err := Read("small", strings.NewReader("cat\nDOG\n\n  Cat \nbird\n"))
	is.NoErr(err)
	is.Equal(d.Words(), []string{"CAT", "DOG", "BIRD"})
	is.Equal(d.Len(), 3)
}

func TestCacheLoadFunc(t *testing.T) {
	is := is.New(t)
	cfg := config.DefaultConfig()
	d, err := CacheLoadFunc(&cfg, "dictionary:"+testDictionary)
	is.NoErr(err)
	is.True(d.HasWord("ALPHA"))
	_, err = CacheLoadFunc(&cfg, "words:"+testDictionary)
	is.True(err != nil)
}

func TestAcceptAll(t *testing.T) {
	is := is.New(t)
	var lex Lexicon = AcceptAll{}
	is.True(lex.HasWord("ZZZQ"))
}
