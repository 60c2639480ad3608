package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/matryer/is"
	"github.com/spf13/pflag"
)

func TestDefaults(t *testing.T) {
	is := is.New(t)
	cfg := DefaultConfig()
	is.Equal(cfg.GetInt(ConfigTopK), 5)
	is.Equal(cfg.GetString(ConfigSearchMethod), "probabilistic")
	is.True(cfg.GetBool(ConfigBonusTiles))
	is.Equal(cfg.DictionaryPath(), filepath.Join("data", "dictionary.txt"))
	is.Equal(cfg.WGLConfig().DataPath, "./data")
}

func TestLoadFlagsAndArgs(t *testing.T) {
	is := is.New(t)
	cfg := &Config{}
	err := cfg.Load([]string{"--top-k", "9", "--bonus-tiles=false", "best", "now"})
	is.NoErr(err)
	is.Equal(cfg.GetInt(ConfigTopK), 9)
	is.Equal(cfg.GetBool(ConfigBonusTiles), false)
	is.Equal(cfg.Args(), []string{"best", "now"})
	// untouched flags keep their defaults
	is.Equal(cfg.GetString(ConfigBoardLayout), "classic")
}

func TestLoadExtraFlags(t *testing.T) {
	is := is.New(t)
	extra := pflag.NewFlagSet("tool", pflag.ContinueOnError)
	extra.String("rack", "", "")
	extra.BoolP("four", "f", false, "")
	cfg := &Config{}
	is.NoErr(cfg.Load([]string{"--rack", "AEIOU", "-f", "--top-k", "2"}, extra))
	is.Equal(cfg.GetString("rack"), "AEIOU")
	is.True(cfg.GetBool("four"))
	is.Equal(cfg.GetInt(ConfigTopK), 2)

	is.True((&Config{}).Load([]string{"--rack", "A"}) != nil)
}

func TestLoadEnv(t *testing.T) {
	is := is.New(t)
	t.Setenv("BESTWORD_SEARCH_METHOD", "exhaustive")
	cfg := &Config{}
	is.NoErr(cfg.Load(nil))
	is.Equal(cfg.GetString(ConfigSearchMethod), "exhaustive")
}

func TestLoadFile(t *testing.T) {
	is := is.New(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "bestword.yaml")
	is.NoErr(os.WriteFile(path, []byte("top-k: 3\nboard-layout: standard\n"), 0o644))

	cfg := &Config{}
	is.NoErr(cfg.Load([]string{"--config", path, "--top-k", "4"}))
	is.Equal(cfg.GetInt(ConfigTopK), 4) // flag beats file
	is.Equal(cfg.GetString(ConfigBoardLayout), "standard")
}

func TestBoardLayoutPath(t *testing.T) {
	is := is.New(t)
	cfg := DefaultConfig()
	is.Equal(cfg.BoardLayoutPath(), "classic")
	cfg.Set(ConfigBoardLayout, "layouts/wild.yaml")
	is.Equal(cfg.BoardLayoutPath(), filepath.Join("data", "layouts", "wild.yaml"))
}

func TestAdjustRelativePaths(t *testing.T) {
	is := is.New(t)
	cfg := DefaultConfig()
	cfg.Set(ConfigDataPath, "does-not-exist-here")
	cfg.AdjustRelativePaths("/opt/bestword")
	is.Equal(cfg.GetString(ConfigDataPath), "/opt/bestword/does-not-exist-here")
}
