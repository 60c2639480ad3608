package config

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"

	wglconfig "github.com/domino14/word-golib/config"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	ConfigDataPath       = "data-path"
	ConfigDictionary     = "dictionary"
	ConfigLexicon        = "lexicon"
	ConfigBoardLayout    = "board-layout"
	ConfigBonusTiles     = "bonus-tiles"
	ConfigSearchMethod   = "search-method"
	ConfigTopK           = "top-k"
	ConfigBlanks         = "blanks"
	ConfigResultsDB      = "results-db"
	ConfigSolverThreads  = "solver-threads"
	ConfigNatsURL        = "nats-url"
	ConfigNatsSubject    = "nats-subject"
	ConfigLambdaFunction = "lambda-function"
	ConfigDebug          = "debug"
	ConfigFile           = "config"
)

const EnvPrefix = "BESTWORD"

// Config is a thin layer over viper. Every binary and most tests build one of
// these; the zero value is not usable, call DefaultConfig or Load.
type Config struct {
	*viper.Viper
	positional []string
}

func DefaultConfig() Config {
	c := Config{Viper: viper.New()}
	c.setDefaults()
	c.bindEnv()
	return c
}

func (c *Config) setDefaults() {
	c.SetDefault(ConfigDataPath, "./data")
	c.SetDefault(ConfigDictionary, "dictionary.txt")
	c.SetDefault(ConfigLexicon, "")
	c.SetDefault(ConfigBoardLayout, "classic")
	c.SetDefault(ConfigBonusTiles, true)
	c.SetDefault(ConfigSearchMethod, "probabilistic")
	c.SetDefault(ConfigTopK, 5)
	c.SetDefault(ConfigBlanks, true)
	c.SetDefault(ConfigResultsDB, "")
	c.SetDefault(ConfigSolverThreads, runtime.NumCPU())
	c.SetDefault(ConfigNatsURL, "nats://127.0.0.1:4222")
	c.SetDefault(ConfigNatsSubject, "bestword.solve")
	c.SetDefault(ConfigLambdaFunction, "")
	c.SetDefault(ConfigDebug, false)
}

func (c *Config) bindEnv() {
	c.SetEnvPrefix(EnvPrefix)
	c.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	c.AutomaticEnv()
}

// Load parses command-line flags, the environment (BESTWORD_*) and an
// optional YAML config file, in increasing order of precedence: file, env,
// flags. Positional arguments are kept and can be fetched with Args. A
// binary's own flags can be passed in extra; they are bound like the rest.
func (c *Config) Load(args []string, extra ...*pflag.FlagSet) error {
	if c.Viper == nil {
		c.Viper = viper.New()
	}
	c.setDefaults()

	fs := pflag.NewFlagSet("bestword", pflag.ContinueOnError)
	fs.String(ConfigDataPath, "./data", "directory holding dictionaries, boards and lexica")
	fs.String(ConfigDictionary, "dictionary.txt", "word list, one word per line (relative to data-path)")
	fs.String(ConfigLexicon, "", "optional KWG lexicon used to validate cross-words")
	fs.String(ConfigBoardLayout, "classic", "bonus layout: classic, standard or a YAML layout file")
	fs.Bool(ConfigBonusTiles, true, "apply premium squares when scoring")
	fs.String(ConfigSearchMethod, "probabilistic", "probabilistic or exhaustive")
	fs.Int(ConfigTopK, 5, "anchor tiles kept by the probability ranker")
	fs.Bool(ConfigBlanks, true, "treat ? on a rack as a blank that matches any letter")
	fs.String(ConfigResultsDB, "", "sqlite file used to memoize solutions")
	fs.Int(ConfigSolverThreads, runtime.NumCPU(), "goroutines used for batch solving and autoplay")
	fs.String(ConfigNatsURL, "nats://127.0.0.1:4222", "NATS server for the bot")
	fs.String(ConfigNatsSubject, "bestword.solve", "subject the bot listens on")
	fs.String(ConfigLambdaFunction, "", "name of a deployed solver function")
	fs.Bool(ConfigDebug, false, "debug logging")
	fs.String(ConfigFile, "", "optional YAML config file")
	for _, e := range extra {
		fs.AddFlagSet(e)
	}

	if err := fs.Parse(args); err != nil {
		return err
	}
	c.positional = fs.Args()

	// Only explicitly passed flags should override the file and env.
	var bindErr error
	fs.Visit(func(f *pflag.Flag) {
		if err := c.BindPFlag(f.Name, f); err != nil {
			bindErr = err
		}
	})
	if bindErr != nil {
		return bindErr
	}
	c.bindEnv()

	if cf := c.GetString(ConfigFile); cf != "" {
		c.SetConfigFile(cf)
		c.SetConfigType("yaml")
		if err := c.ReadInConfig(); err != nil {
			return err
		}
	}
	return nil
}

// Args returns the positional arguments left over after Load parsed flags.
func (c *Config) Args() []string {
	return c.positional
}

// AdjustRelativePaths makes a relative data path absolute with respect to
// basePath, unless it already resolves from the working directory.
func (c *Config) AdjustRelativePaths(basePath string) {
	for _, key := range []string{ConfigDataPath} {
		p := c.GetString(key)
		if p == "" || filepath.IsAbs(p) {
			continue
		}
		if _, err := os.Stat(p); err == nil {
			continue
		}
		c.Set(key, filepath.Join(basePath, p))
	}
}

// DictionaryPath resolves the dictionary file against the data path.
func (c *Config) DictionaryPath() string {
	return c.dataFile(c.GetString(ConfigDictionary))
}

// BoardLayoutPath resolves a layout file name. Built-in layout names are
// returned unchanged.
func (c *Config) BoardLayoutPath() string {
	layout := c.GetString(ConfigBoardLayout)
	if !strings.HasSuffix(layout, ".yaml") && !strings.HasSuffix(layout, ".yml") {
		return layout
	}
	return c.dataFile(layout)
}

func (c *Config) dataFile(name string) string {
	if name == "" || filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(c.GetString(ConfigDataPath), name)
}

func (c *Config) SanitizedSettings() map[string]any {
	settings := c.AllSettings()
	delete(settings, ConfigFile)
	return settings
}

func (c *Config) WGLConfig() *wglconfig.Config {
	return &wglconfig.Config{DataPath: c.GetString(ConfigDataPath)}
}
