package cache

import (
	"errors"
	"testing"

	"github.com/matryer/is"

	"github.com/crossplay/bestword/config"
)

func TestLoadCachesObjects(t *testing.T) {
	is := is.New(t)
	cfg := config.DefaultConfig()
	calls := 0
	loader := func(cfg *config.Config, key string) ([]string, error) {
		calls++
		return []string{key}, nil
	}
	v, err := Load(&cfg, "test:a", loader)
	is.NoErr(err)
	is.Equal(v, []string{"test:a"})
	_, err = Load(&cfg, "test:a", loader)
	is.NoErr(err)
	is.Equal(calls, 1)

	Purge("test:a")
	_, err = Load(&cfg, "test:a", loader)
	is.NoErr(err)
	is.Equal(calls, 2)
}

func TestLoadErrorNotCached(t *testing.T) {
	is := is.New(t)
	cfg := config.DefaultConfig()
	boom := errors.New("boom")
	calls := 0
	loader := func(cfg *config.Config, key string) (int, error) {
		calls++
		return 0, boom
	}
	_, err := Load(&cfg, "test:err", loader)
	is.Equal(err, boom)
	_, err = Load(&cfg, "test:err", loader)
	is.Equal(err, boom)
	is.Equal(calls, 2)
}

func TestLoadWrongType(t *testing.T) {
	is := is.New(t)
	cfg := config.DefaultConfig()
	_, err := Load(&cfg, "test:typed", func(*config.Config, string) (int, error) { return 1, nil })
	is.NoErr(err)
	_, err = Load(&cfg, "test:typed", func(*config.Config, string) (string, error) { return "", nil })
	is.True(err != nil)
}
