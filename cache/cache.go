package cache

import (
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/crossplay/bestword/config"
)

// The cache holds large, read-only objects that are expensive to build and
// shared by every search: dictionaries and bonus layouts. A long-running
// process (the bot, the shell) loads each one once.

type cache struct {
	sync.Mutex
	objects map[string]any
}

// GlobalObjectCache is our global object cache, of course.
var GlobalObjectCache *cache

var once sync.Once

func (c *cache) get(cfg *config.Config, key string, loadFunc func(*config.Config, string) (any, error)) (any, error) {
	c.Lock()
	defer c.Unlock()
	if obj, ok := c.objects[key]; ok {
		log.Debug().Str("key", key).Msg("getting obj from cache")
		return obj, nil
	}
	log.Debug().Str("key", key).Msg("loading into cache")
	obj, err := loadFunc(cfg, key)
	if err != nil {
		return nil, err
	}
	c.objects[key] = obj
	return obj, nil
}

func CreateGlobalObjectCache() {
	GlobalObjectCache = &cache{objects: make(map[string]any)}
}

// Load returns the object stored under key, calling loadFunc to build it the
// first time. Failed loads are not cached.
func Load[T any](cfg *config.Config, key string, loadFunc func(*config.Config, string) (T, error)) (T, error) {
	once.Do(func() {
		if GlobalObjectCache == nil {
			CreateGlobalObjectCache()
		}
	})
	var zero T
	obj, err := GlobalObjectCache.get(cfg, key, func(cfg *config.Config, key string) (any, error) {
		return loadFunc(cfg, key)
	})
	if err != nil {
		return zero, err
	}
	t, ok := obj.(T)
	if !ok {
		return zero, fmt.Errorf("cached object %v has type %T", key, obj)
	}
	return t, nil
}

// Purge drops a key so the next Load rebuilds it.
func Purge(key string) {
	if GlobalObjectCache == nil {
		return
	}
	GlobalObjectCache.Lock()
	defer GlobalObjectCache.Unlock()
	delete(GlobalObjectCache.objects, key)
}
