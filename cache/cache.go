package cache

import (
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/domino14/wordtiers/config"
)

// The cache holds objects that are expensive to load, such as an index built
// from a trimmed word list. The CLI runs one command per process and loads
// each object once anyway; the cache pays off for long-lived callers of the
// library that look words up repeatedly. Keys are usually file paths.

type cache struct {
	sync.Mutex
	objects map[string]any
}

type loadFunc func(cfg *config.Config, key string) (any, error)

var globalObjectCache = &cache{objects: make(map[string]any)}

func (c *cache) get(cfg *config.Config, key string, load loadFunc) (any, error) {
	c.Lock()
	defer c.Unlock()
	if obj, ok := c.objects[key]; ok {
		log.Debug().Str("key", key).Msg("getting obj from cache")
		return obj, nil
	}
	log.Debug().Str("key", key).Msg("loading into cache")
	obj, err := load(cfg, key)
	if err != nil {
		return nil, err
	}
	c.objects[key] = obj
	return obj, nil
}

// Load returns the object cached under key, calling load the first time.
// A failed load is not cached.
func Load(cfg *config.Config, key string, load loadFunc) (any, error) {
	return globalObjectCache.get(cfg, key, load)
}
