package loader

import (
	"fmt"

	"github.com/dgraph-io/ristretto"
)

// sessionCache memoizes parsed Tables by content fingerprint so repeated
// loads within one process (the report server, back-to-back commands)
// skip re-parsing unchanged inputs.
type sessionCache struct {
	cache *ristretto.Cache
}

func newSessionCache() (*sessionCache, error) {
	c, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: 1000, // number of keys to track frequency of
		MaxCost:     64,   // a handful of parsed table sets
		BufferItems: 64,   // number of keys per Get buffer
	})
	if err != nil {
		return nil, fmt.Errorf("initializing session cache: %w", err)
	}
	return &sessionCache{cache: c}, nil
}

func (sc *sessionCache) get(key string) (*Tables, bool) {
	v, ok := sc.cache.Get(key)
	if !ok {
		return nil, false
	}
	t, ok := v.(*Tables)
	return t, ok
}

// put stores tables and waits for the value to be admitted, so a get with
// the same fingerprint immediately after is a hit.
func (sc *sessionCache) put(key string, t *Tables) {
	sc.cache.Set(key, t, 1)
	sc.cache.Wait()
}
