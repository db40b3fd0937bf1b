package cache

import (
	"time"

	"github.com/dgraph-io/ristretto"
)

// LinkCache remembers code -> target pairs known to exist in the store.
// It is only an advisory shortcut: a miss says nothing about the store, and
// entries are dropped on delete so a hit never outlives its link for long.
type LinkCache struct {
	cache *ristretto.Cache
	ttl   time.Duration
}

func New(maxSizePow2 int, ttl time.Duration) (*LinkCache, error) {
	maxCost := max(1, int64(1)<<maxSizePow2)
	numCounters := max(1, maxCost/100) // ~100 bytes per entry estimate

	cache, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: numCounters,
		MaxCost:     maxCost,
		BufferItems: 64,
		Metrics:     true,
	})
	if err != nil {
		return nil, err
	}
	return &LinkCache{cache: cache, ttl: ttl}, nil
}

func (c *LinkCache) Get(code string) (string, bool) {
	val, found := c.cache.Get(code)
	if !found {
		return "", false
	}
	return val.(string), true
}

func (c *LinkCache) Set(code, originalURL string) {
	cost := int64(len(code) + len(originalURL))
	if c.ttl > 0 {
		c.cache.SetWithTTL(code, originalURL, cost, c.ttl)
		return
	}
	c.cache.Set(code, originalURL, cost)
}

func (c *LinkCache) Delete(code string) {
	c.cache.Del(code)
}

// Wait blocks until buffered writes are applied.
func (c *LinkCache) Wait() {
	c.cache.Wait()
}

func (c *LinkCache) Close() {
	c.cache.Close()
}

func (c *LinkCache) Stats() (hits, misses uint64, ratio float64) {
	metrics := c.cache.Metrics
	hits = metrics.Hits()
	misses = metrics.Misses()
	ratio = metrics.Ratio()
	return
}
