package cache

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/2beens/fittrack/internal/telemetry/metrics"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
)

// ListCache caches encoded select results per table. Each table has a generation
// number which is part of every key; invalidating a table bumps its generation,
// so stale entries are never read again and age out of the freecache ring.
type ListCache struct {
	cache          *freecache.Cache
	ttl            time.Duration
	metricsManager *metrics.Manager

	mu          sync.RWMutex
	generations map[string]uint64
}

func NewListCache(sizeMB int, ttl time.Duration, metricsManager *metrics.Manager) *ListCache {
	return &ListCache{
		cache:          freecache.NewCache(sizeMB * 1024 * 1024),
		ttl:            ttl,
		metricsManager: metricsManager,
		generations:    make(map[string]uint64),
	}
}

// Generation returns the current generation of table. A reader takes it before
// querying the database and hands it to SetIfGen when filling the cache.
func (c *ListCache) Generation(table string) uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.generations[table]
}

func (c *ListCache) key(table string, gen uint64, key string) []byte {
	return []byte(fmt.Sprintf("%s:%d:%s", table, gen, key))
}

func (c *ListCache) Get(table, key string) ([]byte, bool) {
	val, err := c.cache.Get(c.key(table, c.Generation(table), key))
	if err != nil {
		if !errors.Is(err, freecache.ErrNotFound) {
			log.Errorf("list cache get [%s]: %s", table, err)
		}
		c.count(table, "miss")
		return nil, false
	}
	c.count(table, "hit")
	return val, true
}

func (c *ListCache) Set(table, key string, value []byte) {
	c.set(table, c.Generation(table), key, value)
}

// SetIfGen stores value only if table was not invalidated since gen was taken.
// A result read before a write is never cached as the state after it; an entry
// written under an old generation is unreachable either way.
func (c *ListCache) SetIfGen(table, key string, gen uint64, value []byte) {
	if c.Generation(table) != gen {
		c.count(table, "stale")
		return
	}
	c.set(table, gen, key, value)
}

func (c *ListCache) set(table string, gen uint64, key string, value []byte) {
	if err := c.cache.Set(c.key(table, gen, key), value, int(c.ttl.Seconds())); err != nil {
		// freecache rejects entries larger than 1/1024 of the cache size
		log.Debugf("list cache set [%s]: %s", table, err)
	}
}

// Invalidate drops all cached results of the given tables.
func (c *ListCache) Invalidate(tables ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, t := range tables {
		c.generations[t]++
	}
}

func (c *ListCache) count(table, result string) {
	if c.metricsManager == nil {
		return
	}
	c.metricsManager.CounterListCache.WithLabelValues(table, result).Inc()
}
