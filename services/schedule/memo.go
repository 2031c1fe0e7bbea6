package schedule

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"

	"clubroom/models"
)

// ViewCache memoizes computed view payloads keyed by (view kind, range,
// filter, data snapshot). A cache is an optimization only: views are pure
// functions of their inputs, so a miss or an unplugged cache recomputes the
// identical payload.
type ViewCache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, payload []byte)
}

// viewKey fingerprints the inputs of a view computation. Equal snapshots,
// filters and ranges hash to the same key regardless of when they were
// fetched.
func viewKey(kind, rangeKey string, f models.VenueFilter, days [][]models.VenueAvailability) string {
	h := sha256.New()
	h.Write([]byte(kind))
	h.Write([]byte{0})
	h.Write([]byte(rangeKey))
	h.Write([]byte{0})
	if b, err := json.Marshal(f); err == nil {
		h.Write(b)
	}
	h.Write([]byte{0})
	if b, err := json.Marshal(days); err == nil {
		h.Write(b)
	}
	return "view:" + hex.EncodeToString(h.Sum(nil))
}

// MemoryViewCache is a bounded in-process ViewCache with FIFO eviction.
type MemoryViewCache struct {
	mu      sync.Mutex
	max     int
	entries map[string][]byte
	order   []string
}

// NewMemoryViewCache returns a cache holding at most max entries.
func NewMemoryViewCache(max int) *MemoryViewCache {
	if max <= 0 {
		max = 64
	}
	return &MemoryViewCache{max: max, entries: make(map[string][]byte)}
}

func (c *MemoryViewCache) Get(_ context.Context, key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	b, ok := c.entries[key]
	return b, ok
}

func (c *MemoryViewCache) Set(_ context.Context, key string, payload []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.entries[key]; !ok {
		c.order = append(c.order, key)
		if len(c.order) > c.max {
			oldest := c.order[0]
			c.order = c.order[1:]
			delete(c.entries, oldest)
		}
	}
	c.entries[key] = payload
}

// RedisViewCache stores view payloads in Redis with a short TTL. It caches
// computed output only, never the raw availability feed.
type RedisViewCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func (c *RedisViewCache) Get(ctx context.Context, key string) ([]byte, bool) {
	b, err := c.Client.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}
	return b, true
}

func (c *RedisViewCache) Set(ctx context.Context, key string, payload []byte) {
	ttl := c.TTL
	if ttl <= 0 {
		ttl = time.Minute
	}
	// Best effort; a write failure just means recomputation next time.
	c.Client.Set(ctx, key, payload, ttl)
}
