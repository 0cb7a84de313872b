package cache

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/devtask-ledger/backend/pkg/xcontext"
	"github.com/puzpuzpuz/xsync"
)

type memoryEntry struct {
	payload   []byte
	expiresAt time.Time
}

// memoryCache is a process-local Cache. Values are stored as JSON snapshots
// so callers get the same copy semantics as the redis implementation.
type memoryCache struct {
	entries *xsync.MapOf[string, memoryEntry]
	now     func() time.Time
}

func NewMemoryCache() *memoryCache {
	return &memoryCache{
		entries: xsync.NewMapOf[memoryEntry](),
		now:     time.Now,
	}
}

func (c *memoryCache) Get(ctx context.Context, key string, v any) bool {
	entry, ok := c.entries.Load(key)
	if !ok {
		return false
	}

	if c.now().After(entry.expiresAt) {
		c.entries.Delete(key)
		return false
	}

	if err := json.Unmarshal(entry.payload, v); err != nil {
		xcontext.Logger(ctx).Warnf("Cannot decode cache key %s: %v", key, err)
		return false
	}

	return true
}

func (c *memoryCache) Set(ctx context.Context, key string, v any, ttl time.Duration) {
	b, err := json.Marshal(v)
	if err != nil {
		xcontext.Logger(ctx).Warnf("Cannot encode cache key %s: %v", key, err)
		return
	}

	c.entries.Store(key, memoryEntry{payload: b, expiresAt: c.now().Add(ttl)})
}

func (c *memoryCache) Del(ctx context.Context, keys ...string) {
	for _, key := range keys {
		c.entries.Delete(key)
	}
}

func (c *memoryCache) DelPrefix(ctx context.Context, prefix string) {
	c.entries.Range(func(key string, _ memoryEntry) bool {
		if strings.HasPrefix(key, prefix) {
			c.entries.Delete(key)
		}

		return true
	})
}
