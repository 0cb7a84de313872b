package cache

import (
	"context"
	"time"

	"github.com/devtask-ledger/backend/pkg/xcontext"
	"github.com/devtask-ledger/backend/pkg/xredis"
)

// Cache fronts expensive aggregate reads. It is strictly an optimization:
// every method is best-effort and a broken cache degrades to a miss, never
// to a failed request.
type Cache interface {
	// Get loads the value stored under key into v and reports whether the
	// key was present. Connectivity failures are reported as a miss.
	Get(ctx context.Context, key string, v any) bool

	// Set stores v under key for at most ttl. Failures are logged and
	// swallowed.
	Set(ctx context.Context, key string, v any, ttl time.Duration)

	// Del removes the given keys.
	Del(ctx context.Context, keys ...string)

	// DelPrefix removes every key starting with prefix.
	DelPrefix(ctx context.Context, prefix string)
}

type redisCache struct {
	client xredis.Client
}

func NewRedisCache(client xredis.Client) *redisCache {
	return &redisCache{client: client}
}

func (c *redisCache) Get(ctx context.Context, key string, v any) bool {
	err := c.client.GetObj(ctx, key, v)
	if err == nil {
		return true
	}

	if err != xredis.ErrNotFound {
		xcontext.Logger(ctx).Warnf("Cannot get cache key %s: %v", key, err)
	}

	return false
}

func (c *redisCache) Set(ctx context.Context, key string, v any, ttl time.Duration) {
	if err := c.client.SetObj(ctx, key, v, ttl); err != nil {
		xcontext.Logger(ctx).Warnf("Cannot set cache key %s: %v", key, err)
	}
}

func (c *redisCache) Del(ctx context.Context, keys ...string) {
	if err := c.client.Del(ctx, keys...); err != nil {
		xcontext.Logger(ctx).Warnf("Cannot invalidate cache keys %v: %v", keys, err)
	}
}

func (c *redisCache) DelPrefix(ctx context.Context, prefix string) {
	keys, err := c.client.Keys(ctx, prefix+"*")
	if err != nil {
		xcontext.Logger(ctx).Warnf("Cannot list cache keys with prefix %s: %v", prefix, err)
		return
	}

	c.Del(ctx, keys...)
}

// NewNoopCache returns a cache where every read misses and every write is
// discarded. Deployments without redis run on it; correctness must not
// depend on the difference.
func NewNoopCache() *noopCache {
	return &noopCache{}
}

type noopCache struct{}

func (*noopCache) Get(ctx context.Context, key string, v any) bool             { return false }
func (*noopCache) Set(ctx context.Context, key string, v any, _ time.Duration) {}
func (*noopCache) Del(ctx context.Context, keys ...string)                     {}
func (*noopCache) DelPrefix(ctx context.Context, prefix string)                {}
