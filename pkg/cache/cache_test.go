package cache_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/devtask-ledger/backend/internal/testutil"
	"github.com/devtask-ledger/backend/pkg/cache"
	"github.com/stretchr/testify/require"
)

func Test_redisCache_degradesToMiss(t *testing.T) {
	ctx := context.Background()
	c := cache.NewRedisCache(&testutil.MockRedisClient{
		GetObjFunc: func(ctx context.Context, key string, v any) error {
			return errors.New("connection refused")
		},
		SetObjFunc: func(ctx context.Context, key string, obj any, ttl time.Duration) error {
			return errors.New("connection refused")
		},
		DelFunc: func(ctx context.Context, keys ...string) error {
			return errors.New("connection refused")
		},
	})

	// A broken cache behaves like an empty one.
	var got string
	require.False(t, c.Get(ctx, "key", &got))

	c.Set(ctx, "key", "value", time.Minute)
	c.Del(ctx, "key")
	c.DelPrefix(ctx, "leaderboard")
}

func Test_redisCache_DelPrefix(t *testing.T) {
	ctx := context.Background()

	var gotPattern string
	var gotKeys []string
	c := cache.NewRedisCache(&testutil.MockRedisClient{
		KeysFunc: func(ctx context.Context, pattern string) ([]string, error) {
			gotPattern = pattern
			return []string{"leaderboard:10", "leaderboard:50"}, nil
		},
		DelFunc: func(ctx context.Context, keys ...string) error {
			gotKeys = keys
			return nil
		},
	})

	c.DelPrefix(ctx, "leaderboard")
	require.Equal(t, "leaderboard*", gotPattern)
	require.Equal(t, []string{"leaderboard:10", "leaderboard:50"}, gotKeys)
}

func Test_noopCache_alwaysMisses(t *testing.T) {
	ctx := context.Background()
	c := cache.NewNoopCache()

	c.Set(ctx, "key", "value", time.Minute)

	var got string
	require.False(t, c.Get(ctx, "key", &got))
}
