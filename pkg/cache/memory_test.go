package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func Test_memoryCache_SetGet(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache()

	type payload struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}

	var got payload
	require.False(t, c.Get(ctx, "missing", &got))

	c.Set(ctx, "key", payload{Name: "alice", Count: 3}, time.Minute)
	require.True(t, c.Get(ctx, "key", &got))
	require.Equal(t, payload{Name: "alice", Count: 3}, got)

	c.Del(ctx, "key")
	require.False(t, c.Get(ctx, "key", &got))
}

func Test_memoryCache_expiry(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache()

	now := time.Now()
	c.now = func() time.Time { return now }

	c.Set(ctx, "key", "value", 30*time.Second)

	var got string
	require.True(t, c.Get(ctx, "key", &got))

	now = now.Add(31 * time.Second)
	require.False(t, c.Get(ctx, "key", &got))
}

func Test_memoryCache_DelPrefix(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache()

	c.Set(ctx, "leaderboard:10", "a", time.Minute)
	c.Set(ctx, "leaderboard:50", "b", time.Minute)
	c.Set(ctx, "dev:SP1ABC", "c", time.Minute)

	c.DelPrefix(ctx, "leaderboard")

	var got string
	require.False(t, c.Get(ctx, "leaderboard:10", &got))
	require.False(t, c.Get(ctx, "leaderboard:50", &got))
	require.True(t, c.Get(ctx, "dev:SP1ABC", &got))
}

func Test_memoryCache_storesSnapshots(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache()

	value := []string{"a", "b"}
	c.Set(ctx, "key", value, time.Minute)

	// Mutating the original must not leak into later reads.
	value[0] = "mutated"

	var got []string
	require.True(t, c.Get(ctx, "key", &got))
	require.Equal(t, []string{"a", "b"}, got)
}
