package cache

import (
	"fmt"
	"time"
)

// TTLs are short enough that a failed invalidation self-heals within two
// minutes. The global counter view changes fastest and tolerates the least
// staleness.
const (
	DeveloperTTL   = 120 * time.Second
	LeaderboardTTL = 120 * time.Second
	GlobalStatsTTL = 60 * time.Second
)

const (
	GlobalStatsKey = "global:stats"

	// LeaderboardPrefix matches every leaderboard key regardless of the
	// requested limit; invalidation deletes by this prefix.
	LeaderboardPrefix = "leaderboard"
)

func DeveloperKey(address string) string {
	return "dev:" + address
}

// LeaderboardKey is parameterized by limit so callers requesting different
// limits never observe each other's cached result sets.
func LeaderboardKey(limit int) string {
	return fmt.Sprintf("%s:%d", LeaderboardPrefix, limit)
}
