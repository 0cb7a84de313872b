package domain

import (
	"context"
	"errors"
	"time"

	"github.com/devtask-ledger/backend/internal/model"
	"github.com/devtask-ledger/backend/internal/repository"
	"github.com/devtask-ledger/backend/pkg/cache"
	"github.com/devtask-ledger/backend/pkg/errorx"
	"github.com/devtask-ledger/backend/pkg/xcontext"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

const (
	defaultLeaderboardLimit = 10
	maxLeaderboardLimit     = 100
	maxSearchResults        = 20
)

type StatisticDomain interface {
	GetGlobalStats(ctx context.Context, req *model.GetGlobalStatsRequest) (*model.GlobalStats, error)
	GetLeaderboard(ctx context.Context, req *model.GetLeaderboardRequest) (*model.GetLeaderboardResponse, error)
	SearchDevelopers(ctx context.Context, req *model.SearchDevelopersRequest) (*model.SearchResponse, error)
}

type statisticDomain struct {
	developerRepo repository.DeveloperRepository
	taskRepo      repository.TaskRepository
	cache         cache.Cache
}

func NewStatisticDomain(
	developerRepo repository.DeveloperRepository,
	taskRepo repository.TaskRepository,
	cache cache.Cache,
) *statisticDomain {
	return &statisticDomain{
		developerRepo: developerRepo,
		taskRepo:      taskRepo,
		cache:         cache,
	}
}

func (d *statisticDomain) GetGlobalStats(
	ctx context.Context, req *model.GetGlobalStatsRequest,
) (*model.GlobalStats, error) {
	var stats model.GlobalStats
	if d.cache.Get(ctx, cache.GlobalStatsKey, &stats) {
		return &stats, nil
	}

	// The three counts are independent; run them concurrently. Each query
	// borrows its own connection from the pool.
	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		var err error
		stats.TotalDevelopers, err = d.developerRepo.Count(egCtx)
		return err
	})
	eg.Go(func() error {
		var err error
		stats.TotalTasks, err = d.taskRepo.Count(egCtx)
		return err
	})
	eg.Go(func() error {
		var err error
		stats.ActiveToday, err = d.developerRepo.CountActiveSince(egCtx, time.Now().Add(-24*time.Hour))
		return err
	})
	eg.Go(func() error {
		latest, err := d.taskRepo.GetLatest(egCtx)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}

			return err
		}

		stats.LastActivity = &latest.Timestamp
		return nil
	})

	if err := eg.Wait(); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot compute global stats: %v", err)
		return nil, errorx.Unknown
	}

	d.cache.Set(ctx, cache.GlobalStatsKey, stats, cache.GlobalStatsTTL)

	return &stats, nil
}

func (d *statisticDomain) GetLeaderboard(
	ctx context.Context, req *model.GetLeaderboardRequest,
) (*model.GetLeaderboardResponse, error) {
	limit := req.Limit
	if limit <= 0 {
		limit = defaultLeaderboardLimit
	}

	if limit > maxLeaderboardLimit {
		limit = maxLeaderboardLimit
	}

	key := cache.LeaderboardKey(limit)

	leaderboard := model.GetLeaderboardResponse{}
	if d.cache.Get(ctx, key, &leaderboard) {
		return &leaderboard, nil
	}

	developers, err := d.developerRepo.GetTop(ctx, limit)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get top developers: %v", err)
		return nil, errorx.Unknown
	}

	for i := range developers {
		leaderboard = append(leaderboard, model.LeaderboardEntry{
			Address:    developers[i].Address,
			TaskCount:  developers[i].TaskCount,
			LastTaskAt: developers[i].LastTaskAt,
			Rank:       i + 1,
		})
	}

	d.cache.Set(ctx, key, leaderboard, cache.LeaderboardTTL)

	return &leaderboard, nil
}

// SearchDevelopers reads the store directly. Arbitrary query strings make
// the key space unbounded, so caching them is ineffective.
func (d *statisticDomain) SearchDevelopers(
	ctx context.Context, req *model.SearchDevelopersRequest,
) (*model.SearchResponse, error) {
	if req.Q == "" {
		return nil, errorx.New(errorx.BadRequest, "Search query required")
	}

	developers, err := d.developerRepo.Search(ctx, req.Q, maxSearchResults)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot search developers: %v", err)
		return nil, errorx.Unknown
	}

	result := model.SearchResponse(model.ConvertDevelopers(developers))

	return &result, nil
}
