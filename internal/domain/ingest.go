package domain

import (
	"context"
	"errors"

	"github.com/devtask-ledger/backend/internal/domain/badge"
	"github.com/devtask-ledger/backend/internal/entity"
	"github.com/devtask-ledger/backend/internal/model"
	"github.com/devtask-ledger/backend/internal/repository"
	"github.com/devtask-ledger/backend/pkg/cache"
	"github.com/devtask-ledger/backend/pkg/errorx"
	"github.com/devtask-ledger/backend/pkg/xcontext"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const ActionTaskLogged = "task_logged"

type IngestDomain interface {
	// IngestTask durably records a confirmed chain event. Delivery is
	// at-least-once upstream, so replays of the same (developer, taskId)
	// pair must be successful no-ops.
	IngestTask(ctx context.Context, event model.TaskEvent) error

	// RecalculateTaskCount rebuilds a developer's cached counter from the
	// task table. Reconciliation only; never on the hot ingestion path.
	RecalculateTaskCount(ctx context.Context, address string) (int64, error)
}

type ingestDomain struct {
	developerRepo   repository.DeveloperRepository
	taskRepo        repository.TaskRepository
	achievementRepo repository.AchievementRepository
	activityLogRepo repository.ActivityLogRepository
	cache           cache.Cache
}

func NewIngestDomain(
	developerRepo repository.DeveloperRepository,
	taskRepo repository.TaskRepository,
	achievementRepo repository.AchievementRepository,
	activityLogRepo repository.ActivityLogRepository,
	cache cache.Cache,
) *ingestDomain {
	return &ingestDomain{
		developerRepo:   developerRepo,
		taskRepo:        taskRepo,
		achievementRepo: achievementRepo,
		activityLogRepo: activityLogRepo,
		cache:           cache,
	}
}

func (d *ingestDomain) IngestTask(ctx context.Context, event model.TaskEvent) error {
	if event.DeveloperAddress == "" {
		return errorx.New(errorx.BadRequest, "Task event requires a developer address")
	}

	if event.TaskID < 0 {
		return errorx.New(errorx.BadRequest, "Task event requires a non-negative task id")
	}

	inserted, err := d.ingestOnce(ctx, event)
	if err != nil {
		// The event source redelivers on failure, but a transient store
		// hiccup is worth one immediate retry before giving up.
		xcontext.Logger(ctx).Warnf("Retrying task event %s/%d: %v",
			event.DeveloperAddress, event.TaskID, err)
		inserted, err = d.ingestOnce(ctx, event)
	}

	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot ingest task event %s/%d: %v",
			event.DeveloperAddress, event.TaskID, err)
		return errorx.New(errorx.Conflict, "Cannot record task event")
	}

	if !inserted {
		xcontext.Logger(ctx).Debugf("Skipped duplicate task event %s/%d",
			event.DeveloperAddress, event.TaskID)
		return nil
	}

	// The developer's counts changed, so every cached aggregate that
	// includes them is stale. Invalidation is best-effort; TTLs bound the
	// staleness window if it fails.
	d.cache.Del(ctx, cache.DeveloperKey(event.DeveloperAddress), cache.GlobalStatsKey)
	d.cache.DelPrefix(ctx, cache.LeaderboardPrefix)

	return nil
}

// ingestOnce runs the single atomic transaction of the ingestion contract.
// The developer row is created first because the task row references it;
// the counter increment is gated on the task insert reporting a genuinely
// new row, so a lost insert race leaves the counter untouched.
func (d *ingestDomain) ingestOnce(ctx context.Context, event model.TaskEvent) (bool, error) {
	inserted := false
	err := xcontext.WithDBTransaction(ctx, func(ctx context.Context) error {
		if err := d.developerRepo.CreateIfAbsent(ctx, event.DeveloperAddress, event.Timestamp); err != nil {
			return err
		}

		var err error
		inserted, err = d.taskRepo.Create(ctx, &entity.Task{
			DeveloperAddress: event.DeveloperAddress,
			TaskID:           event.TaskID,
			Title:            event.Title,
			Description:      event.Description,
			BlockHeight:      event.BlockHeight,
			TxID:             event.TxID,
			Timestamp:        event.Timestamp,
		})
		if err != nil {
			return err
		}

		if !inserted {
			return nil
		}

		if err := d.developerRepo.IncrementTaskCount(ctx, event.DeveloperAddress, event.Timestamp); err != nil {
			return err
		}

		developer, err := d.developerRepo.GetByAddress(ctx, event.DeveloperAddress)
		if err != nil {
			return err
		}

		for _, b := range badge.Unlocked(developer.TaskCount) {
			if _, err := d.achievementRepo.CreateIfAbsent(ctx, &entity.Achievement{
				DeveloperAddress: event.DeveloperAddress,
				AchievementID:    b.ID,
				UnlockedAt:       event.Timestamp,
			}); err != nil {
				return err
			}
		}

		return d.activityLogRepo.Create(ctx, &entity.ActivityLog{
			ID:               uuid.NewString(),
			DeveloperAddress: event.DeveloperAddress,
			ActionType:       ActionTaskLogged,
			Metadata: entity.Map{
				"task_id":      event.TaskID,
				"title":        event.Title,
				"tx_id":        event.TxID,
				"block_height": event.BlockHeight,
			},
			Timestamp: event.Timestamp,
		})
	})

	return inserted, err
}

func (d *ingestDomain) RecalculateTaskCount(ctx context.Context, address string) (int64, error) {
	var count int64
	err := xcontext.WithDBTransaction(ctx, func(ctx context.Context) error {
		var err error
		count, err = d.taskRepo.CountByDeveloper(ctx, address)
		if err != nil {
			return err
		}

		return d.developerRepo.SetTaskCount(ctx, address, count)
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, errorx.New(errorx.NotFound, "Developer not found")
		}

		xcontext.Logger(ctx).Errorf("Cannot recalculate task count of %s: %v", address, err)
		return 0, errorx.New(errorx.Conflict, "Cannot recalculate task count")
	}

	d.cache.Del(ctx, cache.DeveloperKey(address), cache.GlobalStatsKey)
	d.cache.DelPrefix(ctx, cache.LeaderboardPrefix)

	return count, nil
}
