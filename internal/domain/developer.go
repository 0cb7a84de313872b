package domain

import (
	"context"
	"errors"

	"github.com/devtask-ledger/backend/internal/domain/badge"
	"github.com/devtask-ledger/backend/internal/model"
	"github.com/devtask-ledger/backend/internal/repository"
	"github.com/devtask-ledger/backend/pkg/cache"
	"github.com/devtask-ledger/backend/pkg/errorx"
	"github.com/devtask-ledger/backend/pkg/xcontext"
	"gorm.io/gorm"
)

const (
	defaultDeveloperListLimit = 100
	profileTaskLimit          = 50
)

type DeveloperDomain interface {
	GetProfile(ctx context.Context, req *model.GetDeveloperRequest) (*model.DeveloperProfile, error)
	GetList(ctx context.Context, req *model.GetDevelopersRequest) (*model.GetDevelopersResponse, error)
	GetTasks(ctx context.Context, req *model.GetDeveloperTasksRequest) (*model.GetTasksResponse, error)
	GetAchievements(ctx context.Context, req *model.GetDeveloperAchievementsRequest) (*model.GetAchievementsResponse, error)
}

type developerDomain struct {
	developerRepo   repository.DeveloperRepository
	taskRepo        repository.TaskRepository
	achievementRepo repository.AchievementRepository
	cache           cache.Cache
}

func NewDeveloperDomain(
	developerRepo repository.DeveloperRepository,
	taskRepo repository.TaskRepository,
	achievementRepo repository.AchievementRepository,
	cache cache.Cache,
) *developerDomain {
	return &developerDomain{
		developerRepo:   developerRepo,
		taskRepo:        taskRepo,
		achievementRepo: achievementRepo,
		cache:           cache,
	}
}

func (d *developerDomain) GetProfile(
	ctx context.Context, req *model.GetDeveloperRequest,
) (*model.DeveloperProfile, error) {
	key := cache.DeveloperKey(req.Address)

	var profile model.DeveloperProfile
	if d.cache.Get(ctx, key, &profile) {
		return &profile, nil
	}

	developer, err := d.developerRepo.GetByAddress(ctx, req.Address)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Developer not found")
		}

		xcontext.Logger(ctx).Errorf("Cannot get developer %s: %v", req.Address, err)
		return nil, errorx.Unknown
	}

	tasks, err := d.taskRepo.GetByDeveloper(ctx, req.Address, 0, profileTaskLimit)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get tasks of %s: %v", req.Address, err)
		return nil, errorx.Unknown
	}

	achievements, err := d.achievementRepo.GetByDeveloper(ctx, req.Address)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get achievements of %s: %v", req.Address, err)
		return nil, errorx.Unknown
	}

	profile = model.DeveloperProfile{
		Developer:    model.ConvertDeveloper(developer),
		Tasks:        model.ConvertTasks(tasks),
		Achievements: model.ConvertAchievements(achievements),
		Badges:       badge.Evaluate(developer.TaskCount),
	}

	d.cache.Set(ctx, key, profile, cache.DeveloperTTL)

	return &profile, nil
}

func (d *developerDomain) GetList(
	ctx context.Context, req *model.GetDevelopersRequest,
) (*model.GetDevelopersResponse, error) {
	limit := req.Limit
	if limit <= 0 {
		limit = defaultDeveloperListLimit
	}

	developers, err := d.developerRepo.GetList(ctx, req.Offset, limit)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get developer list: %v", err)
		return nil, errorx.Unknown
	}

	result := model.GetDevelopersResponse(model.ConvertDevelopers(developers))

	return &result, nil
}

func (d *developerDomain) GetTasks(
	ctx context.Context, req *model.GetDeveloperTasksRequest,
) (*model.GetTasksResponse, error) {
	limit := req.Limit
	if limit <= 0 {
		limit = profileTaskLimit
	}

	tasks, err := d.taskRepo.GetByDeveloper(ctx, req.Address, req.Offset, limit)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get tasks of %s: %v", req.Address, err)
		return nil, errorx.Unknown
	}

	result := model.GetTasksResponse(model.ConvertTasks(tasks))

	return &result, nil
}

func (d *developerDomain) GetAchievements(
	ctx context.Context, req *model.GetDeveloperAchievementsRequest,
) (*model.GetAchievementsResponse, error) {
	achievements, err := d.achievementRepo.GetByDeveloper(ctx, req.Address)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get achievements of %s: %v", req.Address, err)
		return nil, errorx.Unknown
	}

	result := model.GetAchievementsResponse(model.ConvertAchievements(achievements))

	return &result, nil
}
