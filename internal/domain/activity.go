package domain

import (
	"context"

	"github.com/devtask-ledger/backend/internal/model"
	"github.com/devtask-ledger/backend/internal/repository"
	"github.com/devtask-ledger/backend/pkg/errorx"
	"github.com/devtask-ledger/backend/pkg/xcontext"
)

const defaultActivityLimit = 50

type ActivityDomain interface {
	GetRecent(ctx context.Context, req *model.GetActivityRequest) (*model.GetActivityResponse, error)
}

type activityDomain struct {
	activityLogRepo repository.ActivityLogRepository
}

func NewActivityDomain(activityLogRepo repository.ActivityLogRepository) *activityDomain {
	return &activityDomain{activityLogRepo: activityLogRepo}
}

func (d *activityDomain) GetRecent(
	ctx context.Context, req *model.GetActivityRequest,
) (*model.GetActivityResponse, error) {
	limit := req.Limit
	if limit <= 0 {
		limit = defaultActivityLimit
	}

	logs, err := d.activityLogRepo.GetRecent(ctx, limit)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get recent activity: %v", err)
		return nil, errorx.Unknown
	}

	result := model.GetActivityResponse(model.ConvertActivityLogs(logs))

	return &result, nil
}
