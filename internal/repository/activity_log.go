package repository

import (
	"context"

	"github.com/devtask-ledger/backend/internal/entity"
	"github.com/devtask-ledger/backend/pkg/xcontext"
)

type ActivityLogRepository interface {
	Create(ctx context.Context, log *entity.ActivityLog) error
	GetRecent(ctx context.Context, limit int) ([]entity.ActivityLog, error)
}

type activityLogRepository struct{}

func NewActivityLogRepository() *activityLogRepository {
	return &activityLogRepository{}
}

func (r *activityLogRepository) Create(ctx context.Context, log *entity.ActivityLog) error {
	return xcontext.DB(ctx).Create(log).Error
}

func (r *activityLogRepository) GetRecent(ctx context.Context, limit int) ([]entity.ActivityLog, error) {
	var result []entity.ActivityLog
	err := xcontext.DB(ctx).
		Order("timestamp DESC").
		Limit(limit).
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}
