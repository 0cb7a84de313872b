package repository

import (
	"context"

	"github.com/devtask-ledger/backend/internal/entity"
	"github.com/devtask-ledger/backend/pkg/xcontext"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TaskRepository interface {
	// Create inserts the task unless its (developer_address, task_id) pair
	// already exists. It reports whether a new row was actually inserted;
	// replayed events report false with a nil error.
	Create(ctx context.Context, task *entity.Task) (bool, error)

	GetByDeveloper(ctx context.Context, address string, offset, limit int) ([]entity.Task, error)
	GetRecent(ctx context.Context, limit int) ([]entity.Task, error)
	GetByTxID(ctx context.Context, txID string) (*entity.Task, error)
	GetLatest(ctx context.Context) (*entity.Task, error)
	GetLatestBlockHeight(ctx context.Context) (int64, error)
	Count(ctx context.Context) (int64, error)
	CountByDeveloper(ctx context.Context, address string) (int64, error)
}

type taskRepository struct{}

func NewTaskRepository() *taskRepository {
	return &taskRepository{}
}

func (r *taskRepository) Create(ctx context.Context, task *entity.Task) (bool, error) {
	tx := xcontext.DB(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "developer_address"},
				{Name: "task_id"},
			},
			DoNothing: true,
		}).
		Create(task)

	if tx.Error != nil {
		return false, tx.Error
	}

	return tx.RowsAffected == 1, nil
}

func (r *taskRepository) GetByDeveloper(ctx context.Context, address string, offset, limit int) ([]entity.Task, error) {
	var result []entity.Task
	err := xcontext.DB(ctx).
		Where("developer_address=?", address).
		Order("timestamp DESC").
		Offset(offset).
		Limit(limit).
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *taskRepository) GetRecent(ctx context.Context, limit int) ([]entity.Task, error) {
	var result []entity.Task
	err := xcontext.DB(ctx).
		Order("timestamp DESC").
		Limit(limit).
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *taskRepository) GetByTxID(ctx context.Context, txID string) (*entity.Task, error) {
	var result entity.Task
	if err := xcontext.DB(ctx).Where("tx_id=?", txID).Take(&result).Error; err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *taskRepository) GetLatest(ctx context.Context) (*entity.Task, error) {
	var result entity.Task
	if err := xcontext.DB(ctx).Order("timestamp DESC").Take(&result).Error; err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *taskRepository) GetLatestBlockHeight(ctx context.Context) (int64, error) {
	var result entity.Task
	err := xcontext.DB(ctx).Order("block_height DESC").Take(&result).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return 0, nil
		}

		return 0, err
	}

	return result.BlockHeight, nil
}

func (r *taskRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := xcontext.DB(ctx).Model(&entity.Task{}).Count(&count).Error
	return count, err
}

func (r *taskRepository) CountByDeveloper(ctx context.Context, address string) (int64, error) {
	var count int64
	err := xcontext.DB(ctx).Model(&entity.Task{}).
		Where("developer_address=?", address).
		Count(&count).Error
	return count, err
}
