package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/devtask-ledger/backend/internal/entity"
	"github.com/devtask-ledger/backend/pkg/xcontext"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DeveloperRepository interface {
	GetByAddress(ctx context.Context, address string) (*entity.Developer, error)
	GetList(ctx context.Context, offset, limit int) ([]entity.Developer, error)

	// GetPage reads developers after the given address in address order.
	// Keyset pagination stays stable while task counts are being rewritten.
	GetPage(ctx context.Context, afterAddress string, limit int) ([]entity.Developer, error)

	GetTop(ctx context.Context, limit int) ([]entity.Developer, error)
	Search(ctx context.Context, q string, limit int) ([]entity.Developer, error)
	Count(ctx context.Context) (int64, error)
	CountActiveSince(ctx context.Context, since time.Time) (int64, error)

	// CreateIfAbsent inserts the developer with a zero task count so task,
	// achievement and activity rows can reference it. Existing rows are
	// left untouched.
	CreateIfAbsent(ctx context.Context, address string, at time.Time) error

	// IncrementTaskCount bumps the cached counter and last_task_at by one
	// task. Only ingestion may call it, and only after a genuinely new task
	// row was inserted.
	IncrementTaskCount(ctx context.Context, address string, at time.Time) error

	// SetTaskCount overwrites the cached counter; used by reconciliation.
	SetTaskCount(ctx context.Context, address string, count int64) error
}

type developerRepository struct{}

func NewDeveloperRepository() *developerRepository {
	return &developerRepository{}
}

func (r *developerRepository) GetByAddress(ctx context.Context, address string) (*entity.Developer, error) {
	var result entity.Developer
	if err := xcontext.DB(ctx).Where("address=?", address).Take(&result).Error; err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *developerRepository) GetList(ctx context.Context, offset, limit int) ([]entity.Developer, error) {
	var result []entity.Developer
	err := xcontext.DB(ctx).
		Order("task_count DESC, last_task_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *developerRepository) GetPage(ctx context.Context, afterAddress string, limit int) ([]entity.Developer, error) {
	var result []entity.Developer
	err := xcontext.DB(ctx).
		Where("address > ?", afterAddress).
		Order("address ASC").
		Limit(limit).
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *developerRepository) GetTop(ctx context.Context, limit int) ([]entity.Developer, error) {
	var result []entity.Developer
	err := xcontext.DB(ctx).
		Order("task_count DESC, address ASC").
		Limit(limit).
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *developerRepository) Search(ctx context.Context, q string, limit int) ([]entity.Developer, error) {
	var result []entity.Developer
	err := xcontext.DB(ctx).
		Where("LOWER(address) LIKE ?", "%"+strings.ToLower(q)+"%").
		Order("task_count DESC").
		Limit(limit).
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *developerRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := xcontext.DB(ctx).Model(&entity.Developer{}).Count(&count).Error
	return count, err
}

func (r *developerRepository) CountActiveSince(ctx context.Context, since time.Time) (int64, error) {
	var count int64
	err := xcontext.DB(ctx).Model(&entity.Developer{}).
		Where("last_task_at >= ?", since).
		Count(&count).Error
	return count, err
}

func (r *developerRepository) CreateIfAbsent(ctx context.Context, address string, at time.Time) error {
	return xcontext.DB(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "address"}},
			DoNothing: true,
		}).
		Create(&entity.Developer{
			Address:     address,
			TaskCount:   0,
			FirstTaskAt: at,
			LastTaskAt:  at,
		}).Error
}

func (r *developerRepository) IncrementTaskCount(ctx context.Context, address string, at time.Time) error {
	tx := xcontext.DB(ctx).Model(&entity.Developer{}).
		Where("address=?", address).
		Updates(map[string]interface{}{
			"task_count":   gorm.Expr("task_count + 1"),
			"last_task_at": at,
		})

	if tx.Error != nil {
		return tx.Error
	}

	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

func (r *developerRepository) SetTaskCount(ctx context.Context, address string, count int64) error {
	tx := xcontext.DB(ctx).Model(&entity.Developer{}).
		Where("address=?", address).
		Update("task_count", count)

	if tx.Error != nil {
		return tx.Error
	}

	if tx.RowsAffected > 1 {
		return errors.New("the number of affected rows is invalid")
	}

	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}
