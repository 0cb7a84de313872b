package repository

import (
	"context"

	"github.com/devtask-ledger/backend/internal/entity"
	"github.com/devtask-ledger/backend/pkg/xcontext"
	"gorm.io/gorm/clause"
)

type AchievementRepository interface {
	// CreateIfAbsent unlocks the achievement unless the developer already
	// holds it. Reports whether a new row was inserted.
	CreateIfAbsent(ctx context.Context, achievement *entity.Achievement) (bool, error)

	GetByDeveloper(ctx context.Context, address string) ([]entity.Achievement, error)
}

type achievementRepository struct{}

func NewAchievementRepository() *achievementRepository {
	return &achievementRepository{}
}

func (r *achievementRepository) CreateIfAbsent(ctx context.Context, achievement *entity.Achievement) (bool, error) {
	tx := xcontext.DB(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "developer_address"},
				{Name: "achievement_id"},
			},
			DoNothing: true,
		}).
		Create(achievement)

	if tx.Error != nil {
		return false, tx.Error
	}

	return tx.RowsAffected == 1, nil
}

func (r *achievementRepository) GetByDeveloper(ctx context.Context, address string) ([]entity.Achievement, error) {
	var result []entity.Achievement
	err := xcontext.DB(ctx).
		Where("developer_address=?", address).
		Order("unlocked_at DESC").
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}
