package entity

import "time"

// Achievement records an unlocked badge. Unique per (developer, badge);
// once unlocked it is never revoked.
type Achievement struct {
	ID int64 `gorm:"primaryKey;autoIncrement"`

	DeveloperAddress string    `gorm:"uniqueIndex:idx_achievements_developer_achievement"`
	Developer        Developer `gorm:"foreignKey:DeveloperAddress"`

	AchievementID string `gorm:"uniqueIndex:idx_achievements_developer_achievement"`

	UnlockedAt time.Time
}
