package entity

import "time"

// Developer is an on-chain address that has logged at least one task.
// TaskCount caches COUNT(*) over the developer's task rows; ingestion keeps
// it in sync and RecalculateTaskCount rebuilds it from the source of truth.
type Developer struct {
	Address   string `gorm:"primaryKey"`
	TaskCount int64  `gorm:"not null;default:0"`

	FirstTaskAt time.Time
	LastTaskAt  time.Time `gorm:"index"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
