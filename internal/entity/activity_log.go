package entity

import "time"

// ActivityLog is an append-only audit record. Rows are never mutated or
// deleted.
type ActivityLog struct {
	ID string `gorm:"primaryKey"`

	DeveloperAddress string    `gorm:"index"`
	Developer        Developer `gorm:"foreignKey:DeveloperAddress"`

	ActionType string
	Metadata   Map
	Timestamp  time.Time `gorm:"index"`
}

func (ActivityLog) TableName() string {
	return "activity_log"
}
