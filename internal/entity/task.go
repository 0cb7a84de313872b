package entity

import "time"

// Task is one logged unit of work. The (developer_address, task_id) pair is
// the natural dedup key: the unique index makes replayed chain events lose
// the insert race instead of duplicating rows.
type Task struct {
	ID int64 `gorm:"primaryKey;autoIncrement"`

	DeveloperAddress string    `gorm:"uniqueIndex:idx_tasks_developer_task_id"`
	Developer        Developer `gorm:"foreignKey:DeveloperAddress"`

	TaskID      int64 `gorm:"uniqueIndex:idx_tasks_developer_task_id"`
	Title       string
	Description string

	BlockHeight int64
	TxID        string    `gorm:"index"`
	Timestamp   time.Time `gorm:"index"`

	CreatedAt time.Time
}
