package model

import "time"

// TaskEvent is one confirmed task-logged contract event. DeveloperAddress
// and TaskID identify it; BlockHeight and TxID are provenance only.
type TaskEvent struct {
	DeveloperAddress string    `json:"developer"`
	TaskID           int64     `json:"task_id"`
	Title            string    `json:"title"`
	Description      string    `json:"description"`
	BlockHeight      int64     `json:"block_height"`
	TxID             string    `json:"tx_id"`
	Timestamp        time.Time `json:"timestamp"`
}
