package model

import (
	"time"

	"github.com/devtask-ledger/backend/internal/domain/badge"
	"github.com/devtask-ledger/backend/internal/entity"
)

type Developer struct {
	Address     string    `json:"address"`
	TaskCount   int64     `json:"taskCount"`
	FirstTaskAt time.Time `json:"firstTaskAt"`
	LastTaskAt  time.Time `json:"lastTaskAt"`
	CreatedAt   time.Time `json:"createdAt"`
}

type Task struct {
	ID               int64     `json:"id"`
	DeveloperAddress string    `json:"developerAddress"`
	TaskID           int64     `json:"taskId"`
	Title            string    `json:"title"`
	Description      string    `json:"description"`
	BlockHeight      int64     `json:"blockHeight"`
	TxID             string    `json:"txId"`
	Timestamp        time.Time `json:"timestamp"`
	CreatedAt        time.Time `json:"createdAt"`
}

type Achievement struct {
	ID            int64     `json:"id"`
	AchievementID string    `json:"achievementId"`
	UnlockedAt    time.Time `json:"unlockedAt"`
}

type DeveloperProfile struct {
	Developer
	Tasks        []Task           `json:"tasks"`
	Achievements []Achievement    `json:"achievements"`
	Badges       []badge.Progress `json:"badges"`
}

type GlobalStats struct {
	TotalDevelopers int64      `json:"totalDevelopers"`
	TotalTasks      int64      `json:"totalTasks"`
	ActiveToday     int64      `json:"activeToday"`
	LastActivity    *time.Time `json:"lastActivity"`
}

type LeaderboardEntry struct {
	Address    string    `json:"address"`
	TaskCount  int64     `json:"taskCount"`
	LastTaskAt time.Time `json:"lastTaskAt"`
	Rank       int       `json:"rank"`
}

type ActivityEntry struct {
	ID               string     `json:"id"`
	DeveloperAddress string     `json:"developerAddress"`
	ActionType       string     `json:"actionType"`
	Metadata         entity.Map `json:"metadata"`
	Timestamp        time.Time  `json:"timestamp"`
}

type Health struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Database  string    `json:"database"`
}

type (
	GetLeaderboardResponse  = []LeaderboardEntry
	GetDevelopersResponse   = []Developer
	GetTasksResponse        = []Task
	GetAchievementsResponse = []Achievement
	GetActivityResponse     = []ActivityEntry
	SearchResponse          = []Developer
)
