package model

import "github.com/devtask-ledger/backend/internal/entity"

func ConvertDeveloper(d *entity.Developer) Developer {
	return Developer{
		Address:     d.Address,
		TaskCount:   d.TaskCount,
		FirstTaskAt: d.FirstTaskAt,
		LastTaskAt:  d.LastTaskAt,
		CreatedAt:   d.CreatedAt,
	}
}

func ConvertDevelopers(developers []entity.Developer) []Developer {
	result := make([]Developer, 0, len(developers))
	for i := range developers {
		result = append(result, ConvertDeveloper(&developers[i]))
	}

	return result
}

func ConvertTask(t *entity.Task) Task {
	return Task{
		ID:               t.ID,
		DeveloperAddress: t.DeveloperAddress,
		TaskID:           t.TaskID,
		Title:            t.Title,
		Description:      t.Description,
		BlockHeight:      t.BlockHeight,
		TxID:             t.TxID,
		Timestamp:        t.Timestamp,
		CreatedAt:        t.CreatedAt,
	}
}

func ConvertTasks(tasks []entity.Task) []Task {
	result := make([]Task, 0, len(tasks))
	for i := range tasks {
		result = append(result, ConvertTask(&tasks[i]))
	}

	return result
}

func ConvertAchievement(a *entity.Achievement) Achievement {
	return Achievement{
		ID:            a.ID,
		AchievementID: a.AchievementID,
		UnlockedAt:    a.UnlockedAt,
	}
}

func ConvertAchievements(achievements []entity.Achievement) []Achievement {
	result := make([]Achievement, 0, len(achievements))
	for i := range achievements {
		result = append(result, ConvertAchievement(&achievements[i]))
	}

	return result
}

func ConvertActivityLog(l *entity.ActivityLog) ActivityEntry {
	return ActivityEntry{
		ID:               l.ID,
		DeveloperAddress: l.DeveloperAddress,
		ActionType:       l.ActionType,
		Metadata:         l.Metadata,
		Timestamp:        l.Timestamp,
	}
}

func ConvertActivityLogs(logs []entity.ActivityLog) []ActivityEntry {
	result := make([]ActivityEntry, 0, len(logs))
	for i := range logs {
		result = append(result, ConvertActivityLog(&logs[i]))
	}

	return result
}
