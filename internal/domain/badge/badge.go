package badge

// Badge is one entry of the fixed achievement table. The set is keyed by
// task-count thresholds and never changes at runtime.
type Badge struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Requirement int64  `json:"requirement"`
}

// Progress annotates a badge with a developer's standing against it.
type Progress struct {
	Badge
	Current  int64 `json:"current"`
	Unlocked bool  `json:"unlocked"`
}

var all = []Badge{
	{ID: "first-task", Title: "Getting Started", Description: "Log your first task", Icon: "🎯", Requirement: 1},
	{ID: "early-adopter", Title: "Early Adopter", Description: "Log 5 tasks", Icon: "🌟", Requirement: 5},
	{ID: "consistent", Title: "Consistent Contributor", Description: "Log 10 tasks", Icon: "💪", Requirement: 10},
	{ID: "power-user", Title: "Power User", Description: "Log 25 tasks", Icon: "🚀", Requirement: 25},
	{ID: "legendary", Title: "Legendary Builder", Description: "Log 50 tasks", Icon: "👑", Requirement: 50},
	{ID: "unstoppable", Title: "Unstoppable", Description: "Log 100 tasks", Icon: "🔥", Requirement: 100},
}

// All returns the full badge table in threshold order.
func All() []Badge {
	result := make([]Badge, len(all))
	copy(result, all)
	return result
}

// Evaluate maps a task count to per-badge progress. It is a pure function:
// ingestion and the profile view both call it with the same count and must
// get the same answer.
func Evaluate(taskCount int64) []Progress {
	result := make([]Progress, 0, len(all))
	for _, b := range all {
		current := taskCount
		if current > b.Requirement {
			current = b.Requirement
		}

		result = append(result, Progress{
			Badge:    b,
			Current:  current,
			Unlocked: taskCount >= b.Requirement,
		})
	}

	return result
}

// Unlocked returns only the badges a task count has crossed.
func Unlocked(taskCount int64) []Badge {
	var result []Badge
	for _, b := range all {
		if taskCount >= b.Requirement {
			result = append(result, b)
		}
	}

	return result
}
