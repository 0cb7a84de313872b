package model

type GetGlobalStatsRequest struct{}

type GetLeaderboardRequest struct {
	Limit int `json:"limit"`
}

type GetDevelopersRequest struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

type GetDeveloperRequest struct {
	Address string `json:"address"`
}

type GetDeveloperTasksRequest struct {
	Address string `json:"address"`
	Limit   int    `json:"limit"`
	Offset  int    `json:"offset"`
}

type GetDeveloperAchievementsRequest struct {
	Address string `json:"address"`
}

type GetRecentTasksRequest struct {
	Limit int `json:"limit"`
}

type GetTaskByTxIDRequest struct {
	TxID string `json:"txId"`
}

type GetActivityRequest struct {
	Limit int `json:"limit"`
}

type SearchDevelopersRequest struct {
	Q string `json:"q"`
}

type GetHealthRequest struct{}
