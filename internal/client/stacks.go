package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/devtask-ledger/backend/internal/model"
	"github.com/devtask-ledger/backend/pkg/xcontext"
)

// TaskEventSource streams confirmed task-logged contract events. Delivery
// is at-least-once: callers must tolerate replays.
type TaskEventSource interface {
	// FetchTaskEvents returns up to limit events at or above fromHeight,
	// ordered by block height ascending.
	FetchTaskEvents(ctx context.Context, fromHeight int64, limit int) ([]model.TaskEvent, error)
}

type stacksClient struct{}

func NewStacksClient() *stacksClient {
	return &stacksClient{}
}

type taskEventsResponse struct {
	Results []model.TaskEvent `json:"results"`
}

func (c *stacksClient) FetchTaskEvents(
	ctx context.Context, fromHeight int64, limit int,
) ([]model.TaskEvent, error) {
	chain := xcontext.Configs(ctx).Chain

	query := url.Values{}
	query.Set("from_height", fmt.Sprintf("%d", fromHeight))
	query.Set("limit", fmt.Sprintf("%d", limit))

	endpoint := fmt.Sprintf("%s/v1/contracts/%s/task-events?%s",
		chain.APIURL, chain.ContractID(), query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := xcontext.HTTPClient(ctx).Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("chain api responded with status %d", resp.StatusCode)
	}

	var body taskEventsResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, err
	}

	return body.Results, nil
}
