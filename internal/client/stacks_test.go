package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/devtask-ledger/backend/config"
	"github.com/devtask-ledger/backend/pkg/xcontext"
	"github.com/stretchr/testify/require"
)

func Test_stacksClient_FetchTaskEvents(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/contracts/SP000.task-logger/task-events", r.URL.Path)
		require.Equal(t, "100", r.URL.Query().Get("from_height"))
		require.Equal(t, "50", r.URL.Query().Get("limit"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"results": [
			{"developer": "SP1ABC", "task_id": 7, "title": "Fix the build",
			 "block_height": 101, "tx_id": "0xaaa", "timestamp": "2024-03-01T12:00:00Z"}
		]}`))
	}))
	defer server.Close()

	ctx := xcontext.WithConfigs(context.Background(), config.Configs{
		Chain: config.ChainConfigs{
			ContractAddress: "SP000",
			ContractName:    "task-logger",
			APIURL:          server.URL,
		},
	})

	events, err := NewStacksClient().FetchTaskEvents(ctx, 100, 50)
	require.NoError(t, err)
	require.Len(t, events, 1)
	require.Equal(t, "SP1ABC", events[0].DeveloperAddress)
	require.EqualValues(t, 7, events[0].TaskID)
	require.EqualValues(t, 101, events[0].BlockHeight)
}

func Test_stacksClient_FetchTaskEvents_non200(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	ctx := xcontext.WithConfigs(context.Background(), config.Configs{
		Chain: config.ChainConfigs{APIURL: server.URL},
	})

	_, err := NewStacksClient().FetchTaskEvents(ctx, 0, 10)
	require.ErrorContains(t, err, "status 502")
}
