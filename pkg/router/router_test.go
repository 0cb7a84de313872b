package router_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/devtask-ledger/backend/config"
	"github.com/devtask-ledger/backend/internal/testutil"
	"github.com/devtask-ledger/backend/pkg/errorx"
	"github.com/devtask-ledger/backend/pkg/logger"
	"github.com/devtask-ledger/backend/pkg/router"
	"github.com/stretchr/testify/require"
)

type echoRequest struct {
	Address string `json:"address"`
	Limit   int    `json:"limit"`
}

type echoResponse struct {
	Address string `json:"address"`
	Limit   int    `json:"limit"`
}

func newTestRouter(cfg config.Configs) *router.Router {
	return router.New(testutil.CreateFixtureDb(), cfg, logger.NewLogger(logger.SILENCE))
}

func Test_router_bindsPathAndQueryParams(t *testing.T) {
	r := newTestRouter(config.Configs{})
	router.GET(r, "/developer/{address}", func(ctx context.Context, req *echoRequest) (*echoResponse, error) {
		return &echoResponse{Address: req.Address, Limit: req.Limit}, nil
	})

	w := httptest.NewRecorder()
	r.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/developer/SP1ABC?limit=5", nil))

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var resp echoResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, echoResponse{Address: "SP1ABC", Limit: 5}, resp)
}

func Test_router_rejectsMalformedParams(t *testing.T) {
	r := newTestRouter(config.Configs{})
	router.GET(r, "/developers", func(ctx context.Context, req *echoRequest) (*echoResponse, error) {
		return &echoResponse{}, nil
	})

	w := httptest.NewRecorder()
	r.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/developers?limit=abc", nil))

	require.Equal(t, http.StatusBadRequest, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, "Parameter limit must be an integer", body["error"])
	require.EqualValues(t, http.StatusBadRequest, body["statusCode"])
}

func Test_router_mapsErrorCodesToStatus(t *testing.T) {
	r := newTestRouter(config.Configs{})
	router.GET(r, "/missing", func(ctx context.Context, req *echoRequest) (*echoResponse, error) {
		return nil, errorx.New(errorx.NotFound, "Developer not found")
	})

	w := httptest.NewRecorder()
	r.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/missing", nil))

	require.Equal(t, http.StatusNotFound, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, "Developer not found", body["error"])
}

func Test_router_hidesInternalErrorsInProduction(t *testing.T) {
	handler := func(ctx context.Context, req *echoRequest) (*echoResponse, error) {
		return nil, errors.New("pq: connection reset")
	}

	r := newTestRouter(config.Configs{Env: "production"})
	router.GET(r, "/boom", handler)

	w := httptest.NewRecorder()
	r.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	require.Equal(t, http.StatusInternalServerError, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, "Internal server error", body["error"])
	require.NotContains(t, body, "message")

	// Outside production the detail is surfaced for debugging.
	r = newTestRouter(config.Configs{Env: "local"})
	router.GET(r, "/boom", handler)

	w = httptest.NewRecorder()
	r.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, "pq: connection reset", body["message"])
}

func Test_router_unknownRoute(t *testing.T) {
	r := newTestRouter(config.Configs{})

	w := httptest.NewRecorder()
	r.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nope", nil))

	require.Equal(t, http.StatusNotFound, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, "Not found", body["error"])
}
