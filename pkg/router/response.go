package router

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/devtask-ledger/backend/pkg/errorx"
	"github.com/devtask-ledger/backend/pkg/logger"
	"github.com/devtask-ledger/backend/pkg/xcontext"
)

type errorBody struct {
	Error      string `json:"error"`
	Message    string `json:"message,omitempty"`
	StatusCode int    `json:"statusCode"`
}

func writeJSON(l logger.Logger, w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		l.Errorf("Cannot write the response: %v", err)
	}
}

func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	var errx errorx.Error
	if errors.As(err, &errx) {
		status := errx.Code.HTTPStatus()
		writeJSON(xcontext.Logger(ctx), w, status, errorBody{
			Error:      errx.Message,
			StatusCode: status,
		})
		return
	}

	// Unexpected errors carry internal detail only outside production.
	body := errorBody{
		Error:      "Internal server error",
		StatusCode: http.StatusInternalServerError,
	}
	if !xcontext.Configs(ctx).IsProduction() {
		body.Message = err.Error()
	}

	writeJSON(xcontext.Logger(ctx), w, http.StatusInternalServerError, body)
}
