package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/devtask-ledger/backend/pkg/errorx"
	"github.com/devtask-ledger/backend/pkg/router"
	"github.com/devtask-ledger/backend/pkg/xcontext"
)

func Logger() router.CloserFunc {
	return func(ctx context.Context, req *http.Request, err error) {
		if err == nil {
			xcontext.Logger(ctx).Infof("%s | %s", req.Method, req.URL.Path)
			return
		}

		var errx errorx.Error
		if errors.As(err, &errx) {
			xcontext.Logger(ctx).Warnf("%s | %s | %d", req.Method, req.URL.Path, errx.Code)
		} else {
			xcontext.Logger(ctx).Errorf("%s | %s | %v", req.Method, req.URL.Path, err)
		}
	}
}
