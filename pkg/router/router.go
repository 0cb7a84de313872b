package router

import (
	"context"
	"net/http"

	"github.com/devtask-ledger/backend/config"
	"github.com/devtask-ledger/backend/pkg/logger"
	"github.com/devtask-ledger/backend/pkg/xcontext"
	"github.com/go-chi/chi/v5"
	"gorm.io/gorm"
)

// HandlerFunc is the shape of every endpoint: a bound request in, a
// serializable response or an errorx error out.
type HandlerFunc[Request, Response any] func(ctx context.Context, req *Request) (*Response, error)

// CloserFunc runs after the response is written, e.g. request logging.
type CloserFunc func(ctx context.Context, req *http.Request, err error)

type Router struct {
	mux     chi.Router
	db      *gorm.DB
	cfg     config.Configs
	logger  logger.Logger
	closers []CloserFunc
}

func New(db *gorm.DB, cfg config.Configs, l logger.Logger) *Router {
	mux := chi.NewRouter()
	r := &Router{mux: mux, db: db, cfg: cfg, logger: l}

	mux.NotFound(func(w http.ResponseWriter, req *http.Request) {
		writeJSON(l, w, http.StatusNotFound, errorBody{
			Error:      "Not found",
			StatusCode: http.StatusNotFound,
		})
	})

	return r
}

// AddCloser registers a closer for every endpoint registered afterwards,
// including endpoints of derived groups.
func (r *Router) AddCloser(f CloserFunc) {
	r.closers = append(r.closers, f)
}

func (r *Router) Group(pattern string) *Router {
	sub := chi.NewRouter()
	r.mux.Mount(pattern, sub)

	return &Router{
		mux:     sub,
		db:      r.db,
		cfg:     r.cfg,
		logger:  r.logger,
		closers: r.closers,
	}
}

func (r *Router) Handler() http.Handler {
	return r.mux
}

func GET[Request, Response any](r *Router, pattern string, handler HandlerFunc[Request, Response]) {
	r.mux.Get(pattern, wrapHandler(r, handler))
}

func POST[Request, Response any](r *Router, pattern string, handler HandlerFunc[Request, Response]) {
	r.mux.Post(pattern, wrapHandler(r, handler))
}

func wrapHandler[Request, Response any](
	r *Router, handler HandlerFunc[Request, Response],
) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		ctx := req.Context()
		ctx = xcontext.WithDB(ctx, r.db)
		ctx = xcontext.WithConfigs(ctx, r.cfg)
		ctx = xcontext.WithLogger(ctx, r.logger)

		var request Request
		err := bindRequest(req, &request)

		var resp *Response
		if err == nil {
			resp, err = handler(ctx, &request)
		}

		if err != nil {
			writeError(ctx, w, err)
		} else {
			writeJSON(r.logger, w, http.StatusOK, resp)
		}

		for _, closer := range r.closers {
			closer(ctx, req, err)
		}
	}
}
