package domain

import (
	"context"
	"time"

	"github.com/devtask-ledger/backend/internal/model"
	"github.com/devtask-ledger/backend/pkg/errorx"
	"github.com/devtask-ledger/backend/pkg/xcontext"
)

type HealthDomain interface {
	Check(ctx context.Context, req *model.GetHealthRequest) (*model.Health, error)
}

type healthDomain struct{}

func NewHealthDomain() *healthDomain {
	return &healthDomain{}
}

func (d *healthDomain) Check(ctx context.Context, req *model.GetHealthRequest) (*model.Health, error) {
	if err := xcontext.DB(ctx).Exec("SELECT 1").Error; err != nil {
		xcontext.Logger(ctx).Errorf("Health check cannot reach database: %v", err)
		return nil, errorx.New(errorx.Unavailable, "Service unavailable")
	}

	return &model.Health{
		Status:    "ok",
		Timestamp: time.Now().UTC(),
		Database:  "connected",
	}, nil
}
