package testutil

import (
	"context"

	"github.com/devtask-ledger/backend/config"
	"github.com/devtask-ledger/backend/internal/entity"
	"github.com/devtask-ledger/backend/pkg/logger"
	"github.com/devtask-ledger/backend/pkg/xcontext"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// CreateFixtureDb opens an in-memory database with the full schema. Every
// call returns a fresh, isolated database. Foreign keys are enforced so
// the fixture rejects the same orphaned rows the production store does.
func CreateFixtureDb() *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:?_foreign_keys=on"), &gorm.Config{})
	if err != nil {
		panic(err)
	}

	if err := entity.MigrateTable(db); err != nil {
		panic(err)
	}

	return db
}

// NewMockContext returns a context carrying everything domain code expects:
// a fixture database, a quiet logger, and default configs.
func NewMockContext() context.Context {
	ctx := context.Background()
	ctx = xcontext.WithDB(ctx, CreateFixtureDb())
	ctx = xcontext.WithLogger(ctx, logger.NewLogger(logger.SILENCE))
	ctx = xcontext.WithConfigs(ctx, config.Configs{Env: "test"})

	return ctx
}
