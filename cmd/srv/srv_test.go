package main

import (
	"errors"
	"testing"

	"github.com/devtask-ledger/backend/internal/testutil"
	"github.com/devtask-ledger/backend/pkg/logger"
	"github.com/stretchr/testify/require"
)

func Test_srv_closeRedis(t *testing.T) {
	s := &srv{logger: logger.NewLogger(logger.SILENCE)}

	// No redis connection was ever opened.
	s.closeRedis()

	closed := false
	s.redis = &testutil.MockRedisClient{
		CloseFunc: func() error {
			closed = true
			return nil
		},
	}
	s.closeRedis()
	require.True(t, closed)

	// A failing close is logged, not propagated.
	s.redis = &testutil.MockRedisClient{
		CloseFunc: func() error {
			return errors.New("connection already closed")
		},
	}
	s.closeRedis()
}
