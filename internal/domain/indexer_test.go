package domain

import (
	"context"
	"testing"

	"github.com/devtask-ledger/backend/internal/model"
	"github.com/devtask-ledger/backend/internal/repository"
	"github.com/devtask-ledger/backend/internal/testutil"
	"github.com/devtask-ledger/backend/pkg/cache"
	"github.com/stretchr/testify/require"
)

type mockEventSource struct {
	FetchTaskEventsFunc func(ctx context.Context, fromHeight int64, limit int) ([]model.TaskEvent, error)
}

func (m *mockEventSource) FetchTaskEvents(
	ctx context.Context, fromHeight int64, limit int,
) ([]model.TaskEvent, error) {
	return m.FetchTaskEventsFunc(ctx, fromHeight, limit)
}

func Test_indexerDomain_RunOnce(t *testing.T) {
	ctx := testutil.NewMockContext()

	developerRepo := repository.NewDeveloperRepository()
	taskRepo := repository.NewTaskRepository()
	ingest := NewIngestDomain(
		developerRepo, taskRepo,
		repository.NewAchievementRepository(),
		repository.NewActivityLogRepository(),
		cache.NewNoopCache(),
	)

	var gotFromHeight int64
	source := &mockEventSource{
		FetchTaskEventsFunc: func(ctx context.Context, fromHeight int64, limit int) ([]model.TaskEvent, error) {
			gotFromHeight = fromHeight
			if fromHeight >= 102 {
				return nil, nil
			}

			return []model.TaskEvent{sampleEvent(1), sampleEvent(2)}, nil
		},
	}

	indexer := NewIndexerDomain(source, taskRepo, ingest)

	n, err := indexer.RunOnce(ctx)
	require.NoError(t, err)
	require.Equal(t, 2, n)
	require.EqualValues(t, 0, gotFromHeight)

	count, err := taskRepo.Count(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 2, count)

	// The next run resumes from the highest ingested block. The boundary
	// block is replayed and deduplicated, never skipped.
	n, err = indexer.RunOnce(ctx)
	require.NoError(t, err)
	require.Equal(t, 0, n)
	require.EqualValues(t, 102, gotFromHeight)

	count, err = taskRepo.Count(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 2, count)
}

func Test_indexerDomain_RunOnce_toleratesReplays(t *testing.T) {
	ctx := testutil.NewMockContext()

	developerRepo := repository.NewDeveloperRepository()
	taskRepo := repository.NewTaskRepository()
	ingest := NewIngestDomain(
		developerRepo, taskRepo,
		repository.NewAchievementRepository(),
		repository.NewActivityLogRepository(),
		cache.NewNoopCache(),
	)

	source := &mockEventSource{
		FetchTaskEventsFunc: func(ctx context.Context, fromHeight int64, limit int) ([]model.TaskEvent, error) {
			// The same batch every time, as a crashed indexer would see.
			return []model.TaskEvent{sampleEvent(1), sampleEvent(2), sampleEvent(3)}, nil
		},
	}

	indexer := NewIndexerDomain(source, taskRepo, ingest)

	for i := 0; i < 3; i++ {
		_, err := indexer.RunOnce(ctx)
		require.NoError(t, err)
	}

	count, err := taskRepo.Count(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 3, count)

	developer, err := developerRepo.GetByAddress(ctx, "SP1ABC")
	require.NoError(t, err)
	require.EqualValues(t, 3, developer.TaskCount)
}
