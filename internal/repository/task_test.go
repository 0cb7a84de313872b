package repository

import (
	"testing"
	"time"

	"github.com/devtask-ledger/backend/internal/entity"
	"github.com/devtask-ledger/backend/internal/testutil"
	"github.com/stretchr/testify/require"
)

func Test_taskRepository_Create_deduplicates(t *testing.T) {
	ctx := testutil.NewMockContext()
	taskRepo := NewTaskRepository()

	developerRepo := NewDeveloperRepository()
	require.NoError(t, developerRepo.CreateIfAbsent(ctx, "SP1ABC", time.Now()))
	require.NoError(t, developerRepo.CreateIfAbsent(ctx, "SP2DEF", time.Now()))

	task := &entity.Task{
		DeveloperAddress: "SP1ABC",
		TaskID:           1,
		Title:            "Write the parser",
		BlockHeight:      100,
		TxID:             "0xaaa",
		Timestamp:        time.Now(),
	}

	inserted, err := taskRepo.Create(ctx, task)
	require.NoError(t, err)
	require.True(t, inserted)

	// Same (developer, task id) pair again, different provenance.
	inserted, err = taskRepo.Create(ctx, &entity.Task{
		DeveloperAddress: "SP1ABC",
		TaskID:           1,
		Title:            "Write the parser",
		BlockHeight:      101,
		TxID:             "0xbbb",
		Timestamp:        time.Now(),
	})
	require.NoError(t, err)
	require.False(t, inserted)

	count, err := taskRepo.Count(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 1, count)

	// The same task id under another developer is a distinct task.
	inserted, err = taskRepo.Create(ctx, &entity.Task{
		DeveloperAddress: "SP2DEF",
		TaskID:           1,
		Title:            "Review the parser",
		BlockHeight:      102,
		TxID:             "0xccc",
		Timestamp:        time.Now(),
	})
	require.NoError(t, err)
	require.True(t, inserted)
}

func Test_taskRepository_GetLatestBlockHeight(t *testing.T) {
	ctx := testutil.NewMockContext()
	taskRepo := NewTaskRepository()
	require.NoError(t, NewDeveloperRepository().CreateIfAbsent(ctx, "SP1ABC", time.Now()))

	height, err := taskRepo.GetLatestBlockHeight(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 0, height)

	for i, blockHeight := range []int64{10, 30, 20} {
		_, err := taskRepo.Create(ctx, &entity.Task{
			DeveloperAddress: "SP1ABC",
			TaskID:           int64(i),
			BlockHeight:      blockHeight,
			Timestamp:        time.Now(),
		})
		require.NoError(t, err)
	}

	height, err = taskRepo.GetLatestBlockHeight(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 30, height)
}

func Test_taskRepository_GetByDeveloper_ordering(t *testing.T) {
	ctx := testutil.NewMockContext()
	taskRepo := NewTaskRepository()
	require.NoError(t, NewDeveloperRepository().CreateIfAbsent(ctx, "SP1ABC", time.Now()))

	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		_, err := taskRepo.Create(ctx, &entity.Task{
			DeveloperAddress: "SP1ABC",
			TaskID:           int64(i),
			Timestamp:        base.Add(time.Duration(i) * time.Hour),
		})
		require.NoError(t, err)
	}

	tasks, err := taskRepo.GetByDeveloper(ctx, "SP1ABC", 0, 10)
	require.NoError(t, err)
	require.Len(t, tasks, 3)
	require.EqualValues(t, 2, tasks[0].TaskID)
	require.EqualValues(t, 0, tasks[2].TaskID)

	tasks, err = taskRepo.GetByDeveloper(ctx, "SP1ABC", 1, 1)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	require.EqualValues(t, 1, tasks[0].TaskID)
}
