package domain

import (
	"context"
	"errors"

	"github.com/devtask-ledger/backend/internal/model"
	"github.com/devtask-ledger/backend/internal/repository"
	"github.com/devtask-ledger/backend/pkg/errorx"
	"github.com/devtask-ledger/backend/pkg/xcontext"
	"gorm.io/gorm"
)

const defaultRecentTaskLimit = 20

type TaskDomain interface {
	GetRecent(ctx context.Context, req *model.GetRecentTasksRequest) (*model.GetTasksResponse, error)
	GetByTxID(ctx context.Context, req *model.GetTaskByTxIDRequest) (*model.Task, error)
}

type taskDomain struct {
	taskRepo repository.TaskRepository
}

func NewTaskDomain(taskRepo repository.TaskRepository) *taskDomain {
	return &taskDomain{taskRepo: taskRepo}
}

func (d *taskDomain) GetRecent(
	ctx context.Context, req *model.GetRecentTasksRequest,
) (*model.GetTasksResponse, error) {
	limit := req.Limit
	if limit <= 0 {
		limit = defaultRecentTaskLimit
	}

	tasks, err := d.taskRepo.GetRecent(ctx, limit)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get recent tasks: %v", err)
		return nil, errorx.Unknown
	}

	result := model.GetTasksResponse(model.ConvertTasks(tasks))

	return &result, nil
}

func (d *taskDomain) GetByTxID(
	ctx context.Context, req *model.GetTaskByTxIDRequest,
) (*model.Task, error) {
	task, err := d.taskRepo.GetByTxID(ctx, req.TxID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Task not found")
		}

		xcontext.Logger(ctx).Errorf("Cannot get task by tx %s: %v", req.TxID, err)
		return nil, errorx.Unknown
	}

	result := model.ConvertTask(task)

	return &result, nil
}
