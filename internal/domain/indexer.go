package domain

import (
	"context"
	"time"

	"github.com/devtask-ledger/backend/internal/client"
	"github.com/devtask-ledger/backend/internal/repository"
	"github.com/devtask-ledger/backend/pkg/xcontext"
)

const defaultIndexerBatchSize = 100

// IndexerDomain polls the chain API for confirmed task events and feeds
// them to ingestion. It resumes from the highest ingested block height, so
// a restart replays the boundary block; idempotent ingestion absorbs that.
type IndexerDomain interface {
	Start(ctx context.Context)
	RunOnce(ctx context.Context) (int, error)
}

type indexerDomain struct {
	eventSource client.TaskEventSource
	taskRepo    repository.TaskRepository
	ingest      IngestDomain
}

func NewIndexerDomain(
	eventSource client.TaskEventSource,
	taskRepo repository.TaskRepository,
	ingest IngestDomain,
) *indexerDomain {
	return &indexerDomain{
		eventSource: eventSource,
		taskRepo:    taskRepo,
		ingest:      ingest,
	}
}

func (d *indexerDomain) Start(ctx context.Context) {
	interval := xcontext.Configs(ctx).Chain.PollInterval()
	xcontext.Logger(ctx).Infof("Indexer started with interval %s", interval)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			xcontext.Logger(ctx).Infof("Indexer stopped: %v", ctx.Err())
			return
		case <-ticker.C:
			n, err := d.RunOnce(ctx)
			if err != nil {
				xcontext.Logger(ctx).Warnf("Indexer run failed: %v", err)
				continue
			}

			if n > 0 {
				xcontext.Logger(ctx).Infof("Indexer ingested %d task events", n)
			}
		}
	}
}

func (d *indexerDomain) RunOnce(ctx context.Context) (int, error) {
	fromHeight, err := d.taskRepo.GetLatestBlockHeight(ctx)
	if err != nil {
		return 0, err
	}

	batchSize := xcontext.Configs(ctx).Chain.BatchSize
	if batchSize <= 0 {
		batchSize = defaultIndexerBatchSize
	}

	events, err := d.eventSource.FetchTaskEvents(ctx, fromHeight, batchSize)
	if err != nil {
		return 0, err
	}

	for _, event := range events {
		if err := d.ingest.IngestTask(ctx, event); err != nil {
			// Stop the batch on the first hard failure; the next run
			// redelivers from the highest committed height.
			return 0, err
		}
	}

	return len(events), nil
}
