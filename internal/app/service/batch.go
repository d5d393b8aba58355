package service

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"taskdesk/internal/core/domain"
)

// BatchFailure records one task whose update was rejected by the transport.
type BatchFailure struct {
	TaskID uint64
	Err    error
}

// BatchResult reports the outcome of every item of a batch, in input order
// within each list.
type BatchResult struct {
	Updated []domain.Task
	Skipped []uint64
	Failed  []BatchFailure
}

func (r BatchResult) OK() bool {
	return len(r.Failed) == 0 && len(r.Skipped) == 0
}

type batchOutcome struct {
	task    domain.Task
	skipped bool
	err     error
}

// BatchUpdate updates every task that exists locally. Items are independent:
// a failure on one does not stop the others. Tasks missing from the collection
// are skipped without a transport call.
func (s *TaskStore) BatchUpdate(ctx context.Context, tasks []domain.Task) BatchResult {
	outcomes := make([]batchOutcome, len(tasks))
	sem := make(chan struct{}, s.concurrency)

	var wg sync.WaitGroup
	for i, task := range tasks {
		if !s.has(task.ID) {
			outcomes[i] = batchOutcome{skipped: true}
			continue
		}

		wg.Add(1)
		go func(i int, task domain.Task) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			updated, applied, err := s.Update(ctx, task)
			switch {
			case err != nil:
				zap.L().Warn("batch task update failed", zap.Uint64("task_id", task.ID), zap.Error(err))
				outcomes[i] = batchOutcome{err: err}
			case !applied:
				// Deleted while the request was in flight.
				outcomes[i] = batchOutcome{skipped: true}
			default:
				outcomes[i] = batchOutcome{task: updated}
			}
		}(i, task)
	}
	wg.Wait()

	var result BatchResult
	for i, outcome := range outcomes {
		switch {
		case outcome.skipped:
			result.Skipped = append(result.Skipped, tasks[i].ID)
		case outcome.err != nil:
			result.Failed = append(result.Failed, BatchFailure{TaskID: tasks[i].ID, Err: outcome.err})
		default:
			result.Updated = append(result.Updated, outcome.task)
		}
	}
	return result
}

// Move commits a drag and drop of active onto toTask in the column columnID
// (nil for the backlog). A nil toTask drops at the end of the column. Every
// task of the destination column whose position changed is persisted.
func (s *TaskStore) Move(ctx context.Context, active domain.Task, toTask *domain.Task, columnID *uint64) BatchResult {
	s.mu.RLock()
	column := domain.FilterByColumn(columnID, s.tasks)
	s.mu.RUnlock()

	ordered := domain.Reorder(active, toTask, column)
	_, changed := domain.Resequence(ordered, columnID)

	zap.L().Debug("moving task",
		zap.Uint64("task_id", active.ID),
		zap.Int("changed", len(changed)),
	)
	return s.BatchUpdate(ctx, changed)
}
