package usecase

import (
	"context"

	"github.com/EASS-HIT-PART-A-2025-CLASS-VII/ezlife/internal/model"
)

// Refresh replaces the working copy with the server's task list. Pending
// placeholders are dropped: the server list is authoritative.
func (uc *implUseCase) Refresh(ctx context.Context) ([]model.Task, error) {
	tasks, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	uc.mu.Lock()
	uc.tasks = tasks
	uc.mu.Unlock()

	uc.l.Debugf(ctx, "working copy refreshed with %d tasks", len(tasks))
	return uc.snapshot(), nil
}

// Tasks returns a snapshot of the working copy.
func (uc *implUseCase) Tasks() []model.Task {
	return uc.snapshot()
}
