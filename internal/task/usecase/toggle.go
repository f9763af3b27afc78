package usecase

import (
	"context"

	"github.com/EASS-HIT-PART-A-2025-CLASS-VII/ezlife/internal/task"
)

// Toggle flips the completed flag locally before the call resolves. If the
// server call fails the flip is reverted and the error surfaced.
func (uc *implUseCase) Toggle(ctx context.Context, id string) error {
	uc.mu.Lock()
	i := uc.indexOf(id)
	if i < 0 {
		uc.mu.Unlock()
		return task.ErrNotFound
	}
	uc.tasks[i].Completed = !uc.tasks[i].Completed
	uc.mu.Unlock()

	if err := uc.repo.Toggle(ctx, id); err != nil {
		uc.mu.Lock()
		if j := uc.indexOf(id); j >= 0 {
			uc.tasks[j].Completed = !uc.tasks[j].Completed
		}
		uc.mu.Unlock()
		uc.l.Warnf(ctx, "toggle %s failed, reverted: %v", id, err)
		return err
	}
	return nil
}
