package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/EASS-HIT-PART-A-2025-CLASS-VII/ezlife/internal/gateway"
	"github.com/EASS-HIT-PART-A-2025-CLASS-VII/ezlife/internal/model"
	"github.com/EASS-HIT-PART-A-2025-CLASS-VII/ezlife/internal/task"
	"github.com/EASS-HIT-PART-A-2025-CLASS-VII/ezlife/internal/task/repository"
)

// Add appends a local placeholder immediately, then reconciles it with the
// server's authoritative record: the placeholder is replaced in place so
// other entries keep their order. On failure the placeholder is removed and
// the error surfaced; no automatic retry.
func (uc *implUseCase) Add(ctx context.Context, input task.AddInput) (model.Task, error) {
	if strings.TrimSpace(input.Description) == "" {
		return model.Task{}, &gateway.ValidationError{Reason: "task description is empty"}
	}

	placeholder := model.Task{
		ID:               "pending-" + uuid.NewString(),
		Description:      input.Description,
		EstimatedMinutes: input.EstimatedMinutes,
		DueDate:          input.DueDate,
		Pending:          true,
	}

	uc.mu.Lock()
	uc.tasks = append(uc.tasks, placeholder)
	uc.mu.Unlock()

	created, err := uc.repo.Create(ctx, repository.CreateTaskOptions{
		Description:      input.Description,
		EstimatedMinutes: input.EstimatedMinutes,
		DueDate:          input.DueDate,
	})
	if err != nil {
		uc.remove(placeholder.ID)
		uc.l.Warnf(ctx, "add %q failed, placeholder removed: %v", input.Description, err)
		return model.Task{}, err
	}

	uc.mu.Lock()
	if i := uc.indexOf(placeholder.ID); i >= 0 {
		uc.tasks[i] = created
	} else {
		// the placeholder was dropped by a refresh that raced the create;
		// last response wins
		uc.tasks = append(uc.tasks, created)
	}
	uc.mu.Unlock()

	uc.l.Infof(ctx, "task %s confirmed (estimate %d min)", created.ID, created.EstimatedMinutes)
	return created, nil
}

func (uc *implUseCase) remove(id string) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if i := uc.indexOf(id); i >= 0 {
		uc.tasks = append(uc.tasks[:i], uc.tasks[i+1:]...)
	}
}
