package repository

import (
	"context"

	"github.com/EASS-HIT-PART-A-2025-CLASS-VII/ezlife/internal/model"
)

// TaskRepository is the interface for task data access against the task
// backend.
type TaskRepository interface {
	List(ctx context.Context) ([]model.Task, error)
	Create(ctx context.Context, opt CreateTaskOptions) (model.Task, error)
	// Toggle flips the completion flag server-side; the call carries no body.
	Toggle(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}
