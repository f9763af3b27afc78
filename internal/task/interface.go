package task

import (
	"context"
	"time"

	"github.com/EASS-HIT-PART-A-2025-CLASS-VII/ezlife/internal/model"
)

// UseCase is the task view-model: the client's working copy of the task
// list, mutated optimistically and reconciled against server responses.
type UseCase interface {
	// Refresh replaces the working copy with the server's task list.
	Refresh(ctx context.Context) ([]model.Task, error)

	// Tasks returns a snapshot of the working copy.
	Tasks() []model.Task

	// Add appends a local placeholder immediately and replaces it in place
	// with the server's authoritative record (id and, when the caller gave
	// no estimate, a server-derived one). On failure the placeholder is
	// removed and the error surfaced; the add is not retried.
	Add(ctx context.Context, input AddInput) (model.Task, error)

	// Toggle flips the completed flag immediately and reverts it if the
	// server call fails.
	Toggle(ctx context.Context, id string) error

	// Delete removes the entry immediately. On failure the entry is NOT
	// restored; only the error is surfaced. This asymmetry with Toggle is
	// preserved existing behavior, pinned by tests.
	Delete(ctx context.Context, id string) error

	// Views partitions the working copy by due date relative to now.
	Views(now time.Time) Views

	// Stats aggregates completion over the working copy.
	Stats() Stats
}
