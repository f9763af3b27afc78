package rest

import (
	"context"
	"fmt"
	"time"

	"github.com/EASS-HIT-PART-A-2025-CLASS-VII/ezlife/internal/gateway"
	"github.com/EASS-HIT-PART-A-2025-CLASS-VII/ezlife/internal/model"
	"github.com/EASS-HIT-PART-A-2025-CLASS-VII/ezlife/internal/task/repository"
	pkgLog "github.com/EASS-HIT-PART-A-2025-CLASS-VII/ezlife/pkg/log"
)

// Repository talks to the task backend's /tasks endpoints through the
// gateway pipeline.
type Repository struct {
	gw *gateway.Gateway
	l  pkgLog.Logger
}

var _ repository.TaskRepository = (*Repository)(nil)

// New creates a task repository over the gateway.
func New(gw *gateway.Gateway, l pkgLog.Logger) *Repository {
	return &Repository{gw: gw, l: l}
}

// wireTask is the task backend's JSON shape. Timestamps arrive as strings
// that are not always strict RFC3339 (the backend emits naive isoformat),
// so they are parsed leniently here.
type wireTask struct {
	ID               string                `json:"id"`
	Description      string                `json:"description"`
	Completed        bool                  `json:"completed"`
	EstimatedMinutes int                   `json:"estimated_minutes"`
	CreatedAt        string                `json:"created_at"`
	DueDate          string                `json:"due_date"`
	Breakdown        []model.BreakdownStep `json:"breakdown"`
}

func (w wireTask) toModel() model.Task {
	return model.Task{
		ID:               w.ID,
		Description:      w.Description,
		Completed:        w.Completed,
		EstimatedMinutes: w.EstimatedMinutes,
		CreatedAt:        parseTimestamp(w.CreatedAt),
		DueDate:          parseTimestamp(w.DueDate),
		Breakdown:        w.Breakdown,
	}
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

func parseTimestamp(s string) *time.Time {
	if s == "" {
		return nil
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}

// List fetches the full task list.
func (r *Repository) List(ctx context.Context) ([]model.Task, error) {
	var wire []wireTask
	if err := r.gw.Get(ctx, "/tasks", &wire); err != nil {
		return nil, err
	}
	tasks := make([]model.Task, 0, len(wire))
	for _, w := range wire {
		tasks = append(tasks, w.toModel())
	}
	r.l.Debugf(ctx, "fetched %d tasks", len(tasks))
	return tasks, nil
}

// createPayload is the POST /tasks request body. estimated_minutes is
// omitted when zero so the server attaches its own estimate.
type createPayload struct {
	Description      string `json:"description"`
	Completed        bool   `json:"completed"`
	EstimatedMinutes int    `json:"estimated_minutes,omitempty"`
	DueDate          string `json:"due_date,omitempty"`
}

// Create posts a new task and returns the server's authoritative record.
func (r *Repository) Create(ctx context.Context, opt repository.CreateTaskOptions) (model.Task, error) {
	payload := createPayload{
		Description:      opt.Description,
		EstimatedMinutes: opt.EstimatedMinutes,
	}
	if opt.DueDate != nil {
		payload.DueDate = opt.DueDate.Format(time.RFC3339)
	}

	var wire wireTask
	if err := r.gw.Post(ctx, "/tasks", payload, &wire); err != nil {
		return model.Task{}, err
	}
	return wire.toModel(), nil
}

// Toggle flips the completion flag. The backend needs no body for this.
func (r *Repository) Toggle(ctx context.Context, id string) error {
	return r.gw.Patch(ctx, fmt.Sprintf("/tasks/%s", id), nil, nil)
}

// Delete removes the task server-side.
func (r *Repository) Delete(ctx context.Context, id string) error {
	return r.gw.Delete(ctx, fmt.Sprintf("/tasks/%s", id))
}
