package task

import (
	"time"

	"github.com/EASS-HIT-PART-A-2025-CLASS-VII/ezlife/internal/model"
)

// AddInput is the input for creating a task. A zero EstimatedMinutes asks
// the server to derive one.
type AddInput struct {
	Description      string
	EstimatedMinutes int
	DueDate          *time.Time
}

// Views is the categorized partition of the working copy. Completed wins
// over every time bucket; a task without a due date appears only in All
// (and Completed when done).
type Views struct {
	All       []model.Task
	Today     []model.Task
	Upcoming  []model.Task
	Overdue   []model.Task
	Completed []model.Task
}

// Stats are aggregate numbers over the working copy.
type Stats struct {
	Total          int
	Completed      int
	CompletionRate float64 // 0 for an empty list
}
