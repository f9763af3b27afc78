package repository

import "time"

// CreateTaskOptions holds the parameters for creating a task. When
// EstimatedMinutes is zero the server attaches its own estimate; when
// DueDate is nil the server picks a default.
type CreateTaskOptions struct {
	Description      string
	EstimatedMinutes int
	DueDate          *time.Time
}
