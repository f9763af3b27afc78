package model

import "time"

// Task represents a single task as served by the task backend.
type Task struct {
	ID               string          `json:"id"`
	Description      string          `json:"description"`
	Completed        bool            `json:"completed"`
	EstimatedMinutes int             `json:"estimated_minutes,omitempty"` // server/AI-derived when omitted on create
	DueDate          *time.Time      `json:"due_date,omitempty"`
	CreatedAt        *time.Time      `json:"created_at,omitempty"`
	Breakdown        []BreakdownStep `json:"breakdown,omitempty"` // server-supplied, pass-through
	Pending          bool            `json:"-"`                   // true while a local placeholder awaits server confirmation
}

// BreakdownStep is one entry of a server-generated task breakdown. The
// percentages are whatever the estimation service produced; they are not
// validated and are not guaranteed to sum to 100.
type BreakdownStep struct {
	Step    string  `json:"step"`
	Summary string  `json:"summary"`
	Percent float64 `json:"percent"`
}
