package task

import "errors"

// Domain-specific errors for the task package.
var (
	ErrNotFound = errors.New("task not found in working copy")
)
