package activity

import "errors"

var (
	ErrNotFound = errors.New("activity not found in working copy")
)
