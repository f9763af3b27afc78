package gateway

import (
	"errors"
	"fmt"
)

// Failure taxonomy for everything that crosses the pipeline. Callers match
// with errors.Is; RejectedError and ValidationError carry extra payload and
// still match their sentinel.
var (
	// ErrSessionExpired: the server rejected the credential. The pipeline has
	// already cleared the store and notified session-ended subscribers.
	ErrSessionExpired = errors.New("session expired")

	// ErrRequestRejected: the server answered with a non-2xx status and
	// (usually) a structured error body.
	ErrRequestRejected = errors.New("request rejected")

	// ErrUnreachable: the request was dispatched but no response arrived.
	ErrUnreachable = errors.New("service unreachable")

	// ErrValidation: the request was rejected client-side before dispatch.
	ErrValidation = errors.New("validation rejected")
)

// RejectedError is a server-reported failure. Message is the server's own
// wording when the body carried one, verbatim, so the presentation layer can
// surface it unchanged.
type RejectedError struct {
	Status  int
	Message string
}

func (e *RejectedError) Error() string {
	return fmt.Sprintf("request rejected (%d): %s", e.Status, e.Message)
}

func (e *RejectedError) Is(target error) bool { return target == ErrRequestRejected }

// ValidationError is a client-side rejection made before any network call.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return "validation rejected: " + e.Reason }

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }
