package services

import (
	"errors"
)

// Error kinds surfaced by the engine. Validation, authorization and
// state-precondition failures are returned verbatim to the caller; they are
// not transient and must not be retried. Notification and email failures are
// swallowed at the point of emission and never reach the caller.
var (
	ErrNotFound          = errors.New("record not found")
	ErrForbidden         = errors.New("forbidden")
	ErrSelfReference     = errors.New("operation cannot target yourself")
	ErrAlreadyFollowing  = errors.New("already following this user")
	ErrNotFollowing      = errors.New("not following this user")
	ErrPrincipalNotFound = errors.New("authenticated user not found")
)

// ValidationError reports malformed or empty input.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}
