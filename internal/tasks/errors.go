package tasks

import (
	"fmt"

	"github.com/abhisek/mathcoach/internal/store"
)

// ErrNotFound is returned for absent tasks and profiles, and for tasks the
// student is not allowed to see.
var ErrNotFound = store.ErrNotFound

// ValidationError reports caller misuse. Nothing is persisted when one is
// returned.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func invalid(field, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// AuthorizationError is returned when a profile may not perform an action.
type AuthorizationError struct {
	Action string
}

func (e *AuthorizationError) Error() string {
	return fmt.Sprintf("not allowed to %s", e.Action)
}
