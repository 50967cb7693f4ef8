package task

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when the referenced task id does not exist,
// including ids of previously deleted tasks.
var ErrNotFound = errors.New("task not found")

// ValidationError reports malformed input, e.g. an empty summary.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// InvalidTransitionError reports a lifecycle move the state machine
// rejects. It carries the task's current state so the caller can decide
// what to do.
type InvalidTransitionError struct {
	ID      int64
	Op      string
	Status  Status
	Waiting bool
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("cannot %s task %d: status=%s waiting=%t", e.Op, e.ID, e.Status, e.Waiting)
}
