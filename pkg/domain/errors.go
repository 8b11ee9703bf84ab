package domain

import (
	"errors"
	"fmt"
)

// ErrMissingTaskName is returned when a task is built before a name has been set.
var ErrMissingTaskName = errors.New("task name is required")

// ErrDuplicateTask is returned when a task name is registered twice in the same pipeline.
var ErrDuplicateTask = errors.New("duplicate task")

// DuplicateTaskError reports the name that collided with an existing task.
// It matches ErrDuplicateTask under errors.Is.
type DuplicateTaskError struct {
	Name string
}

func (e *DuplicateTaskError) Error() string {
	return fmt.Sprintf("duplicate task %q", e.Name)
}

// Is allows errors.Is(err, ErrDuplicateTask).
func (e *DuplicateTaskError) Is(target error) bool {
	return target == ErrDuplicateTask
}
