package tasks

import "errors"

// Domain-specific errors for the tasks package.
var (
	ErrNoTasks             = errors.New("no tasks provided")
	ErrBatchTooLarge       = errors.New("task batch exceeds maximum size")
	ErrEmptyTitle          = errors.New("task title is empty")
	ErrInvalidImportance   = errors.New("importance must be between 1 and 10")
	ErrInvalidHours        = errors.New("estimated hours must be non-negative")
	ErrDuplicateID         = errors.New("duplicate task id in batch")
	ErrUnsupportedStrategy = errors.New("unsupported strategy")
)
