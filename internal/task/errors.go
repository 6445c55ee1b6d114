package task

import "errors"

// Domain-specific errors for the task package.
var (
	ErrEmptyText       = errors.New("input text is empty")
	ErrEmptyTitle      = errors.New("task title is empty")
	ErrNoDateMatch     = errors.New("no date interpretation found")
	ErrTaskNotFound    = errors.New("task not found")
	ErrAlreadyComplete = errors.New("task is already completed")
	ErrInvalidDueDate  = errors.New("due date is not a valid calendar date")
	ErrInvalidRule     = errors.New("recurrence rule is invalid")
)
