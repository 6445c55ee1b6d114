package repository

import (
	"time"

	"taskdates/pkg/recurrence"
)

// CreateTaskOptions holds parameters for inserting a new Task.
type CreateTaskOptions struct {
	ID         string           // UUID, generated by the use case
	SeriesID   string           // UUID; equals ID for the first task of a series
	Title      string
	Notes      string
	DueDate    *time.Time
	Recurrence *recurrence.Rule
}

// GetOneTaskOptions holds filter parameters for fetching a single Task.
// All non-empty fields are applied as AND conditions.
type GetOneTaskOptions struct {
	ID       string
	SeriesID string
	DueDate  *time.Time
}

// ListTasksOptions holds filter and pagination parameters for listing Tasks.
type ListTasksOptions struct {
	Completed *bool
	SeriesID  string
	Limit     int
	Offset    int
	OrderBy   string
}

// UpdateTaskOptions holds parameters for updating an existing Task.
// Nil pointer fields are left untouched.
type UpdateTaskOptions struct {
	ID          string
	Title       string
	Notes       *string
	DueDate     *time.Time
	Completed   *bool
	CompletedAt *time.Time
}
