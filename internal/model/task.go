package model

import (
	"time"

	"taskdates/pkg/recurrence"
)

// Task represents a single dated task. Recurring tasks carry a
// recurrence rule; every occurrence spawned from that rule shares the
// same SeriesID so the chain can be followed.
type Task struct {
	ID          string           // UUID
	SeriesID    string           // UUID shared by all occurrences of a recurring task
	Title       string
	Notes       string
	DueDate     *time.Time       // plain calendar date at midnight UTC; nil when undated
	Recurrence  *recurrence.Rule // nil for one-off tasks
	Completed   bool
	CompletedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsRecurring reports whether the task carries a recurrence rule.
func (t Task) IsRecurring() bool {
	return t.Recurrence != nil && !t.Recurrence.IsZero()
}
