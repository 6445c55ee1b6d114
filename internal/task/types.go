package task

import (
	"time"

	"taskdates/internal/model"
	"taskdates/pkg/dateparse"
	"taskdates/pkg/recurrence"
)

// --- UseCase Inputs ---

// InterpretInput is the input for date phrase interpretation.
// A zero Anchor means "today" is resolved by the use case.
type InterpretInput struct {
	Text   string
	Anchor time.Time
}

// NextOccurrenceInput is the input for computing a rule's next date.
type NextOccurrenceInput struct {
	Rule   recurrence.Rule
	Anchor time.Time
}

// CreateInput is the input for creating a task. DueText and DueDate are
// mutually exclusive; when DueText is set the phrase is interpreted and
// the top-ranked candidate becomes the due date.
type CreateInput struct {
	Title      string
	Notes      string
	DueText    string
	DueDate    *time.Time
	Recurrence *recurrence.Rule
}

// ListInput holds filter and pagination parameters for listing tasks.
type ListInput struct {
	Completed *bool
	SeriesID  string
	Limit     int
	Offset    int
}

// --- UseCase Outputs ---

type InterpretOutput struct {
	Candidates []dateparse.Candidate
	Anchor     time.Time
}

// NextOccurrenceOutput carries the computed date. None is true when the
// rule produces no further occurrence (past its end date, or the rule
// names a slot that never exists again within the search horizon).
type NextOccurrenceOutput struct {
	Next time.Time
	None bool
}

type CreateOutput struct {
	Task model.Task
	// Interpreted holds the candidate that resolved DueText, if any.
	Interpreted *dateparse.Candidate
}

type ListOutput struct {
	Tasks  []model.Task
	Total  int
	Limit  int
	Offset int
}

type DetailOutput struct {
	Task model.Task
}

// CompleteOutput holds the completed task and, for recurring tasks, the
// next occurrence spawned in the same series (nil when the series is
// retired).
type CompleteOutput struct {
	Task model.Task
	Next *model.Task
}

type GenerateDueOutput struct {
	Spawned []model.Task
	Count   int
}
