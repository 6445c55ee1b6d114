package task

import "context"

// UseCase defines the business logic interface for the task domain.
type UseCase interface {
	// Interpret resolves a natural-language date phrase into candidate dates.
	Interpret(ctx context.Context, input InterpretInput) (InterpretOutput, error)

	// NextOccurrence computes the next date of a recurrence rule after an anchor.
	NextOccurrence(ctx context.Context, input NextOccurrenceInput) (NextOccurrenceOutput, error)

	// Task CRUD
	Create(ctx context.Context, input CreateInput) (CreateOutput, error)
	List(ctx context.Context, input ListInput) (ListOutput, error)
	Detail(ctx context.Context, id string) (DetailOutput, error)
	Complete(ctx context.Context, id string) (CompleteOutput, error)

	// GenerateDue scans open recurring tasks and spawns the upcoming
	// occurrence for any series that fell behind. Run by the scheduler.
	GenerateDue(ctx context.Context) (GenerateDueOutput, error)

	// ExportICS renders all open dated tasks as an iCalendar document.
	ExportICS(ctx context.Context) ([]byte, error)
}
