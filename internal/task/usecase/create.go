package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"taskdates/internal/task"
	repo "taskdates/internal/task/repository"
	"taskdates/pkg/calendar"
	"taskdates/pkg/dateparse"
)

// Create creates a new task. When DueText is set, the phrase is
// interpreted against today and the top-ranked candidate becomes the
// due date.
func (uc *implUseCase) Create(ctx context.Context, input task.CreateInput) (task.CreateOutput, error) {
	if strings.TrimSpace(input.Title) == "" {
		return task.CreateOutput{}, task.ErrEmptyTitle
	}
	if input.Recurrence != nil {
		if err := input.Recurrence.Validate(); err != nil {
			return task.CreateOutput{}, fmt.Errorf("%w: %v", task.ErrInvalidRule, err)
		}
	}

	dueDate := input.DueDate
	var interpreted *dateparse.Candidate

	if input.DueText != "" {
		out, err := uc.Interpret(ctx, task.InterpretInput{Text: input.DueText})
		if err != nil {
			return task.CreateOutput{}, err
		}
		if len(out.Candidates) == 0 {
			return task.CreateOutput{}, task.ErrNoDateMatch
		}

		top := out.Candidates[0]
		d, err := calendar.ParseISO(top.ISODate)
		if err != nil {
			uc.l.Errorf(ctx, "uc.Create parse candidate %q: %v", top.ISODate, err)
			return task.CreateOutput{}, task.ErrInvalidDueDate
		}
		dueDate = &d
		interpreted = &top
	} else if dueDate != nil {
		d := calendar.StartOfDay(*dueDate)
		dueDate = &d
	}

	// A recurrence rule needs a first due date to anchor the series.
	if input.Recurrence != nil && dueDate == nil {
		return task.CreateOutput{}, task.ErrInvalidDueDate
	}

	id := uuid.NewString()
	created, err := uc.repo.CreateTask(ctx, repo.CreateTaskOptions{
		ID:         id,
		SeriesID:   id,
		Title:      strings.TrimSpace(input.Title),
		Notes:      input.Notes,
		DueDate:    dueDate,
		Recurrence: input.Recurrence,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateTask: %v", err)
		return task.CreateOutput{}, err
	}

	uc.mirrorToCalendar(ctx, created)

	return task.CreateOutput{Task: created, Interpreted: interpreted}, nil
}

// List returns a page of tasks.
func (uc *implUseCase) List(ctx context.Context, input task.ListInput) (task.ListOutput, error) {
	limit := input.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	offset := input.Offset
	if offset < 0 {
		offset = 0
	}

	tasks, total, err := uc.repo.ListTasks(ctx, repo.ListTasksOptions{
		Completed: input.Completed,
		SeriesID:  input.SeriesID,
		Limit:     limit,
		Offset:    offset,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListTasks: %v", err)
		return task.ListOutput{}, err
	}

	return task.ListOutput{
		Tasks:  tasks,
		Total:  total,
		Limit:  limit,
		Offset: offset,
	}, nil
}

// Detail returns a single task by ID.
func (uc *implUseCase) Detail(ctx context.Context, id string) (task.DetailOutput, error) {
	t, err := uc.repo.GetOneTask(ctx, repo.GetOneTaskOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail GetOneTask: %v", err)
		return task.DetailOutput{}, err
	}
	if t.ID == "" {
		return task.DetailOutput{}, task.ErrTaskNotFound
	}
	return task.DetailOutput{Task: t}, nil
}
