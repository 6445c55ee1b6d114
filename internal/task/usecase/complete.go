package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"taskdates/internal/model"
	"taskdates/internal/task"
	repo "taskdates/internal/task/repository"
	"taskdates/pkg/recurrence"
)

// Complete marks a task done. For recurring tasks it spawns the next
// occurrence in the same series; when the rule produces no further
// date the series is retired silently.
func (uc *implUseCase) Complete(ctx context.Context, id string) (task.CompleteOutput, error) {
	t, err := uc.repo.GetOneTask(ctx, repo.GetOneTaskOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Complete GetOneTask: %v", err)
		return task.CompleteOutput{}, err
	}
	if t.ID == "" {
		return task.CompleteOutput{}, task.ErrTaskNotFound
	}
	if t.Completed {
		return task.CompleteOutput{}, task.ErrAlreadyComplete
	}

	done := true
	now := uc.now().UTC()
	updated, err := uc.repo.UpdateTask(ctx, repo.UpdateTaskOptions{
		ID:          id,
		Completed:   &done,
		CompletedAt: &now,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Complete UpdateTask: %v", err)
		return task.CompleteOutput{}, err
	}

	out := task.CompleteOutput{Task: updated}

	if updated.IsRecurring() && updated.DueDate != nil {
		next, err := uc.spawnNext(ctx, updated, *updated.DueDate)
		if err != nil {
			return task.CompleteOutput{}, err
		}
		out.Next = next
	}

	return out, nil
}

// spawnNext creates the series' next occurrence after the anchor date.
// Returns nil when the rule is exhausted; returns the existing task when
// the occurrence was already materialized.
func (uc *implUseCase) spawnNext(ctx context.Context, t model.Task, anchor time.Time) (*model.Task, error) {
	next, ok := recurrence.NextOccurrence(*t.Recurrence, anchor)
	if !ok {
		uc.l.Infof(ctx, "series %s retired, no occurrence after %s", t.SeriesID, anchor.Format("2006-01-02"))
		return nil, nil
	}
	spawned, _, err := uc.ensureOccurrence(ctx, t, next)
	return spawned, err
}

// ensureOccurrence creates the series occurrence on the given date if it
// does not exist yet. The bool reports whether a new task was created.
func (uc *implUseCase) ensureOccurrence(ctx context.Context, t model.Task, next time.Time) (*model.Task, bool, error) {
	existing, err := uc.repo.GetOneTask(ctx, repo.GetOneTaskOptions{
		SeriesID: t.SeriesID,
		DueDate:  &next,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ensureOccurrence GetOneTask: %v", err)
		return nil, false, err
	}
	if existing.ID != "" {
		return &existing, false, nil
	}

	spawned, err := uc.repo.CreateTask(ctx, repo.CreateTaskOptions{
		ID:         uuid.NewString(),
		SeriesID:   t.SeriesID,
		Title:      t.Title,
		Notes:      t.Notes,
		DueDate:    &next,
		Recurrence: t.Recurrence,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ensureOccurrence CreateTask: %v", err)
		return nil, false, err
	}

	uc.mirrorToCalendar(ctx, spawned)

	return &spawned, true, nil
}
