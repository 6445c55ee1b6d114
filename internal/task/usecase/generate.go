package usecase

import (
	"context"

	"taskdates/internal/model"
	"taskdates/internal/task"
	"taskdates/pkg/gcalendar"
	"taskdates/pkg/recurrence"
)

// GenerateDue scans open recurring tasks and spawns the upcoming
// occurrence for every series whose due date already passed. The
// overdue task itself stays open; only the next slot is materialized
// so the series never falls silent.
func (uc *implUseCase) GenerateDue(ctx context.Context) (task.GenerateDueOutput, error) {
	today := uc.anchorOrToday(uc.now().UTC())

	open, err := uc.repo.ListOpenRecurring(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.GenerateDue ListOpenRecurring: %v", err)
		return task.GenerateDueOutput{}, err
	}

	out := task.GenerateDueOutput{}
	seen := map[string]bool{}

	for _, t := range open {
		if t.DueDate == nil || !t.DueDate.Before(today) {
			continue
		}
		// One spawn per series per run.
		if seen[t.SeriesID] {
			continue
		}
		seen[t.SeriesID] = true

		// Walk the rule forward until it clears today, so a long-overdue
		// series lands on its genuinely upcoming slot.
		next, ok := recurrence.NextOccurrence(*t.Recurrence, *t.DueDate)
		for ok && next.Before(today) {
			next, ok = recurrence.NextOccurrence(*t.Recurrence, next)
		}
		if !ok {
			uc.l.Infof(ctx, "series %s exhausted during catch-up", t.SeriesID)
			continue
		}

		spawned, created, err := uc.ensureOccurrence(ctx, t, next)
		if err != nil {
			return task.GenerateDueOutput{}, err
		}
		if created {
			out.Spawned = append(out.Spawned, *spawned)
		}
	}

	out.Count = len(out.Spawned)
	if out.Count > 0 {
		uc.l.Infof(ctx, "generated %d recurring occurrence(s)", out.Count)
	}
	return out, nil
}

// mirrorToCalendar pushes a dated task to Google Calendar, best effort.
// Mirroring failures are logged, never propagated.
func (uc *implUseCase) mirrorToCalendar(ctx context.Context, t model.Task) {
	if uc.calendar == nil || t.DueDate == nil {
		return
	}

	_, err := uc.calendar.CreateEvent(ctx, gcalendar.CreateEventRequest{
		CalendarID:  uc.calendarID,
		Summary:     t.Title,
		Description: t.Notes,
		DueDate:     *t.DueDate,
	})
	if err != nil {
		uc.l.Warnf(ctx, "calendar mirror failed for task %s: %v", t.ID, err)
	}
}
