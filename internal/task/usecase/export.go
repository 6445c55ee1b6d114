package usecase

import (
	"context"

	ics "github.com/arran4/golang-ical"

	repo "taskdates/internal/task/repository"
)

// ExportICS renders every open dated task as an all-day VEVENT.
// Recurring tasks carry an RRULE so calendar clients expand the series
// themselves.
func (uc *implUseCase) ExportICS(ctx context.Context) ([]byte, error) {
	open := false
	tasks, _, err := uc.repo.ListTasks(ctx, repo.ListTasksOptions{Completed: &open})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ExportICS ListTasks: %v", err)
		return nil, err
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//taskdates//calendar//EN")

	for _, t := range tasks {
		if t.DueDate == nil {
			continue
		}

		ev := cal.AddEvent(t.ID)
		ev.SetDtStampTime(uc.now().UTC())
		ev.SetSummary(t.Title)
		if t.Notes != "" {
			ev.SetDescription(t.Notes)
		}
		// All-day events end on the following date (exclusive).
		ev.SetAllDayStartAt(*t.DueDate)
		ev.SetAllDayEndAt(t.DueDate.AddDate(0, 0, 1))

		if t.IsRecurring() {
			rr, rrErr := t.Recurrence.RRule(*t.DueDate)
			if rrErr != nil {
				uc.l.Warnf(ctx, "task %s rule not exportable: %v", t.ID, rrErr)
				continue
			}
			ev.AddRrule(rr.OrigOptions.RRuleString())
		}
	}

	return []byte(cal.Serialize()), nil
}
