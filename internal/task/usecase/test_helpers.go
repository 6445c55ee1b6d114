package usecase

import (
	"context"
	"sort"
	"time"

	"taskdates/internal/model"
	repo "taskdates/internal/task/repository"
	"taskdates/pkg/dateparse"
	"taskdates/pkg/log"
)

// fakeRepo is an in-memory repository.Repository used by the use case
// tests. It mirrors the store's contract, including the zero-value
// not-found convention.
type fakeRepo struct {
	tasks map[string]model.Task
	order []string
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{tasks: map[string]model.Task{}}
}

func (f *fakeRepo) CreateTask(_ context.Context, opt repo.CreateTaskOptions) (model.Task, error) {
	now := time.Now().UTC()
	t := model.Task{
		ID:         opt.ID,
		SeriesID:   opt.SeriesID,
		Title:      opt.Title,
		Notes:      opt.Notes,
		DueDate:    opt.DueDate,
		Recurrence: opt.Recurrence,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	f.tasks[t.ID] = t
	f.order = append(f.order, t.ID)
	return t, nil
}

func (f *fakeRepo) GetOneTask(_ context.Context, opt repo.GetOneTaskOptions) (model.Task, error) {
	for _, id := range f.order {
		t := f.tasks[id]
		if opt.ID != "" && t.ID != opt.ID {
			continue
		}
		if opt.SeriesID != "" && t.SeriesID != opt.SeriesID {
			continue
		}
		if opt.DueDate != nil && (t.DueDate == nil || !t.DueDate.Equal(*opt.DueDate)) {
			continue
		}
		return t, nil
	}
	return model.Task{}, nil
}

func (f *fakeRepo) ListTasks(_ context.Context, opt repo.ListTasksOptions) ([]model.Task, int, error) {
	var all []model.Task
	for _, id := range f.order {
		t := f.tasks[id]
		if opt.Completed != nil && t.Completed != *opt.Completed {
			continue
		}
		if opt.SeriesID != "" && t.SeriesID != opt.SeriesID {
			continue
		}
		all = append(all, t)
	}

	sort.SliceStable(all, func(i, j int) bool {
		a, b := all[i].DueDate, all[j].DueDate
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		default:
			return a.Before(*b)
		}
	})

	total := len(all)
	if opt.Offset > 0 {
		if opt.Offset >= len(all) {
			all = nil
		} else {
			all = all[opt.Offset:]
		}
	}
	if opt.Limit > 0 && len(all) > opt.Limit {
		all = all[:opt.Limit]
	}
	return all, total, nil
}

func (f *fakeRepo) UpdateTask(_ context.Context, opt repo.UpdateTaskOptions) (model.Task, error) {
	t, ok := f.tasks[opt.ID]
	if !ok {
		return model.Task{}, nil
	}
	if opt.Title != "" {
		t.Title = opt.Title
	}
	if opt.Notes != nil {
		t.Notes = *opt.Notes
	}
	if opt.DueDate != nil {
		t.DueDate = opt.DueDate
	}
	if opt.Completed != nil {
		t.Completed = *opt.Completed
	}
	if opt.CompletedAt != nil {
		t.CompletedAt = opt.CompletedAt
	}
	t.UpdatedAt = time.Now().UTC()
	f.tasks[opt.ID] = t
	return t, nil
}

func (f *fakeRepo) ListOpenRecurring(_ context.Context) ([]model.Task, error) {
	var out []model.Task
	for _, id := range f.order {
		t := f.tasks[id]
		if !t.Completed && t.IsRecurring() {
			out = append(out, t)
		}
	}
	return out, nil
}

// newTestUseCase builds a use case with a pinned clock (Wednesday
// 2025-01-08) and no calendar client.
func newTestUseCase() (*implUseCase, *fakeRepo) {
	r := newFakeRepo()
	uc := New(log.NewNop(), r, dateparse.NewParser(), nil, "")
	uc.now = func() time.Time {
		return time.Date(2025, time.January, 8, 12, 30, 0, 0, time.UTC)
	}
	return uc, r
}
