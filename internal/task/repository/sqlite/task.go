package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"taskdates/internal/model"
	repo "taskdates/internal/task/repository"
	"taskdates/pkg/calendar"
	"taskdates/pkg/recurrence"
)

const taskColumns = `id, series_id, title, notes, due_date, recurrence, completed, completed_at, created_at, updated_at`

// CreateTask inserts a new Task row and returns the created entity.
func (r *implRepository) CreateTask(ctx context.Context, opt repo.CreateTaskOptions) (model.Task, error) {
	const query = `
		INSERT INTO tasks (id, series_id, title, notes, due_date, recurrence, completed, completed_at, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, 0, NULL, ?, ?)`

	now := time.Now().UTC()

	var due any
	if opt.DueDate != nil {
		due = calendar.FormatISO(*opt.DueDate)
	}

	var rule any
	if opt.Recurrence != nil {
		b, err := json.Marshal(opt.Recurrence)
		if err != nil {
			r.l.Errorf(ctx, "%s marshal rule: %v", r.dsn("CreateTask"), err)
			return model.Task{}, repo.ErrFailedToInsert
		}
		rule = string(b)
	}

	_, err := r.db.ExecContext(ctx, query,
		opt.ID, opt.SeriesID, opt.Title, opt.Notes, due, rule,
		now.Format(time.RFC3339), now.Format(time.RFC3339),
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateTask"), err)
		return model.Task{}, repo.ErrFailedToInsert
	}

	return r.GetOneTask(ctx, repo.GetOneTaskOptions{ID: opt.ID})
}

// GetOneTask retrieves a single Task by the provided filters (AND condition).
// Returns zero-value Task (ID == "") when not found — do NOT return error for not-found.
func (r *implRepository) GetOneTask(ctx context.Context, opt repo.GetOneTaskOptions) (model.Task, error) {
	mods, args := r.buildGetOneQuery(opt)
	query := fmt.Sprintf("SELECT %s FROM tasks WHERE %s LIMIT 1", taskColumns, mods)

	t, err := scanTask(r.db.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return model.Task{}, nil // not found → zero value, no error
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneTask"), err)
		return model.Task{}, repo.ErrFailedToGet
	}
	return t, nil
}

// ListTasks returns a paginated list of Tasks and the total count.
func (r *implRepository) ListTasks(ctx context.Context, opt repo.ListTasksOptions) ([]model.Task, int, error) {
	// 1. Count total (without pagination)
	countMods, countArgs := r.buildCountQuery(opt)
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM tasks WHERE %s", countMods)
	var total int
	if err := r.db.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		r.l.Errorf(ctx, "%s count: %v", r.dsn("ListTasks"), err)
		return nil, 0, repo.ErrFailedToList
	}

	// 2. Fetch page
	mods, args := r.buildListQuery(opt)
	query := fmt.Sprintf("SELECT %s FROM tasks %s", taskColumns, mods)
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListTasks"), err)
		return nil, 0, repo.ErrFailedToList
	}
	defer rows.Close()

	var tasks []model.Task
	for rows.Next() {
		t, scanErr := scanTask(rows)
		if scanErr != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListTasks"), scanErr)
			return nil, 0, repo.ErrFailedToList
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListTasks"), err)
		return nil, 0, repo.ErrFailedToList
	}
	return tasks, total, nil
}

// UpdateTask updates a Task by ID and returns the updated entity.
// Returns zero-value Task when the ID does not exist.
func (r *implRepository) UpdateTask(ctx context.Context, opt repo.UpdateTaskOptions) (model.Task, error) {
	sets, args := r.buildUpdateQuery(opt)
	query := fmt.Sprintf("UPDATE tasks SET %s WHERE id = ?", sets)
	args = append(args, opt.ID)

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateTask"), err)
		return model.Task{}, repo.ErrFailedToUpdate
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return model.Task{}, nil
	}

	return r.GetOneTask(ctx, repo.GetOneTaskOptions{ID: opt.ID})
}

// ListOpenRecurring returns every incomplete task with a recurrence rule.
func (r *implRepository) ListOpenRecurring(ctx context.Context) ([]model.Task, error) {
	query := fmt.Sprintf(
		"SELECT %s FROM tasks WHERE completed = 0 AND recurrence IS NOT NULL ORDER BY due_date ASC",
		taskColumns,
	)
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListOpenRecurring"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var tasks []model.Task
	for rows.Next() {
		t, scanErr := scanTask(rows)
		if scanErr != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListOpenRecurring"), scanErr)
			return nil, repo.ErrFailedToList
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListOpenRecurring"), err)
		return nil, repo.ErrFailedToList
	}
	return tasks, nil
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// scanTask maps one tasks row onto model.Task, decoding the stored
// recurrence JSON and the TEXT-encoded dates.
func scanTask(s scanner) (model.Task, error) {
	var (
		t           model.Task
		due         sql.NullString
		rule        sql.NullString
		completedAt sql.NullString
		createdAt   string
		updatedAt   string
	)

	err := s.Scan(
		&t.ID, &t.SeriesID, &t.Title, &t.Notes,
		&due, &rule, &t.Completed, &completedAt,
		&createdAt, &updatedAt,
	)
	if err != nil {
		return model.Task{}, err
	}

	if due.Valid {
		d, parseErr := calendar.ParseISO(due.String)
		if parseErr != nil {
			return model.Task{}, fmt.Errorf("bad due_date %q: %w", due.String, parseErr)
		}
		t.DueDate = &d
	}
	if rule.Valid {
		var rr recurrence.Rule
		if jsonErr := json.Unmarshal([]byte(rule.String), &rr); jsonErr != nil {
			return model.Task{}, fmt.Errorf("bad recurrence payload: %w", jsonErr)
		}
		t.Recurrence = &rr
	}
	if completedAt.Valid {
		ts, parseErr := time.Parse(time.RFC3339, completedAt.String)
		if parseErr != nil {
			return model.Task{}, fmt.Errorf("bad completed_at %q: %w", completedAt.String, parseErr)
		}
		t.CompletedAt = &ts
	}
	if t.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
		return model.Task{}, fmt.Errorf("bad created_at %q: %w", createdAt, err)
	}
	if t.UpdatedAt, err = time.Parse(time.RFC3339, updatedAt); err != nil {
		return model.Task{}, fmt.Errorf("bad updated_at %q: %w", updatedAt, err)
	}

	return t, nil
}
