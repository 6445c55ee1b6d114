package sqlite

import (
	"fmt"
	"strings"
	"time"

	repo "taskdates/internal/task/repository"
	"taskdates/pkg/calendar"
)

// buildGetOneQuery builds WHERE clause + args for GetOneTask.
// All non-empty fields are applied as AND conditions.
func (r *implRepository) buildGetOneQuery(opt repo.GetOneTaskOptions) (string, []any) {
	var conditions []string
	var args []any

	if opt.ID != "" {
		conditions = append(conditions, "id = ?")
		args = append(args, opt.ID)
	}
	if opt.SeriesID != "" {
		conditions = append(conditions, "series_id = ?")
		args = append(args, opt.SeriesID)
	}
	if opt.DueDate != nil {
		conditions = append(conditions, "due_date = ?")
		args = append(args, calendar.FormatISO(*opt.DueDate))
	}

	if len(conditions) == 0 {
		return "1=1", args
	}
	return strings.Join(conditions, " AND "), args
}

// buildCountQuery builds WHERE clause + args for counting Tasks (no pagination).
func (r *implRepository) buildCountQuery(opt repo.ListTasksOptions) (string, []any) {
	conditions, args := r.listConditions(opt)
	if len(conditions) == 0 {
		return "1=1", args
	}
	return strings.Join(conditions, " AND "), args
}

// buildListQuery builds the full WHERE + ORDER + LIMIT + OFFSET clause for ListTasks.
func (r *implRepository) buildListQuery(opt repo.ListTasksOptions) (string, []any) {
	var parts []string
	conditions, args := r.listConditions(opt)

	if len(conditions) > 0 {
		parts = append(parts, "WHERE "+strings.Join(conditions, " AND "))
	}

	orderBy := opt.OrderBy
	if orderBy == "" {
		// Undated tasks sink to the bottom.
		orderBy = "due_date IS NULL, due_date ASC, created_at ASC"
	}
	parts = append(parts, fmt.Sprintf("ORDER BY %s", orderBy))

	if opt.Limit > 0 {
		parts = append(parts, "LIMIT ?")
		args = append(args, opt.Limit)
		if opt.Offset > 0 {
			parts = append(parts, "OFFSET ?")
			args = append(args, opt.Offset)
		}
	}

	return strings.Join(parts, " "), args
}

func (r *implRepository) listConditions(opt repo.ListTasksOptions) ([]string, []any) {
	var conditions []string
	var args []any

	if opt.Completed != nil {
		conditions = append(conditions, "completed = ?")
		args = append(args, boolToInt(*opt.Completed))
	}
	if opt.SeriesID != "" {
		conditions = append(conditions, "series_id = ?")
		args = append(args, opt.SeriesID)
	}

	return conditions, args
}

// buildUpdateQuery builds the SET clause + args for UpdateTask.
// updated_at is always bumped; nil pointer fields are left untouched.
func (r *implRepository) buildUpdateQuery(opt repo.UpdateTaskOptions) (string, []any) {
	var sets []string
	var args []any

	if opt.Title != "" {
		sets = append(sets, "title = ?")
		args = append(args, opt.Title)
	}
	if opt.Notes != nil {
		sets = append(sets, "notes = ?")
		args = append(args, *opt.Notes)
	}
	if opt.DueDate != nil {
		sets = append(sets, "due_date = ?")
		args = append(args, calendar.FormatISO(*opt.DueDate))
	}
	if opt.Completed != nil {
		sets = append(sets, "completed = ?")
		args = append(args, boolToInt(*opt.Completed))
	}
	if opt.CompletedAt != nil {
		sets = append(sets, "completed_at = ?")
		args = append(args, opt.CompletedAt.UTC().Format(time.RFC3339))
	}

	sets = append(sets, "updated_at = ?")
	args = append(args, time.Now().UTC().Format(time.RFC3339))

	return strings.Join(sets, ", "), args
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
