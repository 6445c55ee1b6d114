package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"taskdates/internal/task/repository"
	"taskdates/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a new SQLite-backed Repository for the task domain.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("task/repository/sqlite: db is required")
	}
	return &implRepository{db: db, l: l}
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("task/repository/sqlite.%s", method)
}

const schema = `
CREATE TABLE IF NOT EXISTS tasks (
	id           TEXT PRIMARY KEY,
	series_id    TEXT NOT NULL,
	title        TEXT NOT NULL,
	notes        TEXT NOT NULL DEFAULT '',
	due_date     TEXT,
	recurrence   TEXT,
	completed    INTEGER NOT NULL DEFAULT 0,
	completed_at TEXT,
	created_at   TEXT NOT NULL,
	updated_at   TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_tasks_series_id ON tasks (series_id);
CREATE INDEX IF NOT EXISTS idx_tasks_due_date  ON tasks (due_date);
`

// Migrate creates the tasks table and its indexes if they do not exist.
func Migrate(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to migrate tasks schema: %w", err)
	}
	return nil
}
