package todo

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"waaranders/internal/adapters/storage"
	domain "waaranders/internal/domain/todo"
)

const (
	timeLayout = "2006-01-02T15:04:05Z07:00"
	dateLayout = "2006-01-02"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new SQLiteStore.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

const todoColumns = `id, text, due_date, priority, status, assignee_id, created_by, created_at, updated_at`

// GetByID retrieves a todo by ID.
// PRE: id is non-empty
// POST: Returns the entity or an error if not found
func (s *SQLiteStore) GetByID(ctx context.Context, id string) (domain.Todo, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+todoColumns+` FROM todo WHERE id = ?`, id)
	return scanTodo(row.Scan)
}

// Save inserts or updates a todo.
// PRE: entity has been validated
// POST: Entity is persisted (insert or update)
func (s *SQLiteStore) Save(ctx context.Context, t domain.Todo) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO todo (id, text, due_date, priority, status, assignee_id, created_by, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		   text=excluded.text, due_date=excluded.due_date, priority=excluded.priority,
		   status=excluded.status, assignee_id=excluded.assignee_id, updated_at=excluded.updated_at`,
		t.ID, t.Text, nullableDate(t.DueDate), t.Priority, t.Status,
		nullableString(t.AssigneeID), t.CreatedBy,
		t.CreatedAt.Format(timeLayout), nullableTime(t.UpdatedAt))
	return err
}

// Delete removes a todo by ID.
// PRE: id is non-empty
// POST: Entity with given id is removed
func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM todo WHERE id = ?`, id)
	return err
}

// List returns todos matching the filter in storage order (dated first by
// due date, then dateless, then creation time). The list views re-sort
// in memory with the full multi-key rules; this order only keeps the
// fallback JSON output predictable.
// PRE: filter has valid parameters
// POST: Returns matching todos
func (s *SQLiteStore) List(ctx context.Context, filter ListFilter) ([]domain.Todo, error) {
	query := `SELECT ` + todoColumns + ` FROM todo WHERE 1=1`
	args := []any{}

	if filter.OpenOnly {
		query += ` AND status != 'done'`
	}
	if filter.AssigneeID != "" {
		query += ` AND assignee_id = ?`
		args = append(args, filter.AssigneeID)
	}
	query += ` ORDER BY due_date IS NULL, due_date, created_at`
	if filter.Limit > 0 {
		query += ` LIMIT ?`
		args = append(args, filter.Limit)
	}
	if filter.Offset > 0 {
		if filter.Limit <= 0 {
			// SQLite only accepts OFFSET after a LIMIT clause
			query += ` LIMIT -1`
		}
		query += ` OFFSET ?`
		args = append(args, filter.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var todos []domain.Todo
	for rows.Next() {
		t, err := scanTodo(rows.Scan)
		if err != nil {
			return nil, err
		}
		todos = append(todos, t)
	}
	return todos, rows.Err()
}

// scanTodo scans one row into a Todo via the given Scan func.
func scanTodo(scan func(...any) error) (domain.Todo, error) {
	var t domain.Todo
	var dueDate sql.NullString
	var assigneeID sql.NullString
	var createdAt string
	var updatedAt sql.NullString

	err := scan(&t.ID, &t.Text, &dueDate, &t.Priority, &t.Status,
		&assigneeID, &t.CreatedBy, &createdAt, &updatedAt)
	if err != nil {
		return domain.Todo{}, err
	}

	if dueDate.Valid {
		t.DueDate = parseDate(dueDate.String, t.ID)
	}
	if assigneeID.Valid {
		t.AssigneeID = assigneeID.String
	}
	t.CreatedAt = parseTime(createdAt, "created_at", t.ID)
	if updatedAt.Valid {
		t.UpdatedAt = parseTime(updatedAt.String, "updated_at", t.ID)
	}
	return t, nil
}

// parseDate parses a date-only string, logging a warning on failure.
func parseDate(raw, todoID string) time.Time {
	d, err := time.Parse(dateLayout, raw)
	if err != nil {
		slog.Warn("todo: failed to parse due date", "todo_id", todoID, "raw", raw, "error", err)
	}
	return d
}

// parseTime parses a time string, logging a warning on failure.
func parseTime(raw, field, todoID string) time.Time {
	t, err := time.Parse(timeLayout, raw)
	if err != nil {
		slog.Warn("todo: failed to parse time", "field", field, "todo_id", todoID, "raw", raw, "error", err)
	}
	return t
}

func nullableString(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func nullableDate(t time.Time) any {
	if t.IsZero() {
		return nil
	}
	return t.Format(dateLayout)
}

func nullableTime(t time.Time) any {
	if t.IsZero() {
		return nil
	}
	return t.Format(timeLayout)
}
