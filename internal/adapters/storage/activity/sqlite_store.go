package activity

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"waaranders/internal/adapters/storage"
	domain "waaranders/internal/domain/activity"
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

const activityColumns = `id, title, description, location, date, start_time, end_time, created_by, created_at, updated_at`

// GetByID retrieves an activity by ID.
// PRE: id is non-empty
// POST: Returns the entity or an error if not found
func (s *SQLiteStore) GetByID(ctx context.Context, id string) (domain.Activity, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+activityColumns+` FROM activity WHERE id = ?`, id)
	return scanActivity(row.Scan)
}

// Save inserts or updates an activity.
// PRE: entity has been validated (Date is never zero)
// POST: Entity is persisted (insert or update)
func (s *SQLiteStore) Save(ctx context.Context, a domain.Activity) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO activity (id, title, description, location, date, start_time, end_time, created_by, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		   title=excluded.title, description=excluded.description, location=excluded.location,
		   date=excluded.date, start_time=excluded.start_time, end_time=excluded.end_time,
		   updated_at=excluded.updated_at`,
		a.ID, a.Title, a.Description, a.Location, a.Date.Format(dateLayout),
		a.StartTime, a.EndTime, a.CreatedBy,
		a.CreatedAt.Format(timeLayout), nullableTime(a.UpdatedAt))
	return err
}

// Delete removes an activity by ID.
// PRE: id is non-empty
// POST: Entity with given id is removed
func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM activity WHERE id = ?`, id)
	return err
}

// List returns activities matching the filter, ordered by date ascending.
// PRE: filter has valid parameters
// POST: Returns matching activities
func (s *SQLiteStore) List(ctx context.Context, filter ListFilter) ([]domain.Activity, error) {
	query := `SELECT ` + activityColumns + ` FROM activity WHERE 1=1`
	args := []any{}

	if !filter.From.IsZero() {
		query += ` AND date >= ?`
		args = append(args, filter.From.Format(dateLayout))
	}
	if !filter.Until.IsZero() {
		query += ` AND date <= ?`
		args = append(args, filter.Until.Format(dateLayout))
	}
	query += ` ORDER BY date, start_time, created_at`
	if filter.Limit > 0 {
		query += ` LIMIT ?`
		args = append(args, filter.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var activities []domain.Activity
	for rows.Next() {
		a, err := scanActivity(rows.Scan)
		if err != nil {
			return nil, err
		}
		activities = append(activities, a)
	}
	return activities, rows.Err()
}

// scanActivity scans one row into an Activity via the given Scan func.
func scanActivity(scan func(...any) error) (domain.Activity, error) {
	var a domain.Activity
	var date string
	var createdAt string
	var updatedAt sql.NullString

	err := scan(&a.ID, &a.Title, &a.Description, &a.Location, &date,
		&a.StartTime, &a.EndTime, &a.CreatedBy, &createdAt, &updatedAt)
	if err != nil {
		return domain.Activity{}, err
	}

	a.Date = parseDate(date, a.ID)
	a.CreatedAt = parseTime(createdAt, "created_at", a.ID)
	if updatedAt.Valid {
		a.UpdatedAt = parseTime(updatedAt.String, "updated_at", a.ID)
	}
	return a, nil
}

// parseDate parses a date-only string, logging a warning on failure.
func parseDate(raw, activityID string) time.Time {
	d, err := time.Parse(dateLayout, raw)
	if err != nil {
		slog.Warn("activity: failed to parse date", "activity_id", activityID, "raw", raw, "error", err)
	}
	return d
}

// parseTime parses a time string, logging a warning on failure.
func parseTime(raw, field, activityID string) time.Time {
	t, err := time.Parse(timeLayout, raw)
	if err != nil {
		slog.Warn("activity: failed to parse time", "field", field, "activity_id", activityID, "raw", raw, "error", err)
	}
	return t
}

func nullableTime(t time.Time) any {
	if t.IsZero() {
		return nil
	}
	return t.Format(timeLayout)
}
