package volunteer

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"waaranders/internal/adapters/storage"
	domain "waaranders/internal/domain/volunteer"
)

const timeLayout = "2006-01-02T15:04:05Z07:00"

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new SQLiteStore.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

const volunteerColumns = `id, account_id, name, email, phone, notes, active, created_at, updated_at`

// GetByID retrieves a volunteer by ID.
// PRE: id is non-empty
// POST: Returns the entity or an error if not found
func (s *SQLiteStore) GetByID(ctx context.Context, id string) (domain.Volunteer, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+volunteerColumns+` FROM volunteer WHERE id = ?`, id)
	return scanVolunteer(row.Scan)
}

// GetByAccountID retrieves the volunteer linked to an account.
// PRE: accountID is non-empty
// POST: Returns the entity or an error if not found
func (s *SQLiteStore) GetByAccountID(ctx context.Context, accountID string) (domain.Volunteer, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+volunteerColumns+` FROM volunteer WHERE account_id = ?`, accountID)
	return scanVolunteer(row.Scan)
}

// GetByEmail retrieves a volunteer by email.
// PRE: email is non-empty
// POST: Returns the entity or an error if not found
func (s *SQLiteStore) GetByEmail(ctx context.Context, email string) (domain.Volunteer, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+volunteerColumns+` FROM volunteer WHERE email = ?`, email)
	return scanVolunteer(row.Scan)
}

// Save inserts or updates a volunteer.
// PRE: entity has been validated
// POST: Entity is persisted (insert or update)
func (s *SQLiteStore) Save(ctx context.Context, v domain.Volunteer) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO volunteer (id, account_id, name, email, phone, notes, active, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		   account_id=excluded.account_id, name=excluded.name, email=excluded.email,
		   phone=excluded.phone, notes=excluded.notes, active=excluded.active,
		   updated_at=excluded.updated_at`,
		v.ID, nullableString(v.AccountID), v.Name, v.Email, v.Phone, v.Notes,
		boolToInt(v.Active), v.CreatedAt.Format(timeLayout), nullableTime(v.UpdatedAt))
	return err
}

// Delete removes a volunteer by ID.
// PRE: id is non-empty
// POST: Entity with given id is removed
func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM volunteer WHERE id = ?`, id)
	return err
}

// List returns volunteers matching the filter.
// PRE: filter.Sort is "" or an allowed column (callers validate via listutil)
// POST: Returns matching volunteers in the requested order
func (s *SQLiteStore) List(ctx context.Context, filter ListFilter) ([]domain.Volunteer, error) {
	query := `SELECT ` + volunteerColumns + ` FROM volunteer` + whereClause(filter)
	args := whereArgs(filter)

	col := "name"
	if filter.Sort == "email" {
		col = "email"
	}
	dir := "ASC"
	if filter.Dir == "desc" {
		dir = "DESC"
	}
	query += ` ORDER BY ` + col + ` COLLATE NOCASE ` + dir

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

	var volunteers []domain.Volunteer
	for rows.Next() {
		v, err := scanVolunteer(rows.Scan)
		if err != nil {
			return nil, err
		}
		volunteers = append(volunteers, v)
	}
	return volunteers, rows.Err()
}

// ListActive returns all active volunteers ordered by name.
// PRE: none
// POST: Returns active volunteers only
func (s *SQLiteStore) ListActive(ctx context.Context) ([]domain.Volunteer, error) {
	return s.List(ctx, ListFilter{ActiveOnly: true})
}

// Count returns the number of volunteers matching the filter.
// PRE: none
// POST: Returns count >= 0
func (s *SQLiteStore) Count(ctx context.Context, filter ListFilter) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM volunteer`+whereClause(filter), whereArgs(filter)...).Scan(&n)
	return n, err
}

// whereClause builds the WHERE clause shared by List and Count.
func whereClause(filter ListFilter) string {
	clause := ` WHERE 1=1`
	if filter.ActiveOnly {
		clause += ` AND active = 1`
	}
	if filter.Search != "" {
		clause += ` AND (name LIKE ? COLLATE NOCASE OR email LIKE ? COLLATE NOCASE)`
	}
	return clause
}

// whereArgs builds the arguments matching whereClause.
func whereArgs(filter ListFilter) []any {
	var args []any
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		args = append(args, pattern, pattern)
	}
	return args
}

// scanVolunteer scans one row into a Volunteer via the given Scan func.
func scanVolunteer(scan func(...any) error) (domain.Volunteer, error) {
	var v domain.Volunteer
	var accountID sql.NullString
	var active int
	var createdAt string
	var updatedAt sql.NullString

	err := scan(&v.ID, &accountID, &v.Name, &v.Email, &v.Phone, &v.Notes,
		&active, &createdAt, &updatedAt)
	if err != nil {
		return domain.Volunteer{}, err
	}

	if accountID.Valid {
		v.AccountID = accountID.String
	}
	v.Active = active != 0
	v.CreatedAt = parseTime(createdAt, "created_at", v.ID)
	if updatedAt.Valid {
		v.UpdatedAt = parseTime(updatedAt.String, "updated_at", v.ID)
	}
	return v, nil
}

// parseTime parses a time string, logging a warning on failure.
func parseTime(raw, field, volunteerID string) time.Time {
	t, err := time.Parse(timeLayout, raw)
	if err != nil {
		slog.Warn("volunteer: failed to parse time", "field", field, "volunteer_id", volunteerID, "raw", raw, "error", err)
	}
	return t
}

func nullableString(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func nullableTime(t time.Time) any {
	if t.IsZero() {
		return nil
	}
	return t.Format(timeLayout)
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
