package klant

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"waaranders/internal/adapters/storage"
	domain "waaranders/internal/domain/klant"
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

const klantColumns = `id, name, address, postal_code, city, phone, email, notes, created_at, updated_at`

// GetByID retrieves a klant by ID.
// PRE: id is non-empty
// POST: Returns the entity or an error if not found
func (s *SQLiteStore) GetByID(ctx context.Context, id string) (domain.Klant, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+klantColumns+` FROM klant WHERE id = ?`, id)
	return scanKlant(row.Scan)
}

// Save inserts or updates a klant.
// PRE: entity has been validated
// POST: Entity is persisted (insert or update)
func (s *SQLiteStore) Save(ctx context.Context, k domain.Klant) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO klant (id, name, address, postal_code, city, phone, email, notes, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		   name=excluded.name, address=excluded.address, postal_code=excluded.postal_code,
		   city=excluded.city, phone=excluded.phone, email=excluded.email,
		   notes=excluded.notes, updated_at=excluded.updated_at`,
		k.ID, k.Name, k.Address, k.PostalCode, k.City, k.Phone, k.Email, k.Notes,
		k.CreatedAt.Format(timeLayout), nullableTime(k.UpdatedAt))
	return err
}

// Delete removes a klant by ID.
// PRE: id is non-empty
// POST: Entity with given id is removed
func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM klant WHERE id = ?`, id)
	return err
}

// List returns klanten matching the filter.
// PRE: filter.Sort is "" or an allowed column (callers validate via listutil)
// POST: Returns matching klanten in the requested order
func (s *SQLiteStore) List(ctx context.Context, filter ListFilter) ([]domain.Klant, error) {
	query := `SELECT ` + klantColumns + ` FROM klant` + whereClause(filter)
	args := whereArgs(filter)

	col := "name"
	if filter.Sort == "city" {
		col = "city"
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

	var klanten []domain.Klant
	for rows.Next() {
		k, err := scanKlant(rows.Scan)
		if err != nil {
			return nil, err
		}
		klanten = append(klanten, k)
	}
	return klanten, rows.Err()
}

// Count returns the number of klanten matching the filter.
// PRE: none
// POST: Returns count >= 0
func (s *SQLiteStore) Count(ctx context.Context, filter ListFilter) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM klant`+whereClause(filter), whereArgs(filter)...).Scan(&n)
	return n, err
}

// whereClause builds the WHERE clause shared by List and Count.
func whereClause(filter ListFilter) string {
	clause := ` WHERE 1=1`
	if filter.Search != "" {
		clause += ` AND (name LIKE ? COLLATE NOCASE OR city LIKE ? COLLATE NOCASE OR address LIKE ? COLLATE NOCASE)`
	}
	if filter.City != "" {
		clause += ` AND city = ?`
	}
	return clause
}

// whereArgs builds the arguments matching whereClause.
func whereArgs(filter ListFilter) []any {
	var args []any
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		args = append(args, pattern, pattern, pattern)
	}
	if filter.City != "" {
		args = append(args, filter.City)
	}
	return args
}

// scanKlant scans one row into a Klant via the given Scan func.
func scanKlant(scan func(...any) error) (domain.Klant, error) {
	var k domain.Klant
	var createdAt string
	var updatedAt sql.NullString

	err := scan(&k.ID, &k.Name, &k.Address, &k.PostalCode, &k.City,
		&k.Phone, &k.Email, &k.Notes, &createdAt, &updatedAt)
	if err != nil {
		return domain.Klant{}, err
	}

	k.CreatedAt = parseTime(createdAt, "created_at", k.ID)
	if updatedAt.Valid {
		k.UpdatedAt = parseTime(updatedAt.String, "updated_at", k.ID)
	}
	return k, nil
}

// parseTime parses a time string, logging a warning on failure.
func parseTime(raw, field, klantID string) time.Time {
	t, err := time.Parse(timeLayout, raw)
	if err != nil {
		slog.Warn("klant: failed to parse time", "field", field, "klant_id", klantID, "raw", raw, "error", err)
	}
	return t
}

func nullableTime(t time.Time) any {
	if t.IsZero() {
		return nil
	}
	return t.Format(timeLayout)
}
