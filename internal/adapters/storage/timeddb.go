package storage

import (
	"context"
	"database/sql"
	"log/slog"
	"os"
	"strconv"
	"time"

	"waaranders/internal/adapters/http/perf"
)

// SQLDB is the database handle the stores are built against. Both *sql.DB
// and *TimedDB satisfy it, so instrumentation stays optional.
type SQLDB interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

var (
	_ SQLDB = (*sql.DB)(nil)
	_ SQLDB = (*TimedDB)(nil)
)

// DefaultSlowQueryMs is the default threshold for slow query warnings.
const DefaultSlowQueryMs = 50

// slowQueryThreshold returns the slow-query threshold in milliseconds,
// overridable via WAARANDERS_SLOW_QUERY_MS.
func slowQueryThreshold() float64 {
	if v := os.Getenv("WAARANDERS_SLOW_QUERY_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return float64(n)
		}
	}
	return DefaultSlowQueryMs
}

// TimedDB wraps a *sql.DB so every query lands in the log and, when a
// collector is attached, on the perf dashboard.
type TimedDB struct {
	db        *sql.DB
	collector *perf.Collector
	threshold float64
}

// NewTimedDB wraps a *sql.DB with timing instrumentation.
// PRE: db is a valid database connection
// POST: Returns a TimedDB that logs slow queries and records to collector
func NewTimedDB(db *sql.DB, collector *perf.Collector) *TimedDB {
	return &TimedDB{
		db:        db,
		collector: collector,
		threshold: slowQueryThreshold(),
	}
}

// RawDB returns the underlying *sql.DB for schema init and pool config.
func (t *TimedDB) RawDB() *sql.DB {
	return t.db
}

// observe returns a func to defer; it times the operation from the call to
// observe until the deferred call runs.
func (t *TimedDB) observe(op string) func() {
	start := time.Now()
	return func() {
		elapsedMs := float64(time.Since(start).Microseconds()) / 1000.0

		if elapsedMs >= t.threshold {
			slog.Warn("slow_query", "op", op, "duration_ms", elapsedMs)
		} else {
			slog.Debug("query", "op", op, "duration_ms", elapsedMs)
		}

		if t.collector != nil {
			t.collector.Record(perf.Entry{
				Kind:       perf.KindQuery,
				Path:       op,
				DurationMs: elapsedMs,
				Timestamp:  start,
			})
		}
	}
}

func (t *TimedDB) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	defer t.observe("exec")()
	return t.db.ExecContext(ctx, query, args...)
}

func (t *TimedDB) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	defer t.observe("query")()
	return t.db.QueryContext(ctx, query, args...)
}

func (t *TimedDB) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	defer t.observe("query_row")()
	return t.db.QueryRowContext(ctx, query, args...)
}

// Close closes the underlying database connection.
func (t *TimedDB) Close() error {
	return t.db.Close()
}

// Ping verifies the database connection.
func (t *TimedDB) Ping() error {
	return t.db.Ping()
}
