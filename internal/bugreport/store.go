package bugreport

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/hxlabs/courseware/internal/platform/storage/sqlitemigrate"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Store archives triage reports in SQLite.
type Store struct {
	sqlDB *sql.DB
}

// Open opens the archive at path and applies embedded migrations.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("archive path is required")
	}
	dsn := filepath.Clean(path) + "?_journal_mode=WAL&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	sub, err := fs.Sub(migrationsFS, "migrations")
	if err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("migrations fs: %w", err)
	}
	if err := sqlitemigrate.Apply(sqlDB, sub); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// Import upserts one report. Re-importing the same fixture overwrites
// the previous row, so imports are repeatable.
func (s *Store) Import(ctx context.Context, r Report) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := s.sqlDB.ExecContext(ctx, `
INSERT INTO reports (id, module, symptom, root_cause, failing_test, severity, diagnosis, snippet, imported_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT (id) DO UPDATE SET
    module = excluded.module,
    symptom = excluded.symptom,
    root_cause = excluded.root_cause,
    failing_test = excluded.failing_test,
    severity = excluded.severity,
    diagnosis = excluded.diagnosis,
    snippet = excluded.snippet,
    imported_at = excluded.imported_at
`, r.ID, r.Module, r.Symptom, string(r.RootCause), r.FailingTest, string(r.Severity), r.Diagnosis, r.Snippet,
		time.Now().UTC().UnixMilli())
	if err != nil {
		return fmt.Errorf("insert report %s: %w", r.ID, err)
	}
	return nil
}

// List returns every archived report, optionally filtered by module
// slug. Results are ordered by module then id for stable output.
func (s *Store) List(ctx context.Context, module string) ([]Report, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	query := `
SELECT id, module, symptom, root_cause, failing_test, severity, diagnosis, snippet
FROM reports`
	args := []any{}
	if module != "" {
		query += " WHERE module = ?"
		args = append(args, module)
	}
	query += " ORDER BY module, id"

	rows, err := s.sqlDB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list reports: %w", err)
	}
	defer rows.Close()

	var out []Report
	for rows.Next() {
		var r Report
		var rootCause, severity string
		if err := rows.Scan(&r.ID, &r.Module, &r.Symptom, &rootCause, &r.FailingTest, &severity, &r.Diagnosis, &r.Snippet); err != nil {
			return nil, fmt.Errorf("scan report: %w", err)
		}
		r.RootCause = RootCause(rootCause)
		r.Severity = Severity(severity)
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate reports: %w", err)
	}
	return out, nil
}
