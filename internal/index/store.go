package index

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// Row is one indexed scale.
type Row struct {
	Directory   string
	File        string
	Notes       int
	PeriodCents float64
	Just        bool
	// PrimeLimit is the largest prime factor across the scale's ratios,
	// zero for scales that are not just.
	PrimeLimit  int64
	Description string
	// Tones is the space-joined canonical tone list.
	Tones     string
	Reference string
}

// Store manages index persistence backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// Open initializes or connects to the index database.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("ensure index directory: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}
	return &Store{db: db, path: path}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the database file location.
func (s *Store) Path() string { return s.path }

// Reset drops and recreates the scales table. Each batch rebuilds the
// index from scratch.
func (s *Store) Reset(ctx context.Context) error {
	statements := []string{
		`DROP TABLE IF EXISTS scales`,
		`CREATE TABLE scales (
            id INTEGER PRIMARY KEY AUTOINCREMENT,
            directory TEXT NOT NULL,
            scl_file TEXT NOT NULL UNIQUE,
            notes INTEGER NOT NULL,
            period REAL NOT NULL,
            just INTEGER NOT NULL,
            prime_limit INTEGER NOT NULL,
            description TEXT NOT NULL,
            tones TEXT NOT NULL,
            reference TEXT NOT NULL
        )`,
		`CREATE INDEX idx_scales_notes ON scales(notes)`,
		`CREATE INDEX idx_scales_prime_limit ON scales(prime_limit)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("prepare scales table: %w", err)
		}
	}
	return nil
}

// Insert records one scale row.
func (s *Store) Insert(ctx context.Context, row Row) error {
	_, err := s.db.ExecContext(
		ctx,
		`INSERT INTO scales (
            directory, scl_file, notes, period, just, prime_limit,
            description, tones, reference
        ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		row.Directory,
		row.File,
		row.Notes,
		row.PeriodCents,
		row.Just,
		row.PrimeLimit,
		row.Description,
		row.Tones,
		row.Reference,
	)
	if err != nil {
		return fmt.Errorf("insert scale %s: %w", row.File, err)
	}
	return nil
}

// Rows returns every indexed scale in the canonical report order: note
// count, then period, just scales before tempered ones, then prime
// limit, directory, and filename.
func (s *Store) Rows(ctx context.Context) ([]Row, error) {
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT directory, scl_file, notes, period, just, prime_limit,
                description, tones, reference
         FROM scales
         ORDER BY notes, period, just DESC, prime_limit, directory, scl_file`,
	)
	if err != nil {
		return nil, fmt.Errorf("query scales: %w", err)
	}
	defer rows.Close()

	var out []Row
	for rows.Next() {
		var row Row
		if err := rows.Scan(
			&row.Directory,
			&row.File,
			&row.Notes,
			&row.PeriodCents,
			&row.Just,
			&row.PrimeLimit,
			&row.Description,
			&row.Tones,
			&row.Reference,
		); err != nil {
			return nil, fmt.Errorf("scan scale row: %w", err)
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate scale rows: %w", err)
	}
	return out, nil
}

// Count reports how many scales are indexed.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM scales`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count scales: %w", err)
	}
	return n, nil
}
