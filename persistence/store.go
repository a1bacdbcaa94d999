// Package persistence writes resolution reports to SQLite
package persistence

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"
)

// sqliteExtensions are the output suffixes routed to a Store instead of CSV
var sqliteExtensions = []string{".db", ".sqlite", ".sqlite3"}

// IsSQLitePath reports whether an output path names a SQLite database
func IsSQLitePath(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range sqliteExtensions {
		if ext == e {
			return true
		}
	}
	return false
}

// Store handles report persistence using SQLite
type Store struct {
	db     *sql.DB
	dbPath string
}

// NewStore opens (creating if needed) the database at dbPath
func NewStore(dbPath string) (*Store, error) {
	if dbPath == "" {
		return nil, fmt.Errorf("database path is empty")
	}

	dir := filepath.Dir(dbPath)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	_, err = db.Exec("PRAGMA journal_mode=WAL")
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to set WAL mode: %w", err)
	}

	store := &Store{
		db:     db,
		dbPath: dbPath,
	}

	if err := store.initTables(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize tables: %w", err)
	}

	return store, nil
}

// Close closes the database connection
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *Store) initTables() error {
	tables := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			company_count INTEGER NOT NULL DEFAULT 0,
			failed_count INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,

		`CREATE TABLE IF NOT EXISTS company_resolutions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id TEXT NOT NULL REFERENCES runs(id),
			s_number INTEGER NOT NULL,
			name TEXT NOT NULL,
			website TEXT,
			linkedin TEXT,
			error TEXT,
			UNIQUE(run_id, s_number)
		)`,
	}

	for _, table := range tables {
		if _, err := s.db.Exec(table); err != nil {
			return fmt.Errorf("failed to create table: %w", err)
		}
	}

	if _, err := s.db.Exec(`CREATE INDEX IF NOT EXISTS idx_company_resolutions_run ON company_resolutions(run_id)`); err != nil {
		return fmt.Errorf("failed to create index: %w", err)
	}

	return nil
}

// Transaction executes fn within a database transaction
func (s *Store) Transaction(ctx context.Context, fn func(*sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	if err := fn(tx); err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit()
}
