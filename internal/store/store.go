// Package store persists transcriptions in SQLite.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"phonemize/internal/schema"
)

// Record is a stored transcription.
type Record struct {
	ID        string
	RunID     string
	Line      int
	Voice     string
	Dialect   string
	Text      string
	Phonemes  string
	Error     string
	CreatedAt time.Time
}

// Store is a SQLite-backed transcription store.
type Store struct {
	db *sql.DB
}

// Open opens or creates the database at path and ensures the schema
// exists. ":memory:" opens a private in-memory database.
func Open(path string) (*Store, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("failed to create database dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// One connection keeps an in-memory database alive and serializes
	// writers.
	db.SetMaxOpenConns(1)

	s := &Store{db: db}
	if err := s.createTables(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}
	return s, nil
}

func (s *Store) createTables() error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS transcriptions (
			id text PRIMARY KEY,
			run_id text NOT NULL,
			line integer NOT NULL,
			voice text NOT NULL,
			dialect text NOT NULL,
			text text NOT NULL,
			phonemes text NOT NULL,
			error text NOT NULL,
			created_at integer NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS ix_transcriptions_dialect ON transcriptions (dialect)`,
		`CREATE INDEX IF NOT EXISTS ix_transcriptions_run ON transcriptions (run_id)`,
	}

	for _, query := range queries {
		if _, err := s.db.Exec(query); err != nil {
			return err
		}
	}
	return nil
}

// Save stores a batch of transcriptions under runID in one transaction.
func (s *Store) Save(runID string, transcriptions []*schema.Transcription) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	stmt, err := tx.Prepare(`INSERT INTO transcriptions
		(id, run_id, line, voice, dialect, text, phonemes, error, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	now := time.Now().UTC().UnixMilli()
	for _, t := range transcriptions {
		_, err := stmt.Exec(
			uuid.NewString(), runID, t.Line, t.Voice, t.Dialect,
			t.Text, t.Phonemes, t.Error, now,
		)
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to insert line %d: %w", t.Line, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}
	return nil
}

// Filter selects records. Empty fields match everything.
type Filter struct {
	RunID   string
	Dialect string
}

// List returns matching records ordered by insertion time and input line.
func (s *Store) List(f Filter) ([]Record, error) {
	query := `SELECT id, run_id, line, voice, dialect, text, phonemes, error, created_at
		FROM transcriptions
		WHERE (? = '' OR run_id = ?) AND (? = '' OR dialect = ?)
		ORDER BY created_at, run_id, line`

	rows, err := s.db.Query(query, f.RunID, f.RunID, f.Dialect, f.Dialect)
	if err != nil {
		return nil, fmt.Errorf("failed to query transcriptions: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var r Record
		var created int64
		if err := rows.Scan(&r.ID, &r.RunID, &r.Line, &r.Voice, &r.Dialect,
			&r.Text, &r.Phonemes, &r.Error, &created); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		r.CreatedAt = time.UnixMilli(created).UTC()
		records = append(records, r)
	}
	return records, rows.Err()
}

// Runs returns the distinct run ids in the store.
func (s *Store) Runs() ([]string, error) {
	rows, err := s.db.Query(`SELECT run_id FROM transcriptions
		GROUP BY run_id ORDER BY MIN(created_at), run_id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	var runs []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		runs = append(runs, id)
	}
	return runs, rows.Err()
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}
