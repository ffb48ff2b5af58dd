// Package store persists per-model discussion responses in SQLite.
//
// Each participant owns exactly one store file inside the session folder,
// named {model}.db. The store is an append-only log keyed by round number:
// records are never updated or deleted once written, and every insert is
// committed before the call returns so a crash mid-run preserves all
// completed rounds.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Iron-Ham/parley/internal/errors"
	_ "modernc.org/sqlite"
)

// timestampLayout is the wall-clock format written with each record.
const timestampLayout = "2006-01-02 15:04:05"

// Record is one immutable per-round response row.
type Record struct {
	RoundNumber int
	Response    string
	Convergence float64
	Timestamp   string
}

// ResponseStore is the append-only response log for a single participant.
// Each participant holds its own exclusive instance; there is no
// cross-model access, so no locking discipline is needed on top of the
// database's own.
type ResponseStore struct {
	path string
	db   *sql.DB
}

// Open opens the store at path, creating the file and its schema if
// absent. Opening an existing store is safe and loses no data.
func Open(path string) (*ResponseStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, errors.NewStorageError(path, err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errors.NewStorageError(path, err)
	}

	s := &ResponseStore{path: path, db: db}
	if err := s.initSchema(); err != nil {
		_ = db.Close()
		return nil, errors.NewStorageError(path, err)
	}
	return s, nil
}

func (s *ResponseStore) initSchema() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS responses (
		response_number INTEGER PRIMARY KEY,
		response TEXT NOT NULL,
		convergence REAL NOT NULL,
		timestamp TEXT NOT NULL
	)`)
	return err
}

// Path returns the store's file path.
func (s *ResponseStore) Path() string {
	return s.path
}

// Insert appends one record for the given round. The timestamp is
// assigned at write time with second resolution. Inserting a round number
// that already exists fails with ErrDuplicateRound: round numbers are the
// primary key and a collision indicates an orchestrator defect.
func (s *ResponseStore) Insert(roundNumber int, response string, convergence float64) error {
	timestamp := time.Now().Format(timestampLayout)

	_, err := s.db.Exec(
		`INSERT INTO responses (response_number, response, convergence, timestamp) VALUES (?, ?, ?, ?)`,
		roundNumber, response, convergence, timestamp,
	)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return errors.NewStorageError(s.path,
				fmt.Errorf("%w: round %d: %v", errors.ErrDuplicateRound, roundNumber, err))
		}
		return errors.NewStorageError(s.path, err)
	}
	return nil
}

// ReadAll returns every record ordered by round number ascending.
func (s *ResponseStore) ReadAll() ([]Record, error) {
	rows, err := s.db.Query(
		`SELECT response_number, response, convergence, timestamp FROM responses ORDER BY response_number ASC`)
	if err != nil {
		return nil, errors.NewStorageError(s.path, err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var r Record
		if err := rows.Scan(&r.RoundNumber, &r.Response, &r.Convergence, &r.Timestamp); err != nil {
			return nil, errors.NewStorageError(s.path, err)
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.NewStorageError(s.path, err)
	}
	return records, nil
}

// Close releases the underlying database handle.
func (s *ResponseStore) Close() error {
	return s.db.Close()
}
