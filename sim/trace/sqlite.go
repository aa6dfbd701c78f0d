package trace

import (
	"database/sql"
	"errors"
	"fmt"
	"os"

	// Need to use SQLite connections.
	_ "github.com/mattn/go-sqlite3"

	"github.com/rs/xid"
	"github.com/sirupsen/logrus"
)

// SQLiteWriter stores simulation traces in a SQLite database. Every call to
// Write adds one run, so a single database can hold many runs side by side.
type SQLiteWriter struct {
	*sql.DB
	path string
}

// NewSQLiteWriter opens (creating if needed) the database at path and
// ensures its tables exist.
func NewSQLiteWriter(path string) (*SQLiteWriter, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("opening trace database: %w", err)
	}
	w := &SQLiteWriter{DB: db, path: path}
	if err := w.createTables(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return w, nil
}

// OpenSQLiteReadOnly opens an existing trace database without creating or
// modifying it. A missing file is an error.
func OpenSQLiteReadOnly(path string) (*SQLiteWriter, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("opening trace database: %w", err)
	}
	db, err := sql.Open("sqlite3", "file:"+path+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("opening trace database: %w", err)
	}
	return &SQLiteWriter{DB: db, path: path}, nil
}

func (w *SQLiteWriter) createTables() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id            TEXT PRIMARY KEY,
			algorithm     TEXT NOT NULL,
			quantum       INTEGER NOT NULL,
			runfor        INTEGER NOT NULL,
			process_count INTEGER NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS events (
			run_id    TEXT NOT NULL REFERENCES runs(id),
			seq       INTEGER NOT NULL,
			tick      INTEGER NOT NULL,
			kind      TEXT NOT NULL,
			process   TEXT NOT NULL,
			remaining INTEGER NOT NULL,
			PRIMARY KEY (run_id, seq)
		)`,
	}
	for _, s := range stmts {
		if _, err := w.Exec(s); err != nil {
			return fmt.Errorf("creating trace tables: %w", err)
		}
	}
	return nil
}

// Write stores the trace as a new run in a single transaction and returns
// the generated run ID.
func (w *SQLiteWriter) Write(st *SimulationTrace) (string, error) {
	runID := xid.New().String()

	tx, err := w.Begin()
	if err != nil {
		return "", fmt.Errorf("beginning trace transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(
		`INSERT INTO runs (id, algorithm, quantum, runfor, process_count) VALUES (?, ?, ?, ?, ?)`,
		runID, st.Run.Algorithm, st.Run.Quantum, st.Run.RunFor, st.Run.ProcessCount,
	); err != nil {
		return "", fmt.Errorf("inserting run: %w", err)
	}

	stmt, err := tx.Prepare(`INSERT INTO events (run_id, seq, tick, kind, process, remaining) VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return "", fmt.Errorf("preparing event insert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for i, e := range st.Events {
		if _, err := stmt.Exec(runID, i, e.Tick, e.Kind, e.Process, e.Remaining); err != nil {
			return "", fmt.Errorf("inserting event %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("committing trace: %w", err)
	}
	logrus.Infof("Trace for run %s written to %s (%d events)", runID, w.path, len(st.Events))
	return runID, nil
}

// ReadRun loads the events of a stored run in their original order.
func (w *SQLiteWriter) ReadRun(runID string) ([]EventRecord, error) {
	rows, err := w.Query(`SELECT tick, kind, process, remaining FROM events WHERE run_id = ? ORDER BY seq`, runID)
	if err != nil {
		return nil, fmt.Errorf("querying run %s: %w", runID, err)
	}
	defer func() { _ = rows.Close() }()

	var records []EventRecord
	for rows.Next() {
		var r EventRecord
		if err := rows.Scan(&r.Tick, &r.Kind, &r.Process, &r.Remaining); err != nil {
			return nil, fmt.Errorf("scanning event: %w", err)
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// ErrNoRuns is returned by LatestRun when the database holds no run.
var ErrNoRuns = errors.New("no runs stored")

// LatestRun returns the ID of the most recently stored run.
func (w *SQLiteWriter) LatestRun() (string, error) {
	var runID string
	err := w.QueryRow(`SELECT id FROM runs ORDER BY rowid DESC LIMIT 1`).Scan(&runID)
	if errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("%w in %s", ErrNoRuns, w.path)
	}
	if err != nil {
		return "", fmt.Errorf("querying latest run: %w", err)
	}
	return runID, nil
}
