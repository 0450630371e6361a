// Package history persists a record of every advisory invocation so a
// team can compare assessments over time.
//
// Storage is SQLite in the user's home directory. The store is
// optional: when it cannot be opened the server runs without history,
// it never blocks an advisory call.
package history

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	_ "modernc.org/sqlite"
)

// openDB is a package-level var to allow test injection.
var openDB = sql.Open

// Entry is one recorded invocation.
type Entry struct {
	ID         string  `json:"id"`
	Capability string  `json:"capability"`
	Params     string  `json:"params"` // raw JSON as supplied
	Summary    string  `json:"summary"`
	Confidence float64 `json:"confidence"`
	CreatedAt  string  `json:"created_at"`
}

// Config holds history store configuration.
type Config struct {
	DataDir    string
	MaxEntries int // Recent() hard cap
}

// DefaultConfig stores history under ~/.growthhacker.
func DefaultConfig() Config {
	home, _ := os.UserHomeDir()
	return Config{
		DataDir:    filepath.Join(home, ".growthhacker"),
		MaxEntries: 50,
	}
}

// Store is the invocation log backed by SQLite.
type Store struct {
	db  *sql.DB
	cfg Config
}

// New opens the store, creating the data directory and schema as
// needed. WAL mode keeps concurrent reads cheap.
func New(cfg Config) (*Store, error) {
	if err := os.MkdirAll(cfg.DataDir, 0700); err != nil {
		return nil, fmt.Errorf("history: create data dir: %w", err)
	}

	dbPath := filepath.Join(cfg.DataDir, "history.db")
	db, err := openDB("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("history: open database: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return nil, fmt.Errorf("history: pragma %q: %w", p, err)
		}
	}

	s := &Store{db: db, cfg: cfg}
	if err := s.migrate(); err != nil {
		return nil, fmt.Errorf("history: migration: %w", err)
	}
	return s, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS analyses (
			id         TEXT PRIMARY KEY,
			capability TEXT NOT NULL,
			params     TEXT NOT NULL,
			summary    TEXT NOT NULL,
			confidence REAL NOT NULL,
			created_at TEXT NOT NULL DEFAULT (datetime('now'))
		);

		CREATE INDEX IF NOT EXISTS idx_analyses_capability ON analyses(capability);
		CREATE INDEX IF NOT EXISTS idx_analyses_created    ON analyses(created_at DESC);
	`)
	return err
}

// Record logs one invocation and returns the entry id. Params are
// stored as JSON so past inputs can be replayed against new benchmarks.
func (s *Store) Record(capability string, params map[string]any, summary string, confidence float64) (string, error) {
	raw, err := json.Marshal(params)
	if err != nil {
		return "", fmt.Errorf("history: encode params: %w", err)
	}

	id := uuid.New().String()
	_, err = s.db.Exec(
		`INSERT INTO analyses (id, capability, params, summary, confidence, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		id, capability, string(raw), summary, confidence,
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return "", fmt.Errorf("history: insert: %w", err)
	}
	return id, nil
}

// Recent returns the latest entries, newest first. limit <= 0 falls
// back to the configured maximum; either way MaxEntries caps the read.
func (s *Store) Recent(limit int, capability string) ([]Entry, error) {
	if limit <= 0 || limit > s.cfg.MaxEntries {
		limit = s.cfg.MaxEntries
	}

	query := `SELECT id, capability, params, summary, confidence, created_at
		FROM analyses`
	args := []any{}
	if capability != "" {
		query += ` WHERE capability = ?`
		args = append(args, capability)
	}
	query += ` ORDER BY created_at DESC, id LIMIT ?`
	args = append(args, limit)

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("history: query: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.Capability, &e.Params, &e.Summary, &e.Confidence, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("history: scan: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
