// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package store persists resolved citations in a local SQLite database
// so repeated inputs skip detection and enrichment. Records key on the
// normalized raw string; the structured citation is stored as JSON.
package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/caplane/citeflex/pkg/types"
)

// Store manages the citation cache SQLite database.
type Store struct {
	db *sql.DB
}

// Open opens or creates the citation database at path, creating the
// schema if it does not exist.
func Open(cfg types.StoreConfig) (*Store, error) {
	if cfg.Path == "" {
		return nil, fmt.Errorf("store path is empty")
	}
	db, err := sql.Open("sqlite3", cfg.Path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS citations (
			raw_key TEXT PRIMARY KEY,
			type TEXT NOT NULL,
			source_key TEXT,
			record TEXT NOT NULL,
			resolved_at TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_citations_source_key ON citations(source_key)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Get returns the cached citation for a raw input string, if present.
func (s *Store) Get(raw string) (types.Citation, bool, error) {
	var record string
	err := s.db.QueryRow(
		`SELECT record FROM citations WHERE raw_key = ?`, rawKey(raw),
	).Scan(&record)
	if err == sql.ErrNoRows {
		return types.Citation{}, false, nil
	}
	if err != nil {
		return types.Citation{}, false, fmt.Errorf("querying citation: %w", err)
	}

	var cit types.Citation
	if err := json.Unmarshal([]byte(record), &cit); err != nil {
		return types.Citation{}, false, fmt.Errorf("parsing stored citation: %w", err)
	}
	return cit, true, nil
}

// Put stores or replaces the resolved citation for its raw input.
func (s *Store) Put(cit types.Citation) error {
	record, err := json.Marshal(cit)
	if err != nil {
		return fmt.Errorf("encoding citation: %w", err)
	}
	_, err = s.db.Exec(
		`INSERT OR REPLACE INTO citations (raw_key, type, source_key, record, resolved_at)
		 VALUES (?, ?, ?, ?, ?)`,
		rawKey(cit.Raw), string(cit.Type), cit.Key(), string(record),
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("storing citation: %w", err)
	}
	return nil
}

// All returns every cached citation, most recently resolved first.
func (s *Store) All() ([]types.Citation, error) {
	rows, err := s.db.Query(`SELECT record FROM citations ORDER BY resolved_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("querying citations: %w", err)
	}
	defer rows.Close()

	var cits []types.Citation
	for rows.Next() {
		var record string
		if err := rows.Scan(&record); err != nil {
			return nil, fmt.Errorf("scanning citation: %w", err)
		}
		var cit types.Citation
		if err := json.Unmarshal([]byte(record), &cit); err != nil {
			return nil, fmt.Errorf("parsing stored citation: %w", err)
		}
		cits = append(cits, cit)
	}
	return cits, rows.Err()
}

// Clear removes every cached citation.
func (s *Store) Clear() error {
	if _, err := s.db.Exec(`DELETE FROM citations`); err != nil {
		return fmt.Errorf("clearing citations: %w", err)
	}
	return nil
}

// Count returns the number of cached citations.
func (s *Store) Count() (int, error) {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM citations`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting citations: %w", err)
	}
	return n, nil
}

// rawKey normalizes a raw input string for use as the cache key:
// lowercased with whitespace collapsed.
func rawKey(raw string) string {
	return strings.Join(strings.Fields(strings.ToLower(raw)), " ")
}
