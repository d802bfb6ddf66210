// Copyright (c) 2026 Anna Voss.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	_ "modernc.org/sqlite"
)

// SQLiteBackend persists records in an embedded SQLite database,
// normalized into poll and choice tables. It carries exactly the same
// record shape as the CSV backend (in particular, no vote-limit
// column), so the two backends round-trip identically.
type SQLiteBackend struct {
	db   *sql.DB
	path string
}

// OpenSQLiteBackend opens (or creates) the database file and ensures
// the schema exists. Safe to call on an existing store - the schema
// uses IF NOT EXISTS.
func OpenSQLiteBackend(path string) (*SQLiteBackend, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}
	return &SQLiteBackend{db: db, path: path}, nil
}

const schema = `
-- Polls, one row per stored record
CREATE TABLE IF NOT EXISTS poll (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL,
    description TEXT NOT NULL DEFAULT ''
);

-- Choices, ordered within their poll by rowid
CREATE TABLE IF NOT EXISTS choice (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    poll_id INTEGER NOT NULL REFERENCES poll(id) ON DELETE CASCADE,
    label TEXT NOT NULL,
    votes INTEGER NOT NULL DEFAULT 0
);

CREATE INDEX IF NOT EXISTS idx_choice_poll_id ON choice(poll_id);
`

func (b *SQLiteBackend) LoadRecords() ([][]string, error) {
	rows, err := b.db.Query(`SELECT id, name, description FROM poll ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query polls: %w", err)
	}
	defer rows.Close()

	type head struct {
		id     int64
		record []string
	}
	var heads []head
	for rows.Next() {
		var h head
		var name, description string
		if err := rows.Scan(&h.id, &name, &description); err != nil {
			return nil, fmt.Errorf("failed to scan poll: %w", err)
		}
		h.record = []string{name, description}
		heads = append(heads, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read polls: %w", err)
	}

	var records [][]string
	for _, h := range heads {
		choiceRows, err := b.db.Query(`SELECT label, votes FROM choice WHERE poll_id = ? ORDER BY id`, h.id)
		if err != nil {
			return nil, fmt.Errorf("failed to query choices: %w", err)
		}
		record := h.record
		for choiceRows.Next() {
			var label string
			var votes int
			if err := choiceRows.Scan(&label, &votes); err != nil {
				choiceRows.Close()
				return nil, fmt.Errorf("failed to scan choice: %w", err)
			}
			record = append(record, label, strconv.Itoa(votes))
		}
		if err := choiceRows.Err(); err != nil {
			choiceRows.Close()
			return nil, fmt.Errorf("failed to read choices: %w", err)
		}
		choiceRows.Close()
		records = append(records, record)
	}
	return records, nil
}

// SaveRecords replaces all stored rows in one transaction.
func (b *SQLiteBackend) SaveRecords(records [][]string) error {
	tx, err := b.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM choice`); err != nil {
		return fmt.Errorf("failed to clear choices: %w", err)
	}
	if _, err := tx.Exec(`DELETE FROM poll`); err != nil {
		return fmt.Errorf("failed to clear polls: %w", err)
	}

	for _, record := range records {
		if len(record) < 2 {
			return fmt.Errorf("record too short: %d fields", len(record))
		}
		res, err := tx.Exec(`INSERT INTO poll (name, description) VALUES (?, ?)`, record[0], record[1])
		if err != nil {
			return fmt.Errorf("failed to insert poll: %w", err)
		}
		pollID, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("failed to resolve poll id: %w", err)
		}
		for i := 2; i+1 < len(record); i += 2 {
			votes, err := strconv.Atoi(record[i+1])
			if err != nil {
				return fmt.Errorf("vote count %q for choice %q is not an integer", record[i+1], record[i])
			}
			if _, err := tx.Exec(`INSERT INTO choice (poll_id, label, votes) VALUES (?, ?, ?)`, pollID, record[i], votes); err != nil {
				return fmt.Errorf("failed to insert choice: %w", err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}
	return nil
}

func (b *SQLiteBackend) WriteExport(key string, body []byte) error {
	path := filepath.Join(filepath.Dir(b.path), key+".txt")
	if err := os.WriteFile(path, body, 0o644); err != nil {
		return fmt.Errorf("failed to write export file: %w", err)
	}
	return nil
}

func (b *SQLiteBackend) Close() error {
	return b.db.Close()
}
