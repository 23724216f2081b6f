package main

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// HistoryStore reads command history from a SQLite database as written by
// command-tracking shells. Expected schema: history(command TEXT,
// started_at INTEGER) with started_at in Unix epoch seconds, NULL allowed.
type HistoryStore struct {
	db *sql.DB
}

// OpenHistoryStore opens a SQLite history database read-only
func OpenHistoryStore(path string) (*HistoryStore, error) {
	db, err := sql.Open("sqlite3", fmt.Sprintf("file:%s?mode=ro", path))
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}

	return &HistoryStore{db: db}, nil
}

// Entries returns history entries in execution order. maxEntries of 0 means
// unlimited.
func (s *HistoryStore) Entries(maxEntries int) ([]HistoryEntry, error) {
	query := "SELECT command, started_at FROM history ORDER BY started_at ASC"
	args := []interface{}{}
	if maxEntries > 0 {
		query += " LIMIT ?"
		args = append(args, maxEntries)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer rows.Close()

	var entries []HistoryEntry
	for rows.Next() {
		var command string
		var startedAt sql.NullInt64
		if err := rows.Scan(&command, &startedAt); err != nil {
			return entries, fmt.Errorf("failed to scan history row: %w", err)
		}

		entry := HistoryEntry{Command: command}
		if startedAt.Valid {
			date := dateOnly(time.Unix(startedAt.Int64, 0))
			entry.Date = &date
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return entries, fmt.Errorf("error reading history rows: %w", err)
	}

	return entries, nil
}

// Close releases the database handle
func (s *HistoryStore) Close() error {
	return s.db.Close()
}
