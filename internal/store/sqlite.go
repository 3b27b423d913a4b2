package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"embed"

	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var sqlFiles embed.FS

// SQLiteRecents is the preferences channel for recent meetings, a small sqlite
// database holding the list in position order (position 0 is most recent).
type SQLiteRecents struct {
	db *sql.DB
}

// OpenRecents opens the sqlite database at path, creating the file and schema
// if needed.
func OpenRecents(path string) (*SQLiteRecents, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, fmt.Errorf("error creating data directory: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("error opening db: %w", err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("error pinging db: %w", err)
	}

	schema, _ := sqlFiles.ReadFile("schema.sql")
	if _, err := db.Exec(string(schema)); err != nil {
		return nil, fmt.Errorf("error creating tables: %w", err)
	}
	return &SQLiteRecents{db: db}, nil
}

// Load returns the stored ids in position order.
func (r *SQLiteRecents) Load() ([]string, error) {
	rows, err := r.db.Query("SELECT meeting_id FROM recent_meetings ORDER BY position")
	if err != nil {
		return nil, fmt.Errorf("error querying recent meetings: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("error scanning recent meeting: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// Save replaces the stored list with ids. The whole list is rewritten in one
// transaction, it is at most MaxRecents rows.
func (r *SQLiteRecents) Save(ids []string) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM recent_meetings"); err != nil {
		return fmt.Errorf("error clearing recent meetings: %w", err)
	}
	for i, id := range ids {
		if _, err := tx.Exec(
			"INSERT INTO recent_meetings (position, meeting_id) VALUES (?, ?)", i, id,
		); err != nil {
			return fmt.Errorf("error inserting recent meeting: %w", err)
		}
	}
	return tx.Commit()
}

// Close releases the underlying database handle.
func (r *SQLiteRecents) Close() error {
	return r.db.Close()
}
