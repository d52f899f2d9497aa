// Package repodb caches repository id/name pairs in a local SQLite file
// so build commands can resolve a repository name without hitting the
// remote repositories API.
package repodb

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3" // sqlite3 driver
)

// Entry is one cached repository.
type Entry struct {
	ID   string
	Name string
}

// DefaultPath returns the cache database location, <home>/.fus/ado.db.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}

	return filepath.Join(home, ".fus", "ado.db"), nil
}

// UpsertAll inserts or replaces every entry in one transaction, creating
// the database file, its directory and the table on first use.
func UpsertAll(path string, entries []Entry) error {
	db, err := open(path)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin cache txn: %w", err)
	}

	committed := false

	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	stmt, err := tx.Prepare("INSERT OR REPLACE INTO repos (id, name) VALUES (?, ?)")
	if err != nil {
		return fmt.Errorf("prepare cache insert: %w", err)
	}

	defer func() { _ = stmt.Close() }()

	for _, entry := range entries {
		if _, err := stmt.Exec(entry.ID, entry.Name); err != nil {
			return fmt.Errorf("cache repository %s: %w", entry.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit cache txn: %w", err)
	}

	committed = true

	return nil
}

// IDByName looks up a repository id. The second return value is false
// when the name is not cached.
func IDByName(path, name string) (string, bool, error) {
	db, err := open(path)
	if err != nil {
		return "", false, err
	}
	defer func() { _ = db.Close() }()

	var id string

	err = db.QueryRow("SELECT id FROM repos WHERE name = ?", name).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}

	if err != nil {
		return "", false, fmt.Errorf("query repo cache: %w", err)
	}

	return id, true, nil
}

func open(path string) (*sql.DB, error) {
	if path == "" {
		return nil, errors.New("open repo cache: path is empty")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create cache directory: %w", err)
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open repo cache: %w", err)
	}

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS repos (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL
	) WITHOUT ROWID`); err != nil {
		_ = db.Close()

		return nil, fmt.Errorf("create repos table: %w", err)
	}

	return db, nil
}
