// internal/dict/sqlite.go
//
// SQLite-backed dictionary provider. Expects a words table of
// (id INTEGER PRIMARY KEY, word TEXT) rows, which mirrors how the word list
// is managed when it lives in a database rather than a flat file.

package dict

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/roseu7/wordle-helper/internal/solver"
)

// SQLiteProvider reads dictionary entries from a local SQLite database.
type SQLiteProvider struct {
	db *sql.DB
}

// OpenSQLite opens (and creates the parent directory for) a SQLite database
// file with busy timeout and WAL journaling configured.
func OpenSQLite(dsn string) (*SQLiteProvider, error) {
	dir := filepath.Dir(dsn)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}
	db, err := sql.Open("sqlite3", dsn+"?_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS words (
		id   INTEGER PRIMARY KEY,
		word TEXT NOT NULL
	)`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ensure words table: %w", err)
	}
	return &SQLiteProvider{db: db}, nil
}

// Entries selects every (id, word) row in id order.
func (p *SQLiteProvider) Entries(ctx context.Context) ([]solver.Entry, error) {
	rows, err := p.db.QueryContext(ctx, `SELECT id, word FROM words ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []solver.Entry
	for rows.Next() {
		var e solver.Entry
		if err := rows.Scan(&e.ID, &e.Word); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// Close releases the database handle.
func (p *SQLiteProvider) Close() error { return p.db.Close() }
