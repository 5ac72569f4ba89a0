// Package storage provides a SQLite-backed local dictionary cache.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
//
// The cache holds words fetched from the remote endpoint for offline
// browsing via the dict CLI. It stores no session or outcome data, and the
// game itself never reads it: target selection and guess acceptance work
// exclusively from the words package.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for the dictionary cache.
type Store struct {
	db *sql.DB
}

// WordEntry represents a single cached word.
type WordEntry struct {
	ID        int64
	Word      string
	Length    int
	Origin    string // "remote" or "embedded"
	FetchedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	// Open database
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	// Run migrations
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS words (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			word TEXT NOT NULL UNIQUE,
			length INTEGER NOT NULL,
			origin TEXT NOT NULL,
			fetched_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_words_length ON words(length);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// AddWords inserts words into the cache, skipping duplicates.
// Returns the number of newly added words.
func (s *Store) AddWords(words []string, origin string) (int, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(
		"INSERT OR IGNORE INTO words (word, length, origin) VALUES (?, ?, ?)",
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot prepare insert: %w", err)
	}
	defer stmt.Close()

	added := 0
	for _, w := range words {
		result, err := stmt.Exec(w, len(w), origin)
		if err != nil {
			return added, fmt.Errorf("storage: cannot insert word %q: %w", w, err)
		}
		if n, err := result.RowsAffected(); err == nil {
			added += int(n)
		}
	}

	if err := tx.Commit(); err != nil {
		return added, fmt.Errorf("storage: cannot commit: %w", err)
	}
	return added, nil
}

// Contains reports whether the word is in the cache.
func (s *Store) Contains(word string) (bool, error) {
	var one int
	err := s.db.QueryRow("SELECT 1 FROM words WHERE word = ?", word).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("storage: cannot query word: %w", err)
	}
	return true, nil
}

// CountByLength returns the number of cached words per length.
func (s *Store) CountByLength() (map[int]int, error) {
	rows, err := s.db.Query(
		"SELECT length, COUNT(*) FROM words GROUP BY length ORDER BY length",
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query counts: %w", err)
	}
	defer rows.Close()

	counts := make(map[int]int)
	for rows.Next() {
		var length, count int
		if err := rows.Scan(&length, &count); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		counts[length] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return counts, nil
}

// Sample returns up to limit cached words of the given length, most
// recently fetched first.
func (s *Store) Sample(length, limit int) ([]WordEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, word, length, origin, fetched_at
		 FROM words
		 WHERE length = ?
		 ORDER BY fetched_at DESC, id DESC
		 LIMIT ?`,
		length, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query words: %w", err)
	}
	defer rows.Close()

	var entries []WordEntry
	for rows.Next() {
		var e WordEntry
		var fetchedAt any
		if err := rows.Scan(&e.ID, &e.Word, &e.Length, &e.Origin, &fetchedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}

		// Parse the datetime - handle both time.Time and string
		switch v := fetchedAt.(type) {
		case time.Time:
			e.FetchedAt = v
		case string:
			if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
				e.FetchedAt = parsed
			}
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return entries, nil
}
