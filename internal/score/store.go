// Package score maintains the persisted top-3 high-score table.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package score

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// TableSize is the maximum number of entries kept.
const TableSize = 3

// Entry is a single high-score record.
type Entry struct {
	Initials string
	Score    int
}

// Store persists the table in a SQLite database at a fixed path. The
// table is loaded once at open and mirrored in memory; every qualifying
// submission rewrites it in full, synchronously — writes are rare, so
// durability wins over throughput.
type Store struct {
	db      *sql.DB
	entries []Entry
}

// Open creates or opens the score database at the given path, creating
// parent directories as needed. Missing or corrupt data yields an empty
// table, never an error: a damaged score file must not block gameplay.
// Only an unusable database (unopenable path, failed migration) errors.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("score: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("score: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("score: cannot open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("score: cannot connect to database: %w", err)
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("score: migration failed: %w", err)
	}

	s.load()
	return s, nil
}

// migrate creates the schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS highscores (
			pos INTEGER PRIMARY KEY,
			initials TEXT NOT NULL,
			score INTEGER NOT NULL
		);
	`
	_, err := s.db.Exec(schema)
	return err
}

// load reads the persisted table. Unreadable or malformed rows are
// dropped; any failure leaves an empty table.
func (s *Store) load() {
	s.entries = nil

	rows, err := s.db.Query("SELECT initials, score FROM highscores ORDER BY pos")
	if err != nil {
		return
	}
	defer rows.Close()

	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.Initials, &e.Score); err != nil {
			continue
		}
		if len(e.Initials) != 3 || e.Score < 0 {
			continue
		}
		s.entries = append(s.entries, e)
		if len(s.entries) == TableSize {
			break
		}
	}

	sortEntries(s.entries)
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Qualifies reports whether a score earns a spot: the table has room, or
// the score beats the current minimum. Equal scores do not displace an
// existing entry (earliest submission wins ties).
func (s *Store) Qualifies(score int) bool {
	return qualifies(s.entries, score)
}

// Submit inserts an entry, keeps the table sorted descending and capped at
// TableSize, and rewrites the persisted table in one transaction. The
// in-memory table is updated even when the write fails, so the session
// result can still be shown; the error is for logging only.
func (s *Store) Submit(initials string, score int) error {
	s.entries = insert(s.entries, Entry{Initials: initials, Score: score})

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("score: cannot begin rewrite: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM highscores"); err != nil {
		tx.Rollback()
		return fmt.Errorf("score: cannot clear table: %w", err)
	}
	for i, e := range s.entries {
		if _, err := tx.Exec(
			"INSERT INTO highscores (pos, initials, score) VALUES (?, ?, ?)",
			i, e.Initials, e.Score,
		); err != nil {
			tx.Rollback()
			return fmt.Errorf("score: cannot write entry: %w", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("score: cannot commit rewrite: %w", err)
	}
	return nil
}

// Entries returns a copy of the table, sorted descending by score.
func (s *Store) Entries() []Entry {
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Clear deletes all entries.
func (s *Store) Clear() error {
	if _, err := s.db.Exec("DELETE FROM highscores"); err != nil {
		return fmt.Errorf("score: cannot clear table: %w", err)
	}
	s.entries = nil
	return nil
}

// Memory is a volatile table with the same behavior as Store. Used as a
// fallback when the persistent database cannot be opened: the game plays
// on, scores just don't survive a power cycle.
type Memory struct {
	entries []Entry
}

// NewMemory returns an empty in-memory table.
func NewMemory() *Memory {
	return &Memory{}
}

// Qualifies reports whether a score earns a spot.
func (m *Memory) Qualifies(score int) bool {
	return qualifies(m.entries, score)
}

// Submit inserts an entry. Never fails.
func (m *Memory) Submit(initials string, score int) error {
	m.entries = insert(m.entries, Entry{Initials: initials, Score: score})
	return nil
}

// Entries returns a copy of the table.
func (m *Memory) Entries() []Entry {
	out := make([]Entry, len(m.entries))
	copy(out, m.entries)
	return out
}

func qualifies(entries []Entry, score int) bool {
	if len(entries) < TableSize {
		return true
	}
	return score > entries[len(entries)-1].Score
}

// insert appends, re-sorts and truncates. The stable sort keeps earlier
// submissions ahead of later ones with the same score.
func insert(entries []Entry, e Entry) []Entry {
	entries = append(entries, e)
	sortEntries(entries)
	if len(entries) > TableSize {
		entries = entries[:TableSize]
	}
	return entries
}

func sortEntries(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Score > entries[j].Score
	})
}
