package bot

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	_ "modernc.org/sqlite"
)

// TranscriptStore persists chat turns to a local SQLite database so a
// conversation survives portal restarts. One transcript per portal session.
type TranscriptStore struct {
	db *sql.DB
	mu sync.Mutex
}

// NewTranscriptStore opens (or creates) the transcript database at path.
func NewTranscriptStore(path string) (*TranscriptStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create transcript directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open transcript database: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		return nil, fmt.Errorf("set busy_timeout: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		return nil, fmt.Errorf("set journal_mode: %w", err)
	}

	s := &TranscriptStore{db: db}
	if err := s.initialize(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *TranscriptStore) initialize() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS transcript (
			id         INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id TEXT NOT NULL,
			role       TEXT NOT NULL,
			text       TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_transcript_session ON transcript(session_id, id);
	`)
	if err != nil {
		return fmt.Errorf("initialize transcript schema: %w", err)
	}
	return nil
}

// Append records one conversation turn.
func (s *TranscriptStore) Append(sessionID, role, text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.db.Exec(
		"INSERT INTO transcript (session_id, role, text) VALUES (?, ?, ?)",
		sessionID, role, text,
	)
	return err
}

// Recent returns up to limit turns for a session in chronological order.
func (s *TranscriptStore) Recent(sessionID string, limit int) ([]Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if limit <= 0 {
		limit = 100
	}

	rows, err := s.db.Query(
		`SELECT role, text FROM (
			SELECT id, role, text FROM transcript
			WHERE session_id = ? ORDER BY id DESC LIMIT ?
		) ORDER BY id ASC`,
		sessionID, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []Message
	for rows.Next() {
		var m Message
		if err := rows.Scan(&m.Role, &m.Text); err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}
	return messages, rows.Err()
}

// Close releases the database handle.
func (s *TranscriptStore) Close() error {
	return s.db.Close()
}
