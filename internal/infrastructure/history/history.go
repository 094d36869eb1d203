// Package history persists which articles the user has opened.
package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/tesso57/headlines/internal/domain/news"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS opened_articles (
	id        TEXT PRIMARY KEY,
	item_key  TEXT NOT NULL,
	title     TEXT NOT NULL DEFAULT '',
	url       TEXT NOT NULL DEFAULT '',
	source    TEXT NOT NULL DEFAULT '',
	opened_at DATETIME NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_opened_articles_key ON opened_articles(item_key);
`

// Manager handles reading and writing the read history database.
type Manager struct {
	mu   sync.Mutex
	path string
	db   *sql.DB
}

// NewManager creates a new history manager. The database is opened lazily.
func NewManager(path string) *Manager {
	return &Manager{path: path}
}

func (m *Manager) open() (*sql.DB, error) {
	if m.db != nil {
		return m.db, nil
	}
	if err := os.MkdirAll(filepath.Dir(m.path), 0750); err != nil {
		return nil, fmt.Errorf("creating history dir: %w", err)
	}
	db, err := sql.Open("sqlite", m.path)
	if err != nil {
		return nil, fmt.Errorf("opening history db: %w", err)
	}
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("initializing history schema: %w", err)
	}
	m.db = db
	return db, nil
}

// RecordOpened appends one open event for item.
func (m *Manager) RecordOpened(item news.Item, at time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	db, err := m.open()
	if err != nil {
		return err
	}
	_, err = db.Exec(
		`INSERT INTO opened_articles (id, item_key, title, url, source, opened_at) VALUES (?, ?, ?, ?, ?, ?)`,
		uuid.NewString(), item.Key(), item.Title, item.URL, item.Source, at.UTC(),
	)
	if err != nil {
		return fmt.Errorf("recording opened article: %w", err)
	}
	return nil
}

// OpenedKeys returns the set of item keys that were opened at least once.
func (m *Manager) OpenedKeys() (map[string]bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	db, err := m.open()
	if err != nil {
		return nil, err
	}
	rows, err := db.Query(`SELECT DISTINCT item_key FROM opened_articles`)
	if err != nil {
		return nil, fmt.Errorf("querying opened articles: %w", err)
	}
	defer func() { _ = rows.Close() }()

	keys := make(map[string]bool)
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, fmt.Errorf("scanning opened article: %w", err)
		}
		keys[key] = true
	}
	return keys, rows.Err()
}

// count returns the number of recorded open events.
func (m *Manager) count() (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	db, err := m.open()
	if err != nil {
		return 0, err
	}
	var n int
	if err := db.QueryRow(`SELECT COUNT(*) FROM opened_articles`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting opened articles: %w", err)
	}
	return n, nil
}

// Close releases the database handle.
func (m *Manager) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.db == nil {
		return nil
	}
	err := m.db.Close()
	m.db = nil
	return err
}
