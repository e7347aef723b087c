package store

import (
	"database/sql"
	"errors"
	"log"

	"github.com/domuslabs/cashlens/internal/db"
)

// SQLite is a Store backed by the kv table of a cashlens database.
type SQLite struct {
	db *db.DB
}

// NewSQLite creates a SQLite-backed store.
func NewSQLite(database *db.DB) *SQLite {
	return &SQLite{db: database}
}

func (s *SQLite) Read(key string) (string, bool) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			log.Printf("store: reading %q: %v", key, err)
		}
		return "", false
	}
	return value, true
}

func (s *SQLite) Write(key, value string) bool {
	_, err := s.db.Exec(`
		INSERT INTO kv (key, value, updated_at) VALUES (?, ?, datetime('now'))
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value)
	if err != nil {
		log.Printf("store: writing %q: %v", key, err)
		return false
	}
	return true
}

func (s *SQLite) Remove(key string) {
	if _, err := s.db.Exec(`DELETE FROM kv WHERE key = ?`, key); err != nil {
		log.Printf("store: removing %q: %v", key, err)
	}
}
