package cache

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// sqliteStore is the optional persistent backing for the cache (it holds
// cache entries only): a pure-Go sqlite file that survives
// process restarts, so a re-run against the same notes with the same
// stage/model doesn't re-pay an LLM call after a crash or redeploy.
type sqliteStore struct {
	db *sql.DB
}

func openStore(path string) (*sqliteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("cache: open sqlite store: %w", err)
	}
	const schema = `CREATE TABLE IF NOT EXISTS cache_entries (
		input_hash TEXT NOT NULL,
		stage TEXT NOT NULL,
		model TEXT NOT NULL,
		value BLOB NOT NULL,
		PRIMARY KEY (input_hash, stage, model)
	)`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("cache: create schema: %w", err)
	}
	return &sqliteStore{db: db}, nil
}

func (s *sqliteStore) get(key Key) ([]byte, bool) {
	row := s.db.QueryRow(
		`SELECT value FROM cache_entries WHERE input_hash = ? AND stage = ? AND model = ?`,
		key.InputHash, key.Stage, key.Model,
	)
	var value []byte
	if err := row.Scan(&value); err != nil {
		return nil, false
	}
	return value, true
}

func (s *sqliteStore) put(key Key, value []byte) error {
	_, err := s.db.Exec(
		`INSERT INTO cache_entries (input_hash, stage, model, value) VALUES (?, ?, ?, ?)
		 ON CONFLICT (input_hash, stage, model) DO UPDATE SET value = excluded.value`,
		key.InputHash, key.Stage, key.Model, value,
	)
	return err
}

func (s *sqliteStore) close() error {
	return s.db.Close()
}
