package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	// Register sqlite3 driver
	_ "github.com/mattn/go-sqlite3"
	log "github.com/sirupsen/logrus"
)

// SQLite stores keys in the kv table of a SQLite database.
type SQLite struct {
	db *sql.DB
}

// NewSQLite opens (or creates) the database at dsn and initializes its schema.
func NewSQLite(dsn string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("cannot open sqlite database %q: %w", dsn, err)
	}
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS kv(
		key TEXT PRIMARY KEY, value BLOB NOT NULL
	)`); err != nil {
		db.Close()
		return nil, fmt.Errorf("cannot initialize sqlite database %q: %w", dsn, err)
	}
	return &SQLite{db: db}, nil
}

func (s *SQLite) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key=?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return value, err
}

func (s *SQLite) Set(ctx context.Context, key string, value []byte) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO kv(key,value) VALUES(?,?) ON CONFLICT(key) DO UPDATE SET value=excluded.value`,
		key, value)
	if err != nil {
		return err
	}
	log.WithFields(log.Fields{"key": key, "bytes": len(value)}).Debug("stored")
	return nil
}

func (s *SQLite) Close() error { return s.db.Close() }
