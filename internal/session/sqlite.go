package session

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var schemaFS embed.FS

const (
	keyAccessToken  = "access_token"
	keyRefreshToken = "refresh_token"
)

// SQLiteStore persists the credential pair in a local SQLite database so a
// login survives process restarts. Reads are served from memory; Set and
// Clear write through to disk.
type SQLiteStore struct {
	db      *sql.DB
	current Session
}

func OpenSQLite(path string) (*SQLiteStore, error) {
	if path == "" {
		return nil, fmt.Errorf("state db path is required")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create state dir: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	store := &SQLiteStore{db: db}
	if err := store.init(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

func (s *SQLiteStore) init(ctx context.Context) error {
	schemaSQL, err := schemaFS.ReadFile("schema.sql")
	if err != nil {
		return fmt.Errorf("read schema: %w", err)
	}
	if _, err := s.db.ExecContext(ctx, string(schemaSQL)); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}

	access, err := s.read(ctx, keyAccessToken)
	if err != nil {
		return err
	}
	refresh, err := s.read(ctx, keyRefreshToken)
	if err != nil {
		return err
	}
	s.current = Session{AccessToken: access, RefreshToken: refresh}
	return nil
}

func (s *SQLiteStore) read(ctx context.Context, name string) (string, error) {
	var value string
	err := s.db.QueryRowContext(ctx, "SELECT value FROM credentials WHERE name = ?", name).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read credential %s: %w", name, err)
	}
	return value, nil
}

func (s *SQLiteStore) Current() Session {
	return s.current
}

func (s *SQLiteStore) Set(sess Session) error {
	ctx := context.Background()
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("store session: %w", err)
	}
	defer tx.Rollback()

	upsert := "INSERT INTO credentials (name, value) VALUES (?, ?) ON CONFLICT(name) DO UPDATE SET value = excluded.value"
	if _, err := tx.ExecContext(ctx, upsert, keyAccessToken, sess.AccessToken); err != nil {
		return fmt.Errorf("store access token: %w", err)
	}
	if _, err := tx.ExecContext(ctx, upsert, keyRefreshToken, sess.RefreshToken); err != nil {
		return fmt.Errorf("store refresh token: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("store session: %w", err)
	}

	s.current = sess
	return nil
}

func (s *SQLiteStore) Clear() error {
	if _, err := s.db.ExecContext(context.Background(), "DELETE FROM credentials"); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	s.current = Session{}
	return nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
