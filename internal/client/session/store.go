// Package session keeps the CLI's login state between invocations in a small
// SQLite database: the access token issued by login and the account it
// belongs to.
package session

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dmitrijs2005/dialkeeper/internal/dbx"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

const (
	keyToken  = "access_token"
	keyEmail  = "email"
	keyServer = "server"
)

// Session is what login leaves behind.
type Session struct {
	Token  string
	Email  string
	Server string
}

// Store reads and writes the current session.
type Store struct {
	db   *sql.DB
	repo Repository
}

// Open opens (creating if needed) the session database at path and applies
// its migrations.
func Open(ctx context.Context, path string) (*Store, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
			return nil, fmt.Errorf("session: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("session: open: %w", err)
	}
	db.SetMaxOpenConns(1)

	if err := runMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("session: migrate: %w", err)
	}

	return &Store{db: db, repo: NewSQLiteRepository(db)}, nil
}

func runMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrationsFS)
	goose.SetLogger(goose.NopLogger())
	if err := goose.SetDialect("sqlite3"); err != nil {
		return err
	}
	return goose.UpContext(ctx, db, "migrations")
}

// Load returns the saved session. A zero Session means nobody is logged in.
func (s *Store) Load(ctx context.Context) (Session, error) {
	var out Session
	for key, dst := range map[string]*string{keyToken: &out.Token, keyEmail: &out.Email, keyServer: &out.Server} {
		v, err := s.repo.Get(ctx, key)
		if err != nil {
			return Session{}, err
		}
		*dst = string(v)
	}
	return out, nil
}

// Save replaces the stored session atomically.
func (s *Store) Save(ctx context.Context, sess Session) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := NewSQLiteRepository(tx)
		if err := repo.Clear(ctx); err != nil {
			return err
		}
		for key, v := range map[string]string{keyToken: sess.Token, keyEmail: sess.Email, keyServer: sess.Server} {
			if err := repo.Set(ctx, key, []byte(v)); err != nil {
				return err
			}
		}
		return nil
	})
}

// Clear forgets the stored session.
func (s *Store) Clear(ctx context.Context) error {
	return s.repo.Clear(ctx)
}

func (s *Store) Close() error {
	return s.db.Close()
}
