// Package sqlite is the sqlite-backed driver for the membership document
// store. Tables play the role of collections; the atomic batched write maps
// onto a single transaction that only ever carries writes.
package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/footballeyeq/clubsvc/internal/club/store"

	_ "modernc.org/sqlite"
)

// dbtx is satisfied by both *sql.DB and *sql.Tx so the repository types can
// serve plain and batch-scoped access alike.
type dbtx interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type Store struct {
	db *sql.DB
}

func NewStore(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	if _, err := db.ExecContext(context.Background(), `PRAGMA busy_timeout = 5000;`); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error { return s.db.Close() }

// Ping verifies the database connection is still alive.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// WithBatch executes fn inside a transaction, committing every write
// together when fn returns nil and discarding all of them otherwise.
func (s *Store) WithBatch(ctx context.Context, fn func(b store.Batch) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	// Rollback is a no-op after a successful commit.
	defer func() {
		_ = tx.Rollback()
	}()

	if err := fn(&batch{tx: tx}); err != nil {
		return err
	}

	return tx.Commit()
}

func (s *Store) Accounts() store.Accounts       { return &accountsRepo{q: s.db} }
func (s *Store) Clubs() store.Clubs             { return &clubsRepo{q: s.db} }
func (s *Store) Memberships() store.Memberships { return &membershipsRepo{q: s.db} }
func (s *Store) Invites() store.Invites         { return &invitesRepo{q: s.db} }

// batch is the transaction-scoped view handed to WithBatch callbacks.
type batch struct {
	tx *sql.Tx
}

func (b *batch) Accounts() store.Accounts       { return &accountsRepo{q: b.tx} }
func (b *batch) Clubs() store.Clubs             { return &clubsRepo{q: b.tx} }
func (b *batch) Memberships() store.Memberships { return &membershipsRepo{q: b.tx} }
func (b *batch) Invites() store.Invites         { return &invitesRepo{q: b.tx} }

func mapNotFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return store.ErrNotFound
	}
	return err
}

func mapNullString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}

func mapStringNull(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}
