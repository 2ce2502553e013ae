package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/samber/oops"

	"github.com/hongminglow/accounts-be/internal/storage"
)

// Ensure Store satisfies the storage interfaces at compile time.
var (
	_ storage.UserStore     = (*Store)(nil)
	_ storage.BusinessStore = (*Store)(nil)
	_ DB                    = (*pgxpool.Pool)(nil)
)

// DB is the subset of *pgxpool.Pool the store uses.
type DB interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Close()
}

// Store provides Postgres-backed persistence for users and businesses.
// Every statement uses bound parameters.
type Store struct {
	db DB
}

// New wraps an existing connection pool.
func New(db DB) *Store {
	return &Store{db: db}
}

// Open connects to databaseURL, applies pending migrations and returns a Store.
func Open(ctx context.Context, databaseURL string) (*Store, error) {
	pool, err := Connect(ctx, databaseURL)
	if err != nil {
		return nil, err
	}
	if err := Migrate(ctx, pool); err != nil {
		pool.Close()
		return nil, err
	}
	return New(pool), nil
}

// Connect opens and pings a connection pool.
func Connect(ctx context.Context, databaseURL string) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse database url: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return pool, nil
}

// Close releases database resources.
func (s *Store) Close() {
	if s.db != nil {
		s.db.Close()
	}
}

// wrap classifies a driver error. No rows becomes storage.ErrNotFound, a
// unique violation becomes storage.ErrAlreadyExists; anything else keeps its
// message under an oops code.
func wrap(err error, code, operation string) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return storage.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		return storage.ErrAlreadyExists
	}
	return oops.Code(code).With("operation", operation).Wrap(err)
}
