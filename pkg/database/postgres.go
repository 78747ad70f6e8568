package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"flight-booking/pkg/utils"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrMissingURL = errors.New("database url is not configured")

// PgxIface interface untuk abstraction database
type PgxIface interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Ping(ctx context.Context) error
	Close()
}

// DB wrapper struct
type DB struct {
	pool *pgxpool.Pool
}

func (db *DB) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return db.pool.Query(ctx, sql, args...)
}

func (db *DB) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return db.pool.QueryRow(ctx, sql, args...)
}

func (db *DB) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	return db.pool.Exec(ctx, sql, args...)
}

func (db *DB) Ping(ctx context.Context) error {
	return db.pool.Ping(ctx)
}

func (db *DB) Close() {
	db.pool.Close()
}

// InitDB opens the connection pool. The pool is lazy: an unreachable database
// does not stop the process, it surfaces through the health endpoint instead.
func InitDB(config utils.DatabaseConfig) (PgxIface, error) {
	if config.URL == "" {
		return nil, ErrMissingURL
	}

	poolConfig, err := pgxpool.ParseConfig(config.URL)
	if err != nil {
		return nil, fmt.Errorf("parse pool config: %w", err)
	}

	if config.MaxConns > 0 {
		poolConfig.MaxConns = config.MaxConns
	}
	poolConfig.MaxConnLifetime = 30 * time.Minute
	poolConfig.MaxConnIdleTime = 5 * time.Minute
	poolConfig.HealthCheckPeriod = 1 * time.Minute
	poolConfig.ConnConfig.ConnectTimeout = 5 * time.Second

	pool, err := pgxpool.NewWithConfig(context.Background(), poolConfig)
	if err != nil {
		return nil, fmt.Errorf("create connection pool: %w", err)
	}

	return &DB{pool: pool}, nil
}

// unconfigured stands in for the pool when no database url is set, so the
// process still serves the health endpoint and reports the gap.
type unconfigured struct{}

type errRow struct{ err error }

func (r errRow) Scan(dest ...any) error { return r.err }

func Unconfigured() PgxIface { return unconfigured{} }

func (unconfigured) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, ErrMissingURL
}

func (unconfigured) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return errRow{err: ErrMissingURL}
}

func (unconfigured) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, ErrMissingURL
}

func (unconfigured) Ping(ctx context.Context) error { return ErrMissingURL }

func (unconfigured) Close() {}
