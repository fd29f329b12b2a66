// Package store is the persistence gateway: every read and write to
// Postgres goes through DB.
package store

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrUniqueViolation is returned when a write hits a unique constraint.
var ErrUniqueViolation = errors.New("unique constraint violation")

const uniqueViolationCode = "23505"

type Options struct {
	MaxConns     int32
	QueryTimeout time.Duration
	// Serialize routes every call through one process-wide mutex. Only
	// turn it on for backends that need a single writer.
	Serialize bool
}

// Querier is the subset of pgx shared by the pool and a transaction.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults
}

type DB struct {
	pool    *pgxpool.Pool
	timeout time.Duration
	mu      *sync.Mutex
}

func Open(ctx context.Context, dsn string, opts Options) (*DB, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}
	if opts.MaxConns > 0 {
		cfg.MaxConns = opts.MaxConns
	}
	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("open pool: %w", err)
	}
	return New(pool, opts), nil
}

func New(pool *pgxpool.Pool, opts Options) *DB {
	db := &DB{pool: pool, timeout: opts.QueryTimeout}
	if db.timeout <= 0 {
		db.timeout = 5 * time.Second
	}
	if opts.Serialize {
		db.mu = &sync.Mutex{}
	}
	return db
}

func (db *DB) Close() { db.pool.Close() }

func (db *DB) enter(ctx context.Context) (context.Context, func()) {
	ctx, cancel := context.WithTimeout(ctx, db.timeout)
	if db.mu == nil {
		return ctx, cancel
	}
	db.mu.Lock()
	return ctx, func() {
		db.mu.Unlock()
		cancel()
	}
}

func (db *DB) Ping(ctx context.Context) error {
	ctx, done := db.enter(ctx)
	defer done()
	return db.pool.Ping(ctx)
}

// Exec runs a write and reports the affected row count.
func (db *DB) Exec(ctx context.Context, sql string, args ...any) (int64, error) {
	ctx, done := db.enter(ctx)
	defer done()
	tag, err := db.pool.Exec(ctx, sql, args...)
	if err != nil {
		return 0, translate(err)
	}
	return tag.RowsAffected(), nil
}

// FetchAll runs a query and hands every row to scan.
func (db *DB) FetchAll(ctx context.Context, sql string, scan func(pgx.Rows) error, args ...any) error {
	ctx, done := db.enter(ctx)
	defer done()
	return fetchAll(ctx, db.pool, sql, scan, args...)
}

// FetchOne runs a single-row query and scans it into dest. pgx.ErrNoRows
// is returned untouched so callers can map it to their own not-found.
func (db *DB) FetchOne(ctx context.Context, sql string, args []any, dest ...any) error {
	ctx, done := db.enter(ctx)
	defer done()
	return db.pool.QueryRow(ctx, sql, args...).Scan(dest...)
}

// InsertReturningID runs an INSERT ... RETURNING id.
func (db *DB) InsertReturningID(ctx context.Context, sql string, args ...any) (int64, error) {
	ctx, done := db.enter(ctx)
	defer done()
	var id int64
	if err := db.pool.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		return 0, translate(err)
	}
	return id, nil
}

// WithTx runs fn inside a transaction. It commits when fn returns nil and
// rolls back otherwise.
func (db *DB) WithTx(ctx context.Context, fn func(ctx context.Context, q Querier) error) error {
	ctx, done := db.enter(ctx)
	defer done()

	tx, err := db.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(ctx, tx); err != nil {
		return translate(err)
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", translate(err))
	}
	return nil
}

func fetchAll(ctx context.Context, q Querier, sql string, scan func(pgx.Rows) error, args ...any) error {
	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return translate(err)
	}
	defer rows.Close()
	for rows.Next() {
		if err := scan(rows); err != nil {
			return err
		}
	}
	return rows.Err()
}

func translate(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
		return fmt.Errorf("%w: %s", ErrUniqueViolation, pgErr.ConstraintName)
	}
	return err
}

// IsNoRows reports whether err is pgx's no-rows result.
func IsNoRows(err error) bool { return errors.Is(err, pgx.ErrNoRows) }
