package sqlstore

import (
	"context"
	"errors"

	"menu-explainer/config"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewPostgres wraps an open pool. Closing the store closes the pool.
func NewPostgres(pool *pgxpool.Pool) *Store {
	return &Store{db: pgxDB{pgxConn{pool}, pool}, driver: config.DriverPostgres}
}

type pgxQuerier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

type pgxConn struct {
	q pgxQuerier
}

func (c pgxConn) Query(ctx context.Context, sql string, args ...any) (rows, error) {
	rs, err := c.q.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	return rs, nil
}

func (c pgxConn) QueryRow(ctx context.Context, sql string, args ...any) row {
	return pgxRow{c.q.QueryRow(ctx, sql, args...)}
}

func (c pgxConn) Exec(ctx context.Context, sql string, args ...any) error {
	_, err := c.q.Exec(ctx, sql, args...)
	return err
}

type pgxRow struct {
	r pgx.Row
}

func (r pgxRow) Scan(dest ...any) error {
	err := r.r.Scan(dest...)
	if errors.Is(err, pgx.ErrNoRows) {
		return errNoRows
	}
	return err
}

type pgxDB struct {
	pgxConn
	pool *pgxpool.Pool
}

func (d pgxDB) Begin(ctx context.Context) (tx, error) {
	t, err := d.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	return pgxTx{pgxConn{t}, t}, nil
}

func (d pgxDB) Close() {
	d.pool.Close()
}

type pgxTx struct {
	pgxConn
	t pgx.Tx
}

func (t pgxTx) Commit(ctx context.Context) error {
	return t.t.Commit(ctx)
}

func (t pgxTx) Rollback(ctx context.Context) error {
	return t.t.Rollback(ctx)
}
