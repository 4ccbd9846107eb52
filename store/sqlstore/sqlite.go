package sqlstore

import (
	"context"
	"database/sql"
	"errors"

	"menu-explainer/config"
)

// NewSQLite wraps a database opened with db.OpenSQLite. Closing the store
// closes the handle.
func NewSQLite(conn *sql.DB) *Store {
	return &Store{db: sqlDB{sqlConn{conn}, conn}, driver: config.DriverSQLite}
}

type sqlQuerier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

type sqlConn struct {
	q sqlQuerier
}

func (c sqlConn) Query(ctx context.Context, query string, args ...any) (rows, error) {
	rs, err := c.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return sqlRows{rs}, nil
}

func (c sqlConn) QueryRow(ctx context.Context, query string, args ...any) row {
	return sqlRow{c.q.QueryRowContext(ctx, query, args...)}
}

func (c sqlConn) Exec(ctx context.Context, query string, args ...any) error {
	_, err := c.q.ExecContext(ctx, query, args...)
	return err
}

type sqlRows struct {
	rs *sql.Rows
}

func (r sqlRows) Next() bool             { return r.rs.Next() }
func (r sqlRows) Scan(dest ...any) error { return r.rs.Scan(dest...) }
func (r sqlRows) Err() error             { return r.rs.Err() }
func (r sqlRows) Close()                 { r.rs.Close() }

type sqlRow struct {
	r *sql.Row
}

func (r sqlRow) Scan(dest ...any) error {
	err := r.r.Scan(dest...)
	if errors.Is(err, sql.ErrNoRows) {
		return errNoRows
	}
	return err
}

type sqlDB struct {
	sqlConn
	db *sql.DB
}

func (d sqlDB) Begin(ctx context.Context) (tx, error) {
	t, err := d.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return sqlTx{sqlConn{t}, t}, nil
}

func (d sqlDB) Close() {
	d.db.Close()
}

type sqlTx struct {
	sqlConn
	t *sql.Tx
}

func (t sqlTx) Commit(context.Context) error {
	return t.t.Commit()
}

func (t sqlTx) Rollback(context.Context) error {
	return t.t.Rollback()
}
