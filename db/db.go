package db

import (
	"context"
	"database/sql"
	"fmt"

	"menu-explainer/config"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/mattn/go-sqlite3"
)

var (
	// Pool is set by Init when the postgres driver is selected.
	Pool *pgxpool.Pool
	// SQLite is set by Init when the sqlite driver is selected.
	SQLite *sql.DB
	// Driver is the driver chosen by the last Init.
	Driver string
)

func Init(cfg config.DBConfig) error {
	driver, dsn := cfg.Resolve()
	switch driver {
	case config.DriverPostgres:
		pool, err := pgxpool.New(context.Background(), dsn)
		if err != nil {
			return err
		}
		Pool = pool
	case config.DriverSQLite:
		conn, err := OpenSQLite(dsn)
		if err != nil {
			return err
		}
		SQLite = conn
	default:
		return fmt.Errorf("unsupported driver %q", driver)
	}
	Driver = driver
	return nil
}

// OpenSQLite opens the database file at path with foreign keys enforced.
func OpenSQLite(path string) (*sql.DB, error) {
	conn, err := sql.Open("sqlite3", fmt.Sprintf("file:%s?_foreign_keys=on&_busy_timeout=5000", path))
	if err != nil {
		return nil, err
	}
	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}
	return conn, nil
}

func Close() {
	if Pool != nil {
		Pool.Close()
		Pool = nil
	}
	if SQLite != nil {
		SQLite.Close()
		SQLite = nil
	}
}
