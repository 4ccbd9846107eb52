package sqlstore

import (
	"context"
	"fmt"

	"menu-explainer/config"
	"menu-explainer/db"
)

// Open connects through db.Init and wraps whichever handle it opened.
func Open(ctx context.Context, cfg config.DBConfig) (*Store, error) {
	if err := db.Init(cfg); err != nil {
		return nil, fmt.Errorf("connect %s: %w", cfg.Driver, err)
	}
	switch db.Driver {
	case config.DriverPostgres:
		if err := db.Pool.Ping(ctx); err != nil {
			db.Close()
			return nil, fmt.Errorf("ping postgres: %w", err)
		}
		return NewPostgres(db.Pool), nil
	default:
		return NewSQLite(db.SQLite), nil
	}
}
