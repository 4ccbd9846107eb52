package db

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
)

// Migrations are embedded so `menu-explainer migrate` works regardless of
// the current working directory.
//
//go:embed migrations/*/*.sql
var migrationsFS embed.FS

// DropSQL removes the menu tables, children first.
const DropSQL = `
DROP TABLE IF EXISTS menu_items;
DROP TABLE IF EXISTS sections;
DROP TABLE IF EXISTS restaurants;
`

type Migration struct {
	Name string
	SQL  string
}

// Migrations returns the driver's migrations in lexical order.
func Migrations(driver string) ([]Migration, error) {
	names, err := fs.Glob(migrationsFS, path.Join("migrations", driver, "*.sql"))
	if err != nil {
		return nil, fmt.Errorf("list migrations: %w", err)
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("no migrations for driver %q", driver)
	}
	sort.Strings(names)

	out := make([]Migration, 0, len(names))
	for _, name := range names {
		b, err := migrationsFS.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("read migration %s: %w", name, err)
		}
		out = append(out, Migration{Name: path.Base(name), SQL: string(b)})
	}
	return out, nil
}
