// Package sqlstore implements store.Store on a relational database. The query
// set is shared between Postgres (pgx) and SQLite (database/sql): both accept
// $n placeholders and INSERT ... RETURNING.
package sqlstore

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"menu-explainer/db"
	"menu-explainer/models"
	"menu-explainer/store"
)

const (
	listRestaurantsSQL  = `SELECT id, name FROM restaurants ORDER BY id`
	restaurantByNameSQL = `SELECT id, name FROM restaurants WHERE name = $1`
	sectionsOfSQL       = `SELECT id, restaurant_id, name FROM sections WHERE restaurant_id = $1 ORDER BY id`
	itemsOfSQL          = `
SELECT i.id, i.section_id, i.name, i.description, i.price
FROM menu_items i
JOIN sections s ON s.id = i.section_id
WHERE s.restaurant_id = $1
ORDER BY s.id, i.id`
	listItemsSQL = `
SELECT i.id, i.section_id, i.name, i.description, i.price, s.name, r.name
FROM menu_items i
JOIN sections s ON s.id = i.section_id
JOIN restaurants r ON r.id = s.restaurant_id`
	listItemsOrderSQL = ` ORDER BY r.id, s.id, i.id`

	insertRestaurantSQL = `INSERT INTO restaurants (name) VALUES ($1) RETURNING id`
	insertSectionSQL    = `INSERT INTO sections (restaurant_id, name) VALUES ($1, $2) RETURNING id`
	insertItemSQL       = `INSERT INTO menu_items (section_id, name, description, price) VALUES ($1, $2, $3, $4) RETURNING id`

	deleteItemsSQL      = `DELETE FROM menu_items WHERE section_id IN (SELECT id FROM sections WHERE restaurant_id = $1)`
	deleteSectionsSQL   = `DELETE FROM sections WHERE restaurant_id = $1`
	deleteRestaurantSQL = `DELETE FROM restaurants WHERE id = $1`
)

// errNoRows is what both adapters report for an empty QueryRow.
var errNoRows = errors.New("sqlstore: no rows")

type rows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close()
}

type row interface {
	Scan(dest ...any) error
}

type conn interface {
	Query(ctx context.Context, sql string, args ...any) (rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) row
	Exec(ctx context.Context, sql string, args ...any) error
}

type tx interface {
	conn
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

type database interface {
	conn
	Begin(ctx context.Context) (tx, error)
	Close()
}

type Store struct {
	db     database
	driver string
}

var _ store.Store = (*Store)(nil)

// Driver reports the SQL dialect behind the store.
func (s *Store) Driver() string {
	return s.driver
}

// Migrate applies the embedded migrations for the store's dialect.
func (s *Store) Migrate(ctx context.Context) error {
	ms, err := db.Migrations(s.driver)
	if err != nil {
		return err
	}
	for _, m := range ms {
		if err := s.db.Exec(ctx, m.SQL); err != nil {
			return fmt.Errorf("apply migration %s: %w", m.Name, err)
		}
		slog.Debug("migration applied", "name", m.Name, "driver", s.driver)
	}
	return nil
}

func (s *Store) Reset(ctx context.Context) error {
	if err := s.db.Exec(ctx, db.DropSQL); err != nil {
		return fmt.Errorf("drop tables: %w", err)
	}
	return s.Migrate(ctx)
}

func (s *Store) ImportRestaurant(ctx context.Context, r models.Restaurant) (int64, error) {
	t, err := s.db.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer func() { _ = t.Rollback(ctx) }()

	var restaurantID int64
	if err := t.QueryRow(ctx, insertRestaurantSQL, r.Name).Scan(&restaurantID); err != nil {
		return 0, fmt.Errorf("insert restaurant %q: %w", r.Name, err)
	}
	for _, sec := range r.Sections {
		var sectionID int64
		if err := t.QueryRow(ctx, insertSectionSQL, restaurantID, sec.Name).Scan(&sectionID); err != nil {
			return 0, fmt.Errorf("insert section %q: %w", sec.Name, err)
		}
		for _, it := range sec.Items {
			var itemID int64
			if err := t.QueryRow(ctx, insertItemSQL, sectionID, it.Name, it.Description, it.Price).Scan(&itemID); err != nil {
				return 0, fmt.Errorf("insert item %q: %w", it.Name, err)
			}
		}
	}
	if err := t.Commit(ctx); err != nil {
		return 0, err
	}
	return restaurantID, nil
}

// DeleteRestaurant removes children explicitly so the cascade does not depend
// on the connection's foreign key settings.
func (s *Store) DeleteRestaurant(ctx context.Context, name string) error {
	t, err := s.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = t.Rollback(ctx) }()

	var r models.Restaurant
	if err := t.QueryRow(ctx, restaurantByNameSQL, name).Scan(&r.ID, &r.Name); err != nil {
		if errors.Is(err, errNoRows) {
			return store.ErrNotFound
		}
		return err
	}
	for _, q := range []string{deleteItemsSQL, deleteSectionsSQL, deleteRestaurantSQL} {
		if err := t.Exec(ctx, q, r.ID); err != nil {
			return fmt.Errorf("delete restaurant %q: %w", name, err)
		}
	}
	return t.Commit(ctx)
}

func (s *Store) ListRestaurants(ctx context.Context) ([]models.Restaurant, error) {
	rs, err := s.db.Query(ctx, listRestaurantsSQL)
	if err != nil {
		return nil, err
	}
	defer rs.Close()

	list := []models.Restaurant{}
	for rs.Next() {
		var r models.Restaurant
		if err := rs.Scan(&r.ID, &r.Name); err != nil {
			return nil, err
		}
		list = append(list, r)
	}
	return list, rs.Err()
}

func (s *Store) GetRestaurant(ctx context.Context, name string) (*models.Restaurant, error) {
	var r models.Restaurant
	if err := s.db.QueryRow(ctx, restaurantByNameSQL, name).Scan(&r.ID, &r.Name); err != nil {
		if errors.Is(err, errNoRows) {
			return nil, store.ErrNotFound
		}
		return nil, err
	}

	srows, err := s.db.Query(ctx, sectionsOfSQL, r.ID)
	if err != nil {
		return nil, err
	}
	index := map[int64]int{}
	for srows.Next() {
		var sec models.Section
		if err := srows.Scan(&sec.ID, &sec.RestaurantID, &sec.Name); err != nil {
			srows.Close()
			return nil, err
		}
		index[sec.ID] = len(r.Sections)
		r.Sections = append(r.Sections, sec)
	}
	srows.Close()
	if err := srows.Err(); err != nil {
		return nil, err
	}

	irows, err := s.db.Query(ctx, itemsOfSQL, r.ID)
	if err != nil {
		return nil, err
	}
	defer irows.Close()
	for irows.Next() {
		var it models.MenuItem
		if err := irows.Scan(&it.ID, &it.SectionID, &it.Name, &it.Description, &it.Price); err != nil {
			return nil, err
		}
		if i, ok := index[it.SectionID]; ok {
			r.Sections[i].Items = append(r.Sections[i].Items, it)
		}
	}
	if err := irows.Err(); err != nil {
		return nil, err
	}
	return &r, nil
}

func (s *Store) ListItems(ctx context.Context, scope store.ItemScope) ([]models.ItemRecord, error) {
	q, args := listItemsSQL+listItemsOrderSQL, []any(nil)
	if scope.Restaurant != "" {
		q, args = listItemsSQL+` WHERE r.name = $1`+listItemsOrderSQL, []any{scope.Restaurant}
	}
	rs, err := s.db.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rs.Close()

	var list []models.ItemRecord
	for rs.Next() {
		var it models.ItemRecord
		if err := rs.Scan(&it.ID, &it.SectionID, &it.Name, &it.Description, &it.Price, &it.Section, &it.Restaurant); err != nil {
			return nil, err
		}
		list = append(list, it)
	}
	return list, rs.Err()
}

// Ping checks that the database answers queries.
func (s *Store) Ping(ctx context.Context) error {
	var one int
	return s.db.QueryRow(ctx, `SELECT 1`).Scan(&one)
}

func (s *Store) Close() error {
	s.db.Close()
	return nil
}
