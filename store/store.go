// Package store defines the data access contract used by the menu query
// engine and the importer. Adapters live in the memory and sqlstore
// subpackages.
package store

import (
	"context"
	"errors"

	"menu-explainer/models"
)

// ErrNotFound is returned when a restaurant name has no match.
var ErrNotFound = errors.New("store: not found")

// ItemScope narrows ListItems. The zero value selects every restaurant.
type ItemScope struct {
	// Restaurant restricts items to the restaurant with exactly this name.
	Restaurant string
}

// Reader is the read side consumed by the query engine.
type Reader interface {
	// ListRestaurants returns all restaurants in insertion order without
	// their sections.
	ListRestaurants(ctx context.Context) ([]models.Restaurant, error)
	// GetRestaurant returns the full tree of the named restaurant, or
	// ErrNotFound.
	GetRestaurant(ctx context.Context, name string) (*models.Restaurant, error)
	// ListItems returns flattened items ordered by restaurant, section and
	// item insertion order.
	ListItems(ctx context.Context, scope ItemScope) ([]models.ItemRecord, error)
}

// Writer is the load side used by the offline importer.
type Writer interface {
	// Reset drops every restaurant and recreates an empty schema.
	Reset(ctx context.Context) error
	// ImportRestaurant stores one restaurant tree atomically and returns the
	// id assigned to it. IDs in the argument are ignored.
	ImportRestaurant(ctx context.Context, r models.Restaurant) (int64, error)
	// DeleteRestaurant removes the named restaurant with its sections and
	// items. Deleting an unknown name returns ErrNotFound.
	DeleteRestaurant(ctx context.Context, name string) error
}

// Store is implemented by every adapter.
type Store interface {
	Reader
	Writer
	Close() error
}
