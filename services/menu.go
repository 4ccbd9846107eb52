package services

import (
	"context"
	"errors"

	"menu-explainer/models"
	"menu-explainer/store"
)

const (
	DefaultLimit = 100
	MaxLimit     = 500
)

// Service answers menu queries over a store snapshot. It keeps no state
// between calls and is safe for concurrent use as long as the store is.
type Service struct {
	store        store.Reader
	defaultLimit int
	maxLimit     int
}

// Option configures a Service.
type Option func(*Service)

// WithLimits overrides the default and maximum result counts.
func WithLimits(defaultLimit, maxLimit int) Option {
	return func(s *Service) {
		if defaultLimit > 0 {
			s.defaultLimit = defaultLimit
		}
		if maxLimit > 0 {
			s.maxLimit = maxLimit
		}
	}
}

func New(r store.Reader, opts ...Option) *Service {
	s := &Service{
		store:        r,
		defaultLimit: DefaultLimit,
		maxLimit:     MaxLimit,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.defaultLimit > s.maxLimit {
		s.defaultLimit = s.maxLimit
	}
	return s
}

// Limits returns the default and maximum result counts of the search
// operations.
func (s *Service) Limits() (defaultLimit, maxLimit int) {
	return s.defaultLimit, s.maxLimit
}

// ItemFilter holds the restaurant-scoped filter and sort parameters.
type ItemFilter struct {
	PriceGT *float64
	PriceLT *float64
	SortBy  SortBy
	Order   Order
}

func (s *Service) restaurant(ctx context.Context, name string) (*models.Restaurant, error) {
	r, err := s.store.GetRestaurant(ctx, name)
	if errors.Is(err, store.ErrNotFound) {
		return nil, restaurantNotFound(name)
	}
	if err != nil {
		return nil, internal("failed to load restaurant", err)
	}
	return r, nil
}

// ListRestaurants returns every restaurant name in insertion order.
func (s *Service) ListRestaurants(ctx context.Context) ([]string, error) {
	rs, err := s.store.ListRestaurants(ctx)
	if err != nil {
		return nil, internal("failed to list restaurants", err)
	}
	names := make([]string, 0, len(rs))
	for _, r := range rs {
		names = append(names, r.Name)
	}
	return names, nil
}

// GetMenu returns the restaurant's sections with their items.
func (s *Service) GetMenu(ctx context.Context, restaurant string) (models.Menu, error) {
	r, err := s.restaurant(ctx, restaurant)
	if err != nil {
		return models.Menu{}, err
	}
	var m models.Menu
	for _, sec := range r.Sections {
		m.Set(sec.Name, nonNilItems(sec.Items))
	}
	return m, nil
}

// ListSections returns the restaurant's section names in insertion order.
func (s *Service) ListSections(ctx context.Context, restaurant string) ([]string, error) {
	r, err := s.restaurant(ctx, restaurant)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(r.Sections))
	for _, sec := range r.Sections {
		names = append(names, sec.Name)
	}
	return names, nil
}

// GetSectionItems returns the items of one section. A missing restaurant and
// a missing section produce different errors.
func (s *Service) GetSectionItems(ctx context.Context, restaurant, section string) ([]models.MenuItem, error) {
	r, err := s.restaurant(ctx, restaurant)
	if err != nil {
		return nil, err
	}
	sec, ok := r.SectionByName(section)
	if !ok {
		return nil, sectionNotFound(restaurant, section)
	}
	return nonNilItems(sec.Items), nil
}

// GetRestaurantItems flattens every item of the restaurant, applies the price
// filters and sorts the result.
func (s *Service) GetRestaurantItems(ctx context.Context, restaurant string, f ItemFilter) ([]models.ItemRecord, error) {
	r, err := s.restaurant(ctx, restaurant)
	if err != nil {
		return nil, err
	}
	items := Filter(r.Items(), pricePredicates(f.PriceGT, f.PriceLT)...)
	return SortItems(items, f.SortBy, f.Order), nil
}

func nonNilItems(items []models.MenuItem) []models.MenuItem {
	if items == nil {
		return []models.MenuItem{}
	}
	return items
}
