package services

import (
	"context"
	"strconv"

	"menu-explainer/models"
	"menu-explainer/store"
)

// ItemQuery holds the cross-restaurant search parameters. A zero Limit means
// the default limit.
type ItemQuery struct {
	ItemFilter
	Text       string
	Restaurant string
	Limit      int
}

// Predicates returns the filters selected by the query.
func (q ItemQuery) Predicates() []Predicate {
	var preds []Predicate
	if q.Text != "" {
		preds = append(preds, TextMatches(q.Text))
	}
	preds = append(preds, pricePredicates(q.PriceGT, q.PriceLT)...)
	if q.Restaurant != "" {
		preds = append(preds, InRestaurant(q.Restaurant))
	}
	return preds
}

func (s *Service) limit(n int) (int, error) {
	switch {
	case n == 0:
		return s.defaultLimit, nil
	case n < 1 || n > s.maxLimit:
		return 0, invalidParam("limit", "limit must be between 1 and "+strconv.Itoa(s.maxLimit), n)
	}
	return n, nil
}

// SearchItems scans items of every restaurant. An unknown restaurant filter
// yields an empty result. The full match set is sorted before truncation.
func (s *Service) SearchItems(ctx context.Context, q ItemQuery) ([]models.ItemRecord, error) {
	limit, err := s.limit(q.Limit)
	if err != nil {
		return nil, err
	}
	candidates, err := s.store.ListItems(ctx, store.ItemScope{Restaurant: q.Restaurant})
	if err != nil {
		return nil, internal("failed to search items", err)
	}
	items := Filter(candidates, q.Predicates()...)
	items = SortItems(items, q.SortBy, q.Order)
	return Truncate(items, limit), nil
}

// SearchByPriceRange returns items priced within [minPrice, maxPrice],
// cheapest first. Unpriced items never match.
func (s *Service) SearchByPriceRange(ctx context.Context, minPrice, maxPrice float64, limit int) ([]models.ItemRecord, error) {
	if minPrice < 0 {
		return nil, invalidParam("min_price", "min_price must be greater than or equal to 0", minPrice)
	}
	if maxPrice < 0 {
		return nil, invalidParam("max_price", "max_price must be greater than or equal to 0", maxPrice)
	}
	if minPrice > maxPrice {
		return nil, invalidParam("min_price", "min_price must be less than or equal to max_price", minPrice)
	}
	n, err := s.limit(limit)
	if err != nil {
		return nil, err
	}
	candidates, err := s.store.ListItems(ctx, store.ItemScope{})
	if err != nil {
		return nil, internal("failed to search items by price", err)
	}
	items := Filter(candidates, PriceBetween(minPrice, maxPrice))
	items = SortItems(items, SortByPrice, OrderAsc)
	return Truncate(items, n), nil
}

// FindRestaurantsWithItem returns the distinct names of restaurants serving an
// item whose name contains itemName, ignoring case, in restaurant order.
func (s *Service) FindRestaurantsWithItem(ctx context.Context, itemName string) ([]string, error) {
	candidates, err := s.store.ListItems(ctx, store.ItemScope{})
	if err != nil {
		return nil, internal("failed to find restaurants", err)
	}
	seen := make(map[string]bool)
	names := []string{}
	for _, it := range Filter(candidates, NameContains(itemName)) {
		if seen[it.Restaurant] {
			continue
		}
		seen[it.Restaurant] = true
		names = append(names, it.Restaurant)
	}
	return names, nil
}
