package services

import (
	"context"
	"strconv"

	"menu-explainer/models"
)

// GetRestaurantStats summarises the named restaurant's menu.
func (s *Service) GetRestaurantStats(ctx context.Context, restaurant string) (*models.RestaurantStats, error) {
	r, err := s.restaurant(ctx, restaurant)
	if err != nil {
		return nil, err
	}
	st := ComputeStats(r)
	return &st, nil
}

// ComputeStats counts sections and items and aggregates the present prices.
// Average, min and max stay nil when no item has a price.
func ComputeStats(r *models.Restaurant) models.RestaurantStats {
	st := models.RestaurantStats{
		Restaurant:    r.Name,
		TotalSections: len(r.Sections),
	}

	var sum, lo, hi float64
	for _, sec := range r.Sections {
		st.TotalItems += len(sec.Items)
		for _, it := range sec.Items {
			if it.Price == nil {
				continue
			}
			p := *it.Price
			if st.ItemsWithPrice == 0 || p < lo {
				lo = p
			}
			if st.ItemsWithPrice == 0 || p > hi {
				hi = p
			}
			sum += p
			st.ItemsWithPrice++
		}
	}
	st.ItemsWithoutPrice = st.TotalItems - st.ItemsWithPrice

	if st.ItemsWithPrice > 0 {
		avg := round2(sum / float64(st.ItemsWithPrice))
		st.AveragePrice = &avg
		st.MinPrice = &lo
		st.MaxPrice = &hi
	}
	return st
}

// round2 rounds the exact binary value to cents, ties to even.
func round2(v float64) float64 {
	r, _ := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 2, 64), 64)
	return r
}
