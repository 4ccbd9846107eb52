package services

import (
	"strings"

	"golang.org/x/text/cases"

	"menu-explainer/models"
)

// Predicate decides whether an item stays in a result set.
type Predicate func(models.ItemRecord) bool

// PriceAbove keeps items whose price is present and strictly greater than x.
func PriceAbove(x float64) Predicate {
	return func(it models.ItemRecord) bool {
		return it.Price != nil && *it.Price > x
	}
}

// PriceBelow keeps items whose price is present and strictly less than x.
func PriceBelow(x float64) Predicate {
	return func(it models.ItemRecord) bool {
		return it.Price != nil && *it.Price < x
	}
}

// PriceBetween keeps items whose price is present and within [lo, hi].
func PriceBetween(lo, hi float64) Predicate {
	return func(it models.ItemRecord) bool {
		return it.Price != nil && *it.Price >= lo && *it.Price <= hi
	}
}

// TextMatches keeps items whose name or description contains q, ignoring case.
func TextMatches(q string) Predicate {
	fold := cases.Fold()
	needle := fold.String(q)
	return func(it models.ItemRecord) bool {
		if strings.Contains(fold.String(it.Name), needle) {
			return true
		}
		return it.Description != nil && strings.Contains(fold.String(*it.Description), needle)
	}
}

// NameContains keeps items whose name contains q, ignoring case.
func NameContains(q string) Predicate {
	fold := cases.Fold()
	needle := fold.String(q)
	return func(it models.ItemRecord) bool {
		return strings.Contains(fold.String(it.Name), needle)
	}
}

// InRestaurant keeps items of the restaurant with exactly this name.
func InRestaurant(name string) Predicate {
	return func(it models.ItemRecord) bool {
		return it.Restaurant == name
	}
}

// Filter returns the items accepted by every predicate, in input order.
func Filter(items []models.ItemRecord, preds ...Predicate) []models.ItemRecord {
	out := make([]models.ItemRecord, 0, len(items))
next:
	for _, it := range items {
		for _, p := range preds {
			if !p(it) {
				continue next
			}
		}
		out = append(out, it)
	}
	return out
}

// Truncate returns at most limit leading items. A non-positive limit keeps all.
func Truncate(items []models.ItemRecord, limit int) []models.ItemRecord {
	if limit <= 0 || len(items) <= limit {
		return items
	}
	return items[:limit]
}

// pricePredicates builds the strict price filters; nil bounds add nothing.
func pricePredicates(gt, lt *float64) []Predicate {
	var preds []Predicate
	if gt != nil {
		preds = append(preds, PriceAbove(*gt))
	}
	if lt != nil {
		preds = append(preds, PriceBelow(*lt))
	}
	return preds
}
