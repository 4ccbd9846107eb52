package services

import (
	"cmp"
	"slices"
	"strings"

	"golang.org/x/text/cases"

	"menu-explainer/models"
)

// SortBy selects the item attribute used for ordering.
type SortBy string

const (
	SortNone    SortBy = ""
	SortByName  SortBy = "name"
	SortByPrice SortBy = "price"
)

// Order is the sort direction.
type Order string

const (
	OrderAsc  Order = "asc"
	OrderDesc Order = "desc"
)

// ParseSortBy accepts "", "name" or "price".
func ParseSortBy(s string) (SortBy, error) {
	switch SortBy(s) {
	case SortNone, SortByName, SortByPrice:
		return SortBy(s), nil
	}
	return SortNone, invalidParam("sort_by", "sort_by must be one of: name, price", s)
}

// ParseOrder accepts "asc" or "desc"; empty means ascending.
func ParseOrder(s string) (Order, error) {
	switch Order(s) {
	case "":
		return OrderAsc, nil
	case OrderAsc, OrderDesc:
		return Order(s), nil
	}
	return OrderAsc, invalidParam("order", "order must be one of: asc, desc", s)
}

// SortItems orders items by the given key and direction.
//
// With SortNone the input is returned as is. Name ordering folds case and is
// stable in both directions. Price ordering sorts priced items and appends the
// unpriced ones in their original relative order; unpriced items stay last
// for descending order too. The input slice is never modified.
func SortItems(items []models.ItemRecord, by SortBy, order Order) []models.ItemRecord {
	switch by {
	case SortByName:
		return sortByName(items, order)
	case SortByPrice:
		return sortByPrice(items, order)
	default:
		return items
	}
}

func direction(order Order, c int) int {
	if order == OrderDesc {
		return -c
	}
	return c
}

func sortByName(items []models.ItemRecord, order Order) []models.ItemRecord {
	type keyed struct {
		key string
		rec models.ItemRecord
	}
	fold := cases.Fold()
	ks := make([]keyed, len(items))
	for i, it := range items {
		ks[i] = keyed{key: fold.String(it.Name), rec: it}
	}
	slices.SortStableFunc(ks, func(a, b keyed) int {
		return direction(order, strings.Compare(a.key, b.key))
	})

	out := make([]models.ItemRecord, len(ks))
	for i, k := range ks {
		out[i] = k.rec
	}
	return out
}

func sortByPrice(items []models.ItemRecord, order Order) []models.ItemRecord {
	priced := make([]models.ItemRecord, 0, len(items))
	var unpriced []models.ItemRecord
	for _, it := range items {
		if it.HasPrice() {
			priced = append(priced, it)
		} else {
			unpriced = append(unpriced, it)
		}
	}
	slices.SortStableFunc(priced, func(a, b models.ItemRecord) int {
		return direction(order, cmp.Compare(*a.Price, *b.Price))
	})
	return append(priced, unpriced...)
}
