package server

import (
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"

	apperrors "menu-explainer/errors"
	"menu-explainer/services"
)

func badParam(field, message, value string) error {
	return apperrors.NewWithContext(apperrors.ErrCodeInvalidRequest, message,
		map[string]any{"field": field, "value": value})
}

// floatParam returns nil when the parameter is absent or empty.
func floatParam(q url.Values, name string) (*float64, error) {
	raw := strings.TrimSpace(q.Get(name))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil, badParam(name, fmt.Sprintf("%s must be a finite number", name), raw)
	}
	return &v, nil
}

func requiredFloat(q url.Values, name string) (float64, error) {
	v, err := floatParam(q, name)
	if err != nil {
		return 0, err
	}
	if v == nil {
		return 0, badParam(name, fmt.Sprintf("%s is required", name), "")
	}
	return *v, nil
}

// limitParam returns 0 when absent so the engine applies its default.
func limitParam(q url.Values, maxLimit int) (int, error) {
	raw := strings.TrimSpace(q.Get("limit"))
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 || n > maxLimit {
		return 0, badParam("limit", fmt.Sprintf("limit must be an integer between 1 and %d", maxLimit), raw)
	}
	return n, nil
}

// itemFilterParams reads price_gt, price_lt, sort_by and order.
func itemFilterParams(q url.Values) (services.ItemFilter, error) {
	var f services.ItemFilter
	var err error
	if f.PriceGT, err = floatParam(q, "price_gt"); err != nil {
		return f, err
	}
	if f.PriceLT, err = floatParam(q, "price_lt"); err != nil {
		return f, err
	}
	if f.SortBy, err = services.ParseSortBy(q.Get("sort_by")); err != nil {
		return f, err
	}
	if f.Order, err = services.ParseOrder(q.Get("order")); err != nil {
		return f, err
	}
	return f, nil
}
