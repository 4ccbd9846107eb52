package services

import (
	"errors"
	"fmt"

	apperrors "menu-explainer/errors"
)

var (
	// ErrRestaurantNotFound is the cause of every restaurant lookup miss.
	ErrRestaurantNotFound = errors.New("restaurant not found")
	// ErrSectionNotFound is the cause of a section lookup miss inside an
	// existing restaurant.
	ErrSectionNotFound = errors.New("section not found")
	// ErrInvalidParameter is the cause of every validation failure.
	ErrInvalidParameter = errors.New("invalid parameter")
)

// Resource names reported in the "resource" context key of not-found errors.
const (
	ResourceRestaurant = "restaurant"
	ResourceSection    = "section"
)

func restaurantNotFound(name string) error {
	return apperrors.WrapWithContext(apperrors.ErrCodeNotFound,
		fmt.Sprintf("Restaurant '%s' not found", name),
		ErrRestaurantNotFound,
		map[string]any{
			"resource":        ResourceRestaurant,
			"restaurant_name": name,
		})
}

func sectionNotFound(restaurant, section string) error {
	return apperrors.WrapWithContext(apperrors.ErrCodeNotFound,
		fmt.Sprintf("Section '%s' not found in restaurant '%s'", section, restaurant),
		ErrSectionNotFound,
		map[string]any{
			"resource":        ResourceSection,
			"restaurant_name": restaurant,
			"section_name":    section,
		})
}

func invalidParam(field, message string, value any) error {
	return apperrors.WrapWithContext(apperrors.ErrCodeInvalidRequest,
		message,
		ErrInvalidParameter,
		map[string]any{
			"field": field,
			"value": value,
		})
}

func internal(message string, err error) error {
	return apperrors.Wrap(apperrors.ErrCodeInternal, message, err)
}
