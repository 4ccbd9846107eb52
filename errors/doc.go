// Package errors provides the structured error type returned by the menu
// query engine. Callers switch on the Code and read the Context for the
// identifiers involved; mapping codes to transport status lives in the
// transport packages.
//
// Example usage:
//
//	err := errors.WrapWithContext(
//	    errors.ErrCodeNotFound,
//	    "Restaurant 'Luigi' not found",
//	    ErrRestaurantNotFound,
//	    map[string]any{
//	        "resource":        "restaurant",
//	        "restaurant_name": "Luigi",
//	    },
//	)
package errors
