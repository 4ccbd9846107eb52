// Package server exposes the menu query engine over HTTP.
//
// All API routes are read-only GET endpoints that pass through the same
// middleware chain:
//
//	metrics -> request id -> panic recovery -> rate limit -> logging -> method check
//
// /health, /ready and /metrics bypass rate limiting.
//
// Responses are JSON unless the client asks for YAML, either with an Accept
// header naming application/yaml or with ?format=yaml. Errors use
// ErrorResponse in the same format:
//
//	{
//	  "code": "NOT_FOUND",
//	  "message": "Section 'Desserts' not found in restaurant 'Taqueria'",
//	  "details": {"resource": "section", "restaurant_name": "Taqueria", "section_name": "Desserts"},
//	  "requestId": "4b0c...",
//	  "timestamp": "2025-01-19T10:00:00Z",
//	  "retryable": false
//	}
//
// Internal failures are logged with their cause and reported to the client as
// a generic 500.
package server
