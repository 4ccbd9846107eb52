package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestError(t *testing.T) {
	tests := []struct {
		name     string
		err      *StructuredError
		expected string
	}{
		{
			name:     "error without cause",
			err:      New(ErrCodeNotFound, "Restaurant 'Luigi' not found"),
			expected: "[NOT_FOUND] Restaurant 'Luigi' not found",
		},
		{
			name:     "error with cause",
			err:      Wrap(ErrCodeInternal, "failed to load restaurant", errors.New("connection reset")),
			expected: "[INTERNAL] failed to load restaurant: connection reset",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.err.Error()
			if got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestWrapWithContext(t *testing.T) {
	cause := errors.New("section not found")
	err := WrapWithContext(ErrCodeNotFound, "Section 'Desserts' not found", cause, map[string]any{
		"resource":     "section",
		"section_name": "Desserts",
	})

	if err.Code != ErrCodeNotFound {
		t.Errorf("expected code %s, got %s", ErrCodeNotFound, err.Code)
	}
	if !errors.Is(err, cause) {
		t.Error("expected cause to be wrapped")
	}
	if err.Context["section_name"] != "Desserts" {
		t.Errorf("expected section_name Desserts, got %v", err.Context["section_name"])
	}
}

func TestAsAndCodeOf(t *testing.T) {
	se := NewWithContext(ErrCodeInvalidRequest, "min_price must be less than or equal to max_price",
		map[string]any{"field": "min_price"})
	wrapped := fmt.Errorf("search: %w", se)

	got, ok := As(wrapped)
	if !ok {
		t.Fatal("expected StructuredError in chain")
	}
	if got != se {
		t.Error("expected the original StructuredError")
	}

	tests := []struct {
		name string
		err  error
		want ErrorCode
	}{
		{"nil", nil, ""},
		{"structured", se, ErrCodeInvalidRequest},
		{"wrapped structured", wrapped, ErrCodeInvalidRequest},
		{"plain", errors.New("boom"), ErrCodeInternal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CodeOf(tt.err); got != tt.want {
				t.Errorf("CodeOf() = %q, want %q", got, tt.want)
			}
		})
	}
}
