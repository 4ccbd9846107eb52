package server

import (
	"log/slog"
	"maps"
	"net/http"
	"time"

	apperrors "menu-explainer/errors"

	"github.com/google/uuid"
)

// ErrorResponse is the body of every non-2xx API response.
type ErrorResponse struct {
	Code      apperrors.ErrorCode `json:"code" yaml:"code"`
	Message   string              `json:"message" yaml:"message"`
	Details   map[string]any      `json:"details,omitempty" yaml:"details,omitempty"`
	RequestID string              `json:"requestId" yaml:"requestId"`
	Timestamp time.Time           `json:"timestamp" yaml:"timestamp"`
	Retryable bool                `json:"retryable" yaml:"retryable"`
}

// WriteError writes an ErrorResponse with the given status.
func WriteError(w http.ResponseWriter, r *http.Request, statusCode int,
	code apperrors.ErrorCode, message string, retryable bool, details map[string]any) {

	requestID, _ := r.Context().Value(contextKeyRequestID).(string)
	if requestID == "" {
		requestID = uuid.New().String()
	}

	respond(w, r, statusCode, ErrorResponse{
		Code:      code,
		Message:   message,
		Details:   details,
		RequestID: requestID,
		Timestamp: time.Now().UTC(),
		Retryable: retryable,
	})
}

// statusFor maps an error code to its HTTP status.
func statusFor(code apperrors.ErrorCode) int {
	switch code {
	case apperrors.ErrCodeNotFound:
		return http.StatusNotFound
	case apperrors.ErrCodeInvalidRequest:
		return http.StatusBadRequest
	case apperrors.ErrCodeRateLimitExceeded:
		return http.StatusTooManyRequests
	case apperrors.ErrCodeMethodNotAllowed:
		return http.StatusMethodNotAllowed
	case apperrors.ErrCodeUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// writeServiceError translates an error returned by the query engine. Internal
// errors keep their cause in the log only.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	code := apperrors.CodeOf(err)
	queryErrors.WithLabelValues(string(code)).Inc()

	status := statusFor(code)
	se, ok := apperrors.As(err)
	if !ok || status >= http.StatusInternalServerError {
		slog.Error("request failed",
			"requestID", r.Context().Value(contextKeyRequestID),
			"path", r.URL.Path,
			"error", err,
		)
		WriteError(w, r, status, code, "Internal server error", true, nil)
		return
	}
	WriteError(w, r, status, se.Code, se.Message, false, maps.Clone(se.Context))
}
