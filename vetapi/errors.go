package vetapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// Error represents an API error response.
type Error struct {
	// StatusCode is the HTTP status code.
	StatusCode int `json:"-"`
	// Message is a human-readable error message, preferring text the
	// server provided over a synthesized status line.
	Message string `json:"message"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// IsNotFound returns true if the error is a not found error.
func (e *Error) IsNotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// IsUnauthorized returns true if the error is an authorization error.
func (e *Error) IsUnauthorized() bool {
	return e.StatusCode == http.StatusUnauthorized
}

// IsValidationError returns true if the server rejected the request body.
func (e *Error) IsValidationError() bool {
	return e.StatusCode == http.StatusBadRequest
}

var (
	// ErrSessionExpired is returned for any authorized call answered
	// with 401. By the time the caller sees it, the persisted session
	// has already been cleared.
	ErrSessionExpired = &Error{
		StatusCode: http.StatusUnauthorized,
		Message:    "Unauthorized. Please log in again.",
	}

	// ErrConnectivity wraps transport-level failures (DNS, refused
	// connections) that never produced an HTTP response.
	ErrConnectivity = errors.New("connection failed, check your network")
)

// parseError parses a non-2xx response body into an *Error.
//
// The backend reports errors as JSON with an optional "message" or
// "error" string field. Anything else falls back to a status line.
func parseError(statusCode int, body []byte) *Error {
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}

	message := ""
	if err := json.Unmarshal(body, &payload); err == nil {
		switch {
		case payload.Message != "":
			message = payload.Message
		case payload.Error != "":
			message = payload.Error
		}
	}
	if message == "" {
		message = fmt.Sprintf("%d: %s", statusCode, http.StatusText(statusCode))
	}

	return &Error{
		StatusCode: statusCode,
		Message:    message,
	}
}

// IsAPIError checks if an error is an API error and returns it.
func IsAPIError(err error) (*Error, bool) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
