package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrUnavailable marks transport-level failures: the request never got a
	// response (connection refused, timeout, DNS).
	ErrUnavailable = errors.New("server unavailable")

	// ErrUnauthorized marks 401/403 responses after any token refresh attempt.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrNotFound marks 404 responses.
	ErrNotFound = errors.New("not found")
)

// APIError is a non-success response from the backend.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error: %d %s", e.StatusCode, e.Message)
}

// Is lets callers match coarse conditions with errors.Is without inspecting
// status codes.
func (e *APIError) Is(target error) bool {
	switch target {
	case ErrUnauthorized:
		return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
	case ErrNotFound:
		return e.StatusCode == http.StatusNotFound
	}
	return false
}

// newAPIError builds an APIError from a response body, preferring the
// backend's {"message": ...} field over the generic status text.
func newAPIError(statusCode int, body []byte) *APIError {
	msg := http.StatusText(statusCode)

	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Message != "" {
		msg = payload.Message
	}

	return &APIError{StatusCode: statusCode, Message: msg}
}
