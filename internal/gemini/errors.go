package gemini

import (
	"errors"
	"fmt"
)

// ErrMissingAPIKey is returned by New when the API key is empty.
var ErrMissingAPIKey = errors.New("gemini API key is not set")

// APIError is a non-2xx response from the API.
type APIError struct {
	// StatusCode is the HTTP status code.
	StatusCode int

	// Status is the API status string, such as "INVALID_ARGUMENT".
	Status string

	// Message is the error message from the response body.
	Message string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Status != "" {
		return fmt.Sprintf("gemini API error %d (%s): %s", e.StatusCode, e.Status, e.Message)
	}
	return fmt.Sprintf("gemini API error %d: %s", e.StatusCode, e.Message)
}
