package tmdb

import (
	"errors"
	"fmt"
)

// Common errors
var (
	// ErrInvalidConfig indicates invalid client configuration
	ErrInvalidConfig = errors.New("invalid tmdb configuration")
	// ErrUnexpectedStatus indicates the upstream answered with a non-2xx status
	ErrUnexpectedStatus = errors.New("unexpected status from tmdb")
)

// TransportError is the single error type returned by the upstream client.
// It covers request construction, network, status and decode failures.
type TransportError struct {
	Op         string
	Path       string
	StatusCode int
	Err        error
}

// Error implements the error interface
func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("tmdb %s %s: status %d: %v", e.Op, e.Path, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("tmdb %s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap returns the underlying cause
func (e *TransportError) Unwrap() error {
	return e.Err
}

// IsNotFound checks if the upstream reported a missing resource
func (e *TransportError) IsNotFound() bool {
	return e.StatusCode == 404
}

// IsUnauthorized checks if the upstream rejected the API key
func (e *TransportError) IsUnauthorized() bool {
	return e.StatusCode == 401 || e.StatusCode == 403
}
