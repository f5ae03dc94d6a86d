package catalog

import (
	"errors"
	"fmt"
)

// Common errors
var (
	// ErrInvalidPage indicates a page number below 1 was requested
	ErrInvalidPage = errors.New("page must be a positive integer")
	// ErrUnknownCategory indicates a category name could not be parsed
	ErrUnknownCategory = errors.New("unknown category")
)

// AggregateError is the single failure surfaced by the home fan-out.
// It names the first category that failed.
type AggregateError struct {
	Category Category
	Err      error
}

// Error implements the error interface
func (e *AggregateError) Error() string {
	return fmt.Sprintf("home: %s: %v", e.Category, e.Err)
}

// Unwrap returns the underlying failure
func (e *AggregateError) Unwrap() error {
	return e.Err
}
