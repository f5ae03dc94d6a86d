// Package apierror turns internal failures into the narrow error shape
// exposed to API callers.
package apierror

import (
	"errors"
	"net/http"
	"strconv"
)

// Default messages used by the query surface
const (
	MessageFetchFailed  = "Failed to fetch resources"
	MessageInvalidInput = "Invalid page"
)

// ClientError is the only error shape that crosses the API boundary.
// It carries no internal type information.
type ClientError struct {
	Code    int
	Message string
	Reason  string
}

// Error implements the error interface
func (e *ClientError) Error() string {
	return e.Message
}

// Status returns the code with its standard text, e.g. "500 Internal Server Error"
func (e *ClientError) Status() string {
	if text := http.StatusText(e.Code); text != "" {
		return strconv.Itoa(e.Code) + " " + text
	}
	return strconv.Itoa(e.Code)
}

// Extensions returns the error fields as GraphQL error extensions
func (e *ClientError) Extensions() map[string]any {
	ext := map[string]any{
		"code":    e.Code,
		"message": e.Status(),
	}
	if e.Reason != "" {
		ext["reason"] = e.Reason
	}
	return ext
}

// Translate wraps err into a ClientError with the given code and message.
// A zero code becomes 500 and an empty message becomes the status text, so
// neither is ever empty. An err that is already a ClientError is returned
// unchanged.
func Translate(err error, code int, message string) *ClientError {
	var cerr *ClientError
	if errors.As(err, &cerr) {
		return cerr
	}

	if code == 0 {
		code = http.StatusInternalServerError
	}
	if message == "" {
		message = http.StatusText(code)
	}
	if message == "" {
		message = MessageFetchFailed
	}

	out := &ClientError{
		Code:    code,
		Message: message,
	}
	if err != nil {
		out.Reason = err.Error()
	}
	return out
}

// Translator returns a function that translates errors with fixed defaults,
// handy for wrapping many call sites the same way.
func Translator(code int, message string) func(error) *ClientError {
	return func(err error) *ClientError {
		return Translate(err, code, message)
	}
}
