package letta

import (
	"errors"
	"fmt"
	"net/http"
)

// APIError is a non-2xx response decoded from the server's error body.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("letta: server returned %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("letta: server returned %d", e.StatusCode)
}

// IsNotFound reports whether err is an APIError with a 404 status.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

// retryable reports whether a request that produced this status is worth
// retrying. Rate limits and server-side failures are transient; everything
// else is the caller's problem.
func retryable(status int) bool {
	return status == http.StatusTooManyRequests || status >= 500
}
