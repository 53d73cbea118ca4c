// Package errors holds the typed errors that abort a scraping run.
package errors

import (
	"errors"
	"fmt"
)

// FetchError represents a transport failure while fetching a listing
// page: an unreachable host, a timeout, or a non-success HTTP status.
// Any FetchError is fatal to the whole run.
type FetchError struct {
	URL        string
	StatusCode int
	Message    string
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetch %s: unexpected status %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("fetch %s: %s", e.URL, e.Message)
}

// NewFetchError creates a FetchError for a transport-level failure.
func NewFetchError(url, message string) *FetchError {
	return &FetchError{URL: url, Message: message}
}

// NewFetchStatusError creates a FetchError for a non-success HTTP status.
func NewFetchStatusError(url string, statusCode int) *FetchError {
	return &FetchError{URL: url, StatusCode: statusCode}
}

// IsFetchError reports whether err is a FetchError (even when wrapped).
func IsFetchError(err error) bool {
	var fetchErr *FetchError
	return errors.As(err, &fetchErr)
}
