package errors

import (
	"errors"
	"fmt"
)

// PostError represents a submission response that is neither "created"
// nor "already exists". It aborts the remaining submissions of the run
// and carries the response status and body for diagnosis.
type PostError struct {
	StatusCode int
	Body       string
}

func (e *PostError) Error() string {
	return fmt.Sprintf("post failed with status %d: %s", e.StatusCode, e.Body)
}

// NewPostError creates a PostError from a rejected submission response.
func NewPostError(statusCode int, body string) *PostError {
	return &PostError{StatusCode: statusCode, Body: body}
}

// IsPostError reports whether err is a PostError (even when wrapped).
func IsPostError(err error) bool {
	var postErr *PostError
	return errors.As(err, &postErr)
}
