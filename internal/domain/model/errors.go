package model

import (
	"errors"
	"fmt"
)

// ErrMissingData is returned when a response carries no usable payload.
var ErrMissingData = errors.New("no challenge data available")

// ErrChannelNotFound is returned when no visible channel matches the configured name.
var ErrChannelNotFound = errors.New("channel not found")

// FetchError reports a non-200 response from the remote API.
type FetchError struct {
	StatusCode int
	Body       string
}

func (e *FetchError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("could not fetch: status %d", e.StatusCode)
	}
	return fmt.Sprintf("could not fetch: status %d: %s", e.StatusCode, e.Body)
}
