package feeds

import (
	"errors"
	"fmt"
)

// ErrAdapterUnavailable signals a decorator was wired without an inner adapter.
var ErrAdapterUnavailable = errors.New("feed adapter unavailable")

// StatusError captures a non-success HTTP response from an upstream feed.
type StatusError struct {
	Source     string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("%s: unexpected status %d: %s", e.Source, e.StatusCode, e.Body)
	}
	return fmt.Sprintf("%s: unexpected status %d", e.Source, e.StatusCode)
}

// AsStatusError attempts to unwrap an error into a StatusError.
func AsStatusError(err error) (*StatusError, bool) {
	var sErr *StatusError
	if errors.As(err, &sErr) {
		return sErr, true
	}
	return nil, false
}
