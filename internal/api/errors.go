package api

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinel errors for transport outcomes. HTTPError values match the
// relevant sentinels through errors.Is, so callers never switch on raw
// status codes.
var (
	ErrNetwork      = errors.New("network unreachable")
	ErrUnauthorized = errors.New("unauthorized")
	ErrNotFound     = errors.New("not found")
)

// HTTPError is a response the server produced with a failure status. The
// body is kept verbatim for the notification layer.
type HTTPError struct {
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("server returned %d", e.StatusCode)
	}
	return fmt.Sprintf("server returned %d: %s", e.StatusCode, e.Body)
}

func (e *HTTPError) Is(target error) bool {
	switch target {
	case ErrUnauthorized:
		return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
	case ErrNotFound:
		return e.StatusCode == http.StatusNotFound
	}
	return false
}
