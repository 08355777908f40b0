package scraper

import (
	"fmt"
	"net/http"

	"github.com/pkg/errors"
)

// StatusError is returned when a remote server answered with an unexpected
// HTTP status.
type StatusError struct {
	URL        string
	StatusCode int
	Body       []byte
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected response http status %d (%s) for '%s'", e.StatusCode, http.StatusText(e.StatusCode), e.URL)
}

// IsStatusError reports whether err wraps a *StatusError.
func IsStatusError(err error) bool {
	var statusErr *StatusError
	return errors.As(err, &statusErr)
}

// IsSuccess reports whether the given status code should be treated as a
// successful response.
func IsSuccess(statusCode int) bool {
	return statusCode >= http.StatusOK && statusCode < http.StatusBadRequest
}

// IsOK reports whether a fetched document can be used. Pages answered with
// any other status than 200, partial or empty contents included, are
// rejected.
func IsOK(statusCode int) bool {
	return statusCode == http.StatusOK
}
