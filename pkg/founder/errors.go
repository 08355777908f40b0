package founder

import (
	"strings"

	"github.com/pkg/errors"
)

// Sentinel messages printed in place of founder names.
const (
	MessageSearchFailed = "Failed to retrieve search results"
	MessageNoResults    = "No search results found"
	MessageNotFound     = "Founder information not found"
	messagePageFailed   = "Failed to retrieve the page: "
)

var (
	ErrSearchFailed = errors.New("search request failed")
	ErrNoResults    = errors.New("no search results")
	ErrNotFound     = errors.New("founder information not found")
)

// PageError is returned when the page of the top search result could not be
// retrieved.
type PageError struct {
	URL   string
	Cause error
}

func (e *PageError) Error() string {
	return "could not retrieve page '" + e.URL + "'"
}

func (e *PageError) Unwrap() error {
	return e.Cause
}

// Describe returns the sentinel message standing for err. The boolean is
// false when err is not one of the lookup outcomes having a sentinel.
func Describe(err error) (string, bool) {
	var pageErr *PageError

	switch {
	case errors.Is(err, ErrSearchFailed):
		return MessageSearchFailed, true
	case errors.Is(err, ErrNoResults):
		return MessageNoResults, true
	case errors.Is(err, ErrNotFound):
		return MessageNotFound, true
	case errors.As(err, &pageErr):
		return messagePageFailed + pageErr.URL, true
	default:
		return "", false
	}
}

// IsSentinel reports whether the lookup result is a sentinel message rather
// than founder names.
func IsSentinel(result string) bool {
	switch result {
	case MessageSearchFailed, MessageNoResults, MessageNotFound:
		return true
	default:
		return strings.HasPrefix(result, messagePageFailed)
	}
}
