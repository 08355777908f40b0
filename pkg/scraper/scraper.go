package scraper

import (
	"context"
	"io"
)

// Scraper retrieves raw documents over the network.
//
// Implementations must return a *StatusError when the remote answered with a
// non-success status so that callers can tell it apart from transport failures.
type Scraper interface {
	Get(ctx context.Context, url string) (io.ReadCloser, error)
	Check(ctx context.Context, url string) (bool, error)
}
