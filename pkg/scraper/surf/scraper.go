package surf

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/bornholm/founderfinder/pkg/scraper"
	"github.com/enetx/g"
	"github.com/enetx/surf"
	"github.com/pkg/errors"
)

// Scraper fetches documents with a client impersonating a desktop Chrome
// browser.
type Scraper struct {
	timeout   time.Duration
	retries   int
	retryWait time.Duration
}

// Check implements scraper.Scraper.
func (s *Scraper) Check(ctx context.Context, url string) (bool, error) {
	resp := s.getClient().Get(g.String(url)).WithContext(ctx).Do()
	if resp.IsErr() {
		return false, errors.WithStack(resp.Err())
	}

	return scraper.IsSuccess(int(resp.Ok().StatusCode)), nil
}

// Get implements scraper.Scraper.
func (s *Scraper) Get(ctx context.Context, url string) (io.ReadCloser, error) {
	resp := s.getClient().Get(g.String(url)).WithContext(ctx).Do()
	if resp.IsErr() {
		return nil, errors.WithStack(resp.Err())
	}

	res := resp.Ok()

	if statusCode := int(res.StatusCode); !scraper.IsOK(statusCode) {
		defer res.Body.Reader.Close()

		return nil, errors.WithStack(&scraper.StatusError{
			URL:        url,
			StatusCode: statusCode,
		})
	}

	return res.Body.Reader, nil
}

func (s *Scraper) getClient() *surf.Client {
	builder := surf.NewClient().
		Builder()

	if proxy := os.Getenv("HTTP_PROXY"); proxy != "" {
		builder = builder.Proxy(proxy)
	}

	builder = builder.Impersonate().RandomOS().Chrome().
		Timeout(s.timeout).
		Retry(s.retries, s.retryWait).
		Session()

	return builder.Build()
}

type OptionFunc func(s *Scraper)

func WithTimeout(timeout time.Duration) OptionFunc {
	return func(s *Scraper) {
		s.timeout = timeout
	}
}

// WithRetries enables the client's built-in retry of failed requests.
func WithRetries(retries int, wait time.Duration) OptionFunc {
	return func(s *Scraper) {
		s.retries = retries
		s.retryWait = wait
	}
}

func NewScraper(funcs ...OptionFunc) *Scraper {
	s := &Scraper{
		timeout:   30 * time.Second,
		retryWait: 5 * time.Second,
	}

	for _, fn := range funcs {
		fn(s)
	}

	return s
}

var _ scraper.Scraper = &Scraper{}
