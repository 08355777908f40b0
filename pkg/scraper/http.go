package scraper

import (
	"context"
	"io"
	"net/http"

	"github.com/pkg/errors"
)

const maxErrorBodySize = 4e+6 // 4MB

type HTTPScraper struct {
	client    *http.Client
	userAgent string
}

// Check implements scraper.Scraper.
func (s *HTTPScraper) Check(ctx context.Context, url string) (bool, error) {
	res, err := s.do(ctx, url)
	if err != nil {
		return false, errors.WithStack(err)
	}

	defer res.Body.Close()

	return IsSuccess(res.StatusCode), nil
}

// Get implements scraper.Scraper.
func (s *HTTPScraper) Get(ctx context.Context, url string) (io.ReadCloser, error) {
	res, err := s.do(ctx, url)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if !IsOK(res.StatusCode) {
		defer res.Body.Close()

		body, err := io.ReadAll(io.LimitReader(res.Body, maxErrorBodySize))
		if err != nil {
			return nil, errors.WithStack(err)
		}

		return nil, errors.WithStack(&StatusError{
			URL:        url,
			StatusCode: res.StatusCode,
			Body:       body,
		})
	}

	return res.Body, nil
}

func (s *HTTPScraper) do(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if s.userAgent != "" {
		req.Header.Set("User-Agent", s.userAgent)
	}

	res, err := s.client.Do(req)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return res, nil
}

type HTTPScraperOptionFunc func(s *HTTPScraper)

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(userAgent string) HTTPScraperOptionFunc {
	return func(s *HTTPScraper) {
		s.userAgent = userAgent
	}
}

func NewHTTPScraper(client *http.Client, funcs ...HTTPScraperOptionFunc) *HTTPScraper {
	s := &HTTPScraper{
		client:    client,
		userAgent: DefaultUserAgent,
	}

	for _, fn := range funcs {
		fn(s)
	}

	return s
}

var _ Scraper = &HTTPScraper{}
