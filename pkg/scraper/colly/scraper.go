package colly

import (
	"bytes"
	"context"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/bornholm/founderfinder/pkg/scraper"
	"github.com/gocolly/colly"
	"github.com/pkg/errors"
)

// Scraper fetches documents with a gocolly collector.
type Scraper struct {
	userAgent string
	transport http.RoundTripper
}

// Check implements scraper.Scraper.
func (s *Scraper) Check(ctx context.Context, url string) (bool, error) {
	res, err := s.visit(ctx, url)
	if err != nil {
		return false, errors.WithStack(err)
	}

	return scraper.IsSuccess(res.StatusCode), nil
}

// Get implements scraper.Scraper.
func (s *Scraper) Get(ctx context.Context, url string) (io.ReadCloser, error) {
	res, err := s.visit(ctx, url)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if !scraper.IsOK(res.StatusCode) {
		return nil, errors.WithStack(&scraper.StatusError{
			URL:        url,
			StatusCode: res.StatusCode,
			Body:       res.Body,
		})
	}

	return io.NopCloser(bytes.NewReader(res.Body)), nil
}

func (s *Scraper) visit(ctx context.Context, url string) (*colly.Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.WithStack(err)
	}

	collector := colly.NewCollector(
		colly.UserAgent(s.userAgent),
	)

	collector.AllowURLRevisit = true
	collector.MaxBodySize = 0

	collector.WithTransport(s.transport)

	var response *colly.Response

	collector.OnRequest(func(r *colly.Request) {
		if ctx.Err() != nil {
			r.Abort()
		}
	})

	collector.OnResponse(func(r *colly.Response) {
		response = r
	})

	collector.OnError(func(r *colly.Response, err error) {
		if r != nil && r.StatusCode != 0 {
			response = r
		}
	})

	err := collector.Visit(url)

	// HTTP error statuses are reported as errors by colly, keep the response
	// so that the caller can inspect the status
	if response != nil {
		return response, nil
	}

	if err != nil {
		return nil, errors.WithStack(err)
	}

	if err := ctx.Err(); err != nil {
		return nil, errors.WithStack(err)
	}

	return nil, errors.Errorf("no response received for '%s'", url)
}

type OptionFunc func(s *Scraper)

func WithUserAgent(userAgent string) OptionFunc {
	return func(s *Scraper) {
		s.userAgent = userAgent
	}
}

func WithTransport(transport http.RoundTripper) OptionFunc {
	return func(s *Scraper) {
		s.transport = transport
	}
}

func NewScraper(funcs ...OptionFunc) *Scraper {
	s := &Scraper{
		userAgent: scraper.DefaultUserAgent,
		transport: &http.Transport{
			Proxy: http.ProxyFromEnvironment,
			DialContext: (&net.Dialer{
				Timeout:   30 * time.Second,
				KeepAlive: 30 * time.Second,
			}).DialContext,
			MaxIdleConns:          100,
			IdleConnTimeout:       90 * time.Second,
			TLSHandshakeTimeout:   10 * time.Second,
			ExpectContinueTimeout: 1 * time.Second,
		},
	}

	for _, fn := range funcs {
		fn(s)
	}

	return s
}

var _ scraper.Scraper = &Scraper{}
