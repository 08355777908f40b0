package founder

import (
	"context"
	"io"
	"strings"

	"github.com/bornholm/founderfinder/pkg/scraper"
	"github.com/bornholm/founderfinder/pkg/search"
	"github.com/pkg/errors"
)

type fakeSearch struct {
	results map[string][]search.Result
	err     error
	queries []string
}

func (s *fakeSearch) Search(ctx context.Context, query string) ([]search.Result, error) {
	s.queries = append(s.queries, query)

	if s.err != nil {
		return nil, s.err
	}

	return s.results[query], nil
}

type fakeScraper struct {
	pages   map[string]string
	err     error
	fetched []string
}

func (s *fakeScraper) Get(ctx context.Context, url string) (io.ReadCloser, error) {
	s.fetched = append(s.fetched, url)

	if s.err != nil {
		return nil, s.err
	}

	page, exists := s.pages[url]
	if !exists {
		return nil, errors.WithStack(&scraper.StatusError{URL: url, StatusCode: 404})
	}

	return io.NopCloser(strings.NewReader(page)), nil
}

func (s *fakeScraper) Check(ctx context.Context, url string) (bool, error) {
	_, exists := s.pages[url]
	return exists, nil
}

type recordingLooker struct {
	companies []string
	results   map[string]string
	err       error
}

func (l *recordingLooker) Lookup(ctx context.Context, company string) (string, error) {
	l.companies = append(l.companies, company)

	if l.err != nil {
		return "", l.err
	}

	if result, exists := l.results[company]; exists {
		return result, nil
	}

	return "Founder of " + company, nil
}

var (
	_ search.Client   = &fakeSearch{}
	_ scraper.Scraper = &fakeScraper{}
	_ Looker          = &recordingLooker{}
)
