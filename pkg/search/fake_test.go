package search

import (
	"context"
	"sync"
)

type fakeClient struct {
	mu      sync.Mutex
	queries []string
	results [][]Result
	errs    []error
}

func (c *fakeClient) Search(ctx context.Context, search string) ([]Result, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	call := len(c.queries)
	c.queries = append(c.queries, search)

	var err error
	if call < len(c.errs) {
		err = c.errs[call]
	}

	if err != nil {
		return nil, err
	}

	if call < len(c.results) {
		return c.results[call], nil
	}

	if len(c.results) > 0 {
		return c.results[len(c.results)-1], nil
	}

	return nil, nil
}

var _ Client = &fakeClient{}
