package search

import "context"

// Client executes a text search and returns its hits, most relevant first.
type Client interface {
	Search(ctx context.Context, search string) ([]Result, error)
}

type Result struct {
	Title       string
	URL         string
	Description string
}
