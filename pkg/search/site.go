package search

import (
	"context"
	"log/slog"
	"net/url"
	"strings"

	"github.com/pkg/errors"
)

// Site restricts a general purpose web search engine to the pages of a
// single host.
type Site struct {
	client Client
	host   string
}

// Search implements Client.
func (s *Site) Search(ctx context.Context, search string) ([]Result, error) {
	query := strings.TrimSpace(search) + " site:" + s.host

	results, err := s.client.Search(ctx, query)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	filtered := make([]Result, 0, len(results))
	for _, r := range results {
		u, err := url.Parse(r.URL)
		if err != nil {
			slog.DebugContext(ctx, "ignoring result with invalid url", slog.String("url", r.URL), slog.Any("error", err))
			continue
		}

		if !strings.EqualFold(u.Hostname(), s.host) {
			continue
		}

		filtered = append(filtered, r)
	}

	return filtered, nil
}

var _ Client = &Site{}

func WithSite(client Client, host string) *Site {
	return &Site{client: client, host: host}
}
