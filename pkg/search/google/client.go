package google

import (
	"context"
	"log/slog"
	"strings"

	"github.com/bornholm/founderfinder/pkg/scraper"
	"github.com/bornholm/founderfinder/pkg/search"
	"github.com/pkg/errors"
	"google.golang.org/api/customsearch/v1"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

// Client implements the search.Client interface using Google Custom Search API.
type Client struct {
	apiKey   string
	cx       string
	num      int64
	endpoint string
}

// Search implements the search.Client interface.
func (c *Client) Search(ctx context.Context, query string) ([]search.Result, error) {
	opts := []option.ClientOption{option.WithAPIKey(c.apiKey)}
	if c.endpoint != "" {
		opts = append(opts, option.WithEndpoint(c.endpoint))
	}

	service, err := customsearch.NewService(ctx, opts...)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	slog.DebugContext(ctx, "executing search", slog.String("query", query))

	call := service.Cse.List()
	call.Q(query)
	call.Cx(c.cx)
	call.Num(c.num)

	searchResult, err := call.Context(ctx).Do()
	if err != nil {
		var apiErr *googleapi.Error
		if errors.As(err, &apiErr) {
			return nil, errors.WithStack(&scraper.StatusError{
				URL:        strings.TrimSuffix(service.BasePath, "/") + "/customsearch/v1",
				StatusCode: apiErr.Code,
				Body:       []byte(apiErr.Body),
			})
		}

		return nil, errors.WithStack(err)
	}

	results := make([]search.Result, 0, len(searchResult.Items))
	for _, item := range searchResult.Items {
		results = append(results, search.Result{
			Title:       item.Title,
			URL:         item.Link,
			Description: item.Snippet,
		})
	}

	return results, nil
}

type OptionFunc func(c *Client)

// WithEndpoint overrides the base URL of the Custom Search API.
func WithEndpoint(endpoint string) OptionFunc {
	return func(c *Client) {
		c.endpoint = endpoint
	}
}

// NewClient creates a new Google Custom Search API client returning at most
// num results per search.
func NewClient(apiKey, cx string, num int64, funcs ...OptionFunc) *Client {
	if num <= 0 {
		num = 10
	}

	c := &Client{
		apiKey: apiKey,
		cx:     cx,
		num:    num,
	}

	for _, fn := range funcs {
		fn(c)
	}

	return c
}

var _ search.Client = &Client{}
