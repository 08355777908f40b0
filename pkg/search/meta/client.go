package meta

import (
	"context"
	"log/slog"
	"sync"

	se "github.com/bornholm/founderfinder/pkg/search"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
)

// Client queries several search engines at once and merges their results.
//
// Results are merged in the order the engines were given, so the first hit
// of the first answering engine stays first. An error is returned only when
// every engine failed.
type Client struct {
	clients []se.Client
}

// Search implements search.Client.
func (s *Client) Search(ctx context.Context, search string) ([]se.Result, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	perEngine := make([][]se.Result, len(s.clients))
	perEngineErr := make([]error, len(s.clients))

	var wg sync.WaitGroup

	wg.Add(len(s.clients))

	for i, e := range s.clients {
		go func(i int, engine se.Client) {
			defer wg.Done()

			perEngine[i], perEngineErr[i] = engine.Search(ctx, search)
		}(i, e)
	}

	wg.Wait()

	var aggregatedErr error
	succeeded := 0

	mergedResults := make([]se.Result, 0)
	resultSet := make(map[string]struct{})

	for i, results := range perEngine {
		if err := perEngineErr[i]; err != nil {
			slog.DebugContext(ctx, "search engine failed", slog.Int("engine", i), slog.Any("error", err))
			aggregatedErr = multierror.Append(aggregatedErr, errors.WithStack(err))
			continue
		}

		succeeded++

		for _, r := range results {
			if _, exists := resultSet[r.URL]; exists {
				continue
			}

			mergedResults = append(mergedResults, r)
			resultSet[r.URL] = struct{}{}
		}
	}

	if succeeded == 0 && aggregatedErr != nil {
		return nil, aggregatedErr
	}

	return mergedResults, nil
}

func NewClient(clients ...se.Client) *Client {
	return &Client{
		clients: clients,
	}
}

var _ se.Client = &Client{}
