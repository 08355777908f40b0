package colly

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bornholm/founderfinder/pkg/scraper"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScraperGet(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "colly-test", r.Header.Get("User-Agent"))
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(`<table class="infobox"><tr><th>Founder</th><td>Ada</td></tr></table>`))
	}))
	defer server.Close()

	s := NewScraper(WithUserAgent("colly-test"))

	// Visiting twice must not be rejected as an already visited url
	for i := 0; i < 2; i++ {
		body, err := s.Get(context.Background(), server.URL)
		require.NoError(t, err)

		data, err := io.ReadAll(body)
		require.NoError(t, err)
		body.Close()

		assert.Contains(t, string(data), "<td>Ada</td>")
	}
}

func TestScraperStatusError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	s := NewScraper()

	_, err := s.Get(context.Background(), server.URL)
	require.Error(t, err)

	var statusErr *scraper.StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusNotFound, statusErr.StatusCode)

	ok, err := s.Check(context.Background(), server.URL)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestScraperCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewScraper().Get(ctx, "http://127.0.0.1:1")
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}
