package wikipedia

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bornholm/founderfinder/pkg/scraper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientSearch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/w/api.php", r.URL.Path)

		query := r.URL.Query()
		assert.Len(t, query, 5)
		assert.Equal(t, "query", query.Get("action"))
		assert.Equal(t, "json", query.Get("format"))
		assert.Equal(t, "search", query.Get("list"))
		assert.Equal(t, "Acme Corp", query.Get("srsearch"))
		assert.Equal(t, "1", query.Get("utf8"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"batchcomplete": "",
			"query": {
				"searchinfo": {"totalhits": 2},
				"search": [
					{"ns": 0, "title": "Acme Corporation", "snippet": "The <span class=\"searchmatch\">Acme</span> Corporation is a fictional company"},
					{"ns": 0, "title": "AC/DC (band)", "snippet": ""}
				]
			}
		}`))
	}))
	defer server.Close()

	client := NewClient(
		scraper.NewHTTPScraper(server.Client()),
		WithAPIURL(server.URL+"/w/api.php"),
		WithWikiURL("https://en.wikipedia.org/wiki/"),
	)

	results, err := client.Search(context.Background(), "Acme Corp")
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Equal(t, "Acme Corporation", results[0].Title)
	assert.Equal(t, "https://en.wikipedia.org/wiki/Acme%20Corporation", results[0].URL)
	assert.Equal(t, "The Acme Corporation is a fictional company", results[0].Description)

	assert.Equal(t, "https://en.wikipedia.org/wiki/AC/DC%20%28band%29", results[1].URL)
}

func TestClientSearchNoResults(t *testing.T) {
	for name, body := range map[string]string{
		"empty search": `{"query": {"searchinfo": {"totalhits": 0}, "search": []}}`,
		"no query":     `{"batchcomplete": ""}`,
	} {
		t.Run(name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(body))
			}))
			defer server.Close()

			client := NewClient(scraper.NewHTTPScraper(server.Client()), WithAPIURL(server.URL))

			results, err := client.Search(context.Background(), "Nothing")
			require.NoError(t, err)
			assert.Empty(t, results)
		})
	}
}

func TestClientSearchStatusError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := NewClient(scraper.NewHTTPScraper(server.Client()), WithAPIURL(server.URL))

	_, err := client.Search(context.Background(), "Acme Corp")
	require.Error(t, err)
	assert.True(t, scraper.IsStatusError(err))
}

func TestClientSearchInvalidJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>maintenance</html>`))
	}))
	defer server.Close()

	client := NewClient(scraper.NewHTTPScraper(server.Client()), WithAPIURL(server.URL))

	_, err := client.Search(context.Background(), "Acme Corp")
	require.Error(t, err)
	assert.False(t, scraper.IsStatusError(err))
}
