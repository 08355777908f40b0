package founder

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bornholm/founderfinder/pkg/infobox"
	"github.com/bornholm/founderfinder/pkg/scraper"
	"github.com/bornholm/founderfinder/pkg/search"
	"github.com/bornholm/founderfinder/pkg/search/wikipedia"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	acmeURL = "https://en.wikipedia.org/wiki/Acme%20Corporation"
	betaURL = "https://en.wikipedia.org/wiki/Beta%20Inc."
)

const acmePage = `<html><body>
<table class="infobox vcard">
	<tr><th>Type</th><td>Private</td></tr>
	<tr><th>Founder</th><td> Wile E. Coyote </td></tr>
	<tr><th>Co-Founder</th><td><a href="/wiki/Road_Runner">Road Runner</a></td></tr>
	<tr><th>Founded by</th><td>Nobody</td></tr>
</table>
</body></html>`

const betaPage = `<html><body>
<table class="infobox vcard">
	<tr><th>Founded</th><td>1999</td></tr>
	<tr><th>Key people</th><td>Jane Doe</td></tr>
	<tr><th>Key people</th><td>John Roe</td></tr>
</table>
</body></html>`

func newTestFinder(s search.Client, sc scraper.Scraper) *Finder {
	return NewFinder(WithSearchClient(s), WithScraper(sc))
}

func TestFinderLookup(t *testing.T) {
	s := &fakeSearch{
		results: map[string][]search.Result{
			"Acme": {{Title: "Acme Corporation", URL: acmeURL}, {Title: "Acme (disambiguation)", URL: "https://en.wikipedia.org/wiki/Other"}},
		},
	}
	sc := &fakeScraper{pages: map[string]string{acmeURL: acmePage}}

	finder := newTestFinder(s, sc)

	result, err := finder.Lookup(context.Background(), "Acme")
	require.NoError(t, err)

	assert.Equal(t, "Wile E. Coyote, Road Runner", result)
	assert.Equal(t, []string{"Acme"}, s.queries)
	assert.Equal(t, []string{acmeURL}, sc.fetched)

	founders, err := finder.Find(context.Background(), "Acme")
	require.NoError(t, err)
	assert.Equal(t, []string{"Wile E. Coyote", "Road Runner"}, founders)
}

func TestFinderLookupSentinels(t *testing.T) {
	statusErr := &scraper.StatusError{URL: wikipedia.DefaultAPIURL, StatusCode: http.StatusServiceUnavailable}

	testCases := []struct {
		Name     string
		Search   *fakeSearch
		Scraper  *fakeScraper
		Expected string
	}{
		{
			Name:     "search rejected",
			Search:   &fakeSearch{err: errors.WithStack(statusErr)},
			Scraper:  &fakeScraper{},
			Expected: "Failed to retrieve search results",
		},
		{
			Name:     "no results",
			Search:   &fakeSearch{},
			Scraper:  &fakeScraper{},
			Expected: "No search results found",
		},
		{
			Name:     "page unavailable",
			Search:   &fakeSearch{results: map[string][]search.Result{"Acme": {{Title: "Acme Corporation", URL: acmeURL}}}},
			Scraper:  &fakeScraper{},
			Expected: "Failed to retrieve the page: " + acmeURL,
		},
		{
			Name:     "no infobox",
			Search:   &fakeSearch{results: map[string][]search.Result{"Acme": {{Title: "Acme Corporation", URL: acmeURL}}}},
			Scraper:  &fakeScraper{pages: map[string]string{acmeURL: `<html><body><p>Acme is a company.</p></body></html>`}},
			Expected: "Founder information not found",
		},
		{
			Name:     "no founder row",
			Search:   &fakeSearch{results: map[string][]search.Result{"Acme": {{Title: "Beta Inc.", URL: betaURL}}}},
			Scraper:  &fakeScraper{pages: map[string]string{betaURL: betaPage}},
			Expected: "Founder information not found",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			finder := newTestFinder(tc.Search, tc.Scraper)

			result, err := finder.Lookup(context.Background(), "Acme")
			require.NoError(t, err)

			assert.Equal(t, tc.Expected, result)
			assert.True(t, IsSentinel(result))
		})
	}
}

func TestFinderTransportErrorsPropagate(t *testing.T) {
	t.Run("search", func(t *testing.T) {
		finder := newTestFinder(&fakeSearch{err: errors.New("connection refused")}, &fakeScraper{})

		_, err := finder.Lookup(context.Background(), "Acme")
		require.Error(t, err)

		_, isSentinel := Describe(err)
		assert.False(t, isSentinel)
	})

	t.Run("page", func(t *testing.T) {
		s := &fakeSearch{results: map[string][]search.Result{"Acme": {{Title: "Acme Corporation", URL: acmeURL}}}}
		finder := newTestFinder(s, &fakeScraper{err: errors.New("connection reset by peer")})

		_, err := finder.Lookup(context.Background(), "Acme")
		require.Error(t, err)
	})
}

func TestFinderLookupIdempotent(t *testing.T) {
	s := &fakeSearch{results: map[string][]search.Result{"Acme": {{Title: "Acme Corporation", URL: acmeURL}}}}
	sc := &fakeScraper{pages: map[string]string{acmeURL: acmePage}}

	finder := newTestFinder(s, sc)

	first, err := finder.Lookup(context.Background(), "Acme")
	require.NoError(t, err)

	second, err := finder.Lookup(context.Background(), "Acme")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestFinderOptions(t *testing.T) {
	s := &fakeSearch{results: map[string][]search.Result{"Beta": {{Title: "Beta Inc.", URL: betaURL}}}}
	sc := &fakeScraper{pages: map[string]string{betaURL: betaPage}}

	finder := NewFinder(WithSearchClient(s), WithScraper(sc), WithLabel("Key people"), WithSeparator(" / "))

	result, err := finder.Lookup(context.Background(), "Beta")
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe / John Roe", result)
}

func TestFinderTrace(t *testing.T) {
	s := &fakeSearch{results: map[string][]search.Result{"Acme": {{Title: "Acme Corporation", URL: acmeURL}}}}
	sc := &fakeScraper{pages: map[string]string{acmeURL: acmePage}}

	traced := map[string]any{}
	trace := func(ctx context.Context, step string, value any) {
		traced[step] = value
	}

	finder := NewFinder(WithSearchClient(s), WithScraper(sc), WithTrace(trace))

	_, err := finder.Lookup(context.Background(), "Acme")
	require.NoError(t, err)

	require.Contains(t, traced, "results")
	assert.Equal(t, []search.Result{{Title: "Acme Corporation", URL: acmeURL}}, traced["results"])

	require.Contains(t, traced, "fields")
	fields, ok := traced["fields"].(infobox.Fields)
	require.True(t, ok)
	assert.Equal(t, "Wile E. Coyote", fields.Map()["Founder"])
	assert.Len(t, fields, 4)
}

func TestFinderWikipedia(t *testing.T) {
	mux := http.NewServeMux()

	mux.HandleFunc("/w/api.php", func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("srsearch") {
		case "Acme Corp":
			_, _ = w.Write([]byte(`{"query": {"search": [{"title": "Acme Corporation"}]}}`))
		case "Empty Corp":
			_, _ = w.Write([]byte(`{"query": {"search": [{"title": "Empty Corp"}]}}`))
		default:
			_, _ = w.Write([]byte(`{"query": {"search": []}}`))
		}
	})

	mux.HandleFunc("/wiki/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/wiki/Empty Corp" {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		if r.URL.Path != "/wiki/Acme Corporation" {
			http.NotFound(w, r)
			return
		}

		_, _ = w.Write([]byte(acmePage))
	})

	server := httptest.NewServer(mux)
	defer server.Close()

	sc := scraper.NewHTTPScraper(server.Client())
	client := wikipedia.NewClient(sc,
		wikipedia.WithAPIURL(server.URL+"/w/api.php"),
		wikipedia.WithWikiURL(server.URL+"/wiki/"),
	)

	finder := NewFinder(WithScraper(sc), WithSearchClient(client))

	result, err := finder.Lookup(context.Background(), "Acme Corp")
	require.NoError(t, err)
	assert.Equal(t, "Wile E. Coyote, Road Runner", result)

	result, err = finder.Lookup(context.Background(), "Unknown")
	require.NoError(t, err)
	assert.Equal(t, MessageNoResults, result)

	result, err = finder.Lookup(context.Background(), "Empty Corp")
	require.NoError(t, err)
	assert.Equal(t, "Failed to retrieve the page: "+server.URL+"/wiki/Empty%20Corp", result)
}
