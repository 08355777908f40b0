package wikipedia

import (
	"context"
	"io"
	"log/slog"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/bornholm/founderfinder/pkg/scraper"
	"github.com/bornholm/founderfinder/pkg/search"
	"github.com/pkg/errors"
	"github.com/tidwall/gjson"
)

const (
	DefaultAPIURL  = "https://en.wikipedia.org/w/api.php"
	DefaultWikiURL = "https://en.wikipedia.org/wiki/"
)

// Client searches articles with the MediaWiki search API.
type Client struct {
	scraper scraper.Scraper
	apiURL  string
	wikiURL string
}

// Search implements search.Client.
func (c *Client) Search(ctx context.Context, query string) ([]search.Result, error) {
	searchURL, err := url.Parse(c.apiURL)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid api url '%s'", c.apiURL)
	}

	params := searchURL.Query()
	params.Set("action", "query")
	params.Set("format", "json")
	params.Set("list", "search")
	params.Set("srsearch", query)
	params.Set("utf8", "1")
	searchURL.RawQuery = params.Encode()

	slog.DebugContext(ctx, "querying wikipedia", slog.String("url", searchURL.String()))

	body, err := c.scraper.Get(ctx, searchURL.String())
	if err != nil {
		return nil, errors.WithStack(err)
	}

	defer body.Close()

	data, err := io.ReadAll(body)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if !gjson.ValidBytes(data) {
		return nil, errors.Errorf("unexpected search response:\n%s", data)
	}

	hits := gjson.GetBytes(data, "query.search")

	results := make([]search.Result, 0)

	hits.ForEach(func(_, hit gjson.Result) bool {
		title := hit.Get("title")
		if !title.Exists() {
			return true
		}

		results = append(results, search.Result{
			Title:       title.String(),
			URL:         c.PageURL(title.String()),
			Description: stripMarkup(hit.Get("snippet").String()),
		})

		return true
	})

	return results, nil
}

// PageURL returns the address of the article with the given title.
func (c *Client) PageURL(title string) string {
	return c.wikiURL + Quote(title)
}

// Search snippets embed highlighting markup
func stripMarkup(snippet string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(snippet))
	if err != nil {
		return snippet
	}

	return strings.TrimSpace(doc.Text())
}

type OptionFunc func(c *Client)

// WithAPIURL sets the MediaWiki api.php endpoint.
func WithAPIURL(apiURL string) OptionFunc {
	return func(c *Client) {
		c.apiURL = apiURL
	}
}

// WithWikiURL sets the prefix prepended to encoded article titles.
func WithWikiURL(wikiURL string) OptionFunc {
	return func(c *Client) {
		c.wikiURL = wikiURL
	}
}

func NewClient(scraper scraper.Scraper, funcs ...OptionFunc) *Client {
	c := &Client{
		scraper: scraper,
		apiURL:  DefaultAPIURL,
		wikiURL: DefaultWikiURL,
	}

	for _, fn := range funcs {
		fn(c)
	}

	return c
}

var _ search.Client = &Client{}
