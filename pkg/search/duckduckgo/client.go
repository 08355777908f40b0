package duckduckgo

import (
	"context"
	"log/slog"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/bornholm/founderfinder/pkg/scraper"
	"github.com/bornholm/founderfinder/pkg/search"
	"github.com/pkg/errors"
)

const DefaultBaseURL = "https://html.duckduckgo.com/html/"

type Client struct {
	scraper scraper.Scraper
	baseURL string
}

func (c *Client) Search(ctx context.Context, query string) ([]search.Result, error) {
	searchURL, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid base url '%s'", c.baseURL)
	}

	params := searchURL.Query()
	params.Set("q", query)
	searchURL.RawQuery = params.Encode()

	slog.DebugContext(ctx, "scraping duckduckgo results", slog.String("url", searchURL.String()))

	body, err := c.scraper.Get(ctx, searchURL.String())
	if err != nil {
		return nil, errors.WithStack(err)
	}

	defer body.Close()

	doc, err := goquery.NewDocumentFromReader(body)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	captcha := doc.Find("#challenge-form")
	if captcha.Length() > 0 {
		return nil, errors.WithStack(ErrCaptcha)
	}

	if doc.Find("#links, .results").Length() == 0 {
		return nil, errors.Errorf("unexpected result:\n%s", doc.Text())
	}

	results := make([]search.Result, 0)

	doc.Find(".result").Each(func(i int, s *goquery.Selection) {
		title := strings.TrimSpace(s.Find(".result__title").Text())
		if title == "" {
			return
		}

		rawLink := s.Find(".result__a").AttrOr("href", "")
		if rawLink == "" {
			return
		}

		link, err := url.Parse(rawLink)
		if err != nil {
			return
		}

		// Result links go through a redirection endpoint
		target := link.Query().Get("uddg")
		if target == "" {
			target = rawLink
		}

		results = append(results, search.Result{
			Title:       title,
			Description: strings.TrimSpace(s.Find(".result__snippet").Text()),
			URL:         target,
		})
	})

	return results, nil
}

type OptionFunc func(c *Client)

func WithBaseURL(baseURL string) OptionFunc {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

func NewClient(scraper scraper.Scraper, funcs ...OptionFunc) *Client {
	c := &Client{
		scraper: scraper,
		baseURL: DefaultBaseURL,
	}

	for _, fn := range funcs {
		fn(c)
	}

	return c
}

var _ search.Client = &Client{}
