package common

import (
	"net/http"
	"net/url"

	"github.com/bornholm/founderfinder/pkg/founder"
	"github.com/bornholm/founderfinder/pkg/scraper"
	"github.com/bornholm/founderfinder/pkg/scraper/chromedp"
	"github.com/bornholm/founderfinder/pkg/scraper/colly"
	"github.com/bornholm/founderfinder/pkg/scraper/surf"
	"github.com/bornholm/founderfinder/pkg/search"
	"github.com/bornholm/founderfinder/pkg/search/duckduckgo"
	"github.com/bornholm/founderfinder/pkg/search/google"
	"github.com/bornholm/founderfinder/pkg/search/meta"
	"github.com/bornholm/founderfinder/pkg/search/wikipedia"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

// NewFinder creates a founder finder from the command flags. The returned
// function releases the resources held by the scraper.
func NewFinder(ctx *cli.Context, funcs ...founder.OptionFunc) (*founder.Finder, func(), error) {
	s, closeScraper, err := NewScraper(ctx)
	if err != nil {
		return nil, nil, errors.WithStack(err)
	}

	client, err := NewSearchClient(ctx, s)
	if err != nil {
		closeScraper()
		return nil, nil, errors.WithStack(err)
	}

	finder := founder.NewFinder(append([]founder.OptionFunc{
		founder.WithScraper(s),
		founder.WithSearchClient(client),
		founder.WithLabel(ctx.String(flagLabel)),
	}, funcs...)...)

	return finder, closeScraper, nil
}

func NewScraper(ctx *cli.Context) (scraper.Scraper, func(), error) {
	noop := func() {}

	userAgent := ctx.String(flagUserAgent)

	switch name := ctx.String(flagScraper); name {
	case ScraperHTTP:
		return scraper.NewHTTPScraper(http.DefaultClient, scraper.WithUserAgent(userAgent)), noop, nil

	case ScraperColly:
		return colly.NewScraper(colly.WithUserAgent(userAgent)), noop, nil

	case ScraperSurf:
		return surf.NewScraper(), noop, nil

	case ScraperChromedp:
		s, err := chromedp.NewScraper(true)
		if err != nil {
			return nil, nil, errors.Wrap(err, "could not start chrome")
		}

		return s, s.Close, nil

	default:
		return nil, nil, errors.Errorf("unknown scraper '%s'", name)
	}
}

func NewSearchClient(ctx *cli.Context, s scraper.Scraper) (search.Client, error) {
	wiki := wikipedia.NewClient(s,
		wikipedia.WithAPIURL(ctx.String(flagWikipediaAPI)),
		wikipedia.WithWikiURL(ctx.String(flagWikipediaURL)),
	)

	host, err := wikiHost(ctx.String(flagWikipediaURL))
	if err != nil {
		return nil, errors.WithStack(err)
	}

	var client search.Client

	switch name := ctx.String(flagSearchEngine); name {
	case EngineWikipedia:
		client = wiki

	case EngineDuckDuckGo:
		client = search.WithSite(duckduckgo.NewClient(s), host)

	case EngineGoogle:
		g, err := newGoogleClient(ctx)
		if err != nil {
			return nil, errors.WithStack(err)
		}

		client = search.WithSite(g, host)

	case EngineMeta:
		clients := []search.Client{
			wiki,
			search.WithSite(duckduckgo.NewClient(s), host),
		}

		if ctx.String(flagGoogleAPIKey) != "" {
			g, err := newGoogleClient(ctx)
			if err != nil {
				return nil, errors.WithStack(err)
			}

			clients = append(clients, search.WithSite(g, host))
		}

		client = meta.NewClient(clients...)

	default:
		return nil, errors.Errorf("unknown search engine '%s'", name)
	}

	if retries := ctx.Int(flagSearchRetries); retries > 0 {
		client = search.WithRetry(client, retries, ctx.Duration(flagRetryDelay))
	}

	return client, nil
}

func newGoogleClient(ctx *cli.Context) (*google.Client, error) {
	apiKey := ctx.String(flagGoogleAPIKey)
	cx := ctx.String(flagGoogleCX)

	if apiKey == "" || cx == "" {
		return nil, errors.Errorf("the google search engine requires --%s and --%s", flagGoogleAPIKey, flagGoogleCX)
	}

	return google.NewClient(apiKey, cx, 10), nil
}

func wikiHost(wikiURL string) (string, error) {
	u, err := url.Parse(wikiURL)
	if err != nil {
		return "", errors.Wrapf(err, "invalid wikipedia url '%s'", wikiURL)
	}

	if u.Hostname() == "" {
		return "", errors.Errorf("invalid wikipedia url '%s': missing host", wikiURL)
	}

	return u.Hostname(), nil
}
