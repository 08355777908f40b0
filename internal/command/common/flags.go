package common

import (
	"time"

	"github.com/bornholm/founderfinder/internal/command"
	"github.com/bornholm/founderfinder/pkg/scraper"
	"github.com/bornholm/founderfinder/pkg/search/wikipedia"
	"github.com/urfave/cli/v2"
)

const (
	ScraperHTTP     = "http"
	ScraperColly    = "colly"
	ScraperSurf     = "surf"
	ScraperChromedp = "chromedp"

	EngineWikipedia  = "wikipedia"
	EngineDuckDuckGo = "duckduckgo"
	EngineGoogle     = "google"
	EngineMeta       = "meta"
)

const (
	flagScraper       = "scraper"
	flagSearchEngine  = "search-engine"
	flagUserAgent     = "user-agent"
	flagWikipediaAPI  = "wikipedia-api"
	flagWikipediaURL  = "wikipedia-url"
	flagGoogleAPIKey  = "google-api-key"
	flagGoogleCX      = "google-cx"
	flagSearchRetries = "search-retries"
	flagRetryDelay    = "search-retry-delay"
	flagLabel         = "label"
)

// FinderFlags returns the flags configuring the founder lookup.
func FinderFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    flagScraper,
			Value:   ScraperHTTP,
			EnvVars: []string{command.EnvPrefix + "SCRAPER"},
			Usage:   "The backend used to fetch pages (http, colly, surf, chromedp)",
		},
		&cli.StringFlag{
			Name:    flagSearchEngine,
			Value:   EngineWikipedia,
			EnvVars: []string{command.EnvPrefix + "SEARCH_ENGINE"},
			Usage:   "The search engine used to find company pages (wikipedia, duckduckgo, google, meta)",
		},
		&cli.StringFlag{
			Name:    flagUserAgent,
			Value:   scraper.DefaultUserAgent,
			EnvVars: []string{command.EnvPrefix + "USER_AGENT"},
			Usage:   "The User-Agent header sent by the http and colly scrapers",
		},
		&cli.StringFlag{
			Name:    flagWikipediaAPI,
			Value:   wikipedia.DefaultAPIURL,
			EnvVars: []string{command.EnvPrefix + "WIKIPEDIA_API"},
			Usage:   "The MediaWiki search api endpoint",
		},
		&cli.StringFlag{
			Name:    flagWikipediaURL,
			Value:   wikipedia.DefaultWikiURL,
			EnvVars: []string{command.EnvPrefix + "WIKIPEDIA_URL"},
			Usage:   "The prefix of article addresses",
		},
		&cli.StringFlag{
			Name:    flagGoogleAPIKey,
			EnvVars: []string{command.EnvPrefix + "GOOGLE_API_KEY"},
			Usage:   "The Google Custom Search api key",
		},
		&cli.StringFlag{
			Name:    flagGoogleCX,
			EnvVars: []string{command.EnvPrefix + "GOOGLE_CX"},
			Usage:   "The Google Custom Search engine identifier",
		},
		&cli.IntFlag{
			Name:    flagSearchRetries,
			Value:   0,
			EnvVars: []string{command.EnvPrefix + "SEARCH_RETRIES"},
			Usage:   "Number of retries of rejected search requests",
		},
		&cli.DurationFlag{
			Name:    flagRetryDelay,
			Value:   time.Second,
			EnvVars: []string{command.EnvPrefix + "SEARCH_RETRY_DELAY"},
			Usage:   "Base delay between search retries",
		},
		&cli.StringFlag{
			Name:    flagLabel,
			Value:   "Founder",
			EnvVars: []string{command.EnvPrefix + "LABEL"},
			Usage:   "The substring identifying founder rows in infoboxes",
		},
	}
}
