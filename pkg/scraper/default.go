package scraper

import (
	"net/http"
)

// DefaultUserAgent identifies the tool to remote servers. Wikimedia rejects
// requests without a descriptive agent.
const DefaultUserAgent = "founderfinder/1.0 (https://github.com/bornholm/founderfinder)"

var defaultScraper Scraper = NewHTTPScraper(http.DefaultClient)

func DefaultScraper() Scraper {
	return defaultScraper
}
