package founder

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/bornholm/founderfinder/pkg/infobox"
	"github.com/bornholm/founderfinder/pkg/scraper"
	"github.com/bornholm/founderfinder/pkg/search"
	"github.com/bornholm/founderfinder/pkg/search/wikipedia"
	"github.com/pkg/errors"
)

const (
	DefaultLabel     = "Founder"
	DefaultSeparator = ", "
)

type Finder struct {
	search    search.Client
	scraper   scraper.Scraper
	parser    infobox.Parser
	label     string
	separator string
	trace     TraceFunc
}

// TraceFunc receives the intermediate values of a lookup: the search results
// ("results") and the parsed infobox fields ("fields").
type TraceFunc func(ctx context.Context, step string, value any)

// Lookup returns the founders of the company joined by the separator, or the
// sentinel message describing why they could not be found. Only unexpected
// failures (network errors, unreadable responses) are returned as errors.
func (f *Finder) Lookup(ctx context.Context, company string) (string, error) {
	founders, err := f.Find(ctx, company)
	if err != nil {
		if message, ok := Describe(err); ok {
			slog.DebugContext(ctx, "founder lookup failed", slog.String("company", company), slog.Any("error", err))
			return message, nil
		}

		return "", errors.WithStack(err)
	}

	return strings.Join(founders, f.separator), nil
}

// Find returns the founders listed in the infobox of the company page.
func (f *Finder) Find(ctx context.Context, company string) ([]string, error) {
	pageURL, body, err := f.Page(ctx, company)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	defer body.Close()

	fields, err := f.parser.Parse(body)
	if err != nil {
		if errors.Is(err, infobox.ErrNotFound) {
			slog.DebugContext(ctx, "page has no infobox", slog.String("url", pageURL))
			return nil, errors.WithStack(ErrNotFound)
		}

		return nil, errors.Wrapf(err, "could not parse page '%s'", pageURL)
	}

	f.trace(ctx, "fields", fields)

	founders := fields.Matching(f.label)
	if len(founders) == 0 {
		return nil, errors.WithStack(ErrNotFound)
	}

	return founders, nil
}

// Page searches the company and opens the page of the first result. The
// caller must close the returned body.
func (f *Finder) Page(ctx context.Context, company string) (string, io.ReadCloser, error) {
	results, err := f.search.Search(ctx, company)
	if err != nil {
		if scraper.IsStatusError(err) {
			slog.DebugContext(ctx, "search request rejected", slog.String("company", company), slog.Any("error", err))
			return "", nil, errors.WithStack(ErrSearchFailed)
		}

		return "", nil, errors.Wrapf(err, "could not search '%s'", company)
	}

	f.trace(ctx, "results", results)

	if len(results) == 0 {
		return "", nil, errors.WithStack(ErrNoResults)
	}

	pageURL := results[0].URL

	slog.DebugContext(ctx, "fetching page", slog.String("company", company), slog.String("title", results[0].Title), slog.String("url", pageURL))

	body, err := f.scraper.Get(ctx, pageURL)
	if err != nil {
		if scraper.IsStatusError(err) {
			return "", nil, errors.WithStack(&PageError{URL: pageURL, Cause: err})
		}

		return "", nil, errors.Wrapf(err, "could not fetch page '%s'", pageURL)
	}

	return pageURL, body, nil
}

type OptionFunc func(f *Finder)

func WithSearchClient(client search.Client) OptionFunc {
	return func(f *Finder) {
		f.search = client
	}
}

func WithScraper(scraper scraper.Scraper) OptionFunc {
	return func(f *Finder) {
		f.scraper = scraper
	}
}

func WithParser(parser infobox.Parser) OptionFunc {
	return func(f *Finder) {
		f.parser = parser
	}
}

// WithLabel sets the substring identifying founder rows in the infobox.
func WithLabel(label string) OptionFunc {
	return func(f *Finder) {
		f.label = label
	}
}

func WithSeparator(separator string) OptionFunc {
	return func(f *Finder) {
		f.separator = separator
	}
}

func WithTrace(trace TraceFunc) OptionFunc {
	return func(f *Finder) {
		f.trace = trace
	}
}

// NewFinder creates a finder. Unless overridden it searches with the
// Wikipedia API and fetches pages with the default scraper.
func NewFinder(funcs ...OptionFunc) *Finder {
	f := &Finder{
		scraper:   scraper.DefaultScraper(),
		parser:    infobox.NewHTMLParser(),
		label:     DefaultLabel,
		separator: DefaultSeparator,
		trace:     func(context.Context, string, any) {},
	}

	for _, fn := range funcs {
		fn(f)
	}

	if f.search == nil {
		f.search = wikipedia.NewClient(f.scraper)
	}

	return f
}
