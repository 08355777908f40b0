package chromedp

import (
	"bytes"
	"context"
	"io"
	"os"
	"sync"

	"github.com/bornholm/founderfinder/pkg/scraper"
	"github.com/chromedp/cdproto/dom"
	"github.com/chromedp/cdproto/network"
	"github.com/chromedp/chromedp"
	"github.com/pkg/errors"

	cu "github.com/Davincible/chromedp-undetected"
)

// Scraper renders documents in a (headless) Chrome instance.
type Scraper struct {
	chromeCtx    context.Context
	cancelChrome context.CancelFunc
}

// Check implements scraper.Scraper.
func (s *Scraper) Check(ctx context.Context, url string) (bool, error) {
	statusCode, _, err := s.navigate(ctx, url, false)
	if err != nil {
		return false, errors.WithStack(err)
	}

	return statusCode == 0 || scraper.IsSuccess(statusCode), nil
}

// Get implements scraper.Scraper.
func (s *Scraper) Get(ctx context.Context, url string) (io.ReadCloser, error) {
	statusCode, html, err := s.navigate(ctx, url, true)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	// A zero status means no document response was observed
	if statusCode != 0 && !scraper.IsOK(statusCode) {
		return nil, errors.WithStack(&scraper.StatusError{
			URL:        url,
			StatusCode: statusCode,
			Body:       []byte(html),
		})
	}

	return io.NopCloser(bytes.NewBufferString(html)), nil
}

func (s *Scraper) navigate(ctx context.Context, url string, withHTML bool) (int, string, error) {
	tabCtx, cancelTab := chromedp.NewContext(s.chromeCtx)
	defer cancelTab()

	// Stop the tab when the caller gives up
	stop := context.AfterFunc(ctx, cancelTab)
	defer stop()

	var (
		lock       sync.Mutex
		statusCode int
	)

	chromedp.ListenTarget(tabCtx, func(ev any) {
		res, ok := ev.(*network.EventResponseReceived)
		if !ok || res.Type != network.ResourceTypeDocument || res.Response == nil {
			return
		}

		lock.Lock()
		defer lock.Unlock()

		// Only the first document response is the navigated page
		if statusCode == 0 {
			statusCode = int(res.Response.Status)
		}
	})

	var html string

	actions := []chromedp.Action{
		network.Enable(),
		chromedp.Navigate(url),
		chromedp.WaitReady("body"),
	}

	if withHTML {
		actions = append(actions, chromedp.ActionFunc(func(ctx context.Context) error {
			node, err := dom.GetDocument().Do(ctx)
			if err != nil {
				return errors.WithStack(err)
			}

			res, err := dom.GetOuterHTML().WithNodeID(node.NodeID).Do(ctx)
			if err != nil {
				return errors.WithStack(err)
			}

			html = res

			return nil
		}))
	}

	if err := chromedp.Run(tabCtx, actions...); err != nil {
		return 0, "", errors.WithStack(err)
	}

	lock.Lock()
	defer lock.Unlock()

	return statusCode, html, nil
}

func (s *Scraper) Close() {
	s.cancelChrome()
}

func NewScraper(headless bool) (*Scraper, error) {
	options := []cu.Option{}
	if headless {
		options = append(options, cu.WithHeadless())
	}

	if httpProxy := os.Getenv("HTTP_PROXY"); httpProxy != "" {
		options = append(options, cu.WithChromeFlags(chromedp.ProxyServer(httpProxy)))
	}

	chromeCtx, cancelChrome, err := cu.New(cu.NewConfig(options...))
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return &Scraper{
		chromeCtx:    chromeCtx,
		cancelChrome: cancelChrome,
	}, nil
}

var _ scraper.Scraper = &Scraper{}
