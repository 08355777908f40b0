package infobox

import (
	"io"
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/PuerkitoBio/goquery"
	"github.com/pkg/errors"
)

// RenderMarkdown renders the infobox table of the document as Markdown.
func (p *HTMLParser) RenderMarkdown(r io.Reader) (string, error) {
	box, err := p.find(r)
	if err != nil {
		return "", errors.WithStack(err)
	}

	box.Find("style, script").Remove()

	html, err := goquery.OuterHtml(box)
	if err != nil {
		return "", errors.WithStack(err)
	}

	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)

	markdown, err := conv.ConvertString(html)
	if err != nil {
		return "", errors.WithStack(err)
	}

	return strings.TrimSpace(markdown), nil
}
