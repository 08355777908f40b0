package infobox

import (
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/pkg/errors"
)

// DefaultSelector matches tables carrying the "infobox" class.
const DefaultSelector = "table.infobox"

var ErrNotFound = errors.New("infobox not found")

// Parser turns a document markup into its infobox fields.
type Parser interface {
	Parse(r io.Reader) (Fields, error)
}

// HTMLParser reads the first table matching its selector.
type HTMLParser struct {
	selector string
}

// Parse implements Parser. It returns ErrNotFound when the document has no
// infobox.
func (p *HTMLParser) Parse(r io.Reader) (Fields, error) {
	table, err := p.find(r)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	fields := make(Fields, 0)

	table.Find("tr").Each(func(i int, row *goquery.Selection) {
		header := row.Find("th").First()
		if header.Length() == 0 {
			return
		}

		cell := row.Find("td").First()
		if cell.Length() == 0 {
			return
		}

		fields = append(fields, Field{
			Label: strings.TrimSpace(rawText(header)),
			Value: strippedText(cell),
		})
	})

	return fields, nil
}

func (p *HTMLParser) find(r io.Reader) (*goquery.Selection, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	table := doc.Find(p.selector).First()
	if table.Length() == 0 {
		return nil, errors.WithStack(ErrNotFound)
	}

	return table, nil
}

type OptionFunc func(p *HTMLParser)

// WithSelector overrides the CSS selector locating the infobox table.
func WithSelector(selector string) OptionFunc {
	return func(p *HTMLParser) {
		p.selector = selector
	}
}

func NewHTMLParser(funcs ...OptionFunc) *HTMLParser {
	p := &HTMLParser{
		selector: DefaultSelector,
	}

	for _, fn := range funcs {
		fn(p)
	}

	return p
}

var _ Parser = &HTMLParser{}
