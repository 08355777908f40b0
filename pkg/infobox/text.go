package infobox

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// rawText concatenates the text nodes below the selection as is.
func rawText(sel *goquery.Selection) string {
	var sb strings.Builder

	for _, n := range sel.Nodes {
		walkText(n, func(text string) {
			sb.WriteString(text)
		})
	}

	return sb.String()
}

// strippedText concatenates the text nodes below the selection, each one
// trimmed of its surrounding whitespace. Blank nodes are dropped.
func strippedText(sel *goquery.Selection) string {
	var sb strings.Builder

	for _, n := range sel.Nodes {
		walkText(n, func(text string) {
			sb.WriteString(strings.TrimSpace(text))
		})
	}

	return sb.String()
}

func walkText(n *html.Node, fn func(text string)) {
	switch n.Type {
	case html.TextNode:
		fn(n.Data)
		return
	case html.ElementNode:
		// Template styles and scripts are not part of the rendered text
		if n.Data == "style" || n.Data == "script" {
			return
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walkText(c, fn)
	}
}
