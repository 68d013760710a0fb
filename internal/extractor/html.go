package extractor

import (
	"fmt"
	"io"
	"strings"

	"github.com/specdex/specdex/internal/document"
	"golang.org/x/net/html"
)

// HTMLExtractor handles HTML files. Headings, paragraphs and table cells are
// flattened to plain lines; <hr> elements act as page boundaries.
type HTMLExtractor struct{}

func (p *HTMLExtractor) Extract(r io.Reader, filename string) ([]document.Page, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	var pages []document.Page
	var current []string

	flushPage := func() {
		body := strings.TrimSpace(strings.Join(current, "\n"))
		pages = append(pages, document.Page{Number: len(pages) + 1, Text: body})
		current = nil
	}

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "hr":
				flushPage()
				return
			case "script", "style", "nav", "footer", "header":
				return
			case "h1", "h2", "h3", "h4", "h5", "h6", "p", "li", "td", "blockquote":
				if t := textContent(n); t != "" {
					current = append(current, t)
				}
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	if body := findBody(doc); body != nil {
		walk(body)
	} else {
		walk(doc)
	}
	if len(current) > 0 || len(pages) == 0 {
		flushPage()
	}
	if len(pages) == 1 && pages[0].Text == "" {
		return nil, nil
	}
	return pages, nil
}

func textContent(n *html.Node) string {
	var buf strings.Builder
	var extract func(*html.Node)
	extract = func(n *html.Node) {
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extract(c)
		}
	}
	extract(n)
	return strings.Join(strings.Fields(buf.String()), " ")
}

func findBody(n *html.Node) *html.Node {
	if n.Type == html.ElementNode && n.Data == "body" {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if b := findBody(c); b != nil {
			return b
		}
	}
	return nil
}
