package extractor

import (
	"bytes"
	"io"
	"strings"

	"github.com/specdex/specdex/internal/document"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// MarkdownExtractor handles Markdown files using goldmark. Thematic breaks
// ("---") act as page boundaries; headings are flattened back to plain lines
// so the line classifier sees them the same way it sees PDF text.
type MarkdownExtractor struct{}

func (p *MarkdownExtractor) Extract(r io.Reader, filename string) ([]document.Page, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	md := goldmark.New()
	doc := md.Parser().Parse(text.NewReader(src))

	var pages []document.Page
	var current []string

	flushPage := func() {
		body := strings.TrimSpace(strings.Join(current, "\n"))
		pages = append(pages, document.Page{Number: len(pages) + 1, Text: body})
		current = nil
	}

	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		if _, isBreak := n.(*ast.ThematicBreak); isBreak {
			flushPage()
			continue
		}
		if t := blockText(n, src); t != "" {
			current = append(current, t)
		}
	}
	if len(current) > 0 || len(pages) == 0 {
		flushPage()
	}
	if len(pages) == 1 && pages[0].Text == "" {
		return nil, nil
	}
	return pages, nil
}

// blockText gets the text content of a goldmark AST node.
func blockText(n ast.Node, src []byte) string {
	var buf bytes.Buffer
	if n.Type() == ast.TypeBlock {
		if lines := n.Lines(); lines.Len() > 0 {
			for i := 0; i < lines.Len(); i++ {
				line := lines.At(i)
				buf.Write(line.Value(src))
			}
			return strings.TrimSpace(buf.String())
		}
	}
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if t, ok := c.(*ast.Text); ok {
			buf.Write(t.Value(src))
			if t.HardLineBreak() || t.SoftLineBreak() {
				buf.WriteByte('\n')
			}
		} else {
			s := blockText(c, src)
			if s != "" {
				if buf.Len() > 0 {
					buf.WriteByte('\n')
				}
				buf.WriteString(s)
			}
		}
	}
	return strings.TrimSpace(buf.String())
}
