package extractor

import (
	"io"
	"strings"

	"github.com/specdex/specdex/internal/document"
)

// TextExtractor handles plain text files. Form feeds mark page boundaries;
// input with no form feeds is a single page.
type TextExtractor struct{}

func (p *TextExtractor) Extract(r io.Reader, filename string) ([]document.Page, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, nil
	}

	parts := strings.Split(string(data), "\f")
	pages := make([]document.Page, 0, len(parts))
	for i, part := range parts {
		pages = append(pages, document.Page{Number: i + 1, Text: part})
	}
	return pages, nil
}
