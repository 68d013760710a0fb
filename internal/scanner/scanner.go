// Package scanner walks body pages in order and assigns every span of text to
// exactly one section id from the frozen TOC set.
package scanner

import (
	"strings"

	"github.com/specdex/specdex/internal/document"
	"github.com/specdex/specdex/internal/toc"
)

type openBlock struct {
	lines     []string
	startPage int
	endPage   int
}

// Scan is a single forward pass over pages. A recognized header opens (or
// re-opens) the block for its id and seals the previous one; repeated headers
// for the open id are running headers and continue the same block, so each id
// yields at most one ContentBlock no matter how many pages repeat its header.
// Text before the first header is not attributable to any section and is
// dropped. Scan never fails: unrecognized input is ordinary content.
func Scan(pages []document.Page, records []document.SectionRecord) []document.ContentBlock {
	known := make(map[string]struct{}, len(records))
	for _, r := range records {
		known[r.SectionID] = struct{}{}
	}

	blocks := make(map[string]*openBlock)
	var order []string
	current := "" // empty while no section is active

	for _, page := range pages {
		if current != "" {
			// End of input finalizes with the last page processed;
			// tracking every page as we go gives exactly that.
			blocks[current].endPage = page.Number
		}
		if page.Text == "" {
			continue
		}
		for _, line := range strings.Split(page.Text, "\n") {
			if id, ok := toc.ClassifyHeaderLine(line, known); ok {
				if id == current {
					continue
				}
				b, seen := blocks[id]
				if !seen {
					b = &openBlock{startPage: page.Number}
					blocks[id] = b
					order = append(order, id)
				}
				b.endPage = page.Number
				if current != "" {
					blocks[current].endPage = page.Number
				}
				current = id
				continue
			}
			if current == "" {
				continue
			}
			text := strings.Join(strings.Fields(line), " ")
			if text == "" {
				continue
			}
			b := blocks[current]
			b.lines = append(b.lines, text)
			b.endPage = page.Number
		}
	}

	out := make([]document.ContentBlock, 0, len(order))
	for _, id := range order {
		b := blocks[id]
		out = append(out, document.ContentBlock{
			SectionID: id,
			Content:   strings.Join(b.lines, " "),
			StartPage: b.startPage,
			EndPage:   b.endPage,
		})
	}
	return out
}
