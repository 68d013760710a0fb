package toc

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/specdex/specdex/internal/document"
)

// RawTOCToken is a TOC line broken into raw fields, before hierarchy inference.
type RawTOCToken struct {
	SectionID string
	Title     string
	Page      int
}

// tocLine matches entries like "4.2.1.3 EPR Cable Assembly Requirements ...... 179".
// The section id is 1-6 dot-separated numeric components with an optional trailing
// period; the title and page number are separated by a dot leader or plain whitespace.
var tocLine = regexp.MustCompile(`^(\d+(?:\.\d+){0,5})\.?\s+(.+?)(?:\s*\.{2,}\s*|\s+)(\d+)\s*$`)

// ClassifyTOCLine reports whether a line looks like a TOC entry and, if so,
// returns its raw token. Lines that do not match simply yield no token; most
// lines in a document are not TOC entries.
func ClassifyTOCLine(line string) (RawTOCToken, bool) {
	m := tocLine.FindStringSubmatch(strings.TrimSpace(line))
	if m == nil {
		return RawTOCToken{}, false
	}
	page, err := strconv.Atoi(m[3])
	if err != nil || page < 1 {
		return RawTOCToken{}, false
	}
	title := strings.TrimSpace(m[2])
	if title == "" {
		return RawTOCToken{}, false
	}
	return RawTOCToken{SectionID: m[1], Title: title, Page: page}, true
}

// ClassifyHeaderLine reports whether a body line is a section header for one of
// the known section ids. The leading token must equal a known id exactly and be
// followed by a title-like run, which keeps numeric table data ("4.2  300") and
// ids absent from the TOC from triggering section transitions. Taking the whole
// first token prefers "4.2.1" over its prefix "4.2" when both are known ids,
// and the header must begin the line. A line that parses as a TOC entry is a
// TOC entry, not a header; otherwise every contents page would open sections.
func ClassifyHeaderLine(line string, known map[string]struct{}) (string, bool) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || trimmed[0] < '0' || trimmed[0] > '9' {
		return "", false
	}
	if _, isTOC := ClassifyTOCLine(trimmed); isTOC {
		return "", false
	}
	cut := strings.IndexFunc(trimmed, unicode.IsSpace)
	if cut < 0 {
		// A bare id with no title is numeric data, not a header.
		return "", false
	}
	id := strings.TrimSuffix(trimmed[:cut], ".")
	if _, ok := known[id]; !ok {
		return "", false
	}
	rest := strings.TrimSpace(trimmed[cut:])
	if rest == "" || unicode.IsDigit(rune(rest[0])) {
		return "", false
	}
	return id, true
}

// CollectTokens runs the TOC classifier over every line of every page, in
// document order. The trailing page number of each entry, not the page the
// entry was printed on, is what ends up in the token.
func CollectTokens(pages []document.Page) []RawTOCToken {
	var tokens []RawTOCToken
	for _, page := range pages {
		if page.Text == "" {
			continue
		}
		for _, line := range strings.Split(page.Text, "\n") {
			if tok, ok := ClassifyTOCLine(line); ok {
				tokens = append(tokens, tok)
			}
		}
	}
	return tokens
}
