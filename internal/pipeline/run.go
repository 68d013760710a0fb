package pipeline

import (
	"github.com/specdex/specdex/internal/document"
	"github.com/specdex/specdex/internal/report"
	"github.com/specdex/specdex/internal/scanner"
	"github.com/specdex/specdex/internal/toc"
)

// Result holds the frozen artifacts of one document run. Each field has
// exactly one writer (its stage) and is read-only from then on.
type Result struct {
	Records   []document.SectionRecord
	Blocks    []document.ContentBlock
	Report    *report.CoverageReport
	Malformed []toc.MalformedIDError
}

// Run executes the four core stages over already-extracted pages in strict
// order: classify TOC lines, build the hierarchy, scan body content, validate.
// Fatal structural errors (duplicate or orphan ids, empty page set) abort the
// run before any artifact exists.
func Run(pages []document.Page, docTitle string) (*Result, error) {
	if len(pages) == 0 {
		return nil, &report.InvalidDocumentError{TotalPages: 0}
	}

	tokens := toc.CollectTokens(pages)
	built, err := toc.Build(tokens, docTitle)
	if err != nil {
		return nil, err
	}

	blocks := scanner.Scan(pages, built.Records)

	totalPages := pages[len(pages)-1].Number
	rep, err := report.Validate(built.Records, blocks, totalPages, docTitle)
	if err != nil {
		return nil, err
	}

	return &Result{
		Records:   built.Records,
		Blocks:    blocks,
		Report:    rep,
		Malformed: built.Malformed,
	}, nil
}
