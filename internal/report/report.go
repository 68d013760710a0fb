// Package report reconciles the TOC set against the content set and computes
// page-coverage statistics for a document run.
package report

import (
	"fmt"
	"math"
	"time"

	"github.com/specdex/specdex/internal/document"
)

// Status thresholds are policy constants, not derived from the input.
const (
	PassThreshold    = 95.0
	PartialThreshold = 80.0
)

const (
	StatusPass    = "PASS"
	StatusPartial = "PARTIAL"
	StatusFail    = "FAIL"
)

// InvalidDocumentError signals a document with no pages. Raised before any
// coverage arithmetic so a zero page count is never a silent divide.
type InvalidDocumentError struct {
	TotalPages int
}

func (e *InvalidDocumentError) Error() string {
	return fmt.Sprintf("invalid document: total page count %d", e.TotalPages)
}

// Summary holds the section-matching counts.
type Summary struct {
	TotalTOCSections     int `json:"total_toc_sections"`
	TotalContentSections int `json:"total_content_sections"`
	SectionsMatched      int `json:"sections_matched"`
}

// PageCoverage holds the page-level statistics.
type PageCoverage struct {
	TotalPages         int     `json:"total_pages"`
	PagesCovered       int     `json:"pages_covered"`
	PagesMissing       int     `json:"pages_missing"`
	CoveragePercentage float64 `json:"coverage_percentage"`
}

// CoverageReport is the terminal artifact of a run. It is computed once from
// the two frozen sets and never mutated afterwards.
type CoverageReport struct {
	DocTitle               string       `json:"doc_title,omitempty"`
	GeneratedAt            time.Time    `json:"generated_at"`
	Summary                Summary      `json:"summary"`
	PageCoverage           PageCoverage `json:"page_coverage"`
	SectionsPerLevel       map[int]int  `json:"sections_per_level"`
	SectionsWithoutContent []string     `json:"sections_without_content"`
	ValidationStatus       string       `json:"validation_status"`
}

// Validate computes the coverage report. Page coverage is the union of the
// inclusive block ranges clipped to [1, totalPages]. The per-level counts and
// the list of sections without content are informational only; they never
// influence the validation status.
func Validate(toc []document.SectionRecord, blocks []document.ContentBlock, totalPages int, docTitle string) (*CoverageReport, error) {
	if totalPages <= 0 {
		return nil, &InvalidDocumentError{TotalPages: totalPages}
	}

	covered := make([]bool, totalPages+1)
	contentIDs := make(map[string]struct{}, len(blocks))
	for _, b := range blocks {
		contentIDs[b.SectionID] = struct{}{}
		start, end := b.StartPage, b.EndPage
		if start < 1 {
			start = 1
		}
		if end > totalPages {
			end = totalPages
		}
		for p := start; p <= end; p++ {
			covered[p] = true
		}
	}

	pagesCovered := 0
	for p := 1; p <= totalPages; p++ {
		if covered[p] {
			pagesCovered++
		}
	}
	pct := math.Round(float64(pagesCovered)/float64(totalPages)*1000) / 10

	matched := 0
	perLevel := make(map[int]int)
	var withoutContent []string
	for _, rec := range toc {
		perLevel[rec.Level]++
		if _, ok := contentIDs[rec.SectionID]; ok {
			matched++
		} else {
			withoutContent = append(withoutContent, rec.SectionID)
		}
	}

	status := StatusFail
	switch {
	case pct >= PassThreshold && len(toc) > 0 && len(blocks) > 0:
		status = StatusPass
	case pct >= PartialThreshold:
		status = StatusPartial
	}

	return &CoverageReport{
		DocTitle:    docTitle,
		GeneratedAt: time.Now().UTC(),
		Summary: Summary{
			TotalTOCSections:     len(toc),
			TotalContentSections: len(blocks),
			SectionsMatched:      matched,
		},
		PageCoverage: PageCoverage{
			TotalPages:         totalPages,
			PagesCovered:       pagesCovered,
			PagesMissing:       totalPages - pagesCovered,
			CoveragePercentage: pct,
		},
		SectionsPerLevel:       perLevel,
		SectionsWithoutContent: withoutContent,
		ValidationStatus:       status,
	}, nil
}
