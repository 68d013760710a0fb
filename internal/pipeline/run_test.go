package pipeline

import (
	"errors"
	"testing"

	"github.com/specdex/specdex/internal/document"
	"github.com/specdex/specdex/internal/report"
	"github.com/specdex/specdex/internal/toc"
)

// specPages builds a small document: a TOC page followed by body pages with
// section headers, paragraphs and a running header.
func specPages() []document.Page {
	return []document.Page{
		{Number: 1, Text: "Table of Contents\n" +
			"1 Introduction ........ 2\n" +
			"1.1 Scope ........ 2\n" +
			"2 Requirements ........ 3\n"},
		{Number: 2, Text: "1 Introduction\n" +
			"This document defines the widget interface.\n" +
			"1.1 Scope\n" +
			"It applies to all widgets.\n"},
		{Number: 3, Text: "2 Requirements\n" +
			"Widgets shall be round.\n"},
		{Number: 4, Text: "2 Requirements\n" +
			"Widgets shall also be smooth.\n"},
	}
}

func TestRun_EndToEnd(t *testing.T) {
	res, err := Run(specPages(), "Widget Spec")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(res.Records) != 3 {
		t.Fatalf("expected 3 TOC records, got %d", len(res.Records))
	}
	if res.Records[1].ParentID != "1" || res.Records[1].Level != 2 {
		t.Errorf("1.1: expected parent 1 level 2, got parent %q level %d", res.Records[1].ParentID, res.Records[1].Level)
	}

	if len(res.Blocks) != 3 {
		t.Fatalf("expected 3 content blocks, got %d", len(res.Blocks))
	}
	last := res.Blocks[2]
	if last.SectionID != "2" {
		t.Fatalf("expected final block for section 2, got %q", last.SectionID)
	}
	if last.Content != "Widgets shall be round. Widgets shall also be smooth." {
		t.Errorf("running header did not merge pages: %q", last.Content)
	}
	if last.StartPage != 3 || last.EndPage != 4 {
		t.Errorf("expected section 2 to span pages 3-4, got %d-%d", last.StartPage, last.EndPage)
	}

	if res.Report.Summary.SectionsMatched != 3 {
		t.Errorf("expected all 3 sections matched, got %d", res.Report.Summary.SectionsMatched)
	}
	// Pages 2-4 are covered; the TOC page is not.
	if res.Report.PageCoverage.PagesCovered != 3 || res.Report.PageCoverage.TotalPages != 4 {
		t.Errorf("unexpected coverage %d/%d", res.Report.PageCoverage.PagesCovered, res.Report.PageCoverage.TotalPages)
	}
	if res.Report.PageCoverage.CoveragePercentage != 75.0 {
		t.Errorf("expected 75.0%%, got %v", res.Report.PageCoverage.CoveragePercentage)
	}
	if res.Report.ValidationStatus != report.StatusFail {
		t.Errorf("expected FAIL at 75%% coverage, got %s", res.Report.ValidationStatus)
	}
}

func TestRun_EmptyDocument(t *testing.T) {
	_, err := Run(nil, "")
	var inv *report.InvalidDocumentError
	if !errors.As(err, &inv) {
		t.Fatalf("expected InvalidDocumentError, got %v", err)
	}
}

func TestRun_DuplicateTOCEntryAborts(t *testing.T) {
	pages := []document.Page{
		{Number: 1, Text: "1 Introduction ........ 2\n1 Introduction ........ 2\n"},
		{Number: 2, Text: "1 Introduction\nbody text\n"},
	}
	_, err := Run(pages, "")
	var dup *toc.DuplicateSectionError
	if !errors.As(err, &dup) {
		t.Fatalf("expected DuplicateSectionError, got %v", err)
	}
	if dup.SectionID != "1" {
		t.Errorf("expected duplicate id 1, got %q", dup.SectionID)
	}
}

func TestRun_OrphanTOCEntryAborts(t *testing.T) {
	pages := []document.Page{
		{Number: 1, Text: "1 Introduction ........ 2\n2.1 Orphan ........ 3\n"},
		{Number: 2, Text: "1 Introduction\nbody text\n"},
	}
	_, err := Run(pages, "")
	var orphan *toc.OrphanSectionError
	if !errors.As(err, &orphan) {
		t.Fatalf("expected OrphanSectionError, got %v", err)
	}
}

func TestRun_MalformedIDsReportedNotFatal(t *testing.T) {
	pages := []document.Page{
		{Number: 1, Text: "1 Introduction ........ 2\n1.0 Bad Zero ........ 2\n"},
		{Number: 2, Text: "1 Introduction\nbody text\n"},
	}
	res, err := Run(pages, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Malformed) != 1 || res.Malformed[0].SectionID != "1.0" {
		t.Errorf("expected malformed id 1.0, got %+v", res.Malformed)
	}
	if len(res.Records) != 1 {
		t.Errorf("expected 1 record, got %d", len(res.Records))
	}
}
