package writer

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/specdex/specdex/internal/document"
	"github.com/specdex/specdex/internal/report"
)

func TestWriteSections_OneObjectPerLine(t *testing.T) {
	records := []document.SectionRecord{
		{DocTitle: "Spec", SectionID: "1", Title: "Introduction", Page: 5, Level: 1, FullPath: "1 Introduction"},
		{DocTitle: "Spec", SectionID: "1.1", Title: "Scope", Page: 6, Level: 2, ParentID: "1", FullPath: "1.1 Scope"},
	}

	var buf bytes.Buffer
	if err := WriteSections(&buf, records); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}

	var first map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &first); err != nil {
		t.Fatalf("first line is not valid JSON: %v", err)
	}
	if first["section_id"] != "1" {
		t.Errorf("expected section_id 1, got %v", first["section_id"])
	}
	if _, present := first["parent_id"]; present {
		t.Error("top-level record should omit parent_id")
	}

	var second map[string]any
	if err := json.Unmarshal([]byte(lines[1]), &second); err != nil {
		t.Fatalf("second line is not valid JSON: %v", err)
	}
	if second["parent_id"] != "1" {
		t.Errorf("expected parent_id 1, got %v", second["parent_id"])
	}
	if second["full_path"] != "1.1 Scope" {
		t.Errorf("expected full_path %q, got %v", "1.1 Scope", second["full_path"])
	}
}

func TestWriteContent_PairsOnly(t *testing.T) {
	blocks := []document.ContentBlock{
		{SectionID: "1", Content: "intro text", StartPage: 5, EndPage: 6},
	}

	var buf bytes.Buffer
	if err := WriteContent(&buf, blocks); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var line map[string]any
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("not valid JSON: %v", err)
	}
	if len(line) != 2 {
		t.Errorf("content line should carry exactly section_id and content, got %v", line)
	}
	if line["section_id"] != "1" || line["content"] != "intro text" {
		t.Errorf("unexpected pair: %v", line)
	}
}

func TestWriteReport_IndentedJSON(t *testing.T) {
	rep := &report.CoverageReport{
		ValidationStatus: report.StatusPass,
		PageCoverage:     report.PageCoverage{TotalPages: 10, PagesCovered: 10, CoveragePercentage: 100.0},
	}

	var buf bytes.Buffer
	if err := WriteReport(&buf, rep); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasSuffix(buf.String(), "\n") {
		t.Error("report should end with a newline")
	}

	var decoded report.CoverageReport
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("report is not valid JSON: %v", err)
	}
	if decoded.ValidationStatus != report.StatusPass {
		t.Errorf("expected status PASS, got %s", decoded.ValidationStatus)
	}
	if decoded.PageCoverage.TotalPages != 10 {
		t.Errorf("expected 10 total pages, got %d", decoded.PageCoverage.TotalPages)
	}
}

func TestWriteFiles_CreatesDirectories(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "out", SectionsFile)

	records := []document.SectionRecord{{SectionID: "1", Title: "Intro", Page: 1, Level: 1}}
	if err := WriteSectionsFile(path, records); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if !strings.Contains(string(data), `"section_id":"1"`) {
		t.Errorf("unexpected file contents: %s", data)
	}
}
