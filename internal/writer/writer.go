// Package writer persists the frozen pipeline artifacts: line-delimited JSON
// for the section and content sequences, indented JSON for the report.
package writer

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/specdex/specdex/internal/document"
	"github.com/specdex/specdex/internal/report"
)

// Artifact file names within an output directory.
const (
	SectionsFile = "sections.jsonl"
	ContentFile  = "content.jsonl"
	ReportFile   = "report.json"
)

// WriteSections writes one SectionRecord JSON object per line.
func WriteSections(w io.Writer, records []document.SectionRecord) error {
	enc := json.NewEncoder(w)
	for _, rec := range records {
		if err := enc.Encode(rec); err != nil {
			return fmt.Errorf("encode section %s: %w", rec.SectionID, err)
		}
	}
	return nil
}

// contentLine is the reduced (section_id, content) pair emitted per block.
type contentLine struct {
	SectionID string `json:"section_id"`
	Content   string `json:"content"`
}

// WriteContent writes one (section_id, content) pair per line.
func WriteContent(w io.Writer, blocks []document.ContentBlock) error {
	enc := json.NewEncoder(w)
	for _, b := range blocks {
		if err := enc.Encode(contentLine{SectionID: b.SectionID, Content: b.Content}); err != nil {
			return fmt.Errorf("encode content %s: %w", b.SectionID, err)
		}
	}
	return nil
}

// WriteReport writes the coverage report as a single indented JSON document.
func WriteReport(w io.Writer, rep *report.CoverageReport) error {
	data, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}

// WriteSectionsFile writes the section sequence to path, creating parent
// directories as needed.
func WriteSectionsFile(path string, records []document.SectionRecord) error {
	return writeFile(path, func(w io.Writer) error { return WriteSections(w, records) })
}

// WriteContentFile writes the content sequence to path.
func WriteContentFile(path string, blocks []document.ContentBlock) error {
	return writeFile(path, func(w io.Writer) error { return WriteContent(w, blocks) })
}

// WriteReportFile writes the coverage report to path.
func WriteReportFile(path string, rep *report.CoverageReport) error {
	return writeFile(path, func(w io.Writer) error { return WriteReport(w, rep) })
}

func writeFile(path string, fn func(io.Writer) error) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := fn(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
