package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/specdex/specdex/internal/config"
	"github.com/specdex/specdex/internal/extractor"
	"github.com/specdex/specdex/internal/writer"
)

// Worker processes a single document job.
type Worker struct {
	log *slog.Logger
	cfg config.Config
}

func NewWorker(log *slog.Logger, cfg config.Config) *Worker {
	return &Worker{log: log, cfg: cfg}
}

// Process runs the full pipeline for a job: extract pages, run the core
// stages, write artifacts. A fatal error in any stage marks the job failed
// before anything is written.
func (w *Worker) Process(ctx context.Context, job *Job) {
	log := w.log.With("job_id", job.ID, "filename", job.Filename)

	// Phase 1: Extract page text.
	job.SetStatus(StatusExtracting, "extracting")
	ext, err := extractor.ForFile(job.Filename)
	if err != nil {
		log.Error("unsupported format", "error", err)
		job.AddError(err.Error())
		job.SetStatus(StatusFailed, "extracting")
		return
	}
	if pdfExt, ok := ext.(*extractor.PDFExtractor); ok {
		pdfExt.FallbackPdftotext = w.cfg.PDFFallbackPdftotext
	}

	pages, err := ext.Extract(bytes.NewReader(job.FileData()), job.Filename)
	if err != nil {
		log.Error("extraction failed", "error", err)
		job.AddError(fmt.Sprintf("extract: %s", err))
		job.SetStatus(StatusFailed, "extracting")
		return
	}
	job.SetPages(len(pages))
	job.SetFileData(nil) // raw bytes no longer needed
	log.Info("extracted pages", "pages", len(pages))

	if ctx.Err() != nil {
		job.AddError(ctx.Err().Error())
		job.SetStatus(StatusFailed, "extracting")
		return
	}

	// Phase 2: Core stages (classify, build hierarchy, scan, validate).
	job.SetStatus(StatusIndexing, "indexing")
	res, err := Run(pages, job.DocTitle)
	if err != nil {
		log.Error("indexing failed", "error", err)
		job.AddError(err.Error())
		job.SetStatus(StatusFailed, "indexing")
		return
	}
	job.SetResult(res)
	if n := len(res.Malformed); n > 0 {
		log.Warn("skipped malformed section ids", "count", n)
	}
	log.Info("indexed document",
		"toc_sections", len(res.Records),
		"content_blocks", len(res.Blocks),
		"coverage_pct", res.Report.PageCoverage.CoveragePercentage,
		"status", res.Report.ValidationStatus,
	)

	// Phase 3: Persist artifacts.
	job.SetStatus(StatusWriting, "writing")
	dir := filepath.Join(w.cfg.OutputDir, job.ID)
	if err := writeArtifacts(dir, res); err != nil {
		log.Error("write failed", "error", err)
		job.AddError(fmt.Sprintf("write: %s", err))
		job.SetStatus(StatusFailed, "writing")
		return
	}
	job.SetOutputDir(dir)
	job.SetStatus(StatusCompleted, "done")
	log.Info("job complete", "output_dir", dir)
}

func writeArtifacts(dir string, res *Result) error {
	if err := writer.WriteSectionsFile(filepath.Join(dir, writer.SectionsFile), res.Records); err != nil {
		return err
	}
	if err := writer.WriteContentFile(filepath.Join(dir, writer.ContentFile), res.Blocks); err != nil {
		return err
	}
	return writer.WriteReportFile(filepath.Join(dir, writer.ReportFile), res.Report)
}
