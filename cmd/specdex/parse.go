package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/specdex/specdex/internal/extractor"
	"github.com/specdex/specdex/internal/pipeline"
	"github.com/specdex/specdex/internal/writer"
)

var (
	parseOutDir string
	parseTitle  string
)

var parseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "Parse one document and write its artifacts",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]

		ext, err := extractor.ForFile(path)
		if err != nil {
			return err
		}

		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()

		pages, err := ext.Extract(f, filepath.Base(path))
		if err != nil {
			return fmt.Errorf("extract %s: %w", path, err)
		}

		title := parseTitle
		if title == "" {
			base := filepath.Base(path)
			title = strings.TrimSuffix(base, filepath.Ext(base))
		}

		res, err := pipeline.Run(pages, title)
		if err != nil {
			return fmt.Errorf("index %s: %w", path, err)
		}

		if err := writer.WriteSectionsFile(filepath.Join(parseOutDir, writer.SectionsFile), res.Records); err != nil {
			return err
		}
		if err := writer.WriteContentFile(filepath.Join(parseOutDir, writer.ContentFile), res.Blocks); err != nil {
			return err
		}
		if err := writer.WriteReportFile(filepath.Join(parseOutDir, writer.ReportFile), res.Report); err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "TOC sections:     %d\n", res.Report.Summary.TotalTOCSections)
		fmt.Fprintf(out, "Content sections: %d\n", res.Report.Summary.TotalContentSections)
		fmt.Fprintf(out, "Matched:          %d\n", res.Report.Summary.SectionsMatched)
		fmt.Fprintf(out, "Page coverage:    %d/%d (%.1f%%)\n",
			res.Report.PageCoverage.PagesCovered,
			res.Report.PageCoverage.TotalPages,
			res.Report.PageCoverage.CoveragePercentage)
		if n := len(res.Malformed); n > 0 {
			fmt.Fprintf(out, "Skipped ids:      %d\n", n)
		}
		fmt.Fprintf(out, "Status:           %s\n", res.Report.ValidationStatus)
		fmt.Fprintf(out, "Artifacts:        %s\n", parseOutDir)
		return nil
	},
}

func init() {
	parseCmd.Flags().StringVarP(&parseOutDir, "out", "o", "output", "Directory for sections.jsonl, content.jsonl and report.json")
	parseCmd.Flags().StringVarP(&parseTitle, "title", "t", "", "Document title carried into the records (defaults to the file name)")
	rootCmd.AddCommand(parseCmd)
}
