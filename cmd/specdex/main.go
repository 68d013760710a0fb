package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "specdex",
	Short: "Index section-numbered specification documents",
	Long: `specdex converts a section-numbered specification document into a validated
hierarchical dataset: a table-of-contents tree (sections.jsonl), a body-content
index (content.jsonl), and a coverage report (report.json).`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
