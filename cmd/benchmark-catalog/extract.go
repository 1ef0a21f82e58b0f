// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/benchmark-catalog/internal/extract"
	"github.com/pdiddy/benchmark-catalog/pkg/types"
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Filter benchmark-related papers out of conference title lists",
	Long: `Extract reads every .txt file in the paper-list directory. Each file is
named <conference>_<year>.txt and holds one paper title per line. Titles
matching a benchmark keyword (whole-word, case-insensitive) become records
annotated with conference, year, domain, and the matched keywords; the
collection is sorted, renumbered, and written as an indented JSON dataset.

A filename that does not follow <conference>_<year> aborts the run.`,
	RunE: runExtract,
}

func init() {
	extractCmd.Flags().String("paper-list", "paper-list", "directory of conference title lists")
	extractCmd.Flags().String("output", "data/benchmark_papers_raw.json", "output dataset path")

	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, args []string) error {
	cfg := types.ExtractConfig{
		PaperListDir: stringSetting(cmd, "paper-list", "extract.paper_list_dir", "paper-list"),
		OutputPath:   stringSetting(cmd, "output", "extract.output_path", "data/benchmark_papers_raw.json"),
	}

	_, err := extract.Run(cfg, os.Stdout)
	return err
}
