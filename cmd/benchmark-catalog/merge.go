// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/benchmark-catalog/internal/merge"
	"github.com/pdiddy/benchmark-catalog/pkg/types"
)

var mergeCmd = &cobra.Command{
	Use:   "merge",
	Short: "Merge classified dataset subsets into the final dataset",
	Long: `Merge loads each classified subset in order, concatenates the records,
sorts them by (domain, conference, year, title), renumbers them from 1, and
writes the merged dataset. A missing input file is skipped with a warning; a
malformed one aborts the run with no output written.

Without --input, the default classified subsets are merged:
  classified_aiml.json, classified_cv.json, classified_nlp.json,
  classified_se_db.json (resolved under the data directory).`,
	RunE: runMerge,
}

func init() {
	mergeCmd.Flags().String("data-dir", "data", "base directory for classified inputs and output")
	mergeCmd.Flags().String("output", "data/papers.json", "output dataset path")
	mergeCmd.Flags().StringArray("input", nil, "classified dataset file (repeatable, overrides the default list)")

	rootCmd.AddCommand(mergeCmd)
}

func runMerge(cmd *cobra.Command, args []string) error {
	inputs, _ := cmd.Flags().GetStringArray("input")
	if len(inputs) == 0 && viper.IsSet("merge.inputs") {
		inputs = viper.GetStringSlice("merge.inputs")
	}

	cfg := types.MergeConfig{
		DataDir:    stringSetting(cmd, "data-dir", "merge.data_dir", "data"),
		Inputs:     inputs,
		OutputPath: stringSetting(cmd, "output", "merge.output_path", "data/papers.json"),
	}

	_, err := merge.Run(cfg, os.Stdout)
	return err
}
