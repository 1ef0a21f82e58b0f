// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the benchmark-catalog CLI.
// The pipeline has two independent stages: extract filters benchmark-related
// papers out of conference title lists, and merge combines classified
// subsets into the final dataset. The catalog subcommand keeps the merged
// dataset queryable in a local SQLite database.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the benchmark-catalog CLI.
var rootCmd = &cobra.Command{
	Use:   "benchmark-catalog",
	Short: "Build a dataset of benchmark-related academic papers",
	Long: `benchmark-catalog extracts benchmark-related papers from per-conference
title lists and merges independently classified subsets into one canonical,
re-numbered dataset.

Each stage is a subcommand: extract reads paper-list files and filters titles
by keyword match; merge concatenates classified datasets, sorts them, and
renumbers them; catalog loads the final dataset into a SQLite index for
structured queries and exports. Classification itself is an external step
operating on the extracted dataset.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./benchmark-catalog.yaml or ~/.config/benchmark-catalog/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("benchmark-catalog")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "benchmark-catalog"))
		}
	}

	viper.SetEnvPrefix("BENCHMARK_CATALOG")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// stringSetting returns the flag value if set, then the viper config value,
// then the default.
func stringSetting(cmd *cobra.Command, flag, key, fallback string) string {
	if cmd.Flags().Changed(flag) {
		v, _ := cmd.Flags().GetString(flag)
		return v
	}
	if viper.IsSet(key) {
		return viper.GetString(key)
	}
	v, _ := cmd.Flags().GetString(flag)
	if v != "" {
		return v
	}
	return fallback
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
