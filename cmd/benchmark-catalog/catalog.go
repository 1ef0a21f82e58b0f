// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"

	"github.com/pdiddy/benchmark-catalog/internal/catalog"
	"github.com/pdiddy/benchmark-catalog/pkg/types"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Manage the SQLite catalog of the merged dataset (load, query, stats, export)",
	Long: `Catalog keeps the merged dataset in a local SQLite database under
<data-dir>/index/. Use subcommands to load a dataset file, run structured
queries, print aggregate statistics, or export a subset.`,
}

// --- load subcommand ---

var catalogLoadCmd = &cobra.Command{
	Use:   "load [dataset]",
	Short: "Load a dataset file into the catalog",
	Long: `Load replaces the catalog contents with the records from a dataset file
(default: <data-dir>/papers.json).`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCatalogLoad,
}

func runCatalogLoad(cmd *cobra.Command, args []string) error {
	cfg := catalogConfig(cmd)

	path := filepath.Join(cfg.DataDir, "papers.json")
	if len(args) > 0 {
		path = args[0]
	}

	store, err := catalog.NewStore(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	n, err := store.Load(context.Background(), path)
	if err != nil {
		return err
	}
	fmt.Printf("Loaded %d papers into the catalog\n", n)
	return nil
}

// --- query subcommand ---

var catalogQueryCmd = &cobra.Command{
	Use:   "query",
	Short: "Query the catalog with exact structured filters",
	Long: `Query filters catalog records by domain, conference, year, category, or
matched keyword. Filters are exact matches; results come back in canonical
dataset order. There is no full-text search or ranking.`,
	RunE: runCatalogQuery,
}

func runCatalogQuery(cmd *cobra.Command, args []string) error {
	cfg := catalogConfig(cmd)
	opts := queryOptsFromFlags(cmd)
	if opts.IsEmpty() {
		return fmt.Errorf("filter required: provide --domain, --conference, --year, --category, --uncategorized, or --keyword")
	}

	store, err := catalog.NewStore(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	results, err := store.Query(context.Background(), opts)
	if err != nil {
		return err
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	return formatQueryOutput(results, jsonOutput)
}

func formatQueryOutput(results []types.PaperRecord, jsonOutput bool) error {
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(results)
	}

	if len(results) == 0 {
		fmt.Println("No results found.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-5s  %-8s  %-10s  %-5s  %-14s  %s\n",
		"ID", "Domain", "Conf", "Year", "Category", "Title")
	for _, r := range results {
		category := r.Category
		if category == "" {
			category = "-"
		}
		title := r.Title
		if len(title) > 60 {
			title = title[:57] + "..."
		}
		fmt.Fprintf(os.Stdout, "%-5d  %-8s  %-10s  %-5d  %-14s  %s\n",
			r.ID, r.Domain, r.Conference, r.Year, category, title)
	}

	fmt.Fprintf(os.Stdout, "\n%d results\n", len(results))
	return nil
}

// --- stats subcommand ---

var catalogStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print aggregate catalog statistics",
	RunE:  runCatalogStats,
}

func runCatalogStats(cmd *cobra.Command, args []string) error {
	cfg := catalogConfig(cmd)

	store, err := catalog.NewStore(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	stats, err := store.Stats(context.Background())
	if err != nil {
		return err
	}

	fmt.Printf("Total papers: %d\n", stats.Total)
	printCounts("By domain", stats.ByDomain)
	printCounts("By conference", stats.ByConference)
	printCounts("By category", stats.ByCategory)
	fmt.Printf("\nUncategorized: %d\n", stats.Uncategorized)
	return nil
}

func printCounts(header string, counts map[string]int) {
	fmt.Printf("\n%s:\n", header)
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Printf("  %s: %d\n", k, counts[k])
	}
}

// --- export subcommand ---

var catalogExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the catalog to YAML or JSON",
	Long: `Export writes the catalog (or a filtered subset) to
<data-dir>/index/export.yaml or export.json. Supports the same filter flags
as query.`,
	RunE: runCatalogExport,
}

func runCatalogExport(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")

	cfg := catalogConfig(cmd)
	store, err := catalog.NewStore(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	opts := queryOptsFromFlags(cmd)

	switch format {
	case "yaml", "":
		if err := store.ExportYAML(context.Background(), opts); err != nil {
			return err
		}
		fmt.Printf("Exported to %s/index/export.yaml\n", cfg.DataDir)
	case "json":
		if err := store.ExportJSON(context.Background(), opts); err != nil {
			return err
		}
		fmt.Printf("Exported to %s/index/export.json\n", cfg.DataDir)
	default:
		return fmt.Errorf("unsupported format %q: use yaml or json", format)
	}

	return nil
}

// --- shared helpers ---

func catalogConfig(cmd *cobra.Command) types.CatalogConfig {
	dataDir := stringSetting(cmd, "data-dir", "catalog.data_dir", "data")
	maxResults, _ := cmd.Flags().GetInt("max-results")

	return types.CatalogConfig{
		DataDir:    dataDir,
		MaxResults: maxResults,
	}
}

func queryOptsFromFlags(cmd *cobra.Command) catalog.QueryOptions {
	domain, _ := cmd.Flags().GetString("domain")
	conf, _ := cmd.Flags().GetString("conference")
	year, _ := cmd.Flags().GetInt("year")
	category, _ := cmd.Flags().GetString("category")
	uncategorized, _ := cmd.Flags().GetBool("uncategorized")
	keyword, _ := cmd.Flags().GetString("keyword")
	limit, _ := cmd.Flags().GetInt("limit")

	return catalog.QueryOptions{
		Domain:        domain,
		Conference:    conf,
		Year:          year,
		Category:      category,
		Uncategorized: uncategorized,
		Keyword:       keyword,
		MaxResults:    limit,
	}
}

func init() {
	// Shared flags on the parent command, inherited by subcommands.
	catalogCmd.PersistentFlags().String("data-dir", "data", "base directory for datasets (contains index/)")
	catalogCmd.PersistentFlags().Int("max-results", 20, "default maximum number of query results")

	// Query flags.
	catalogQueryCmd.Flags().String("domain", "", "filter by domain label (e.g. AI/ML)")
	catalogQueryCmd.Flags().String("conference", "", "filter by uppercase conference token")
	catalogQueryCmd.Flags().Int("year", 0, "filter by conference year")
	catalogQueryCmd.Flags().String("category", "", "filter by classification category")
	catalogQueryCmd.Flags().Bool("uncategorized", false, "select records with no category")
	catalogQueryCmd.Flags().String("keyword", "", "filter by matched keyword")
	catalogQueryCmd.Flags().Int("limit", 0, "maximum results (0 = use default, negative = unlimited)")
	catalogQueryCmd.Flags().Bool("json", false, "output results as JSON")

	// Export flags.
	catalogExportCmd.Flags().String("format", "yaml", "export format: yaml or json")
	catalogExportCmd.Flags().String("domain", "", "filter by domain label for partial export")
	catalogExportCmd.Flags().String("conference", "", "filter by conference for partial export")
	catalogExportCmd.Flags().Int("year", 0, "filter by year for partial export")
	catalogExportCmd.Flags().String("category", "", "filter by category for partial export")
	catalogExportCmd.Flags().Bool("uncategorized", false, "export only uncategorized records")
	catalogExportCmd.Flags().String("keyword", "", "filter by matched keyword for partial export")

	// Wire subcommands.
	catalogCmd.AddCommand(catalogLoadCmd)
	catalogCmd.AddCommand(catalogQueryCmd)
	catalogCmd.AddCommand(catalogStatsCmd)
	catalogCmd.AddCommand(catalogExportCmd)

	rootCmd.AddCommand(catalogCmd)
}
