// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package merge combines independently classified dataset subsets into one
// canonical, re-numbered dataset. Missing inputs are tolerated; malformed
// inputs are fatal.
package merge

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/pdiddy/benchmark-catalog/internal/dataset"
	"github.com/pdiddy/benchmark-catalog/pkg/types"
)

// DefaultInputs is the classified subset list produced by the external
// classifier, merged in this order.
var DefaultInputs = []string{
	"classified_aiml.json",
	"classified_cv.json",
	"classified_nlp.json",
	"classified_se_db.json",
}

// SourceCount reports how many records one input file contributed.
type SourceCount struct {
	Name    string
	Count   int
	Missing bool
}

// CategoryCount is one entry of the category frequency distribution.
type CategoryCount struct {
	Category string
	Count    int
}

// Summary holds the outcome of a merge run.
type Summary struct {
	// Sources lists per-file load counts in input order. A missing file
	// appears with Count 0 and Missing set.
	Sources []SourceCount

	// Total is the size of the merged dataset.
	Total int

	// Categories is the category frequency distribution, most common
	// first, ties broken by name. The empty category is included.
	Categories []CategoryCount

	// Uncategorized counts records whose category is the empty string.
	Uncategorized int

	// OutputBytes is the size of the written output file.
	OutputBytes int64
}

// Run loads each input subset in order, concatenates them preserving each
// file's internal order, applies the canonical sort and renumbering, and
// writes the merged dataset to cfg.OutputPath. A missing input contributes
// zero records and a warning; a malformed input aborts the run with no
// output written.
func Run(cfg types.MergeConfig, w io.Writer) (Summary, error) {
	inputs := cfg.Inputs
	if len(inputs) == 0 {
		inputs = DefaultInputs
	}

	var summary Summary
	var all []types.PaperRecord

	for _, name := range inputs {
		path := name
		if !filepath.IsAbs(path) {
			path = filepath.Join(cfg.DataDir, name)
		}

		records, err := dataset.Read(path)
		if err != nil {
			if os.IsNotExist(err) {
				fmt.Fprintf(w, "warning: %s not found, skipping\n", name)
				summary.Sources = append(summary.Sources, SourceCount{Name: name, Missing: true})
				continue
			}
			return summary, err
		}

		fmt.Fprintf(w, "Loaded %d papers from %s\n", len(records), name)
		summary.Sources = append(summary.Sources, SourceCount{Name: name, Count: len(records)})
		all = append(all, records...)
	}

	dataset.Sort(all)
	dataset.Renumber(all)

	if err := dataset.Write(cfg.OutputPath, all); err != nil {
		return summary, err
	}

	summary.Total = len(all)
	summary.Categories, summary.Uncategorized = categoryDistribution(all)

	if info, err := os.Stat(cfg.OutputPath); err == nil {
		summary.OutputBytes = info.Size()
	}

	printSummary(w, cfg.OutputPath, summary)
	return summary, nil
}

// categoryDistribution counts records per category, most common first with
// ties broken by name. Records with an empty category are included in the
// distribution and counted separately as uncategorized.
func categoryDistribution(records []types.PaperRecord) ([]CategoryCount, int) {
	counts := make(map[string]int)
	uncategorized := 0
	for _, r := range records {
		counts[r.Category]++
		if r.Category == "" {
			uncategorized++
		}
	}

	dist := make([]CategoryCount, 0, len(counts))
	for cat, n := range counts {
		dist = append(dist, CategoryCount{Category: cat, Count: n})
	}
	sort.Slice(dist, func(i, j int) bool {
		if dist[i].Count != dist[j].Count {
			return dist[i].Count > dist[j].Count
		}
		return dist[i].Category < dist[j].Category
	})
	return dist, uncategorized
}

// printSummary writes the human-facing merge report. The format is not part
// of the data contract.
func printSummary(w io.Writer, outputPath string, s Summary) {
	fmt.Fprintf(w, "\nTotal: %d papers\n", s.Total)

	fmt.Fprintf(w, "\nCategory distribution:\n")
	for _, cc := range s.Categories {
		name := cc.Category
		if name == "" {
			name = "(uncategorized)"
		}
		fmt.Fprintf(w, "  %s: %d\n", name, cc.Count)
	}

	fmt.Fprintf(w, "\nUncategorized: %d\n", s.Uncategorized)
	fmt.Fprintf(w, "\nOutput: %s\n", outputPath)
	fmt.Fprintf(w, "File size: %.1f KB\n", float64(s.OutputBytes)/1024)
}
