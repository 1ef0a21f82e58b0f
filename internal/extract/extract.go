// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extract filters benchmark-related papers out of per-conference
// title lists. Each input file holds one paper title per line; a title is
// kept when at least one vocabulary keyword matches as a whole word.
package extract

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pdiddy/benchmark-catalog/internal/conference"
	"github.com/pdiddy/benchmark-catalog/internal/dataset"
	"github.com/pdiddy/benchmark-catalog/pkg/types"
)

// Summary holds counts from an extraction run.
type Summary struct {
	// Files is the number of title-list files processed.
	Files int

	// TotalTitles counts all non-blank title lines read.
	TotalTitles int

	// Matched counts titles that matched at least one keyword.
	Matched int

	// ByDomain counts matched papers per domain label.
	ByDomain map[string]int

	// ByConference counts matched papers per "CONF_year" key.
	ByConference map[string]int
}

// Run reads every .txt file in cfg.PaperListDir (sorted by filename),
// filters titles through the keyword matcher, sorts and renumbers the
// surviving records, and writes them to cfg.OutputPath. A filename that does
// not parse aborts the whole run: filenames are a structural precondition,
// not user data. Identical titles in different files stay distinct records.
func Run(cfg types.ExtractConfig, w io.Writer) (Summary, error) {
	summary := Summary{
		ByDomain:     make(map[string]int),
		ByConference: make(map[string]int),
	}

	entries, err := os.ReadDir(cfg.PaperListDir)
	if err != nil {
		return summary, fmt.Errorf("reading paper list directory %s: %w", cfg.PaperListDir, err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".txt") {
			continue
		}
		files = append(files, entry.Name())
	}
	sort.Strings(files)

	fmt.Fprintf(w, "Found %d paper list files\n", len(files))

	var records []types.PaperRecord
	for _, name := range files {
		conf, year, err := ParseFilename(name)
		if err != nil {
			return summary, err
		}
		domain := conference.Resolve(conf)

		path := filepath.Join(cfg.PaperListDir, name)
		titles, err := readTitles(path)
		if err != nil {
			return summary, err
		}

		summary.Files++
		summary.TotalTitles += len(titles)

		for _, title := range titles {
			matched := MatchKeywords(title)
			if len(matched) == 0 {
				continue
			}
			summary.Matched++
			summary.ByDomain[domain]++
			summary.ByConference[fmt.Sprintf("%s_%d", strings.ToUpper(conf), year)]++
			records = append(records, types.PaperRecord{
				Title:           title,
				Conference:      strings.ToUpper(conf),
				Year:            year,
				Domain:          domain,
				MatchedKeywords: matched,
			})
		}
	}

	dataset.Sort(records)
	dataset.Renumber(records)

	if err := dataset.Write(cfg.OutputPath, records); err != nil {
		return summary, err
	}

	printSummary(w, cfg.OutputPath, summary)
	return summary, nil
}

// readTitles reads one trimmed title per line, skipping blank lines.
func readTitles(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	var titles []string
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		titles = append(titles, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return titles, nil
}

// printSummary writes the human-facing extraction report. The format is not
// part of the data contract.
func printSummary(w io.Writer, outputPath string, s Summary) {
	fmt.Fprintf(w, "\nTotal titles: %d\n", s.TotalTitles)
	fmt.Fprintf(w, "Matched benchmark keywords: %d\n", s.Matched)
	fmt.Fprintf(w, "Output: %s\n", outputPath)

	fmt.Fprintf(w, "\nBy domain:\n")
	for _, domain := range conference.Domains() {
		if count, ok := s.ByDomain[domain]; ok {
			fmt.Fprintf(w, "  %s: %d\n", domain, count)
		}
	}

	fmt.Fprintf(w, "\nBy conference and year (top %d):\n", topConferences)
	for _, kc := range topCounts(s.ByConference, topConferences) {
		fmt.Fprintf(w, "  %s: %d\n", kc.key, kc.count)
	}
}

const topConferences = 20

type keyCount struct {
	key   string
	count int
}

// topCounts returns the n highest counts, most common first, ties broken by key.
func topCounts(m map[string]int, n int) []keyCount {
	pairs := make([]keyCount, 0, len(m))
	for k, c := range m {
		pairs = append(pairs, keyCount{k, c})
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].count != pairs[j].count {
			return pairs[i].count > pairs[j].count
		}
		return pairs[i].key < pairs[j].key
	})
	if len(pairs) > n {
		pairs = pairs[:n]
	}
	return pairs
}
