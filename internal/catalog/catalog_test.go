// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/benchmark-catalog/internal/dataset"
	"github.com/pdiddy/benchmark-catalog/pkg/types"
)

func testRecords() []types.PaperRecord {
	return []types.PaperRecord{
		{ID: 1, Title: "Alpha Benchmark", Conference: "ICML", Year: 2023, Domain: "AI/ML",
			Category: "benchmark", MatchedKeywords: []string{"benchmark"}},
		{ID: 2, Title: "Beta Evaluation", Conference: "ICML", Year: 2023, Domain: "AI/ML",
			Category: "", MatchedKeywords: []string{"evaluation"}},
		{ID: 3, Title: "Vision Dataset", Conference: "CVPR", Year: 2024, Domain: "CV",
			Category: "dataset", MatchedKeywords: []string{"benchmark", "dataset"}},
	}
}

func newTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	dir := t.TempDir()
	store, err := NewStore(types.CatalogConfig{DataDir: dir})
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	path := filepath.Join(dir, "papers.json")
	require.NoError(t, dataset.Write(path, testRecords()))

	n, err := store.Load(context.Background(), path)
	require.NoError(t, err)
	require.Equal(t, 3, n)
	return store, dir
}

func TestLoadReplacesContents(t *testing.T) {
	store, dir := newTestStore(t)
	ctx := context.Background()

	// Loading a smaller dataset must replace, not append.
	path := filepath.Join(dir, "small.json")
	require.NoError(t, dataset.Write(path, testRecords()[:1]))
	n, err := store.Load(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	stats, err := store.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Total)
}

func TestLoadMissingDatasetFails(t *testing.T) {
	store, dir := newTestStore(t)
	_, err := store.Load(context.Background(), filepath.Join(dir, "absent.json"))
	require.Error(t, err)
	assert.True(t, os.IsNotExist(err))
}

func TestQueryFilters(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	tests := []struct {
		name       string
		opts       QueryOptions
		wantTitles []string
	}{
		{
			name:       "no filters returns all in canonical order",
			opts:       QueryOptions{},
			wantTitles: []string{"Alpha Benchmark", "Beta Evaluation", "Vision Dataset"},
		},
		{
			name:       "by domain",
			opts:       QueryOptions{Domain: "CV"},
			wantTitles: []string{"Vision Dataset"},
		},
		{
			name:       "by conference and year",
			opts:       QueryOptions{Conference: "ICML", Year: 2023},
			wantTitles: []string{"Alpha Benchmark", "Beta Evaluation"},
		},
		{
			name:       "by category",
			opts:       QueryOptions{Category: "dataset"},
			wantTitles: []string{"Vision Dataset"},
		},
		{
			name:       "uncategorized",
			opts:       QueryOptions{Uncategorized: true},
			wantTitles: []string{"Beta Evaluation"},
		},
		{
			name:       "by keyword membership",
			opts:       QueryOptions{Keyword: "benchmark"},
			wantTitles: []string{"Alpha Benchmark", "Vision Dataset"},
		},
		{
			name:       "limit",
			opts:       QueryOptions{MaxResults: 2},
			wantTitles: []string{"Alpha Benchmark", "Beta Evaluation"},
		},
		{
			name:       "no match",
			opts:       QueryOptions{Domain: "SE"},
			wantTitles: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results, err := store.Query(ctx, tt.opts)
			require.NoError(t, err)
			var titles []string
			for _, r := range results {
				titles = append(titles, r.Title)
			}
			assert.Equal(t, tt.wantTitles, titles)
		})
	}
}

func TestQueryRoundTripsRecords(t *testing.T) {
	store, _ := newTestStore(t)

	results, err := store.Query(context.Background(), QueryOptions{Domain: "CV"})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, testRecords()[2], results[0])
}

func TestStats(t *testing.T) {
	store, _ := newTestStore(t)

	stats, err := store.Stats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, map[string]int{"AI/ML": 2, "CV": 1}, stats.ByDomain)
	assert.Equal(t, map[string]int{"ICML_2023": 2, "CVPR_2024": 1}, stats.ByConference)
	assert.Equal(t, map[string]int{"benchmark": 1, "dataset": 1}, stats.ByCategory)
	assert.Equal(t, 1, stats.Uncategorized)
}

func TestExport(t *testing.T) {
	store, dir := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.ExportYAML(ctx, QueryOptions{}))
	require.NoError(t, store.ExportJSON(ctx, QueryOptions{Domain: "AI/ML"}))

	yamlData, err := os.ReadFile(filepath.Join(dir, "index", "export.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(yamlData), "Alpha Benchmark")

	jsonData, err := os.ReadFile(filepath.Join(dir, "index", "export.json"))
	require.NoError(t, err)
	assert.Contains(t, string(jsonData), "Beta Evaluation")
	assert.NotContains(t, string(jsonData), "Vision Dataset")
}
