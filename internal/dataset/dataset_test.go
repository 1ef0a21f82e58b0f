// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package dataset

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/benchmark-catalog/pkg/types"
)

func sampleRecords() []types.PaperRecord {
	return []types.PaperRecord{
		{ID: 7, Title: "Zebra Benchmark", Conference: "ICML", Year: 2023, Domain: "AI/ML"},
		{ID: 2, Title: "A Vision Dataset", Conference: "CVPR", Year: 2024, Domain: "CV"},
		{ID: 9, Title: "A Benchmark Study", Conference: "ICML", Year: 2023, Domain: "AI/ML"},
		{ID: 1, Title: "Old Survey", Conference: "ICML", Year: 2022, Domain: "AI/ML"},
		{ID: 4, Title: "Corpus for Parsing", Conference: "ACL", Year: 2023, Domain: "NLP"},
	}
}

func TestSortOrder(t *testing.T) {
	records := sampleRecords()
	Sort(records)

	for i := 1; i < len(records); i++ {
		a, b := records[i-1], records[i]
		if b.Less(a) {
			t.Errorf("records out of order at %d: %+v before %+v", i, a, b)
		}
	}

	// Domain groups first, then conference, then year, then title.
	wantTitles := []string{
		"Old Survey",        // AI/ML ICML 2022
		"A Benchmark Study", // AI/ML ICML 2023
		"Zebra Benchmark",   // AI/ML ICML 2023
		"A Vision Dataset",  // CV CVPR 2024
		"Corpus for Parsing", // NLP ACL 2023
	}
	for i, want := range wantTitles {
		if records[i].Title != want {
			t.Errorf("position %d: got %q, want %q", i, records[i].Title, want)
		}
	}
}

func TestRenumberBijection(t *testing.T) {
	records := sampleRecords()
	Sort(records)
	Renumber(records)

	seen := make(map[int]bool)
	for i, r := range records {
		if r.ID != i+1 {
			t.Errorf("record %d has ID %d, want %d", i, r.ID, i+1)
		}
		if seen[r.ID] {
			t.Errorf("duplicate ID %d", r.ID)
		}
		seen[r.ID] = true
	}
	for id := 1; id <= len(records); id++ {
		if !seen[id] {
			t.Errorf("missing ID %d", id)
		}
	}
}

func TestSortRenumberIdempotent(t *testing.T) {
	first := sampleRecords()
	Sort(first)
	Renumber(first)

	second := make([]types.PaperRecord, len(first))
	copy(second, first)
	Sort(second)
	Renumber(second)

	assert.Equal(t, first, second, "sort+renumber must be idempotent")
}

func TestWriteReadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "papers.json")
	records := []types.PaperRecord{
		{
			ID:              1,
			Title:           "Ein Überblick über Evaluation", // non-ASCII preserved
			Conference:      "ACL",
			Year:            2023,
			Domain:          "NLP",
			MatchedKeywords: []string{"evaluation"},
		},
	}

	require.NoError(t, Write(path, records))

	got, err := Read(path)
	require.NoError(t, err)
	assert.Equal(t, records, got)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Überblick", "non-ASCII must not be escaped")
	assert.Contains(t, string(data), "\n  ", "output must be indented")
}

func TestWriteEmptyDataset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.json")
	require.NoError(t, Write(path, nil))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[]", strings.TrimSpace(string(data)))

	got, err := Read(path)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestWriteLeavesNoTempFileBehind(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "papers.json")
	require.NoError(t, Write(path, sampleRecords()))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "papers.json", entries[0].Name())
}

func TestReadMissingFile(t *testing.T) {
	_, err := Read(filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)
	assert.True(t, os.IsNotExist(err), "missing file must surface os.IsNotExist")
}

func TestReadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := Read(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad.json")
}
