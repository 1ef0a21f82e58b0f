// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package dataset reads, writes, and canonically orders PaperRecord
// collections. The on-disk format is an indented UTF-8 JSON array with
// non-ASCII characters preserved literally; both the extraction and merge
// stages share the same sort and renumbering rules.
package dataset

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/pdiddy/benchmark-catalog/pkg/types"
)

// Sort orders records in place by (domain, conference, year, title),
// ascending, with case-sensitive string comparison.
func Sort(records []types.PaperRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Less(records[j])
	})
}

// Renumber assigns IDs 1..N by position. It must run only after the final
// sort; together Sort and Renumber are idempotent.
func Renumber(records []types.PaperRecord) {
	for i := range records {
		records[i].ID = i + 1
	}
}

// Read loads a dataset file. A missing file surfaces the os.IsNotExist
// error unchanged so callers can treat absence as non-fatal; malformed JSON
// is an error carrying the path.
func Read(path string) ([]types.PaperRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var records []types.PaperRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parsing dataset %s: %w", path, err)
	}
	return records, nil
}

// Write serializes records to path as an indented JSON array. The file is
// written to a temporary name in the destination directory and renamed into
// place, so a failed run leaves no partial output. A nil slice writes an
// empty array, not null.
func Write(path string, records []types.PaperRecord) error {
	if records == nil {
		records = []types.PaperRecord{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("marshaling dataset: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}

	tmpFile, err := os.CreateTemp(dir, ".dataset-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	_, writeErr := tmpFile.Write(buf.Bytes())
	closeErr := tmpFile.Close()
	if writeErr != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("writing dataset: %w", writeErr)
	}
	if closeErr != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("closing temp file: %w", closeErr)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}
