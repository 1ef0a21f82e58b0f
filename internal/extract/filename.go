// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
)

// ParseFilename extracts the conference identifier and year from a title-list
// filename whose base follows <conference>_<year>.<ext>. The split is on the
// last underscore, so conference names containing underscores still parse
// ("test_bed_2023.txt" -> "test_bed", 2023). The conference is returned
// lower-cased.
//
// A missing underscore or non-integer year is a structural precondition
// violation: the caller aborts the run rather than skipping the file.
func ParseFilename(filename string) (conference string, year int, err error) {
	base := filepath.Base(filename)
	stem := strings.TrimSuffix(base, filepath.Ext(base))

	idx := strings.LastIndex(stem, "_")
	if idx < 0 {
		return "", 0, fmt.Errorf("filename %q does not match <conference>_<year>", filename)
	}

	conference = strings.ToLower(stem[:idx])
	yearStr := stem[idx+1:]
	year, err = strconv.Atoi(yearStr)
	if err != nil {
		return "", 0, fmt.Errorf("filename %q has non-integer year segment %q", filename, yearStr)
	}
	return conference, year, nil
}
