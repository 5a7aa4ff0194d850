// Package imagecheck validates category image archives against the expected
// per-key image counts.
package imagecheck

import (
	"archive/zip"
	"bytes"
	"fmt"
	"path"
	"regexp"
	"sort"
	"strconv"

	"github.com/apparelshop/catalog-syncer/internal/platform/models"
)

// namePattern is the image filename grammar: {color_sku}_{index}.{ext}.
var namePattern = regexp.MustCompile(`^(.+)_(\d+)\.(\w+)$`)

// Validate parses the file list of archiveBytes against the filename grammar
// and the expected map (color_sku -> expected image count). It reports
// invalid names, unknown keys (with bounded near-match correction), indices
// out of range, duplicates and missing counts. An unreadable archive is
// rejected wholesale with a single top-level error.
func Validate(category models.Category, archiveBytes []byte, expected map[string]int) *models.ImageReport {
	report := &models.ImageReport{}
	for _, count := range expected {
		report.TotalExpected += count
	}

	archive, err := zip.NewReader(bytes.NewReader(archiveBytes), int64(len(archiveBytes)))
	if err != nil {
		report.Errors = []models.ValidationIssue{{
			Key:      string(category),
			Messages: []string{"invalid archive"},
		}}
		return report
	}

	knownKeys := make([]string, 0, len(expected))
	for key := range expected {
		knownKeys = append(knownKeys, key)
	}
	sort.Strings(knownKeys)

	seenCounts := make(map[string]int, len(expected))
	seenPairs := map[string]struct{}{}

	for _, file := range archive.File {
		if file.FileInfo().IsDir() {
			continue
		}

		filename := path.Base(file.Name)
		report.TotalProcessed++

		if messages := checkEntry(filename, expected, knownKeys, seenCounts, seenPairs); len(messages) > 0 {
			report.Errors = append(report.Errors, models.ValidationIssue{
				Key:      filename,
				Messages: messages,
			})
		}
	}

	for _, key := range knownKeys {
		if missing := expected[key] - seenCounts[key]; missing > 0 {
			report.Errors = append(report.Errors, models.ValidationIssue{
				Key:      key,
				Messages: []string{fmt.Sprintf("missing %d images", missing)},
			})
		}
	}

	return report
}

func checkEntry(
	filename string,
	expected map[string]int,
	knownKeys []string,
	seenCounts map[string]int,
	seenPairs map[string]struct{},
) []string {
	match := namePattern.FindStringSubmatch(filename)
	if match == nil {
		return []string{"invalid name format"}
	}

	key := match[1]
	index, err := strconv.Atoi(match[2])
	if err != nil {
		return []string{"invalid name format"}
	}

	expectedCount, known := expected[key]
	if !known {
		if nearest, ok := NearestKey(key, knownKeys); ok {
			return []string{fmt.Sprintf("unknown key, likely typo of '%s'", nearest)}
		}
		return []string{"unknown key"}
	}

	if index < 1 || index > expectedCount {
		return []string{"index out of range"}
	}

	pair := fmt.Sprintf("%s_%d", key, index)
	if _, ok := seenPairs[pair]; ok {
		return []string{"duplicate image"}
	}
	seenPairs[pair] = struct{}{}
	seenCounts[key]++

	return nil
}
