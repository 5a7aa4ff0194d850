package imagecheck_test

import (
	"archive/zip"
	"bytes"
	"testing"

	"github.com/apparelshop/catalog-syncer/internal/imagecheck"
	"github.com/apparelshop/catalog-syncer/internal/platform/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUniValidate(t *testing.T) {
	expected := map[string]int{"alpha_ru": 2, "bravo_ru": 1}

	tests := map[string]struct {
		files      []string
		wantIssues map[string][]string
	}{
		"complete archive": {
			files:      []string{"alpha_ru_1.jpg", "alpha_ru_2.jpg", "bravo_ru_1.png"},
			wantIssues: map[string][]string{},
		},
		"invalid name format": {
			files: []string{"alpha_ru_1.jpg", "alpha_ru_2.jpg", "bravo_ru_1.png", "noindex.jpg"},
			wantIssues: map[string][]string{
				"noindex.jpg": {"invalid name format"},
			},
		},
		"unknown key with near match": {
			files: []string{"alpha_ru_1.jpg", "alpha_ru_2.jpg", "bravo_ru_1.png", "alpha_rv_1.jpg"},
			wantIssues: map[string][]string{
				"alpha_rv_1.jpg": {"unknown key, likely typo of 'alpha_ru'"},
			},
		},
		"unknown key without near match": {
			files: []string{"alpha_ru_1.jpg", "alpha_ru_2.jpg", "bravo_ru_1.png", "completely_different_1.jpg"},
			wantIssues: map[string][]string{
				"completely_different_1.jpg": {"unknown key"},
			},
		},
		"index out of range": {
			files: []string{"alpha_ru_1.jpg", "alpha_ru_2.jpg", "bravo_ru_1.png", "bravo_ru_2.png"},
			wantIssues: map[string][]string{
				"bravo_ru_2.png": {"index out of range"},
			},
		},
		"duplicate and missing": {
			files: []string{"alpha_ru_1.jpg", "alpha_ru_1.jpg", "bravo_ru_1.png"},
			wantIssues: map[string][]string{
				"alpha_ru_1.jpg": {"duplicate image"},
				"alpha_ru":       {"missing 1 images"},
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			report := imagecheck.Validate(models.CategoryShoes, fakeArchive(t, tt.files), expected)

			assert.Equal(t, 3, report.TotalExpected, "should sum expected counts")
			assert.Equal(t, len(tt.files), report.TotalProcessed, "should count every archive file")

			got := map[string][]string{}
			for _, issue := range report.Errors {
				got[issue.Key] = issue.Messages
			}
			assert.Equal(t, tt.wantIssues, got, "should report correct issues")
		})
	}
}

func TestUniValidateBrokenArchive(t *testing.T) {
	report := imagecheck.Validate(models.CategoryShoes, []byte("not a zip"), map[string]int{"alpha_ru": 1})

	require.Len(t, report.Errors, 1, "should return single issue")
	assert.Equal(t, string(models.CategoryShoes), report.Errors[0].Key, "issue should be keyed by category")
	assert.Equal(t, []string{"invalid archive"}, report.Errors[0].Messages, "should reject archive wholesale")
	assert.Zero(t, report.TotalProcessed, "shouldn't process any files")
}

func fakeArchive(t *testing.T, files []string) []byte {
	t.Helper()

	var buf bytes.Buffer
	writer := zip.NewWriter(&buf)
	for _, name := range files {
		entry, err := writer.Create(name)
		require.NoError(t, err, "can't create archive entry")
		_, err = entry.Write([]byte("fake image bytes"))
		require.NoError(t, err, "can't write archive entry")
	}
	require.NoError(t, writer.Close(), "can't close archive")

	return buf.Bytes()
}
