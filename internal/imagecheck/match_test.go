package imagecheck_test

import (
	"testing"

	"github.com/apparelshop/catalog-syncer/internal/imagecheck"
	"github.com/stretchr/testify/assert"
)

func TestUniNearestKey(t *testing.T) {
	known := []string{"alpha_ru", "bravo_ru", "charlie_ru"}

	tests := map[string]struct {
		key       string
		wantMatch string
		wantOK    bool
	}{
		"one substitution":  {key: "alpha_rv", wantMatch: "alpha_ru", wantOK: true},
		"one deletion":      {key: "bravo_r", wantMatch: "bravo_ru", wantOK: true},
		"two edits":         {key: "bravo_", wantMatch: "bravo_ru", wantOK: true},
		"too far":           {key: "zulu_xx", wantOK: false},
		"exact is nearest":  {key: "charlie_ru", wantMatch: "charlie_ru", wantOK: true},
		"empty known list":  {key: "alpha_ru", wantOK: false},
		"empty key too far": {key: "", wantOK: false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			keys := known
			if name == "empty known list" {
				keys = nil
			}

			match, ok := imagecheck.NearestKey(tt.key, keys)

			assert.Equal(t, tt.wantOK, ok, "should report whether a near match exists")
			if tt.wantOK {
				assert.Equal(t, tt.wantMatch, match, "should return nearest key")
			}
		})
	}
}
