package sheet_test

import (
	"strings"
	"testing"

	"github.com/apparelshop/catalog-syncer/internal/platform/models"
	"github.com/apparelshop/catalog-syncer/internal/sheet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUniDecode(t *testing.T) {
	tests := map[string]struct {
		input    string
		wantRows []models.Row
		wantErr  string
	}{
		"ok": {
			input: "variant_sku,name,price\na_b_1,Shoe,1990\nc_d_2,Boot,2490\n",
			wantRows: []models.Row{
				{Position: 1, Fields: map[string]string{"variant_sku": "a_b_1", "name": "Shoe", "price": "1990"}},
				{Position: 2, Fields: map[string]string{"variant_sku": "c_d_2", "name": "Boot", "price": "2490"}},
			},
		},
		"bom header": {
			input: "\ufeffvariant_sku,name\na_b_1,Shoe\n",
			wantRows: []models.Row{
				{Position: 1, Fields: map[string]string{"variant_sku": "a_b_1", "name": "Shoe"}},
			},
		},
		"short row padded with empty fields": {
			input: "variant_sku,name,price\na_b_1\n",
			wantRows: []models.Row{
				{Position: 1, Fields: map[string]string{"variant_sku": "a_b_1", "name": "", "price": ""}},
			},
		},
		"quoted field with comma": {
			input: "variant_sku,color\na_b_1,\"Белый, Черный\"\n",
			wantRows: []models.Row{
				{Position: 1, Fields: map[string]string{"variant_sku": "a_b_1", "color": "Белый, Черный"}},
			},
		},
		"empty input": {
			input:    "",
			wantRows: nil,
		},
		"header only": {
			input:    "variant_sku,name\n",
			wantRows: nil,
		},
		"broken quoting error": {
			input:   "variant_sku,name\na_b_1,\"broken\n",
			wantErr: "can't read sheet row 1",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			rows, err := sheet.Decode(strings.NewReader(tt.input))

			if tt.wantErr != "" {
				require.ErrorContains(t, err, tt.wantErr, "should return decoding error")
				return
			}

			require.NoError(t, err, "shouldn't return any error")
			assert.Equal(t, tt.wantRows, rows, "should return correct rows")
		})
	}
}
