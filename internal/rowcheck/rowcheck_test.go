package rowcheck_test

import (
	"strings"
	"testing"

	"github.com/apparelshop/catalog-syncer/internal/platform/models"
	"github.com/apparelshop/catalog-syncer/internal/platform/models/modelstesting"
	"github.com/apparelshop/catalog-syncer/internal/rowcheck"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUniValidateRow(t *testing.T) {
	validator := mustValidator(t, models.CategoryShoes)

	row := modelstesting.FakeRow(models.CategoryShoes)
	record, errs := validator.ValidateRow(row)

	require.Empty(t, errs, "shouldn't return any errors")
	require.NotNil(t, record, "should return record")

	assert.Equal(t, row.Get("variant_sku"), record.VariantSKU, "should keep business key")
	assert.Equal(t, row.Get("sku")+"_"+row.Get("world_sku"), record.ColorSKU, "should derive color_sku")
	assert.False(t, record.Tombstone, "shouldn't be a deletion signal")
	assert.Empty(t, record.Corrections, "shouldn't need corrections")

	assert.Equal(t, "Sneakers", record.Values["subcategory"].Text, "should store canonical subcategory code")
	assert.Equal(t, int32(1990), record.Values["price"].Int, "should convert integer fields")
	assert.True(t, decimal.NewFromFloat(38.5).Equal(record.Values["size_label"].Dec), "should convert decimal fields")
	assert.Equal(t, "Белый", record.Values["color"].Text, "should keep normalized color")
}

func TestUniValidateRowCommaDecimal(t *testing.T) {
	validator := mustValidator(t, models.CategoryShoes)

	row := modelstesting.FakeRow(models.CategoryShoes, func(r *models.Row) {
		r.Fields["size_label"] = "38,5"
	})
	record, errs := validator.ValidateRow(row)

	require.Empty(t, errs, "shouldn't return any errors")
	assert.True(t, decimal.NewFromFloat(38.5).Equal(record.Values["size_label"].Dec),
		"comma separator should parse as decimal point")
}

func TestUniValidateRowTombstone(t *testing.T) {
	validator := mustValidator(t, models.CategoryShoes)

	row := modelstesting.FakeRow(models.CategoryShoes, func(r *models.Row) {
		variant := r.Fields["variant_sku"]
		for field := range r.Fields {
			r.Fields[field] = ""
		}
		r.Fields["variant_sku"] = variant
	})
	record, errs := validator.ValidateRow(row)

	require.Empty(t, errs, "shouldn't return any errors")
	require.NotNil(t, record, "should return record")
	assert.True(t, record.Tombstone, "should mark row as deletion signal")
	assert.Empty(t, record.Values, "tombstone shouldn't carry values")
}

func TestUniValidateRowColorCorrection(t *testing.T) {
	validator := mustValidator(t, models.CategoryShoes)

	row := modelstesting.FakeRow(models.CategoryShoes, func(r *models.Row) {
		r.Fields["color"] = "белый,ЧЕРНЫЙ"
	})
	record, errs := validator.ValidateRow(row)

	require.Empty(t, errs, "shouldn't return any errors")
	assert.Equal(t, "Белый, Черный", record.Values["color"].Text, "should autocorrect color")
	require.Len(t, record.Corrections, 1, "should attach correction message")
	assert.Contains(t, record.Corrections[0], "autocorrected", "correction should be informational")
}

func TestUniValidateRowErrors(t *testing.T) {
	tests := map[string]struct {
		modify      func(r *models.Row)
		wantMessage string
	}{
		"invalid key format": {
			modify:      func(r *models.Row) { r.Fields["variant_sku"] = "badkey" },
			wantMessage: "invalid variant_sku format",
		},
		"unknown gender": {
			modify:      func(r *models.Row) { r.Fields["gender"] = "X" },
			wantMessage: "invalid gender 'X'",
		},
		"unknown category": {
			modify:      func(r *models.Row) { r.Fields["category"] = "Мебель" },
			wantMessage: "invalid category",
		},
		"category of another sheet": {
			modify:      func(r *models.Row) { r.Fields["category"] = "Одежда" },
			wantMessage: "doesn't belong to this sheet",
		},
		"unknown subcategory": {
			modify:      func(r *models.Row) { r.Fields["subcategory"] = "Кепки" },
			wantMessage: "invalid subcategory",
		},
		"missing required field": {
			modify:      func(r *models.Row) { r.Fields["brand"] = "" },
			wantMessage: "field 'brand' must not be empty",
		},
		"negative integer": {
			modify:      func(r *models.Row) { r.Fields["price"] = "-10" },
			wantMessage: "invalid integer price='-10'",
		},
		"malformed decimal": {
			modify:      func(r *models.Row) { r.Fields["size_label"] = "12.5.3" },
			wantMessage: "invalid decimal size_label='12.5.3'",
		},
		"numeric overflow": {
			modify:      func(r *models.Row) { r.Fields["size_label"] = "1234.5" },
			wantMessage: "exceeds numeric(4,1)",
		},
		"value too long": {
			modify:      func(r *models.Row) { r.Fields["name"] = strings.Repeat("a", 101) },
			wantMessage: "field 'name' is too long (101 > 100)",
		},
		"invalid color": {
			modify:      func(r *models.Row) { r.Fields["color"] = "123" },
			wantMessage: "invalid color format",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			validator := mustValidator(t, models.CategoryShoes)

			row := modelstesting.FakeRow(models.CategoryShoes, tt.modify)
			record, errs := validator.ValidateRow(row)

			assert.Nil(t, record, "shouldn't return record")
			require.NotEmpty(t, errs, "should return errors")
			assert.Contains(t, strings.Join(errs, "; "), tt.wantMessage, "should return correct message")
		})
	}
}

func TestUniValidateRowEmptyOptionalFields(t *testing.T) {
	validator := mustValidator(t, models.CategoryShoes)

	row := modelstesting.FakeRow(models.CategoryShoes, func(r *models.Row) {
		r.Fields["description"] = ""
		r.Fields["depth_mm"] = ""
	})
	record, errs := validator.ValidateRow(row)

	require.Empty(t, errs, "optional fields may be empty")
	assert.False(t, record.Values["description"].Valid, "empty description should be null")
	assert.False(t, record.Values["depth_mm"].Valid, "empty depth_mm should be null")
}

func TestUniValidateColor(t *testing.T) {
	tests := map[string]struct {
		input         string
		wantOK        bool
		wantCorrected string
		wantCorrMsg   bool
	}{
		"already normalized":  {input: "Белый", wantOK: true, wantCorrected: "Белый"},
		"lowercase":           {input: "белый", wantOK: true, wantCorrected: "Белый", wantCorrMsg: true},
		"list with spacing":   {input: "белый ,  черный", wantOK: true, wantCorrected: "Белый, Черный", wantCorrMsg: true},
		"hyphenated":          {input: "сине - зеленый", wantOK: true, wantCorrected: "Сине-Зеленый", wantCorrMsg: true},
		"digits rejected":     {input: "123", wantOK: false},
		"empty entry":         {input: "Белый,,Черный", wantOK: false},
		"underscore rejected": {input: "бе_лый", wantOK: false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			ok, corrected, message := rowcheck.ValidateColor(tt.input)

			require.Equal(t, tt.wantOK, ok, "should accept or reject correctly")
			if !tt.wantOK {
				assert.NotEmpty(t, message, "rejection should carry a message")
				return
			}

			assert.Equal(t, tt.wantCorrected, corrected, "should return corrected value")
			if tt.wantCorrMsg {
				assert.Contains(t, message, "autocorrected", "should report the correction")
			} else {
				assert.Empty(t, message, "shouldn't report any correction")
			}
		})
	}
}

func mustValidator(t *testing.T, category models.Category) *rowcheck.Validator {
	t.Helper()

	validator, err := rowcheck.NewValidator(category)
	require.NoError(t, err, "can't build validator")

	return validator
}
