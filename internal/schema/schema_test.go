package schema_test

import (
	"testing"

	"github.com/apparelshop/catalog-syncer/internal/platform/models"
	"github.com/apparelshop/catalog-syncer/internal/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUniIntrospect(t *testing.T) {
	tests := map[models.Category]struct {
		wantNumeric map[string]schema.NumericSpec
	}{
		models.CategoryShoes: {
			wantNumeric: map[string]schema.NumericSpec{
				"size_label": {Precision: 4, Scale: 1},
				"depth_mm":   {Precision: 6, Scale: 1},
			},
		},
		models.CategoryClothing: {
			wantNumeric: map[string]schema.NumericSpec{
				"chest_cm":  {Precision: 5, Scale: 1},
				"height_cm": {Precision: 5, Scale: 1},
			},
		},
		models.CategoryAccessories: {
			wantNumeric: map[string]schema.NumericSpec{
				"width_cm":  {Precision: 5, Scale: 1},
				"height_cm": {Precision: 5, Scale: 1},
				"depth_cm":  {Precision: 5, Scale: 1},
			},
		},
	}

	for category, tt := range tests {
		t.Run(string(category), func(t *testing.T) {
			cons, err := schema.Introspect(category)

			require.NoError(t, err, "shouldn't return any error")
			assert.Equal(t, tt.wantNumeric, cons.Numeric, "should derive numeric specs")

			assert.Equal(t, models.KindText, cons.Kinds["name"], "name should be text")
			assert.Equal(t, models.KindInt, cons.Kinds["price"], "price should be integer")
			assert.Equal(t, 100, cons.MaxLen["variant_sku"], "variant_sku should carry varchar limit")
			assert.Contains(t, cons.NotNull, "brand", "brand should be required")
			assert.NotContains(t, cons.NotNull, "description", "description should be nullable")
			assert.Contains(t, cons.HasDefault, "id", "id should be server-assigned")
			assert.Contains(t, cons.HasDefault, "count_sales", "count_sales should be server-assigned")
			assert.Contains(t, cons.Enum["gender"], "U", "gender enum should contain U")
			assert.Len(t, cons.Enum["gender"], 3, "gender enum should have three values")
			assert.True(t, cons.Has("sku"), "sku should be declared")
			assert.False(t, cons.Has("missing"), "unknown column shouldn't be declared")
		})
	}
}

func TestUniIntrospectUnknownCategory(t *testing.T) {
	_, err := schema.Introspect(models.Category("furniture"))

	require.ErrorContains(t, err, "unknown category", "should return unknown category error")
}

func TestUniIntrospectSizeLabelKinds(t *testing.T) {
	shoes, err := schema.Introspect(models.CategoryShoes)
	require.NoError(t, err)

	clothing, err := schema.Introspect(models.CategoryClothing)
	require.NoError(t, err)

	assert.Equal(t, models.KindDecimal, shoes.Kinds["size_label"], "shoes size_label should be decimal")
	assert.Equal(t, models.KindText, clothing.Kinds["size_label"], "clothing size_label should be text")
}
