package rowcheck_test

import (
	"testing"

	"github.com/apparelshop/catalog-syncer/internal/platform/models"
	"github.com/apparelshop/catalog-syncer/internal/platform/models/modelstesting"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUniValidateSheet(t *testing.T) {
	validator := mustValidator(t, models.CategoryShoes)

	rows := []models.Row{
		modelstesting.FakeRow(models.CategoryShoes, func(r *models.Row) { r.Position = 1 }),
		modelstesting.FakeRow(models.CategoryShoes, func(r *models.Row) { r.Position = 2 }),
	}

	records, issues := validator.ValidateSheet(rows)

	require.Empty(t, issues, "shouldn't return any issues")
	require.Len(t, records, 2, "should return every record")
	assert.Equal(t, 1, records[0].Position, "should keep row positions")
	assert.Equal(t, 2, records[1].Position, "should keep row positions")
}

func TestUniValidateSheetDuplicateKeys(t *testing.T) {
	validator := mustValidator(t, models.CategoryShoes)

	duplicated := modelstesting.FakeRow(models.CategoryShoes, func(r *models.Row) { r.Position = 1 })
	copied := modelstesting.FakeRow(models.CategoryShoes, func(r *models.Row) {
		r.Position = 3
		r.Fields["variant_sku"] = duplicated.Fields["variant_sku"]
	})
	rows := []models.Row{
		duplicated,
		modelstesting.FakeRow(models.CategoryShoes, func(r *models.Row) { r.Position = 2 }),
		copied,
	}

	_, issues := validator.ValidateSheet(rows)

	require.Len(t, issues, 1, "should return one issue")
	assert.Equal(t, duplicated.Get("variant_sku"), issues[0].Key, "issue should be keyed by business key")
	assert.Contains(t, issues[0].Messages[0], "duplicate variant_sku in sheet (rows 1, 3)",
		"should list conflicting row positions")
}

func TestUniValidateSheetInconsistentImageCounts(t *testing.T) {
	validator := mustValidator(t, models.CategoryShoes)

	first := modelstesting.FakeRow(models.CategoryShoes, func(r *models.Row) {
		r.Position = 1
		r.Fields["sku"] = "alpha"
		r.Fields["world_sku"] = "ru"
		r.Fields["variant_sku"] = "alpha_ru_38"
		r.Fields["count_images"] = "3"
	})
	second := modelstesting.FakeRow(models.CategoryShoes, func(r *models.Row) {
		r.Position = 2
		r.Fields["sku"] = "alpha"
		r.Fields["world_sku"] = "ru"
		r.Fields["variant_sku"] = "alpha_ru_39"
		r.Fields["count_images"] = "4"
	})

	_, issues := validator.ValidateSheet([]models.Row{first, second})

	require.Len(t, issues, 2, "every row of the conflicting group should be flagged")
	wantMessage := "inconsistent count_images for color_sku='alpha_ru': 3, 4"
	assert.Equal(t, "alpha_ru_38", issues[0].Key, "should flag first row key")
	assert.Contains(t, issues[0].Messages[0], wantMessage, "should report sorted conflicting values")
	assert.Equal(t, "alpha_ru_39", issues[1].Key, "should flag second row key")
	assert.Contains(t, issues[1].Messages[0], wantMessage, "should report sorted conflicting values")
}

func TestUniValidateSheetPlaceholderKey(t *testing.T) {
	validator := mustValidator(t, models.CategoryShoes)

	rows := []models.Row{
		modelstesting.FakeRow(models.CategoryShoes, func(r *models.Row) {
			r.Position = 1
			r.Fields["variant_sku"] = ""
			r.Fields["sku"] = ""
			r.Fields["world_sku"] = ""
		}),
	}

	records, issues := validator.ValidateSheet(rows)

	assert.Empty(t, records, "shouldn't return any records")
	require.Len(t, issues, 1, "should return one issue")
	assert.Equal(t, "<row 1>", issues[0].Key, "rows without business key should use positional key")
}
