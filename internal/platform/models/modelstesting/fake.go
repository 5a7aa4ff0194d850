package modelstesting

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/apparelshop/catalog-syncer/internal/platform/models"
	"github.com/go-faker/faker/v4"
	"github.com/shopspring/decimal"
)

var (
	sheetCategoryLabels = map[models.Category]string{
		models.CategoryShoes:       "Обувь",
		models.CategoryClothing:    "Одежда",
		models.CategoryAccessories: "Аксессуары",
	}
	sheetSubcategoryLabels = map[models.Category]string{
		models.CategoryShoes:       "Кроссовки",
		models.CategoryClothing:    "Футболки",
		models.CategoryAccessories: "Сумки",
	}
	subcategoryCodes = map[models.Category]string{
		models.CategoryShoes:       "Sneakers",
		models.CategoryClothing:    "Tee_shirt",
		models.CategoryAccessories: "Bags",
	}
)

// FakeRow returns a raw sheet row with fake data which passes validation
// of category.
func FakeRow(category models.Category, ops ...func(r *models.Row)) models.Row {
	sku := faker.Word()
	worldSKU := faker.Word()

	fields := map[string]string{
		"variant_sku":    fmt.Sprintf("%s_%s_%d", sku, worldSKU, rand.Intn(50)+1),
		"world_sku":      worldSKU,
		"sku":            sku,
		"name":           faker.Word(),
		"gender":         "F",
		"category":       sheetCategoryLabels[category],
		"subcategory":    sheetSubcategoryLabels[category],
		"brand":          faker.Word(),
		"description":    faker.Word(),
		"material":       faker.Word(),
		"color":          "Белый",
		"size_category":  "2",
		"price":          "1990",
		"count_in_stock": "10",
		"count_images":   "3",
	}

	switch category {
	case models.CategoryShoes:
		fields["size_label"] = "38.5"
		fields["depth_mm"] = "120.5"
	case models.CategoryClothing:
		fields["size_label"] = "M"
		fields["chest_cm"] = "96.0"
		fields["height_cm"] = "70.0"
	case models.CategoryAccessories:
		fields["size_label"] = "M"
		fields["width_cm"] = "10.0"
		fields["height_cm"] = "15.0"
		fields["depth_cm"] = "5.0"
	}

	row := models.Row{
		Position: 1,
		Fields:   fields,
	}

	for _, op := range ops {
		op(&row)
	}

	return row
}

// FakeRecord returns a validated record with fake data.
func FakeRecord(category models.Category, ops ...func(r *models.Record)) models.Record {
	sku := faker.Word()
	worldSKU := faker.Word()

	record := models.Record{
		Position:   1,
		VariantSKU: fmt.Sprintf("%s_%s_%d", sku, worldSKU, rand.Intn(50)+1),
		ColorSKU:   sku + "_" + worldSKU,
		Values:     fakeValues(category, sku, worldSKU),
	}

	for _, op := range ops {
		op(&record)
	}

	return record
}

// FakeCatalogRecord returns a persisted catalog record with fake data.
func FakeCatalogRecord(category models.Category, ops ...func(r *models.CatalogRecord)) models.CatalogRecord {
	sku := faker.Word()
	worldSKU := faker.Word()

	record := models.CatalogRecord{
		ID:         rand.Int31(),
		Category:   category,
		VariantSKU: fmt.Sprintf("%s_%s_%d", sku, worldSKU, rand.Intn(50)+1),
		ColorSKU:   sku + "_" + worldSKU,
		Values:     fakeValues(category, sku, worldSKU),
		CountSales: rand.Int31n(100),
		CreatedAt:  time.Now().UTC().Truncate(time.Second),
		UpdatedAt:  time.Now().UTC().Truncate(time.Second),
	}

	for _, op := range ops {
		op(&record)
	}

	return record
}

func fakeValues(category models.Category, sku, worldSKU string) map[string]models.FieldValue {
	values := map[string]models.FieldValue{
		"world_sku":      models.TextValue(worldSKU),
		"sku":            models.TextValue(sku),
		"name":           models.TextValue(faker.Word()),
		"gender":         models.TextValue("F"),
		"category":       models.TextValue(sheetCategoryLabels[category]),
		"subcategory":    models.TextValue(subcategoryCodes[category]),
		"brand":          models.TextValue(faker.Word()),
		"description":    models.TextValue(faker.Word()),
		"material":       models.TextValue(faker.Word()),
		"color":          models.TextValue("Белый"),
		"size_category":  models.IntValue(2),
		"price":          models.IntValue(1990),
		"count_in_stock": models.IntValue(10),
		"count_images":   models.IntValue(3),
	}

	switch category {
	case models.CategoryShoes:
		values["size_label"] = models.DecimalValue(decimal.NewFromFloat(38.5))
		values["depth_mm"] = models.DecimalValue(decimal.NewFromFloat(120.5))
	case models.CategoryClothing:
		values["size_label"] = models.TextValue("M")
		values["chest_cm"] = models.DecimalValue(decimal.NewFromFloat(96))
		values["height_cm"] = models.DecimalValue(decimal.NewFromFloat(70))
	case models.CategoryAccessories:
		values["size_label"] = models.TextValue("M")
		values["width_cm"] = models.DecimalValue(decimal.NewFromFloat(10))
		values["height_cm"] = models.DecimalValue(decimal.NewFromFloat(15))
		values["depth_cm"] = models.DecimalValue(decimal.NewFromFloat(5))
	}

	return values
}
