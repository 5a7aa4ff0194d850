package storage

import (
	"github.com/apparelshop/catalog-syncer/internal/platform/models"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	pgmodels "github.com/apparelshop/catalog-syncer/internal/platform/storage/gen/postgres/public/model"
)

//go:generate make -C ../../../ generate-db

// Field value readers. The validator guarantees required fields are present,
// so missing required values read as zero values and surface as constraint
// misses at apply time instead of panics.

func textOf(values map[string]models.FieldValue, name string) string {
	return values[name].Text
}

func textPtrOf(values map[string]models.FieldValue, name string) *string {
	value, ok := values[name]
	if !ok || !value.Valid {
		return nil
	}
	return lo.ToPtr(value.Text)
}

func intOf(values map[string]models.FieldValue, name string) int32 {
	return values[name].Int
}

func floatOf(values map[string]models.FieldValue, name string) float64 {
	return values[name].Dec.InexactFloat64()
}

func floatPtrOf(values map[string]models.FieldValue, name string) *float64 {
	value, ok := values[name]
	if !ok || !value.Valid {
		return nil
	}
	return lo.ToPtr(value.Dec.InexactFloat64())
}

func toDBShoes(record *models.CatalogRecord) *pgmodels.Shoes {
	return &pgmodels.Shoes{
		ID:           record.ID,
		VariantSku:   record.VariantSKU,
		ColorSku:     lo.ToPtr(record.ColorSKU),
		WorldSku:     textOf(record.Values, "world_sku"),
		Sku:          textOf(record.Values, "sku"),
		Name:         textOf(record.Values, "name"),
		Gender:       textOf(record.Values, "gender"),
		Category:     textOf(record.Values, "category"),
		Subcategory:  textOf(record.Values, "subcategory"),
		Brand:        textOf(record.Values, "brand"),
		Description:  textPtrOf(record.Values, "description"),
		Material:     textOf(record.Values, "material"),
		Color:        textOf(record.Values, "color"),
		SizeCategory: intOf(record.Values, "size_category"),
		Price:        intOf(record.Values, "price"),
		CountInStock: intOf(record.Values, "count_in_stock"),
		CountImages:  intOf(record.Values, "count_images"),
		CountSales:   record.CountSales,
		SizeLabel:    floatOf(record.Values, "size_label"),
		DepthMm:      floatPtrOf(record.Values, "depth_mm"),
		CreatedAt:    record.CreatedAt,
		UpdatedAt:    record.UpdatedAt,
	}
}

func toDBClothing(record *models.CatalogRecord) *pgmodels.Clothing {
	return &pgmodels.Clothing{
		ID:           record.ID,
		VariantSku:   record.VariantSKU,
		ColorSku:     lo.ToPtr(record.ColorSKU),
		WorldSku:     textOf(record.Values, "world_sku"),
		Sku:          textOf(record.Values, "sku"),
		Name:         textOf(record.Values, "name"),
		Gender:       textOf(record.Values, "gender"),
		Category:     textOf(record.Values, "category"),
		Subcategory:  textOf(record.Values, "subcategory"),
		Brand:        textOf(record.Values, "brand"),
		Description:  textPtrOf(record.Values, "description"),
		Material:     textOf(record.Values, "material"),
		Color:        textOf(record.Values, "color"),
		SizeCategory: intOf(record.Values, "size_category"),
		Price:        intOf(record.Values, "price"),
		CountInStock: intOf(record.Values, "count_in_stock"),
		CountImages:  intOf(record.Values, "count_images"),
		CountSales:   record.CountSales,
		SizeLabel:    textOf(record.Values, "size_label"),
		ChestCm:      floatPtrOf(record.Values, "chest_cm"),
		HeightCm:     floatPtrOf(record.Values, "height_cm"),
		CreatedAt:    record.CreatedAt,
		UpdatedAt:    record.UpdatedAt,
	}
}

func toDBAccessories(record *models.CatalogRecord) *pgmodels.Accessories {
	return &pgmodels.Accessories{
		ID:           record.ID,
		VariantSku:   record.VariantSKU,
		ColorSku:     lo.ToPtr(record.ColorSKU),
		WorldSku:     textOf(record.Values, "world_sku"),
		Sku:          textOf(record.Values, "sku"),
		Name:         textOf(record.Values, "name"),
		Gender:       textOf(record.Values, "gender"),
		Category:     textOf(record.Values, "category"),
		Subcategory:  textOf(record.Values, "subcategory"),
		Brand:        textOf(record.Values, "brand"),
		Description:  textPtrOf(record.Values, "description"),
		Material:     textOf(record.Values, "material"),
		Color:        textOf(record.Values, "color"),
		SizeCategory: intOf(record.Values, "size_category"),
		Price:        intOf(record.Values, "price"),
		CountInStock: intOf(record.Values, "count_in_stock"),
		CountImages:  intOf(record.Values, "count_images"),
		CountSales:   record.CountSales,
		SizeLabel:    textOf(record.Values, "size_label"),
		WidthCm:      floatPtrOf(record.Values, "width_cm"),
		HeightCm:     floatPtrOf(record.Values, "height_cm"),
		DepthCm:      floatPtrOf(record.Values, "depth_cm"),
		CreatedAt:    record.CreatedAt,
		UpdatedAt:    record.UpdatedAt,
	}
}

func commonValues(
	worldSku, sku, name, gender, category, subcategory, brand, material, color string,
	description *string,
	sizeCategory, price, countInStock, countImages int32,
) map[string]models.FieldValue {
	values := map[string]models.FieldValue{
		"world_sku":      models.TextValue(worldSku),
		"sku":            models.TextValue(sku),
		"name":           models.TextValue(name),
		"gender":         models.TextValue(gender),
		"category":       models.TextValue(category),
		"subcategory":    models.TextValue(subcategory),
		"brand":          models.TextValue(brand),
		"material":       models.TextValue(material),
		"color":          models.TextValue(color),
		"size_category":  models.IntValue(sizeCategory),
		"price":          models.IntValue(price),
		"count_in_stock": models.IntValue(countInStock),
		"count_images":   models.IntValue(countImages),
	}
	values["description"] = textValueOrNull(description)
	return values
}

func textValueOrNull(value *string) models.FieldValue {
	if value == nil {
		return models.NullValue(models.KindText)
	}
	return models.TextValue(*value)
}

func decimalValueOrNull(value *float64) models.FieldValue {
	if value == nil {
		return models.NullValue(models.KindDecimal)
	}
	return models.DecimalValue(decimal.NewFromFloat(*value))
}

func fromDBShoes(dbRecord *pgmodels.Shoes) *models.CatalogRecord {
	values := commonValues(
		dbRecord.WorldSku, dbRecord.Sku, dbRecord.Name, dbRecord.Gender,
		dbRecord.Category, dbRecord.Subcategory, dbRecord.Brand,
		dbRecord.Material, dbRecord.Color, dbRecord.Description,
		dbRecord.SizeCategory, dbRecord.Price, dbRecord.CountInStock, dbRecord.CountImages,
	)
	values["size_label"] = models.DecimalValue(decimal.NewFromFloat(dbRecord.SizeLabel))
	values["depth_mm"] = decimalValueOrNull(dbRecord.DepthMm)

	return &models.CatalogRecord{
		ID:         dbRecord.ID,
		Category:   models.CategoryShoes,
		VariantSKU: dbRecord.VariantSku,
		ColorSKU:   lo.FromPtr(dbRecord.ColorSku),
		Values:     values,
		CountSales: dbRecord.CountSales,
		CreatedAt:  dbRecord.CreatedAt,
		UpdatedAt:  dbRecord.UpdatedAt,
	}
}

func fromDBClothing(dbRecord *pgmodels.Clothing) *models.CatalogRecord {
	values := commonValues(
		dbRecord.WorldSku, dbRecord.Sku, dbRecord.Name, dbRecord.Gender,
		dbRecord.Category, dbRecord.Subcategory, dbRecord.Brand,
		dbRecord.Material, dbRecord.Color, dbRecord.Description,
		dbRecord.SizeCategory, dbRecord.Price, dbRecord.CountInStock, dbRecord.CountImages,
	)
	values["size_label"] = models.TextValue(dbRecord.SizeLabel)
	values["chest_cm"] = decimalValueOrNull(dbRecord.ChestCm)
	values["height_cm"] = decimalValueOrNull(dbRecord.HeightCm)

	return &models.CatalogRecord{
		ID:         dbRecord.ID,
		Category:   models.CategoryClothing,
		VariantSKU: dbRecord.VariantSku,
		ColorSKU:   lo.FromPtr(dbRecord.ColorSku),
		Values:     values,
		CountSales: dbRecord.CountSales,
		CreatedAt:  dbRecord.CreatedAt,
		UpdatedAt:  dbRecord.UpdatedAt,
	}
}

func fromDBAccessories(dbRecord *pgmodels.Accessories) *models.CatalogRecord {
	values := commonValues(
		dbRecord.WorldSku, dbRecord.Sku, dbRecord.Name, dbRecord.Gender,
		dbRecord.Category, dbRecord.Subcategory, dbRecord.Brand,
		dbRecord.Material, dbRecord.Color, dbRecord.Description,
		dbRecord.SizeCategory, dbRecord.Price, dbRecord.CountInStock, dbRecord.CountImages,
	)
	values["size_label"] = models.TextValue(dbRecord.SizeLabel)
	values["width_cm"] = decimalValueOrNull(dbRecord.WidthCm)
	values["height_cm"] = decimalValueOrNull(dbRecord.HeightCm)
	values["depth_cm"] = decimalValueOrNull(dbRecord.DepthCm)

	return &models.CatalogRecord{
		ID:         dbRecord.ID,
		Category:   models.CategoryAccessories,
		VariantSKU: dbRecord.VariantSku,
		ColorSKU:   lo.FromPtr(dbRecord.ColorSku),
		Values:     values,
		CountSales: dbRecord.CountSales,
		CreatedAt:  dbRecord.CreatedAt,
		UpdatedAt:  dbRecord.UpdatedAt,
	}
}

func toDBChangeLog(entry *models.ChangeEntry) *pgmodels.ChangeLogs {
	return &pgmodels.ChangeLogs{
		AuthorID:    entry.AuthorID,
		AuthorName:  entry.AuthorName,
		ActionType:  entry.ActionType,
		Description: entry.Description,
		Timestamp:   entry.Timestamp,
	}
}
