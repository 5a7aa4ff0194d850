package schema

import "github.com/apparelshop/catalog-syncer/internal/platform/models"

// commonColumns are columns shared by every catalog table.
// The layout mirrors the latest database migrations.
func commonColumns() []Column {
	return []Column{
		{Name: "id", Type: "serial", HasDefault: true},
		{Name: "variant_sku", Type: "varchar(100)"},
		{Name: "color_sku", Type: "varchar(100)", Nullable: true},
		{Name: "world_sku", Type: "varchar(100)"},
		{Name: "sku", Type: "varchar(100)"},
		{Name: "name", Type: "varchar(100)"},
		{Name: "gender", Type: "varchar(100)", Enum: []string{"U", "F", "M"}},
		{Name: "category", Type: "varchar(100)"},
		{Name: "subcategory", Type: "varchar(100)"},
		{Name: "brand", Type: "varchar(100)"},
		{Name: "description", Type: "text", Nullable: true},
		{Name: "material", Type: "varchar(100)"},
		{Name: "color", Type: "varchar(100)"},
		{Name: "size_category", Type: "integer"},
		{Name: "price", Type: "integer"},
		{Name: "count_in_stock", Type: "integer"},
		{Name: "count_images", Type: "integer"},
		{Name: "count_sales", Type: "integer", HasDefault: true},
		{Name: "created_at", Type: "timestamptz", HasDefault: true},
		{Name: "updated_at", Type: "timestamptz", HasDefault: true},
	}
}

// Columns returns the declared column table for category or nil for
// an unknown category.
func Columns(category models.Category) []Column {
	switch category {
	case models.CategoryShoes:
		return append(commonColumns(),
			Column{Name: "size_label", Type: "numeric(4,1)"},
			Column{Name: "depth_mm", Type: "numeric(6,1)", Nullable: true},
		)
	case models.CategoryClothing:
		return append(commonColumns(),
			Column{Name: "size_label", Type: "varchar(100)"},
			Column{Name: "chest_cm", Type: "numeric(5,1)", Nullable: true},
			Column{Name: "height_cm", Type: "numeric(5,1)", Nullable: true},
		)
	case models.CategoryAccessories:
		return append(commonColumns(),
			Column{Name: "size_label", Type: "varchar(100)"},
			Column{Name: "width_cm", Type: "numeric(5,1)", Nullable: true},
			Column{Name: "height_cm", Type: "numeric(5,1)", Nullable: true},
			Column{Name: "depth_cm", Type: "numeric(5,1)", Nullable: true},
		)
	default:
		return nil
	}
}
