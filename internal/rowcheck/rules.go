package rowcheck

import (
	"regexp"

	"github.com/apparelshop/catalog-syncer/internal/platform/models"
)

// skuPattern is the three-part business key format: sku_world_suffix.
var skuPattern = regexp.MustCompile(`^[^_]+_[^_]+_.+`)

// colorTokenPattern is one normalized color word: title-cased, optionally
// hyphenated once (e.g. "Красный", "Сине-Зеленый", "Navy-Blue").
var colorTokenPattern = regexp.MustCompile(`^\p{Lu}\p{Ll}+(?:-\p{Lu}\p{Ll}+)?$`)

var (
	hyphenSpacing = regexp.MustCompile(`\s*-\s*`)
	multiSpace    = regexp.MustCompile(`\s+`)
)

// validGenders is the fixed gender vocabulary of the sheet.
var validGenders = map[string]struct{}{
	"U": {},
	"F": {},
	"M": {},
}

// categoryLabels maps the fixed sheet category labels to catalog categories.
var categoryLabels = map[string]models.Category{
	"Обувь":      models.CategoryShoes,
	"Одежда":     models.CategoryClothing,
	"Аксессуары": models.CategoryAccessories,
}

// optionalEmpty are sheet fields which may legitimately be empty even when
// the column is NOT NULL exempt: free-text description and the optional
// physical dimensions.
var optionalEmpty = map[string]struct{}{
	"description": {},
	"chest_cm":    {},
	"height_cm":   {},
	"width_cm":    {},
	"depth_cm":    {},
	"depth_mm":    {},
}

// subcategoryCode maps the sheet subcategory vocabulary to canonical codes.
var subcategoryCode = map[string]string{
	// Clothing
	"Блузы":              "Blouse",
	"Бомберы":            "Bomber",
	"Брюки":              "Trousers",
	"Верхняя Одежда":     "Outerwear",
	"Джемперы":           "Jumper",
	"Джинсы":             "Jeans",
	"Жилетки":            "Vest",
	"Кардиганы":          "Cardigan",
	"Купальники":         "Swimsuit",
	"Лонгсливы":          "Longsleeve",
	"Майки":              "T_shirt",
	"Нижнее Белье":       "Underwear",
	"Пиджаки":            "Blazer",
	"Платья":             "Dress",
	"Поло":               "Polo",
	"Пуховики":           "Down_jacket",
	"Рубашки":            "Shirt",
	"Свитеры":            "Sweater",
	"Свитшоты":           "Sweatshirt",
	"Спортивные Костюмы": "Sports_suit",
	"Футболки":           "Tee_shirt",
	"Худи":               "Hoodie",
	"Шорты":              "Shorts",
	"Юбки":               "Skirt",
	"Плавательные шорты": "Swimming_shorts",
	// Shoes
	"Балетки":         "Ballet",
	"Босоножки":       "Slingbacks",
	"Ботильоны":       "Ankle_boots",
	"Казаки":          "Cossacks",
	"Кеды":            "Keds",
	"Кроссовки":       "Sneakers",
	"Мокасины":        "Moccasins",
	"Мюли":            "Mules",
	"Резиновая обувь": "Rubber_shoes",
	"Сабо":            "Sabo",
	"Сандалии":        "Sandals",
	"Сапоги":          "Boots",
	"Слипоны":         "Slip_ons",
	"Топсайдеры":      "Topsiders",
	"Туфли":           "Shoes",
	"Шлепки":          "Flip_flops",
	"Эспадрильи":      "Espadrilles",
	// Accessories
	"Головные Уборы": "Headwear",
	"Очки":           "Glasses",
	"Ремни":          "Belts",
	"Сумки":          "Bags",
	"Рюкзаки":        "Backpacks",
	"Кошельки":       "Wallets",
	"Платки":         "Handkerchiefs",
	"Украшения":      "Decorations",
	"Часы":           "Watch",
	"Шарфы":          "Scarves",
}

// SubcategoryCode returns the canonical code of a sheet subcategory label.
func SubcategoryCode(label string) (string, bool) {
	code, ok := subcategoryCode[label]
	return code, ok
}

// CategoryFromLabel returns the catalog category of a sheet category label.
func CategoryFromLabel(label string) (models.Category, bool) {
	category, ok := categoryLabels[label]
	return category, ok
}
