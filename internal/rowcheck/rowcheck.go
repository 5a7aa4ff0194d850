// Package rowcheck validates sheet rows against schema-derived constraints
// and audits whole sheets for cross-row consistency.
package rowcheck

import (
	"fmt"
	"strings"

	"github.com/apparelshop/catalog-syncer/internal/fieldparse"
	"github.com/apparelshop/catalog-syncer/internal/platform/models"
	"github.com/apparelshop/catalog-syncer/internal/schema"
	"github.com/samber/lo"
)

// keyField is the business key column, never part of row data.
const keyField = "variant_sku"

// Validator validates single rows of one category sheet.
type Validator struct {
	category models.Category
	columns  []schema.Column
	cons     *schema.Constraints
}

// NewValidator returns validator for category backed by its introspected
// schema constraints.
func NewValidator(category models.Category) (*Validator, error) {
	cons, err := schema.Introspect(category)
	if err != nil {
		return nil, fmt.Errorf("can't build validator: %w", err)
	}

	return &Validator{
		category: category,
		columns:  schema.Columns(category),
		cons:     cons,
	}, nil
}

// ValidateRow validates one raw row. It returns either a clean typed record,
// or the list of field-level error messages which exclude the row from the
// apply phase. Informational color corrections are attached to the record
// and never returned as errors.
func (v *Validator) ValidateRow(row models.Row) (*models.Record, []string) {
	variant := row.Get(keyField)

	// stage 1: business key format.
	if !skuPattern.MatchString(variant) {
		return nil, []string{fmt.Sprintf("invalid variant_sku format '%s'", variant)}
	}

	// a row with every non-key field empty is a deletion signal.
	if v.isTombstone(row) {
		return &models.Record{
			Position:   row.Position,
			VariantSKU: variant,
			Tombstone:  true,
		}, nil
	}

	// stage 2: fixed vocabulary membership.
	if errs := v.checkVocabulary(row); len(errs) > 0 {
		return nil, errs
	}

	// stage 3: required fields.
	if errs := v.checkRequired(row); len(errs) > 0 {
		return nil, errs
	}

	// stage 4: enumerated columns.
	if errs := v.checkEnums(row); len(errs) > 0 {
		return nil, errs
	}

	// stage 5: typed conversion, collects every failing field.
	values, errs := v.convertFields(row)
	if len(errs) > 0 {
		return nil, errs
	}

	record := &models.Record{
		Position:   row.Position,
		VariantSKU: variant,
		ColorSKU:   values["sku"].Text + "_" + values["world_sku"].Text,
		Values:     values,
	}

	// stage 6: numeric precision and scale emulation.
	if errs := v.checkNumeric(values); len(errs) > 0 {
		return nil, errs
	}

	// stage 7: string lengths, including the derived color_sku.
	if errs := v.checkLengths(variant, record.ColorSKU, values); len(errs) > 0 {
		return nil, errs
	}

	// stage 8: color normalization and autocorrection.
	ok, corrected, message := ValidateColor(row.Get("color"))
	if !ok {
		return nil, []string{message}
	}
	values["color"] = models.TextValue(corrected)
	if message != "" {
		record.Corrections = append(record.Corrections, message)
	}

	return record, nil
}

func (v *Validator) isTombstone(row models.Row) bool {
	for field := range row.Fields {
		if field == keyField {
			continue
		}
		if row.Get(field) != "" {
			return false
		}
	}
	return true
}

func (v *Validator) checkVocabulary(row models.Row) []string {
	var errs []string

	if gender := row.Get("gender"); gender != "" {
		if _, ok := validGenders[gender]; !ok {
			errs = append(errs, fmt.Sprintf("invalid gender '%s'", gender))
		}
	}
	if category, ok := CategoryFromLabel(row.Get("category")); !ok {
		errs = append(errs, fmt.Sprintf("invalid category '%s'", row.Get("category")))
	} else if category != v.category {
		errs = append(errs, fmt.Sprintf("category '%s' doesn't belong to this sheet", row.Get("category")))
	}
	if _, ok := subcategoryCode[row.Get("subcategory")]; !ok {
		errs = append(errs, fmt.Sprintf("invalid subcategory '%s'", row.Get("subcategory")))
	}

	return errs
}

func (v *Validator) checkRequired(row models.Row) []string {
	var errs []string

	for _, col := range v.columns {
		if col.Name == keyField || col.Name == "color_sku" {
			continue
		}
		if _, ok := v.cons.NotNull[col.Name]; !ok {
			continue
		}
		if _, ok := v.cons.HasDefault[col.Name]; ok {
			continue
		}
		if _, ok := optionalEmpty[col.Name]; ok {
			continue
		}
		if row.Get(col.Name) == "" {
			errs = append(errs, fmt.Sprintf("field '%s' must not be empty", col.Name))
		}
	}

	return errs
}

func (v *Validator) checkEnums(row models.Row) []string {
	var errs []string

	for _, col := range v.columns {
		allowed, ok := v.cons.Enum[col.Name]
		if !ok {
			continue
		}
		value := row.Get(col.Name)
		if value == "" {
			continue
		}
		if _, ok := allowed[value]; !ok {
			errs = append(errs, fmt.Sprintf("invalid value '%s' for field '%s'", value, col.Name))
		}
	}

	return errs
}

// sheetManaged reports whether column values come from the sheet.
func (v *Validator) sheetManaged(col schema.Column) bool {
	return col.Name != keyField && col.Name != "color_sku" && !col.HasDefault
}

func (v *Validator) convertFields(row models.Row) (map[string]models.FieldValue, []string) {
	values := make(map[string]models.FieldValue, len(v.columns))
	var errs []string

	for _, col := range v.columns {
		if !v.sheetManaged(col) {
			continue
		}

		raw := row.Get(col.Name)
		kind := v.cons.Kinds[col.Name]

		if raw == "" {
			values[col.Name] = models.NullValue(kind)
			continue
		}

		// subcategories are stored as canonical codes, the vocabulary
		// membership was already checked.
		if col.Name == "subcategory" {
			if code, ok := SubcategoryCode(raw); ok {
				values[col.Name] = models.TextValue(code)
				continue
			}
		}

		switch kind {
		case models.KindInt:
			parsed, err := fieldparse.ParseInt(raw)
			if err != nil || parsed < 0 {
				errs = append(errs, fmt.Sprintf("invalid integer %s='%s'", col.Name, raw))
				continue
			}
			values[col.Name] = models.IntValue(parsed)
		case models.KindDecimal:
			parsed, err := fieldparse.ParseDecimal(raw)
			if err != nil || parsed.IsNegative() {
				errs = append(errs, fmt.Sprintf("invalid decimal %s='%s'", col.Name, raw))
				continue
			}
			values[col.Name] = models.DecimalValue(parsed)
		default:
			values[col.Name] = models.TextValue(fieldparse.NormalizeText(raw))
		}
	}

	return values, errs
}

func (v *Validator) checkNumeric(values map[string]models.FieldValue) []string {
	var errs []string

	for _, col := range v.columns {
		spec, ok := v.cons.Numeric[col.Name]
		if !ok {
			continue
		}
		value, ok := values[col.Name]
		if !ok || !value.Valid {
			continue
		}

		// format to the declared scale, then verify the integer part fits.
		formatted := value.Dec.Abs().StringFixed(int32(spec.Scale))
		intPart, _, _ := strings.Cut(formatted, ".")
		if len(intPart) > spec.Precision-spec.Scale {
			errs = append(errs, fmt.Sprintf(
				"value %s=%s exceeds numeric(%d,%d)",
				col.Name, value.Dec.String(), spec.Precision, spec.Scale,
			))
		}
	}

	return errs
}

func (v *Validator) checkLengths(variant, colorSKU string, values map[string]models.FieldValue) []string {
	var errs []string

	for _, col := range v.columns {
		maxLen, ok := v.cons.MaxLen[col.Name]
		if !ok {
			continue
		}

		var value string
		switch col.Name {
		case keyField:
			value = variant
		case "color_sku":
			value = colorSKU
		default:
			value = values[col.Name].Text
		}

		if length := len([]rune(value)); length > maxLen {
			errs = append(errs, fmt.Sprintf("field '%s' is too long (%d > %d)", col.Name, length, maxLen))
		}
	}

	return errs
}

// ValidateColor validates and autocorrects a comma-separated color list.
// It returns whether the value is acceptable, the corrected value, and an
// informational message when the value was autocorrected (or the error
// message when it was not acceptable).
func ValidateColor(raw string) (bool, string, string) {
	normalized := hyphenSpacing.ReplaceAllString(strings.TrimSpace(raw), "-")
	normalized = multiSpace.ReplaceAllString(normalized, " ")

	parts := strings.Split(normalized, ",")
	corrected := make([]string, 0, len(parts))

	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			return false, "", fmt.Sprintf("empty color entry in '%s'", raw)
		}

		words := lo.Map(strings.Split(part, "-"), func(word string, _ int) string {
			return titleWord(word)
		})
		candidate := strings.Join(words, "-")
		if !colorTokenPattern.MatchString(candidate) {
			return false, "", fmt.Sprintf("invalid color format '%s'", part)
		}
		corrected = append(corrected, candidate)
	}

	result := strings.Join(corrected, ", ")
	if result != raw {
		return true, result, fmt.Sprintf("color '%s' autocorrected to '%s'", raw, result)
	}
	return true, result, ""
}

// titleWord lower-cases word and upper-cases its first rune.
func titleWord(word string) string {
	lower := strings.ToLower(word)
	runes := []rune(lower)
	if len(runes) == 0 {
		return lower
	}
	return strings.ToUpper(string(runes[0])) + string(runes[1:])
}
