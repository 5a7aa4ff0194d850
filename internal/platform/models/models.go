package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Category is one of the three fixed catalog categories.
type Category string

// Catalog categories.
const (
	CategoryShoes       Category = "shoes"
	CategoryClothing    Category = "clothing"
	CategoryAccessories Category = "accessories"
)

// Categories returns all catalog categories in stable order.
func Categories() []Category {
	return []Category{CategoryShoes, CategoryClothing, CategoryAccessories}
}

// Kind is type of a catalog field value.
type Kind int

// Field value kinds.
const (
	KindText Kind = iota
	KindInt
	KindDecimal
)

// FieldValue is single typed catalog field value.
// Zero Valid means SQL NULL of the given kind.
type FieldValue struct {
	Kind  Kind
	Valid bool
	Text  string
	Int   int32
	Dec   decimal.Decimal
}

// TextValue returns non-null text value.
func TextValue(s string) FieldValue {
	return FieldValue{Kind: KindText, Valid: true, Text: s}
}

// IntValue returns non-null integer value.
func IntValue(v int32) FieldValue {
	return FieldValue{Kind: KindInt, Valid: true, Int: v}
}

// DecimalValue returns non-null decimal value.
func DecimalValue(d decimal.Decimal) FieldValue {
	return FieldValue{Kind: KindDecimal, Valid: true, Dec: d}
}

// NullValue returns null value of provided kind.
func NullValue(kind Kind) FieldValue {
	return FieldValue{Kind: kind}
}

// Equal reports whether two values are the same typed value.
// Decimals compare numerically, so 12.5 equals 12.50.
func (v FieldValue) Equal(other FieldValue) bool {
	if v.Kind != other.Kind || v.Valid != other.Valid {
		return false
	}
	if !v.Valid {
		return true
	}
	switch v.Kind {
	case KindInt:
		return v.Int == other.Int
	case KindDecimal:
		return v.Dec.Equal(other.Dec)
	default:
		return v.Text == other.Text
	}
}

// Row is one raw sheet row. Field values are kept as received, Get trims them.
type Row struct {
	Position int // 1-based position in the sheet
	Fields   map[string]string
}

// Get returns trimmed value of field or empty string.
func (r Row) Get(field string) string {
	return strings.TrimSpace(r.Fields[field])
}

// Record is one validated sheet row ready for reconciliation.
type Record struct {
	Position   int
	VariantSKU string
	ColorSKU   string
	// Tombstone marks a row with every non-key field empty,
	// which is a deletion signal for the matching catalog record.
	Tombstone bool
	// Values holds typed values keyed by column name.
	Values map[string]FieldValue
	// Corrections are informational messages (e.g. color autocorrection)
	// which do not exclude the row from the apply phase.
	Corrections []string
}

// CatalogRecord is one persisted sellable variant.
type CatalogRecord struct {
	ID         int32
	Category   Category
	VariantSKU string
	ColorSKU   string
	// Values holds typed values of all sheet-managed columns keyed by column name.
	Values map[string]FieldValue
	// CountSales is server-managed and survives sheet imports untouched.
	CountSales int32
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// ValidationIssue is list of diagnostic messages attached to one business key.
type ValidationIssue struct {
	Key      string   `json:"variant_sku"`
	Messages []string `json:"messages"`
}

// SheetErrors is validation outcome of one category sheet.
type SheetErrors struct {
	TotalRows int               `json:"total_rows"`
	Errors    []ValidationIssue `json:"errors"`
}

// SyncReport is result of reconciling one category sheet.
type SyncReport struct {
	Added       int      `json:"added"`
	Updated     int      `json:"updated"`
	Deleted     int      `json:"deleted"`
	Warnings    int      `json:"warnings"`
	WarningKeys []string `json:"warning_keys,omitempty"`
}

// ImageReport is validation outcome of one category image archive.
type ImageReport struct {
	Errors         []ValidationIssue `json:"errors"`
	TotalExpected  int               `json:"total_expected"`
	TotalProcessed int               `json:"total_processed"`
}

// ImageSyncReport is result of syncing one category image archive
// into object storage.
type ImageSyncReport struct {
	Added    int `json:"added"`
	Replaced int `json:"replaced"`
	Deleted  int `json:"deleted"`
	Warnings int `json:"warnings"`
}

// SyncResult is aggregate result of one sync run. Either Rejected is true
// and the error maps are filled, or the per-category reports are.
type SyncResult struct {
	Rejected    bool                         `json:"rejected"`
	SheetErrors map[Category]SheetErrors     `json:"sheet_errors,omitempty"`
	ImageErrors map[Category]*ImageReport    `json:"image_errors,omitempty"`
	Reports     map[Category]SyncReport      `json:"reports,omitempty"`
	Images      map[Category]ImageSyncReport `json:"images,omitempty"`
}

// ChangeEntry is one append-only change log record.
type ChangeEntry struct {
	AuthorID    int64
	AuthorName  string
	ActionType  string
	Description string
	Timestamp   time.Time
}

// PlaceholderKey returns positional issue key for rows without usable business key.
func PlaceholderKey(position int) string {
	return fmt.Sprintf("<row %d>", position)
}
