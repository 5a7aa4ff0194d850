// Package schema declares the catalog column layout per category and derives
// validation constraints from it. The column tables mirror the database
// migrations, so validation can't drift from what the store accepts.
package schema

import (
	"fmt"
	"regexp"
	"strconv"
	"sync"

	"github.com/apparelshop/catalog-syncer/internal/platform/models"
)

// Column is one declared catalog column.
type Column struct {
	Name string
	// Type is the declared SQL type: varchar(n), text, integer, serial,
	// numeric(p,s) or timestamptz.
	Type string
	// Enum is the enumerated value set for enum-typed columns, nil otherwise.
	Enum []string
	// Nullable reports whether the column accepts NULL.
	Nullable bool
	// HasDefault marks server-assigned columns (primary key, timestamps,
	// counters) which are exempt from required-field checks.
	HasDefault bool
}

// NumericSpec is precision and scale of a numeric column.
type NumericSpec struct {
	Precision int
	Scale     int
}

// Constraints are per-field validation constraints derived from the declared
// column table of one category.
type Constraints struct {
	// Kinds maps column name to its typed-value kind.
	Kinds map[string]models.Kind
	// MaxLen maps varchar column name to its maximum length.
	MaxLen map[string]int
	// Numeric maps numeric column name to its precision and scale.
	Numeric map[string]NumericSpec
	// Enum maps enum column name to its allowed value set.
	Enum map[string]map[string]struct{}
	// NotNull holds columns which must not be empty.
	NotNull map[string]struct{}
	// HasDefault holds server-assigned columns.
	HasDefault map[string]struct{}
}

// Has reports whether the category declares a column with this name.
func (c *Constraints) Has(name string) bool {
	_, ok := c.Kinds[name]
	return ok
}

var (
	varcharPattern = regexp.MustCompile(`^varchar\((\d+)\)$`)
	numericPattern = regexp.MustCompile(`^numeric\((\d+),(\d+)\)$`)

	introspectMu    sync.Mutex
	introspectCache = map[models.Category]*Constraints{}
)

// Introspect derives constraint maps for category from its declared columns.
// The result is built once per category and cached.
func Introspect(category models.Category) (*Constraints, error) {
	introspectMu.Lock()
	defer introspectMu.Unlock()

	if cached, ok := introspectCache[category]; ok {
		return cached, nil
	}

	columns := Columns(category)
	if columns == nil {
		return nil, fmt.Errorf("unknown category %q", category)
	}

	cons := &Constraints{
		Kinds:      make(map[string]models.Kind, len(columns)),
		MaxLen:     map[string]int{},
		Numeric:    map[string]NumericSpec{},
		Enum:       map[string]map[string]struct{}{},
		NotNull:    map[string]struct{}{},
		HasDefault: map[string]struct{}{},
	}

	for _, col := range columns {
		kind, err := registerColumn(cons, col)
		if err != nil {
			return nil, fmt.Errorf("can't introspect column %q of %s: %w", col.Name, category, err)
		}
		cons.Kinds[col.Name] = kind

		if !col.Nullable {
			cons.NotNull[col.Name] = struct{}{}
		}
		if col.HasDefault {
			cons.HasDefault[col.Name] = struct{}{}
		}
		if len(col.Enum) > 0 {
			allowed := make(map[string]struct{}, len(col.Enum))
			for _, value := range col.Enum {
				allowed[value] = struct{}{}
			}
			cons.Enum[col.Name] = allowed
		}
	}

	introspectCache[category] = cons
	return cons, nil
}

func registerColumn(cons *Constraints, col Column) (models.Kind, error) {
	if match := varcharPattern.FindStringSubmatch(col.Type); match != nil {
		maxLen, err := strconv.Atoi(match[1])
		if err != nil {
			return 0, fmt.Errorf("can't parse varchar length: %w", err)
		}
		cons.MaxLen[col.Name] = maxLen
		return models.KindText, nil
	}

	if match := numericPattern.FindStringSubmatch(col.Type); match != nil {
		precision, err := strconv.Atoi(match[1])
		if err != nil {
			return 0, fmt.Errorf("can't parse numeric precision: %w", err)
		}
		scale, err := strconv.Atoi(match[2])
		if err != nil {
			return 0, fmt.Errorf("can't parse numeric scale: %w", err)
		}
		if scale > precision {
			return 0, fmt.Errorf("numeric scale %d exceeds precision %d", scale, precision)
		}
		cons.Numeric[col.Name] = NumericSpec{Precision: precision, Scale: scale}
		return models.KindDecimal, nil
	}

	switch col.Type {
	case "text", "timestamptz":
		return models.KindText, nil
	case "integer", "serial", "bigint":
		return models.KindInt, nil
	default:
		return 0, fmt.Errorf("unsupported column type %q", col.Type)
	}
}
