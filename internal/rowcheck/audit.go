package rowcheck

import (
	"fmt"
	"sort"
	"strings"

	"github.com/apparelshop/catalog-syncer/internal/platform/models"
)

// emptyCountPlaceholder marks a blank count_images value in consistency reports.
const emptyCountPlaceholder = "<empty>"

// issueCollector accumulates messages per business key preserving
// first-seen key order.
type issueCollector struct {
	order []string
	byKey map[string][]string
}

func newIssueCollector() *issueCollector {
	return &issueCollector{byKey: map[string][]string{}}
}

func (c *issueCollector) add(key string, messages ...string) {
	if len(messages) == 0 {
		return
	}
	if _, ok := c.byKey[key]; !ok {
		c.order = append(c.order, key)
	}
	c.byKey[key] = append(c.byKey[key], messages...)
}

func (c *issueCollector) issues() []models.ValidationIssue {
	if len(c.order) == 0 {
		return nil
	}
	issues := make([]models.ValidationIssue, 0, len(c.order))
	for _, key := range c.order {
		issues = append(issues, models.ValidationIssue{Key: key, Messages: c.byKey[key]})
	}
	return issues
}

// ValidateSheet validates every row and audits the sheet as a whole.
// Returned records are only usable when the issue list is empty.
func (v *Validator) ValidateSheet(rows []models.Row) ([]models.Record, []models.ValidationIssue) {
	collector := newIssueCollector()
	records := make([]models.Record, 0, len(rows))

	for _, row := range rows {
		record, errs := v.ValidateRow(row)
		if len(errs) > 0 {
			key := row.Get(keyField)
			if key == "" {
				key = models.PlaceholderKey(row.Position)
			}
			collector.add(key, errs...)
			continue
		}
		records = append(records, *record)
	}

	auditSheet(rows, collector)

	return records, collector.issues()
}

// auditSheet runs the cross-row checks: duplicate business keys and
// count_images consistency per derived color key. Findings are merged into
// the same per-key issue list as row-level errors.
func auditSheet(rows []models.Row, collector *issueCollector) {
	duplicates := DuplicateKeys(rows)
	keys := make([]string, 0, len(duplicates))
	for key := range duplicates {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		return duplicates[keys[i]][0] < duplicates[keys[j]][0]
	})
	for _, key := range keys {
		collector.add(key, fmt.Sprintf(
			"duplicate variant_sku in sheet (rows %s)", joinPositions(duplicates[key]),
		))
	}

	for _, group := range inconsistentImageCounts(rows) {
		message := fmt.Sprintf(
			"inconsistent count_images for color_sku='%s': %s",
			group.colorSKU, strings.Join(group.values, ", "),
		)
		for _, key := range group.keys {
			collector.add(key, message)
		}
	}
}

// DuplicateKeys returns 1-based row positions of every business key
// appearing more than once.
func DuplicateKeys(rows []models.Row) map[string][]int {
	positions := map[string][]int{}
	for _, row := range rows {
		key := row.Get(keyField)
		if key == "" {
			continue
		}
		positions[key] = append(positions[key], row.Position)
	}

	for key, found := range positions {
		if len(found) < 2 {
			delete(positions, key)
		}
	}
	return positions
}

type countConflict struct {
	colorSKU string
	values   []string
	keys     []string
}

// inconsistentImageCounts groups rows by derived color key and reports
// groups whose declared count_images values disagree. Every row of a
// conflicting group is flagged.
func inconsistentImageCounts(rows []models.Row) []countConflict {
	type group struct {
		values map[string]struct{}
		keys   []string
	}

	var order []string
	groups := map[string]*group{}

	for _, row := range rows {
		sku := row.Get("sku")
		world := row.Get("world_sku")
		if sku == "" || world == "" {
			continue
		}

		colorSKU := sku + "_" + world
		grp, ok := groups[colorSKU]
		if !ok {
			grp = &group{values: map[string]struct{}{}}
			groups[colorSKU] = grp
			order = append(order, colorSKU)
		}

		count := row.Get("count_images")
		if count == "" {
			count = emptyCountPlaceholder
		}
		grp.values[count] = struct{}{}
		grp.keys = append(grp.keys, row.Get(keyField))
	}

	var conflicts []countConflict
	for _, colorSKU := range order {
		grp := groups[colorSKU]
		if len(grp.values) < 2 {
			continue
		}

		values := make([]string, 0, len(grp.values))
		for value := range grp.values {
			values = append(values, value)
		}
		sort.Strings(values)

		conflicts = append(conflicts, countConflict{
			colorSKU: colorSKU,
			values:   values,
			keys:     grp.keys,
		})
	}
	return conflicts
}

func joinPositions(positions []int) string {
	sort.Ints(positions)
	parts := make([]string, 0, len(positions))
	for _, position := range positions {
		parts = append(parts, fmt.Sprint(position))
	}
	return strings.Join(parts, ", ")
}
