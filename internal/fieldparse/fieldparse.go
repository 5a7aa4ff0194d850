// Package fieldparse converts raw sheet cell values into typed values.
// All functions are total: malformed input yields an explicit error,
// never a panic or a silently coerced value.
package fieldparse

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

// ParseInt parses integer from s. Stray spaces are stripped,
// everything else must be digits with an optional leading sign.
func ParseInt(s string) (int32, error) {
	raw := strings.ReplaceAll(s, " ", "")
	value, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("can't parse %q as integer: %w", s, err)
	}
	return int32(value), nil
}

// ParseDecimal parses decimal number from s. Stray spaces are stripped and
// a comma decimal separator is normalized to a point before parsing, so both
// "12,5" and "12.5" parse to 12.5. Multiple separators fail parsing.
func ParseDecimal(s string) (decimal.Decimal, error) {
	raw := strings.ReplaceAll(s, " ", "")
	raw = strings.ReplaceAll(raw, ",", ".")
	value, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("can't parse %q as decimal: %w", s, err)
	}
	return value, nil
}

// NormalizeText normalizes free-text value: comma decimal separators become
// points and the first rune is upper-cased. Empty input passes through
// untouched, callers decide whether empty is acceptable.
func NormalizeText(s string) string {
	if s == "" {
		return s
	}
	cleaned := strings.ReplaceAll(s, ",", ".")
	first, size := utf8.DecodeRuneInString(cleaned)
	if first == utf8.RuneError {
		return cleaned
	}
	return string(unicode.ToUpper(first)) + cleaned[size:]
}
