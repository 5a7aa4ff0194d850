// Package sheet decodes delimited sheet exports into raw rows.
// The header row defines field names.
package sheet

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/apparelshop/catalog-syncer/internal/platform/models"
)

// utf8BOM is the byte order mark some sheet exports prepend.
const utf8BOM = "\ufeff"

// Decode reads delimited text from r and returns its rows keyed by the
// header field names. Row positions are 1-based and count data rows only.
func Decode(r io.Reader) ([]models.Row, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("can't read sheet header: %w", err)
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], utf8BOM)
	}

	var rows []models.Row
	for position := 1; ; position++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("can't read sheet row %d: %w", position, err)
		}

		fields := make(map[string]string, len(header))
		for ix, name := range header {
			name = strings.TrimSpace(name)
			if name == "" {
				continue
			}
			if ix < len(record) {
				fields[name] = record[ix]
			} else {
				fields[name] = ""
			}
		}

		rows = append(rows, models.Row{Position: position, Fields: fields})
	}

	return rows, nil
}
