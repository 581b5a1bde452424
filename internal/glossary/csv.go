// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package glossary

import (
	"bytes"
	"encoding/csv"
	"errors"
	"io"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// parseCSV reads a CSV document with a header row. Columns are taken by
// position: the first is the acronym, the second its definition. Rows
// with fewer than two cells or a blank acronym are skipped. Cell values
// are kept exactly as the CSV reader returns them.
func parseCSV(data []byte) (*Glossary, error) {
	b := NewBuilder()
	data = bytes.TrimPrefix(data, utf8BOM)
	if len(bytes.TrimSpace(data)) == 0 {
		return b.Build(), nil
	}

	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if errors.Is(err, io.EOF) {
		return b.Build(), nil
	}
	if err != nil {
		return nil, malformed("reading CSV header: %v", err)
	}
	if len(header) < 2 {
		return nil, malformed("CSV header has %d column(s), need at least two", len(header))
	}

	for {
		row, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, malformed("reading CSV: %v", err)
		}
		if len(row) < 2 {
			continue
		}
		b.Add(row[0], row[1])
	}
	return b.Build(), nil
}
