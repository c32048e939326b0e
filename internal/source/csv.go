package source

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
)

// ReadCSV reads a delimited stream whose first record is the header. Cells
// stay strings; coercion happens in the pipeline.
func ReadCSV(r io.Reader, comma rune) (Table, error) {
	cr := csv.NewReader(r)
	cr.Comma = comma
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return Table{}, ErrNoColumns
	}
	if err != nil {
		return Table{}, fmt.Errorf("reading header: %w", err)
	}

	var records [][]any
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return Table{}, fmt.Errorf("reading record %d: %w", len(records)+1, err)
		}
		if blankRecord(rec) {
			continue
		}
		cells := make([]any, len(rec))
		for i, v := range rec {
			cells[i] = v
		}
		records = append(records, cells)
	}
	return newTable(header, records)
}

func blankRecord(rec []string) bool {
	for _, v := range rec {
		if v != "" {
			return false
		}
	}
	return true
}
