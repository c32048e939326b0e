// Package source loads tabular files into rows, column order and inferred
// column types.
package source

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/janekbaraniewski/openchart/internal/core"
	"github.com/janekbaraniewski/openchart/internal/pipeline"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported file format")
	ErrNoColumns         = errors.New("no columns")
)

type Format string

const (
	FormatCSV    Format = "csv"
	FormatXLSX   Format = "xlsx"
	FormatSQLite Format = "sqlite"
)

var extFormats = map[string]Format{
	".csv":     FormatCSV,
	".tsv":     FormatCSV,
	".xlsx":    FormatXLSX,
	".xlsm":    FormatXLSX,
	".db":      FormatSQLite,
	".sqlite":  FormatSQLite,
	".sqlite3": FormatSQLite,
}

func DetectFormat(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if f, ok := extFormats[ext]; ok {
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
}

// Options select a part of multi-table inputs.
type Options struct {
	Sheet string // xlsx sheet name; first sheet when empty
	Table string // sqlite table name
	Query string // sqlite query; wins over Table
}

// Table is one loaded data set. Rows are keyed by column name.
type Table struct {
	Columns []string
	Types   map[string]core.ColumnType
	Rows    []core.Row
}

func (t Table) Input() pipeline.Input {
	return pipeline.Input{Rows: t.Rows, Columns: t.Columns, Types: t.Types}
}

// DefaultColumns returns the label and value columns a chart uses when none
// are configured.
func (t Table) DefaultColumns() (label, value string) {
	return pipeline.PickColumns(t.Input(), "", "")
}

// Load reads path according to its extension.
func Load(ctx context.Context, path string, opts Options) (Table, error) {
	format, err := DetectFormat(path)
	if err != nil {
		return Table{}, err
	}
	if _, err := os.Stat(path); err != nil {
		return Table{}, fmt.Errorf("opening %s: %w", path, err)
	}

	var t Table
	switch format {
	case FormatCSV:
		f, err := os.Open(path)
		if err != nil {
			return Table{}, fmt.Errorf("opening %s: %w", path, err)
		}
		defer f.Close()
		comma := ','
		if strings.EqualFold(filepath.Ext(path), ".tsv") {
			comma = '\t'
		}
		t, err = ReadCSV(f, comma)
		if err != nil {
			return Table{}, fmt.Errorf("reading %s: %w", path, err)
		}
	case FormatXLSX:
		t, err = ReadXLSX(path, opts.Sheet)
		if err != nil {
			return Table{}, err
		}
	case FormatSQLite:
		t, err = ReadSQLite(ctx, path, opts.Table, opts.Query)
		if err != nil {
			return Table{}, err
		}
	}
	log.Printf("source: loaded %s (%s): %d columns, %d rows", filepath.Base(path), format, len(t.Columns), len(t.Rows))
	return t, nil
}

// newTable builds a table from a header and positional records. Short
// records are padded with nil cells and extra cells are dropped.
func newTable(header []string, records [][]any) (Table, error) {
	columns := normalizeHeader(header)
	if len(columns) == 0 {
		return Table{}, ErrNoColumns
	}
	rows := make([]core.Row, 0, len(records))
	for _, rec := range records {
		row := make(core.Row, len(columns))
		for i, c := range columns {
			if i < len(rec) {
				row[c] = rec[i]
			} else {
				row[c] = nil
			}
		}
		rows = append(rows, row)
	}
	return Table{Columns: columns, Types: InferTypes(columns, rows), Rows: rows}, nil
}

// normalizeHeader trims names, names blank headers by position and
// suffixes duplicates so every column key is unique.
func normalizeHeader(header []string) []string {
	out := make([]string, 0, len(header))
	seen := make(map[string]int, len(header))
	for i, h := range header {
		h = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
		if h == "" {
			h = "column_" + strconv.Itoa(i+1)
		}
		name := h
		for seen[name] > 0 {
			seen[h]++
			name = h + "_" + strconv.Itoa(seen[h])
		}
		seen[name]++
		out = append(out, name)
	}
	return out
}
