package source

import (
	"fmt"

	"github.com/samber/lo"
	"github.com/xuri/excelize/v2"
)

// ReadXLSX reads one sheet of a workbook, the first when sheet is empty. The
// first row is the header.
func ReadXLSX(path, sheet string) (Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return Table{}, fmt.Errorf("opening workbook %s: %w", path, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return Table{}, fmt.Errorf("workbook %s: %w", path, ErrNoColumns)
	}
	if sheet == "" {
		sheet = sheets[0]
	} else if !lo.Contains(sheets, sheet) {
		return Table{}, fmt.Errorf("workbook %s has no sheet %q (have %v)", path, sheet, sheets)
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return Table{}, fmt.Errorf("reading sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return Table{}, fmt.Errorf("sheet %q: %w", sheet, ErrNoColumns)
	}

	records := make([][]any, 0, len(rows)-1)
	for _, r := range rows[1:] {
		if blankRecord(r) {
			continue
		}
		records = append(records, lo.Map(r, func(v string, _ int) any { return v }))
	}
	t, err := newTable(rows[0], records)
	if err != nil {
		return Table{}, fmt.Errorf("sheet %q: %w", sheet, err)
	}
	return t, nil
}
