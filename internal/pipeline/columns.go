package pipeline

import (
	"github.com/janekbaraniewski/openchart/internal/core"
	"github.com/samber/lo"
)

// Input is the parsed upload: rows plus the column order and inferred types.
type Input struct {
	Rows    []core.Row
	Columns []string
	Types   map[string]core.ColumnType
}

// PickColumns resolves the label and value columns. Explicit choices win
// when they exist; otherwise the first categorical or datetime column is the
// label and the first numeric column that is not the label is the value.
func PickColumns(in Input, labelCol, valueCol string) (label, value string) {
	has := func(c string) bool { return c != "" && lo.Contains(in.Columns, c) }

	if has(labelCol) {
		label = labelCol
	} else {
		label, _ = lo.Find(in.Columns, func(c string) bool {
			t := in.Types[c]
			return t == core.ColumnCategorical || t == core.ColumnDatetime
		})
	}
	if has(valueCol) {
		value = valueCol
	} else {
		value, _ = lo.Find(in.Columns, func(c string) bool {
			return c != label && in.Types[c] == core.ColumnNumeric
		})
	}
	return label, value
}
