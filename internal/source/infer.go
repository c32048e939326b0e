package source

import (
	"strings"
	"time"

	"github.com/janekbaraniewski/openchart/internal/core"
	"github.com/janekbaraniewski/openchart/internal/pipeline"
)

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02",
	"2006/01/02",
	"01/02/2006",
	"2006-01",
	"Jan 2006",
	"Jan 2, 2006",
}

// InferTypes classifies each column from its non-blank cells: numeric when
// every cell coerces, datetime when every cell parses as a date, otherwise
// categorical. Columns with no values are categorical.
func InferTypes(columns []string, rows []core.Row) map[string]core.ColumnType {
	out := make(map[string]core.ColumnType, len(columns))
	for _, c := range columns {
		out[c] = inferColumn(c, rows)
	}
	return out
}

func inferColumn(col string, rows []core.Row) core.ColumnType {
	numeric, datetime, seen := true, true, 0
	for _, r := range rows {
		v := r[col]
		if isBlank(v) {
			continue
		}
		seen++
		if _, ok := v.(bool); ok {
			numeric = false
		} else if _, ok := pipeline.Coerce(v); !ok {
			numeric = false
		}
		if !isDate(v) {
			datetime = false
		}
		if !numeric && !datetime {
			return core.ColumnCategorical
		}
	}
	switch {
	case seen == 0:
		return core.ColumnCategorical
	case numeric:
		return core.ColumnNumeric
	case datetime:
		return core.ColumnDatetime
	}
	return core.ColumnCategorical
}

func isBlank(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(t) == ""
	}
	return false
}

func isDate(v any) bool {
	switch t := v.(type) {
	case time.Time:
		return true
	case string:
		s := strings.TrimSpace(t)
		for _, layout := range dateLayouts {
			if _, err := time.Parse(layout, s); err == nil {
				return true
			}
		}
	}
	return false
}
