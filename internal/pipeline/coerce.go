// Package pipeline turns raw rows and a chart configuration into a
// render-ready dataset. Every stage is pure and recovers from bad input
// locally instead of failing.
package pipeline

import (
	"math"
	"strconv"
	"strings"

	"github.com/janekbaraniewski/openchart/internal/core"
)

// Coerce converts a cell to a finite number. ok is false when the cell could
// not be interpreted, in which case the value is 0.
func Coerce(v any) (float64, bool) {
	switch t := v.(type) {
	case nil:
		return 0, false
	case float64:
		return finite(t)
	case float32:
		return finite(float64(t))
	case int:
		return float64(t), true
	case int8:
		return float64(t), true
	case int16:
		return float64(t), true
	case int32:
		return float64(t), true
	case int64:
		return float64(t), true
	case uint:
		return float64(t), true
	case uint8:
		return float64(t), true
	case uint16:
		return float64(t), true
	case uint32:
		return float64(t), true
	case uint64:
		return float64(t), true
	case string:
		return ParseNumber(t)
	case []byte:
		return ParseNumber(string(t))
	default:
		return 0, false
	}
}

// ParseNumber parses a possibly comma-grouped number such as "1,200.50".
func ParseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	s = strings.ReplaceAll(s, ",", "")
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return finite(f)
}

func finite(f float64) (float64, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// BuildSeries extracts a label/value series from rows. Rows are read, never
// modified. A missing label column falls back to the 1-based row number.
func BuildSeries(rows []core.Row, labelCol, valueCol string) core.Series {
	s := core.Series{
		Labels: make([]string, 0, len(rows)),
		Values: make([]float64, 0, len(rows)),
		Raw:    make([]string, 0, len(rows)),
	}
	for i, row := range rows {
		label := strconv.Itoa(i + 1)
		if labelCol != "" {
			if cell, ok := row[labelCol]; ok {
				label = core.NormalizeLabel(core.CellString(cell))
			}
		}
		cell := row[valueCol]
		v, _ := Coerce(cell)
		s.Labels = append(s.Labels, label)
		s.Values = append(s.Values, v)
		s.Raw = append(s.Raw, core.CellString(cell))
	}
	return s
}

// ColumnValues coerces one column of rows, in row order.
func ColumnValues(rows []core.Row, col string) []float64 {
	out := make([]float64, len(rows))
	for i, row := range rows {
		out[i], _ = Coerce(row[col])
	}
	return out
}
