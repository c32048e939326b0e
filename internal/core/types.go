package core

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

type ColumnType string

const (
	ColumnNumeric     ColumnType = "numeric"
	ColumnCategorical ColumnType = "categorical"
	ColumnDatetime    ColumnType = "datetime"
)

// Row is one record of the uploaded table. Cells are nil, string, bool or any
// Go numeric type. The pipeline treats rows as read-only.
type Row map[string]any

// CellString renders a cell the way it should appear as a label.
func CellString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		if math.IsNaN(t) || math.IsInf(t, 0) {
			return ""
		}
		return strconv.FormatFloat(t, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32)
	case fmt.Stringer:
		return t.String()
	default:
		return fmt.Sprint(t)
	}
}

// Series is an index-aligned label/value pair. Raw keeps the original cell
// text for each point so failed coercions can still be displayed.
type Series struct {
	Labels []string  `json:"labels"`
	Values []float64 `json:"values"`
	Raw    []string  `json:"raw,omitempty"`
}

func (s Series) Len() int { return len(s.Values) }

// Valid reports whether the parallel slices line up and every value is finite.
func (s Series) Valid() bool {
	if len(s.Labels) != len(s.Values) {
		return false
	}
	if s.Raw != nil && len(s.Raw) != len(s.Values) {
		return false
	}
	for _, v := range s.Values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

type SeriesRole string

const (
	RolePrimary SeriesRole = "primary"
	RoleCompare SeriesRole = "compare"
	RoleTrend   SeriesRole = "trend"
)

// DatasetSeries is one plotted series. Values are what the drawing library
// plots; Original holds the pre-guard values for tooltips and labels.
type DatasetSeries struct {
	Label       string     `json:"label"`
	Role        SeriesRole `json:"role"`
	Values      []float64  `json:"values"`
	Original    []float64  `json:"original,omitempty"`
	Raw         []string   `json:"raw,omitempty"`
	Color       string     `json:"color"`
	PointColors []string   `json:"point_colors,omitempty"`
}

// DisplayValue returns the value to show for point i, preferring the
// unguarded original.
func (s DatasetSeries) DisplayValue(i int) float64 {
	if i < len(s.Original) {
		return s.Original[i]
	}
	if i < len(s.Values) {
		return s.Values[i]
	}
	return 0
}

// ColorAt returns the per-point color when present, the series color otherwise.
func (s DatasetSeries) ColorAt(i int) string {
	if i < len(s.PointColors) && s.PointColors[i] != "" {
		return s.PointColors[i]
	}
	return s.Color
}

type DatasetOptions struct {
	Stacked   bool    `json:"stacked"`
	IndexAxis string  `json:"index_axis,omitempty"` // "x" or "y"
	LogScale  bool    `json:"log_scale"`
	LogFloor  float64 `json:"log_floor,omitempty"`
	Labels    bool    `json:"labels"`
}

// Dataset is the render-ready bundle handed to a drawing surface.
type Dataset struct {
	Kind    ChartKind       `json:"kind"`
	Labels  []string        `json:"labels"`
	Series  []DatasetSeries `json:"series"`
	Options DatasetOptions  `json:"options"`
	Empty   bool            `json:"empty"`
}

// Primary returns the first primary-role series.
func (d Dataset) Primary() (DatasetSeries, bool) {
	return d.SeriesByRole(RolePrimary)
}

func (d Dataset) SeriesByRole(role SeriesRole) (DatasetSeries, bool) {
	for _, s := range d.Series {
		if s.Role == role {
			return s, true
		}
	}
	return DatasetSeries{}, false
}

// MaxValue returns the largest plotted value over all series, or 0.
func (d Dataset) MaxValue() float64 {
	maxV := 0.0
	for _, s := range d.Series {
		for _, v := range s.Values {
			if v > maxV {
				maxV = v
			}
		}
	}
	return maxV
}

// GaugeFraction is the first primary value as a share of the primary total,
// clamped to [0,1]. Gauges show how much of the whole the leading row makes.
func (d Dataset) GaugeFraction() float64 {
	s, ok := d.Primary()
	if !ok || len(s.Values) == 0 {
		return 0
	}
	shares := Shares(s.Values)
	if shares == nil {
		return 0
	}
	return math.Max(0, math.Min(1, shares[0]))
}

// Shares returns each value's part of the positive total. Negative values
// count as zero. It returns nil when nothing is positive. Values are scaled
// by the largest one first so totals past the float64 range still split.
func Shares(values []float64) []float64 {
	peak := 0.0
	for _, v := range values {
		if !math.IsNaN(v) {
			peak = math.Max(peak, v)
		}
	}
	if peak <= 0 || math.IsInf(peak, 1) {
		return nil
	}
	part := func(v float64) float64 {
		if math.IsNaN(v) || v <= 0 {
			return 0
		}
		return v / peak
	}
	total := 0.0
	for _, v := range values {
		total += part(v)
	}
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = part(v) / total
	}
	return out
}

// Saturate pins an overflowed result to the largest finite magnitude. NaN
// becomes 0.
func Saturate(f float64) float64 {
	switch {
	case math.IsNaN(f):
		return 0
	case math.IsInf(f, 1):
		return math.MaxFloat64
	case math.IsInf(f, -1):
		return -math.MaxFloat64
	}
	return f
}

// NormalizeLabel trims a label and substitutes a placeholder for blanks.
func NormalizeLabel(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return BlankLabel
	}
	return s
}

const (
	BlankLabel  = "(blank)"
	OthersLabel = "Others"
)
