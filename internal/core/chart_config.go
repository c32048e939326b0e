package core

import "strings"

type SortMode string

const (
	SortNone SortMode = "none"
	SortAsc  SortMode = "asc"
	SortDesc SortMode = "desc"
)

var ValidSortModes = []SortMode{SortNone, SortAsc, SortDesc}

func ParseSortMode(s string) SortMode {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "asc", "ascending":
		return SortAsc
	case "desc", "descending":
		return SortDesc
	default:
		return SortNone
	}
}

// NextSortMode returns the next sort mode in the cycle.
func NextSortMode(current SortMode) SortMode {
	for i, m := range ValidSortModes {
		if m == current {
			return ValidSortModes[(i+1)%len(ValidSortModes)]
		}
	}
	return SortNone
}

type AggregateFunc string

const (
	AggSum    AggregateFunc = "sum"
	AggMean   AggregateFunc = "mean"
	AggMedian AggregateFunc = "median"
	AggCount  AggregateFunc = "count"
)

func ParseAggregateFunc(s string) AggregateFunc {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "mean", "avg", "average":
		return AggMean
	case "median":
		return AggMedian
	case "count":
		return AggCount
	default:
		return AggSum
	}
}

// ShadowPosition is the compass direction the 3D extrusion falls towards.
type ShadowPosition string

const (
	ShadowTop         ShadowPosition = "top"
	ShadowTopRight    ShadowPosition = "top-right"
	ShadowRight       ShadowPosition = "right"
	ShadowBottomRight ShadowPosition = "bottom-right"
	ShadowBottom      ShadowPosition = "bottom"
	ShadowBottomLeft  ShadowPosition = "bottom-left"
	ShadowLeft        ShadowPosition = "left"
	ShadowTopLeft     ShadowPosition = "top-left"
)

// ValidShadowPositions is ordered clockwise starting at top.
var ValidShadowPositions = []ShadowPosition{
	ShadowTop,
	ShadowTopRight,
	ShadowRight,
	ShadowBottomRight,
	ShadowBottom,
	ShadowBottomLeft,
	ShadowLeft,
	ShadowTopLeft,
}

func ParseShadowPosition(s string) ShadowPosition {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, "_", "-")
	s = strings.ReplaceAll(s, " ", "-")
	for _, p := range ValidShadowPositions {
		if string(p) == s {
			return p
		}
	}
	return ShadowBottomRight
}

// NextShadowPosition rotates clockwise.
func NextShadowPosition(current ShadowPosition) ShadowPosition {
	for i, p := range ValidShadowPositions {
		if p == current {
			return ValidShadowPositions[(i+1)%len(ValidShadowPositions)]
		}
	}
	return ShadowBottomRight
}

const (
	DefaultColor    = "#2563eb"
	MinGradientStop = 2
	MaxGradientStop = 5
)

var DefaultGradientStops = []string{"#2563eb", "#93c5fd"}

// ChartConfig is every user-facing chart option. The zero value is usable
// after Normalize. Options the active kind does not support are kept but
// have no effect.
type ChartConfig struct {
	Type        ChartKind `json:"type" yaml:"type" toml:"type"`
	LabelColumn string    `json:"label_column,omitempty" yaml:"label_column,omitempty" toml:"label_column,omitempty"`
	ValueColumn string    `json:"value_column,omitempty" yaml:"value_column,omitempty" toml:"value_column,omitempty"`

	Color         string   `json:"color" yaml:"color" toml:"color"`
	Gradient      bool     `json:"gradient" yaml:"gradient" toml:"gradient"`
	GradientStops []string `json:"gradient_stops,omitempty" yaml:"gradient_stops,omitempty" toml:"gradient_stops,omitempty"`

	Sort              SortMode      `json:"sort" yaml:"sort" toml:"sort"`
	AggregateBy       string        `json:"aggregate_by,omitempty" yaml:"aggregate_by,omitempty" toml:"aggregate_by,omitempty"`
	AggregateFunction AggregateFunc `json:"aggregate_function" yaml:"aggregate_function" toml:"aggregate_function"`
	TopN              int           `json:"top_n" yaml:"top_n" toml:"top_n"`
	GroupOthers       bool          `json:"group_others" yaml:"group_others" toml:"group_others"`
	Stacked           bool          `json:"stacked" yaml:"stacked" toml:"stacked"`

	Trendline bool     `json:"trendline" yaml:"trendline" toml:"trendline"`
	LogScale  bool     `json:"log_scale" yaml:"log_scale" toml:"log_scale"`
	LogMin    *float64 `json:"log_min,omitempty" yaml:"log_min,omitempty" toml:"log_min,omitempty"`

	CompareField string `json:"compare_field,omitempty" yaml:"compare_field,omitempty" toml:"compare_field,omitempty"`

	Enable3D         bool           `json:"enable_3d" yaml:"enable_3d" toml:"enable_3d"`
	Shadow3DDepth    int            `json:"shadow_3d_depth" yaml:"shadow_3d_depth" toml:"shadow_3d_depth"`
	Shadow3DPosition ShadowPosition `json:"shadow_3d_position" yaml:"shadow_3d_position" toml:"shadow_3d_position"`

	ShowLabels bool `json:"show_labels" yaml:"show_labels" toml:"show_labels"`
}

func DefaultChartConfig() ChartConfig {
	return ChartConfig{
		Type:              KindBar,
		Color:             DefaultColor,
		GradientStops:     append([]string(nil), DefaultGradientStops...),
		Sort:              SortNone,
		AggregateFunction: AggSum,
		Shadow3DDepth:     Capabilities(KindBar).DepthDefault,
		Shadow3DPosition:  ShadowBottomRight,
	}
}

// Normalize fills unset fields with documented defaults and brings enums and
// ranges back into their domain. It never fails.
func (c ChartConfig) Normalize() ChartConfig {
	if !c.Type.IsValid() {
		c.Type = ParseChartKind(string(c.Type))
	}
	if strings.TrimSpace(c.Color) == "" {
		c.Color = DefaultColor
	}
	if len(c.GradientStops) == 0 {
		c.GradientStops = append([]string(nil), DefaultGradientStops...)
	}
	if len(c.GradientStops) > MaxGradientStop {
		c.GradientStops = append([]string(nil), c.GradientStops[:MaxGradientStop]...)
	}
	c.Sort = ParseSortMode(string(c.Sort))
	c.AggregateFunction = ParseAggregateFunc(string(c.AggregateFunction))
	if c.TopN < 0 {
		c.TopN = 0
	}
	c.Shadow3DPosition = ParseShadowPosition(string(c.Shadow3DPosition))
	if d := ClampDepth(c.Type, c.Shadow3DDepth); d > 0 {
		c.Shadow3DDepth = d
	}
	return c
}

// WithKind switches the chart kind and resets the depth to the new kind's
// default when the old depth falls outside its range.
func (c ChartConfig) WithKind(kind ChartKind) ChartConfig {
	prev := Capabilities(c.Type)
	c.Type = kind
	next := Capabilities(kind)
	if prev.Family != next.Family && next.Supports3D {
		c.Shadow3DDepth = next.DepthDefault
	}
	return c.Normalize()
}
