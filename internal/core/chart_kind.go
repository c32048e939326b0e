package core

import "strings"

// ChartKind identifies one of the supported chart variants.
type ChartKind string

const (
	KindBar      ChartKind = "bar"
	KindColumn   ChartKind = "column"
	KindLine     ChartKind = "line"
	KindArea     ChartKind = "area"
	KindPie      ChartKind = "pie"
	KindDoughnut ChartKind = "doughnut"
	KindScatter  ChartKind = "scatter"
	KindBubble   ChartKind = "bubble"
	KindRadar    ChartKind = "radar"
	KindCompare  ChartKind = "compare"
	KindStacked  ChartKind = "stacked"
	KindGauge    ChartKind = "gauge"
)

var ValidChartKinds = []ChartKind{
	KindBar,
	KindColumn,
	KindLine,
	KindArea,
	KindPie,
	KindDoughnut,
	KindScatter,
	KindBubble,
	KindRadar,
	KindCompare,
	KindStacked,
	KindGauge,
}

// ParseChartKind maps user input to a kind, falling back to bar.
func ParseChartKind(s string) ChartKind {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, k := range ValidChartKinds {
		if string(k) == s {
			return k
		}
	}
	switch s {
	case "donut":
		return KindDoughnut
	case "hbar", "horizontal":
		return KindBar
	case "vbar", "vertical":
		return KindColumn
	case "side-by-side", "grouped":
		return KindCompare
	}
	return KindBar
}

// IsValid reports whether k is one of the enumerated kinds.
func (k ChartKind) IsValid() bool {
	for _, v := range ValidChartKinds {
		if v == k {
			return true
		}
	}
	return false
}

func (k ChartKind) Family() Family {
	return Capabilities(k).Family
}

// NextChartKind returns the next kind in the cycle.
func NextChartKind(current ChartKind) ChartKind {
	for i, k := range ValidChartKinds {
		if k == current {
			return ValidChartKinds[(i+1)%len(ValidChartKinds)]
		}
	}
	return ValidChartKinds[0]
}
