package core

import "fmt"

// Family groups kinds that share layout and depth behavior.
type Family string

const (
	FamilyBar    Family = "bar"
	FamilyPie    Family = "pie"
	FamilyLine   Family = "line"
	FamilyPoint  Family = "point"
	FamilyRadial Family = "radial"
	FamilyGauge  Family = "gauge"
)

type Feature string

const (
	FeatureGradient  Feature = "gradient"
	FeatureTrendline Feature = "trendline"
	FeatureLogScale  Feature = "log-scale"
	FeatureCompare   Feature = "compare"
	FeatureStacking  Feature = "stacking"
	FeatureLabels    Feature = "labels"
	Feature3D        Feature = "3d"
)

var AllFeatures = []Feature{
	FeatureGradient,
	FeatureTrendline,
	FeatureLogScale,
	FeatureCompare,
	FeatureStacking,
	FeatureLabels,
	Feature3D,
}

var featureNames = map[Feature]string{
	FeatureGradient:  "Gradient",
	FeatureTrendline: "Trendline",
	FeatureLogScale:  "Logarithmic scale",
	FeatureCompare:   "Compare field",
	FeatureStacking:  "Stacking",
	FeatureLabels:    "Data labels",
	Feature3D:        "3D mode",
}

func (f Feature) DisplayName() string {
	if n, ok := featureNames[f]; ok {
		return n
	}
	return string(f)
}

// Capability describes which optional features are meaningful for a kind.
type Capability struct {
	Kind        ChartKind
	DisplayName string
	Family      Family
	// IndexAxis is "x" for vertical categories, "y" for horizontal bars and
	// empty for kinds without a category axis.
	IndexAxis      string
	DefaultStacked bool

	SupportsGradient  bool
	SupportsTrendline bool
	SupportsLogScale  bool
	SupportsCompare   bool
	SupportsStacking  bool
	SupportsLabels    bool
	Supports3D        bool

	DepthMin     int
	DepthMax     int
	DepthDefault int
}

const (
	barDepthMin     = 5
	barDepthMax     = 15
	barDepthDefault = 8
	pieDepthMin     = 10
	pieDepthMax     = 25
	pieDepthDefault = 20
)

var capabilityTable = map[ChartKind]Capability{
	KindBar: barCapability(Capability{
		Kind: KindBar, DisplayName: "Bar", IndexAxis: "y",
		SupportsGradient: true, SupportsTrendline: true, SupportsLogScale: true,
		SupportsCompare: true, SupportsLabels: true, Supports3D: true,
	}),
	KindColumn: barCapability(Capability{
		Kind: KindColumn, DisplayName: "Column", IndexAxis: "x",
		SupportsGradient: true, SupportsTrendline: true, SupportsLogScale: true,
		SupportsCompare: true, SupportsLabels: true, Supports3D: true,
	}),
	KindLine: {
		Kind: KindLine, DisplayName: "Line", Family: FamilyLine, IndexAxis: "x",
		SupportsTrendline: true, SupportsLogScale: true, SupportsCompare: true,
		SupportsLabels: true,
	},
	KindArea: {
		Kind: KindArea, DisplayName: "Area", Family: FamilyLine, IndexAxis: "x",
		SupportsTrendline: true, SupportsLogScale: true, SupportsCompare: true,
		SupportsStacking: true,
	},
	KindPie: pieCapability(Capability{
		Kind: KindPie, DisplayName: "Pie",
		SupportsGradient: true, SupportsLabels: true, Supports3D: true,
	}),
	KindDoughnut: pieCapability(Capability{
		Kind: KindDoughnut, DisplayName: "Doughnut",
		SupportsGradient: true, SupportsLabels: true, Supports3D: true,
	}),
	KindScatter: {
		Kind: KindScatter, DisplayName: "Scatter", Family: FamilyPoint, IndexAxis: "x",
		SupportsGradient: true, SupportsTrendline: true, SupportsLogScale: true,
		SupportsCompare: true,
	},
	KindBubble: {
		Kind: KindBubble, DisplayName: "Bubble", Family: FamilyPoint, IndexAxis: "x",
		SupportsGradient: true, SupportsLogScale: true, SupportsCompare: true,
	},
	KindRadar: {
		Kind: KindRadar, DisplayName: "Radar", Family: FamilyRadial,
		SupportsCompare: true, SupportsLabels: true,
	},
	KindCompare: barCapability(Capability{
		Kind: KindCompare, DisplayName: "Side-by-side comparison", IndexAxis: "x",
		SupportsLogScale: true, SupportsCompare: true, SupportsLabels: true,
		Supports3D: true,
	}),
	KindStacked: barCapability(Capability{
		Kind: KindStacked, DisplayName: "Stacked", IndexAxis: "x", DefaultStacked: true,
		SupportsCompare: true, SupportsStacking: true, SupportsLabels: true,
		Supports3D: true,
	}),
	KindGauge: {
		Kind: KindGauge, DisplayName: "Gauge", Family: FamilyGauge,
		SupportsLabels: true,
	},
}

func barCapability(c Capability) Capability {
	c.Family = FamilyBar
	c.DepthMin, c.DepthMax, c.DepthDefault = barDepthMin, barDepthMax, barDepthDefault
	return c
}

func pieCapability(c Capability) Capability {
	c.Family = FamilyPie
	c.DepthMin, c.DepthMax, c.DepthDefault = pieDepthMin, pieDepthMax, pieDepthDefault
	return c
}

// Capabilities returns the capability record for kind. Unknown kinds get the
// bar record.
func Capabilities(kind ChartKind) Capability {
	if c, ok := capabilityTable[kind]; ok {
		return c
	}
	return capabilityTable[KindBar]
}

// Supports reports whether feature is meaningful for kind.
func Supports(kind ChartKind, f Feature) bool {
	c := Capabilities(kind)
	switch f {
	case FeatureGradient:
		return c.SupportsGradient
	case FeatureTrendline:
		return c.SupportsTrendline
	case FeatureLogScale:
		return c.SupportsLogScale
	case FeatureCompare:
		return c.SupportsCompare
	case FeatureStacking:
		return c.SupportsStacking
	case FeatureLabels:
		return c.SupportsLabels
	case Feature3D:
		return c.Supports3D
	default:
		return false
	}
}

// UnsupportedAdvisory is the non-blocking message shown when a requested
// feature is ignored for kind.
func UnsupportedAdvisory(kind ChartKind, f Feature) string {
	return fmt.Sprintf("%s not available for %s charts", f.DisplayName(), kind)
}

// ClampDepth keeps a depth inside the kind's range. Zero or negative input
// yields the kind's default. Kinds without 3D support return 0.
func ClampDepth(kind ChartKind, depth int) int {
	c := Capabilities(kind)
	if !c.Supports3D {
		return 0
	}
	if depth <= 0 {
		return c.DepthDefault
	}
	if depth < c.DepthMin {
		return c.DepthMin
	}
	if depth > c.DepthMax {
		return c.DepthMax
	}
	return depth
}
