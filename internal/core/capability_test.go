package core

import "testing"

func TestCapabilityTableCoversEveryKind(t *testing.T) {
	if len(ValidChartKinds) != 12 {
		t.Fatalf("expected 12 chart kinds, got %d", len(ValidChartKinds))
	}
	for _, k := range ValidChartKinds {
		c, ok := capabilityTable[k]
		if !ok {
			t.Errorf("kind %s missing from capability table", k)
			continue
		}
		if c.Kind != k {
			t.Errorf("capability for %s has Kind %s", k, c.Kind)
		}
		if c.DisplayName == "" || c.Family == "" {
			t.Errorf("kind %s missing metadata: %+v", k, c)
		}
		if c.Supports3D && (c.DepthMin <= 0 || c.DepthMin > c.DepthDefault || c.DepthDefault > c.DepthMax) {
			t.Errorf("kind %s has inconsistent depth range %d..%d default %d", k, c.DepthMin, c.DepthMax, c.DepthDefault)
		}
		if c.Supports3D && c.Family != FamilyBar && c.Family != FamilyPie {
			t.Errorf("kind %s supports 3D outside bar/pie families", k)
		}
	}
}

func TestSupports(t *testing.T) {
	tests := []struct {
		kind ChartKind
		f    Feature
		want bool
	}{
		{KindBar, FeatureTrendline, true},
		{KindPie, FeatureTrendline, false},
		{KindPie, Feature3D, true},
		{KindLine, Feature3D, false},
		{KindStacked, FeatureStacking, true},
		{KindGauge, FeatureGradient, false},
		{KindBar, Feature("sparkles"), false},
	}
	for _, tt := range tests {
		if got := Supports(tt.kind, tt.f); got != tt.want {
			t.Errorf("Supports(%s, %s) = %v, want %v", tt.kind, tt.f, got, tt.want)
		}
	}
}

func TestUnsupportedAdvisory(t *testing.T) {
	got := UnsupportedAdvisory(KindPie, FeatureTrendline)
	if got != "Trendline not available for pie charts" {
		t.Errorf("advisory = %q", got)
	}
}

func TestClampDepth(t *testing.T) {
	tests := []struct {
		kind  ChartKind
		depth int
		want  int
	}{
		{KindBar, 0, 8},
		{KindBar, 2, 5},
		{KindBar, 40, 15},
		{KindColumn, 10, 10},
		{KindPie, 0, 20},
		{KindDoughnut, 3, 10},
		{KindDoughnut, 99, 25},
		{KindLine, 12, 0},
	}
	for _, tt := range tests {
		if got := ClampDepth(tt.kind, tt.depth); got != tt.want {
			t.Errorf("ClampDepth(%s, %d) = %d, want %d", tt.kind, tt.depth, got, tt.want)
		}
	}
}

func TestParseChartKind(t *testing.T) {
	tests := map[string]ChartKind{
		"bar":          KindBar,
		" Pie ":        KindPie,
		"donut":        KindDoughnut,
		"side-by-side": KindCompare,
		"unknown":      KindBar,
		"":             KindBar,
	}
	for in, want := range tests {
		if got := ParseChartKind(in); got != want {
			t.Errorf("ParseChartKind(%q) = %s, want %s", in, got, want)
		}
	}
}

func TestNextChartKindCycles(t *testing.T) {
	k := KindBar
	for range ValidChartKinds {
		k = NextChartKind(k)
	}
	if k != KindBar {
		t.Errorf("cycle ended at %s, want bar", k)
	}
}
