package core

import (
	"math"
	"testing"
)

func TestCellString(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"nil", nil, ""},
		{"string", "North", "North"},
		{"float", 1.5, "1.5"},
		{"whole float", 1200.0, "1200"},
		{"nan", math.NaN(), ""},
		{"int", 7, "7"},
		{"bool", true, "true"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CellString(tt.in); got != tt.want {
				t.Errorf("CellString(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestSeriesValid(t *testing.T) {
	ok := Series{Labels: []string{"a"}, Values: []float64{1}, Raw: []string{"1"}}
	if !ok.Valid() {
		t.Error("expected valid series")
	}
	mismatched := Series{Labels: []string{"a", "b"}, Values: []float64{1}}
	if mismatched.Valid() {
		t.Error("mismatched lengths should be invalid")
	}
	nan := Series{Labels: []string{"a"}, Values: []float64{math.NaN()}}
	if nan.Valid() {
		t.Error("NaN values should be invalid")
	}
}

func TestDatasetSeriesDisplayValue(t *testing.T) {
	s := DatasetSeries{Values: []float64{0.001, 5}, Original: []float64{-3, 5}}
	if got := s.DisplayValue(0); got != -3 {
		t.Errorf("DisplayValue(0) = %v, want -3", got)
	}
	plain := DatasetSeries{Values: []float64{2}}
	if got := plain.DisplayValue(0); got != 2 {
		t.Errorf("DisplayValue without originals = %v, want 2", got)
	}
	if got := plain.DisplayValue(5); got != 0 {
		t.Errorf("out of range DisplayValue = %v, want 0", got)
	}
}

func TestDatasetSeriesColorAt(t *testing.T) {
	s := DatasetSeries{Color: "#111111", PointColors: []string{"#222222", ""}}
	if s.ColorAt(0) != "#222222" || s.ColorAt(1) != "#111111" || s.ColorAt(9) != "#111111" {
		t.Errorf("unexpected ColorAt results")
	}
}

func TestDatasetMaxValue(t *testing.T) {
	d := Dataset{Series: []DatasetSeries{{Values: []float64{1, 9}}, {Values: []float64{4}}}}
	if got := d.MaxValue(); got != 9 {
		t.Errorf("MaxValue = %v, want 9", got)
	}
	if got := (Dataset{}).MaxValue(); got != 0 {
		t.Errorf("empty MaxValue = %v, want 0", got)
	}
}

func TestShares(t *testing.T) {
	got := Shares([]float64{1, 3, -2})
	want := []float64{0.25, 0.75, 0}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-12 {
			t.Errorf("shares[%d] = %v, want %v", i, got[i], want[i])
		}
	}
	if Shares([]float64{0, -1}) != nil {
		t.Error("no positive mass should give nil")
	}

	huge := Shares([]float64{math.MaxFloat64, math.MaxFloat64})
	if len(huge) != 2 || huge[0] != 0.5 || huge[1] != 0.5 {
		t.Errorf("shares past float64 range = %v, want [0.5 0.5]", huge)
	}
}

func TestGaugeFraction_LargeValues(t *testing.T) {
	d := Dataset{Series: []DatasetSeries{{Role: RolePrimary, Values: []float64{math.MaxFloat64, math.MaxFloat64, 0}}}}
	if got := d.GaugeFraction(); got != 0.5 {
		t.Errorf("GaugeFraction = %v, want 0.5", got)
	}
}

func TestSaturate(t *testing.T) {
	tests := []struct{ in, want float64 }{
		{math.Inf(1), math.MaxFloat64},
		{math.Inf(-1), -math.MaxFloat64},
		{math.NaN(), 0},
		{42, 42},
	}
	for _, tt := range tests {
		if got := Saturate(tt.in); got != tt.want {
			t.Errorf("Saturate(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
