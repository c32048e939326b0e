package raster

import (
	"math"

	"github.com/janekbaraniewski/openchart/internal/core"
	"github.com/janekbaraniewski/openchart/internal/depth"
)

const (
	marginFrac     = 0.08
	minMargin      = 16.0
	barFill        = 0.8
	pieFill        = 0.8
	doughnutInner  = 0.55
	gaugeThickness = 0.35
)

// PlotArea is the canvas minus its margins.
func PlotArea(width, height int) depth.Rect {
	w, h := float64(width), float64(height)
	mx := math.Max(minMargin, w*marginFrac)
	my := math.Max(minMargin, h*marginFrac)
	return depth.Rect{X: mx, Y: my, W: math.Max(0, w-2*mx), H: math.Max(0, h-2*my)}
}

// Scale maps plotted values to a [0,1] fraction of the value axis.
type Scale struct {
	Min, Max float64
	Log      bool
}

// ValueScale covers every plotted value of the non-trend series, summing per
// index when the dataset is stacked. Linear scales always include zero.
func ValueScale(ds core.Dataset) Scale {
	lo, hi := math.Inf(1), math.Inf(-1)
	observe := func(v float64) {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return
		}
		lo, hi = math.Min(lo, v), math.Max(hi, v)
	}
	series := barSeries(ds)
	if ds.Options.Stacked {
		for i := range ds.Labels {
			pos, neg := 0.0, 0.0
			for _, s := range series {
				if v := valueAt(s, i); v >= 0 {
					pos = core.Saturate(pos + v)
				} else {
					neg = core.Saturate(neg + v)
				}
			}
			observe(pos)
			observe(neg)
		}
	} else {
		for _, s := range ds.Series {
			for _, v := range s.Values {
				observe(v)
			}
		}
	}
	if math.IsInf(lo, 1) {
		lo, hi = 0, 1
	}

	if ds.Options.LogScale {
		floor := ds.Options.LogFloor
		if floor <= 0 {
			floor = 0.001
		}
		lo = math.Max(math.Min(lo, hi), floor)
		if hi <= lo {
			hi = lo * 10
		}
		return Scale{Min: lo, Max: hi, Log: true}
	}
	lo, hi = math.Min(lo, 0), math.Max(hi, 0)
	if hi == lo {
		hi = lo + 1
	}
	return Scale{Min: lo, Max: hi}
}

// Fraction is always finite: NaN maps to 0 and infinities to the nearest
// end of the axis. Linear spans are halved first so ranges wider than the
// float64 maximum still divide.
func (s Scale) Fraction(v float64) float64 {
	var f float64
	if s.Log {
		if v <= 0 {
			v = s.Min
		}
		f = (math.Log10(v) - math.Log10(s.Min)) / (math.Log10(s.Max) - math.Log10(s.Min))
	} else {
		f = (v/2 - s.Min/2) / (s.Max/2 - s.Min/2)
	}
	switch {
	case math.IsNaN(f), math.IsInf(f, -1):
		return 0
	case math.IsInf(f, 1):
		return 1
	}
	return f
}

// At is the inverse of Fraction.
func (s Scale) At(f float64) float64 {
	if s.Log {
		return math.Pow(10, math.Log10(s.Min)+f*(math.Log10(s.Max)-math.Log10(s.Min)))
	}
	return s.Min*(1-f) + s.Max*f
}

// Baseline is the fraction at which bars start.
func (s Scale) Baseline() float64 {
	if s.Log {
		return 0
	}
	return s.Fraction(0)
}

// barSeries are the series drawn as bars, lines or points: everything but
// the trend overlay.
func barSeries(ds core.Dataset) []core.DatasetSeries {
	out := make([]core.DatasetSeries, 0, len(ds.Series))
	for _, s := range ds.Series {
		if s.Role != core.RoleTrend {
			out = append(out, s)
		}
	}
	return out
}

func valueAt(s core.DatasetSeries, i int) float64 {
	if i < len(s.Values) {
		return s.Values[i]
	}
	return 0
}

// LayoutBars places one rectangle per (series, label). Series sit side by
// side inside each category slot, or on top of each other when stacked.
// Bar kinds with a "y" index axis grow horizontally.
func LayoutBars(ds core.Dataset, plot depth.Rect) []depth.Bar {
	n := len(ds.Labels)
	series := barSeries(ds)
	if n == 0 || len(series) == 0 || plot.Empty() {
		return nil
	}
	scale := ValueScale(ds)
	horizontal := ds.Options.IndexAxis == "y"

	span, extent := plot.W, plot.H
	if horizontal {
		span, extent = plot.H, plot.W
	}
	slot := span / float64(n)
	groups := len(series)
	if ds.Options.Stacked {
		groups = 1
	}
	thick := slot * barFill / float64(groups)

	bars := make([]depth.Bar, 0, n*len(series))
	for i := 0; i < n; i++ {
		pos, neg := 0.0, 0.0
		for j, s := range series {
			v := valueAt(s, i)
			from, to := 0.0, v
			offset := float64(j) * thick
			if ds.Options.Stacked {
				offset = 0
				if v >= 0 {
					from, to = pos, core.Saturate(pos+v)
					pos = to
				} else {
					from, to = neg, core.Saturate(neg+v)
					neg = to
				}
			}
			a, b := scale.Fraction(from), scale.Fraction(to)
			if !ds.Options.Stacked {
				a = scale.Baseline()
			}
			lo, hi := math.Min(a, b)*extent, math.Max(a, b)*extent
			start := float64(i)*slot + slot*(1-barFill)/2 + offset

			var r depth.Rect
			if horizontal {
				r = depth.Rect{X: plot.X + lo, Y: plot.Y + start, W: hi - lo, H: thick}
			} else {
				r = depth.Rect{X: plot.X + start, Y: plot.Y + plot.H - hi, W: thick, H: hi - lo}
			}
			bars = append(bars, depth.Bar{Rect: r, Color: s.ColorAt(i)})
		}
	}
	return bars
}

// PieGeometry returns the center and outer radius of a pie inside plot.
func PieGeometry(plot depth.Rect) (depth.Point, float64) {
	return depth.Point{X: plot.X + plot.W/2, Y: plot.Y + plot.H/2}, math.Min(plot.W, plot.H) / 2 * pieFill
}

// LayoutSlices turns the primary series into sectors running clockwise from
// twelve o'clock. Negative values count as zero.
func LayoutSlices(ds core.Dataset, plot depth.Rect) []depth.Slice {
	s, ok := ds.Primary()
	if !ok || plot.Empty() {
		return nil
	}
	shares := core.Shares(s.Values)
	if shares == nil {
		return nil
	}
	center, radius := PieGeometry(plot)
	inner := 0.0
	if ds.Kind == core.KindDoughnut {
		inner = radius * doughnutInner
	}
	angle := -math.Pi / 2
	out := make([]depth.Slice, 0, len(s.Values))
	for i, share := range shares {
		sweep := share * 2 * math.Pi
		out = append(out, depth.Slice{
			Sector: depth.Sector{Center: center, Radius: radius, InnerRadius: inner, Start: angle, End: angle + sweep},
			Color:  s.ColorAt(i),
		})
		angle += sweep
	}
	return out
}

// LayoutPoints places one point per label at the slot centers.
func LayoutPoints(s core.DatasetSeries, n int, scale Scale, plot depth.Rect) []depth.Point {
	if n == 0 {
		return nil
	}
	slot := plot.W / float64(n)
	pts := make([]depth.Point, 0, n)
	for i := 0; i < n && i < len(s.Values); i++ {
		f := math.Max(0, math.Min(1, scale.Fraction(s.Values[i])))
		pts = append(pts, depth.Point{X: plot.X + slot*(float64(i)+0.5), Y: plot.Y + plot.H*(1-f)})
	}
	return pts
}

// LayoutPointsHorizontal is LayoutPoints for charts whose categories run
// down the y axis.
func LayoutPointsHorizontal(s core.DatasetSeries, n int, scale Scale, plot depth.Rect) []depth.Point {
	if n == 0 {
		return nil
	}
	slot := plot.H / float64(n)
	pts := make([]depth.Point, 0, n)
	for i := 0; i < n && i < len(s.Values); i++ {
		f := math.Max(0, math.Min(1, scale.Fraction(s.Values[i])))
		pts = append(pts, depth.Point{X: plot.X + plot.W*f, Y: plot.Y + slot*(float64(i)+0.5)})
	}
	return pts
}

// LayoutRadar places one vertex per label on spokes starting at twelve
// o'clock.
func LayoutRadar(s core.DatasetSeries, n int, scale Scale, plot depth.Rect) []depth.Point {
	if n == 0 {
		return nil
	}
	center, radius := PieGeometry(plot)
	pts := make([]depth.Point, 0, n)
	for i := 0; i < n && i < len(s.Values); i++ {
		f := math.Max(0, math.Min(1, scale.Fraction(s.Values[i])))
		a := -math.Pi/2 + 2*math.Pi*float64(i)/float64(n)
		pts = append(pts, depth.Point{X: center.X + f*radius*math.Cos(a), Y: center.Y + f*radius*math.Sin(a)})
	}
	return pts
}

// LayoutGauge returns the background track and the filled arc of a
// half-circle gauge opening downwards.
func LayoutGauge(ds core.Dataset, plot depth.Rect) (track, value depth.Sector) {
	center := depth.Point{X: plot.X + plot.W/2, Y: plot.Y + plot.H*0.75}
	radius := math.Min(plot.W/2, plot.H*0.7)
	track = depth.Sector{Center: center, Radius: radius, InnerRadius: radius * (1 - gaugeThickness), Start: math.Pi, End: 2 * math.Pi}
	value = track
	value.End = math.Pi + math.Pi*ds.GaugeFraction()
	return track, value
}
