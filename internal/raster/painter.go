package raster

import (
	"fmt"
	"math"

	"github.com/janekbaraniewski/openchart/internal/colors"
	"github.com/janekbaraniewski/openchart/internal/core"
	"github.com/janekbaraniewski/openchart/internal/depth"
)

const (
	DefaultWidth      = 960
	DefaultHeight     = 540
	DefaultBackground = "#ffffff"

	mutedColor   = "#cbd5e1"
	trackColor   = "#e2e8f0"
	lineWidth    = 2.5
	trendWidth   = 1.5
	areaOpacity  = 0.35
	radarOpacity = 0.3
	pointRadius  = 4.0
	bubbleMin    = 4.0
	bubbleMax    = 18.0
)

type Options struct {
	Width, Height int
	Background    string
}

func (o Options) normalized() Options {
	if o.Width <= 0 {
		o.Width = DefaultWidth
	}
	if o.Height <= 0 {
		o.Height = DefaultHeight
	}
	if o.Background == "" {
		o.Background = DefaultBackground
	}
	return o
}

// Frame is one finished raster render.
type Frame struct {
	Canvas *Canvas
	Scene  depth.Scene
	Depth  depth.Plan
	PassID string
}

// Render lays ds out, lets the depth compositor paint its layers, then paints
// the base primitives on top. An empty dataset renders a muted frame.
func Render(ds core.Dataset, cfg core.ChartConfig, opts Options) (Frame, error) {
	opts = opts.normalized()
	canvas := NewCanvas(opts.Width, opts.Height, colors.MustParse(opts.Background))
	plot := PlotArea(opts.Width, opts.Height)
	frame := Frame{Canvas: canvas}

	if ds.Empty || len(ds.Labels) == 0 {
		strokeRect(canvas, plot, colors.MustParse(mutedColor))
		return frame, nil
	}

	switch ds.Kind.Family() {
	case core.FamilyBar:
		frame.Scene.Bars = LayoutBars(ds, plot)
	case core.FamilyPie:
		frame.Scene.Slices = LayoutSlices(ds, plot)
	}

	comp := depth.NewCompositor(cfg.WithKind(ds.Kind))
	frame.PassID = comp.ID()
	frame.Depth = comp.Compose(frame.Scene)
	if err := comp.BeforePaint(canvas); err != nil {
		return frame, fmt.Errorf("rendering %s chart: %w", ds.Kind, err)
	}

	paintBase(canvas, ds, plot, frame.Scene)
	return frame, nil
}

func paintBase(c *Canvas, ds core.Dataset, plot depth.Rect, scene depth.Scene) {
	for _, b := range scene.Bars {
		c.FillRect(b.Rect, colors.MustParse(b.Color))
	}
	for _, s := range scene.Slices {
		c.FillSector(s.Sector, colors.MustParse(s.Color))
	}

	n := len(ds.Labels)
	scale := ValueScale(ds)
	switch ds.Kind.Family() {
	case core.FamilyLine:
		for _, s := range barSeries(ds) {
			pts := LayoutPoints(s, n, scale, plot)
			col := colors.MustParse(s.Color)
			if ds.Kind == core.KindArea && len(pts) > 1 {
				area := append(depth.Polygon{{X: pts[0].X, Y: plot.Y + plot.H}}, pts...)
				area = append(area, depth.Point{X: pts[len(pts)-1].X, Y: plot.Y + plot.H})
				c.FillPolygon(area, col.WithAlpha(areaOpacity))
			}
			c.StrokePolyline(pts, lineWidth, col)
		}
	case core.FamilyPoint:
		for _, s := range barSeries(ds) {
			for i, p := range LayoutPoints(s, n, scale, plot) {
				r := pointRadius
				if ds.Kind == core.KindBubble {
					f := math.Max(0, math.Min(1, scale.Fraction(s.Values[i])))
					r = bubbleMin + (bubbleMax-bubbleMin)*f
				}
				c.FillCircle(p, r, colors.MustParse(s.ColorAt(i)))
			}
		}
	case core.FamilyRadial:
		for _, s := range barSeries(ds) {
			pts := LayoutRadar(s, n, scale, plot)
			col := colors.MustParse(s.Color)
			c.FillPolygon(depth.Polygon(pts), col.WithAlpha(radarOpacity))
			if len(pts) > 0 {
				c.StrokePolyline(append(pts, pts[0]), lineWidth, col)
			}
		}
	case core.FamilyGauge:
		track, value := LayoutGauge(ds, plot)
		c.FillSector(track, colors.MustParse(trackColor))
		if p, ok := ds.Primary(); ok {
			c.FillSector(value, colors.MustParse(p.ColorAt(0)))
		}
	}

	if trend, ok := ds.SeriesByRole(core.RoleTrend); ok {
		pts := LayoutPoints(trend, n, scale, plot)
		if ds.Options.IndexAxis == "y" {
			pts = LayoutPointsHorizontal(trend, n, scale, plot)
		}
		c.StrokePolyline(pts, trendWidth, colors.MustParse(trend.Color))
	}
}

func strokeRect(c *Canvas, r depth.Rect, col colors.RGBA) {
	c.StrokePolyline([]depth.Point{r.TopLeft(), r.TopRight(), r.BottomRight(), r.BottomLeft(), r.TopLeft()}, 1, col)
}
