package depth

import (
	"github.com/janekbaraniewski/openchart/internal/colors"
)

// Bar is a finished 2D bar: its screen rectangle and fill color.
type Bar struct {
	Rect  Rect
	Color string
}

// Shadow steps for bars, furthest first: fraction of the full offset and
// opacity. Opacity strictly decreases in paint order.
var barShadowSteps = []struct {
	fraction float64
	opacity  float64
}{
	{1, 0.45},
	{2.0 / 3.0, 0.3},
	{1.0 / 3.0, 0.15},
}

const (
	barShadowDarken = 0.6
	barSideDarken   = 0.35
	barCapDarken    = 0.2
)

// PlanBars extrudes every bar towards the shadow position. All bars' shadow
// rectangles are planned step by step from the furthest offset inwards, then
// each bar gets its side and cap faces joining the rectangle's corners to the
// offset corners. Bars with zero width or height are skipped.
func PlanBars(bars []Bar, opts Options) Plan {
	var plan Plan
	if opts.Depth <= 0 {
		return plan
	}
	off := Offset(opts.Position, float64(opts.Depth))

	live := make([]Bar, 0, len(bars))
	for _, b := range bars {
		if !b.Rect.Empty() {
			live = append(live, b)
		}
	}
	if len(live) == 0 {
		return plan
	}

	for step, s := range barShadowSteps {
		d := off.Scale(s.fraction)
		for _, b := range live {
			plan.add(Layer{
				Step:    step,
				Kind:    LayerShadow,
				Opacity: s.opacity,
				Fill:    colors.Shade(b.Color, barShadowDarken),
				Shape:   b.Rect.Translate(d),
			})
		}
	}

	for _, b := range live {
		if side := sideFace(b.Rect, off); side != nil {
			plan.add(Layer{
				Step:    len(barShadowSteps),
				Kind:    LayerFace,
				Opacity: 1,
				Fill:    colors.Shade(b.Color, barSideDarken),
				Shape:   side,
			})
		}
		if cp := capFace(b.Rect, off); cp != nil {
			plan.add(Layer{
				Step:    len(barShadowSteps),
				Kind:    LayerFace,
				Opacity: 1,
				Fill:    colors.Shade(b.Color, barCapDarken),
				Shape:   cp,
			})
		}
	}
	return plan
}

// sideFace is the trapezoid on the vertical edge facing the offset.
func sideFace(r Rect, off Point) Polygon {
	var top, bottom Point
	switch {
	case off.X > 0:
		top, bottom = r.TopRight(), r.BottomRight()
	case off.X < 0:
		top, bottom = r.TopLeft(), r.BottomLeft()
	default:
		return nil
	}
	return Polygon{top, top.Add(off), bottom.Add(off), bottom}
}

// capFace is the trapezoid on the horizontal edge facing the offset.
func capFace(r Rect, off Point) Polygon {
	var left, right Point
	switch {
	case off.Y > 0:
		left, right = r.BottomLeft(), r.BottomRight()
	case off.Y < 0:
		left, right = r.TopLeft(), r.TopRight()
	default:
		return nil
	}
	return Polygon{left, right, right.Add(off), left.Add(off)}
}
